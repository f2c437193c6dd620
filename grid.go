package main

import (
	"context"
	"io"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/sirupsen/logrus"

	"github.com/Zachkp/gridpath/internal/layout"
	"github.com/Zachkp/gridpath/internal/logger"
	"github.com/Zachkp/gridpath/internal/search"
	"github.com/Zachkp/gridpath/internal/sequencer"
	"github.com/Zachkp/gridpath/internal/store"
)

// Websocket settings
const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = (pongWait * 9) / 10
	maxMessageSize = 512
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin:     func(r *http.Request) bool { return true },
}

type viewportQuery struct {
	Width  int    `form:"width" binding:"required,min=1"`
	Height int    `form:"height" binding:"required,min=1"`
	Seed   uint64 `form:"seed"`
}

// viewportMessage is what the landing page sends over the websocket.
type viewportMessage struct {
	Type   string `json:"type"`
	Width  int    `json:"width"`
	Height int    `json:"height"`
}

func (a *app) setupGridRoutes(r *gin.Engine) {
	g := r.Group("/grid")
	g.GET("/snapshot", a.handleGridSnapshot)
	g.GET("/stream", a.handleGridStream)
	g.GET("/ws", a.handleGridWS)
}

// viewportGeometry maps a viewport in pixels to a grid and its reserved terminal panel.
func (a *app) viewportGeometry(width, height int) (search.Grid, []layout.Rect, error) {
	grid, err := layout.GridForViewport(width, height, a.cfg.CellSize)
	if err != nil {
		return search.Grid{}, nil, err
	}
	return grid, sequencer.TerminalReserve(grid, width), nil
}

func (a *app) newSequencer(source string) *sequencer.Sequencer {
	return sequencer.New(a.cfg.Sequencer,
		sequencer.WithClock(a.clock),
		sequencer.WithLogger(logger.Log.WithField("source", source)),
		sequencer.WithCycleHook(a.recordCycle(source)),
	)
}

// recordCycle stores reports in the background so the animation never waits on sqlite.
func (a *app) recordCycle(source string) func(sequencer.CycleReport) {
	return func(r sequencer.CycleReport) {
		if a.store == nil {
			return
		}
		go func() {
			_, err := a.store.RecordCycle(context.Background(), store.Cycle{
				Cols:      r.Grid.Cols,
				Rows:      r.Grid.Rows,
				Walls:     r.Walls,
				Obstacles: r.Obstacles,
				Explored:  r.TraceLen,
				PathLen:   r.PathLen,
				Retries:   r.Retries,
				Source:    source,
			})
			if err != nil {
				logger.Log.WithError(err).Warn("Error recording cycle")
			}
		}()
	}
}

// handleGridSnapshot runs one SETUP synchronously and returns the whole result.
func (a *app) handleGridSnapshot(c *gin.Context) {
	var q viewportQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	grid, reserved, err := a.viewportGeometry(q.Width, q.Height)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	cfg := a.cfg.Sequencer
	if q.Seed != 0 {
		cfg.Seed = q.Seed
	}
	board, result := sequencer.NewGenerator(cfg).Plan(grid, reserved)

	c.JSON(http.StatusOK, gin.H{
		"grid":       grid,
		"breakpoint": layout.Breakpoint(q.Width),
		"reserved":   reserved,
		"layout":     board,
		"result":     result,
		"found":      result.Found(),
	})
}

// handleGridStream runs a private sequencer for a fixed viewport and streams
// its frames as server-sent events until the client goes away.
func (a *app) handleGridStream(c *gin.Context) {
	var q viewportQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	grid, reserved, err := a.viewportGeometry(q.Width, q.Height)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	seq := a.newSequencer("sse")
	defer seq.Close()
	frames, stop := seq.Subscribe()
	defer stop()
	seq.Configure(grid, reserved)

	ctx := c.Request.Context()
	c.Stream(func(w io.Writer) bool {
		select {
		case <-ctx.Done():
			return false
		case snap, ok := <-frames:
			if !ok {
				return false
			}
			c.SSEvent("frame", snap)
			return true
		}
	})
}

// gridClient bridges one websocket to one sequencer.
type gridClient struct {
	conn    *websocket.Conn
	seq     *sequencer.Sequencer
	watcher *sequencer.ResizeWatcher
	log     logrus.FieldLogger
}

func (a *app) handleGridWS(c *gin.Context) {
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		logger.Log.WithError(err).Warn("Websocket upgrade failed")
		return
	}

	seq := a.newSequencer("ws")
	client := &gridClient{
		conn:    conn,
		seq:     seq,
		watcher: sequencer.NewResizeWatcher(seq, a.clock, a.cfg.CellSize, nil),
		log:     logger.Log.WithField("remote", a.hashIP(c.ClientIP())),
	}
	client.log.Info("Grid client connected")

	frames, stop := seq.Subscribe()
	go client.writePump(frames)
	client.readPump()

	client.watcher.Stop()
	stop()
	seq.Close()
	client.log.Info("Grid client disconnected")
}

// readPump applies viewport reports until the connection fails.
func (gc *gridClient) readPump() {
	gc.conn.SetReadLimit(maxMessageSize)
	if err := gc.conn.SetReadDeadline(time.Now().Add(pongWait)); err != nil {
		gc.log.WithError(err).Warn("failed to set read deadline")
	}
	gc.conn.SetPongHandler(func(string) error {
		return gc.conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		var msg viewportMessage
		if err := gc.conn.ReadJSON(&msg); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				gc.log.WithError(err).Warn("Websocket read error")
			}
			return
		}
		switch msg.Type {
		case "viewport":
			gc.watcher.Report(msg.Width, msg.Height)
		default:
			gc.log.WithField("type", msg.Type).Debug("Ignoring unknown message")
		}
	}
}

// writePump forwards frames and keeps the connection alive with pings. It
// owns all writes to the connection.
func (gc *gridClient) writePump(frames <-chan sequencer.Snapshot) {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		gc.conn.Close()
	}()

	for {
		select {
		case snap, ok := <-frames:
			if err := gc.conn.SetWriteDeadline(time.Now().Add(writeWait)); err != nil {
				gc.log.WithError(err).Debug("failed to set write deadline")
			}
			if !ok {
				gc.conn.WriteMessage(websocket.CloseMessage, websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""))
				return
			}
			if err := gc.conn.WriteJSON(snap); err != nil {
				gc.log.WithError(err).Debug("write frame failed")
				return
			}

		case <-ticker.C:
			if err := gc.conn.SetWriteDeadline(time.Now().Add(writeWait)); err != nil {
				gc.log.WithError(err).Debug("failed to set ping deadline")
			}
			if err := gc.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				gc.log.WithError(err).Debug("ping failed")
				return
			}
		}
	}
}
