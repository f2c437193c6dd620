package sequencer

import (
	"sync"
	"time"

	"github.com/Zachkp/gridpath/internal/layout"
	"github.com/Zachkp/gridpath/internal/search"
)

const (
	// ResizeThreshold is how many pixels either axis must move to count as a resize.
	ResizeThreshold = 5
	// ResizeQuiet is how long reports must stop before the resize is settled.
	ResizeQuiet = 500 * time.Millisecond
)

// ReserveFunc picks the regions of a grid that walls and endpoints must avoid.
type ReserveFunc func(grid search.Grid, viewportWidth int) []layout.Rect

// TerminalReserve reserves the centred terminal panel.
func TerminalReserve(grid search.Grid, viewportWidth int) []layout.Rect {
	r := layout.TerminalBounds(grid, viewportWidth)
	if r.Empty() {
		return nil
	}
	return []layout.Rect{r}
}

// ResizeWatcher turns raw viewport size reports into Configure, Suspend and
// Resume calls on a Sequencer.
type ResizeWatcher struct {
	mu       sync.Mutex
	seq      *Sequencer
	clock    Clock
	cellSize int
	reserve  ReserveFunc

	committed     bool
	width, height int

	pendingW, pendingH int
	timer              Timer
	timerID            uint64
}

func NewResizeWatcher(seq *Sequencer, clock Clock, cellSize int, reserve ReserveFunc) *ResizeWatcher {
	if clock == nil {
		clock = RealClock{}
	}
	if reserve == nil {
		reserve = TerminalReserve
	}
	return &ResizeWatcher{seq: seq, clock: clock, cellSize: cellSize, reserve: reserve}
}

// Report records the current viewport size in pixels. The first report
// configures the sequencer straight away.
func (w *ResizeWatcher) Report(width, height int) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if !w.committed {
		w.commit(width, height)
		grid, reserved := w.geometry()
		w.seq.Configure(grid, reserved)
		return
	}

	w.pendingW, w.pendingH = width, height
	if abs(width-w.width) <= ResizeThreshold && abs(height-w.height) <= ResizeThreshold {
		return
	}

	if w.timer == nil {
		w.seq.Suspend()
	} else {
		w.timer.Stop()
	}
	w.timerID++
	id := w.timerID
	w.timer = w.clock.AfterFunc(ResizeQuiet, func() { w.settle(id) })
}

// Resizing reports whether a resize is waiting to settle.
func (w *ResizeWatcher) Resizing() bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.timer != nil
}

// Stop drops any pending settle without touching the sequencer.
func (w *ResizeWatcher) Stop() {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.timer != nil {
		w.timer.Stop()
		w.timer = nil
	}
	w.timerID++
}

func (w *ResizeWatcher) settle(id uint64) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if id != w.timerID || w.timer == nil {
		return
	}
	w.timer = nil
	w.commit(w.pendingW, w.pendingH)
	grid, reserved := w.geometry()
	w.seq.Resume(grid, reserved)
}

func (w *ResizeWatcher) commit(width, height int) {
	w.committed = true
	w.width, w.height = width, height
	w.pendingW, w.pendingH = width, height
}

// geometry returns a zero grid for viewports too small to hold one, which
// leaves the sequencer idle.
func (w *ResizeWatcher) geometry() (search.Grid, []layout.Rect) {
	grid, err := layout.GridForViewport(w.width, w.height, w.cellSize)
	if err != nil {
		w.seq.log.WithError(err).Debug("viewport has no grid")
		return search.Grid{}, nil
	}
	return grid, w.reserve(grid, w.width)
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
