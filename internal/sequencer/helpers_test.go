package sequencer

import (
	"time"

	"github.com/Zachkp/gridpath/internal/layout"
	"github.com/Zachkp/gridpath/internal/logger"
	"github.com/Zachkp/gridpath/internal/search"
)

// scriptedPlanner hands out results in order, repeating the last one.
type scriptedPlanner struct {
	boards  []Layout
	results []search.PathResult
	calls   int
	grids   []search.Grid
}

func (p *scriptedPlanner) Plan(grid search.Grid, _ []layout.Rect) (Layout, search.PathResult) {
	i := min(p.calls, len(p.results)-1)
	p.calls++
	p.grids = append(p.grids, grid)
	return p.boards[min(i, len(p.boards)-1)], p.results[i]
}

func cells(xs ...int) []search.Cell {
	out := make([]search.Cell, 0, len(xs)/2)
	for i := 0; i+1 < len(xs); i += 2 {
		out = append(out, search.Cell{X: xs[i], Y: xs[i+1]})
	}
	return out
}

var (
	testBoard = Layout{
		Walls: cells(1, 1, 2, 1),
		Start: search.Cell{X: 0, Y: 0},
		End:   search.Cell{X: 2, Y: 0},
	}
	// five explored cells, three on the route
	testFound = search.PathResult{
		Path:        cells(0, 0, 1, 0, 2, 0),
		SearchSteps: cells(0, 0, 0, 1, 1, 0, 0, 2, 2, 0),
	}
	testMissing = search.PathResult{
		Path:        []search.Cell{},
		SearchSteps: cells(0, 0, 0, 1),
	}
)

func fastConfig() Config {
	cfg := DefaultConfig()
	cfg.SearchDelay = 10 * time.Millisecond
	cfg.PathDelay = 10 * time.Millisecond
	return cfg.normalized()
}

func newTestSequencer(p Planner, opts ...Option) (*Sequencer, *ManualClock) {
	clock := NewManualClock()
	opts = append([]Option{WithClock(clock), WithPlanner(p), WithLogger(logger.Discard())}, opts...)
	return New(fastConfig(), opts...), clock
}
