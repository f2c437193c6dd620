package sequencer

import (
	"math/rand/v2"
	"time"

	"github.com/zyedidia/generic/mapset"

	"github.com/Zachkp/gridpath/internal/layout"
	"github.com/Zachkp/gridpath/internal/search"
)

// Layout is one generated board. Reserved regions are not repeated here.
type Layout struct {
	Walls   []search.Cell `json:"walls"`
	Markers []layout.Rect `json:"markers"`
	Start   search.Cell   `json:"start"`
	End     search.Cell   `json:"end"`
}

// Obstacles is every blocked cell: random walls, markers and reserved regions.
func (l Layout) Obstacles(reserved []layout.Rect) []search.Cell {
	cells := append([]search.Cell(nil), l.Walls...)
	for _, r := range l.Markers {
		cells = append(cells, r.Cells()...)
	}
	for _, r := range reserved {
		cells = append(cells, r.Cells()...)
	}
	return cells
}

// Planner produces a board and its search result for one SETUP.
type Planner interface {
	Plan(grid search.Grid, reserved []layout.Rect) (Layout, search.PathResult)
}

// Generator scatters walls uniformly at random and searches the result.
type Generator struct {
	rng         *rand.Rand
	density     float64
	attempts    int
	markerCount int
	markerSize  int
}

// NewGenerator builds a generator from cfg. A zero cfg.Seed seeds from the wall clock.
func NewGenerator(cfg Config) *Generator {
	cfg = cfg.normalized()
	seed := cfg.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	return &Generator{
		rng:         rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)),
		density:     cfg.WallDensity,
		attempts:    cfg.PlacementAttempts,
		markerCount: cfg.MarkerCount,
		markerSize:  cfg.MarkerSize,
	}
}

func (g *Generator) Plan(grid search.Grid, reserved []layout.Rect) (Layout, search.PathResult) {
	board := g.Generate(grid, reserved)
	engine := search.NewEngine(grid, board.Obstacles(reserved))
	return board, engine.FindPath(board.Start, board.End, grid.Cols, grid.Rows)
}

// Generate lays out markers, then walls, then the two endpoints. Each placement
// is resampled while it collides, up to the attempt budget; the last sample is
// kept once the budget runs out.
func (g *Generator) Generate(grid search.Grid, reserved []layout.Rect) Layout {
	var board Layout
	if !grid.Valid() {
		return board
	}

	board.Markers = g.placeMarkers(grid, reserved)

	fixed := append(append([]layout.Rect(nil), reserved...), board.Markers...)
	available := grid.Size() - coveredCells(grid, fixed)
	wallCount := int(float64(available) * g.density)

	walls := mapset.New[search.Cell]()
	blocked := func(c search.Cell) bool {
		return layout.AnyContains(fixed, c) || walls.Has(c)
	}

	board.Walls = make([]search.Cell, 0, wallCount)
	for i := 0; i < wallCount; i++ {
		c := g.sample(grid, blocked)
		walls.Put(c)
		board.Walls = append(board.Walls, c)
	}

	board.Start = g.sample(grid, blocked)
	board.End = g.sample(grid, blocked)
	return board
}

func (g *Generator) placeMarkers(grid search.Grid, reserved []layout.Rect) []layout.Rect {
	size := g.markerSize
	if g.markerCount == 0 || grid.Cols < size || grid.Rows < size {
		return nil
	}

	markers := make([]layout.Rect, 0, g.markerCount)
	collides := func(r layout.Rect) bool {
		for _, other := range reserved {
			if r.Overlaps(other) {
				return true
			}
		}
		for _, other := range markers {
			if r.Overlaps(other) {
				return true
			}
		}
		return false
	}

	for i := 0; i < g.markerCount; i++ {
		var r layout.Rect
		for attempt := 0; attempt < g.attempts; attempt++ {
			r = layout.Rect{
				X: g.rng.IntN(grid.Cols - size + 1),
				Y: g.rng.IntN(grid.Rows - size + 1),
				W: size,
				H: size,
			}
			if !collides(r) {
				break
			}
		}
		markers = append(markers, r)
	}
	return markers
}

func (g *Generator) sample(grid search.Grid, blocked func(search.Cell) bool) search.Cell {
	var c search.Cell
	for attempt := 0; attempt < g.attempts; attempt++ {
		c = search.Cell{X: g.rng.IntN(grid.Cols), Y: g.rng.IntN(grid.Rows)}
		if !blocked(c) {
			break
		}
	}
	return c
}

// coveredCells counts grid cells inside at least one rect.
func coveredCells(grid search.Grid, rects []layout.Rect) int {
	seen := mapset.New[search.Cell]()
	for _, r := range rects {
		for _, c := range r.Cells() {
			if grid.Contains(c) {
				seen.Put(c)
			}
		}
	}
	return seen.Size()
}
