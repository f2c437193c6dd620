package search

import (
	"slices"

	"github.com/zyedidia/generic/mapset"
)

// PathResult is the outcome of one FindPath call. Path is empty when the goal
// is unreachable; SearchSteps lists cells in the order they were closed.
type PathResult struct {
	Path        []Cell `json:"path"`
	SearchSteps []Cell `json:"searchSteps"`
}

// Found reports whether a route was found.
func (r PathResult) Found() bool { return len(r.Path) > 0 }

// Engine searches a fixed grid with a fixed set of blocked cells.
// It keeps no state between calls, so one Engine may be reused.
type Engine struct {
	walls mapset.Set[Cell]
}

// NewEngine builds an engine over the grid. Duplicate walls are harmless and
// walls outside the grid are dropped.
func NewEngine(grid Grid, walls []Cell) *Engine {
	set := mapset.New[Cell]()
	for _, w := range walls {
		if grid.Contains(w) {
			set.Put(w)
		}
	}
	return &Engine{walls: set}
}

// Blocked reports whether c is a wall.
func (e *Engine) Blocked(c Cell) bool {
	return e.walls.Has(c)
}

// FindPath searches from start to end on a cols x rows grid.
//
// start and end must be in bounds and open; that is not re-checked. Closed
// cells are never reopened, which keeps the result optimal only because every
// step costs 1.
func (e *Engine) FindPath(start, end Cell, cols, rows int) PathResult {
	bounds := Grid{Cols: cols, Rows: rows}

	open := newOpenSet()
	closed := mapset.New[Cell]()
	cameFrom := make(map[Cell]Cell)
	gScore := map[Cell]int{start: 0}

	open.Upsert(start, Manhattan(start, end))

	var steps []Cell
	for open.Len() > 0 {
		current := open.PopMin()
		closed.Put(current)
		steps = append(steps, current)

		if current == end {
			return PathResult{
				Path:        reconstructPath(cameFrom, current, start),
				SearchSteps: steps,
			}
		}

		tentativeG := gScore[current] + 1
		for _, d := range directions {
			neighbor := Cell{X: current.X + d.X, Y: current.Y + d.Y}
			if !bounds.Contains(neighbor) || e.Blocked(neighbor) {
				continue
			}
			if closed.Has(neighbor) {
				continue
			}
			if g, seen := gScore[neighbor]; seen && tentativeG >= g {
				continue
			}
			cameFrom[neighbor] = current
			gScore[neighbor] = tentativeG
			open.Upsert(neighbor, tentativeG+Manhattan(neighbor, end))
		}
	}

	return PathResult{Path: []Cell{}, SearchSteps: steps}
}

func reconstructPath(cameFrom map[Cell]Cell, current, start Cell) []Cell {
	path := []Cell{current}
	for current != start {
		previous, ok := cameFrom[current]
		if !ok {
			break
		}
		path = append(path, previous)
		current = previous
	}
	slices.Reverse(path)
	return path
}
