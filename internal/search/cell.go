package search

import "fmt"

// Cell is a grid coordinate. Cells compare by value and are used directly as map keys.
type Cell struct {
	X int `json:"x"`
	Y int `json:"y"`
}

func (c Cell) String() string { return fmt.Sprintf("%d,%d", c.X, c.Y) }

// Key returns the column-major integer key of the cell on a grid with the given row count.
func (c Cell) Key(rows int) int { return c.X*rows + c.Y }

// Grid holds the dimensions of the search space.
type Grid struct {
	Cols int `json:"cols"`
	Rows int `json:"rows"`
}

// Valid reports whether both dimensions are positive.
func (g Grid) Valid() bool { return g.Cols > 0 && g.Rows > 0 }

// Contains reports whether the cell is in bounds.
func (g Grid) Contains(c Cell) bool {
	return c.X >= 0 && c.X < g.Cols && c.Y >= 0 && c.Y < g.Rows
}

// Size is the total number of cells.
func (g Grid) Size() int { return g.Cols * g.Rows }

// Manhattan is |dx| + |dy|.
func Manhattan(a, b Cell) int {
	return abs(a.X-b.X) + abs(a.Y-b.Y)
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

// directions are visited in this order for every expansion: down, right, up, left.
var directions = [4]Cell{{0, 1}, {1, 0}, {0, -1}, {-1, 0}}
