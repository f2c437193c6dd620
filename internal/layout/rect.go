package layout

import "github.com/Zachkp/gridpath/internal/search"

// Rect is a block of grid cells with its top-left corner at (X, Y).
type Rect struct {
	X int `json:"x"`
	Y int `json:"y"`
	W int `json:"width"`
	H int `json:"height"`
}

// Empty reports whether the rect covers no cells.
func (r Rect) Empty() bool { return r.W <= 0 || r.H <= 0 }

func (r Rect) Area() int {
	if r.Empty() {
		return 0
	}
	return r.W * r.H
}

func (r Rect) Contains(c search.Cell) bool {
	return c.X >= r.X && c.X < r.X+r.W && c.Y >= r.Y && c.Y < r.Y+r.H
}

func (r Rect) Overlaps(o Rect) bool {
	if r.Empty() || o.Empty() {
		return false
	}
	return r.X < o.X+o.W && o.X < r.X+r.W && r.Y < o.Y+o.H && o.Y < r.Y+r.H
}

// Cells lists the covered cells row by row.
func (r Rect) Cells() []search.Cell {
	if r.Empty() {
		return nil
	}
	cells := make([]search.Cell, 0, r.Area())
	for y := r.Y; y < r.Y+r.H; y++ {
		for x := r.X; x < r.X+r.W; x++ {
			cells = append(cells, search.Cell{X: x, Y: y})
		}
	}
	return cells
}

// Within reports whether every cell of r lies on the grid.
func (r Rect) Within(g search.Grid) bool {
	return !r.Empty() && r.X >= 0 && r.Y >= 0 && r.X+r.W <= g.Cols && r.Y+r.H <= g.Rows
}

// AnyContains reports whether any of the rects covers c.
func AnyContains(rects []Rect, c search.Cell) bool {
	for _, r := range rects {
		if r.Contains(c) {
			return true
		}
	}
	return false
}
