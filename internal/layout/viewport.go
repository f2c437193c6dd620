// Package layout turns viewport measurements into grid geometry: how many
// cells fit on screen and where the terminal panel sits among them.
package layout

import (
	"errors"
	"fmt"

	"github.com/Zachkp/gridpath/internal/search"
)

// DefaultCellSize is the target edge length of one grid cell in pixels.
const DefaultCellSize = 25

var ErrInvalidGrid = errors.New("layout: viewport too small for a grid")

// GridForViewport fits whole cells of roughly cellSize pixels into the viewport.
func GridForViewport(width, height, cellSize int) (search.Grid, error) {
	if cellSize <= 0 {
		cellSize = DefaultCellSize
	}
	grid := search.Grid{Cols: width / cellSize, Rows: height / cellSize}
	if width <= 0 || height <= 0 || !grid.Valid() {
		return search.Grid{}, fmt.Errorf("%w: %dx%d px at %d px cells", ErrInvalidGrid, width, height, cellSize)
	}
	return grid, nil
}

type breakpoint struct {
	name     string
	minWidth int

	// marginCols of 0 sizes the panel by widthPercent instead.
	marginCols   int
	widthPercent float64
	minCols      int
	maxCols      int // 0 for no limit

	marginRows int
	minRows    int
	maxRows    int
}

// breakpoints are ordered widest first.
var breakpoints = []breakpoint{
	{name: "2xl", minWidth: 1536, widthPercent: 0.5, minCols: 25, maxCols: 25, marginRows: 2, minRows: 10, maxRows: 10},
	{name: "xl", minWidth: 1280, widthPercent: 0.5, minCols: 23, maxCols: 23, marginRows: 2, minRows: 10, maxRows: 10},
	{name: "lg", minWidth: 1024, widthPercent: 0.5, minCols: 23, maxCols: 23, marginRows: 2, minRows: 8, maxRows: 8},
	{name: "md", minWidth: 768, widthPercent: 0.5, minCols: 23, maxCols: 23, marginRows: 2, minRows: 8, maxRows: 8},
	{name: "sm", minWidth: 640, marginCols: 3, minCols: 12, marginRows: 2, minRows: 8, maxRows: 8},
	{name: "xs", minWidth: 0, marginCols: 3, minCols: 8, marginRows: 2, minRows: 8, maxRows: 8},
}

// Breakpoint names the breakpoint a viewport width falls into.
func Breakpoint(viewportWidth int) string {
	return breakpointFor(viewportWidth).name
}

func breakpointFor(viewportWidth int) breakpoint {
	for _, bp := range breakpoints {
		if viewportWidth >= bp.minWidth {
			return bp
		}
	}
	return breakpoints[len(breakpoints)-1]
}

// TerminalBounds centres the terminal panel on the grid, keeping at least one
// free cell on every side. An empty grid gets an empty rect.
func TerminalBounds(grid search.Grid, viewportWidth int) Rect {
	if !grid.Valid() {
		return Rect{}
	}
	bp := breakpointFor(viewportWidth)

	cols := int(float64(grid.Cols) * bp.widthPercent)
	if bp.marginCols > 0 {
		cols = grid.Cols - bp.marginCols*2
	}
	cols = max(cols, bp.minCols)
	if bp.maxCols > 0 {
		cols = min(cols, bp.maxCols)
	}
	cols = min(cols, grid.Cols-2)

	rows := grid.Rows - bp.marginRows*2
	rows = max(rows, bp.minRows)
	rows = min(rows, bp.maxRows)
	rows = min(rows, grid.Rows-2)

	if (grid.Cols-cols)%2 != 0 {
		cols--
	}
	if (grid.Rows-rows)%2 != 0 {
		rows--
	}
	if cols <= 0 || rows <= 0 {
		return Rect{}
	}

	return Rect{
		X: (grid.Cols - cols) / 2,
		Y: (grid.Rows - rows) / 2,
		W: cols,
		H: rows,
	}
}
