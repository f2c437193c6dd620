package layout

import (
	"errors"
	"testing"

	"github.com/Zachkp/gridpath/internal/search"
)

func TestGridForViewport(t *testing.T) {
	grid, err := GridForViewport(1920, 1080, 25)
	if err != nil {
		t.Fatal(err)
	}
	if grid != (search.Grid{Cols: 76, Rows: 43}) {
		t.Errorf("grid = %+v", grid)
	}

	if _, err := GridForViewport(10, 800, 25); !errors.Is(err, ErrInvalidGrid) {
		t.Errorf("narrow viewport err = %v, want ErrInvalidGrid", err)
	}
	if _, err := GridForViewport(0, 0, 25); !errors.Is(err, ErrInvalidGrid) {
		t.Errorf("zero viewport err = %v, want ErrInvalidGrid", err)
	}

	grid, err = GridForViewport(100, 50, 0)
	if err != nil {
		t.Fatal(err)
	}
	if grid != (search.Grid{Cols: 4, Rows: 2}) {
		t.Errorf("default cell size grid = %+v", grid)
	}
}

func TestTerminalBounds(t *testing.T) {
	tests := []struct {
		name     string
		grid     search.Grid
		viewport int
		want     Rect
	}{
		{"empty grid", search.Grid{}, 1920, Rect{}},
		{"desktop 2xl", search.Grid{Cols: 76, Rows: 43}, 1920, Rect{X: 26, Y: 17, W: 24, H: 9}},
		{"desktop xl even cols", search.Grid{Cols: 52, Rows: 30}, 1300, Rect{X: 15, Y: 10, W: 22, H: 10}},
		{"tablet md", search.Grid{Cols: 32, Rows: 40}, 800, Rect{X: 5, Y: 16, W: 22, H: 8}},
		{"phone xs margins", search.Grid{Cols: 15, Rows: 30}, 375, Rect{X: 3, Y: 11, W: 9, H: 8}},
		{"tiny grid clamps to one cell margin", search.Grid{Cols: 6, Rows: 6}, 375, Rect{X: 1, Y: 1, W: 4, H: 4}},
		{"degenerate grid", search.Grid{Cols: 2, Rows: 2}, 375, Rect{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := TerminalBounds(tt.grid, tt.viewport); got != tt.want {
				t.Errorf("TerminalBounds = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestBreakpoint(t *testing.T) {
	cases := map[int]string{0: "xs", 639: "xs", 640: "sm", 768: "md", 1024: "lg", 1280: "xl", 1536: "2xl", 4000: "2xl"}
	for width, want := range cases {
		if got := Breakpoint(width); got != want {
			t.Errorf("Breakpoint(%d) = %q, want %q", width, got, want)
		}
	}
}

func TestRect(t *testing.T) {
	r := Rect{X: 1, Y: 2, W: 3, H: 2}
	if r.Area() != 6 || len(r.Cells()) != 6 {
		t.Fatalf("area = %d, cells = %d", r.Area(), len(r.Cells()))
	}
	if !r.Contains(search.Cell{X: 3, Y: 3}) || r.Contains(search.Cell{X: 4, Y: 3}) {
		t.Error("Contains is off by one")
	}
	if !r.Overlaps(Rect{X: 3, Y: 3, W: 2, H: 2}) {
		t.Error("expected overlap at shared corner cell")
	}
	if r.Overlaps(Rect{X: 4, Y: 2, W: 1, H: 1}) {
		t.Error("adjacent rects must not overlap")
	}
	if !r.Within(search.Grid{Cols: 4, Rows: 4}) || r.Within(search.Grid{Cols: 3, Rows: 4}) {
		t.Error("Within is off by one")
	}
	if (Rect{}).Cells() != nil {
		t.Error("empty rect should have no cells")
	}
}
