package sequencer

import (
	"reflect"
	"testing"

	"github.com/Zachkp/gridpath/internal/layout"
	"github.com/Zachkp/gridpath/internal/search"
)

func testConfig(seed uint64) Config {
	cfg := DefaultConfig()
	cfg.Seed = seed
	return cfg
}

func TestGenerator_LayoutAvoidsReservedCells(t *testing.T) {
	grid := search.Grid{Cols: 40, Rows: 24}
	terminal := layout.TerminalBounds(grid, 1300)
	reserved := []layout.Rect{terminal}

	cfg := testConfig(7)
	cfg.MarkerCount = 3
	gen := NewGenerator(cfg)

	for run := 0; run < 20; run++ {
		board := gen.Generate(grid, reserved)

		wantWalls := int(float64(grid.Size()-terminal.Area()-3*cfg.MarkerSize*cfg.MarkerSize) * cfg.WallDensity)
		if len(board.Walls) != wantWalls {
			t.Fatalf("run %d: %d walls, want %d", run, len(board.Walls), wantWalls)
		}

		seen := map[search.Cell]bool{}
		for _, w := range board.Walls {
			if !grid.Contains(w) {
				t.Fatalf("wall %v out of bounds", w)
			}
			if terminal.Contains(w) || layout.AnyContains(board.Markers, w) {
				t.Fatalf("wall %v inside a reserved region", w)
			}
			if seen[w] {
				t.Fatalf("wall %v placed twice", w)
			}
			seen[w] = true
		}

		if len(board.Markers) != 3 {
			t.Fatalf("markers = %d, want 3", len(board.Markers))
		}
		for i, m := range board.Markers {
			if !m.Within(grid) || m.Overlaps(terminal) {
				t.Fatalf("marker %+v misplaced", m)
			}
			for _, other := range board.Markers[i+1:] {
				if m.Overlaps(other) {
					t.Fatalf("markers %+v and %+v overlap", m, other)
				}
			}
		}

		for _, c := range []search.Cell{board.Start, board.End} {
			if seen[c] || terminal.Contains(c) || layout.AnyContains(board.Markers, c) {
				t.Fatalf("endpoint %v is blocked", c)
			}
		}
	}
}

func TestGenerator_SeedIsReproducible(t *testing.T) {
	grid := search.Grid{Cols: 20, Rows: 12}
	a, ra := NewGenerator(testConfig(42)).Plan(grid, nil)
	b, rb := NewGenerator(testConfig(42)).Plan(grid, nil)
	if !reflect.DeepEqual(a, b) || !reflect.DeepEqual(ra, rb) {
		t.Fatal("same seed produced different plans")
	}
}

func TestGenerator_PlanSearchesAroundAllObstacles(t *testing.T) {
	grid := search.Grid{Cols: 30, Rows: 20}
	reserved := []layout.Rect{{X: 10, Y: 8, W: 10, H: 4}}
	cfg := testConfig(3)
	cfg.MarkerCount = 2
	gen := NewGenerator(cfg)

	found := 0
	for run := 0; run < 30; run++ {
		board, result := gen.Plan(grid, reserved)
		if !result.Found() {
			continue
		}
		found++
		blocked := map[search.Cell]bool{}
		for _, c := range board.Obstacles(reserved) {
			blocked[c] = true
		}
		if result.Path[0] != board.Start || result.Path[len(result.Path)-1] != board.End {
			t.Fatalf("path does not join the endpoints")
		}
		for _, c := range result.Path {
			if blocked[c] {
				t.Fatalf("path crosses obstacle %v", c)
			}
		}
	}
	if found == 0 {
		t.Fatal("no run found a path")
	}
}

func TestGenerator_EmptyGrid(t *testing.T) {
	board := NewGenerator(testConfig(1)).Generate(search.Grid{}, nil)
	if len(board.Walls) != 0 || len(board.Markers) != 0 {
		t.Errorf("empty grid produced %+v", board)
	}
}

func TestGenerator_SaturatedGridKeepsLastSample(t *testing.T) {
	// Every cell is reserved, so placement exhausts its budget and still returns.
	grid := search.Grid{Cols: 3, Rows: 3}
	cfg := testConfig(9)
	cfg.PlacementAttempts = 5
	board := NewGenerator(cfg).Generate(grid, []layout.Rect{{X: 0, Y: 0, W: 3, H: 3}})
	if len(board.Walls) != 0 {
		t.Errorf("walls = %v, want none", board.Walls)
	}
	if !grid.Contains(board.Start) || !grid.Contains(board.End) {
		t.Errorf("endpoints out of bounds: %v %v", board.Start, board.End)
	}
}
