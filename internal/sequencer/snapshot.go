package sequencer

import (
	"slices"

	"github.com/Zachkp/gridpath/internal/layout"
	"github.com/Zachkp/gridpath/internal/search"
)

// Snapshot is what a renderer needs for one frame. Every slice is a private copy.
type Snapshot struct {
	Phase     Phase         `json:"phase"`
	Wiping    bool          `json:"wiping"`
	Suspended bool          `json:"suspended"`
	Grid      search.Grid   `json:"grid"`
	Reserved  []layout.Rect `json:"reserved"`
	Markers   []layout.Rect `json:"markers"`
	Walls     []search.Cell `json:"walls"`
	Start     *search.Cell  `json:"start"`
	End       *search.Cell  `json:"end"`
	Searched  []search.Cell `json:"searched"`
	Path      []search.Cell `json:"path"`
	Cycle     int           `json:"cycle"`
	Retries   int           `json:"retries"`
}

func (s State) Snapshot() Snapshot {
	snap := Snapshot{
		Phase:     s.Phase,
		Wiping:    s.Wiping,
		Suspended: s.Suspended,
		Grid:      s.Grid,
		Reserved:  slices.Clone(s.Reserved),
		Searched:  slices.Clone(s.Trace[:s.SearchRevealed]),
		Path:      slices.Clone(s.Path[:s.PathRevealed]),
		Cycle:     s.Cycle,
		Retries:   s.Retries,
	}
	if s.Board != nil {
		start, end := s.Board.Start, s.Board.End
		snap.Start = &start
		snap.End = &end
		snap.Walls = slices.Clone(s.Board.Walls)
		snap.Markers = slices.Clone(s.Board.Markers)
	}
	return snap
}

// CycleReport summarises one cycle that revealed its full path.
type CycleReport struct {
	Cycle     int
	Grid      search.Grid
	Walls     int
	Obstacles int
	TraceLen  int
	PathLen   int
	Retries   int
}

func (s State) report() CycleReport {
	r := CycleReport{
		Cycle:    s.Cycle,
		Grid:     s.Grid,
		TraceLen: len(s.Trace),
		PathLen:  len(s.Path),
		Retries:  s.Retries,
	}
	if s.Board != nil {
		r.Walls = len(s.Board.Walls)
		r.Obstacles = len(s.Board.Obstacles(s.Reserved))
	}
	return r
}
