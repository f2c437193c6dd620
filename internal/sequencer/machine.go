package sequencer

import (
	"slices"
	"time"

	"github.com/Zachkp/gridpath/internal/layout"
	"github.com/Zachkp/gridpath/internal/search"
)

// State is everything the cycle knows. Transition never mutates the slices
// it receives, so a State can be shared once returned.
type State struct {
	Phase    Phase
	Grid     search.Grid
	Reserved []layout.Rect

	Board *Layout // nil until SETUP has generated
	Trace []search.Cell
	Path  []search.Cell

	SearchRevealed int
	PathRevealed   int

	Wiping    bool
	Suspended bool

	// started guards SETUP against generating twice for one entry.
	started bool
	// epoch tags each generation request so a late result is ignored.
	epoch int

	Cycle   int // completed reveals
	Retries int // consecutive failed setups
}

// NewState is an idle SETUP with no grid; nothing happens until Configure.
func NewState() State { return State{Phase: PhaseSetup} }

// Event is anything Transition reacts to.
type Event interface{ isEvent() }

// Configure supplies fresh grid dimensions and reserved regions. It always
// restarts the cycle at SETUP.
type Configure struct {
	Grid     search.Grid
	Reserved []layout.Rect
}

// Suspend freezes the cycle while the viewport is being resized.
type Suspend struct{}

// Resume ends a suspension with the settled dimensions and restarts at SETUP.
type Resume struct {
	Grid     search.Grid
	Reserved []layout.Rect
}

// Tick is the scheduled timer firing.
type Tick struct{}

// Generated carries the outcome of an EffectGenerate back into the machine.
type Generated struct {
	Epoch  int
	Board  Layout
	Result search.PathResult
}

func (Configure) isEvent() {}
func (Suspend) isEvent()   {}
func (Resume) isEvent()    {}
func (Tick) isEvent()      {}
func (Generated) isEvent() {}

// EffectKind says what a driver must do for an Effect.
type EffectKind int

const (
	// EffectCancel stops the outstanding timer, if any.
	EffectCancel EffectKind = iota
	// EffectSchedule replaces the outstanding timer with one firing after Delay.
	EffectSchedule
	// EffectGenerate asks for a board and search result, answered with Generated.
	EffectGenerate
	// EffectCycleComplete reports that a full path has been revealed.
	EffectCycleComplete
)

// Effect is a side effect requested by Transition. Delay is set for
// EffectSchedule and Epoch for EffectGenerate.
type Effect struct {
	Kind  EffectKind
	Delay time.Duration
	Epoch int
}

func cancel() Effect                  { return Effect{Kind: EffectCancel} }
func schedule(d time.Duration) Effect { return Effect{Kind: EffectSchedule, Delay: d} }
func generate(epoch int) Effect       { return Effect{Kind: EffectGenerate, Epoch: epoch} }
func cycleComplete() Effect           { return Effect{Kind: EffectCycleComplete} }
func effects(e ...Effect) []Effect    { return e }

func prepend(e Effect, rest []Effect) []Effect { return append([]Effect{e}, rest...) }

// Transition applies ev to s. cfg should already be normalized.
func Transition(cfg Config, s State, ev Event) (State, []Effect) {
	switch ev := ev.(type) {
	case Configure:
		s = restart(s, ev.Grid, ev.Reserved)
		next, eff := enterSetup(s)
		return next, prepend(cancel(), eff)

	case Suspend:
		if s.Suspended {
			return s, nil
		}
		s.Suspended = true
		return s, effects(cancel())

	case Resume:
		s.Suspended = false
		s = restart(s, ev.Grid, ev.Reserved)
		next, eff := enterSetup(s)
		return next, prepend(cancel(), eff)

	case Generated:
		return applyGenerated(cfg, s, ev)

	case Tick:
		return tick(cfg, s)
	}
	return s, nil
}

// restart drops the in-flight cycle and returns to SETUP on a new grid.
func restart(s State, grid search.Grid, reserved []layout.Rect) State {
	return State{
		Phase:     PhaseSetup,
		Grid:      grid,
		Reserved:  slices.Clone(reserved),
		Suspended: s.Suspended,
		epoch:     s.epoch,
		Cycle:     s.Cycle,
	}
}

// clearBoard empties everything a WIPE hides before the next SETUP.
func clearBoard(s State) State {
	s.Board = nil
	s.Trace = nil
	s.Path = nil
	s.SearchRevealed = 0
	s.PathRevealed = 0
	s.Wiping = false
	s.started = false
	s.Retries = 0
	return s
}

func enterSetup(s State) (State, []Effect) {
	if s.Suspended || !s.Grid.Valid() || s.started {
		return s, nil
	}
	s.started = true
	s.epoch++
	return s, effects(generate(s.epoch))
}

func applyGenerated(cfg Config, s State, ev Generated) (State, []Effect) {
	if s.Phase != PhaseSetup || ev.Epoch != s.epoch || s.Suspended {
		return s, nil
	}

	board := ev.Board
	s.Board = &board
	s.SearchRevealed = 0
	s.PathRevealed = 0
	s.Wiping = false

	if !ev.Result.Found() {
		s.started = false
		s.Retries++
		s.Trace = nil
		s.Path = nil
		s.Phase = PhaseRetry
		return s, effects(schedule(cfg.RetryDelay))
	}

	s.Trace = ev.Result.SearchSteps
	s.Path = ev.Result.Path
	s.Phase = PhaseSearching
	return enterSearching(cfg, s)
}

func tick(cfg Config, s State) (State, []Effect) {
	if s.Suspended {
		return s, nil
	}
	switch s.Phase {
	case PhaseSearching:
		return enterSearching(cfg, s)
	case PhasePath:
		return enterPath(cfg, s)
	case PhasePause:
		s.Phase = PhaseWipe
		s.Wiping = true
		return s, effects(schedule(cfg.WipeDuration))
	case PhaseWipe:
		s = clearBoard(s)
		s.Phase = PhaseSetup
		return enterSetup(s)
	case PhaseRetry:
		s.Phase = PhaseSetup
		return enterSetup(s)
	}
	return s, nil
}

// enterSearching reveals the next exploration cell, or moves on to PATH once
// every cell is showing. An empty trace goes back to SETUP through RETRY so
// a bad planner result costs one timer instead of an immediate regenerate.
func enterSearching(cfg Config, s State) (State, []Effect) {
	if len(s.Trace) == 0 {
		retries := s.Retries
		s = clearBoard(s)
		s.Retries = retries + 1
		s.Phase = PhaseRetry
		return s, effects(schedule(cfg.RetryDelay))
	}
	if s.SearchRevealed >= len(s.Trace) {
		s.Phase = PhasePath
		return enterPath(cfg, s)
	}
	s.SearchRevealed++
	return s, effects(schedule(cfg.SearchDelay))
}

func enterPath(cfg Config, s State) (State, []Effect) {
	if len(s.Path) == 0 {
		s.Phase = PhasePause
		return s, effects(schedule(cfg.PauseDuration))
	}
	if s.PathRevealed >= len(s.Path) {
		s.Phase = PhasePause
		s.Cycle++
		return s, effects(cycleComplete(), schedule(cfg.PauseDuration))
	}
	s.PathRevealed++
	return s, effects(schedule(cfg.PathDelay))
}
