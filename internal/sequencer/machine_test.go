package sequencer

import (
	"testing"

	"github.com/Zachkp/gridpath/internal/search"
)

func hasEffect(effs []Effect, kind EffectKind) bool {
	for _, e := range effs {
		if e.Kind == kind {
			return true
		}
	}
	return false
}

func startedState(t *testing.T, cfg Config) State {
	t.Helper()
	s, effs := Transition(cfg, NewState(), Configure{Grid: search.Grid{Cols: 5, Rows: 5}})
	if len(effs) != 2 || effs[0].Kind != EffectCancel || effs[1].Kind != EffectGenerate {
		t.Fatalf("configure effects = %+v", effs)
	}
	s, effs = Transition(cfg, s, Generated{Epoch: effs[1].Epoch, Board: testBoard, Result: testFound})
	if s.Phase != PhaseSearching || s.SearchRevealed != 1 {
		t.Fatalf("after generate: phase %s, revealed %d", s.Phase, s.SearchRevealed)
	}
	if len(effs) != 1 || effs[0].Kind != EffectSchedule || effs[0].Delay != cfg.SearchDelay {
		t.Fatalf("searching effects = %+v", effs)
	}
	return s
}

func TestTransition_RevealOrder(t *testing.T) {
	cfg := fastConfig()
	s := startedState(t, cfg)

	searchingTicks := 0
	for s.Phase == PhaseSearching {
		var effs []Effect
		s, effs = Transition(cfg, s, Tick{})
		searchingTicks++
		if s.Phase == PhaseSearching && s.SearchRevealed != searchingTicks+1 {
			t.Fatalf("tick %d revealed %d cells", searchingTicks, s.SearchRevealed)
		}
		if len(effs) != 1 || effs[0].Kind != EffectSchedule {
			t.Fatalf("tick %d effects = %+v", searchingTicks, effs)
		}
	}
	if searchingTicks != 5 {
		t.Errorf("SEARCHING ticks = %d, want 5", searchingTicks)
	}
	if s.Phase != PhasePath || s.PathRevealed != 1 {
		t.Fatalf("phase %s, path revealed %d", s.Phase, s.PathRevealed)
	}

	pathTicks := 0
	var effs []Effect
	for s.Phase == PhasePath {
		s, effs = Transition(cfg, s, Tick{})
		pathTicks++
	}
	if pathTicks != 3 {
		t.Errorf("PATH ticks = %d, want 3", pathTicks)
	}
	if s.Phase != PhasePause || s.Cycle != 1 {
		t.Fatalf("phase %s, cycle %d", s.Phase, s.Cycle)
	}
	if !hasEffect(effs, EffectCycleComplete) || effs[len(effs)-1].Delay != cfg.PauseDuration {
		t.Errorf("pause effects = %+v", effs)
	}

	s, effs = Transition(cfg, s, Tick{})
	if s.Phase != PhaseWipe || !s.Wiping || effs[0].Delay != cfg.WipeDuration {
		t.Fatalf("expected WIPE, got %s wiping=%v %+v", s.Phase, s.Wiping, effs)
	}

	s, effs = Transition(cfg, s, Tick{})
	if s.Phase != PhaseSetup || s.Board != nil || s.Trace != nil || s.Wiping {
		t.Fatalf("WIPE did not clear the board: %+v", s)
	}
	if !hasEffect(effs, EffectGenerate) {
		t.Errorf("expected a fresh generation, got %+v", effs)
	}
}

func TestTransition_SetupGeneratesOncePerEntry(t *testing.T) {
	cfg := fastConfig()
	s, effs := Transition(cfg, NewState(), Configure{Grid: search.Grid{Cols: 4, Rows: 4}})
	if !hasEffect(effs, EffectGenerate) {
		t.Fatal("configure should generate")
	}
	s, effs = Transition(cfg, s, Tick{})
	if len(effs) != 0 {
		t.Errorf("tick during SETUP produced %+v", effs)
	}
	if again, _ := enterSetup(s); again.epoch != s.epoch {
		t.Error("SETUP generated twice")
	}
}

func TestTransition_InvalidGridIsIdle(t *testing.T) {
	s, effs := Transition(fastConfig(), NewState(), Configure{Grid: search.Grid{Cols: 0, Rows: 9}})
	if hasEffect(effs, EffectGenerate) || hasEffect(effs, EffectSchedule) {
		t.Errorf("invalid grid produced %+v", effs)
	}
	if s.Phase != PhaseSetup {
		t.Errorf("phase = %s", s.Phase)
	}
}

func TestTransition_NoPathRetries(t *testing.T) {
	cfg := fastConfig()
	s, effs := Transition(cfg, NewState(), Configure{Grid: search.Grid{Cols: 5, Rows: 5}})
	s, effs = Transition(cfg, s, Generated{Epoch: effs[1].Epoch, Board: testBoard, Result: testMissing})
	if s.Phase != PhaseRetry || s.Retries != 1 {
		t.Fatalf("phase %s retries %d", s.Phase, s.Retries)
	}
	if len(effs) != 1 || effs[0].Delay != cfg.RetryDelay {
		t.Fatalf("retry effects = %+v", effs)
	}

	s, effs = Transition(cfg, s, Tick{})
	if s.Phase != PhaseSetup || !hasEffect(effs, EffectGenerate) {
		t.Fatalf("retry did not regenerate: %s %+v", s.Phase, effs)
	}
	s, _ = Transition(cfg, s, Generated{Epoch: effs[0].Epoch, Board: testBoard, Result: testFound})
	if s.Phase != PhaseSearching || s.Retries != 1 {
		t.Errorf("phase %s retries %d", s.Phase, s.Retries)
	}
}

func TestTransition_StaleGenerationIgnored(t *testing.T) {
	cfg := fastConfig()
	s, effs := Transition(cfg, NewState(), Configure{Grid: search.Grid{Cols: 5, Rows: 5}})
	stale := effs[1].Epoch
	s, _ = Transition(cfg, s, Configure{Grid: search.Grid{Cols: 6, Rows: 6}})

	next, effs := Transition(cfg, s, Generated{Epoch: stale, Board: testBoard, Result: testFound})
	if next.Phase != PhaseSetup || next.Board != nil || len(effs) != 0 {
		t.Errorf("stale result applied: %s %+v", next.Phase, effs)
	}
}

func TestTransition_SuspendFreezes(t *testing.T) {
	cfg := fastConfig()
	s := startedState(t, cfg)
	s, _ = Transition(cfg, s, Tick{})

	s, effs := Transition(cfg, s, Suspend{})
	if len(effs) != 1 || effs[0].Kind != EffectCancel {
		t.Fatalf("suspend effects = %+v", effs)
	}
	frozen := s
	for i := 0; i < 3; i++ {
		s, effs = Transition(cfg, s, Tick{})
		if len(effs) != 0 || s.SearchRevealed != frozen.SearchRevealed || s.Phase != frozen.Phase {
			t.Fatalf("tick advanced a suspended cycle")
		}
	}

	// Configure while suspended updates dimensions but waits.
	s, effs = Transition(cfg, s, Configure{Grid: search.Grid{Cols: 7, Rows: 7}})
	if hasEffect(effs, EffectGenerate) {
		t.Errorf("generated while suspended")
	}

	s, effs = Transition(cfg, s, Resume{Grid: search.Grid{Cols: 8, Rows: 6}})
	if s.Suspended || s.Phase != PhaseSetup || s.Board != nil || s.SearchRevealed != 0 {
		t.Fatalf("resume did not hard reset: %+v", s)
	}
	if s.Grid != (search.Grid{Cols: 8, Rows: 6}) || !hasEffect(effs, EffectGenerate) {
		t.Errorf("resume grid %+v effects %+v", s.Grid, effs)
	}
}

func TestTransition_DefensiveFallbacks(t *testing.T) {
	cfg := fastConfig()

	s := State{Phase: PhaseSearching, Grid: search.Grid{Cols: 3, Rows: 3}, started: true}
	s, effs := Transition(cfg, s, Tick{})
	if s.Phase != PhaseRetry || hasEffect(effs, EffectGenerate) || !hasEffect(effs, EffectSchedule) {
		t.Errorf("empty trace: phase %s effects %+v", s.Phase, effs)
	}
	if s.started || s.Board != nil || s.Retries != 1 {
		t.Errorf("empty trace left started=%v board=%v retries=%d", s.started, s.Board, s.Retries)
	}
	s, effs = Transition(cfg, s, Tick{})
	if s.Phase != PhaseSetup || !hasEffect(effs, EffectGenerate) {
		t.Errorf("after retry delay: phase %s effects %+v", s.Phase, effs)
	}

	s = State{Phase: PhasePath, Grid: search.Grid{Cols: 3, Rows: 3}, Trace: cells(0, 0)}
	s, effs = Transition(cfg, s, Tick{})
	if s.Phase != PhasePause || hasEffect(effs, EffectCycleComplete) {
		t.Errorf("empty path: phase %s effects %+v", s.Phase, effs)
	}
}

func TestSnapshotCopiesPrefixes(t *testing.T) {
	s := startedState(t, fastConfig())
	snap := s.Snapshot()
	if len(snap.Searched) != 1 || snap.Searched[0] != testFound.SearchSteps[0] {
		t.Fatalf("searched = %v", snap.Searched)
	}
	snap.Searched[0] = search.Cell{X: 99, Y: 99}
	snap.Walls[0] = search.Cell{X: 99, Y: 99}
	if s.Trace[0] == snap.Searched[0] || s.Board.Walls[0] == snap.Walls[0] {
		t.Error("snapshot aliases sequencer state")
	}
	if snap.Start == nil || *snap.Start != testBoard.Start {
		t.Errorf("start = %v", snap.Start)
	}
}
