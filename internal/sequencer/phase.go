package sequencer

// Phase names a stage of the repeating cycle. The string form is what
// snapshots carry over the wire.
type Phase string

const (
	PhaseSetup     Phase = "SETUP"
	PhaseRetry     Phase = "RETRY"
	PhaseSearching Phase = "SEARCHING"
	PhasePath      Phase = "PATH"
	PhasePause     Phase = "PAUSE"
	PhaseWipe      Phase = "WIPE"
)

func (p Phase) String() string { return string(p) }
