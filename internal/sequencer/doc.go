// Package sequencer drives the landing-page search animation.
//
// The cycle SETUP → SEARCHING → PATH → PAUSE → WIPE → SETUP repeats forever.
// SETUP lays out random walls, picks two endpoints and runs the grid search;
// SEARCHING and PATH reveal the recorded exploration and route one cell per
// tick. A failed search detours through RETRY back to SETUP.
//
// Transition is a pure function from (State, Event) to a new State plus the
// Effects to perform. Sequencer owns one State, performs its effects against
// an injected Clock and publishes a Snapshot after every event.
package sequencer
