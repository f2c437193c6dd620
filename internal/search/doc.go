// Package search finds shortest paths across a 4-connected obstacle grid.
//
// FindPath runs a best-first search ordered by Manhattan distance and returns
// both the path and the order in which cells were finalized, so callers can
// replay the exploration.
package search
