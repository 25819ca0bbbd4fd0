// Package search implements the motion-planning engines: a plain BFS
// planner, a heuristic-guided best-first planner, and the single-tile
// sub-planner the build-order planner drives one tile at a time.
package search

import "errors"

// ErrSolverTimeout is returned when a planner's deadline elapses before a
// solution is found. The BFS and best-first planners also return it when
// they run out of states to expand without a solution; the two outcomes
// are not distinguished.
var ErrSolverTimeout = errors.New("search: solver timed out")

// ErrInvalidAnchoringTarget describes an anchoring instance that names a
// target cell which is not concrete on the initial board. No planner in
// this package checks for that condition or returns this error.
var ErrInvalidAnchoringTarget = errors.New("search: anchoring target is not concrete")
