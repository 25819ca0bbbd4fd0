// Package buildorder computes, for a target shape and an assignment of
// glue labels to its cells (a "blueprint"), an order in which individual
// tiles can be introduced one at a time and rigidly attached to a
// growing assembly until the target shape is complete.
package buildorder

import "errors"

// ErrUnsolvableBlueprint is returned by FindBlueprint when no glue
// assignment was found before OverallTimeout, FindBlueprint having
// already retried with fresh randomization until then.
// OneTileAtATimeMotionPlanner.Solve reports it upward as
// search.ErrSolverTimeout.
var ErrUnsolvableBlueprint = errors.New("buildorder: no solvable blueprint found")

// ErrNoBuildOrder is returned when a blueprint is internally consistent
// (every cell gets a glue) but no removal order exists that keeps the
// structure glue-connected and every removed tile reachable from outside
// the board at each step.
var ErrNoBuildOrder = errors.New("buildorder: no valid build order for this blueprint")
