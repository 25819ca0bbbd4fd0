package search

import (
	"context"

	"github.com/hailam/tiltmp/internal/board"
	"github.com/hailam/tiltmp/internal/heuristic"
	"github.com/hailam/tiltmp/internal/pruner"
)

// FindTileByColor locates the tile carrying the given color label,
// returning its absolute position. The build-order planner tags the one
// tile it is currently trying to move with a unique color before handing
// the board to the single-tile planner, since board snapshots otherwise
// carry no stable per-tile identity across merges.
func FindTileByColor(b *board.Board, color string) (board.Point, bool) {
	for _, poly := range b.Polyominoes {
		for _, t := range poly.Tiles {
			if t.Color == color {
				return t.Pos, true
			}
		}
	}
	return board.Point{}, false
}

// SingleTileStopCondition is satisfied once the tagged tile sits exactly
// at Destination.
type SingleTileStopCondition struct {
	TileColor   string
	Destination board.Point
}

func (s SingleTileStopCondition) Satisfied(b *board.Board, _ []board.Point) bool {
	pos, ok := FindTileByColor(b, s.TileColor)
	return ok && pos == s.Destination
}

// singleTileHeuristicAdapter evaluates a per-tile SingleTileHeuristic at
// the tagged tile's current position, so it can be plugged into the
// generic BestFirstPlanner (which scores whole board states).
type singleTileHeuristicAdapter struct {
	tileColor string
	inner     heuristic.SingleTileHeuristic
}

func (a singleTileHeuristicAdapter) Admissible() bool { return false }
func (a singleTileHeuristicAdapter) Evaluate(b *board.Board, target []board.Point) float64 {
	pos, ok := FindTileByColor(b, a.tileColor)
	if !ok {
		return 1e18 // tile vanished (merged with everything) - treat as maximally bad
	}
	return a.inner.Evaluate(b, pos)
}

// NewSingleTilePlanner builds a BestFirstPlanner that moves the tile
// tagged tileColor to destination, guided by h and pruned by the pair the
// build-order planner always applies: WrongTilesCombined (the tile must
// not be glued somewhere it cannot be used from) and TargetUnreachable
// (the destination must still be reachable from somewhere on the board).
func NewSingleTilePlanner(start *board.Board, tileColor string, destination board.Point, targetArea []board.Point, h heuristic.SingleTileHeuristic, deadline *Deadline) *BestFirstPlanner {
	ctx, cancel := context.WithTimeout(context.Background(), heuristic.PreComputationTimeout)
	defer cancel()
	h.PreCompute(ctx, start, targetArea)
	adapter := singleTileHeuristicAdapter{tileColor: tileColor, inner: h}
	wrongCombined := &pruner.WrongTilesCombined{}
	unreachable := &pruner.TargetUnreachable{}
	p := NewBestFirstPlanner(
		SingleTileStopCondition{TileColor: tileColor, Destination: destination},
		[]pruner.Pruner{wrongCombined, unreachable},
		adapter,
	)
	return p
}
