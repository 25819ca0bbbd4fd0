package buildorder

import (
	"time"

	"github.com/hailam/tiltmp/internal/board"
	"github.com/hailam/tiltmp/internal/graph"
)

// FindBuildOrder computes an order in which the cells of target can be
// filled one at a time, by searching in reverse: starting from the fully
// assembled shape, it repeatedly removes a tile such that what remains
// is still glue-connected and the removed tile has a clear path from its
// cell to the board edge. The build order is the reverse of that removal
// sequence. rng controls which removable candidate is tried first on
// each step, so repeated calls can explore different valid orders.
func FindBuildOrder(width, height int, target []board.Point, bp Blueprint, rules board.GlueRules, rng *board.Rand, deadline time.Time) ([]board.Point, error) {
	remaining := make(map[board.Point]bool, len(target))
	for _, p := range target {
		remaining[p] = true
	}

	var removalOrder []board.Point
	for len(remaining) > 0 {
		if time.Now().After(deadline) {
			return nil, ErrNoBuildOrder
		}
		candidates := make([]board.Point, 0, len(remaining))
		for p := range remaining {
			candidates = append(candidates, p)
		}
		rng.Shuffle(len(candidates), func(i, j int) { candidates[i], candidates[j] = candidates[j], candidates[i] })

		removed := false
		for _, cand := range candidates {
			delete(remaining, cand)
			if isRemovable(width, height, remaining, cand) && stillConnected(remaining, bp, rules) {
				removalOrder = append(removalOrder, cand)
				removed = true
				break
			}
			remaining[cand] = true
		}
		if !removed {
			return nil, ErrNoBuildOrder
		}
	}

	buildOrder := make([]board.Point, len(removalOrder))
	for i, p := range removalOrder {
		buildOrder[len(removalOrder)-1-i] = p
	}
	return buildOrder, nil
}

// isRemovable reports whether cand has an unobstructed path to the board
// edge given that the cells still in remaining act as walls (cand itself
// has already been removed from remaining by the caller).
func isRemovable(width, height int, remaining map[board.Point]bool, cand board.Point) bool {
	if cand.X == 0 || cand.X == width-1 || cand.Y == 0 || cand.Y == height-1 {
		return true
	}
	reach := graph.ReachableSet(width, height, remaining, cand)
	for p := range reach {
		if p.X == 0 || p.X == width-1 || p.Y == 0 || p.Y == height-1 {
			return true
		}
	}
	return false
}

// stillConnected reports whether the cells left in remaining, glued
// according to bp, form a single glue-connected polyomino (or are empty).
func stillConnected(remaining map[board.Point]bool, bp Blueprint, rules board.GlueRules) bool {
	if len(remaining) <= 1 {
		return true
	}
	var start board.Point
	for p := range remaining {
		start = p
		break
	}
	seen := map[board.Point]bool{start: true}
	queue := []board.Point{start}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		curGlues := bp[cur]
		for _, d := range board.Directions {
			nb := cur.Add(d.Vector())
			if !remaining[nb] || seen[nb] {
				continue
			}
			nbGlues := bp[nb]
			if rules.Sticks(curGlues.On(d), nbGlues.On(d.Inverse())) {
				seen[nb] = true
				queue = append(queue, nb)
			}
		}
	}
	return len(seen) == len(remaining)
}
