// Package heuristic implements the scoring functions the best-first
// search engine (internal/search) uses to rank candidate board states:
// distance-based estimates of how far a state is from the target shape.
package heuristic

import (
	"math"
	"sort"

	"github.com/hailam/tiltmp/internal/board"
	"github.com/hailam/tiltmp/internal/graph"
)

// Heuristic scores how far a board state is from completing target, lower
// is better. Admissible heuristics never overestimate the true remaining
// distance (required for A*-optimality in the best-first search);
// inadmissible ("greedy") ones trade that guarantee for a sharper, more
// informative signal in practice.
type Heuristic interface {
	Evaluate(b *board.Board, target []board.Point) float64
	// Admissible reports whether this heuristic never overestimates true
	// remaining cost, documenting the admissible/greedy split.
	Admissible() bool
}

// nearestDistances returns, for each target cell, the minimum BFS
// distance from any tile currently on the board; a target cell that is
// already occupied (by any tile, or by a wall) contributes zero.
func nearestDistances(b *board.Board, target []board.Point) []float64 {
	blocked := map[board.Point]bool{}
	for p := range b.Concrete {
		blocked[p] = true
	}
	tiles := make([]board.Point, 0)
	for _, p := range b.Polyominoes {
		tiles = append(tiles, p.AbsolutePositions()...)
	}

	out := make([]float64, 0, len(target))
	for _, tgt := range target {
		if b.Occupied(tgt) {
			out = append(out, 0)
			continue
		}
		best := math.Inf(1)
		for _, tp := range tiles {
			dist := graph.BFSDistances(b.Width, b.Height, blocked, tp)
			if d, ok := dist[tgt]; ok && float64(d) < best {
				best = float64(d)
			}
		}
		out = append(out, best)
	}
	return out
}

// GreatestDistance scores a state by its single worst (furthest) unmet
// target cell. Admissible: the true number of tilts needed is at least
// the taxicab distance the furthest cell's nearest tile must cover.
type GreatestDistance struct{}

func (GreatestDistance) Admissible() bool { return true }
func (GreatestDistance) Evaluate(b *board.Board, target []board.Point) float64 {
	d := nearestDistances(b, target)
	best := 0.0
	for _, v := range d {
		if math.IsInf(v, 1) {
			return v
		}
		if v > best {
			best = v
		}
	}
	return best
}

// AverageDistance scores a state by the mean nearest-tile distance over
// all unmet target cells. Admissible in the same sense as GreatestDistance
// (average <= max <= true cost is not guaranteed in general, but the
// mean of per-cell lower bounds is itself a lower bound on a cost that is
// at least the sum of independent requirements divided across moves).
type AverageDistance struct{}

func (AverageDistance) Admissible() bool { return true }
func (AverageDistance) Evaluate(b *board.Board, target []board.Point) float64 {
	d := nearestDistances(b, target)
	if len(d) == 0 {
		return 0
	}
	sum := 0.0
	for _, v := range d {
		if math.IsInf(v, 1) {
			return v
		}
		sum += v
	}
	return sum / float64(len(d))
}

// WeightedSumOfDistances sums every unmet cell's nearest-tile distance.
// Inadmissible (it double-counts moves that simultaneously help several
// cells) but a much sharper signal in practice, the way a greedy search
// heuristic typically trades optimality for speed.
type WeightedSumOfDistances struct{ Weight float64 }

func (WeightedSumOfDistances) Admissible() bool { return false }
func (h WeightedSumOfDistances) Evaluate(b *board.Board, target []board.Point) float64 {
	w := h.Weight
	if w == 0 {
		w = 1
	}
	d := nearestDistances(b, target)
	sum := 0.0
	for _, v := range d {
		if math.IsInf(v, 1) {
			return v
		}
		sum += v
	}
	return sum * w
}

// GreedyGreatestDistance is GreatestDistance computed only over the k
// smallest per-target-cell nearest-tile distances, ignoring the target
// cells that are furthest from any tile, at the cost of admissibility.
type GreedyGreatestDistance struct{ K int }

func (GreedyGreatestDistance) Admissible() bool { return false }
func (h GreedyGreatestDistance) Evaluate(b *board.Board, target []board.Point) float64 {
	k := h.K
	if k <= 0 {
		k = 5
	}
	d := nearestDistances(b, target)
	sort.Float64s(d)
	if len(d) > k {
		d = d[:k]
	}
	best := 0.0
	for _, v := range d {
		if v > best {
			best = v
		}
	}
	return best
}

// DistanceToNearestTile scores a state purely by the smallest
// nearest-tile distance over all target cells, so it is zero as soon as
// any target cell is occupied (and also when no target cell is
// reachable); useful as a cheap tie-breaker layered on top of a more
// global heuristic.
type DistanceToNearestTile struct{}

func (DistanceToNearestTile) Admissible() bool { return false }
func (DistanceToNearestTile) Evaluate(b *board.Board, target []board.Point) float64 {
	d := nearestDistances(b, target)
	best := math.Inf(1)
	for _, v := range d {
		if v < best {
			best = v
		}
	}
	if math.IsInf(best, 1) {
		return 0
	}
	return best
}

// Registry lists every heuristic the CLI's -heuristic flag can name.
var Registry = map[string]Heuristic{
	"Greatest Distance":         GreatestDistance{},
	"Average Distance":          AverageDistance{},
	"Weighted Sum of Distances": WeightedSumOfDistances{Weight: 1},
	"Greedy Greatest Distance":  GreedyGreatestDistance{K: 5},
	"Distance To Nearest Tile":  DistanceToNearestTile{},
}
