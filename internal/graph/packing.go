package graph

import "github.com/hailam/tiltmp/internal/board"

// Shape is a fixed-orientation polyomino footprint, normalized so its
// minimum corner is (0,0). Tilting never rotates a polyomino, so packing
// never needs to try rotated variants.
type Shape []board.Point

// NormalizeShape translates points so the minimum X and Y are both 0.
func NormalizeShape(points []board.Point) Shape {
	if len(points) == 0 {
		return nil
	}
	min := points[0]
	for _, p := range points[1:] {
		if p.X < min.X {
			min.X = p.X
		}
		if p.Y < min.Y {
			min.Y = p.Y
		}
	}
	out := make(Shape, len(points))
	for i, p := range points {
		out[i] = p.Sub(min)
	}
	return out
}

// IsPackable reports whether the given shapes can be placed, each used
// exactly once and none overlapping, to exactly cover target (no gaps,
// no leftover target cells, no shape hanging outside target). This is the
// "can these spare tiles exactly complete the target area" test the
// NoLeftovers pruners rely on.
func IsPackable(target []board.Point, shapes []Shape) bool {
	targetSet := make(map[board.Point]bool, len(target))
	for _, p := range target {
		targetSet[p] = true
	}
	if totalCells(shapes) != len(targetSet) {
		return false
	}
	used := make([]bool, len(shapes))
	return packRecursive(targetSet, shapes, used)
}

func totalCells(shapes []Shape) int {
	n := 0
	for _, s := range shapes {
		n += len(s)
	}
	return n
}

func packRecursive(remaining map[board.Point]bool, shapes []Shape, used []bool) bool {
	if len(remaining) == 0 {
		for _, u := range used {
			if !u {
				return false
			}
		}
		return true
	}

	target := firstPoint(remaining)

	for i, shape := range shapes {
		if used[i] {
			continue
		}
		for _, anchorOffset := range shape {
			// Try placing shape so that anchorOffset lands on target.
			placement := target.Sub(anchorOffset)
			if fits(shape, placement, remaining) {
				removed := place(shape, placement, remaining)
				used[i] = true
				if packRecursive(remaining, shapes, used) {
					return true
				}
				used[i] = false
				unplace(removed, remaining)
			}
		}
	}
	return false
}

// firstPoint returns a deterministic representative element of remaining
// (the topmost-then-leftmost cell), so backtracking always attacks the
// same frontier cell first.
func firstPoint(remaining map[board.Point]bool) board.Point {
	var best board.Point
	first := true
	for p := range remaining {
		if first || p.Y < best.Y || (p.Y == best.Y && p.X < best.X) {
			best = p
			first = false
		}
	}
	return best
}

func fits(shape Shape, anchor board.Point, remaining map[board.Point]bool) bool {
	for _, off := range shape {
		if !remaining[anchor.Add(off)] {
			return false
		}
	}
	return true
}

func place(shape Shape, anchor board.Point, remaining map[board.Point]bool) []board.Point {
	removed := make([]board.Point, 0, len(shape))
	for _, off := range shape {
		p := anchor.Add(off)
		delete(remaining, p)
		removed = append(removed, p)
	}
	return removed
}

func unplace(removed []board.Point, remaining map[board.Point]bool) {
	for _, p := range removed {
		remaining[p] = true
	}
}
