// Package rrt implements a rapidly-exploring random tree over the space
// of board configurations, used when a direct best-first search on the
// full board state is intractable: instead of searching exact states, it
// samples random target-like configurations and grows a tree of tilts
// toward them, occasionally aiming straight at the real goal.
package rrt

import (
	"github.com/hailam/tiltmp/internal/board"
)

// Configuration is a lightweight description of "what shapes exist and
// where", used as the unit of distance comparison between tree nodes
// instead of full Board values.
type Configuration struct {
	Polyominoes [][]board.Point // absolute tile positions per polyomino
}

// FromBoard captures a board's current configuration.
func FromBoard(b *board.Board) Configuration {
	polys := make([][]board.Point, 0, len(b.Polyominoes))
	for _, p := range b.Polyominoes {
		polys = append(polys, p.AbsolutePositions())
	}
	return Configuration{Polyominoes: polys}
}

// AllTiles flattens every polyomino's tiles into one slice.
func (c Configuration) AllTiles() []board.Point {
	var out []board.Point
	for _, p := range c.Polyominoes {
		out = append(out, p...)
	}
	return out
}

// isSubPolyomino reports whether every tile of small appears, with the
// same relative shape, translated somewhere within big.
func isSubPolyomino(small, big []board.Point) bool {
	if len(small) == 0 {
		return true
	}
	bigSet := make(map[board.Point]bool, len(big))
	for _, p := range big {
		bigSet[p] = true
	}
	for _, anchor := range big {
		delta := anchor.Sub(small[0])
		ok := true
		for _, p := range small {
			if !bigSet[p.Add(delta)] {
				ok = false
				break
			}
		}
		if ok {
			return true
		}
	}
	return false
}

// PolyominoesMatch reports whether every multi-tile polyomino in a
// appears as a sub-polyomino of some polyomino in b and vice versa. Two
// configurations that disagree on which tiles are rigidly glued together
// are not meaningfully comparable by position alone, so the distance
// metrics treat a mismatch as infinitely far apart.
func PolyominoesMatch(a, b Configuration) bool {
	return allMatch(a.Polyominoes, b.Polyominoes) && allMatch(b.Polyominoes, a.Polyominoes)
}

func allMatch(from, against [][]board.Point) bool {
	for _, p := range from {
		if len(p) <= 1 {
			continue
		}
		found := false
		for _, q := range against {
			if isSubPolyomino(p, q) {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}
