package graph

import "github.com/hailam/tiltmp/internal/board"

// ShortenSolution removes redundant detours from a found control
// sequence: it replays the sequence from start, and whenever the same
// canonical board state recurs at two points in the replay, the moves
// between those two points accomplished nothing and are spliced out. The
// process repeats on the shortened sequence until a full pass finds no
// more repeats, so nested loops collapse too.
func ShortenSolution(start *board.Board, sequence []board.Direction) []board.Direction {
	current := append([]board.Direction(nil), sequence...)
	for {
		shortened, changed := shortenOnePass(start, current)
		current = shortened
		if !changed {
			return current
		}
	}
}

func shortenOnePass(start *board.Board, sequence []board.Direction) ([]board.Direction, bool) {
	b := start.Clone()
	hashes := make([]uint64, len(sequence)+1)
	hashes[0] = b.CanonicalHash()
	for i, d := range sequence {
		b.Tilt(d)
		hashes[i+1] = b.CanonicalHash()
	}

	seen := make(map[uint64]int, len(hashes))
	for i, h := range hashes {
		if first, ok := seen[h]; ok {
			out := make([]board.Direction, 0, len(sequence)-(i-first))
			out = append(out, sequence[:first]...)
			out = append(out, sequence[i:]...)
			return out, true
		}
		seen[h] = i
	}
	return sequence, false
}
