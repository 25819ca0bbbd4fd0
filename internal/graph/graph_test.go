package graph

import (
	"testing"

	"github.com/hailam/tiltmp/internal/board"
)

func TestShortestPathAroundObstacle(t *testing.T) {
	blocked := map[board.Point]bool{{1, 0}: true, {1, 1}: true}
	path, err := ShortestPath(3, 3, blocked, board.Point{0, 0}, board.Point{2, 0})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if path[0] != (board.Point{0, 0}) || path[len(path)-1] != (board.Point{2, 0}) {
		t.Fatalf("path endpoints wrong: %v", path)
	}
	for i := 1; i < len(path); i++ {
		if board.TaxicabDistance(path[i-1], path[i]) != 1 {
			t.Fatalf("path is not contiguous: %v", path)
		}
	}
}

func TestShortestPathUnreachable(t *testing.T) {
	blocked := map[board.Point]bool{{1, 0}: true, {1, 1}: true, {1, 2}: true}
	_, err := ShortestPath(3, 3, blocked, board.Point{0, 0}, board.Point{2, 0})
	if err != ErrUnreachable {
		t.Fatalf("expected ErrUnreachable, got %v", err)
	}
}

func TestIsPackableExactCover(t *testing.T) {
	target := []board.Point{{0, 0}, {1, 0}, {0, 1}, {1, 1}}
	shapes := []Shape{
		NormalizeShape([]board.Point{{0, 0}, {1, 0}}),
		NormalizeShape([]board.Point{{0, 0}, {1, 0}}),
	}
	if !IsPackable(target, shapes) {
		t.Fatalf("expected two dominoes to tile a 2x2 square")
	}
}

func TestIsPackableRejectsLeftovers(t *testing.T) {
	target := []board.Point{{0, 0}, {1, 0}, {0, 1}, {1, 1}}
	shapes := []Shape{
		NormalizeShape([]board.Point{{0, 0}, {1, 0}}),
	}
	if IsPackable(target, shapes) {
		t.Fatalf("expected a single domino to fail to tile a 2x2 square")
	}
}

func TestShortenSolutionRemovesLoop(t *testing.T) {
	b := board.NewBoard(5, 1, board.NewPlainGlueRules(nil))
	b.AddPolyomino(board.NewPolyomino(board.Point{0, 0}, map[board.Point]*board.Tile{{0, 0}: {Pos: board.Point{0, 0}}}))

	seq := []board.Direction{board.East, board.West, board.East}
	shortened := ShortenSolution(b, seq)

	bb := b.Clone()
	for _, d := range shortened {
		bb.Tilt(d)
	}
	bOrig := b.Clone()
	for _, d := range seq {
		bOrig.Tilt(d)
	}
	if bb.CanonicalHash() != bOrig.CanonicalHash() {
		t.Fatalf("shortened sequence reaches a different state")
	}
	if len(shortened) >= len(seq) {
		t.Fatalf("expected shortened sequence to be strictly shorter, got %d vs %d", len(shortened), len(seq))
	}
}
