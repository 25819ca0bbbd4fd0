package search

import (
	"testing"

	"github.com/hailam/tiltmp/internal/board"
)

func TestDefaultStopConditionRejectsUnglueredLeftoverTiles(t *testing.T) {
	// Two separate single-tile polyominoes sitting on the two target
	// cells, never glued together, must not count as a solution: the
	// target is one two-cell Polyomino, not two one-cell ones.
	b := board.NewBoard(4, 1, board.NewPlainGlueRules(nil))
	b.AddPolyomino(board.NewPolyomino(board.Point{0, 0}, map[board.Point]*board.Tile{{0, 0}: {}}))
	b.AddPolyomino(board.NewPolyomino(board.Point{1, 0}, map[board.Point]*board.Tile{{0, 0}: {}}))

	target := []board.Point{{0, 0}, {1, 0}}
	if (DefaultStopCondition{}).Satisfied(b, target) {
		t.Fatalf("two unglued single tiles on the target cells should not satisfy DefaultStopCondition")
	}
}

func TestDefaultStopConditionAcceptsMatchingGluedShape(t *testing.T) {
	b := board.NewBoard(4, 1, board.NewPlainGlueRules(nil))
	b.AddPolyomino(board.NewPolyomino(board.Point{0, 0}, map[board.Point]*board.Tile{
		{0, 0}: {}, {1, 0}: {},
	}))

	target := []board.Point{{0, 0}, {1, 0}}
	if !(DefaultStopCondition{}).Satisfied(b, target) {
		t.Fatalf("a single polyomino matching the target shape at the target anchor should satisfy DefaultStopCondition")
	}
}

func TestNoLeftoversStopConditionRequiresSingleMatchingPolyomino(t *testing.T) {
	b := board.NewBoard(4, 1, board.NewPlainGlueRules(nil))
	b.AddPolyomino(board.NewPolyomino(board.Point{0, 0}, map[board.Point]*board.Tile{{0, 0}: {}}))
	b.AddPolyomino(board.NewPolyomino(board.Point{1, 0}, map[board.Point]*board.Tile{{0, 0}: {}}))

	target := []board.Point{{2, 0}, {3, 0}}
	c := &NoLeftoversStopCondition{}
	if c.Satisfied(b, target) {
		t.Fatalf("two leftover tiles should not satisfy NoLeftoversStopCondition")
	}
}

func TestNoLeftoversStopConditionComputesCompletionMoves(t *testing.T) {
	b := board.NewBoard(5, 1, board.NewPlainGlueRules(nil))
	b.AddPolyomino(board.NewPolyomino(board.Point{0, 0}, map[board.Point]*board.Tile{
		{0, 0}: {}, {1, 0}: {},
	}))

	target := []board.Point{{3, 0}, {4, 0}}
	c := &NoLeftoversStopCondition{}
	if !c.Satisfied(b, target) {
		t.Fatalf("a lone polyomino matching the target shape should satisfy NoLeftoversStopCondition")
	}
	moves := c.CompletionMoves(b, target)
	if len(moves) != 3 {
		t.Fatalf("expected 3 East moves to slide from anchor (0,0) to (3,0), got %v", moves)
	}
	for _, d := range moves {
		if d != board.East {
			t.Fatalf("expected only East moves, got %v", moves)
		}
	}
}
