package heuristic

import (
	"context"
	"testing"

	"github.com/hailam/tiltmp/internal/board"
)

func boardWithTileAt(p board.Point) *board.Board {
	b := board.NewBoard(10, 10, board.NewPlainGlueRules(nil))
	b.AddPolyomino(board.NewPolyomino(p, map[board.Point]*board.Tile{{0, 0}: {Pos: p}}))
	return b
}

func TestGreatestDistanceZeroWhenTargetCovered(t *testing.T) {
	b := boardWithTileAt(board.Point{3, 3})
	got := GreatestDistance{}.Evaluate(b, []board.Point{{3, 3}})
	if got != 0 {
		t.Fatalf("expected 0, got %v", got)
	}
}

func TestGreatestDistanceReflectsFurthestCell(t *testing.T) {
	b := boardWithTileAt(board.Point{0, 0})
	got := GreatestDistance{}.Evaluate(b, []board.Point{{1, 0}, {5, 0}})
	if got != 5 {
		t.Fatalf("expected 5, got %v", got)
	}
}

func TestWeightedSumOfDistancesSumsAllCells(t *testing.T) {
	b := boardWithTileAt(board.Point{0, 0})
	got := WeightedSumOfDistances{Weight: 1}.Evaluate(b, []board.Point{{1, 0}, {2, 0}})
	if got != 3 {
		t.Fatalf("expected 3, got %v", got)
	}
}

func TestDistanceToPolyominoFindsAnchor(t *testing.T) {
	b := boardWithTileAt(board.Point{9, 9})
	b.AddPolyomino(board.NewPolyomino(board.Point{0, 0}, map[board.Point]*board.Tile{{0, 0}: {Pos: board.Point{0, 0}}}))

	h := DistanceToPolyomino{Anchor: board.Point{0, 0}}
	got := h.Evaluate(b, board.Point{9, 9})
	if got != 18 {
		t.Fatalf("expected taxicab distance 18, got %v", got)
	}
}

func TestDistanceToPolyominoAndTargetAreaPrefersAnchorOverAreaFringe(t *testing.T) {
	b := boardWithTileAt(board.Point{0, 0})
	b.AddPolyomino(board.NewPolyomino(board.Point{5, 5}, map[board.Point]*board.Tile{{0, 0}: {Pos: board.Point{5, 5}}}))

	h := &DistanceToPolyominoAndTargetArea{Anchor: board.Point{5, 5}}
	h.PreCompute(context.Background(), b, []board.Point{{5, 5}, {5, 6}, {6, 5}})

	closeToAnchor := h.Evaluate(b, board.Point{4, 5})
	farFromAnchor := h.Evaluate(b, board.Point{0, 0})
	if !(closeToAnchor < farFromAnchor) {
		t.Fatalf("expected tile nearer the anchor to score lower: %v vs %v", closeToAnchor, farFromAnchor)
	}
}
