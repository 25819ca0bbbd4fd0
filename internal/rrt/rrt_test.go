package rrt

import (
	"testing"

	"github.com/hailam/tiltmp/internal/board"
)

func TestPolyominoesMatchIdentical(t *testing.T) {
	a := Configuration{Polyominoes: [][]board.Point{{{0, 0}, {1, 0}}}}
	b := Configuration{Polyominoes: [][]board.Point{{{5, 5}, {6, 5}}}}
	if !PolyominoesMatch(a, b) {
		t.Fatalf("expected translated identical shapes to match")
	}
}

func TestPolyominoesMatchRejectsDifferentShape(t *testing.T) {
	a := Configuration{Polyominoes: [][]board.Point{{{0, 0}, {1, 0}}}}
	b := Configuration{Polyominoes: [][]board.Point{{{0, 0}, {0, 1}}}}
	if PolyominoesMatch(a, b) {
		t.Fatalf("expected a horizontal domino not to match a vertical one")
	}
}

func TestHausdorffDistanceZeroForIdenticalSingletons(t *testing.T) {
	a := Configuration{Polyominoes: [][]board.Point{{{0, 0}}, {{5, 5}}}}
	if d := (HausdorffDistance{}).Distance(a, a); d != 0 {
		t.Fatalf("expected 0, got %v", d)
	}
}

func TestBottleneckMatchingFindsMinimalMaxEdge(t *testing.T) {
	a := Configuration{Polyominoes: [][]board.Point{{{0, 0}}, {{10, 10}}}}
	b := Configuration{Polyominoes: [][]board.Point{{{0, 1}}, {{10, 11}}}}
	d := (BottleneckMatching{}).Distance(a, b)
	if d != 1 {
		t.Fatalf("expected bottleneck distance 1, got %v", d)
	}
}

func TestGreedyBottleneckNeverWorseThanTrivialUpperBound(t *testing.T) {
	a := Configuration{Polyominoes: [][]board.Point{{{0, 0}}, {{3, 0}}}}
	b := Configuration{Polyominoes: [][]board.Point{{{0, 1}}, {{3, 1}}}}
	d := (GreedyBottleneck{}).Distance(a, b)
	if d > 1 {
		t.Fatalf("expected greedy bottleneck <= 1, got %v", d)
	}
}

func TestDistanceToTargetZeroWhenExactShapeAlreadyPresent(t *testing.T) {
	target := []board.Point{{0, 0}, {1, 0}}
	cfg := Configuration{Polyominoes: [][]board.Point{{{5, 5}, {6, 5}}}}
	if got := DistanceToTarget(cfg, target, board.NewPlainGlueRules(nil)); got != 0 {
		t.Fatalf("expected 0 extra tiles, got %v", got)
	}
}
