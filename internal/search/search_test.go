package search

import (
	"testing"
	"time"

	"github.com/hailam/tiltmp/internal/board"
	"github.com/hailam/tiltmp/internal/heuristic"
	"github.com/hailam/tiltmp/internal/pruner"
)

func TestBFSPlannerSolvesSingleTileSlide(t *testing.T) {
	b := board.NewBoard(4, 1, board.NewPlainGlueRules(nil))
	b.AddPolyomino(board.NewPolyomino(board.Point{0, 0}, map[board.Point]*board.Tile{{0, 0}: {Pos: board.Point{0, 0}}}))

	p := NewBFSPlanner(DefaultStopCondition{}, nil)
	seq, err := p.Solve(b, []board.Point{{3, 0}}, NewDeadline(5*time.Second))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(seq) != 1 || seq[0] != board.East {
		t.Fatalf("expected a single East tilt, got %v", seq)
	}
}

func TestBestFirstPlannerSolvesSingleTileSlide(t *testing.T) {
	b := board.NewBoard(4, 1, board.NewPlainGlueRules(nil))
	b.AddPolyomino(board.NewPolyomino(board.Point{0, 0}, map[board.Point]*board.Tile{{0, 0}: {Pos: board.Point{0, 0}}}))

	p := NewBestFirstPlanner(DefaultStopCondition{}, []pruner.Pruner{&pruner.NotEnoughTiles{}}, heuristic.GreatestDistance{})
	seq, err := p.Solve(b, []board.Point{{3, 0}}, NewDeadline(5*time.Second))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(seq) != 1 || seq[0] != board.East {
		t.Fatalf("expected a single East tilt, got %v", seq)
	}
}

func TestBFSPlannerTimesOutGracefully(t *testing.T) {
	b := board.NewBoard(4, 1, board.NewPlainGlueRules(nil))
	b.AddPolyomino(board.NewPolyomino(board.Point{0, 0}, map[board.Point]*board.Tile{{0, 0}: {Pos: board.Point{0, 0}}}))

	dl := NewDeadline(time.Hour)
	dl.Stop()
	p := NewBFSPlanner(DefaultStopCondition{}, nil)
	_, err := p.Solve(b, []board.Point{{3, 0}}, dl)
	if err != ErrSolverTimeout {
		t.Fatalf("expected ErrSolverTimeout, got %v", err)
	}
}
