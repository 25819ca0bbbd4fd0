package pruner

import (
	"testing"

	"github.com/hailam/tiltmp/internal/board"
)

func TestNotEnoughTilesPrunesWhenShort(t *testing.T) {
	b := board.NewBoard(5, 5, board.NewPlainGlueRules(nil))
	b.AddPolyomino(board.NewPolyomino(board.Point{0, 0}, map[board.Point]*board.Tile{{0, 0}: {Pos: board.Point{0, 0}}}))

	p := &NotEnoughTiles{}
	p.Setup([]board.Point{{2, 2}, {3, 3}})

	if !p.IsPrunable(b) {
		t.Fatalf("expected prune: 1 tile cannot fill 2 target cells")
	}
}

func TestNotEnoughTilesNoLeftoversPrunesOnSurplus(t *testing.T) {
	b := board.NewBoard(5, 5, board.NewPlainGlueRules(nil))
	b.AddPolyomino(board.NewPolyomino(board.Point{0, 0}, map[board.Point]*board.Tile{{0, 0}: {Pos: board.Point{0, 0}}}))
	b.AddPolyomino(board.NewPolyomino(board.Point{1, 0}, map[board.Point]*board.Tile{{0, 0}: {Pos: board.Point{1, 0}}}))

	p := &NotEnoughTiles{NoLeftovers: true}
	p.Setup([]board.Point{{2, 2}})

	if !p.IsPrunable(b) {
		t.Fatalf("expected prune: 2 free tiles but only 1 target cell under NoLeftovers")
	}
}

func TestWrongTilesCombinedDetectsStraddlingPolyomino(t *testing.T) {
	b := board.NewBoard(5, 5, board.NewPlainGlueRules(nil))
	poly := board.NewPolyomino(board.Point{0, 0}, map[board.Point]*board.Tile{
		{0, 0}: {Pos: board.Point{0, 0}},
		{1, 0}: {Pos: board.Point{1, 0}},
	})
	b.AddPolyomino(poly)

	p := &WrongTilesCombined{}
	p.Setup([]board.Point{{0, 0}})

	if !p.IsPrunable(b) {
		t.Fatalf("expected prune: polyomino straddles target boundary")
	}
}

func TestTargetUnreachableDetectsSealedOffCell(t *testing.T) {
	b := board.NewBoard(3, 1, board.NewPlainGlueRules(nil))
	b.Concrete[board.Point{1, 0}] = true
	b.AddPolyomino(board.NewPolyomino(board.Point{0, 0}, map[board.Point]*board.Tile{{0, 0}: {Pos: board.Point{0, 0}}}))

	p := &TargetUnreachable{}
	p.Setup([]board.Point{{2, 0}})

	if !p.IsPrunable(b) {
		t.Fatalf("expected prune: wall seals off the only free tile from the target cell")
	}
}
