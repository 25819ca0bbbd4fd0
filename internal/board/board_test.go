package board

import "testing"

func single(pos Point, glues Glues) *Tile {
	return &Tile{Pos: pos, Glues: glues}
}

func TestTiltSlidesToWall(t *testing.T) {
	b := NewBoard(5, 1, NewPlainGlueRules(nil))
	poly := NewPolyomino(Point{0, 0}, map[Point]*Tile{{0, 0}: single(Point{0, 0}, Glues{})})
	b.AddPolyomino(poly)

	b.Tilt(East)

	if poly.Position != (Point{4, 0}) {
		t.Fatalf("expected tile to reach east wall at x=4, got %v", poly.Position)
	}
}

func TestTiltMergesStickingGlues(t *testing.T) {
	b := NewBoard(5, 1, NewPlainGlueRules([][2]GlueType{{"a", "a"}}))
	left := NewPolyomino(Point{0, 0}, map[Point]*Tile{{0, 0}: single(Point{0, 0}, Glues{East: "a"})})
	right := NewPolyomino(Point{4, 0}, map[Point]*Tile{{0, 0}: single(Point{4, 0}, Glues{West: "a"})})
	b.AddPolyomino(left)
	b.AddPolyomino(right)

	b.Tilt(East)

	if len(b.Polyominoes) != 1 {
		t.Fatalf("expected tiles to merge into one polyomino, got %d", len(b.Polyominoes))
	}
	if got := b.Polyominoes[0].Size(); got != 2 {
		t.Fatalf("expected merged polyomino to have 2 tiles, got %d", got)
	}
}

func TestTiltNonStickingGluesDoNotMerge(t *testing.T) {
	b := NewBoard(5, 1, NewPlainGlueRules(nil))
	left := NewPolyomino(Point{0, 0}, map[Point]*Tile{{0, 0}: single(Point{0, 0}, Glues{East: "a"})})
	right := NewPolyomino(Point{4, 0}, map[Point]*Tile{{0, 0}: single(Point{4, 0}, Glues{West: "b"})})
	b.AddPolyomino(left)
	b.AddPolyomino(right)

	b.Tilt(East)

	if len(b.Polyominoes) != 2 {
		t.Fatalf("expected tiles to stay separate, got %d polyominoes", len(b.Polyominoes))
	}
}

func TestAnchoredPolyominoNeverMoves(t *testing.T) {
	b := NewFixedBoard(5, 1, NewPlainGlueRules(nil))
	b.AddFixedTile(single(Point{2, 0}, Glues{}))
	mover := NewPolyomino(Point{0, 0}, map[Point]*Tile{{0, 0}: single(Point{0, 0}, Glues{})})
	b.AddPolyomino(mover)

	b.Tilt(East)

	if mover.Position != (Point{1, 0}) {
		t.Fatalf("expected mover to stop just west of the anchored tile, got %v", mover.Position)
	}
}

func TestSnapshotRestoreRoundTrip(t *testing.T) {
	b := NewBoard(5, 1, NewPlainGlueRules(nil))
	poly := NewPolyomino(Point{1, 0}, map[Point]*Tile{{0, 0}: single(Point{1, 0}, Glues{East: "x"})})
	b.AddPolyomino(poly)
	before := b.CanonicalHash()

	snap := b.Snapshot()
	b.Tilt(East)
	if b.CanonicalHash() == before {
		t.Fatalf("expected hash to change after tilting")
	}

	b.Restore(snap)
	if b.CanonicalHash() != before {
		t.Fatalf("expected hash to match original after restore")
	}
}

func TestCanonicalHashOrderIndependent(t *testing.T) {
	b1 := NewBoard(5, 1, NewPlainGlueRules(nil))
	b1.AddPolyomino(NewPolyomino(Point{0, 0}, map[Point]*Tile{{0, 0}: single(Point{0, 0}, Glues{})}))
	b1.AddPolyomino(NewPolyomino(Point{3, 0}, map[Point]*Tile{{0, 0}: single(Point{3, 0}, Glues{})}))

	b2 := NewBoard(5, 1, NewPlainGlueRules(nil))
	b2.AddPolyomino(NewPolyomino(Point{3, 0}, map[Point]*Tile{{0, 0}: single(Point{3, 0}, Glues{})}))
	b2.AddPolyomino(NewPolyomino(Point{0, 0}, map[Point]*Tile{{0, 0}: single(Point{0, 0}, Glues{})}))

	if b1.CanonicalHash() != b2.CanonicalHash() {
		t.Fatalf("expected hash to be independent of polyomino insertion order")
	}
}
