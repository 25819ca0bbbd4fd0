package instance

import (
	"testing"

	"github.com/hailam/tiltmp/internal/board"
)

func sampleInstance() *Instance {
	b := board.NewBoard(5, 5, board.NewPlainGlueRules(nil))
	b.AddPolyomino(board.NewPolyomino(board.Point{X: 1, Y: 1}, map[board.Point]*board.Tile{
		{0, 0}: {Glues: board.Glues{East: "a"}, Color: "red"},
	}))
	b.AddPolyomino(board.NewPolyomino(board.Point{X: 3, Y: 3}, map[board.Point]*board.Tile{
		{0, 0}: {Glues: board.Glues{West: "a"}, Color: "blue"},
	}))
	return &Instance{
		Board:       b,
		TargetShape: []board.Point{{X: 0, Y: 0}, {X: 1, Y: 0}},
	}
}

func TestEncodeDecodeRoundTrip(t *testing.T) {
	inst := sampleInstance()
	data, err := Encode(inst)
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	got, err := Decode(data)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if got.Board.Width != 5 || got.Board.Height != 5 {
		t.Fatalf("dimensions not preserved: %+v", got.Board)
	}
	if len(got.Board.Polyominoes) != 2 {
		t.Fatalf("expected 2 polyominoes, got %d", len(got.Board.Polyominoes))
	}
	if len(got.TargetShape) != 2 {
		t.Fatalf("expected 2 target cells, got %d", len(got.TargetShape))
	}
	tile, ok := got.Board.TileAt(board.Point{X: 1, Y: 1})
	if !ok || tile.Glues.East != "a" || tile.Color != "red" {
		t.Fatalf("tile not preserved: %+v ok=%v", tile, ok)
	}
}

func TestDecodeRejectsUnknownGlueRules(t *testing.T) {
	_, err := Decode([]byte(`{"board":{"width":1,"height":1,"glueRules":{"rules":[],"class":"bogus"}},"target_shape":[]}`))
	if err == nil {
		t.Fatalf("expected error for unknown glueRules")
	}
}

func TestGlueRulesDeclaredPairsRoundTrip(t *testing.T) {
	b := board.NewBoard(2, 1, board.NewPlainGlueRules([][2]board.GlueType{{"a", "b"}}))
	inst := &Instance{Board: b, TargetShape: []board.Point{{X: 0, Y: 0}}}

	data, err := Encode(inst)
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	got, err := Decode(data)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if !got.Board.Rules.Sticks("a", "b") {
		t.Fatalf("expected declared pair (a,b) to survive round trip")
	}
	if got.Board.Rules.Sticks("a", "a") {
		t.Fatalf("undeclared pair (a,a) should not stick under plain rules")
	}
}

func TestEncodeDecodeFixedTilesRoundTrip(t *testing.T) {
	b := board.NewFixedBoard(3, 3, board.NewPlainGlueRules(nil))
	b.AddFixedTile(&board.Tile{Pos: board.Point{X: 1, Y: 1}})
	inst := &Instance{Board: b, TargetShape: []board.Point{{X: 0, Y: 0}}}

	data, err := Encode(inst)
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	got, err := Decode(data)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if !got.Board.IsAnchored(board.Point{X: 1, Y: 1}) {
		t.Fatalf("expected fixed tile to remain anchored after round trip")
	}
}

func TestSolutionEncodeDecodeRoundTrip(t *testing.T) {
	sol := &Solution{
		ControlSequence: []board.Direction{board.North, board.East},
		TimeNeeded:      1.5,
		NumberOfNodes:   42,
		Instance:        sampleInstance(),
	}
	data, err := EncodeSolution(sol)
	if err != nil {
		t.Fatalf("EncodeSolution: %v", err)
	}
	got, err := DecodeSolution(data)
	if err != nil {
		t.Fatalf("DecodeSolution: %v", err)
	}
	if len(got.ControlSequence) != 2 || got.ControlSequence[0] != board.North || got.ControlSequence[1] != board.East {
		t.Fatalf("control sequence not preserved: %v", got.ControlSequence)
	}
	if got.NumberOfNodes != 42 || got.TimeNeeded != 1.5 {
		t.Fatalf("scalar fields not preserved: %+v", got)
	}
	if got.Instance == nil || len(got.Instance.Board.Polyominoes) != 2 {
		t.Fatalf("embedded instance not preserved: %+v", got.Instance)
	}
}
