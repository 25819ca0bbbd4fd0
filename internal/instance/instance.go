// Package instance defines the on-disk JSON representation of a problem
// instance (initial board plus target shape) and a solved run's output,
// matching the external interface every CLI invocation reads and writes.
package instance

import (
	"encoding/json"
	"fmt"

	"github.com/hailam/tiltmp/internal/board"
)

// Instance is a fully-loaded problem: an initial board state and the
// shape the solver must assemble somewhere on it.
type Instance struct {
	Board       *board.Board
	TargetShape []board.Point
	FixedTiles  []board.Point // non-nil only for anchoring instances
}

type pointJSON struct {
	X int `json:"x"`
	Y int `json:"y"`
}

func toPointJSON(p board.Point) pointJSON { return pointJSON{X: p.X, Y: p.Y} }
func (p pointJSON) toPoint() board.Point  { return board.Point{X: p.X, Y: p.Y} }

type gluesJSON struct {
	North string `json:"N,omitempty"`
	East  string `json:"E,omitempty"`
	South string `json:"S,omitempty"`
	West  string `json:"W,omitempty"`
}

func toGluesJSON(g board.Glues) gluesJSON {
	return gluesJSON{North: string(g.North), East: string(g.East), South: string(g.South), West: string(g.West)}
}

func (g gluesJSON) toGlues() board.Glues {
	return board.Glues{
		North: board.GlueType(g.North),
		East:  board.GlueType(g.East),
		South: board.GlueType(g.South),
		West:  board.GlueType(g.West),
	}
}

type tileJSON struct {
	Pos   pointJSON `json:"pos"`
	Glues gluesJSON `json:"glues"`
	Color string    `json:"color,omitempty"`
}

type boardJSON struct {
	Width      int           `json:"width"`
	Height     int           `json:"height"`
	Concrete   []pointJSON   `json:"concrete"`
	Tiles      []tileJSON    `json:"tiles"`
	GlueRules  glueRulesJSON `json:"glueRules"`
	FixedTiles []tileJSON    `json:"fixed_tiles,omitempty"`
}

type instanceJSON struct {
	Board       boardJSON   `json:"board"`
	TargetShape []pointJSON `json:"target_shape"`
}

// glueRulesJSON is the on-disk shape of a GlueRules value: its declared
// sticking pairs plus which concrete rule family interprets them.
type glueRulesJSON struct {
	Rules [][2]string `json:"rules"`
	Class string      `json:"class"`
}

func toGlueRulesJSON(r board.GlueRules) glueRulesJSON {
	class := "GlueRules"
	if _, ok := r.(*board.ReflexiveGlueRules); ok {
		class = "ReflexiveGlueRules"
	}
	gj := glueRulesJSON{Class: class}
	for _, p := range r.Rules() {
		gj.Rules = append(gj.Rules, [2]string{string(p[0]), string(p[1])})
	}
	return gj
}

// glueRulesFor builds the board.GlueRules value described by gj,
// feeding its declared pairs into the matching rule family.
func glueRulesFor(gj glueRulesJSON) (board.GlueRules, error) {
	pairs := make([][2]board.GlueType, len(gj.Rules))
	for i, p := range gj.Rules {
		pairs[i] = [2]board.GlueType{board.GlueType(p[0]), board.GlueType(p[1])}
	}
	switch gj.Class {
	case "GlueRules", "":
		return board.NewPlainGlueRules(pairs), nil
	case "ReflexiveGlueRules":
		return board.NewReflexiveGlueRules(pairs), nil
	default:
		return nil, fmt.Errorf("instance: unknown glueRules class %q", gj.Class)
	}
}

// Encode serializes inst to its JSON wire format.
func Encode(inst *Instance) ([]byte, error) {
	bj := boardJSON{
		Width:     inst.Board.Width,
		Height:    inst.Board.Height,
		GlueRules: toGlueRulesJSON(inst.Board.Rules),
	}
	for p := range inst.Board.Concrete {
		bj.Concrete = append(bj.Concrete, toPointJSON(p))
	}
	for _, poly := range inst.Board.SortedPolyominoes() {
		anchored := inst.Board.Anchored != nil && inst.Board.Anchored[poly]
		for _, pos := range poly.AbsolutePositions() {
			t, _ := poly.TileAt(pos)
			tj := tileJSON{Pos: toPointJSON(pos), Glues: toGluesJSON(t.Glues), Color: t.Color}
			if anchored {
				bj.FixedTiles = append(bj.FixedTiles, tj)
			} else {
				bj.Tiles = append(bj.Tiles, tj)
			}
		}
	}

	ij := instanceJSON{Board: bj}
	for _, p := range inst.TargetShape {
		ij.TargetShape = append(ij.TargetShape, toPointJSON(p))
	}
	return json.MarshalIndent(ij, "", "  ")
}

// Decode parses the JSON wire format into an Instance.
func Decode(data []byte) (*Instance, error) {
	var ij instanceJSON
	if err := json.Unmarshal(data, &ij); err != nil {
		return nil, fmt.Errorf("instance: malformed input: %w", err)
	}
	rules, err := glueRulesFor(ij.Board.GlueRules)
	if err != nil {
		return nil, fmt.Errorf("instance: malformed input: %w", err)
	}

	var b *board.Board
	if len(ij.Board.FixedTiles) > 0 {
		b = board.NewFixedBoard(ij.Board.Width, ij.Board.Height, rules)
	} else {
		b = board.NewBoard(ij.Board.Width, ij.Board.Height, rules)
	}
	for _, p := range ij.Board.Concrete {
		b.Concrete[p.toPoint()] = true
	}
	for _, tj := range ij.Board.Tiles {
		t := &board.Tile{Pos: tj.Pos.toPoint(), Glues: tj.Glues.toGlues(), Color: tj.Color}
		b.AddPolyomino(board.NewPolyomino(t.Pos, map[board.Point]*board.Tile{{0, 0}: t}))
	}
	var fixed []board.Point
	for _, tj := range ij.Board.FixedTiles {
		t := &board.Tile{Pos: tj.Pos.toPoint(), Glues: tj.Glues.toGlues(), Color: tj.Color}
		b.AddFixedTile(t)
		fixed = append(fixed, t.Pos)
	}

	inst := &Instance{Board: b, FixedTiles: fixed}
	for _, p := range ij.TargetShape {
		inst.TargetShape = append(inst.TargetShape, p.toPoint())
	}
	return inst, nil
}
