package board

import "fmt"

// NewFixedBoard creates a board that supports anchored (fixed) tiles: once
// a tile occupies one of the target positions supplied via AddFixedTile,
// it and anything later glued to it never move again.
func NewFixedBoard(width, height int, rules GlueRules) *Board {
	b := NewBoard(width, height, rules)
	b.Anchored = make(map[*Polyomino]bool)
	return b
}

// AddFixedTile places t as a permanently anchored singleton polyomino.
func (b *Board) AddFixedTile(t *Tile) {
	if b.Anchored == nil {
		b.Anchored = make(map[*Polyomino]bool)
	}
	poly := NewPolyomino(t.Pos, map[Point]*Tile{{0, 0}: t})
	b.AddPolyomino(poly)
	b.Anchored[poly] = true
}

// IsAnchored reports whether the polyomino currently occupying pos is
// anchored (permanently immovable).
func (b *Board) IsAnchored(pos Point) bool {
	if b.Anchored == nil {
		return false
	}
	idx, ok := b.tileAt[pos]
	if !ok {
		return false
	}
	return b.Anchored[b.Polyominoes[idx]]
}

// ValidateAnchoringTargets checks that every position in targets is
// currently occupied by a tile (anchored or not) on b, and returns an
// error naming the first position that is not. It does not consult
// b.Concrete.
func (b *Board) ValidateAnchoringTargets(targets []Point) error {
	for _, p := range targets {
		if _, ok := b.TileAt(p); !ok {
			return fmt.Errorf("board: anchoring target %v is not concrete", p)
		}
	}
	return nil
}
