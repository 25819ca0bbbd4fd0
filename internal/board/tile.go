package board

// Tile is a single unit square. Its absolute position is always kept in
// sync with its owning Polyomino's anchor plus its offset within that
// polyomino; Pos is denormalized onto the tile for O(1) reads by the
// simulator's hot paths (step/activate_glues run over tiles far more
// often than over polyominoes).
type Tile struct {
	Pos   Point
	Glues Glues
	Color string

	poly *Polyomino
}

// Polyomino returns the polyomino this tile currently belongs to.
func (t *Tile) Polyomino() *Polyomino {
	return t.poly
}

// Offset returns the tile's position relative to its polyomino's anchor.
func (t *Tile) Offset() Point {
	return t.Pos.Sub(t.poly.Position)
}

// NewTile creates a free-standing single-tile tile. Callers normally get
// tiles back from Board/Polyomino constructors rather than calling this
// directly; it is exported for tests and instance deserialization.
func NewTile(pos Point, glues Glues, color string) *Tile {
	t := &Tile{Pos: pos, Glues: glues, Color: color}
	t.poly = NewPolyomino(pos, map[Point]*Tile{{0, 0}: t})
	return t
}
