package board

// BoardState is an immutable, flat snapshot of a board's polyomino
// layout, cheap to keep around (e.g. on a search node's best-so-far
// pointer) without holding onto the live, mutable Board graph.
type BoardState struct {
	groups []groupSnapshot
}

type groupSnapshot struct {
	position Point
	canReach bool
	anchored bool
	tiles    []tileSnapshot
}

type tileSnapshot struct {
	offset Point
	glues  Glues
	color  string
}

// Snapshot captures the board's current layout.
func (b *Board) Snapshot() BoardState {
	groups := make([]groupSnapshot, 0, len(b.Polyominoes))
	for _, p := range b.Polyominoes {
		g := groupSnapshot{
			position: p.Position,
			canReach: p.CanReach,
			anchored: b.Anchored != nil && b.Anchored[p],
			tiles:    make([]tileSnapshot, 0, len(p.Tiles)),
		}
		for off, t := range p.Tiles {
			g.tiles = append(g.tiles, tileSnapshot{offset: off, glues: t.Glues, color: t.Color})
		}
		groups = append(groups, g)
	}
	return BoardState{groups: groups}
}

// Restore replaces the board's polyomino layout with the one captured in
// s. Width, Height, Concrete and Rules are left untouched.
func (b *Board) Restore(s BoardState) {
	b.Polyominoes = b.Polyominoes[:0]
	b.tileAt = make(map[Point]int)
	if b.Anchored != nil {
		b.Anchored = make(map[*Polyomino]bool)
	}
	for _, g := range s.groups {
		tiles := make(map[Point]*Tile, len(g.tiles))
		for _, ts := range g.tiles {
			tiles[ts.offset] = &Tile{Glues: ts.glues, Color: ts.color}
		}
		p := NewPolyomino(g.position, tiles)
		p.CanReach = g.canReach
		b.AddPolyomino(p)
		if g.anchored {
			if b.Anchored == nil {
				b.Anchored = make(map[*Polyomino]bool)
			}
			b.Anchored[p] = true
		}
	}
}
