package board

// Polyomino is a rigid, glue-connected cluster of tiles that moves and
// tilts as one piece. Position is the cluster's anchor (its minimum
// corner, i.e. min X and min Y over all member tiles); Tiles is keyed by
// each member's offset from that anchor, so translating the whole
// polyomino is just updating Position and every tile's denormalized Pos.
type Polyomino struct {
	Position Point
	Tiles    map[Point]*Tile

	// CanReach caches whether this polyomino is known to be able to reach
	// its target destination; merges inherit the logical OR of the
	// components' flags (see DESIGN.md, "can_reach inheritance").
	CanReach bool
}

// NewPolyomino builds a polyomino anchored at position from the given
// offset->tile map, repointing every tile's back-pointer and absolute
// position to match.
func NewPolyomino(position Point, tiles map[Point]*Tile) *Polyomino {
	p := &Polyomino{Position: position, Tiles: tiles}
	for off, t := range tiles {
		t.poly = p
		t.Pos = position.Add(off)
	}
	return p
}

// Size returns the number of tiles in the polyomino.
func (p *Polyomino) Size() int {
	return len(p.Tiles)
}

// TileAt returns the tile at absolute position pos, if any.
func (p *Polyomino) TileAt(pos Point) (*Tile, bool) {
	t, ok := p.Tiles[pos.Sub(p.Position)]
	return t, ok
}

// AbsolutePositions returns the absolute position of every tile.
func (p *Polyomino) AbsolutePositions() []Point {
	out := make([]Point, 0, len(p.Tiles))
	for off := range p.Tiles {
		out = append(out, p.Position.Add(off))
	}
	return out
}

// Translate shifts the whole polyomino by delta, updating every member
// tile's absolute position.
func (p *Polyomino) Translate(delta Point) {
	p.Position = p.Position.Add(delta)
	for off, t := range p.Tiles {
		t.Pos = p.Position.Add(off)
	}
}

// RemoveTileAt removes and returns the tile at absolute position pos, if
// present. Per DESIGN.md's resolution of the two conflicting definitions
// in the system this was distilled from, removal never reassigns a new
// anchor and never re-keys the remaining tiles: Position stays fixed even
// if the removed tile was the anchor tile, since callers that need a
// renormalized anchor call Normalize explicitly afterward. This keeps
// RemoveTileAt a pure, local, O(1) mutation with no surprising global
// renumbering of the other members' offsets.
func (p *Polyomino) RemoveTileAt(pos Point) (*Tile, bool) {
	off := pos.Sub(p.Position)
	t, ok := p.Tiles[off]
	if !ok {
		return nil, false
	}
	delete(p.Tiles, off)
	return t, true
}

// Normalize recomputes Position as the minimum corner over the current
// tile set and re-keys Tiles relative to it. Safe to call on an empty
// polyomino (it is then a no-op).
func (p *Polyomino) Normalize() {
	if len(p.Tiles) == 0 {
		return
	}
	min := Point{X: 1 << 30, Y: 1 << 30}
	for _, t := range p.Tiles {
		if t.Pos.X < min.X {
			min.X = t.Pos.X
		}
		if t.Pos.Y < min.Y {
			min.Y = t.Pos.Y
		}
	}
	if min == p.Position {
		return
	}
	newTiles := make(map[Point]*Tile, len(p.Tiles))
	for _, t := range p.Tiles {
		newTiles[t.Pos.Sub(min)] = t
	}
	p.Position = min
	p.Tiles = newTiles
}

// Clone deep-copies the polyomino (fresh tiles, independent of the
// original's back-pointers), used by Board.Clone.
func (p *Polyomino) Clone() *Polyomino {
	tiles := make(map[Point]*Tile, len(p.Tiles))
	for off, t := range p.Tiles {
		tiles[off] = &Tile{Pos: t.Pos, Glues: t.Glues, Color: t.Color}
	}
	np := NewPolyomino(p.Position, tiles)
	np.CanReach = p.CanReach
	return np
}

// GlueConnected reports whether every tile in the polyomino is reachable
// from every other tile by hopping across stuck glue edges, using rules
// to decide which abutting edges are stuck. A polyomino assembled purely
// by tilt-adjacency (no glue along some internal seam) is physically
// rigid but not necessarily glue-connected; build-order planning cares
// about the latter.
func (p *Polyomino) GlueConnected(rules GlueRules) bool {
	if len(p.Tiles) <= 1 {
		return true
	}
	var start Point
	for off := range p.Tiles {
		start = off
		break
	}
	seen := map[Point]bool{start: true}
	queue := []Point{start}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		t := p.Tiles[cur]
		for _, d := range Directions {
			nb := cur.Add(d.Vector())
			nt, ok := p.Tiles[nb]
			if !ok || seen[nb] {
				continue
			}
			if rules.Sticks(t.Glues.On(d), nt.Glues.On(d.Inverse())) {
				seen[nb] = true
				queue = append(queue, nb)
			}
		}
	}
	return len(seen) == len(p.Tiles)
}
