package board

import "sort"

// Board is the concrete simulation state: a fixed wall mask plus a set of
// movable, glue-connected polyominoes occupying a width x height grid.
type Board struct {
	Width, Height int
	Concrete      map[Point]bool
	Polyominoes   []*Polyomino
	Rules         GlueRules

	// Anchored marks polyominoes that must never move, used by fixed-tile
	// (anchoring) instances: a tile placed at a fixed destination, and
	// anything later glued to it, stays put forever. Nil on ordinary
	// boards, where nothing is anchored.
	Anchored map[*Polyomino]bool

	tileAt map[Point]int // absolute position -> index into Polyominoes
}

// NewBoard creates an empty board of the given dimensions and glue rules.
func NewBoard(width, height int, rules GlueRules) *Board {
	return &Board{
		Width:    width,
		Height:   height,
		Concrete: make(map[Point]bool),
		Rules:    rules,
		tileAt:   make(map[Point]int),
	}
}

// AddPolyomino places poly on the board, indexing its tiles. The caller
// must ensure poly does not overlap any existing polyomino or wall.
func (b *Board) AddPolyomino(poly *Polyomino) {
	idx := len(b.Polyominoes)
	b.Polyominoes = append(b.Polyominoes, poly)
	for _, pos := range poly.AbsolutePositions() {
		b.tileAt[pos] = idx
	}
}

// TileAt returns the tile occupying pos, if any.
func (b *Board) TileAt(pos Point) (*Tile, bool) {
	idx, ok := b.tileAt[pos]
	if !ok {
		return nil, false
	}
	return b.Polyominoes[idx].TileAt(pos)
}

// Occupied reports whether pos is a wall or holds a tile.
func (b *Board) Occupied(pos Point) bool {
	if b.Concrete[pos] {
		return true
	}
	_, ok := b.tileAt[pos]
	return ok
}

// TileCount returns the total number of tiles across every polyomino on
// the board.
func (b *Board) TileCount() int {
	n := 0
	for _, p := range b.Polyominoes {
		n += p.Size()
	}
	return n
}

func (b *Board) reindex() {
	b.tileAt = make(map[Point]int, len(b.tileAt))
	for i, p := range b.Polyominoes {
		for _, pos := range p.AbsolutePositions() {
			b.tileAt[pos] = i
		}
	}
}

// Tilt simulates tilting the board in direction d until the system comes
// to rest: tiles slide one unit at a time (with chain-blocking against
// walls and stationary neighbors), and after every unit of movement newly
// touching glues are activated, since a merge can change what blocks what
// on the very next unit step.
func (b *Board) Tilt(d Direction) {
	for {
		moved := b.step(d)
		b.ActivateGlues()
		if !moved {
			return
		}
	}
}

// step slides every polyomino that is not blocked by a wall, the board
// edge, or a blocked neighbor one unit in direction d. It returns whether
// any polyomino moved.
func (b *Board) step(d Direction) bool {
	vec := d.Vector()
	blocked := make([]bool, len(b.Polyominoes))

	for i, poly := range b.Polyominoes {
		if b.Anchored != nil && b.Anchored[poly] {
			blocked[i] = true
		}
	}

	for {
		changed := false
		for i, poly := range b.Polyominoes {
			if blocked[i] {
				continue
			}
			if b.polyBlocked(i, poly, vec, blocked) {
				blocked[i] = true
				changed = true
			}
		}
		if !changed {
			break
		}
	}

	moved := false
	for i, poly := range b.Polyominoes {
		if blocked[i] {
			continue
		}
		poly.Translate(vec)
		moved = true
	}
	if moved {
		b.reindex()
	}
	return moved
}

// polyBlocked reports whether poly (index i) is currently prevented from
// moving by vec: one of its tiles would leave the grid, enter a wall, or
// enter a cell held by a different, already-blocked polyomino.
func (b *Board) polyBlocked(i int, poly *Polyomino, vec Point, blocked []bool) bool {
	for _, pos := range poly.AbsolutePositions() {
		next := pos.Add(vec)
		if !IsLegalIndex(next, b.Width, b.Height) {
			return true
		}
		if b.Concrete[next] {
			return true
		}
		if j, ok := b.tileAt[next]; ok && j != i {
			if blocked[j] {
				return true
			}
		}
	}
	return false
}

// ActivateGlues merges every pair of polyominoes that have become
// adjacent with sticking glues, repeating to a fixed point since a merge
// can expose new adjacencies on the combined shape's boundary. The
// lexicographically smaller polyomino (by anchor position) always absorbs
// the larger one, giving deterministic, order-independent results.
func (b *Board) ActivateGlues() {
	for {
		i, j, ok := b.findStickingPair()
		if !ok {
			return
		}
		b.combine(i, j)
	}
}

func (b *Board) findStickingPair() (int, int, bool) {
	for i, pi := range b.Polyominoes {
		for _, pos := range pi.AbsolutePositions() {
			ti, _ := pi.TileAt(pos)
			for _, d := range Directions {
				nb := pos.Add(d.Vector())
				j, ok := b.tileAt[nb]
				if !ok || j == i {
					continue
				}
				tj, _ := b.Polyominoes[j].TileAt(nb)
				if b.Rules.Sticks(ti.Glues.On(d), tj.Glues.On(d.Inverse())) {
					return i, j, true
				}
			}
		}
	}
	return 0, 0, false
}

// combine merges polyominoes at indices i and j (i != j) into one,
// survivor chosen by smaller anchor position, and removes the other from
// b.Polyominoes.
func (b *Board) combine(i, j int) {
	if i > j {
		i, j = j, i
	}
	a, bb := b.Polyominoes[i], b.Polyominoes[j]
	survivor, absorbed := a, bb
	if !pointLess(survivor.Position, absorbed.Position) {
		survivor, absorbed = bb, a
	}

	for _, pos := range absorbed.AbsolutePositions() {
		t, _ := absorbed.TileAt(pos)
		survivor.Tiles[pos.Sub(survivor.Position)] = t
		t.poly = survivor
		t.Pos = pos
	}
	survivor.Normalize()
	survivor.CanReach = survivor.CanReach || absorbed.CanReach

	if b.Anchored != nil && (b.Anchored[a] || b.Anchored[bb]) {
		b.Anchored[survivor] = true
	}
	delete(b.Anchored, absorbed)

	b.Polyominoes = append(b.Polyominoes[:j], b.Polyominoes[j+1:]...)
	b.reindex()
}

func pointLess(a, bpt Point) bool {
	if a.Y != bpt.Y {
		return a.Y < bpt.Y
	}
	return a.X < bpt.X
}

// SortedPolyominoes returns the board's polyominoes ordered by anchor
// position, used anywhere output needs to be deterministic (hashing,
// JSON serialization).
func (b *Board) SortedPolyominoes() []*Polyomino {
	out := make([]*Polyomino, len(b.Polyominoes))
	copy(out, b.Polyominoes)
	sort.Slice(out, func(i, j int) bool { return pointLess(out[i].Position, out[j].Position) })
	return out
}

// Clone deep-copies the board, including its polyominoes and tile index.
func (b *Board) Clone() *Board {
	nb := NewBoard(b.Width, b.Height, b.Rules)
	for pos := range b.Concrete {
		nb.Concrete[pos] = true
	}
	for _, p := range b.Polyominoes {
		nb.AddPolyomino(p.Clone())
	}
	return nb
}
