package board

import (
	"hash/fnv"
	"sort"
)

// CanonicalHash returns a hash of the board's layout that is independent
// of polyomino iteration order, so two boards reached via different move
// sequences but holding the same (position, glues) tile multiset hash
// equal. The search engine's visited-set and transposition-style dominance
// checks rely on this.
func (b *Board) CanonicalHash() uint64 {
	type entry struct {
		pos   Point
		glues Glues
	}
	entries := make([]entry, 0, len(b.tileAt))
	for _, p := range b.Polyominoes {
		for off, t := range p.Tiles {
			entries = append(entries, entry{pos: p.Position.Add(off), glues: t.Glues})
		}
	}
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].pos.Y != entries[j].pos.Y {
			return entries[i].pos.Y < entries[j].pos.Y
		}
		return entries[i].pos.X < entries[j].pos.X
	})

	h := fnv.New64a()
	var buf [8]byte
	writeInt := func(n int) {
		v := uint64(int64(n))
		for i := range buf {
			buf[i] = byte(v >> (8 * i))
		}
		h.Write(buf[:])
	}
	for _, e := range entries {
		writeInt(e.pos.X)
		writeInt(e.pos.Y)
		h.Write([]byte(e.glues.North))
		h.Write([]byte{0})
		h.Write([]byte(e.glues.East))
		h.Write([]byte{0})
		h.Write([]byte(e.glues.South))
		h.Write([]byte{0})
		h.Write([]byte(e.glues.West))
		h.Write([]byte{0})
	}
	return h.Sum64()
}
