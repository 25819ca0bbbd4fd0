// Package pruner implements the declarative predicates the search engine
// consults after every candidate move: a pruner that reports true for a
// state means that state can provably never reach the target shape, so
// the search engine discards it without expanding further.
package pruner

import (
	"github.com/hailam/tiltmp/internal/board"
	"github.com/hailam/tiltmp/internal/graph"
)

// Pruner decides whether a board state is a dead end.
type Pruner interface {
	// Setup is called once per search with the fixed target shape
	// (absolute positions) before any IsPrunable calls.
	Setup(target []board.Point)
	IsPrunable(b *board.Board) bool
}

// countFreeTiles returns the number of tiles on the board that are not
// already sitting in target.
func countFreeTiles(b *board.Board, target map[board.Point]bool) int {
	n := 0
	for _, p := range b.Polyominoes {
		for _, pos := range p.AbsolutePositions() {
			if !target[pos] {
				n++
			}
		}
	}
	return n
}

func countUnfilled(b *board.Board, target map[board.Point]bool) int {
	n := 0
	for p := range target {
		if !b.Occupied(p) {
			n++
		}
	}
	return n
}

func targetSet(target []board.Point) map[board.Point]bool {
	m := make(map[board.Point]bool, len(target))
	for _, p := range target {
		m[p] = true
	}
	return m
}

// NotEnoughTiles prunes a state once the tiles still off-target can no
// longer possibly fill the remaining empty target cells, i.e. more empty
// target cells remain than there are tiles left to place. NoLeftovers
// additionally requires an exact match (no spare tiles at the end either).
type NotEnoughTiles struct {
	NoLeftovers bool
	target      map[board.Point]bool
}

func (p *NotEnoughTiles) Setup(target []board.Point) { p.target = targetSet(target) }
func (p *NotEnoughTiles) IsPrunable(b *board.Board) bool {
	free := countFreeTiles(b, p.target)
	unfilled := countUnfilled(b, p.target)
	if free < unfilled {
		return true
	}
	if p.NoLeftovers && free != unfilled {
		return true
	}
	return false
}

// Packing prunes a state once the free-floating polyominoes, however
// they are eventually combined and moved, cannot exactly tile the
// remaining unfilled target cells (NoLeftovers requires an exact tiling;
// non-NoLeftovers mode never triggers this pruner, since leftover tiles
// are allowed and a packing failure there isn't necessarily fatal).
type Packing struct {
	NoLeftovers bool
	target      map[board.Point]bool
}

func (p *Packing) Setup(target []board.Point) { p.target = targetSet(target) }
func (p *Packing) IsPrunable(b *board.Board) bool {
	if !p.NoLeftovers {
		return false
	}
	var remaining []board.Point
	for t := range p.target {
		if !b.Occupied(t) {
			remaining = append(remaining, t)
		}
	}
	if len(remaining) == 0 {
		return false
	}
	var shapes []graph.Shape
	for _, poly := range b.Polyominoes {
		onTarget := false
		for _, pos := range poly.AbsolutePositions() {
			if p.target[pos] {
				onTarget = true
				break
			}
		}
		if onTarget {
			continue
		}
		offsets := make([]board.Point, 0, poly.Size())
		for off := range poly.Tiles {
			offsets = append(offsets, off)
		}
		shapes = append(shapes, graph.NormalizeShape(offsets))
	}
	return !graph.IsPackable(remaining, shapes)
}

// TargetUnreachable prunes a state once some still-empty target cell can
// no longer be reached by any free tile given the current walls and
// placed polyominoes (a tile trapped on the wrong side of a completed
// wall can never cross it).
type TargetUnreachable struct {
	target map[board.Point]bool
}

func (p *TargetUnreachable) Setup(target []board.Point) { p.target = targetSet(target) }
func (p *TargetUnreachable) IsPrunable(b *board.Board) bool {
	blocked := map[board.Point]bool{}
	for pos := range b.Concrete {
		blocked[pos] = true
	}
	for _, poly := range b.Polyominoes {
		for _, pos := range poly.AbsolutePositions() {
			if !p.target[pos] {
				blocked[pos] = true
			}
		}
	}
	var freeTiles []board.Point
	for _, poly := range b.Polyominoes {
		for _, pos := range poly.AbsolutePositions() {
			if !p.target[pos] {
				freeTiles = append(freeTiles, pos)
			}
		}
	}
	for t := range p.target {
		if b.Occupied(t) {
			continue
		}
		reached := false
		for _, ft := range freeTiles {
			delete(blocked, ft)
			ok := graph.IsReachable(b.Width, b.Height, blocked, ft, t)
			blocked[ft] = true
			if ok {
				reached = true
				break
			}
		}
		if !reached {
			return true
		}
	}
	return false
}

// WrongTilesCombined prunes a state where tiles have glued together
// across a target-cell boundary in a way that the target shape itself
// never calls for, i.e. a tile inside the target area is now rigidly
// attached to a tile outside it. Once glued, tilting can never separate
// them again, so this is an unrecoverable dead end.
type WrongTilesCombined struct {
	target map[board.Point]bool
}

func (p *WrongTilesCombined) Setup(target []board.Point) { p.target = targetSet(target) }
func (p *WrongTilesCombined) IsPrunable(b *board.Board) bool {
	for _, poly := range b.Polyominoes {
		hasInside, hasOutside := false, false
		for _, pos := range poly.AbsolutePositions() {
			if p.target[pos] {
				hasInside = true
			} else {
				hasOutside = true
			}
		}
		if hasInside && hasOutside {
			return true
		}
	}
	return false
}

// TilesGluedOutsideTargetArea prunes a state on an anchoring (FixedBoard)
// instance once a tile has become permanently anchored (glued to the
// fixed structure) at a position outside the target area: anchored tiles
// never move again, so an anchor landing outside the target can never be
// corrected.
type TilesGluedOutsideTargetArea struct {
	target map[board.Point]bool
}

func (p *TilesGluedOutsideTargetArea) Setup(target []board.Point) { p.target = targetSet(target) }
func (p *TilesGluedOutsideTargetArea) IsPrunable(b *board.Board) bool {
	if b.Anchored == nil {
		return false
	}
	for poly, anchored := range b.Anchored {
		if !anchored {
			continue
		}
		for _, pos := range poly.AbsolutePositions() {
			if !p.target[pos] {
				return true
			}
		}
	}
	return false
}
