package search

import (
	"github.com/hailam/tiltmp/internal/board"
	"github.com/hailam/tiltmp/internal/graph"
)

// StopCondition decides whether a board state counts as a solution.
type StopCondition interface {
	Satisfied(b *board.Board, target []board.Point) bool
}

// CompletionStopCondition is implemented by stop conditions whose
// Satisfied check leaves extra moves to append to the winning control
// sequence once a match is found — for instance, sliding the finished
// shape from wherever it landed onto the target's own anchor.
type CompletionStopCondition interface {
	StopCondition
	// CompletionMoves returns the trailing moves to append after
	// Satisfied has just returned true for the same b and target.
	CompletionMoves(b *board.Board, target []board.Point) []board.Direction
}

// targetAnchor returns target's minimum corner, the position a matching
// polyomino's anchor must sit at to occupy target exactly.
func targetAnchor(target []board.Point) board.Point {
	min := target[0]
	for _, p := range target[1:] {
		if p.X < min.X {
			min.X = p.X
		}
		if p.Y < min.Y {
			min.Y = p.Y
		}
	}
	return min
}

// shapeMatches reports whether poly's own tile layout (already keyed by
// offset from its anchor) is the same shape as target's normalized
// offsets, regardless of where either currently sits on the board.
func shapeMatches(poly *board.Polyomino, shape graph.Shape) bool {
	if len(poly.Tiles) != len(shape) {
		return false
	}
	for _, off := range shape {
		if _, ok := poly.Tiles[off]; !ok {
			return false
		}
	}
	return true
}

// DefaultStopCondition is satisfied once a single Polyomino equal in
// shape to the target sits exactly at the target's anchor position —
// not merely once every target cell happens to be occupied by whatever
// tiles landed there.
type DefaultStopCondition struct{}

func (DefaultStopCondition) Satisfied(b *board.Board, target []board.Point) bool {
	shape := graph.NormalizeShape(target)
	anchor := targetAnchor(target)
	for _, poly := range b.Polyominoes {
		if poly.Position == anchor && shapeMatches(poly, shape) {
			return true
		}
	}
	return false
}

// NoLeftoversStopCondition is satisfied once some Polyomino equal in
// shape to the target sits anywhere within the target shape's reachable
// area (every anchor position the shape could occupy without colliding
// with a wall), and it is the only polyomino on the board, so it alone
// accounts for the whole tile supply. Once satisfied, the matching
// polyomino is remembered so CompletionMoves can plan the final slide
// onto the target's exact anchor.
type NoLeftoversStopCondition struct {
	targetArea map[board.Point]bool
	matched    *board.Polyomino
}

func (c *NoLeftoversStopCondition) Satisfied(b *board.Board, target []board.Point) bool {
	shape := graph.NormalizeShape(target)
	if c.targetArea == nil {
		c.targetArea = reachableAnchors(b, shape, targetAnchor(target))
	}
	if len(b.Polyominoes) != 1 {
		return false
	}
	poly := b.Polyominoes[0]
	if !c.targetArea[poly.Position] || !shapeMatches(poly, shape) {
		return false
	}
	c.matched = poly
	return true
}

// CompletionMoves plans the shortest anchor-to-anchor slide, ignoring
// tilt physics (there is nothing left to collide with once NoLeftovers
// is satisfied), from the matched polyomino's current anchor to the
// target's own anchor.
func (c *NoLeftoversStopCondition) CompletionMoves(b *board.Board, target []board.Point) []board.Direction {
	if c.matched == nil {
		return nil
	}
	shape := graph.NormalizeShape(target)
	anchor := targetAnchor(target)
	path, ok := shapeAnchorPath(b, shape, c.matched.Position, anchor)
	if !ok {
		return nil
	}
	return anchorPathToDirections(path)
}

// AnchoringStopCondition is satisfied once every target cell is occupied
// by a permanently anchored tile, the completion condition for
// fixed-tile (FixedBoard) instances.
type AnchoringStopCondition struct{}

func (AnchoringStopCondition) Satisfied(b *board.Board, target []board.Point) bool {
	for _, p := range target {
		if !b.IsAnchored(p) {
			return false
		}
	}
	return true
}

// shapeFitsAt reports whether every cell of shape, translated to anchor,
// lies in bounds and off concrete. It deliberately ignores other tiles:
// the area a shape could occupy is a property of the board's walls
// alone, not of what else currently sits on it.
func shapeFitsAt(b *board.Board, shape graph.Shape, anchor board.Point) bool {
	for _, off := range shape {
		p := anchor.Add(off)
		if !board.IsLegalIndex(p, b.Width, b.Height) {
			return false
		}
		if b.Concrete[p] {
			return false
		}
	}
	return true
}

// reachableAnchors floods out from start (normally the target's own
// anchor) over every anchor position shape could occupy, one direct step
// at a time.
func reachableAnchors(b *board.Board, shape graph.Shape, start board.Point) map[board.Point]bool {
	seen := make(map[board.Point]bool)
	if !shapeFitsAt(b, shape, start) {
		return seen
	}
	seen[start] = true
	queue := []board.Point{start}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		for _, nb := range board.DirectNeighbors(cur) {
			if seen[nb] || !shapeFitsAt(b, shape, nb) {
				continue
			}
			seen[nb] = true
			queue = append(queue, nb)
		}
	}
	return seen
}

// shapeAnchorPath finds a shortest sequence of anchor positions from
// start to goal, stepping one cell at a time, such that shape fits at
// every position along the way.
func shapeAnchorPath(b *board.Board, shape graph.Shape, start, goal board.Point) ([]board.Point, bool) {
	if !shapeFitsAt(b, shape, start) || !shapeFitsAt(b, shape, goal) {
		return nil, false
	}
	cameFrom := map[board.Point]board.Point{start: start}
	queue := []board.Point{start}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		if cur == goal {
			return reconstructAnchorPath(cameFrom, start, goal), true
		}
		for _, nb := range board.DirectNeighbors(cur) {
			if _, ok := cameFrom[nb]; ok || !shapeFitsAt(b, shape, nb) {
				continue
			}
			cameFrom[nb] = cur
			queue = append(queue, nb)
		}
	}
	return nil, false
}

func reconstructAnchorPath(cameFrom map[board.Point]board.Point, start, goal board.Point) []board.Point {
	path := []board.Point{goal}
	for cur := goal; cur != start; {
		prev := cameFrom[cur]
		path = append(path, prev)
		cur = prev
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path
}

// anchorPathToDirections converts consecutive anchor positions into the
// direction each step moved in.
func anchorPathToDirections(path []board.Point) []board.Direction {
	if len(path) <= 1 {
		return nil
	}
	out := make([]board.Direction, 0, len(path)-1)
	for i := 1; i < len(path); i++ {
		delta := path[i].Sub(path[i-1])
		for _, d := range board.Directions {
			if d.Vector() == delta {
				out = append(out, d)
				break
			}
		}
	}
	return out
}
