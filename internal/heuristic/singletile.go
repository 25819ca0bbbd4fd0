package heuristic

import (
	"context"
	"math"
	"time"

	"github.com/hailam/tiltmp/internal/board"
	"github.com/hailam/tiltmp/internal/graph"
)

// PreComputationTimeout bounds how long a single-tile heuristic's
// precompute phase is allowed to run; when it expires, the heuristic stops
// and keeps the partial distance map built so far.
const PreComputationTimeout = 600 * time.Second

// SingleTileHeuristic scores how far a single named tile is from
// contributing to the growing build-order assembly, used by the
// one-tile-at-a-time sub-planner (internal/search's singletile.go).
type SingleTileHeuristic interface {
	// PreCompute may build a cached distance map ahead of the search
	// proper; ctx carries PreComputationTimeout. Implementations that
	// need no precomputation treat this as a no-op.
	PreCompute(ctx context.Context, b *board.Board, targetArea []board.Point)
	Evaluate(b *board.Board, tile board.Point) float64
}

// DistanceToPolyomino scores a tile by its BFS distance to the Anchor
// cell of a designated growing polyomino.
type DistanceToPolyomino struct {
	Anchor board.Point
}

func (DistanceToPolyomino) PreCompute(context.Context, *board.Board, []board.Point) {}
func (h DistanceToPolyomino) Evaluate(b *board.Board, tile board.Point) float64 {
	blocked := blockedExcept(b, tile)
	delete(blocked, h.Anchor)
	dist := graph.BFSDistances(b.Width, b.Height, blocked, tile)
	d, ok := dist[h.Anchor]
	if !ok {
		return math.Inf(1)
	}
	return float64(d)
}

// DistanceToFixedDestination scores a tile by BFS distance to one
// specific assigned target cell.
type DistanceToFixedDestination struct {
	Destination board.Point
	// Greedy selects the cheaper taxicab estimate (which ignores walls and
	// tiles, so it never exceeds the BFS distance) instead of the exact BFS
	// distance, for large boards where a full BFS per candidate tile is too
	// slow.
	Greedy bool
}

func (DistanceToFixedDestination) PreCompute(context.Context, *board.Board, []board.Point) {}
func (h DistanceToFixedDestination) Evaluate(b *board.Board, tile board.Point) float64 {
	if h.Greedy {
		return float64(board.TaxicabDistance(tile, h.Destination))
	}
	blocked := blockedExcept(b, tile)
	dist := graph.BFSDistances(b.Width, b.Height, blocked, tile)
	d, ok := dist[h.Destination]
	if !ok {
		return math.Inf(1)
	}
	return float64(d)
}

// DistanceToPolyominoAndTargetArea extends DistanceToPolyomino by also
// rewarding tiles that land anywhere within MaxDistanceToTargetArea of the
// overall target area; the distance to the growing polyomino is scaled by
// weightingFactor before the target-area distance is added. The distance map over the (possibly large)
// target area is expensive enough to precompute once per search rather
// than per candidate tile.
type DistanceToPolyominoAndTargetArea struct {
	Anchor                  board.Point
	MaxDistanceToTargetArea int

	distanceMap map[board.Point]int
	weight      float64
}

const defaultMaxDistanceToTargetArea = 4

func (h *DistanceToPolyominoAndTargetArea) PreCompute(ctx context.Context, b *board.Board, targetArea []board.Point) {
	maxDist := h.MaxDistanceToTargetArea
	if maxDist <= 0 {
		maxDist = defaultMaxDistanceToTargetArea
	}
	h.weight = weightingFactor(len(targetArea))

	blocked := blockedCells(b)
	extended := make(map[board.Point]int, len(targetArea))
	queue := make([]board.Point, 0, len(targetArea))
	for _, p := range targetArea {
		if _, ok := extended[p]; !ok {
			extended[p] = 0
			queue = append(queue, p)
		}
	}
	for len(queue) > 0 {
		select {
		case <-ctx.Done():
			h.distanceMap = extended
			return
		default:
		}
		cur := queue[0]
		queue = queue[1:]
		if extended[cur] >= maxDist {
			continue
		}
		for _, nb := range board.DirectNeighbors(cur) {
			if blocked[nb] {
				continue
			}
			if _, ok := extended[nb]; ok {
				continue
			}
			extended[nb] = extended[cur] + 1
			queue = append(queue, nb)
		}
	}
	h.distanceMap = extended
}

// weightingFactor returns 2 ** ceil(log2(target area size)) (1 for an area
// of at most one cell). The target-area term added next to it is not capped
// by this factor: it can reach MaxDistanceToTargetArea, or the size of the
// distance map plus one for a tile outside the map.
func weightingFactor(targetAreaSize int) float64 {
	if targetAreaSize <= 1 {
		return 1
	}
	bits := 0
	for (1 << bits) < targetAreaSize {
		bits++
	}
	return float64(uint64(1) << bits)
}

func (h *DistanceToPolyominoAndTargetArea) Evaluate(b *board.Board, tile board.Point) float64 {
	blocked := blockedExcept(b, tile)
	delete(blocked, h.Anchor)
	dist := graph.BFSDistances(b.Width, b.Height, blocked, tile)
	anchorDist, ok := dist[h.Anchor]
	if !ok {
		return math.Inf(1)
	}
	areaDist := 0
	if h.distanceMap != nil {
		if d, ok := h.distanceMap[tile]; ok {
			areaDist = d
		} else {
			areaDist = len(h.distanceMap) + 1
		}
	}
	return float64(anchorDist)*h.weight + float64(areaDist)
}

func blockedCells(b *board.Board) map[board.Point]bool {
	blocked := make(map[board.Point]bool, len(b.Concrete))
	for p := range b.Concrete {
		blocked[p] = true
	}
	for _, poly := range b.Polyominoes {
		for _, p := range poly.AbsolutePositions() {
			blocked[p] = true
		}
	}
	return blocked
}

// blockedExcept is blockedCells with a single cell (the tile whose
// distance is being measured) carved out, so BFS can start from it even
// though it is itself a tile on the board.
func blockedExcept(b *board.Board, except board.Point) map[board.Point]bool {
	blocked := blockedCells(b)
	delete(blocked, except)
	return blocked
}
