package rrt

import (
	"github.com/hailam/tiltmp/internal/board"
	"github.com/hailam/tiltmp/internal/graph"
)

// DistanceToTarget estimates whether a configuration can assemble target
// at all: it sorts the polyominoes by the taxicab distance of their
// nearest tile to the target's centroid, then grows a prefix of them one
// polyomino at a time, testing at each size whether the shapes in that
// prefix exactly tile target. graph.IsPackable only accepts a prefix whose
// tile count equals len(target), so the result is 0 when some prefix
// succeeds and -1 when none does; it never reports a positive count of
// extra tiles. rules is not consulted.
func DistanceToTarget(cfg Configuration, target []board.Point, rules board.GlueRules) int {
	center := centroid(target)
	order := sortedPolyominoesByDistance(cfg, center)

	for n := 1; n <= len(order); n++ {
		shapes := make([]graph.Shape, 0, n)
		for _, poly := range order[:n] {
			shapes = append(shapes, graph.NormalizeShape(poly))
		}
		if graph.IsPackable(target, shapes) {
			extra := 0
			for _, poly := range order[:n] {
				extra += len(poly)
			}
			return extra - len(target)
		}
	}
	return -1
}

func centroid(points []board.Point) board.Point {
	if len(points) == 0 {
		return board.Point{}
	}
	sx, sy := 0, 0
	for _, p := range points {
		sx += p.X
		sy += p.Y
	}
	return board.Point{X: sx / len(points), Y: sy / len(points)}
}

func sortedPolyominoesByDistance(cfg Configuration, ref board.Point) [][]board.Point {
	out := make([][]board.Point, len(cfg.Polyominoes))
	copy(out, cfg.Polyominoes)
	dist := func(poly []board.Point) int {
		best := 1 << 30
		for _, p := range poly {
			if d := board.TaxicabDistance(p, ref); d < best {
				best = d
			}
		}
		return best
	}
	for i := 1; i < len(out); i++ {
		j := i
		for j > 0 && dist(out[j-1]) > dist(out[j]) {
			out[j-1], out[j] = out[j], out[j-1]
			j--
		}
	}
	return out
}
