package graph

import "github.com/hailam/tiltmp/internal/board"

// IsConnectedByGlues reports whether poly is a single glue-connected
// component under rules (every tile reachable from every other by
// hopping across sticking edges, not merely by rigid tilt-adjacency).
func IsConnectedByGlues(poly *board.Polyomino, rules board.GlueRules) bool {
	return poly.GlueConnected(rules)
}

// LargestGlueConnectedComponent returns the absolute positions of the
// largest glue-connected subset of poly's tiles under rules.
func LargestGlueConnectedComponent(poly *board.Polyomino, rules board.GlueRules) []board.Point {
	unvisited := make(map[board.Point]bool, len(poly.Tiles))
	for off := range poly.Tiles {
		unvisited[off] = true
	}

	var best []board.Point
	for len(unvisited) > 0 {
		var start board.Point
		for p := range unvisited {
			start = p
			break
		}
		comp := glueComponent(poly, rules, start)
		for _, p := range comp {
			delete(unvisited, p)
		}
		if len(comp) > len(best) {
			abs := make([]board.Point, len(comp))
			for i, off := range comp {
				abs[i] = poly.Position.Add(off)
			}
			best = abs
		}
	}
	return best
}

func glueComponent(poly *board.Polyomino, rules board.GlueRules, start board.Point) []board.Point {
	seen := map[board.Point]bool{start: true}
	queue := []board.Point{start}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		t := poly.Tiles[cur]
		for _, d := range board.Directions {
			nb := cur.Add(d.Vector())
			nt, ok := poly.Tiles[nb]
			if !ok || seen[nb] {
				continue
			}
			if rules.Sticks(t.Glues.On(d), nt.Glues.On(d.Inverse())) {
				seen[nb] = true
				queue = append(queue, nb)
			}
		}
	}
	out := make([]board.Point, 0, len(seen))
	for p := range seen {
		out = append(out, p)
	}
	return out
}
