package graph

import "github.com/hailam/tiltmp/internal/board"

// ReachableSet returns every grid cell reachable from start by hopping
// between orthogonally adjacent cells that are not in blocked, within a
// width x height grid. start itself is included when it is not blocked.
func ReachableSet(width, height int, blocked map[board.Point]bool, start board.Point) map[board.Point]bool {
	seen := make(map[board.Point]bool)
	if blocked[start] || !board.IsLegalIndex(start, width, height) {
		return seen
	}
	seen[start] = true
	queue := []board.Point{start}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		for _, nb := range board.DirectNeighbors(cur) {
			if seen[nb] || blocked[nb] || !board.IsLegalIndex(nb, width, height) {
				continue
			}
			seen[nb] = true
			queue = append(queue, nb)
		}
	}
	return seen
}

// BFSDistances returns the shortest hop-count from start to every cell
// reachable from it, under the same obstacle rules as ReachableSet.
func BFSDistances(width, height int, blocked map[board.Point]bool, start board.Point) map[board.Point]int {
	dist := map[board.Point]int{start: 0}
	if blocked[start] || !board.IsLegalIndex(start, width, height) {
		return map[board.Point]int{}
	}
	queue := []board.Point{start}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		for _, nb := range board.DirectNeighbors(cur) {
			if _, ok := dist[nb]; ok {
				continue
			}
			if blocked[nb] || !board.IsLegalIndex(nb, width, height) {
				continue
			}
			dist[nb] = dist[cur] + 1
			queue = append(queue, nb)
		}
	}
	return dist
}

// IsReachable reports whether goal is in the reachable set from start.
func IsReachable(width, height int, blocked map[board.Point]bool, start, goal board.Point) bool {
	return ReachableSet(width, height, blocked, start)[goal]
}

// NearestTile returns the closest point to start (by BFS hop distance)
// among candidates, and its distance. Returns ok=false if none of the
// candidates are reachable.
func NearestTile(width, height int, blocked map[board.Point]bool, start board.Point, candidates []board.Point) (board.Point, int, bool) {
	dist := BFSDistances(width, height, blocked, start)
	best := board.Point{}
	bestDist := -1
	for _, c := range candidates {
		d, ok := dist[c]
		if !ok {
			continue
		}
		if bestDist == -1 || d < bestDist {
			bestDist = d
			best = c
		}
	}
	return best, bestDist, bestDist != -1
}

// DistanceToArea returns the minimum BFS distance from start to any point
// in area, or ok=false if area is unreachable entirely.
func DistanceToArea(width, height int, blocked map[board.Point]bool, start board.Point, area map[board.Point]bool) (int, bool) {
	dist := BFSDistances(width, height, blocked, start)
	best := -1
	for p := range area {
		if d, ok := dist[p]; ok && (best == -1 || d < best) {
			best = d
		}
	}
	return best, best != -1
}
