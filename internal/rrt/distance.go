package rrt

import (
	"math"
	"sort"

	"github.com/hailam/tiltmp/internal/board"
)

// DistanceMetric scores how far apart two configurations are. All
// metrics here return +Inf when PolyominoesMatch fails, since position
// alone cannot meaningfully compare configurations with different rigid
// groupings.
type DistanceMetric interface {
	Distance(a, b Configuration) float64
}

func edgeWeight(p, q board.Point) int { return board.TaxicabDistance(p, q) }

// HausdorffDistance is the classic two-sided Hausdorff distance between
// the tile sets: the worst-served tile in either configuration, measured
// against its nearest counterpart in the other.
type HausdorffDistance struct{}

func (HausdorffDistance) Distance(a, b Configuration) float64 {
	if !PolyominoesMatch(a, b) {
		return math.Inf(1)
	}
	return math.Max(oneSidedHausdorff(a.AllTiles(), b.AllTiles()), oneSidedHausdorff(b.AllTiles(), a.AllTiles()))
}

func oneSidedHausdorff(from, to []board.Point) float64 {
	worst := 0.0
	for _, p := range from {
		best := math.Inf(1)
		for _, q := range to {
			if d := float64(edgeWeight(p, q)); d < best {
				best = d
			}
		}
		if best > worst {
			worst = best
		}
	}
	return worst
}

// bipartiteMatching runs Kuhn's augmenting-path algorithm restricted to
// edges with weight <= maxWeight, returning whether a perfect matching
// (every left vertex matched) exists.
func bipartiteMatching(left, right []board.Point, maxWeight int) bool {
	n := len(left)
	matchRight := make([]int, len(right))
	for i := range matchRight {
		matchRight[i] = -1
	}
	var tryAugment func(u int, visited []bool) bool
	tryAugment = func(u int, visited []bool) bool {
		for v := range right {
			if visited[v] || edgeWeight(left[u], right[v]) > maxWeight {
				continue
			}
			visited[v] = true
			if matchRight[v] == -1 || tryAugment(matchRight[v], visited) {
				matchRight[v] = u
				return true
			}
		}
		return false
	}
	matched := 0
	for u := 0; u < n; u++ {
		visited := make([]bool, len(right))
		if tryAugment(u, visited) {
			matched++
		}
	}
	return matched == n
}

// BottleneckMatching minimizes the largest edge weight in a perfect
// matching between the two tile sets, found by binary search over the
// sorted candidate weights and a feasibility check at each one.
type BottleneckMatching struct{}

func (BottleneckMatching) Distance(a, b Configuration) float64 {
	if !PolyominoesMatch(a, b) {
		return math.Inf(1)
	}
	left, right := a.AllTiles(), b.AllTiles()
	if len(left) != len(right) {
		return math.Inf(1)
	}
	if len(left) == 0 {
		return 0
	}
	weights := candidateWeights(left, right)
	lo, hi := 0, len(weights)-1
	for lo < hi {
		mid := (lo + hi) / 2
		if bipartiteMatching(left, right, weights[mid]) {
			hi = mid
		} else {
			lo = mid + 1
		}
	}
	return float64(weights[lo])
}

func candidateWeights(left, right []board.Point) []int {
	set := make(map[int]bool)
	for _, p := range left {
		for _, q := range right {
			set[edgeWeight(p, q)] = true
		}
	}
	out := make([]int, 0, len(set))
	for w := range set {
		out = append(out, w)
	}
	sort.Ints(out)
	return out
}

// BottleneckWeightedSum reports the total weight of the matching that
// minimizes the bottleneck edge, combining robustness to one outlier tile
// with sensitivity to the rest of the configuration.
type BottleneckWeightedSum struct{}

func (BottleneckWeightedSum) Distance(a, b Configuration) float64 {
	if !PolyominoesMatch(a, b) {
		return math.Inf(1)
	}
	left, right := a.AllTiles(), b.AllTiles()
	if len(left) != len(right) {
		return math.Inf(1)
	}
	bottleneck := BottleneckMatching{}.Distance(a, b)
	if math.IsInf(bottleneck, 1) {
		return bottleneck
	}
	sum := 0.0
	matched := greedyAssignmentWithinBound(left, right, int(bottleneck))
	for i, j := range matched {
		sum += float64(edgeWeight(left[i], right[j]))
	}
	return sum
}

func greedyAssignmentWithinBound(left, right []board.Point, bound int) []int {
	type edge struct{ i, j, w int }
	var edges []edge
	for i, p := range left {
		for j, q := range right {
			if w := edgeWeight(p, q); w <= bound {
				edges = append(edges, edge{i, j, w})
			}
		}
	}
	sort.Slice(edges, func(a, b int) bool { return edges[a].w < edges[b].w })
	matched := make([]int, len(left))
	for i := range matched {
		matched[i] = -1
	}
	usedRight := make([]bool, len(right))
	remaining := len(left)
	for _, e := range edges {
		if remaining == 0 {
			break
		}
		if matched[e.i] != -1 || usedRight[e.j] {
			continue
		}
		matched[e.i] = e.j
		usedRight[e.j] = true
		remaining--
	}
	return matched
}

// GreedyBottleneck is a cheap approximation to BottleneckMatching: it
// greedily assigns the globally shortest remaining edge first, without
// ever reconsidering an earlier choice, trading optimality for an O(n^2
// log n) instead of a binary-search-over-matchings cost.
type GreedyBottleneck struct{}

func (GreedyBottleneck) Distance(a, b Configuration) float64 {
	if !PolyominoesMatch(a, b) {
		return math.Inf(1)
	}
	left, right := a.AllTiles(), b.AllTiles()
	if len(left) != len(right) {
		return math.Inf(1)
	}
	if len(left) == 0 {
		return 0
	}
	type edge struct{ i, j, w int }
	edges := make([]edge, 0, len(left)*len(right))
	for i, p := range left {
		for j, q := range right {
			edges = append(edges, edge{i, j, edgeWeight(p, q)})
		}
	}
	sort.Slice(edges, func(a, b int) bool { return edges[a].w < edges[b].w })

	usedLeft := make([]bool, len(left))
	usedRight := make([]bool, len(right))
	worst := 0
	remaining := len(left)
	for _, e := range edges {
		if remaining == 0 {
			break
		}
		if usedLeft[e.i] || usedRight[e.j] {
			continue
		}
		usedLeft[e.i] = true
		usedRight[e.j] = true
		remaining--
		if e.w > worst {
			worst = e.w
		}
	}
	return float64(worst)
}
