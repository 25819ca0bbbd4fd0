package rrt

import (
	"log"

	"github.com/hailam/tiltmp/internal/board"
	"github.com/hailam/tiltmp/internal/search"
)

// DefaultGoalNodeBudget caps how many nodes a single goal-directed
// expansion burst may add before the explorer goes back to sampling a
// fresh random configuration, the way a pure best-first dash toward the
// goal is allowed to run for a while before the tree widens again.
const DefaultGoalNodeBudget = 50

// treeNode is one state in the explored tree; Moves is the (possibly
// multi-tilt) path from Parent to this node.
type treeNode struct {
	State  board.BoardState
	Parent *treeNode
	Moves  []board.Direction
}

func (n *treeNode) controlSequence() []board.Direction {
	var out []board.Direction
	for cur := n; cur.Parent != nil; cur = cur.Parent {
		out = append(cur.Moves, out...)
	}
	return out
}

// Explorer grows a tree of reachable configurations by alternately
// aiming straight at the goal and aiming at randomly sampled
// configurations, using Metric to decide which existing tree node to
// extend from and how.
type Explorer struct {
	Width, Height   int
	Rules           board.GlueRules
	Metric          DistanceMetric
	BiasProbability float64
	GoalNodeBudget  int
	Rand            *board.Rand
}

// Solve searches from start toward a board matching targetShape (offsets
// relative to an unspecified origin; only the configuration's shape is
// compared via PolyominoesMatch/DistanceMetric, not an absolute
// position) until deadline or an internal node cap is reached.
func (e *Explorer) Solve(start *board.Board, target Configuration, deadline *search.Deadline, maxNodes int) ([]board.Direction, error) {
	rng := e.Rand
	if rng == nil {
		rng = board.NewRand(board.DefaultSeed)
	}
	goalBudget := e.GoalNodeBudget
	if goalBudget <= 0 {
		goalBudget = DefaultGoalNodeBudget
	}

	root := &treeNode{State: start.Snapshot()}
	nodes := []*treeNode{root}
	working := start.Clone()

	nodeCount := 0
	for maxNodes <= 0 || nodeCount < maxNodes {
		if deadline != nil && deadline.Expired() {
			return nil, search.ErrSolverTimeout
		}

		if rng.Float64() < e.BiasProbability {
			if sol, ok := e.expandTowards(working, nodes, target, goalBudget, &nodeCount); ok {
				return sol, nil
			}
		} else {
			randomTarget := e.randomConfiguration(working)
			nearest := e.nearestNode(working, nodes, randomTarget)
			working.Restore(nearest.State)
			best, bestDist := board.Direction(0), -1.0
			found := false
			for _, d := range board.Directions {
				working.Restore(nearest.State)
				working.Tilt(d)
				cfg := FromBoard(working)
				dist := e.Metric.Distance(cfg, randomTarget)
				if !found || dist < bestDist {
					found = true
					best, bestDist = d, dist
				}
			}
			working.Restore(nearest.State)
			working.Tilt(best)
			child := &treeNode{State: working.Snapshot(), Parent: nearest, Moves: []board.Direction{best}}
			nodes = append(nodes, child)
			nodeCount++
		}
	}
	log.Printf("[rrt] exhausted node budget %d without reaching target", maxNodes)
	return nil, search.ErrSolverTimeout
}

// expandTowards greedily extends the tree node nearest to target, one
// tilt at a time, up to goalBudget tilts, stopping early on success.
func (e *Explorer) expandTowards(working *board.Board, nodes []*treeNode, target Configuration, goalBudget int, nodeCount *int) ([]board.Direction, bool) {
	cur := e.nearestNode(working, nodes, target)
	for i := 0; i < goalBudget; i++ {
		working.Restore(cur.State)
		cfg := FromBoard(working)
		if e.Metric.Distance(cfg, target) == 0 {
			return cur.controlSequence(), true
		}
		best, bestDist := board.Direction(0), -1.0
		found := false
		for _, d := range board.Directions {
			working.Restore(cur.State)
			working.Tilt(d)
			c := FromBoard(working)
			dist := e.Metric.Distance(c, target)
			if !found || dist < bestDist {
				found = true
				best, bestDist = d, dist
			}
		}
		working.Restore(cur.State)
		working.Tilt(best)
		child := &treeNode{State: working.Snapshot(), Parent: cur, Moves: []board.Direction{best}}
		*nodeCount++
		if e.Metric.Distance(FromBoard(working), target) == 0 {
			return child.controlSequence(), true
		}
		cur = child
	}
	return nil, false
}

func (e *Explorer) nearestNode(working *board.Board, nodes []*treeNode, target Configuration) *treeNode {
	var best *treeNode
	bestDist := -1.0
	for _, n := range nodes {
		working.Restore(n.State)
		d := e.Metric.Distance(FromBoard(working), target)
		if best == nil || d < bestDist {
			best = n
			bestDist = d
		}
	}
	return best
}

// randomConfiguration samples a uniformly random placement of the same
// tile multiset currently on working, used purely to pick an exploration
// direction; it need not be reachable itself.
func (e *Explorer) randomConfiguration(working *board.Board) Configuration {
	rng := e.Rand
	if rng == nil {
		rng = board.NewRand(board.DefaultSeed)
	}
	cfg := FromBoard(working)
	tiles := cfg.AllTiles()
	out := make([]board.Point, len(tiles))
	for i := range tiles {
		out[i] = board.Point{X: rng.Intn(e.Width), Y: rng.Intn(e.Height)}
	}
	polys := make([][]board.Point, 0, len(cfg.Polyominoes))
	idx := 0
	for _, p := range cfg.Polyominoes {
		polys = append(polys, out[idx:idx+len(p)])
		idx += len(p)
	}
	return Configuration{Polyominoes: polys}
}
