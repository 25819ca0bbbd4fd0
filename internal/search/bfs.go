package search

import (
	"log"

	"github.com/hailam/tiltmp/internal/board"
	"github.com/hailam/tiltmp/internal/pruner"
)

// BFSPlanner explores every reachable state in breadth-first order,
// guaranteeing a shortest control sequence when one exists, at the cost
// of exploring far more states than a heuristic-guided search on large
// instances.
type BFSPlanner struct {
	Stop     StopCondition
	Pruners  []pruner.Pruner
	Deadline *Deadline

	NodesExpanded int
}

// NewBFSPlanner builds a planner with the given stop condition and
// pruners, all of which are Setup with target before the first Solve.
func NewBFSPlanner(stop StopCondition, pruners []pruner.Pruner) *BFSPlanner {
	return &BFSPlanner{Stop: stop, Pruners: pruners}
}

// Solve searches from start toward target, returning the winning node's
// control sequence. Returns ErrSolverTimeout if the deadline elapses
// before a solution is found, and also when every reachable state has
// been explored without finding one.
func (p *BFSPlanner) Solve(start *board.Board, target []board.Point, deadline *Deadline) ([]board.Direction, error) {
	p.Deadline = deadline
	for _, pr := range p.Pruners {
		pr.Setup(target)
	}

	root := &Node{State: start.Snapshot(), Hash: start.CanonicalHash()}
	visited := map[uint64]bool{root.Hash: true}
	queue := []*Node{root}
	seq := 1

	working := start.Clone()

	for len(queue) > 0 {
		if p.Deadline != nil && p.Deadline.Expired() {
			log.Printf("[search] bfs: deadline expired after %d nodes", p.NodesExpanded)
			return nil, ErrSolverTimeout
		}
		cur := queue[0]
		queue = queue[1:]
		p.NodesExpanded++

		working.Restore(cur.State)
		if p.Stop.Satisfied(working, target) {
			moves := cur.ControlSequence()
			if c, ok := p.Stop.(CompletionStopCondition); ok {
				moves = append(moves, c.CompletionMoves(working, target)...)
			}
			return moves, nil
		}

		for _, d := range board.Directions {
			working.Restore(cur.State)
			working.Tilt(d)
			h := working.CanonicalHash()
			if visited[h] {
				continue
			}
			if p.isPruned(working) {
				continue
			}
			visited[h] = true
			child := &Node{State: working.Snapshot(), Parent: cur, LastMove: d, Depth: cur.Depth + 1, Hash: h, seq: seq}
			seq++
			queue = append(queue, child)
		}
	}
	return nil, ErrSolverTimeout
}

func (p *BFSPlanner) isPruned(b *board.Board) bool {
	for _, pr := range p.Pruners {
		if pr.IsPrunable(b) {
			return true
		}
	}
	return false
}
