package search

import (
	"container/heap"
	"log"

	"github.com/hailam/tiltmp/internal/board"
	"github.com/hailam/tiltmp/internal/heuristic"
	"github.com/hailam/tiltmp/internal/pruner"
)

type bestFirstEntry struct {
	node     *Node
	priority float64
}

type bestFirstQueue []bestFirstEntry

func (q bestFirstQueue) Len() int { return len(q) }
func (q bestFirstQueue) Less(i, j int) bool {
	if q[i].priority != q[j].priority {
		return q[i].priority < q[j].priority
	}
	// Lower sequence number (inserted earlier) wins ties, giving
	// deterministic output independent of Go's unstable heap internals.
	return q[i].node.seq < q[j].node.seq
}
func (q bestFirstQueue) Swap(i, j int)       { q[i], q[j] = q[j], q[i] }
func (q *bestFirstQueue) Push(x interface{}) { *q = append(*q, x.(bestFirstEntry)) }
func (q *bestFirstQueue) Pop() interface{} {
	old := *q
	n := len(old)
	item := old[n-1]
	*q = old[:n-1]
	return item
}

// BestFirstPlanner expands the most promising node first, ordered A*-style
// by depth plus the Heuristic's estimate, discarding states that earlier, cheaper-to-reach
// states have already dominated (same canonical layout, lower or equal
// depth). MaxNodes bounds the search so a caller can let it fail
// gracefully with its best effort instead of running unbounded.
type BestFirstPlanner struct {
	Stop      StopCondition
	Pruners   []pruner.Pruner
	Heuristic heuristic.Heuristic
	MaxNodes  int

	NodesExpanded int
	BestNode      *Node
	bestScore     float64
}

func NewBestFirstPlanner(stop StopCondition, pruners []pruner.Pruner, h heuristic.Heuristic) *BestFirstPlanner {
	return &BestFirstPlanner{Stop: stop, Pruners: pruners, Heuristic: h}
}

// Solve searches from start toward target. On timeout or exhaustion it
// returns ErrSolverTimeout but leaves BestNode populated with the closest
// state found, so callers can report partial progress.
func (p *BestFirstPlanner) Solve(start *board.Board, target []board.Point, deadline *Deadline) ([]board.Direction, error) {
	for _, pr := range p.Pruners {
		pr.Setup(target)
	}

	working := start.Clone()
	root := &Node{State: start.Snapshot(), Hash: start.CanonicalHash()}
	p.bestScore = p.Heuristic.Evaluate(working, target)
	p.BestNode = root

	score := map[uint64]int{root.Hash: 0}
	pq := &bestFirstQueue{{node: root, priority: p.bestScore}}
	heap.Init(pq)
	seq := 1

	for pq.Len() > 0 {
		if deadline != nil && deadline.Expired() {
			log.Printf("[search] bestfirst: deadline expired after %d nodes, best score %.2f", p.NodesExpanded, p.bestScore)
			return nil, ErrSolverTimeout
		}
		if p.MaxNodes > 0 && p.NodesExpanded >= p.MaxNodes {
			log.Printf("[search] bestfirst: node budget %d exhausted, best score %.2f", p.MaxNodes, p.bestScore)
			return nil, ErrSolverTimeout
		}

		cur := heap.Pop(pq).(bestFirstEntry).node
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
			if p.isPruned(working) {
				continue
			}
			depth := cur.Depth + 1
			if prev, ok := score[h]; ok && prev <= depth {
				continue
			}
			score[h] = depth
			val := p.Heuristic.Evaluate(working, target)
			child := &Node{State: working.Snapshot(), Parent: cur, LastMove: d, Depth: depth, Hash: h, seq: seq}
			seq++
			heap.Push(pq, bestFirstEntry{node: child, priority: float64(depth) + val})
			if val < p.bestScore {
				p.bestScore = val
				p.BestNode = child
			}
		}
	}
	return nil, ErrSolverTimeout
}

func (p *BestFirstPlanner) isPruned(b *board.Board) bool {
	for _, pr := range p.Pruners {
		if pr.IsPrunable(b) {
			return true
		}
	}
	return false
}
