package graph

import (
	"container/heap"

	"github.com/hailam/tiltmp/internal/board"
)

type pathQueueEntry struct {
	pos      board.Point
	priority int
	seq      int
}

type pathQueue []pathQueueEntry

func (q pathQueue) Len() int { return len(q) }
func (q pathQueue) Less(i, j int) bool {
	if q[i].priority != q[j].priority {
		return q[i].priority < q[j].priority
	}
	return q[i].seq < q[j].seq
}
func (q pathQueue) Swap(i, j int)       { q[i], q[j] = q[j], q[i] }
func (q *pathQueue) Push(x interface{}) { *q = append(*q, x.(pathQueueEntry)) }
func (q *pathQueue) Pop() interface{} {
	old := *q
	n := len(old)
	item := old[n-1]
	*q = old[:n-1]
	return item
}

// ShortestPath finds the shortest path from start to goal on a
// width x height grid avoiding blocked cells, using A* with the taxicab
// distance as an admissible heuristic (moves are unit orthogonal steps,
// so taxicab distance never overestimates). Ties are broken by insertion
// order for determinism.
func ShortestPath(width, height int, blocked map[board.Point]bool, start, goal board.Point) ([]board.Point, error) {
	if blocked[start] || blocked[goal] {
		return nil, ErrUnreachable
	}
	cameFrom := map[board.Point]board.Point{}
	gScore := map[board.Point]int{start: 0}

	pq := &pathQueue{{pos: start, priority: board.TaxicabDistance(start, goal), seq: 0}}
	heap.Init(pq)
	seq := 1
	visited := map[board.Point]bool{}

	for pq.Len() > 0 {
		cur := heap.Pop(pq).(pathQueueEntry).pos
		if visited[cur] {
			continue
		}
		visited[cur] = true
		if cur == goal {
			return reconstructPath(cameFrom, start, goal), nil
		}
		for _, nb := range board.DirectNeighbors(cur) {
			if blocked[nb] || !board.IsLegalIndex(nb, width, height) || visited[nb] {
				continue
			}
			tentative := gScore[cur] + 1
			if g, ok := gScore[nb]; ok && g <= tentative {
				continue
			}
			gScore[nb] = tentative
			cameFrom[nb] = cur
			heap.Push(pq, pathQueueEntry{pos: nb, priority: tentative + board.TaxicabDistance(nb, goal), seq: seq})
			seq++
		}
	}
	return nil, ErrUnreachable
}

// PathExists reports whether a path from start to goal exists under the
// given obstacles, without reconstructing it.
func PathExists(width, height int, blocked map[board.Point]bool, start, goal board.Point) bool {
	_, err := ShortestPath(width, height, blocked, start, goal)
	return err == nil
}

func reconstructPath(cameFrom map[board.Point]board.Point, start, goal board.Point) []board.Point {
	path := []board.Point{goal}
	cur := goal
	for cur != start {
		prev, ok := cameFrom[cur]
		if !ok {
			break
		}
		path = append(path, prev)
		cur = prev
	}
	// reverse
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path
}
