package search

import "github.com/hailam/tiltmp/internal/board"

// Node is one state in the search tree: a board snapshot reached from its
// parent by one tilt. Nodes retain a pointer to their parent (not a full
// copy of every ancestor state) so a solution's control sequence is
// reconstructed by walking parents backward, mirroring how a transposition
// table entry only needs to remember the move that produced it.
type Node struct {
	State    board.BoardState
	Parent   *Node
	LastMove board.Direction
	Depth    int
	Hash     uint64

	// seq is a monotonic sequence number assigned at node creation,
	// letting the best-first planner's priority queue break heuristic
	// ties by insertion order instead of relying on whatever order the
	// underlying heap happens to visit equal-priority entries in.
	seq int
}

// ControlSequence reconstructs the sequence of tilts from the root to n.
func (n *Node) ControlSequence() []board.Direction {
	var moves []board.Direction
	for cur := n; cur.Parent != nil; cur = cur.Parent {
		moves = append(moves, cur.LastMove)
	}
	for i, j := 0, len(moves)-1; i < j; i, j = i+1, j-1 {
		moves[i], moves[j] = moves[j], moves[i]
	}
	return moves
}
