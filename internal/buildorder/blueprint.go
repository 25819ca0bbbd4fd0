package buildorder

import (
	"time"

	"github.com/hailam/tiltmp/internal/board"
)

// AttemptTimeout bounds a single backtracking attempt at assigning glue
// labels to the target shape; OverallTimeout bounds how long
// FindBlueprint keeps retrying with fresh randomization before giving up.
const (
	AttemptTimeout = 10 * time.Second
	OverallTimeout = 600 * time.Second
)

// Blueprint assigns the glue label touching each direction of every
// target cell, keyed by the cell's position within the target shape.
type Blueprint map[board.Point]board.Glues

// FindBlueprint searches for a glue assignment over target (a set of
// positions forming the shape to build) using only the glue types
// available in stock (label -> count remaining). Both edges of every
// interior seam between adjacent target cells get the same label; rules
// is not consulted, so a seam's label is not checked to stick to itself.
// Edges on the shape's outer boundary are left without glue. It retries
// with reshuffled candidate glues until AttemptTimeout is hit per attempt
// and OverallTimeout across all attempts.
func FindBlueprint(target []board.Point, stock map[board.GlueType]int, rules board.GlueRules, rng *board.Rand) (Blueprint, error) {
	deadline := time.Now().Add(OverallTimeout)
	targetSet := make(map[board.Point]bool, len(target))
	for _, p := range target {
		targetSet[p] = true
	}

	labels := make([]board.GlueType, 0, len(stock))
	for l := range stock {
		labels = append(labels, l)
	}

	for time.Now().Before(deadline) {
		rng.Shuffle(len(labels), func(i, j int) { labels[i], labels[j] = labels[j], labels[i] })

		bp := make(Blueprint, len(target))
		attemptDeadline := time.Now().Add(AttemptTimeout)
		used := make(map[board.GlueType]int, len(stock))
		if assignRecursive(target, 0, targetSet, bp, used, stock, labels, rules, attemptDeadline) {
			return bp, nil
		}
	}
	return nil, ErrUnsolvableBlueprint
}

func assignRecursive(order []board.Point, idx int, targetSet map[board.Point]bool, bp Blueprint, used map[board.GlueType]int, stock map[board.GlueType]int, labels []board.GlueType, rules board.GlueRules, deadline time.Time) bool {
	if time.Now().After(deadline) {
		return false
	}
	if idx == len(order) {
		return true
	}
	pos := order[idx]

	var glues board.Glues
	for _, d := range board.Directions {
		nb := pos.Add(d.Vector())
		if !targetSet[nb] {
			continue
		}
		// Reuse the label already committed on the neighbor's matching
		// edge if it has been assigned (neighbor processed earlier).
		if nbGlues, ok := bp[nb]; ok {
			if label := nbGlues.On(d.Inverse()); label != "" {
				glues = glues.WithEdge(d, label)
			}
		}
	}
	bp[pos] = glues

	if tryLabels(order, idx, targetSet, bp, used, stock, labels, rules, deadline) {
		return true
	}
	delete(bp, pos)
	return false
}

func tryLabels(order []board.Point, idx int, targetSet map[board.Point]bool, bp Blueprint, used map[board.GlueType]int, stock map[board.GlueType]int, labels []board.GlueType, rules board.GlueRules, deadline time.Time) bool {
	pos := order[idx]
	base := bp[pos]

	// Edges already pinned by an earlier neighbor are fixed; only the
	// remaining free edges need a candidate label.
	freeDirs := make([]board.Direction, 0, 4)
	for _, d := range board.Directions {
		if base.On(d) == "" {
			nb := pos.Add(d.Vector())
			if targetSet[nb] {
				freeDirs = append(freeDirs, d)
			}
		}
	}

	return assignFreeEdges(order, idx, freeDirs, 0, targetSet, bp, used, stock, labels, rules, deadline)
}

func assignFreeEdges(order []board.Point, idx int, freeDirs []board.Direction, fi int, targetSet map[board.Point]bool, bp Blueprint, used map[board.GlueType]int, stock map[board.GlueType]int, labels []board.GlueType, rules board.GlueRules, deadline time.Time) bool {
	if time.Now().After(deadline) {
		return false
	}
	pos := order[idx]
	if fi == len(freeDirs) {
		return assignRecursive(order, idx+1, targetSet, bp, used, stock, labels, rules, deadline)
	}
	d := freeDirs[fi]

	for _, label := range labels {
		if used[label] >= stock[label] {
			continue
		}
		cur := bp[pos]
		cur = cur.WithEdge(d, label)
		bp[pos] = cur
		used[label]++

		if assignFreeEdges(order, idx, freeDirs, fi+1, targetSet, bp, used, stock, labels, rules, deadline) {
			return true
		}

		used[label]--
		bp[pos] = bp[pos].WithEdge(d, "")
	}
	return false
}
