package buildorder

import (
	"fmt"
	"log"
	"time"

	"github.com/hailam/tiltmp/internal/board"
	"github.com/hailam/tiltmp/internal/heuristic"
	"github.com/hailam/tiltmp/internal/search"
)

// OneTileAtATimeMotionPlanner builds a target shape at a fixed absolute
// location by repeatedly picking one loose tile with the right glue
// signature and driving it there with a single-tile best-first search,
// in the order FindBuildOrder computed. It is the orchestration loop
// behind C9: each step is itself a full sub-search, not a single move.
type OneTileAtATimeMotionPlanner struct {
	Width, Height int
	Rules         board.GlueRules
	TargetOrigin  board.Point
	TargetShape   []board.Point // offsets relative to TargetOrigin

	Rand *board.Rand
}

// Solve builds the complete target shape on b, returning the full tilt
// sequence across every sub-search. The board is mutated in place as
// tiles are moved into position.
func (p *OneTileAtATimeMotionPlanner) Solve(b *board.Board, deadline *search.Deadline) ([]board.Direction, error) {
	rng := p.Rand
	if rng == nil {
		rng = board.NewRand(board.DefaultSeed)
	}

	target := make([]board.Point, len(p.TargetShape))
	for i, off := range p.TargetShape {
		target[i] = p.TargetOrigin.Add(off)
	}

	stock := glueStock(b)
	bp, err := FindBlueprint(target, stock, p.Rules, rng)
	if err == ErrUnsolvableBlueprint {
		return nil, search.ErrSolverTimeout
	}
	if err != nil {
		return nil, err
	}
	buildOrder, err := FindBuildOrder(p.Width, p.Height, target, bp, p.Rules, rng, time.Now().Add(OverallTimeout))
	if err != nil {
		return nil, err
	}

	var fullSequence []board.Direction
	for i, destCell := range buildOrder {
		if deadline != nil && deadline.Expired() {
			return fullSequence, search.ErrSolverTimeout
		}
		required := bp[destCell]
		tileColor := fmt.Sprintf("build-order-tile-%d", i)
		if err := tagLooseTileWithGlues(b, required, tileColor); err != nil {
			return fullSequence, fmt.Errorf("buildorder: step %d (%v): %w", i, destCell, err)
		}

		h := heuristic.DistanceToFixedDestination{Destination: destCell}
		planner := search.NewSingleTilePlanner(b, tileColor, destCell, target, h, deadline)
		seq, err := planner.Solve(b, target, deadline)
		if err != nil {
			return fullSequence, fmt.Errorf("buildorder: step %d (%v): %w", i, destCell, err)
		}
		for _, d := range seq {
			b.Tilt(d)
		}
		fullSequence = append(fullSequence, seq...)
		log.Printf("[buildorder] placed tile %d/%d at %v (%d tilts)", i+1, len(buildOrder), destCell, len(seq))
	}
	return fullSequence, nil
}

// glueStock counts the glue labels available across every loose tile
// currently on the board, the supply FindBlueprint must live within.
func glueStock(b *board.Board) map[board.GlueType]int {
	stock := make(map[board.GlueType]int)
	for _, poly := range b.Polyominoes {
		for _, t := range poly.Tiles {
			for _, d := range board.Directions {
				if g := t.Glues.On(d); g != "" {
					stock[g]++
				}
			}
		}
	}
	return stock
}

// tagLooseTileWithGlues finds a not-yet-tagged tile whose glue signature
// equals required and labels it color so the single-tile search can find
// it across board snapshots.
func tagLooseTileWithGlues(b *board.Board, required board.Glues, color string) error {
	for _, poly := range b.Polyominoes {
		for _, t := range poly.Tiles {
			if t.Color != "" {
				continue
			}
			if t.Glues == required {
				t.Color = color
				return nil
			}
		}
	}
	return fmt.Errorf("no untagged loose tile with the required glue signature")
}
