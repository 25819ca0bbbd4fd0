package buildorder

import (
	"testing"
	"time"

	"github.com/hailam/tiltmp/internal/board"
)

func TestFindBlueprintTwoCellLine(t *testing.T) {
	target := []board.Point{{0, 0}, {1, 0}}
	stock := map[board.GlueType]int{"a": 2}
	rng := board.NewRand(1)

	bp, err := FindBlueprint(target, stock, board.NewPlainGlueRules(nil), rng)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if bp[target[0]].On(board.East) != bp[target[1]].On(board.West) {
		t.Fatalf("expected matching glue across the shared seam, got %+v / %+v", bp[target[0]], bp[target[1]])
	}
}

func TestFindBuildOrderLineIsRemovableEndFirst(t *testing.T) {
	target := []board.Point{{1, 0}, {2, 0}, {3, 0}}
	bp := Blueprint{
		{1, 0}: board.Glues{East: "a"},
		{2, 0}: board.Glues{West: "a", East: "b"},
		{3, 0}: board.Glues{West: "b"},
	}
	rng := board.NewRand(1)

	rules := board.NewPlainGlueRules([][2]board.GlueType{{"a", "a"}, {"b", "b"}})
	order, err := FindBuildOrder(5, 1, target, bp, rules, rng, time.Now().Add(5*time.Second))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(order) != 3 {
		t.Fatalf("expected all 3 cells in build order, got %v", order)
	}
	// The last cell built is the first one removed, which must be an end
	// of the line: removing the middle first would split the remainder.
	if order[2] == (board.Point{2, 0}) {
		t.Fatalf("expected an end of the line to be removed first, got build order %v", order)
	}
}
