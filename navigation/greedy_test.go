package navigation

import (
	"testing"

	"github.com/lixenwraith/chomp/core"
)

func TestGreedyStepMovesToCloserNeighbor(t *testing.T) {
	g := mustParse(t, []string{
		"#####",
		"#...#",
		"#...#",
		"#...#",
		"#####",
	})

	got := GreedyStep(g, core.Point{X: 1, Y: 1}, core.Point{X: 3, Y: 3})
	// Down and right tie at distance 3; fixed order prefers down
	if got != (core.Point{X: 1, Y: 2}) {
		t.Errorf("GreedyStep = %v, want (1,2) by tie-break order", got)
	}

	got = GreedyStep(g, core.Point{X: 1, Y: 3}, core.Point{X: 3, Y: 3})
	if got != (core.Point{X: 2, Y: 3}) {
		t.Errorf("GreedyStep = %v, want (2,3)", got)
	}
}

func TestGreedyStepReturnsActualNeighbor(t *testing.T) {
	g := mustParse(t, fixture)
	cur := core.Point{X: 1, Y: 1}
	target := core.Point{X: 9, Y: 7}

	got := GreedyStep(g, cur, target)
	var buf [4]core.Point
	found := false
	for _, n := range g.Neighbors(cur, buf[:0]) {
		if n == got {
			found = true
		}
	}
	if !found {
		t.Errorf("GreedyStep = %v, not a walkable neighbor of %v", got, cur)
	}
}

func TestGreedyStepCanIncreaseDistance(t *testing.T) {
	// Pocket forces the single move away from the target
	g := mustParse(t, []string{
		"#####",
		"#.###",
		"#.###",
		"#####",
	})
	cur := core.Point{X: 1, Y: 2}
	target := core.Point{X: 3, Y: 2}

	got := GreedyStep(g, cur, target)
	if got != (core.Point{X: 1, Y: 1}) {
		t.Errorf("GreedyStep = %v, want (1,1), the only exit", got)
	}
	if got.Manhattan(target) <= cur.Manhattan(target) {
		t.Error("expected the only legal move to increase distance")
	}
}

func TestGreedyStepIsolatedCellStaysPut(t *testing.T) {
	g := mustParse(t, []string{
		"###",
		"#.#",
		"###",
	})
	cur := core.Point{X: 1, Y: 1}
	if got := GreedyStep(g, cur, core.Point{X: 0, Y: 0}); got != cur {
		t.Errorf("GreedyStep = %v, want stay-in-place %v", got, cur)
	}
}

func TestGreedyStepUsesTunnelWrap(t *testing.T) {
	g := mustParse(t, tunnelFixture)

	// From the left tunnel mouth, the wrapped cell is the closest move
	got := GreedyStep(g, core.Point{X: 0, Y: 3}, core.Point{X: 8, Y: 3})
	if got != (core.Point{X: 8, Y: 3}) {
		t.Errorf("GreedyStep = %v, want wrapped neighbor (8,3)", got)
	}
}
