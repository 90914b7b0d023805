package ghost

import (
	"github.com/lixenwraith/chomp/core"
	"github.com/lixenwraith/chomp/navigation"
)

// Flanker targets the point obtained by doubling the vector from the
// chaser's position to a pivot two tiles ahead of the player, producing
// pincer movements the player cannot read from the flanker alone. Without
// an anchor snapshot it degrades to aiming at the pivot directly.
type Flanker struct {
	lookahead  int
	snapRadius int
}

// NewFlanker creates the derived-vector brain
func NewFlanker(lookahead, snapRadius int) *Flanker {
	return &Flanker{lookahead: lookahead, snapRadius: snapRadius}
}

func (f *Flanker) Name() string { return "Inky" }

func (f *Flanker) Decide(ctx Context) Decision {
	pivot := ctx.Player
	if ctx.PlayerDir != core.Still {
		pivot = ctx.Player.Add(ctx.PlayerDir.Scale(f.lookahead))
	}
	pivot = clampToBounds(ctx.Grid, pivot)

	target := pivot
	if ctx.HasAnchor {
		target = flankGoal(ctx.Anchor, pivot)
	}
	target = snapToWalkable(ctx.Grid, target, f.snapRadius, ctx.Player)

	return Decision{
		Next:   navigation.GreedyStep(ctx.Grid, ctx.Self, target),
		Target: target,
		Mode:   ModeChase,
	}
}

// flankGoal doubles the anchor-to-pivot vector: anchor + 2*(pivot - anchor)
func flankGoal(anchor, pivot core.Point) core.Point {
	return anchor.Add(pivot.Sub(anchor).Scale(2))
}
