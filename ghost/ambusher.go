package ghost

import (
	"github.com/lixenwraith/chomp/core"
	"github.com/lixenwraith/chomp/navigation"
)

// Ambusher aims a fixed number of tiles ahead of the player's facing and
// takes one greedy step toward that point every tick. With the player
// standing still the target collapses to the player's cell.
type Ambusher struct {
	lookahead  int
	snapRadius int
}

// NewAmbusher creates the greedy-lookahead brain
func NewAmbusher(lookahead, snapRadius int) *Ambusher {
	return &Ambusher{lookahead: lookahead, snapRadius: snapRadius}
}

func (a *Ambusher) Name() string { return "Pinky" }

func (a *Ambusher) Decide(ctx Context) Decision {
	target := ctx.Player
	if ctx.PlayerDir != core.Still {
		target = ctx.Player.Add(ctx.PlayerDir.Scale(a.lookahead))
	}
	target = snapToWalkable(ctx.Grid, target, a.snapRadius, ctx.Player)

	return Decision{
		Next:   navigation.GreedyStep(ctx.Grid, ctx.Self, target),
		Target: target,
		Mode:   ModeChase,
	}
}
