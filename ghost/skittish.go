package ghost

import (
	"github.com/lixenwraith/chomp/core"
	"github.com/lixenwraith/chomp/navigation"
)

// Skittish is a two-state machine re-evaluated every tick, purely from the
// current Manhattan distance to the player: distance < threshold scatters
// to a fixed corner, distance >= threshold chases. The boundary is a closed
// interval on the chase side; a player hovering at exactly the threshold
// distance can flip the state tick to tick, which is accepted behavior.
type Skittish struct {
	threshold int
	scatter   core.Point
	mode      Mode
}

// NewSkittish creates the FSM brain with the given distance threshold in
// tiles and scatter corner. Initial state is CHASE.
func NewSkittish(threshold int, scatter core.Point) *Skittish {
	return &Skittish{threshold: threshold, scatter: scatter, mode: ModeChase}
}

func (s *Skittish) Name() string { return "Clyde" }

func (s *Skittish) Decide(ctx Context) Decision {
	if ctx.Self.Manhattan(ctx.Player) < s.threshold {
		s.mode = ModeScatter
	} else {
		s.mode = ModeChase
	}

	target := ctx.Player
	if s.mode == ModeScatter {
		target = snapToWalkable(ctx.Grid, s.scatter, ctx.Grid.Width, ctx.Player)
	}

	return Decision{
		Next:   navigation.GreedyStep(ctx.Grid, ctx.Self, target),
		Target: target,
		Mode:   s.mode,
	}
}
