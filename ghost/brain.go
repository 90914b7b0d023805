// Package ghost implements the pursuer decision engine: four brain variants
// sharing one Decide capability, plus the runtime agent that carries
// position, facing and frightened state between decisions.
package ghost

import (
	"github.com/lixenwraith/chomp/core"
	"github.com/lixenwraith/chomp/maze"
	"github.com/lixenwraith/chomp/navigation"
)

// Mode is the behavior state a brain reports, shown by the debug overlay
type Mode uint8

const (
	ModeChase Mode = iota
	ModeScatter
)

func (m Mode) String() string {
	if m == ModeScatter {
		return "SCATTER"
	}
	return "CHASE"
}

// Context is the read-only snapshot a brain decides over. Anchor is the
// chaser ghost's position, passed by value so the flanker never holds a
// live reference to another pursuer.
type Context struct {
	Grid      *maze.Grid
	Self      core.Point
	Player    core.Point
	PlayerDir core.Point

	Anchor    core.Point
	HasAnchor bool
}

// Decision is a brain's output for one decision tick
type Decision struct {
	Next   core.Point // Cell to step to, always walkable (or Self)
	Target core.Point // Goal tile the step works toward
	Mode   Mode
}

// Brain produces one movement decision per tick. Implementations own their
// per-pursuer mutable state (throttle counters, cached paths, FSM mode);
// one Brain instance serves exactly one ghost.
type Brain interface {
	Name() string
	Decide(ctx Context) Decision
}

// fallbackToward is the shared failure policy: when a brain cannot produce
// a usable target or path, step greedily toward the player so the pursuer
// never stalls
func fallbackToward(ctx Context, goal core.Point) Decision {
	return Decision{
		Next:   navigation.GreedyStep(ctx.Grid, ctx.Self, goal),
		Target: goal,
		Mode:   ModeChase,
	}
}
