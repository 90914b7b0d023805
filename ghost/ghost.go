package ghost

import (
	"math/rand"

	"github.com/lixenwraith/chomp/core"
	"github.com/lixenwraith/chomp/maze"
)

// Ghost is one pursuer in the arena: runtime state plus the brain that
// drives it. The session addresses ghosts by their arena index; ghosts
// never reference each other.
type Ghost struct {
	ID    int
	Brain Brain

	Pos   core.Point
	Dir   core.Point
	spawn core.Point

	Vulnerable bool
	Eaten      bool

	// Debug overlay state, refreshed each decision
	Target core.Point
	Mode   Mode
}

// New places a ghost at spawn with the given brain
func New(id int, brain Brain, spawn core.Point) *Ghost {
	return &Ghost{
		ID:    id,
		Brain: brain,
		Pos:   spawn,
		spawn: spawn,
	}
}

// Reverse flips the current facing; called when frightened mode begins
func (gh *Ghost) Reverse() {
	gh.Dir = gh.Dir.Opposite()
}

// Reset returns the ghost to its spawn cell and clears transient state.
// Brains keep their configuration but any cached path is stale, which the
// next decision tick repairs on its own.
func (gh *Ghost) Reset() {
	gh.Pos = gh.spawn
	gh.Dir = core.Still
	gh.Vulnerable = false
	gh.Eaten = false
}

// Step advances the ghost one cell. Frightened ghosts wander randomly,
// reversing only at dead ends; otherwise the brain decides.
func (gh *Ghost) Step(ctx Context, rng *rand.Rand) {
	var next core.Point
	if gh.Vulnerable {
		next = frightenedStep(ctx.Grid, gh.Pos, gh.Dir, rng)
	} else {
		d := gh.Brain.Decide(ctx)
		gh.Target = d.Target
		gh.Mode = d.Mode
		next = d.Next
	}

	if next == gh.Pos || !ctx.Grid.IsWalkable(next) {
		return
	}
	gh.Dir = dirBetween(ctx.Grid, gh.Pos, next)
	gh.Pos = next
}

// frightenedStep picks a uniformly random neighbor, excluding the reverse
// of the current facing unless the cell is a dead end
func frightenedStep(g *maze.Grid, pos, dir core.Point, rng *rand.Rand) core.Point {
	var buf [4]core.Point
	neighbors := g.Neighbors(pos, buf[:0])
	if len(neighbors) == 0 {
		return pos
	}

	back := g.Normalize(pos.Add(dir.Opposite()))
	forward := neighbors[:0]
	for _, n := range neighbors {
		if n != back || dir == core.Still {
			forward = append(forward, n)
		}
	}
	if len(forward) == 0 {
		return back // Dead end: reverse
	}
	return forward[rng.Intn(len(forward))]
}

// dirBetween resolves the cardinal direction from one cell to an adjacent
// cell, accounting for tunnel wrap
func dirBetween(g *maze.Grid, from, to core.Point) core.Point {
	for _, d := range core.CardinalDirs {
		if g.Normalize(from.Add(d)) == to {
			return d
		}
	}
	return core.Still
}
