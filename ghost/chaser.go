package ghost

import (
	"github.com/lixenwraith/chomp/core"
	"github.com/lixenwraith/chomp/maze"
	"github.com/lixenwraith/chomp/navigation"
)

// searchFunc matches navigation.FindPath; swappable for test instrumentation
type searchFunc func(g *maze.Grid, start, goal core.Point) []core.Point

// Chaser runs full A* to the player's cell and follows the resulting path.
// The search is throttled: it executes on decision ticks 0, N, 2N, … and
// the cached path is replayed in between. Any search failure or path
// desync falls back to a greedy step toward the player.
type Chaser struct {
	interval int
	search   searchFunc

	sinceSearch int // Ticks remaining until the next search
	path        []core.Point
	step        int // Index of the path cell the ghost currently occupies
}

// NewChaser creates the A* brain with the given recompute interval in
// decision ticks. The first Decide always searches.
func NewChaser(interval int) *Chaser {
	if interval < 1 {
		interval = 1
	}
	return &Chaser{
		interval: interval,
		search:   navigation.FindPath,
	}
}

func (c *Chaser) Name() string { return "Blinky" }

func (c *Chaser) Decide(ctx Context) Decision {
	if c.sinceSearch <= 0 {
		c.path = c.search(ctx.Grid, ctx.Self, ctx.Player)
		c.step = 0
		c.sinceSearch = c.interval
	}
	c.sinceSearch--

	if c.path == nil {
		return fallbackToward(ctx, ctx.Player)
	}

	// Keep the path cursor on the cell the ghost actually occupies
	if c.step < len(c.path) && c.path[c.step] != ctx.Self {
		if c.step+1 < len(c.path) && c.path[c.step+1] == ctx.Self {
			c.step++
		} else {
			// Desynced from the cached path; discard and recover greedily
			c.path = nil
			c.sinceSearch = 0
			return fallbackToward(ctx, ctx.Player)
		}
	}

	if c.step+1 >= len(c.path) {
		// Path exhausted (ghost sits on the goal snapshot)
		return fallbackToward(ctx, ctx.Player)
	}

	return Decision{
		Next:   c.path[c.step+1],
		Target: c.path[len(c.path)-1],
		Mode:   ModeChase,
	}
}
