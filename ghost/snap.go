package ghost

import (
	"github.com/lixenwraith/chomp/core"
	"github.com/lixenwraith/chomp/maze"
)

// clampToBounds pulls p onto the board without regard for walls
func clampToBounds(g *maze.Grid, p core.Point) core.Point {
	if p.X < 0 {
		p.X = 0
	} else if p.X >= g.Width {
		p.X = g.Width - 1
	}
	if p.Y < 0 {
		p.Y = 0
	} else if p.Y >= g.Height {
		p.Y = g.Height - 1
	}
	return p
}

// snapToWalkable clamps p into bounds, then expands Manhattan rings around
// it until a walkable cell is found. Ring cells are enumerated in a fixed
// order so snapping is deterministic. Past maxRadius it gives up and
// returns fallback.
func snapToWalkable(g *maze.Grid, p core.Point, maxRadius int, fallback core.Point) core.Point {
	p = clampToBounds(g, p)
	if g.IsWalkable(p) {
		return p
	}

	for r := 1; r <= maxRadius; r++ {
		// Walk the diamond |dx|+|dy| == r, top vertex first, clockwise
		for i := 0; i < 4*r; i++ {
			var q core.Point
			switch side := i / r; side {
			case 0: // Top to right
				q = core.Point{X: p.X + i%r, Y: p.Y - r + i%r}
			case 1: // Right to bottom
				q = core.Point{X: p.X + r - i%r, Y: p.Y + i%r}
			case 2: // Bottom to left
				q = core.Point{X: p.X - i%r, Y: p.Y + r - i%r}
			default: // Left to top
				q = core.Point{X: p.X - r + i%r, Y: p.Y - i%r}
			}
			if g.IsWalkable(q) {
				return q
			}
		}
	}
	return fallback
}
