package navigation

import (
	"github.com/lixenwraith/chomp/core"
	"github.com/lixenwraith/chomp/maze"
)

// GreedyStep returns the walkable neighbor of current that minimizes
// Manhattan distance to target. One step of lookahead, never more; at most
// four candidates are examined. Ties resolve to the first candidate in the
// grid's fixed neighbor order. With no walkable neighbor (degenerate under
// the connectivity invariant) it returns current, a stay-in-place move.
func GreedyStep(g *maze.Grid, current, target core.Point) core.Point {
	var buf [4]core.Point
	neighbors := g.Neighbors(g.Normalize(current), buf[:0])
	if len(neighbors) == 0 {
		return current
	}

	best := neighbors[0]
	bestDist := best.Manhattan(target)
	for _, n := range neighbors[1:] {
		if d := n.Manhattan(target); d < bestDist {
			bestDist = d
			best = n
		}
	}
	return best
}
