package maze

import (
	"github.com/lixenwraith/chomp/core"
)

// Cell contents
const (
	Wall    = true
	Passage = false
)

// Pellet is the consumable at a cell
type Pellet uint8

const (
	PelletNone Pellet = iota
	PelletDot
	PelletPower
)

// Grid is the board: a flat wall bitmap plus pellet flags, indexed y*Width+x.
// Walls are immutable after generation; only pellet flags mutate.
// Two tunnel rows wrap horizontally: column -1 and column Width are the same
// cell at opposite edges of those rows.
type Grid struct {
	Width, Height int

	walls      []bool
	pellets    []Pellet
	dotCount   int
	tunnelRows [2]int
}

// newGrid returns an all-wall grid; the generator carves it
func newGrid(width, height int, tunnelRows [2]int) *Grid {
	size := width * height
	g := &Grid{
		Width:      width,
		Height:     height,
		walls:      make([]bool, size),
		pellets:    make([]Pellet, size),
		tunnelRows: tunnelRows,
	}
	for i := range g.walls {
		g.walls[i] = Wall
	}
	return g
}

// TunnelRows returns the two wrap-around rows
func (g *Grid) TunnelRows() [2]int {
	return g.tunnelRows
}

func (g *Grid) index(p core.Point) int {
	return p.Y*g.Width + p.X
}

// InBounds reports whether p lies on the board without normalization
func (g *Grid) InBounds(p core.Point) bool {
	return p.X >= 0 && p.X < g.Width && p.Y >= 0 && p.Y < g.Height
}

func (g *Grid) isTunnelRow(y int) bool {
	return y == g.tunnelRows[0] || y == g.tunnelRows[1]
}

// Normalize wraps the X coordinate on tunnel rows. Coordinates off the board
// anywhere else are returned unchanged; IsWalkable fails closed on them.
func (g *Grid) Normalize(p core.Point) core.Point {
	if g.isTunnelRow(p.Y) {
		if p.X < 0 {
			p.X = g.Width - 1
		} else if p.X >= g.Width {
			p.X = 0
		}
	}
	return p
}

// IsWalkable reports whether p can be occupied. O(1). Out-of-bounds cells
// are walls unless tunnel wrapping brings them back onto the board.
func (g *Grid) IsWalkable(p core.Point) bool {
	p = g.Normalize(p)
	if !g.InBounds(p) {
		return false
	}
	return g.walls[g.index(p)] == Passage
}

// Neighbors appends the walkable orthogonal neighbors of p to buf and
// returns it. Expansion order is fixed (up, left, down, right) so search
// tie-breaking is reproducible. Tunnel rows contribute wrapped neighbors.
func (g *Grid) Neighbors(p core.Point, buf []core.Point) []core.Point {
	for _, d := range core.CardinalDirs {
		q := g.Normalize(p.Add(d))
		if g.InBounds(q) && g.walls[g.index(q)] == Passage {
			buf = append(buf, q)
		}
	}
	return buf
}

// PelletAt returns the pellet at p, PelletNone off the board
func (g *Grid) PelletAt(p core.Point) Pellet {
	p = g.Normalize(p)
	if !g.InBounds(p) {
		return PelletNone
	}
	return g.pellets[g.index(p)]
}

// ConsumePellet clears and returns the pellet at p. Idempotent: consuming
// an empty cell is a no-op returning PelletNone. O(1).
func (g *Grid) ConsumePellet(p core.Point) Pellet {
	p = g.Normalize(p)
	if !g.InBounds(p) {
		return PelletNone
	}
	i := g.index(p)
	pel := g.pellets[i]
	if pel == PelletNone {
		return PelletNone
	}
	g.pellets[i] = PelletNone
	if pel == PelletDot {
		g.dotCount--
	}
	return pel
}

// RemainingPellets returns the count of uneaten dots. Power pellets are not
// counted; clearing the dots completes the level. O(1), maintained on consume.
func (g *Grid) RemainingPellets() int {
	return g.dotCount
}

func (g *Grid) setWall(p core.Point, wall bool) {
	g.walls[g.index(p)] = wall
}

func (g *Grid) setPellet(p core.Point, pel Pellet) {
	i := g.index(p)
	old := g.pellets[i]
	if old == PelletDot {
		g.dotCount--
	}
	g.pellets[i] = pel
	if pel == PelletDot {
		g.dotCount++
	}
}
