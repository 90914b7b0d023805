// Package player owns the player agent: tile-discretized movement with a
// queued turn, tunnel wrapping, and wall stops.
package player

import (
	"github.com/lixenwraith/chomp/core"
	"github.com/lixenwraith/chomp/maze"
)

// Player is the user-controlled agent
type Player struct {
	Pos core.Point
	Dir core.Point

	queued core.Point
	spawn  core.Point
}

// New places the player at spawn, standing still
func New(spawn core.Point) *Player {
	return &Player{Pos: spawn, spawn: spawn}
}

// Queue records a requested direction change. The turn is taken on the
// next step where it leads into open space, so a turn pressed slightly
// before a junction still happens.
func (p *Player) Queue(dir core.Point) {
	p.queued = dir
}

// Step advances the player one cell on its movement tick. A queued turn
// takes priority when walkable; otherwise the current direction continues,
// stopping against walls.
func (p *Player) Step(g *maze.Grid) {
	if p.queued != core.Still {
		if g.IsWalkable(p.Pos.Add(p.queued)) {
			p.Dir = p.queued
			p.queued = core.Still
		}
	}

	if p.Dir == core.Still {
		return
	}

	next := g.Normalize(p.Pos.Add(p.Dir))
	if g.IsWalkable(next) {
		p.Pos = next
	} else {
		p.Dir = core.Still
	}
}

// Reset returns the player to spawn, standing still
func (p *Player) Reset() {
	p.Pos = p.spawn
	p.Dir = core.Still
	p.queued = core.Still
}
