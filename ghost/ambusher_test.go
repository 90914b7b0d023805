package ghost

import (
	"testing"

	"github.com/lixenwraith/chomp/core"
)

func TestAmbusherTargetsAheadOfPlayer(t *testing.T) {
	g := openRoom(t, 14, 14)
	a := NewAmbusher(4, 6)

	d := a.Decide(Context{
		Grid:      g,
		Self:      core.Point{X: 1, Y: 1},
		Player:    core.Point{X: 5, Y: 5},
		PlayerDir: core.Right,
	})

	if d.Target != (core.Point{X: 9, Y: 5}) {
		t.Errorf("Target = %v, want (9,5), four tiles ahead", d.Target)
	}
	if d.Mode != ModeChase {
		t.Errorf("Mode = %v, want CHASE", d.Mode)
	}
}

func TestAmbusherStillPlayerCollapsesToPlayer(t *testing.T) {
	g := openRoom(t, 14, 14)
	a := NewAmbusher(4, 6)

	d := a.Decide(Context{
		Grid:      g,
		Self:      core.Point{X: 1, Y: 1},
		Player:    core.Point{X: 5, Y: 5},
		PlayerDir: core.Still,
	})

	if d.Target != (core.Point{X: 5, Y: 5}) {
		t.Errorf("Target = %v, want the player's cell", d.Target)
	}
}

func TestAmbusherSnapsProjectionOffBoard(t *testing.T) {
	g := openRoom(t, 14, 14)
	a := NewAmbusher(4, 6)

	// Player near the right border facing right projects past the edge
	d := a.Decide(Context{
		Grid:      g,
		Self:      core.Point{X: 1, Y: 1},
		Player:    core.Point{X: 12, Y: 5},
		PlayerDir: core.Right,
	})

	if !g.IsWalkable(d.Target) {
		t.Errorf("Target %v not walkable after snap", d.Target)
	}
}

func TestAmbusherStepIsLegal(t *testing.T) {
	g := openRoom(t, 14, 14)
	a := NewAmbusher(4, 6)
	self := core.Point{X: 2, Y: 2}

	d := a.Decide(Context{
		Grid:      g,
		Self:      self,
		Player:    core.Point{X: 10, Y: 10},
		PlayerDir: core.Up,
	})

	if !g.IsWalkable(d.Next) || d.Next.Manhattan(self) != 1 {
		t.Errorf("Next = %v, want an adjacent walkable cell of %v", d.Next, self)
	}
}
