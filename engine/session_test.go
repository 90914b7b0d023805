package engine

import (
	"testing"

	"github.com/lixenwraith/chomp/core"
	"github.com/lixenwraith/chomp/maze"
	"github.com/lixenwraith/chomp/parameter"
)

func newTestSession(t *testing.T) *Session {
	t.Helper()
	cfg := DefaultConfig()
	cfg.Seed = 99
	s, err := NewSession(cfg)
	if err != nil {
		t.Fatalf("NewSession: %v", err)
	}
	return s
}

// findPellet locates a cell holding the given pellet kind
func findPellet(t *testing.T, g *maze.Grid, kind maze.Pellet) core.Point {
	t.Helper()
	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			p := core.Point{X: x, Y: y}
			if g.PelletAt(p) == kind {
				return p
			}
		}
	}
	t.Fatalf("no pellet of kind %v on the board", kind)
	return core.Point{}
}

func hasEvent(events []Event, kind EventKind) bool {
	for _, ev := range events {
		if ev.Kind == kind {
			return true
		}
	}
	return false
}

func TestNewSessionInitialState(t *testing.T) {
	s := newTestSession(t)

	if s.State() != StatePlaying {
		t.Errorf("state = %v, want playing", s.State())
	}
	if s.Lives() != parameter.InitialLives {
		t.Errorf("lives = %d, want %d", s.Lives(), parameter.InitialLives)
	}
	if s.Level() != 1 || s.Score() != 0 {
		t.Errorf("level %d score %d, want 1 and 0", s.Level(), s.Score())
	}
	if len(s.Ghosts()) != 4 {
		t.Fatalf("%d ghosts, want 4", len(s.Ghosts()))
	}

	names := map[string]bool{}
	for _, gh := range s.Ghosts() {
		names[gh.Brain.Name()] = true
	}
	for _, want := range []string{"Blinky", "Pinky", "Inky", "Clyde"} {
		if !names[want] {
			t.Errorf("missing brain %q", want)
		}
	}
}

func TestStressModeFillsArena(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Seed = 99
	cfg.Stress = true
	s, err := NewSession(cfg)
	if err != nil {
		t.Fatal(err)
	}
	if len(s.Ghosts()) != parameter.StressMaxGhosts {
		t.Errorf("%d ghosts in stress mode, want %d", len(s.Ghosts()), parameter.StressMaxGhosts)
	}
	for _, gh := range s.Ghosts() {
		if !s.Grid().IsWalkable(gh.Pos) {
			t.Errorf("ghost %d spawned on a wall at %v", gh.ID, gh.Pos)
		}
	}
}

func TestPelletScoring(t *testing.T) {
	s := newTestSession(t)
	dot := findPellet(t, s.grid, maze.PelletDot)

	s.player.Pos = dot
	s.resolvePlayerCell()

	if s.score != parameter.PelletScore {
		t.Errorf("score = %d, want %d", s.score, parameter.PelletScore)
	}
	if !hasEvent(s.events, EventPellet) {
		t.Error("no pellet event emitted")
	}

	// Eating the same cell again scores nothing
	s.resolvePlayerCell()
	if s.score != parameter.PelletScore {
		t.Errorf("score = %d after re-eating, want unchanged", s.score)
	}
}

func TestPowerPelletStartsVulnerability(t *testing.T) {
	s := newTestSession(t)
	power := findPellet(t, s.grid, maze.PelletPower)

	for _, gh := range s.ghosts {
		gh.Dir = core.Right
	}

	s.player.Pos = power
	s.resolvePlayerCell()

	if s.score != parameter.PowerPelletScore {
		t.Errorf("score = %d, want %d", s.score, parameter.PowerPelletScore)
	}
	if !s.VulnerableActive() {
		t.Fatal("vulnerability window not started")
	}
	for _, gh := range s.ghosts {
		if !gh.Vulnerable {
			t.Errorf("ghost %d not vulnerable", gh.ID)
		}
		if gh.Dir != core.Left {
			t.Errorf("ghost %d facing %v, want reversed to Left", gh.ID, gh.Dir)
		}
	}
}

func TestVulnerabilityExpires(t *testing.T) {
	s := newTestSession(t)
	s.startVulnerable()
	s.vulnTicks = 1

	s.Update()

	if s.VulnerableActive() {
		t.Error("vulnerability still active after the window closed")
	}
	for _, gh := range s.ghosts {
		if gh.Vulnerable {
			t.Errorf("ghost %d still vulnerable", gh.ID)
		}
	}
}

func TestGhostEatChainScoring(t *testing.T) {
	s := newTestSession(t)
	s.startVulnerable()

	// Two frightened ghosts on the player's cell: 200 then 400
	s.ghosts[0].Pos = s.player.Pos
	s.ghosts[1].Pos = s.player.Pos
	s.resolveCollisions()

	want := parameter.GhostScoreBase + 2*parameter.GhostScoreBase
	if s.score != want {
		t.Errorf("score = %d, want %d (200 + 400 chain)", s.score, want)
	}
	for _, gh := range s.ghosts[:2] {
		if gh.Pos == s.player.Pos {
			t.Errorf("ghost %d not sent home after being eaten", gh.ID)
		}
	}
	if s.lives != parameter.InitialLives {
		t.Errorf("lives = %d, eating frightened ghosts must not cost lives", s.lives)
	}
}

func TestChainResetsPerWindow(t *testing.T) {
	s := newTestSession(t)
	s.startVulnerable()
	s.ghosts[0].Pos = s.player.Pos
	s.resolveCollisions()

	// New window: the multiplier starts over
	s.startVulnerable()
	s.ghosts[1].Pos = s.player.Pos
	s.resolveCollisions()

	want := 2 * parameter.GhostScoreBase
	if s.score != want {
		t.Errorf("score = %d, want %d (two separate 200-point meals)", s.score, want)
	}
}

func TestPlayerDeathResetsAgents(t *testing.T) {
	s := newTestSession(t)
	s.ghosts[0].Pos = s.player.Pos

	ended := s.resolveCollisions()

	if !ended {
		t.Fatal("death did not end the frame")
	}
	if s.lives != parameter.InitialLives-1 {
		t.Errorf("lives = %d, want %d", s.lives, parameter.InitialLives-1)
	}
	if !hasEvent(s.events, EventPlayerDeath) {
		t.Error("no death event emitted")
	}
	if s.player.Pos != s.playerSpawn {
		t.Errorf("player at %v, want spawn %v", s.player.Pos, s.playerSpawn)
	}
	for i, gh := range s.ghosts {
		if gh.Pos != s.ghostSpawns[i] {
			t.Errorf("ghost %d at %v, want spawn %v", i, gh.Pos, s.ghostSpawns[i])
		}
	}
	if s.state != StatePlaying {
		t.Errorf("state = %v, want still playing with lives left", s.state)
	}
}

func TestGameOverOnLastLife(t *testing.T) {
	s := newTestSession(t)
	s.lives = 1
	s.ghosts[0].Pos = s.player.Pos

	s.resolveCollisions()

	if s.state != StateGameOver {
		t.Errorf("state = %v, want game over", s.state)
	}
	if !hasEvent(s.events, EventGameOver) {
		t.Error("no game over event emitted")
	}
}

func TestLevelClearRegeneratesBoard(t *testing.T) {
	s := newTestSession(t)

	// Clear the board by hand
	for y := 0; y < s.grid.Height; y++ {
		for x := 0; x < s.grid.Width; x++ {
			s.grid.ConsumePellet(core.Point{X: x, Y: y})
		}
	}
	if s.grid.RemainingPellets() != 0 {
		t.Fatal("board not cleared")
	}

	events := s.Update()

	if !hasEvent(events, EventLevelClear) {
		t.Error("no level clear event emitted")
	}
	if s.Level() != 2 {
		t.Errorf("level = %d, want 2", s.Level())
	}
	if s.grid.RemainingPellets() == 0 {
		t.Error("new level has no pellets")
	}
	if s.player.Pos != s.playerSpawn {
		t.Errorf("player at %v, want the new spawn %v", s.player.Pos, s.playerSpawn)
	}
}

func TestFruitSpawnsAtThreshold(t *testing.T) {
	s := newTestSession(t)
	s.pelletsEaten = parameter.BonusFruit1Threshold - 1
	dot := findPellet(t, s.grid, maze.PelletDot)

	s.player.Pos = dot
	s.resolvePlayerCell()

	if !s.FruitActive() {
		t.Fatal("fruit did not spawn at the pellet threshold")
	}
	if !hasEvent(s.events, EventFruitSpawn) {
		t.Error("no fruit spawn event emitted")
	}
	if !s.grid.IsWalkable(s.FruitPos()) {
		t.Errorf("fruit at unwalkable cell %v", s.FruitPos())
	}
}

func TestFruitTimesOut(t *testing.T) {
	s := newTestSession(t)
	s.fruitActive = true
	s.fruitTicks = 1

	s.Update()

	if s.FruitActive() {
		t.Error("fruit still active after its window closed")
	}
}

func TestFruitPickupScores(t *testing.T) {
	s := newTestSession(t)
	s.fruitActive = true
	s.fruitPos = s.player.Pos

	s.resolvePlayerCell()

	if s.score != parameter.BonusFruitScore {
		t.Errorf("score = %d, want %d", s.score, parameter.BonusFruitScore)
	}
	if !hasEvent(s.events, EventFruitEaten) {
		t.Error("no fruit eaten event emitted")
	}
	if s.FruitActive() {
		t.Error("fruit still on the board after pickup")
	}
}

func TestPauseFreezesSimulation(t *testing.T) {
	s := newTestSession(t)
	s.TogglePause()

	tick := s.tick
	if events := s.Update(); events != nil {
		t.Errorf("paused Update produced events %v", events)
	}
	if s.tick != tick {
		t.Error("paused Update advanced the clock")
	}

	s.TogglePause()
	if s.State() != StatePlaying {
		t.Errorf("state = %v after unpause, want playing", s.State())
	}
}

func TestRestartAfterGameOver(t *testing.T) {
	s := newTestSession(t)
	s.score = 1234
	s.lives = 0
	s.level = 3
	s.state = StateGameOver

	if err := s.Restart(); err != nil {
		t.Fatalf("Restart: %v", err)
	}

	if s.State() != StatePlaying || s.Score() != 0 ||
		s.Lives() != parameter.InitialLives || s.Level() != 1 {
		t.Errorf("post-restart state %v score %d lives %d level %d",
			s.State(), s.Score(), s.Lives(), s.Level())
	}
}

func TestRestartIgnoredMidGame(t *testing.T) {
	s := newTestSession(t)
	s.score = 500

	if err := s.Restart(); err != nil {
		t.Fatalf("Restart: %v", err)
	}
	if s.Score() != 500 {
		t.Error("Restart wiped a running game")
	}
}

func TestToggleStressRebuildsArena(t *testing.T) {
	s := newTestSession(t)

	if err := s.ToggleStress(); err != nil {
		t.Fatalf("ToggleStress: %v", err)
	}
	if !s.Stress() || len(s.Ghosts()) != parameter.StressMaxGhosts {
		t.Errorf("stress %v with %d ghosts, want %d", s.Stress(), len(s.Ghosts()), parameter.StressMaxGhosts)
	}

	if err := s.ToggleStress(); err != nil {
		t.Fatalf("ToggleStress: %v", err)
	}
	if s.Stress() || len(s.Ghosts()) != 4 {
		t.Errorf("stress %v with %d ghosts after toggle off, want 4", s.Stress(), len(s.Ghosts()))
	}
}

func TestUpdateRunsManyTicksWithoutIncident(t *testing.T) {
	s := newTestSession(t)
	s.QueueDirection(core.Left)

	for i := 0; i < 500 && s.State() == StatePlaying; i++ {
		s.Update()
		for _, gh := range s.Ghosts() {
			if !s.Grid().IsWalkable(gh.Pos) {
				t.Fatalf("tick %d: ghost %d on a wall at %v", i, gh.ID, gh.Pos)
			}
		}
		if !s.Grid().IsWalkable(s.Player().Pos) {
			t.Fatalf("tick %d: player on a wall at %v", i, s.Player().Pos)
		}
	}
}
