// Package engine runs the tick-driven game session: one Update call is one
// simulation frame, executed entirely on the caller's goroutine. Pursuer
// decisions read a consistent snapshot of the board and player taken at the
// start of the frame; pellet consumption happens in player-movement
// resolution, never during pursuer decisions.
package engine

import (
	"fmt"
	"math/rand"

	"github.com/lixenwraith/chomp/core"
	"github.com/lixenwraith/chomp/ghost"
	"github.com/lixenwraith/chomp/maze"
	"github.com/lixenwraith/chomp/parameter"
	"github.com/lixenwraith/chomp/player"
)

// State is the session lifecycle phase
type State uint8

const (
	StatePlaying State = iota
	StatePaused
	StateGameOver
)

// Config carries every tunable the session accepts; no globals
type Config struct {
	GridWidth, GridHeight int
	Braiding              float64
	Seed                  int64 // 0 = time-derived, new maze each level

	ChaserInterval    int // A* recompute throttle, decision ticks
	AmbusherLookahead int
	FlankerLookahead  int
	SkittishThreshold int

	Lives  int
	Stress bool
}

// DefaultConfig returns the standard game parameters
func DefaultConfig() Config {
	return Config{
		GridWidth:         parameter.GridWidth,
		GridHeight:        parameter.GridHeight,
		Braiding:          parameter.MazeBraiding,
		ChaserInterval:    parameter.ChaserSearchInterval,
		AmbusherLookahead: parameter.AmbusherLookaheadTiles,
		FlankerLookahead:  parameter.FlankerLookaheadTiles,
		SkittishThreshold: parameter.SkittishChaseDistance,
		Lives:             parameter.InitialLives,
	}
}

// Session is the complete game state for one run
type Session struct {
	cfg Config
	rng *rand.Rand

	grid        *maze.Grid
	playerSpawn core.Point
	ghostSpawns []core.Point

	player *player.Player
	ghosts []*ghost.Ghost
	// anchorID is the arena index of the chaser whose position the
	// flanker reads as a snapshot
	anchorID int

	state State
	tick  int

	score        int
	lives        int
	level        int
	pelletsEaten int

	vulnTicks  int // Remaining frightened ticks, 0 = off
	eatenChain int // In-a-row ghost meals for the score multiplier

	fruitActive bool
	fruitPos    core.Point
	fruitTicks  int

	debug bool

	events []Event
}

// NewSession generates the first level and spawns all agents
func NewSession(cfg Config) (*Session, error) {
	seed := cfg.Seed
	if seed == 0 {
		seed = rand.Int63()
	}
	s := &Session{
		cfg:   cfg,
		rng:   rand.New(rand.NewSource(seed)),
		lives: cfg.Lives,
		level: 1,
	}
	if err := s.buildLevel(); err != nil {
		return nil, err
	}
	return s, nil
}

// buildLevel regenerates the maze wholesale and places agents
func (s *Session) buildLevel() error {
	res, err := maze.Generate(maze.Config{
		Width:    s.cfg.GridWidth,
		Height:   s.cfg.GridHeight,
		Braiding: s.cfg.Braiding,
		Seed:     s.rng.Int63(),
	})
	if err != nil {
		return fmt.Errorf("level %d: %w", s.level, err)
	}
	s.grid = res.Grid
	s.playerSpawn = res.PlayerSpawn
	s.ghostSpawns = res.GhostSpawns

	s.player = player.New(s.playerSpawn)
	s.spawnGhosts()

	s.vulnTicks = 0
	s.eatenChain = 0
	s.pelletsEaten = 0
	s.fruitActive = false
	return nil
}

// spawnGhosts fills the arena: the four brains at the ghost house, plus
// stress-mode extras biased toward O(1) brains with a relaxed A* throttle
// so fifty pursuers do not pile up searches on one tick
func (s *Session) spawnGhosts() {
	scatter := core.Point{X: 1, Y: s.cfg.GridHeight - 2}

	s.ghosts = s.ghosts[:0]
	add := func(b ghost.Brain, at core.Point) *ghost.Ghost {
		gh := ghost.New(len(s.ghosts), b, at)
		s.ghosts = append(s.ghosts, gh)
		return gh
	}

	sp := s.ghostSpawns
	anchor := add(ghost.NewChaser(s.cfg.ChaserInterval), sp[0])
	s.anchorID = anchor.ID
	add(ghost.NewAmbusher(s.cfg.AmbusherLookahead, parameter.FlankerSnapRadius), sp[1])
	add(ghost.NewFlanker(s.cfg.FlankerLookahead, parameter.FlankerSnapRadius), sp[2])
	add(ghost.NewSkittish(s.cfg.SkittishThreshold, scatter), sp[3])

	if !s.cfg.Stress {
		return
	}
	for len(s.ghosts) < parameter.StressMaxGhosts {
		at := core.Point{
			X: 1 + s.rng.Intn(s.cfg.GridWidth-2),
			Y: 1 + s.rng.Intn(s.cfg.GridHeight-2),
		}
		if !s.grid.IsWalkable(at) {
			continue
		}
		switch len(s.ghosts) % 3 {
		case 0:
			add(ghost.NewChaser(parameter.StressChaserSearchInterval), at)
		case 1:
			add(ghost.NewAmbusher(s.cfg.AmbusherLookahead, parameter.FlankerSnapRadius), at)
		default:
			add(ghost.NewSkittish(s.cfg.SkittishThreshold, scatter), at)
		}
	}
}

// Update advances the simulation one tick and returns the events it
// produced. The returned slice is reused across calls.
func (s *Session) Update() []Event {
	if s.state != StatePlaying {
		return nil
	}
	s.events = s.events[:0]
	s.tick++

	if s.vulnTicks > 0 {
		s.vulnTicks--
		if s.vulnTicks == 0 {
			s.endVulnerable()
		}
	}
	if s.fruitActive {
		s.fruitTicks--
		if s.fruitTicks <= 0 {
			s.fruitActive = false
		}
	}

	if s.tick%parameter.PlayerMoveEvery == 0 {
		s.player.Step(s.grid)
		s.resolvePlayerCell()
		if s.resolveCollisions() {
			return s.events
		}
	}

	// Frame-consistent snapshots for all pursuer decisions
	playerPos := s.player.Pos
	playerDir := s.player.Dir
	anchorPos := s.ghosts[s.anchorID].Pos

	for _, gh := range s.ghosts {
		every := parameter.GhostMoveEvery
		if gh.Vulnerable {
			every = parameter.VulnerableMoveEvery
		}
		if s.tick%every != 0 {
			continue
		}
		gh.Step(ghost.Context{
			Grid:      s.grid,
			Self:      gh.Pos,
			Player:    playerPos,
			PlayerDir: playerDir,
			Anchor:    anchorPos,
			HasAnchor: gh.ID != s.anchorID,
		}, s.rng)
	}
	if s.resolveCollisions() {
		return s.events
	}

	if s.grid.RemainingPellets() == 0 {
		s.emit(EventLevelClear, 0)
		s.level++
		if err := s.buildLevel(); err != nil {
			// Generation exhausted its retries; end the run instead of
			// handing out a broken board
			s.state = StateGameOver
			s.emit(EventGameOver, 0)
		}
	}

	return s.events
}

// resolvePlayerCell applies pellet and fruit pickup at the player's cell
func (s *Session) resolvePlayerCell() {
	switch s.grid.ConsumePellet(s.player.Pos) {
	case maze.PelletDot:
		s.score += parameter.PelletScore
		s.pelletsEaten++
		s.emit(EventPellet, parameter.PelletScore)
		s.maybeSpawnFruit()
	case maze.PelletPower:
		s.score += parameter.PowerPelletScore
		s.emit(EventPowerPellet, parameter.PowerPelletScore)
		s.startVulnerable()
	}

	if s.fruitActive && s.player.Pos == s.fruitPos {
		s.fruitActive = false
		s.score += parameter.BonusFruitScore
		s.emit(EventFruitEaten, parameter.BonusFruitScore)
	}
}

func (s *Session) maybeSpawnFruit() {
	if s.fruitActive {
		return
	}
	if s.pelletsEaten != parameter.BonusFruit1Threshold && s.pelletsEaten != parameter.BonusFruit2Threshold {
		return
	}
	pos := snapCenter(s.grid)
	s.fruitActive = true
	s.fruitPos = pos
	s.fruitTicks = parameter.BonusFruitTicks
	s.emit(EventFruitSpawn, 0)
}

// snapCenter returns the board center or the nearest walkable cell to it
func snapCenter(g *maze.Grid) core.Point {
	center := core.Point{X: g.Width / 2, Y: g.Height / 2}
	if g.IsWalkable(center) {
		return center
	}
	var buf [4]core.Point
	if n := g.Neighbors(center, buf[:0]); len(n) > 0 {
		return n[0]
	}
	return center
}

func (s *Session) startVulnerable() {
	s.vulnTicks = parameter.VulnerableTicks
	s.eatenChain = 0
	for _, gh := range s.ghosts {
		if !gh.Vulnerable {
			gh.Reverse()
		}
		gh.Vulnerable = true
	}
}

func (s *Session) endVulnerable() {
	s.eatenChain = 0
	for _, gh := range s.ghosts {
		gh.Vulnerable = false
	}
}

// resolveCollisions handles player/ghost contact. Returns true when the
// frame ended early (death or game over).
func (s *Session) resolveCollisions() bool {
	for _, gh := range s.ghosts {
		if gh.Pos != s.player.Pos {
			continue
		}
		if gh.Vulnerable {
			s.eatenChain++
			value := parameter.GhostScoreBase * s.eatenChain
			s.score += value
			s.emit(EventGhostEaten, value)
			gh.Reset()
			continue
		}

		s.lives--
		s.emit(EventPlayerDeath, 0)
		if s.lives <= 0 {
			s.state = StateGameOver
			s.emit(EventGameOver, 0)
			return true
		}
		s.player.Reset()
		for _, g2 := range s.ghosts {
			g2.Reset()
		}
		s.vulnTicks = 0
		s.eatenChain = 0
		return true
	}
	return false
}

func (s *Session) emit(kind EventKind, value int) {
	s.events = append(s.events, Event{Kind: kind, Value: value})
}

// --- Shell-facing controls and accessors ---

// QueueDirection forwards an input intent to the player
func (s *Session) QueueDirection(dir core.Point) {
	if s.state == StatePlaying {
		s.player.Queue(dir)
	}
}

// TogglePause flips between playing and paused
func (s *Session) TogglePause() {
	switch s.state {
	case StatePlaying:
		s.state = StatePaused
	case StatePaused:
		s.state = StatePlaying
	}
}

// ToggleDebug flips the target/state overlay
func (s *Session) ToggleDebug() {
	s.debug = !s.debug
}

// ToggleStress flips stress mode and rebuilds the level with the new
// pursuer population
func (s *Session) ToggleStress() error {
	s.cfg.Stress = !s.cfg.Stress
	return s.buildLevel()
}

// Restart begins a fresh run after game over
func (s *Session) Restart() error {
	if s.state != StateGameOver {
		return nil
	}
	s.score = 0
	s.lives = s.cfg.Lives
	s.level = 1
	s.state = StatePlaying
	return s.buildLevel()
}

func (s *Session) Grid() *maze.Grid       { return s.grid }
func (s *Session) Player() *player.Player { return s.player }
func (s *Session) Ghosts() []*ghost.Ghost { return s.ghosts }
func (s *Session) State() State           { return s.state }
func (s *Session) Score() int             { return s.score }
func (s *Session) Lives() int             { return s.lives }
func (s *Session) Level() int             { return s.level }
func (s *Session) Debug() bool            { return s.debug }
func (s *Session) Stress() bool           { return s.cfg.Stress }
func (s *Session) VulnerableActive() bool { return s.vulnTicks > 0 }
func (s *Session) FruitActive() bool      { return s.fruitActive }
func (s *Session) FruitPos() core.Point   { return s.fruitPos }
