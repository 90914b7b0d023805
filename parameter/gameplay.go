package parameter

// Game loop
const (
	// TickRate is game logic updates per second
	TickRate = 20

	// PlayerMoveEvery is the player step cadence in game ticks
	PlayerMoveEvery = 2
)

// Scoring
const (
	InitialLives = 3

	PelletScore      = 10
	PowerPelletScore = 50

	// GhostScoreBase is multiplied by the in-a-row eaten count
	GhostScoreBase = 200

	BonusFruitScore = 100
)

// Timers, in game ticks
const (
	// VulnerableTicks is how long ghosts stay edible after a power pellet
	VulnerableTicks = 8 * TickRate

	// BonusFruitTicks is how long a spawned fruit stays on the board
	BonusFruitTicks = 10 * TickRate
)

// Bonus fruit pellet thresholds
const (
	BonusFruit1Threshold = 70
	BonusFruit2Threshold = 170
)

// Stress mode
const (
	// StressMaxGhosts is the total pursuer cap with stress mode on
	StressMaxGhosts = 50
)
