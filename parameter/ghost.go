package parameter

// Ghost AI
const (
	// ChaserSearchInterval is the number of decision ticks between A*
	// recomputations; the cached path is followed in between
	ChaserSearchInterval = 8

	// AmbusherLookaheadTiles is how far ahead of the player's facing the
	// ambusher aims
	AmbusherLookaheadTiles = 4

	// FlankerLookaheadTiles is the player facing offset used as the pivot
	// of the flanker's doubled vector
	FlankerLookaheadTiles = 2

	// FlankerSnapRadius bounds the Manhattan ring search that snaps an
	// off-board or in-wall flanker goal to the nearest walkable cell
	FlankerSnapRadius = 6

	// SkittishChaseDistance is the FSM threshold in tiles:
	// distance < threshold scatters, >= threshold chases
	SkittishChaseDistance = 6

	// GhostMoveEvery is the ghost step cadence in game ticks
	GhostMoveEvery = 3

	// VulnerableMoveEvery is the slower cadence while frightened
	VulnerableMoveEvery = 4

	// StressChaserSearchInterval is the relaxed A* throttle applied to
	// chasers spawned in stress mode (load shedding, not fairness)
	StressChaserSearchInterval = 16
)
