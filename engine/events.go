package engine

// EventKind tags a gameplay occurrence surfaced by one Update tick.
// The shell maps these to sound effects; nothing in the engine blocks on
// a consumer.
type EventKind uint8

const (
	EventPellet EventKind = iota
	EventPowerPellet
	EventFruitSpawn
	EventFruitEaten
	EventGhostEaten
	EventPlayerDeath
	EventLevelClear
	EventGameOver
)

// Event is one occurrence; Value carries the score delta where relevant
type Event struct {
	Kind  EventKind
	Value int
}
