package parameter

// Maze generation
const (
	// GridWidth is the board width in cells
	GridWidth = 28

	// GridHeight is the board height in cells
	GridHeight = 31

	// MazeBraiding removes this fraction of dead ends, adding loops.
	// 0.0 keeps the perfect spanning tree, 1.0 removes every dead end.
	MazeBraiding = 0.5
)
