package core

// Point is a grid cell coordinate (column X, row Y)
type Point struct {
	X, Y int
}

// Add returns p translated by d
func (p Point) Add(d Point) Point {
	return Point{p.X + d.X, p.Y + d.Y}
}

// Sub returns the vector from q to p
func (p Point) Sub(q Point) Point {
	return Point{p.X - q.X, p.Y - q.Y}
}

// Scale returns p multiplied component-wise by k
func (p Point) Scale(k int) Point {
	return Point{p.X * k, p.Y * k}
}

// Manhattan returns the Manhattan distance between p and q
func (p Point) Manhattan(q Point) int {
	return abs(p.X-q.X) + abs(p.Y-q.Y)
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}

// Cardinal movement directions
var (
	Up    = Point{0, -1}
	Left  = Point{-1, 0}
	Down  = Point{0, 1}
	Right = Point{1, 0}
	Still = Point{0, 0}
)

// CardinalDirs is the fixed neighbor expansion priority.
// Search tie-breaking depends on this order staying stable.
var CardinalDirs = [4]Point{Up, Left, Down, Right}

// Opposite returns the reversed direction
func (p Point) Opposite() Point {
	return Point{-p.X, -p.Y}
}
