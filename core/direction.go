package core

// Direction is an axis-aligned unit step, or DirNone
type Direction struct {
	X, Y int
}

var (
	DirNone  = Direction{0, 0}
	DirUp    = Direction{0, -1}
	DirDown  = Direction{0, 1}
	DirLeft  = Direction{-1, 0}
	DirRight = Direction{1, 0}
)

// Cardinals is the fixed neighbour expansion order used by search and indexing
// Order: Up, Right, Down, Left
var Cardinals = [4]Direction{DirUp, DirRight, DirDown, DirLeft}

// IsZero reports whether d is DirNone
func (d Direction) IsZero() bool {
	return d.X == 0 && d.Y == 0
}

// IsCardinal reports whether d is exactly one of the four unit vectors
func (d Direction) IsCardinal() bool {
	return (d.X == 0) != (d.Y == 0) && d.X >= -1 && d.X <= 1 && d.Y >= -1 && d.Y <= 1
}

// Opposite returns the reversed direction
func (d Direction) Opposite() Direction {
	return Direction{-d.X, -d.Y}
}

// DirectionTo returns the unit step from p toward an adjacent q, DirNone otherwise
func DirectionTo(p, q Point) Direction {
	d := Direction{q.X - p.X, q.Y - p.Y}
	if !d.IsCardinal() {
		return DirNone
	}
	return d
}

func (d Direction) String() string {
	switch d {
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	case DirNone:
		return "none"
	}
	return "invalid"
}
