package snake

// Grid dimensions. Valid body and target positions are strictly interior.
const (
	Width  = 80
	Height = 50
)

// Point is a cell on the grid.
type Point struct {
	X, Y int
}

func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

// Interior reports whether p lies strictly inside the grid border.
func (p Point) Interior() bool {
	return p.X > 0 && p.X < Width && p.Y > 0 && p.Y < Height
}

// Center is where a fresh body spawns.
func Center() Point {
	return Point{X: Width / 2, Y: Height / 2}
}

type Direction int

const (
	Up Direction = iota
	Down
	Left
	Right
)

func (d Direction) String() string {
	switch d {
	case Up:
		return "up"
	case Down:
		return "down"
	case Left:
		return "left"
	case Right:
		return "right"
	}
	return "unknown"
}

// Unit returns the one-cell offset for d. Y grows downwards.
func (d Direction) Unit() Point {
	switch d {
	case Up:
		return Point{X: 0, Y: -1}
	case Down:
		return Point{X: 0, Y: 1}
	case Left:
		return Point{X: -1, Y: 0}
	case Right:
		return Point{X: 1, Y: 0}
	}
	return Point{}
}

func (d Direction) Opposite() Direction {
	switch d {
	case Up:
		return Down
	case Down:
		return Up
	case Left:
		return Right
	default:
		return Left
	}
}
