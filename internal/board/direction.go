// Package board implements the grid primitives, tile/polyomino/glue model,
// and the tilt simulator: the concrete and mutable state a motion planner
// searches over.
package board

// Direction is one of the four tilt directions.
type Direction uint8

const (
	North Direction = iota
	East
	South
	West
)

// Directions lists all four directions in a fixed, stable order, used
// wherever code needs to iterate "every direction" deterministically.
var Directions = [4]Direction{North, East, South, West}

func (d Direction) String() string {
	switch d {
	case North:
		return "N"
	case East:
		return "E"
	case South:
		return "S"
	case West:
		return "W"
	default:
		return "?"
	}
}

// Vector returns the unit displacement a tile undergoes when the board is
// tilted in direction d, in board coordinates where Y increases downward.
func (d Direction) Vector() Point {
	switch d {
	case North:
		return Point{X: 0, Y: -1}
	case East:
		return Point{X: 1, Y: 0}
	case South:
		return Point{X: 0, Y: 1}
	case West:
		return Point{X: -1, Y: 0}
	default:
		panic("board: invalid direction")
	}
}

// Inverse returns the opposite direction.
func (d Direction) Inverse() Direction {
	switch d {
	case North:
		return South
	case South:
		return North
	case East:
		return West
	case West:
		return East
	default:
		panic("board: invalid direction")
	}
}

// Point is an integer grid coordinate, used both as an absolute board
// position and as a tile's position relative to its polyomino's anchor.
type Point struct {
	X, Y int
}

// Add returns p+q.
func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

// Sub returns p-q.
func (p Point) Sub(q Point) Point {
	return Point{X: p.X - q.X, Y: p.Y - q.Y}
}

// Neighbor returns the point adjacent to p in direction d.
func (p Point) Neighbor(d Direction) Point {
	return p.Add(d.Vector())
}

// TaxicabDistance returns the L1 distance between p and q.
func TaxicabDistance(p, q Point) int {
	return absInt(p.X-q.X) + absInt(p.Y-q.Y)
}

func absInt(n int) int {
	if n < 0 {
		return -n
	}
	return n
}

// DirectNeighbors returns the four orthogonally adjacent points of p, in
// the fixed N,E,S,W order.
func DirectNeighbors(p Point) [4]Point {
	return [4]Point{
		p.Neighbor(North),
		p.Neighbor(East),
		p.Neighbor(South),
		p.Neighbor(West),
	}
}

// BoxNeighbors returns the eight points surrounding p (orthogonal and
// diagonal).
func BoxNeighbors(p Point) [8]Point {
	return [8]Point{
		{p.X - 1, p.Y - 1}, {p.X, p.Y - 1}, {p.X + 1, p.Y - 1},
		{p.X - 1, p.Y}, {p.X + 1, p.Y},
		{p.X - 1, p.Y + 1}, {p.X, p.Y + 1}, {p.X + 1, p.Y + 1},
	}
}

// IsLegalIndex reports whether p lies within a width x height grid whose
// origin is (0,0).
func IsLegalIndex(p Point, width, height int) bool {
	return p.X >= 0 && p.X < width && p.Y >= 0 && p.Y < height
}
