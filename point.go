package geofun

import "fmt"

// Point is a planar offset or location in abstract Cartesian units.
type Point struct {
	X, Y float64
}

// PointFromSlice builds a Point from a slice that must have length 2.
func PointFromSlice(s []float64) (Point, error) {
	if len(s) != 2 {
		return Point{}, fmt.Errorf("point from sequence of length %d: %w", len(s), ErrIndex)
	}
	return Point{s[0], s[1]}, nil
}

func (p Point) Add(q Point) Point {
	return Point{p.X + q.X, p.Y + q.Y}
}

func (p Point) Sub(q Point) Point {
	return Point{p.X - q.X, p.Y - q.Y}
}

func (p Point) Scale(s float64) Point {
	return Point{p.X * s, p.Y * s}
}

func (p Point) Neg() Point {
	return Point{-p.X, -p.Y}
}

// Index returns X for 0 (or -2) and Y for 1 (or -1).
func (p Point) Index(i int) (float64, error) {
	switch wrapIndex(i) {
	case 0:
		return p.X, nil
	case 1:
		return p.Y, nil
	}
	return 0, indexError("Point", i)
}

// SetIndex sets the component Index(i) would return.
func (p *Point) SetIndex(i int, v float64) error {
	switch wrapIndex(i) {
	case 0:
		p.X = v
	case 1:
		p.Y = v
	default:
		return indexError("Point", i)
	}
	return nil
}

func (p Point) Components() (float64, float64) {
	return p.X, p.Y
}

// Equal compares exactly against a Point, Tuple, Position or, through its
// x, y decomposition, a Vector.
func (p Point) Equal(o Components) bool {
	return Equal(p, o)
}

func (p Point) AlmostEqual(o Components) bool {
	return AlmostEqual(p, o)
}

func (p Point) String() string {
	return fmt.Sprintf("%.3f, %.3f", p.X, p.Y)
}

func (p Point) GoString() string {
	return "Point(" + formatRepr(p.X) + ", " + formatRepr(p.Y) + ")"
}

func wrapIndex(i int) int {
	if i < 0 {
		return i + 2
	}
	return i
}

func indexError(kind string, i int) error {
	return fmt.Errorf("index %d of %s: %w", i, kind, ErrIndex)
}
