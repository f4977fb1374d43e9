package geofun

import (
	"fmt"
	"math"
)

// Vector is a polar displacement: an azimuth in degrees and a length.
//
// Construction keeps the values as given; the accessors normalize, so a
// negative length reads back as the positive length with the azimuth
// turned around.
//
// The Cartesian decomposition uses X as the north axis (azimuth 0) and Y
// as the east axis (azimuth 90).
type Vector struct {
	azimuth float64
	length  float64
}

func NewVector(azimuth, length float64) Vector {
	return Vector{azimuth: azimuth, length: length}
}

// VectorFromPoint returns the Vector with the Cartesian decomposition p.
func VectorFromPoint(p Point) Vector {
	return Vector{
		azimuth: AngleMod(math.Atan2(p.Y, p.X) * degrees),
		length:  math.Hypot(p.X, p.Y),
	}
}

// VectorFromSlice builds a Vector from an (azimuth, length) slice that must
// have length 2.
func VectorFromSlice(s []float64) (Vector, error) {
	if len(s) != 2 {
		return Vector{}, fmt.Errorf("vector from sequence of length %d: %w", len(s), ErrIndex)
	}
	return NewVector(s[0], s[1]), nil
}

// Azimuth in [0, 360).
func (v Vector) Azimuth() float64 {
	if v.length < 0 {
		return AngleMod(v.azimuth + 180)
	}
	return AngleMod(v.azimuth)
}

// Length, never negative.
func (v Vector) Length() float64 {
	return math.Abs(v.length)
}

func (v *Vector) SetAzimuth(azimuth float64) {
	v.azimuth = AngleMod(azimuth)
	if v.length < 0 {
		v.length = -v.length
	}
}

// SetLength sets the length; a negative length turns the azimuth around.
func (v *Vector) SetLength(length float64) {
	v.azimuth = v.Azimuth()
	if length < 0 {
		v.azimuth = AngleMod(v.azimuth + 180)
		length = -length
	}
	v.length = length
}

// X is the north component.
func (v Vector) X() float64 {
	return math.Cos(v.Azimuth()*radians) * v.Length()
}

// Y is the east component.
func (v Vector) Y() float64 {
	return math.Sin(v.Azimuth()*radians) * v.Length()
}

func (v Vector) Point() Point {
	return Point{v.X(), v.Y()}
}

// Norm returns the unit vector with the same azimuth.
func (v Vector) Norm() Vector {
	return Vector{azimuth: v.Azimuth(), length: 1}
}

func (v Vector) Dot(o Vector) float64 {
	return v.X()*o.X() + v.Y()*o.Y()
}

func (v Vector) Cross(o Vector) float64 {
	return v.X()*o.Y() - o.X()*v.Y()
}

func (v Vector) Add(o Vector) Vector {
	return VectorFromPoint(v.Point().Add(o.Point()))
}

func (v Vector) Sub(o Vector) Vector {
	return VectorFromPoint(v.Point().Sub(o.Point()))
}

func (v Vector) Neg() Vector {
	return Vector{azimuth: AngleMod(v.Azimuth() + 180), length: v.Length()}
}

// Scale multiplies the length by s; a negative s reverses the vector.
func (v Vector) Scale(s float64) Vector {
	return Vector{azimuth: v.Azimuth(), length: v.Length() * s}
}

// Rotate turns the vector clockwise by deg degrees.
func (v Vector) Rotate(deg float64) Vector {
	return Vector{azimuth: AngleMod(v.Azimuth() + deg), length: v.Length()}
}

// Index returns the azimuth for 0 (or -2) and the length for 1 (or -1).
func (v Vector) Index(i int) (float64, error) {
	switch wrapIndex(i) {
	case 0:
		return v.Azimuth(), nil
	case 1:
		return v.Length(), nil
	}
	return 0, indexError("Vector", i)
}

func (v *Vector) SetIndex(i int, value float64) error {
	switch wrapIndex(i) {
	case 0:
		v.SetAzimuth(value)
	case 1:
		v.SetLength(value)
	default:
		return indexError("Vector", i)
	}
	return nil
}

// Components returns the normalized azimuth and length.
func (v Vector) Components() (float64, float64) {
	return v.Azimuth(), v.Length()
}

// Equal compares the normalized azimuth and length against a Vector or
// Tuple, and the x, y decomposition against a Point.
func (v Vector) Equal(o Components) bool {
	return Equal(v, o)
}

func (v Vector) AlmostEqual(o Components) bool {
	return AlmostEqual(v, o)
}

func (v Vector) String() string {
	return fmt.Sprintf("%.3f, %.3f", v.Azimuth(), v.Length())
}

func (v Vector) GoString() string {
	return "Vector(" + formatRepr(v.Azimuth()) + ", " + formatRepr(v.Length()) + ")"
}
