package geofun

import (
	"fmt"
	"math"
	"strconv"

	"golang.org/x/exp/constraints"
)

// Components is implemented by values that reduce to two plain numbers:
// Point (x, y), Vector (azimuth, length), Position (latitude, longitude)
// and Tuple.
type Components interface {
	Components() (float64, float64)
}

// Tuple is a bare pair of numbers. It compares structurally against any
// of the coordinate types.
type Tuple [2]float64

// TupleOf builds a Tuple from any pair of numbers.
func TupleOf[T constraints.Integer | constraints.Float](a, b T) Tuple {
	return Tuple{float64(a), float64(b)}
}

// TupleFromSlice builds a Tuple from a slice that must have length 2.
func TupleFromSlice(s []float64) (Tuple, error) {
	if len(s) != 2 {
		return Tuple{}, fmt.Errorf("sequence of length %d: %w", len(s), ErrIndex)
	}
	return Tuple{s[0], s[1]}, nil
}

func (t Tuple) Components() (float64, float64) {
	return t[0], t[1]
}

// Equal reports whether a and b decompose to the same two numbers. A
// Vector compared with a Point is decomposed into its x, y components
// first, so the comparison is symmetric across the two.
func Equal(a, b Components) bool {
	a0, a1, b0, b1 := decompose(a, b)
	return a0 == b0 && a1 == b1
}

// AlmostEqual is Equal with a relative tolerance of 1e-13 (absolute for
// values close to zero), enough to absorb solver round trips.
func AlmostEqual(a, b Components) bool {
	a0, a1, b0, b1 := decompose(a, b)
	return floatsEqual(a0, b0) && floatsEqual(a1, b1)
}

func decompose(a, b Components) (a0, a1, b0, b1 float64) {
	if isCartesianPair(a, b) {
		a0, a1 = cartesian(a)
		b0, b1 = cartesian(b)
		return
	}
	a0, a1 = a.Components()
	b0, b1 = b.Components()
	return
}

func isCartesianPair(a, b Components) bool {
	_, ap := a.(Point)
	_, bp := b.(Point)
	_, av := a.(Vector)
	_, bv := b.(Vector)
	return (ap && bv) || (av && bp)
}

func cartesian(c Components) (float64, float64) {
	if v, ok := c.(Vector); ok {
		return v.X(), v.Y()
	}
	return c.Components()
}

func floatsEqual(a, b float64) bool {
	absmax := math.Max(math.Abs(a), math.Abs(b))
	eps := 1e-13
	if absmax > 1e-7 {
		eps *= absmax
	}
	return math.Abs(a-b) < eps
}

// formatRepr renders a float for the GoString forms: one decimal for
// integral values, otherwise 15 significant digits.
func formatRepr(v float64) string {
	if _, frac := math.Modf(v); frac == 0 {
		return strconv.FormatFloat(v, 'f', 1, 64)
	}
	return strconv.FormatFloat(v, 'g', 15, 64)
}
