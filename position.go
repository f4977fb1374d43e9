package geofun

import (
	"fmt"

	"golang.org/x/exp/constraints"
)

// Position is a geodetic coordinate in degrees.
//
// The longitude is kept in (-180, 180]. The latitude is stored as given,
// without clamping; a latitude beyond ±90 makes the solvers fail with
// ErrComputation.
type Position struct {
	latitude  float64
	longitude float64
}

// NewPosition returns the Position at the given latitude and longitude in
// decimal degrees.
func NewPosition(latitude, longitude float64) Position {
	return Position{latitude: latitude, longitude: AngleModSigned(longitude)}
}

// NewPositionSeconds returns the Position at the given latitude and
// longitude in arc-seconds.
//
// This is the legacy integral-means-seconds path: PositionOf and the string
// constructors route integral input here, so PositionOf(1, 1) is not
// PositionOf(1.0, 1.0).
func NewPositionSeconds(latitude, longitude int) Position {
	return fromArcSeconds(float64(latitude), float64(longitude))
}

func fromArcSeconds(latitude, longitude float64) Position {
	return NewPosition(latitude/3600, longitude/3600)
}

// PositionOf builds a Position from two numbers: integer types are taken
// as arc-seconds, floating point types as degrees.
func PositionOf[T constraints.Integer | constraints.Float](latitude, longitude T) Position {
	if T(1)/T(2) == 0 {
		return fromArcSeconds(float64(latitude), float64(longitude))
	}
	return NewPosition(float64(latitude), float64(longitude))
}

// PositionFromSlice builds a Position from a (latitude, longitude) slice
// in degrees that must have length 2.
func PositionFromSlice(s []float64) (Position, error) {
	if len(s) != 2 {
		return Position{}, fmt.Errorf("position from sequence of length %d: %w", len(s), ErrIndex)
	}
	return NewPosition(s[0], s[1]), nil
}

func (p Position) Latitude() float64 {
	return p.latitude
}

func (p Position) Longitude() float64 {
	return p.longitude
}

func (p *Position) SetLatitude(latitude float64) {
	p.latitude = latitude
}

func (p *Position) SetLongitude(longitude float64) {
	p.longitude = AngleModSigned(longitude)
}

// Index returns the latitude for 0 (or -2) and the longitude for 1 (or -1).
func (p Position) Index(i int) (float64, error) {
	switch wrapIndex(i) {
	case 0:
		return p.latitude, nil
	case 1:
		return p.longitude, nil
	}
	return 0, indexError("Position", i)
}

func (p *Position) SetIndex(i int, value float64) error {
	switch wrapIndex(i) {
	case 0:
		p.SetLatitude(value)
	case 1:
		p.SetLongitude(value)
	default:
		return indexError("Position", i)
	}
	return nil
}

func (p Position) Components() (float64, float64) {
	return p.latitude, p.longitude
}

// Equal compares latitude and longitude exactly against a Position or
// Tuple.
func (p Position) Equal(o Components) bool {
	return Equal(p, o)
}

// AlmostEqual is Equal within the tolerance of a solver round trip.
func (p Position) AlmostEqual(o Components) bool {
	return AlmostEqual(p, o)
}

// Sub returns the vector from q to p along the geodesic on WGS84.
func (p Position) Sub(q Position) (Vector, error) {
	return defaultModel.Sub(p, q)
}

// Div returns the vector from q to p along the rhumb line on WGS84.
func (p Position) Div(q Position) (Vector, error) {
	return defaultModel.Div(p, q)
}

// Add travels v along the geodesic on WGS84.
func (p Position) Add(v Vector) (Position, error) {
	return defaultModel.Add(p, v)
}

// Mul travels v along the rhumb line on WGS84.
func (p Position) Mul(v Vector) (Position, error) {
	return defaultModel.Mul(p, v)
}

// SubVector travels v backwards along the geodesic on WGS84.
func (p Position) SubVector(v Vector) (Position, error) {
	return defaultModel.SubVector(p, v)
}

// DivVector travels v backwards along the rhumb line on WGS84.
func (p Position) DivVector(v Vector) (Position, error) {
	return defaultModel.DivVector(p, v)
}

// AddAssign replaces p with p.Add(v). p is left untouched on error.
func (p *Position) AddAssign(v Vector) error {
	return defaultModel.AddAssign(p, v)
}

// MulAssign replaces p with p.Mul(v). p is left untouched on error.
func (p *Position) MulAssign(v Vector) error {
	return defaultModel.MulAssign(p, v)
}

func (p Position) String() string {
	return fmt.Sprintf("%.8f, %.8f", p.latitude, p.longitude)
}

func (p Position) GoString() string {
	return "Position(" + formatRepr(p.latitude) + ", " + formatRepr(p.longitude) + ")"
}
