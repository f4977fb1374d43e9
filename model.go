package geofun

import (
	"fmt"
	"math"
)

// Model resolves Position arithmetic through a Solver. The Position
// methods use a Model over WGS84; build another one to swap the solver.
//
// A Model holds no mutable state and is safe for concurrent use.
type Model struct {
	solver Solver
}

var defaultModel = NewModel(WGS84)

func NewModel(s Solver) *Model {
	return &Model{solver: s}
}

// Sub solves the inverse geodesic problem from b to a, so that
// b + (a - b) == a.
func (m *Model) Sub(a, b Position) (Vector, error) {
	azi, dist, _ := m.solver.GeodesicInverse(b.latitude, b.longitude, a.latitude, a.longitude)
	if !finite(azi, dist) {
		return Vector{}, fmt.Errorf("geodesic from %v to %v: %w", b, a, ErrComputation)
	}
	return NewVector(azi, dist), nil
}

// Div solves the inverse rhumb line problem from b to a, so that
// b * (a / b) == a.
func (m *Model) Div(a, b Position) (Vector, error) {
	azi, dist, _ := m.solver.RhumbInverse(b.latitude, b.longitude, a.latitude, a.longitude)
	if !finite(azi, dist) {
		return Vector{}, fmt.Errorf("rhumb line from %v to %v: %w", b, a, ErrComputation)
	}
	return NewVector(azi, dist), nil
}

// Add solves the direct geodesic problem: start at p and travel the length
// of v with initial azimuth v.Azimuth().
func (m *Model) Add(p Position, v Vector) (Position, error) {
	lat, lon, _ := m.solver.GeodesicDirect(p.latitude, p.longitude, v.Azimuth(), v.Length())
	if !finite(lat, lon) {
		return Position{}, fmt.Errorf("geodesic from %v along %v: %w", p, v, ErrComputation)
	}
	return NewPosition(lat, lon), nil
}

// Mul solves the direct rhumb line problem: start at p and travel the
// length of v at the constant azimuth v.Azimuth().
func (m *Model) Mul(p Position, v Vector) (Position, error) {
	lat, lon, _ := m.solver.RhumbDirect(p.latitude, p.longitude, v.Azimuth(), v.Length())
	if !finite(lat, lon) {
		return Position{}, fmt.Errorf("rhumb line from %v along %v: %w", p, v, ErrComputation)
	}
	return NewPosition(lat, lon), nil
}

func (m *Model) SubVector(p Position, v Vector) (Position, error) {
	return m.Add(p, v.Neg())
}

func (m *Model) DivVector(p Position, v Vector) (Position, error) {
	return m.Mul(p, v.Neg())
}

func (m *Model) AddAssign(p *Position, v Vector) error {
	return assign(p, v, m.Add)
}

func (m *Model) MulAssign(p *Position, v Vector) error {
	return assign(p, v, m.Mul)
}

func assign(p *Position, v Vector, op func(Position, Vector) (Position, error)) error {
	r, err := op(*p, v)
	if err != nil {
		return err
	}
	*p = r
	return nil
}

func finite(a, b float64) bool {
	return !math.IsNaN(a) && !math.IsInf(a, 0) && !math.IsNaN(b) && !math.IsInf(b, 0)
}
