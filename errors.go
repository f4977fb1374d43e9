package geofun

import "errors"

var (
	// ErrParse reports a malformed coordinate string.
	ErrParse = errors.New("geofun: invalid coordinate")
	// ErrIndex reports an index or length outside the two components of
	// a Point, Vector or Position.
	ErrIndex = errors.New("geofun: index out of range")
	// ErrDomain reports an argument outside an operation's domain.
	ErrDomain = errors.New("geofun: argument out of domain")
	// ErrComputation reports a solver that produced no finite result,
	// e.g. a rhumb line over a pole or a latitude beyond ±90.
	ErrComputation = errors.New("geofun: no solution")
)
