package geofun

import "github.com/tidwall/geodesic"

// WGS84 conforming ellispoid
// https://en.wikipedia.org/wiki/World_Geodetic_System
var WGS84 = NewEllipsoid(6378137, float64(1.)/298.257223563)

// Globe is a pre-initialized spherical representing Earth as a
// terrestrial globe.
var Globe = NewSpherical(6378137)

// Solver is the boundary to the geodesic and rhumb line problems that
// Position arithmetic is resolved through. All angles are in degrees and
// all distances in meters.
type Solver interface {
	GeodesicDirect(lat, lon, azi, dist float64) (lat2, lon2, azi2 float64)
	GeodesicInverse(lat1, lon1, lat2, lon2 float64) (azi1, dist, azi2 float64)
	RhumbDirect(lat, lon, azi, dist float64) (lat2, lon2, azi2 float64)
	RhumbInverse(lat1, lon1, lat2, lon2 float64) (azi1, dist, azi2 float64)
}

// Ellipsoid is a Solver for a reference ellipsoid.
type Ellipsoid struct {
	g          *geodesic.Ellipsoid
	rh         rhumb
	radius     float64
	flattening float64
	spherical  bool
}

// NewEllipsoid initializes a new ellipsoid.
//
// Param radius is the equatorial radius (meters).
// Param flattening is the flattening factor of the ellipsoid.
//
// The WGS84 package-level variable is a pre-initialized ellipsoid
// representing Earth.
func NewEllipsoid(radius, flattening float64) *Ellipsoid {
	return &Ellipsoid{
		g:          geodesic.NewEllipsoid(radius, flattening),
		rh:         newRhumb(radius, flattening),
		radius:     radius,
		flattening: flattening,
	}
}

// NewSpherical initializes a new ellipsoid that uses simplified
// great-circle operations on a sphere for the geodesic problems.
//
// Param radius is the equatorial radius (meters).
//
// The Globe package-level variable is a pre-initialized spherical
// representing Earth as a terrestrial globe.
func NewSpherical(radius float64) *Ellipsoid {
	e := NewEllipsoid(radius, 0)
	e.spherical = true
	return e
}

// Radius of the Ellipsoid
func (e *Ellipsoid) Radius() float64 {
	return e.radius
}

// Flattening of the Ellipsoid
func (e *Ellipsoid) Flattening() float64 {
	return e.flattening
}

// Spherical returns true if the ellipsoid was initialized using NewSpherical.
func (e *Ellipsoid) Spherical() bool {
	return e.spherical
}

// GeodesicInverse solves the inverse geodesic problem.
//
// Param lat1, lon1 is point 1 and lat2, lon2 is point 2 (degrees).
// Returns the azimuth at point 1 (degrees), the distance from point 1 to
// point 2 (meters) and the forward azimuth at point 2 (degrees).
//
// lat1 and lat2 should be in the range [-90,+90]; the azimuths returned are
// in the range [-180,+180]. Latitudes outside that range produce NaN.
func (e *Ellipsoid) GeodesicInverse(lat1, lon1, lat2, lon2 float64) (azi1, dist, azi2 float64) {
	if e.spherical {
		return sphericalInverse(e.radius, lat1, lon1, lat2, lon2)
	}
	e.g.Inverse(lat1, lon1, lat2, lon2, &dist, &azi1, &azi2)
	return azi1, dist, azi2
}

// GeodesicDirect solves the direct geodesic problem.
//
// Param lat, lon is the starting point (degrees), azi the azimuth at the
// starting point (degrees) and dist the distance to travel (meters,
// negative is ok). Returns the end point and the forward azimuth there.
//
// The values of lon2 and azi2 returned are in the range [-180,+180].
func (e *Ellipsoid) GeodesicDirect(lat, lon, azi, dist float64) (lat2, lon2, azi2 float64) {
	if e.spherical {
		return sphericalDirect(e.radius, lat, lon, azi, dist)
	}
	e.g.Direct(lat, lon, azi, dist, &lat2, &lon2, &azi2)
	return lat2, lon2, azi2
}

// GeodesicDirect solves the direct geodesic problem on WGS84.
func GeodesicDirect(lat, lon, azi, dist float64) (lat2, lon2, azi2 float64) {
	return WGS84.GeodesicDirect(lat, lon, azi, dist)
}

// GeodesicInverse solves the inverse geodesic problem on WGS84.
func GeodesicInverse(lat1, lon1, lat2, lon2 float64) (azi1, dist, azi2 float64) {
	return WGS84.GeodesicInverse(lat1, lon1, lat2, lon2)
}

// RhumbDirect solves the direct rhumb line problem on WGS84.
func RhumbDirect(lat, lon, azi, dist float64) (lat2, lon2, azi2 float64) {
	return WGS84.RhumbDirect(lat, lon, azi, dist)
}

// RhumbInverse solves the inverse rhumb line problem on WGS84.
func RhumbInverse(lat1, lon1, lat2, lon2 float64) (azi1, dist, azi2 float64) {
	return WGS84.RhumbInverse(lat1, lon1, lat2, lon2)
}
