package geofun

import "math"

// Below this latitude difference (radians) a rhumb line is treated as
// running along a parallel and the divided differences are replaced by
// derivatives at the mid latitude.
const rhumbParallel = 1e-5

// rhumb holds the per-ellipsoid constants for rhumb line problems: the
// rectifying radius and the series converting between geographic and
// rectifying latitude, both expanded in the third flattening n.
type rhumb struct {
	a    float64
	e    float64
	e2   float64
	rect float64
	fwd  [4]float64
	inv  [4]float64
}

func newRhumb(a, f float64) rhumb {
	n := f / (2 - f)
	n2 := n * n
	n3 := n2 * n
	n4 := n3 * n
	e2 := f * (2 - f)
	return rhumb{
		a:    a,
		e:    math.Sqrt(e2),
		e2:   e2,
		rect: a / (1 + n) * (1 + n2/4 + n4/64),
		fwd: [4]float64{
			-(3*n/2 - 9*n3/16),
			15*n2/16 - 15*n4/32,
			-35 * n3 / 48,
			315 * n4 / 512,
		},
		inv: [4]float64{
			3*n/2 - 27*n3/32,
			21*n2/16 - 55*n4/32,
			151 * n3 / 96,
			1097 * n4 / 512,
		},
	}
}

func sinSeries(x float64, c *[4]float64) float64 {
	return x + c[0]*math.Sin(2*x) + c[1]*math.Sin(4*x) + c[2]*math.Sin(6*x) + c[3]*math.Sin(8*x)
}

// rectifying returns the rectifying latitude μ of φ; the meridian distance
// from the equator is rect·μ.
func (r *rhumb) rectifying(φ float64) float64 {
	return sinSeries(φ, &r.fwd)
}

// footpoint is the inverse of rectifying.
func (r *rhumb) footpoint(μ float64) float64 {
	return sinSeries(μ, &r.inv)
}

// isometric returns the isometric latitude ψ of φ, infinite at the poles.
func (r *rhumb) isometric(φ float64) float64 {
	if math.Abs(φ) == math.Pi/2 {
		return math.Copysign(math.Inf(1), φ)
	}
	return math.Asinh(math.Tan(φ)) - r.e*math.Atanh(r.e*math.Sin(φ))
}

// parallelRadius returns the radius of the parallel at φ, which is also
// dM/dψ.
func (r *rhumb) parallelRadius(φ float64) float64 {
	s := math.Sin(φ)
	return r.a * math.Cos(φ) / math.Sqrt(1-r.e2*s*s)
}

// RhumbDirect solves the direct rhumb line problem.
//
// Param lat, lon is the starting point (degrees), azi the constant azimuth
// (degrees) and dist the distance to travel (meters, negative is ok).
// Returns the end point and the azimuth, which is azi itself.
//
// A track that would pass over a pole has no solution; NaN is returned for
// the end point.
func (e *Ellipsoid) RhumbDirect(lat, lon, azi, dist float64) (lat2, lon2, azi2 float64) {
	if math.Abs(lat) > 90 {
		return math.NaN(), math.NaN(), azi
	}
	sinα, cosα := math.Sincos(azi * radians)
	switch AngleMod(azi) {
	case 0, 180:
		sinα = 0
	case 90, 270:
		cosα = 0
	}
	φ1 := lat * radians
	μ1 := e.rh.rectifying(φ1)
	μ2 := μ1 + dist*cosα/e.rh.rect
	if math.Abs(μ2) > math.Pi/2 {
		return math.NaN(), math.NaN(), azi
	}
	// Differencing the footpoints cancels most of the series truncation.
	φ2 := φ1 + e.rh.footpoint(μ2) - e.rh.footpoint(μ1)

	var λ12 float64
	switch {
	case sinα == 0:
	case math.Abs(φ2-φ1) < rhumbParallel:
		λ12 = dist * sinα / e.rh.parallelRadius((φ1+φ2)/2)
	default:
		λ12 = sinα / cosα * (e.rh.isometric(φ2) - e.rh.isometric(φ1))
	}
	return lat + (φ2-φ1)*degrees, AngleModSigned(lon + λ12*degrees), azi
}

// RhumbInverse solves the inverse rhumb line problem.
//
// Param lat1, lon1 is point 1 and lat2, lon2 is point 2 (degrees).
// Returns the constant azimuth of the rhumb line (degrees, [-180,+180]),
// its length (meters) and the azimuth again at point 2.
//
// The shorter way around in longitude is taken.
func (e *Ellipsoid) RhumbInverse(lat1, lon1, lat2, lon2 float64) (azi1, dist, azi2 float64) {
	if math.Abs(lat1) > 90 || math.Abs(lat2) > 90 {
		return math.NaN(), math.NaN(), math.NaN()
	}
	φ1 := lat1 * radians
	φ2 := lat2 * radians
	λ12 := AngleModSigned(lon2-lon1) * radians

	if math.Abs(φ2-φ1) < rhumbParallel {
		φm := (φ1 + φ2) / 2
		s := math.Sin(φm)
		dψdφ := (1 - e.rh.e2) / ((1 - e.rh.e2*s*s) * math.Cos(φm))
		ψ12 := (φ2 - φ1) * dψdφ
		azi1 = math.Atan2(λ12, ψ12) * degrees
		dist = math.Hypot(λ12, ψ12) * e.rh.parallelRadius(φm)
		return azi1, dist, azi1
	}

	ψ12 := e.rh.isometric(φ2) - e.rh.isometric(φ1)
	μ12 := e.rh.rectifying(φ2) - e.rh.rectifying(φ1)
	azi1 = math.Atan2(λ12, ψ12) * degrees
	if math.IsInf(ψ12, 0) {
		// One end is a pole: the rhumb line is the meridian.
		dist = math.Abs(μ12) * e.rh.rect
	} else {
		dist = math.Hypot(λ12, ψ12) * e.rh.rect * μ12 / ψ12
	}
	return azi1, dist, azi1
}
