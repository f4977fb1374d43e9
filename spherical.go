// Great-circle routines for the spherical Globe model.
//
// Copyright (c) Joshua Baker (2021) and licensed under the MIT License.
//
/* - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - */
/* Latitude/longitude spherical geodesy tools   (c) Chris Veness 2002-2019 */
/*                                                             MIT Licence */
/* www.movable-type.co.uk/scripts/latlong.html                             */
/* www.movable-type.co.uk/scripts/geodesy-library.html#latlon-spherical    */
/* - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - */

package geofun

import "math"

const radians = math.Pi / 180
const degrees = 180 / math.Pi

func sphericalInverse(radius, lat1, lon1, lat2, lon2 float64) (azi1, dist, azi2 float64) {
	if math.Abs(lat1) > 90 || math.Abs(lat2) > 90 {
		return math.NaN(), math.NaN(), math.NaN()
	}
	dist = haversine(radius, lat1, lon1, lat2, lon2)
	azi1 = initialBearing(lat1, lon1, lat2, lon2)
	azi2 = AngleModSigned(initialBearing(lat2, lon2, lat1, lon1) + 180)
	return azi1, dist, azi2
}

func sphericalDirect(radius, lat1, lon1, azi1, dist float64) (lat2, lon2, azi2 float64) {
	if math.Abs(lat1) > 90 {
		return math.NaN(), math.NaN(), math.NaN()
	}
	lat2, lon2 = destination(radius, lat1, lon1, azi1, dist)
	azi2 = AngleModSigned(initialBearing(lat2, lon2, lat1, lon1) + 180)
	return lat2, lon2, azi2
}

func destination(radius, lat1, lon1, bearing, meters float64) (lat2, lon2 float64) {
	// sinφ2 = sinφ1⋅cosδ + cosφ1⋅sinδ⋅cosθ
	// tanΔλ = sinθ⋅sinδ⋅cosφ1 / cosδ−sinφ1⋅sinφ2
	δ := meters / radius
	θ := bearing * radians
	φ1 := lat1 * radians
	λ1 := lon1 * radians
	φ2 := math.Asin(math.Sin(φ1)*math.Cos(δ) +
		math.Cos(φ1)*math.Sin(δ)*math.Cos(θ))
	λ2 := λ1 + math.Atan2(math.Sin(θ)*math.Sin(δ)*math.Cos(φ1),
		math.Cos(δ)-math.Sin(φ1)*math.Sin(φ2))
	return φ2 * degrees, AngleModSigned(λ2 * degrees)
}

func haversine(radius, lat1, lon1, lat2, lon2 float64) float64 {
	φ1 := lat1 * radians
	φ2 := lat2 * radians
	Δφ := φ2 - φ1
	Δλ := (lon2 - lon1) * radians
	sΔφ2 := math.Sin(Δφ / 2)
	sΔλ2 := math.Sin(Δλ / 2)
	haver := sΔφ2*sΔφ2 + math.Cos(φ1)*math.Cos(φ2)*sΔλ2*sΔλ2
	return radius * 2 * math.Asin(math.Sqrt(haver))
}

func initialBearing(lat1, lon1, lat2, lon2 float64) float64 {
	// tanθ = sinΔλ⋅cosφ2 / cosφ1⋅sinφ2 − sinφ1⋅cosφ2⋅cosΔλ
	φ1 := lat1 * radians
	φ2 := lat2 * radians
	Δλ := (lon2 - lon1) * radians
	y := math.Sin(Δλ) * math.Cos(φ2)
	x := math.Cos(φ1)*math.Sin(φ2) - math.Sin(φ1)*math.Cos(φ2)*math.Cos(Δλ)
	return AngleModSigned(math.Atan2(y, x) * degrees)
}
