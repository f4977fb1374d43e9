package geofun

import "math"

// AngleMod returns the angle bound to [0, 360).
func AngleMod(angle float64) float64 {
	r := math.Mod(angle, 360)
	if r < 0 {
		r += 360
	}
	if r >= 360 || r == 0 {
		// -1e-20 + 360 rounds to 360, and -0 prints as "-0".
		return 0
	}
	return r
}

// AngleModSigned returns the angle bound to (-180, 180].
func AngleModSigned(angle float64) float64 {
	r := math.Mod(angle, 360)
	if r <= -180 {
		r += 360
	} else if r > 180 {
		r -= 360
	}
	if r == 0 {
		return 0
	}
	return r
}

// AngleDiff returns the signed difference a - b bound to (-180, 180].
func AngleDiff(a, b float64) float64 {
	return AngleModSigned(a - b)
}
