package geofun

import (
	"math"
	"math/rand"
	"testing"
)

func eqish(x, y float64, prec int) bool {
	return math.Abs(x-y) < float64(1.0)/math.Pow10(prec)
}

func TestGeodesic(t *testing.T) {
	lat, lon, azi := GeodesicDirect(52.0, 4.0, 45.0, 10000)
	if !eqish(lat, 52.0635048312, 8) || !eqish(lon, 4.10310567353, 8) || !eqish(azi, 45.0812835607, 8) {
		t.Fatalf("direct: got '%f, %f, %f'", lat, lon, azi)
	}
	azi1, dist, azi2 := GeodesicInverse(52.0, 4.0, 52.0635048312, 4.10310567353)
	if !eqish(azi1, 45.0, 8) || !eqish(dist, 10000, 4) || !eqish(azi2, 45.0812835607, 8) {
		t.Fatalf("inverse: got '%f, %f, %f'", azi1, dist, azi2)
	}
}

func TestRhumb(t *testing.T) {
	lat, lon, azi := RhumbDirect(52.0, 4.0, 45.0, 10000)
	if !eqish(lat, 52.0635499025, 8) || !eqish(lon, 4.10303268597, 8) || azi != 45 {
		t.Fatalf("direct: got '%f, %f, %f'", lat, lon, azi)
	}
	azi1, dist, azi2 := RhumbInverse(52.0, 4.0, 52.0635499025, 4.10303268597)
	if !eqish(azi1, 45.0, 7) || !eqish(dist, 10000, 4) || azi2 != azi1 {
		t.Fatalf("inverse: got '%f, %f, %f'", azi1, dist, azi2)
	}
}

func TestRhumbParallel(t *testing.T) {
	lat, lon, _ := RhumbDirect(45, 1, 90, 40e3)
	if lat != 45 || !eqish(lon, 1.507312689879, 9) {
		t.Fatalf("direct: got '%f, %f'", lat, lon)
	}
	azi, dist, _ := RhumbInverse(45, 1, lat, lon)
	if !eqish(azi, 90, 8) || !eqish(dist, 40e3, 6) {
		t.Fatalf("inverse: got '%f, %f'", azi, dist)
	}

	// Just off the parallel, on both sides of the divided difference
	// cutoff.
	for _, azi := range []float64{89, 89.9, 89.999, 91, 269.5} {
		lat, lon, _ := RhumbDirect(45, 1, azi, 400)
		azi2, dist, _ := RhumbInverse(45, 1, lat, lon)
		if !eqish(AngleMod(azi2), azi, 7) || !eqish(dist, 400, 6) {
			t.Fatalf("azimuth %f: got '%f, %f'", azi, azi2, dist)
		}
	}
}

func TestRhumbPoles(t *testing.T) {
	// To the pole the rhumb line is the meridian.
	azi, dist, _ := RhumbInverse(45, 10, 90, 0)
	if azi != 0 || dist <= 0 {
		t.Fatalf("to pole: got '%f, %f'", azi, dist)
	}
	azi, near, _ := RhumbInverse(45, 10, 89.999, 10)
	if azi != 0 || !eqish(dist-near, 111.69, 0) {
		t.Fatalf("to pole: got '%f', near pole '%f'", dist, near)
	}

	lat, lon, _ := RhumbDirect(89, 0, 0, 500e3)
	if !math.IsNaN(lat) || !math.IsNaN(lon) {
		t.Fatalf("over the pole: got '%f, %f'", lat, lon)
	}
	lat, lon, _ = RhumbDirect(90, 0, 180, 1000)
	if !(lat < 90) || lon != 0 {
		t.Fatalf("from the pole: got '%f, %f'", lat, lon)
	}

	lat, _, _ = RhumbDirect(91, 0, 0, 1)
	if !math.IsNaN(lat) {
		t.Fatalf("latitude beyond 90: got '%f'", lat)
	}
}

func TestSpherical(t *testing.T) {
	if !Globe.Spherical() || WGS84.Spherical() {
		t.Fatal()
	}
	if Globe.Flattening() != 0 {
		t.Fatal()
	}

	rng := rand.New(rand.NewSource(42))

	e := NewEllipsoid(Globe.Radius(), 0)
	for i := 0; i < 100_000; i++ {
		lat1 := rng.Float64()*180 - 90
		lon1 := rng.Float64()*360 - 180
		lat2 := rng.Float64()*180 - 90
		lon2 := rng.Float64()*360 - 180

		azi1, s12, azi2 := e.GeodesicInverse(lat1, lon1, lat2, lon2)

		var ret [3]float64
		ret[0], ret[1], ret[2] = Globe.GeodesicInverse(lat1, lon1, lat2, lon2)
		if !eqish(ret[1], s12, 4) ||
			!eqish(ret[0], azi1, 4) ||
			!eqish(ret[2], azi2, 4) {
			t.Fatalf("inverse failure (%f %f %f %f %f %f %f)",
				lat1, lon1, lat2, lon2, s12, azi1, azi2)
		}
		ret[0], ret[1], ret[2] = Globe.GeodesicDirect(lat1, lon1, azi1, s12)
		if !eqish(ret[0], lat2, 4) ||
			!eqish(ret[1], lon2, 4) ||
			!eqish(ret[2], azi2, 4) {
			t.Fatalf("direct failure (%f %f %f %f %f %f %f)",
				lat1, lon1, lat2, lon2, s12, azi1, azi2)
		}
	}
}

func TestSphericalRhumb(t *testing.T) {
	// On a sphere the rhumb line to a point on the same meridian is the
	// meridian arc.
	azi, dist, _ := Globe.RhumbInverse(0, 0, 10, 0)
	if azi != 0 || !eqish(dist, Globe.Radius()*10*radians, 6) {
		t.Fatalf("got '%f, %f'", azi, dist)
	}
}
