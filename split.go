package geofun

import "fmt"

// SplitLoxo divides the rhumb line track v from origin into n equal
// segments and returns the n+1 positions along it on WGS84.
func (v Vector) SplitLoxo(origin Position, n int) ([]Position, error) {
	return defaultModel.SplitLoxo(v, origin, n)
}

// SplitOrtho divides the geodesic track v from origin into n equal
// segments and returns the n+1 positions along it on WGS84.
func (v Vector) SplitOrtho(origin Position, n int) ([]Position, error) {
	return defaultModel.SplitOrtho(v, origin, n)
}

// SplitLoxo returns origin followed by origin * v.Scale(i/n) for
// i = 1..n. The last element is origin * v.
func (m *Model) SplitLoxo(v Vector, origin Position, n int) ([]Position, error) {
	return split(v, origin, n, m.Mul)
}

// SplitOrtho returns origin followed by origin + v.Scale(i/n) for
// i = 1..n. The last element is origin + v.
//
// Every step starts from origin with the azimuth of v; only the length is
// scaled. The initial azimuth of a geodesic is what v holds, so each point
// lies on the geodesic through origin with that azimuth.
func (m *Model) SplitOrtho(v Vector, origin Position, n int) ([]Position, error) {
	return split(v, origin, n, m.Add)
}

func split(v Vector, origin Position, n int, advance func(Position, Vector) (Position, error)) ([]Position, error) {
	if n < 1 {
		return nil, fmt.Errorf("split into %d segments: %w", n, ErrDomain)
	}
	track := make([]Position, n+1)
	track[0] = origin
	for i := 1; i <= n; i++ {
		step := v
		if i < n {
			step = v.Scale(float64(i) / float64(n))
		}
		p, err := advance(origin, step)
		if err != nil {
			return nil, fmt.Errorf("split point %d of %d: %w", i, n, err)
		}
		track[i] = p
	}
	return track, nil
}
