package geofun

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPoint(t *testing.T) {
	p1 := Point{1, 8.88}
	p2, err := PointFromSlice([]float64{1, 8.88})
	require.NoError(t, err)
	assert.True(t, p2.Equal(p1))

	_, err = PointFromSlice([]float64{1, 2, 3})
	assert.ErrorIs(t, err, ErrIndex)

	// Copies are independent.
	p2 = p1
	p1.X = 2.0
	assert.Equal(t, 1.0, p2.X)
	assert.Equal(t, 8.88, p2.Y)

	p4 := p2.Add(Point{-1, 1.11})
	assert.InDelta(t, 0.0, p4.X, 1e-12)
	assert.InDelta(t, 9.99, p4.Y, 1e-12)

	p5 := p4.Sub(Point{-1, 1.11})
	assert.True(t, p5.AlmostEqual(p2))
	assert.Equal(t, Point{-2, -4}, Point{1, 2}.Scale(2).Neg())
}

func TestPointIndex(t *testing.T) {
	p := Point{3, 5}
	for i, want := range map[int]float64{0: 3, 1: 5, -1: 5, -2: 3} {
		got, err := p.Index(i)
		require.NoError(t, err)
		assert.Equal(t, want, got, "index %d", i)
	}
	for _, i := range []int{2, -3, 100} {
		_, err := p.Index(i)
		assert.ErrorIs(t, err, ErrIndex)
		assert.ErrorIs(t, p.SetIndex(i, 1), ErrIndex)
	}

	require.NoError(t, p.SetIndex(-1, 7))
	require.NoError(t, p.SetIndex(0, 1))
	assert.Equal(t, Point{1, 7}, p)
}

func TestPointFormat(t *testing.T) {
	p := Point{3.131313, 5.151515}
	assert.Equal(t, "3.131, 5.152", p.String())
	assert.Equal(t, "Point(3.131313, 5.151515)", fmt.Sprintf("%#v", p))

	p = Point{300000.131313, 500000.151515}
	assert.Equal(t, "300000.131, 500000.152", p.String())
	assert.Equal(t, "Point(300000.131313, 500000.151515)", p.GoString())

	p = Point{3, 5}
	assert.Equal(t, "3.000, 5.000", p.String())
	assert.Equal(t, "Point(3.0, 5.0)", p.GoString())
}

func TestPointCompare(t *testing.T) {
	p := Point{3.131313, 5.151515}
	seq := Tuple{3.131313, 5.151515}
	assert.True(t, p.Equal(seq))
	assert.True(t, Equal(seq, p))
	assert.False(t, p.Equal(Tuple{3.131313, 5.15}))

	tup, err := TupleFromSlice([]float64{3, 5})
	require.NoError(t, err)
	assert.True(t, Point{3, 5}.Equal(tup))
	assert.True(t, Point{3, 5}.Equal(TupleOf(3, 5)))

	_, err = TupleFromSlice([]float64{3})
	assert.ErrorIs(t, err, ErrIndex)
}
