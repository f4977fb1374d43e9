package geofun

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vmihailenco/msgpack/v5"
)

func TestJSON(t *testing.T) {
	b, err := json.Marshal(struct {
		P   Point
		V   Vector
		Pos Position
	}{Point{1, 2}, NewVector(-90, 3), NewPosition(52.5, 4)})
	require.NoError(t, err)
	assert.JSONEq(t, `{"P":[1,2],"V":[270,3],"Pos":[52.5,4]}`, string(b))

	var track []Position
	require.NoError(t, json.Unmarshal([]byte(`[[1,2],[3,364]]`), &track))
	require.Len(t, track, 2)
	assert.True(t, track[1].Equal(Tuple{3, 4}))

	var v Vector
	require.NoError(t, json.Unmarshal([]byte(`[10,-2]`), &v))
	assert.True(t, v.Equal(Tuple{190, 2}))

	var p Point
	err = json.Unmarshal([]byte(`[1,2,3]`), &p)
	assert.ErrorIs(t, err, ErrIndex)
	assert.Error(t, json.Unmarshal([]byte(`{"x":1}`), &p))
}

func TestMsgpack(t *testing.T) {
	pos := NewPosition(89.50833333333333, 0.008333333333333333)
	b, err := msgpack.Marshal(pos)
	require.NoError(t, err)
	var got Position
	require.NoError(t, msgpack.Unmarshal(b, &got))
	assert.True(t, got.Equal(pos))

	v := NewVector(45, 88)
	b, err = msgpack.Marshal(v)
	require.NoError(t, err)
	var gotV Vector
	require.NoError(t, msgpack.Unmarshal(b, &gotV))
	assert.True(t, gotV.Equal(v))

	b, err = msgpack.Marshal([]Point{{1, 2}, {3, 4}})
	require.NoError(t, err)
	var points []Point
	require.NoError(t, msgpack.Unmarshal(b, &points))
	assert.Equal(t, []Point{{1, 2}, {3, 4}}, points)

	// Plain arrays of numbers decode too.
	b, err = msgpack.Marshal([]float64{10, 20})
	require.NoError(t, err)
	require.NoError(t, msgpack.Unmarshal(b, &got))
	assert.True(t, got.Equal(Tuple{10, 20}))

	b, err = msgpack.Marshal([]float64{1, 2, 3})
	require.NoError(t, err)
	assert.Error(t, msgpack.Unmarshal(b, &got))
}
