package geofun

import (
	"encoding/json"
	"fmt"

	"github.com/vmihailenco/msgpack/v5"
)

// Point, Vector and Position encode as a plain array of two numbers in
// both JSON and MessagePack.

func (p Point) MarshalJSON() ([]byte, error) {
	return json.Marshal([2]float64{p.X, p.Y})
}

func (p *Point) UnmarshalJSON(b []byte) error {
	x, y, err := unmarshalPair(b)
	if err != nil {
		return err
	}
	*p = Point{x, y}
	return nil
}

func (v Vector) MarshalJSON() ([]byte, error) {
	return json.Marshal([2]float64{v.Azimuth(), v.Length()})
}

func (v *Vector) UnmarshalJSON(b []byte) error {
	azimuth, length, err := unmarshalPair(b)
	if err != nil {
		return err
	}
	*v = NewVector(azimuth, length)
	return nil
}

func (p Position) MarshalJSON() ([]byte, error) {
	return json.Marshal([2]float64{p.latitude, p.longitude})
}

func (p *Position) UnmarshalJSON(b []byte) error {
	lat, lon, err := unmarshalPair(b)
	if err != nil {
		return err
	}
	*p = NewPosition(lat, lon)
	return nil
}

func unmarshalPair(b []byte) (float64, float64, error) {
	var s []float64
	if err := json.Unmarshal(b, &s); err != nil {
		return 0, 0, err
	}
	t, err := TupleFromSlice(s)
	if err != nil {
		return 0, 0, err
	}
	return t[0], t[1], nil
}

var (
	_ msgpack.CustomEncoder = Point{}
	_ msgpack.CustomDecoder = (*Point)(nil)
	_ msgpack.CustomEncoder = Vector{}
	_ msgpack.CustomDecoder = (*Vector)(nil)
	_ msgpack.CustomEncoder = Position{}
	_ msgpack.CustomDecoder = (*Position)(nil)
)

func (p Point) EncodeMsgpack(enc *msgpack.Encoder) error {
	return encodePair(enc, p.X, p.Y)
}

func (p *Point) DecodeMsgpack(dec *msgpack.Decoder) error {
	x, y, err := decodePair(dec)
	if err != nil {
		return err
	}
	*p = Point{x, y}
	return nil
}

func (v Vector) EncodeMsgpack(enc *msgpack.Encoder) error {
	return encodePair(enc, v.Azimuth(), v.Length())
}

func (v *Vector) DecodeMsgpack(dec *msgpack.Decoder) error {
	azimuth, length, err := decodePair(dec)
	if err != nil {
		return err
	}
	*v = NewVector(azimuth, length)
	return nil
}

func (p Position) EncodeMsgpack(enc *msgpack.Encoder) error {
	return encodePair(enc, p.latitude, p.longitude)
}

func (p *Position) DecodeMsgpack(dec *msgpack.Decoder) error {
	lat, lon, err := decodePair(dec)
	if err != nil {
		return err
	}
	*p = NewPosition(lat, lon)
	return nil
}

func encodePair(enc *msgpack.Encoder, a, b float64) error {
	if err := enc.EncodeArrayLen(2); err != nil {
		return err
	}
	if err := enc.EncodeFloat64(a); err != nil {
		return err
	}
	return enc.EncodeFloat64(b)
}

func decodePair(dec *msgpack.Decoder) (a, b float64, err error) {
	n, err := dec.DecodeArrayLen()
	if err != nil {
		return 0, 0, err
	}
	if n != 2 {
		return 0, 0, fmt.Errorf("msgpack array of length %d: %w", n, ErrIndex)
	}
	if a, err = dec.DecodeFloat64(); err != nil {
		return 0, 0, err
	}
	if b, err = dec.DecodeFloat64(); err != nil {
		return 0, 0, err
	}
	return a, b, nil
}
