package curve

import (
	"fmt"

	"github.com/fxamacker/cbor/v2"
)

// MarshallableScalar wraps a Scalar so that it can be decoded without knowing its group in advance.
//
// The encoding is a CBOR structure carrying the group name next to the scalar bytes.
type MarshallableScalar struct {
	Scalar Scalar
}

func NewMarshallableScalar(scalar Scalar) *MarshallableScalar {
	return &MarshallableScalar{Scalar: scalar}
}

type marshallableCBOR struct {
	Group []byte
	Data  []byte
}

func (m *MarshallableScalar) MarshalBinary() ([]byte, error) {
	data, err := m.Scalar.MarshalBinary()
	if err != nil {
		return nil, err
	}
	return cbor.Marshal(&marshallableCBOR{Group: []byte(m.Scalar.Curve().Name()), Data: data})
}

func (m *MarshallableScalar) UnmarshalBinary(data []byte) error {
	var mCBOR marshallableCBOR
	if err := cbor.Unmarshal(data, &mCBOR); err != nil {
		return err
	}
	group := FromName(string(mCBOR.Group))
	if group == nil {
		return fmt.Errorf("curve.MarshallableScalar: unknown group %q", mCBOR.Group)
	}
	scalar := group.NewScalar()
	if err := scalar.UnmarshalBinary(mCBOR.Data); err != nil {
		return err
	}
	m.Scalar = scalar
	return nil
}

// MarshallablePoint wraps a Point so that it can be decoded without knowing its group in advance.
type MarshallablePoint struct {
	Point Point
}

func NewMarshallablePoint(point Point) *MarshallablePoint {
	return &MarshallablePoint{Point: point}
}

func (m *MarshallablePoint) MarshalBinary() ([]byte, error) {
	data, err := m.Point.MarshalBinary()
	if err != nil {
		return nil, err
	}
	return cbor.Marshal(&marshallableCBOR{Group: []byte(m.Point.Curve().Name()), Data: data})
}

func (m *MarshallablePoint) UnmarshalBinary(data []byte) error {
	var mCBOR marshallableCBOR
	if err := cbor.Unmarshal(data, &mCBOR); err != nil {
		return err
	}
	group := FromName(string(mCBOR.Group))
	if group == nil {
		return fmt.Errorf("curve.MarshallablePoint: unknown group %q", mCBOR.Group)
	}
	point := group.NewPoint()
	if err := point.UnmarshalBinary(mCBOR.Data); err != nil {
		return err
	}
	m.Point = point
	return nil
}
