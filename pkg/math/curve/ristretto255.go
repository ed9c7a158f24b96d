package curve

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/bwesterb/go-ristretto"
	"github.com/cronokirby/saferith"
	"github.com/taurusgroup/schnorr-pok/internal/params"
)

var ristretto255OrderNat, _ = new(saferith.Nat).SetHex("1000000000000000000000000000000014DEF9DEA2F79CD65812631A5CF5D3ED")
var ristretto255Order = saferith.ModulusFromNat(ristretto255OrderNat)

const (
	ristretto255ScalarBytes = params.BytesScalar
	ristretto255PointBytes  = 32
)

// Ristretto255 is the prime order group built on top of Curve25519.
type Ristretto255 struct{}

func (Ristretto255) NewPoint() Point {
	out := new(Ristretto255Point)
	out.value.SetZero()
	return out
}

func (Ristretto255) NewBasePoint() Point {
	out := new(Ristretto255Point)
	out.value.SetBase()
	return out
}

func (Ristretto255) NewScalar() Scalar {
	out := new(Ristretto255Scalar)
	out.value.SetZero()
	return out
}

func (Ristretto255) Name() string {
	return "ristretto255"
}

func (Ristretto255) ScalarBits() int {
	return 253
}

func (Ristretto255) SafeScalarBytes() int {
	return params.BytesSampledScalar
}

func (Ristretto255) Order() *saferith.Modulus {
	return ristretto255Order
}

// Ristretto255Scalar is an integer modulo the order of ristretto255.
type Ristretto255Scalar struct {
	value ristretto.Scalar
}

func ristretto255CastScalar(generic Scalar) *Ristretto255Scalar {
	out, ok := generic.(*Ristretto255Scalar)
	if !ok {
		panic(fmt.Sprintf("failed to convert to ristretto255Scalar: %v", generic))
	}
	return out
}

func (*Ristretto255Scalar) Curve() Curve {
	return Ristretto255{}
}

// MarshalBinary returns the canonical 32 byte little-endian encoding of s.
func (s *Ristretto255Scalar) MarshalBinary() ([]byte, error) {
	return s.value.Bytes(), nil
}

// UnmarshalBinary decodes a canonical 32 byte little-endian value.
func (s *Ristretto255Scalar) UnmarshalBinary(data []byte) error {
	if len(data) != ristretto255ScalarBytes {
		return fmt.Errorf("invalid length for ristretto255 scalar: %d", len(data))
	}
	var buf [ristretto255ScalarBytes]byte
	copy(buf[:], data)
	var value ristretto.Scalar
	value.SetBytes(&buf)
	if !bytes.Equal(value.Bytes(), data) {
		return errors.New("invalid bytes for ristretto255 scalar")
	}
	s.value = value
	return nil
}

func (s *Ristretto255Scalar) Add(that Scalar) Scalar {
	other := ristretto255CastScalar(that)

	current, operand := s.value, other.value
	s.value.Add(&current, &operand)
	return s
}

func (s *Ristretto255Scalar) Sub(that Scalar) Scalar {
	other := ristretto255CastScalar(that)

	current, operand := s.value, other.value
	s.value.Sub(&current, &operand)
	return s
}

func (s *Ristretto255Scalar) Mul(that Scalar) Scalar {
	other := ristretto255CastScalar(that)

	current, operand := s.value, other.value
	s.value.Mul(&current, &operand)
	return s
}

func (s *Ristretto255Scalar) Invert() Scalar {
	current := s.value
	s.value.Inverse(&current)
	return s
}

func (s *Ristretto255Scalar) Negate() Scalar {
	current := s.value
	s.value.Neg(&current)
	return s
}

func (s *Ristretto255Scalar) Equal(that Scalar) bool {
	other := ristretto255CastScalar(that)

	return s.value.Equals(&other.value)
}

func (s *Ristretto255Scalar) IsZero() bool {
	var zero ristretto.Scalar
	return s.value.Equals(zero.SetZero())
}

func (s *Ristretto255Scalar) Set(that Scalar) Scalar {
	other := ristretto255CastScalar(that)

	s.value = other.value
	return s
}

func (s *Ristretto255Scalar) SetNat(x *saferith.Nat) Scalar {
	reduced := new(saferith.Nat).Mod(x, ristretto255Order)
	be := reduced.FillBytes(make([]byte, ristretto255ScalarBytes))
	var le [ristretto255ScalarBytes]byte
	for i := range be {
		le[i] = be[len(be)-1-i]
		be[len(be)-1-i] = 0
	}
	s.value.SetBytes(&le)
	for i := range le {
		le[i] = 0
	}
	ClearNat(reduced)
	return s
}

func (s *Ristretto255Scalar) Act(that Point) Point {
	other := ristretto255CastPoint(that)
	out := new(Ristretto255Point)
	out.value.ScalarMult(&other.value, &s.value)
	return out
}

func (s *Ristretto255Scalar) ActOnBase() Point {
	out := new(Ristretto255Point)
	out.value.ScalarMultBase(&s.value)
	return out
}

func (s *Ristretto255Scalar) String() string {
	return fmt.Sprintf("%x", s.value.Bytes())
}

// Ristretto255Point is an element of ristretto255.
type Ristretto255Point struct {
	value ristretto.Point
}

func ristretto255CastPoint(generic Point) *Ristretto255Point {
	out, ok := generic.(*Ristretto255Point)
	if !ok {
		panic(fmt.Sprintf("failed to convert to ristretto255Point: %v", generic))
	}
	return out
}

func (*Ristretto255Point) Curve() Curve {
	return Ristretto255{}
}

// MarshalBinary returns the canonical 32 byte encoding of p.
func (p *Ristretto255Point) MarshalBinary() ([]byte, error) {
	return p.value.Bytes(), nil
}

func (p *Ristretto255Point) UnmarshalBinary(data []byte) error {
	if len(data) != ristretto255PointBytes {
		return fmt.Errorf("invalid length for ristretto255Point: %d", len(data))
	}
	var buf [ristretto255PointBytes]byte
	copy(buf[:], data)
	var value ristretto.Point
	if !value.SetBytes(&buf) {
		return errors.New("ristretto255Point.UnmarshalBinary: invalid encoding")
	}
	p.value = value
	return nil
}

func (p *Ristretto255Point) Add(that Point) Point {
	other := ristretto255CastPoint(that)

	out := new(Ristretto255Point)
	out.value.Add(&p.value, &other.value)
	return out
}

func (p *Ristretto255Point) Sub(that Point) Point {
	other := ristretto255CastPoint(that)

	out := new(Ristretto255Point)
	out.value.Sub(&p.value, &other.value)
	return out
}

func (p *Ristretto255Point) Negate() Point {
	out := new(Ristretto255Point)
	out.value.Neg(&p.value)
	return out
}

func (p *Ristretto255Point) Set(that Point) Point {
	other := ristretto255CastPoint(that)

	p.value = other.value
	return p
}

func (p *Ristretto255Point) Equal(that Point) bool {
	other := ristretto255CastPoint(that)

	return p.value.Equals(&other.value)
}

func (p *Ristretto255Point) IsIdentity() bool {
	var identity ristretto.Point
	identity.SetZero()
	return p.value.Equals(&identity)
}

func (p *Ristretto255Point) String() string {
	return fmt.Sprintf("%x", p.value.Bytes())
}
