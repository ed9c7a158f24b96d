package curve

import (
	"crypto/subtle"
	"encoding"

	"github.com/cronokirby/saferith"
)

// Curve represents the kind of elliptic curve (or prime order group) we're working with.
//
// Scalars and Points are always tied to the Curve they were created with, and
// operations mixing values of two different curves are invalid.
type Curve interface {
	// NewPoint creates an identity point.
	NewPoint() Point
	// NewBasePoint creates the generator of the group.
	NewBasePoint() Point
	// NewScalar creates a scalar with the value 0.
	NewScalar() Scalar
	// Name returns the name of this group.
	Name() string
	// ScalarBits returns the number of significant bits in a scalar.
	ScalarBits() int
	// SafeScalarBytes returns the number of random bytes to sample for a uniform scalar.
	SafeScalarBytes() int
	// Order returns a Modulus holding the order of this group.
	Order() *saferith.Modulus
}

// Scalar represents a number modulo the order of some group.
//
// Arithmetic methods modify the receiver and return it, so that calls can be chained.
type Scalar interface {
	encoding.BinaryMarshaler
	encoding.BinaryUnmarshaler
	// Curve returns the group this scalar belongs to.
	Curve() Curve
	// Add sets s = s + that, and returns s.
	Add(Scalar) Scalar
	// Sub sets s = s - that, and returns s.
	Sub(Scalar) Scalar
	// Mul sets s = s * that, and returns s.
	Mul(Scalar) Scalar
	// Invert sets s = 1 / s, and returns s.
	//
	// The inverse of 0 is 0.
	Invert() Scalar
	// Negate sets s = -s, and returns s.
	Negate() Scalar
	// Equal reports whether s and that hold the same value.
	Equal(Scalar) bool
	// IsZero reports whether s == 0.
	IsZero() bool
	// Set copies that into s, overwriting the memory of s, and returns s.
	Set(Scalar) Scalar
	// SetNat sets s to x mod q, and returns s.
	SetNat(*saferith.Nat) Scalar
	// Act returns s ⋅ P, as a new point.
	Act(Point) Point
	// ActOnBase returns s ⋅ G, as a new point.
	ActOnBase() Point
}

// Point represents an element of a group.
//
// Unlike Scalar, the group operations on Point return new values.
type Point interface {
	encoding.BinaryMarshaler
	encoding.BinaryUnmarshaler
	// Curve returns the group this point belongs to.
	Curve() Curve
	// Add returns p + that.
	Add(Point) Point
	// Sub returns p - that.
	Sub(Point) Point
	// Negate returns -p.
	Negate() Point
	// Set copies that into p, and returns p.
	Set(Point) Point
	// Equal reports whether p and that are the same element.
	//
	// This comparison may return early; use ConstantTimeEqual when the result
	// must not leak through timing.
	Equal(Point) bool
	// IsIdentity reports whether p is the identity element.
	IsIdentity() bool
}

// SameCurve reports whether both values were created from the same group.
func SameCurve(a, b Curve) bool {
	if a == nil || b == nil {
		return false
	}
	return a.Name() == b.Name()
}

// ConstantTimeEqual reports whether p and q encode the same element.
//
// The canonical encodings are compared with crypto/subtle, so the running time
// depends only on the encoding length, and not on where the two elements differ.
func ConstantTimeEqual(p, q Point) bool {
	if p == nil || q == nil || !SameCurve(p.Curve(), q.Curve()) {
		return false
	}
	pBytes, err := p.MarshalBinary()
	if err != nil {
		return false
	}
	qBytes, err := q.MarshalBinary()
	if err != nil {
		return false
	}
	return subtle.ConstantTimeCompare(pBytes, qBytes) == 1
}

// FromName returns the Curve with the given name, or nil if it is unknown.
func FromName(name string) Curve {
	switch name {
	case Secp256k1{}.Name():
		return Secp256k1{}
	case Ristretto255{}.Name():
		return Ristretto255{}
	default:
		return nil
	}
}
