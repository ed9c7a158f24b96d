package curve

import (
	"runtime"

	"github.com/cronokirby/saferith"
)

// SecretScalar owns a Scalar whose value must not outlive its use.
//
// Erase overwrites the scalar in place, so callers should defer it right after
// creation. Both supported groups store scalars in fixed size arrays, so
// overwriting the value clears the only copy held by the SecretScalar.
// A finalizer also erases the value once the SecretScalar becomes unreachable,
// but that only happens whenever the garbage collector gets to it.
type SecretScalar struct {
	s      Scalar
	erased bool
}

// NewSecretScalar takes ownership of s.
//
// s must not be retained or modified by the caller afterwards.
func NewSecretScalar(s Scalar) *SecretScalar {
	secret := &SecretScalar{s: s}
	runtime.SetFinalizer(secret, (*SecretScalar).Erase)
	return secret
}

// Curve returns the group of the underlying scalar.
func (s *SecretScalar) Curve() Curve {
	return s.s.Curve()
}

// Expose returns the underlying scalar, or nil once the secret has been erased.
//
// The returned value aliases the secret and must not escape the caller.
func (s *SecretScalar) Expose() Scalar {
	if s == nil || s.erased {
		return nil
	}
	return s.s
}

// Erase overwrites the secret with zero. It is safe to call more than once.
func (s *SecretScalar) Erase() {
	if s == nil || s.erased {
		return
	}
	s.s.Set(s.s.Curve().NewScalar())
	s.erased = true
}

// Erased reports whether Erase has been called.
func (s *SecretScalar) Erased() bool {
	return s == nil || s.erased
}

// ClearNat overwrites the limbs of n with zeros, in place.
//
// n keeps its announced length, so no limb is reallocated and the old value is not left behind.
func ClearNat(n *saferith.Nat) {
	if n == nil {
		return
	}
	n.SetBytes(make([]byte, (n.AnnouncedLen()+7)/8))
}
