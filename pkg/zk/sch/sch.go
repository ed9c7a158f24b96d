// Package zksch implements the interactive Schnorr proof of knowledge of a discrete logarithm.
//
// A prover convinces a verifier that it knows x such that X = x⋅G:
//
//  1. the prover samples α ← ℤq, and sends the Commit A = α⋅G;
//  2. the verifier replies with a uniformly sampled Challenge e ← ℤq;
//  3. the prover sends the Proof z = α + e⋅x;
//  4. the verifier accepts iff z⋅G = A + e⋅X.
//
// The challenge must be sampled by the verifier. Deriving it from a hash of the
// transcript turns this into a different, non-interactive proof system, with
// domain separation left to the caller.
//
// A ProverSecret must answer a single Challenge: two proofs for distinct
// challenges under the same nonce reveal x = (z₁ - z₂)/(e₁ - e₂).
package zksch

import (
	"errors"
	"io"

	"github.com/taurusgroup/schnorr-pok/pkg/math/curve"
	"github.com/taurusgroup/schnorr-pok/pkg/math/sample"
)

// ErrInvalidProof is the only error returned by Verify.
//
// It deliberately does not say which part of the proof was wrong.
var ErrInvalidProof = errors.New("zksch: invalid Schnorr proof of knowledge")

// Commit is the prover's first message.
type Commit struct {
	// A = α⋅G
	A curve.Point
}

// ProverSecret is the nonce α behind a Commit.
//
// It is as sensitive as the long-term secret, and should be erased with
// Erase as soon as the Proof has been computed.
type ProverSecret struct {
	nonce *curve.SecretScalar
}

// Challenge is the verifier's message.
type Challenge struct {
	// E = e
	E curve.Scalar
}

// Proof is the prover's response.
type Proof struct {
	// Z = α + e⋅x
	Z curve.Scalar
}

// NewCommit samples a fresh nonce α, and returns it along with its Commit A = α⋅G.
func NewCommit(rand io.Reader, group curve.Curve) (*ProverSecret, *Commit) {
	alpha := sample.Scalar(rand, group)
	A := alpha.ActOnBase()
	return &ProverSecret{nonce: curve.NewSecretScalar(alpha)}, &Commit{A: A}
}

// NewChallenge samples a uniformly random challenge, independently of any Commit.
func NewChallenge(rand io.Reader, group curve.Curve) *Challenge {
	return &Challenge{E: sample.Scalar(rand, group)}
}

// Prove computes z = α + e⋅x.
//
// x is the secret behind the public X the verifier checks against.
// The inputs are not modified.
//
// Prove returns nil if the secret has been erased, or if the inputs belong to
// different groups: an erased nonce is 0, and z = e⋅x would reveal x.
func Prove(secret *ProverSecret, challenge *Challenge, x curve.Scalar) *Proof {
	if secret == nil || challenge == nil || challenge.E == nil || x == nil {
		return nil
	}
	alpha := secret.nonce.Expose()
	if alpha == nil {
		return nil
	}
	group := alpha.Curve()
	if !curve.SameCurve(group, challenge.E.Curve()) || !curve.SameCurve(group, x.Curve()) {
		return nil
	}
	z := group.NewScalar().Set(challenge.E).Mul(x).Add(alpha)
	return &Proof{Z: z}
}

// Erase overwrites the nonce. Prove returns nil for an erased secret.
func (s *ProverSecret) Erase() {
	if s == nil {
		return
	}
	s.nonce.Erase()
}

// Erased reports whether the nonce has been erased.
func (s *ProverSecret) Erased() bool {
	return s == nil || s.nonce.Erased()
}

// Verify checks that z⋅G = A + e⋅X, and returns ErrInvalidProof otherwise.
//
// Both sides are compared in constant time.
// Missing values, or values from different groups, are rejected with the same error.
func (p *Proof) Verify(commit *Commit, challenge *Challenge, X curve.Point) error {
	if !p.IsValid() || !commit.IsValid() || !challenge.IsValid() || X == nil {
		return ErrInvalidProof
	}
	group := p.Z.Curve()
	if !curve.SameCurve(group, commit.A.Curve()) ||
		!curve.SameCurve(group, challenge.E.Curve()) ||
		!curve.SameCurve(group, X.Curve()) {
		return ErrInvalidProof
	}

	lhs := p.Z.ActOnBase()
	rhs := commit.A.Add(challenge.E.Act(X))
	if !curve.ConstantTimeEqual(lhs, rhs) {
		return ErrInvalidProof
	}
	return nil
}

// IsValid reports whether the Commit holds a point.
func (c *Commit) IsValid() bool {
	return c != nil && c.A != nil
}

// IsValid reports whether the Challenge holds a scalar.
func (c *Challenge) IsValid() bool {
	return c != nil && c.E != nil
}

// IsValid reports whether the Proof holds a scalar.
func (p *Proof) IsValid() bool {
	return p != nil && p.Z != nil
}
