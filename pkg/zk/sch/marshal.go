package zksch

import (
	"errors"

	"github.com/taurusgroup/schnorr-pok/pkg/math/curve"
)

// EmptyCommit returns a Commit of the given group, ready to be unmarshalled into.
func EmptyCommit(group curve.Curve) *Commit {
	return &Commit{A: group.NewPoint()}
}

// EmptyChallenge returns a Challenge of the given group, ready to be unmarshalled into.
func EmptyChallenge(group curve.Curve) *Challenge {
	return &Challenge{E: group.NewScalar()}
}

// EmptyProof returns a Proof of the given group, ready to be unmarshalled into.
func EmptyProof(group curve.Curve) *Proof {
	return &Proof{Z: group.NewScalar()}
}

// MarshalBinary returns the group encoding of A.
func (c *Commit) MarshalBinary() ([]byte, error) {
	if !c.IsValid() {
		return nil, errors.New("zksch.Commit: nil point")
	}
	return c.A.MarshalBinary()
}

// UnmarshalBinary decodes A using the group of the receiver, see EmptyCommit.
func (c *Commit) UnmarshalBinary(data []byte) error {
	if !c.IsValid() {
		return errors.New("zksch.Commit: unknown group, use EmptyCommit")
	}
	return c.A.UnmarshalBinary(data)
}

func (c *Challenge) MarshalBinary() ([]byte, error) {
	if !c.IsValid() {
		return nil, errors.New("zksch.Challenge: nil scalar")
	}
	return c.E.MarshalBinary()
}

func (c *Challenge) UnmarshalBinary(data []byte) error {
	if !c.IsValid() {
		return errors.New("zksch.Challenge: unknown group, use EmptyChallenge")
	}
	return c.E.UnmarshalBinary(data)
}

func (p *Proof) MarshalBinary() ([]byte, error) {
	if !p.IsValid() {
		return nil, errors.New("zksch.Proof: nil scalar")
	}
	return p.Z.MarshalBinary()
}

func (p *Proof) UnmarshalBinary(data []byte) error {
	if !p.IsValid() {
		return errors.New("zksch.Proof: unknown group, use EmptyProof")
	}
	return p.Z.UnmarshalBinary(data)
}
