package sch

import (
	"errors"
	"io"

	"github.com/taurusgroup/schnorr-pok/internal/round"
	"github.com/taurusgroup/schnorr-pok/pkg/math/curve"
	zksch "github.com/taurusgroup/schnorr-pok/pkg/zk/sch"
)

// verifier1 waits for the Commit, and sends the Challenge.
type verifier1 struct {
	*round.Helper

	X    curve.Point
	rand io.Reader

	commit *zksch.Commit
}

// VerifyMessage implements round.Round.
func (r *verifier1) VerifyMessage(msg round.Message) error {
	body, ok := msg.Content.(*commitMessage)
	if !ok || body == nil {
		return round.ErrInvalidContent
	}
	if !body.Commit.IsValid() {
		return errors.New("missing commitment")
	}
	return nil
}

// StoreMessage implements round.Round.
func (r *verifier1) StoreMessage(msg round.Message) error {
	r.commit = msg.Content.(*commitMessage).Commit
	return nil
}

// Finalize samples a fresh Challenge, independently of the Commit.
func (r *verifier1) Finalize(out chan<- *round.Message) (round.Session, error) {
	challenge := zksch.NewChallenge(r.rand, r.Group())
	if err := r.SendMessage(out, &challengeMessage{Challenge: challenge}); err != nil {
		return r, err
	}
	return &verifier2{
		verifier1: r,
		challenge: challenge,
	}, nil
}

// MessageContent implements round.Round.
func (r *verifier1) MessageContent() round.Content {
	return &commitMessage{Commit: zksch.EmptyCommit(r.Group())}
}

// Number implements round.Round.
func (verifier1) Number() round.Number { return 1 }

// verifier2 waits for the Proof.
type verifier2 struct {
	*verifier1

	challenge *zksch.Challenge
	proof     *zksch.Proof
}

// VerifyMessage implements round.Round.
func (r *verifier2) VerifyMessage(msg round.Message) error {
	body, ok := msg.Content.(*proofMessage)
	if !ok || body == nil {
		return round.ErrInvalidContent
	}
	if !body.Proof.IsValid() {
		return errors.New("missing proof")
	}
	return nil
}

// StoreMessage implements round.Round.
func (r *verifier2) StoreMessage(msg round.Message) error {
	r.proof = msg.Content.(*proofMessage).Proof
	return nil
}

// Finalize checks the Proof and outputs X.
func (r *verifier2) Finalize(chan<- *round.Message) (round.Session, error) {
	if err := r.proof.Verify(r.commit, r.challenge, r.X); err != nil {
		return r.AbortRound(err, r.PeerID()), nil
	}
	return r.ResultRound(r.X), nil
}

// MessageContent implements round.Round.
func (r *verifier2) MessageContent() round.Content {
	return &proofMessage{Proof: zksch.EmptyProof(r.Group())}
}

// Number implements round.Round.
func (verifier2) Number() round.Number { return 3 }
