package sch

import (
	"errors"
	"io"

	"github.com/taurusgroup/schnorr-pok/internal/round"
	"github.com/taurusgroup/schnorr-pok/pkg/math/curve"
	zksch "github.com/taurusgroup/schnorr-pok/pkg/zk/sch"
)

// prover1 sends the Commit.
type prover1 struct {
	*round.Helper

	x    curve.Scalar
	rand io.Reader
}

// VerifyMessage implements round.Round.
func (prover1) VerifyMessage(round.Message) error { return nil }

// StoreMessage implements round.Round.
func (prover1) StoreMessage(round.Message) error { return nil }

// Finalize samples the nonce and sends the Commit A = α⋅G.
func (r *prover1) Finalize(out chan<- *round.Message) (round.Session, error) {
	secret, commit := zksch.NewCommit(r.rand, r.Group())
	if err := r.SendMessage(out, &commitMessage{Commit: commit}); err != nil {
		secret.Erase()
		return r, err
	}
	return &prover2{
		prover1: r,
		secret:  secret,
	}, nil
}

// MessageContent implements round.Round.
func (prover1) MessageContent() round.Content { return nil }

// Number implements round.Round.
func (prover1) Number() round.Number { return 1 }

// prover2 answers the Challenge.
type prover2 struct {
	*prover1

	secret    *zksch.ProverSecret
	challenge *zksch.Challenge
}

// VerifyMessage implements round.Round.
func (r *prover2) VerifyMessage(msg round.Message) error {
	body, ok := msg.Content.(*challengeMessage)
	if !ok || body == nil {
		return round.ErrInvalidContent
	}
	if !body.Challenge.IsValid() {
		return errors.New("missing challenge")
	}
	return nil
}

// StoreMessage implements round.Round.
func (r *prover2) StoreMessage(msg round.Message) error {
	r.challenge = msg.Content.(*challengeMessage).Challenge
	return nil
}

// Finalize sends the Proof, and erases the nonce whether or not it could be sent.
func (r *prover2) Finalize(out chan<- *round.Message) (round.Session, error) {
	defer r.secret.Erase()

	proof := zksch.Prove(r.secret, r.challenge, r.x)
	if proof == nil {
		return nil, errors.New("nonce was already used")
	}
	if err := r.SendMessage(out, &proofMessage{Proof: proof}); err != nil {
		return nil, err
	}
	return r.ResultRound(proof), nil
}

// MessageContent implements round.Round.
func (r *prover2) MessageContent() round.Content {
	return &challengeMessage{Challenge: zksch.EmptyChallenge(r.Group())}
}

// Number implements round.Round.
func (prover2) Number() round.Number { return 2 }
