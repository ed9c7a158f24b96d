// Package sch runs the interactive Schnorr proof of knowledge between two parties,
// on top of protocol.Handler.
//
// The prover sends its Commit as soon as the session starts, answers the first
// Challenge it receives, and outputs its Proof.
// The verifier answers the Commit with a fresh Challenge, and outputs the public
// point X once the Proof is accepted. A Proof which fails verification aborts the
// verifier's session with an error wrapping zksch.ErrInvalidProof, naming the prover as culprit.
package sch

import (
	"crypto/rand"
	"errors"
	"fmt"
	"io"

	"github.com/taurusgroup/schnorr-pok/internal/round"
	"github.com/taurusgroup/schnorr-pok/pkg/math/curve"
	"github.com/taurusgroup/schnorr-pok/pkg/party"
	"github.com/taurusgroup/schnorr-pok/pkg/protocol"
)

const (
	protocolID                  = "sch/pok"
	protocolRounds round.Number = 3
)

// StartProver creates the prover's session, proving knowledge of x to verifierID.
//
// x is read but never modified, and must outlive the session.
// If source is nil, crypto/rand is used.
func StartProver(group curve.Curve, selfID, verifierID party.ID, x curve.Scalar, source io.Reader) protocol.StartFunc {
	return func(sessionID []byte) (round.Session, error) {
		if x == nil || !curve.SameCurve(group, x.Curve()) {
			return nil, errors.New("sch.StartProver: secret is not an element of the group")
		}
		helper, err := newSession(group, selfID, verifierID, sessionID)
		if err != nil {
			return nil, fmt.Errorf("sch.StartProver: %w", err)
		}
		return &prover1{
			Helper: helper,
			x:      x,
			rand:   randOrDefault(source),
		}, nil
	}
}

// StartVerifier creates the verifier's session, checking that proverID knows the discrete logarithm of X.
//
// If source is nil, crypto/rand is used.
func StartVerifier(group curve.Curve, selfID, proverID party.ID, X curve.Point, source io.Reader) protocol.StartFunc {
	return func(sessionID []byte) (round.Session, error) {
		if X == nil || !curve.SameCurve(group, X.Curve()) {
			return nil, errors.New("sch.StartVerifier: public point is not an element of the group")
		}
		helper, err := newSession(group, selfID, proverID, sessionID)
		if err != nil {
			return nil, fmt.Errorf("sch.StartVerifier: %w", err)
		}
		return &verifier1{
			Helper: helper,
			X:      X,
			rand:   randOrDefault(source),
		}, nil
	}
}

func newSession(group curve.Curve, selfID, peerID party.ID, sessionID []byte) (*round.Helper, error) {
	info := round.Info{
		ProtocolID:       protocolID,
		FinalRoundNumber: protocolRounds,
		SelfID:           selfID,
		PeerID:           peerID,
		Group:            group,
	}
	return round.NewSession(info, sessionID)
}

func randOrDefault(source io.Reader) io.Reader {
	if source == nil {
		return rand.Reader
	}
	return source
}
