package sch

import (
	"github.com/taurusgroup/schnorr-pok/internal/round"
	zksch "github.com/taurusgroup/schnorr-pok/pkg/zk/sch"
)

// commitMessage is sent by the prover in round 1, and received by the verifier.
type commitMessage struct {
	Commit *zksch.Commit
}

// challengeMessage is sent by the verifier in round 2, and received by the prover.
type challengeMessage struct {
	Challenge *zksch.Challenge
}

// proofMessage is sent by the prover in round 3, and received by the verifier.
type proofMessage struct {
	Proof *zksch.Proof
}

func (commitMessage) RoundNumber() round.Number    { return 1 }
func (challengeMessage) RoundNumber() round.Number { return 2 }
func (proofMessage) RoundNumber() round.Number     { return 3 }
