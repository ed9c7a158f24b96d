package round

import (
	"github.com/taurusgroup/schnorr-pok/pkg/math/curve"
	"github.com/taurusgroup/schnorr-pok/pkg/party"
)

type Info struct {
	// ProtocolID is an identifier for this protocol
	ProtocolID string
	// FinalRoundNumber is the number of the last round before the output.
	FinalRoundNumber Number
	// SelfID is this party's ID.
	SelfID party.ID
	// PeerID is the ID of the other party.
	PeerID party.ID
	// Group returns the group used for this protocol execution.
	Group curve.Curve
}

// Session represents the current execution of a two-party round-based protocol.
// It embeds the current round, and provides additional information about the execution.
type Session interface {
	// Round is the current round being executed.
	Round
	// Group returns the group used for this protocol execution.
	Group() curve.Curve
	// ProtocolID is an identifier for this protocol.
	ProtocolID() string
	// FinalRoundNumber is the number of the last round before the output.
	FinalRoundNumber() Number
	// SSID the unique identifier for this protocol execution.
	SSID() []byte
	// SelfID is this party's ID.
	SelfID() party.ID
	// PeerID is the ID of the other party.
	PeerID() party.ID
}
