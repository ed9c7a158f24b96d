package protocol

import (
	"fmt"

	"github.com/fxamacker/cbor/v2"
	"github.com/taurusgroup/schnorr-pok/internal/hash"
	"github.com/taurusgroup/schnorr-pok/internal/round"
	"github.com/taurusgroup/schnorr-pok/pkg/party"
)

type Message struct {
	// SSID is a byte string which uniquely identifies the session this message belongs to.
	SSID []byte
	// From is the party.ID of the sender
	From party.ID
	// To is the party.ID of the recipient
	To party.ID
	// Protocol identifies the protocol this message belongs to
	Protocol string
	// RoundNumber is the index of the round this message belongs to.
	// A message with RoundNumber 0 notifies the recipient that the sender aborted.
	RoundNumber round.Number
	// Data is the actual content consumed by the round.
	Data []byte
}

// String implements fmt.Stringer.
func (m Message) String() string {
	return fmt.Sprintf("message: round %d, from: %s, to %s, protocol: %s", m.RoundNumber, m.From, m.To, m.Protocol)
}

// IsFor returns true if the message is intended for the designated party.
func (m Message) IsFor(id party.ID) bool {
	return m.From != id && m.To == id
}

// Hash returns a 64 byte slice of the message content, including the headers.
// Can be used to produce a signature for the message.
func (m Message) Hash() []byte {
	h := hash.New(
		hash.BytesWithDomain{TheDomain: "SSID", Bytes: m.SSID},
		hash.BytesWithDomain{TheDomain: "From", Bytes: []byte(m.From)},
		hash.BytesWithDomain{TheDomain: "To", Bytes: []byte(m.To)},
		hash.BytesWithDomain{TheDomain: "Protocol", Bytes: []byte(m.Protocol)},
		m.RoundNumber,
		hash.BytesWithDomain{TheDomain: "Content", Bytes: m.Data},
	)
	return h.Sum()
}

type marshallableMessage Message

// MarshalBinary encodes the message with cbor, so that it can be sent over any transport.
func (m *Message) MarshalBinary() ([]byte, error) {
	return cbor.Marshal((*marshallableMessage)(m))
}

// UnmarshalBinary decodes a message created by MarshalBinary.
func (m *Message) UnmarshalBinary(data []byte) error {
	return cbor.Unmarshal(data, (*marshallableMessage)(m))
}
