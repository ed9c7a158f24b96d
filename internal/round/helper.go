package round

import (
	"errors"
	"fmt"

	"github.com/taurusgroup/schnorr-pok/internal/hash"
	"github.com/taurusgroup/schnorr-pok/pkg/math/curve"
	"github.com/taurusgroup/schnorr-pok/pkg/party"
)

var (
	// ErrOutChanFull is returned when a message could not be sent because the out channel is full.
	ErrOutChanFull = errors.New("round: out channel is full")
	// ErrInvalidContent is returned when the content of a message does not have the expected type.
	ErrInvalidContent = errors.New("round: content is not the right type")
)

// Helper implements Session without Round, and can therefore be embedded in the first round of a protocol
// in order to satisfy the Session interface.
type Helper struct {
	info Info

	// ssid the unique identifier for this protocol execution
	ssid []byte
}

// NewSession creates a new *Helper which can be embedded in the first Round,
// so that the full struct implements Session.
// `sessionID` is an optional byte slice that can be provided by the user.
// When used, it should be unique for each execution of the protocol,
// and both parties must provide the same value.
// It could be a simple counter which is incremented after execution, or a common random string.
func NewSession(info Info, sessionID []byte) (*Helper, error) {
	if info.Group == nil {
		return nil, errors.New("session: no group")
	}
	if info.SelfID == "" || info.PeerID == "" {
		return nil, errors.New("session: empty party ID")
	}
	if info.SelfID == info.PeerID {
		return nil, fmt.Errorf("session: party %s cannot run the protocol with itself", info.SelfID)
	}

	h := hash.New()
	if sessionID != nil {
		if err := h.WriteAny(&hash.BytesWithDomain{
			TheDomain: "Session ID",
			Bytes:     sessionID,
		}); err != nil {
			return nil, fmt.Errorf("session: %w", err)
		}
	}

	// the party IDs are written in sorted order, so that both parties agree on the SSID
	first, second := info.SelfID, info.PeerID
	if second < first {
		first, second = second, first
	}
	if err := h.WriteAny(
		&hash.BytesWithDomain{
			TheDomain: "Protocol ID",
			Bytes:     []byte(info.ProtocolID),
		},
		&hash.BytesWithDomain{
			TheDomain: "Group Name",
			Bytes:     []byte(info.Group.Name()),
		},
		first,
		second,
		info.FinalRoundNumber,
	); err != nil {
		return nil, fmt.Errorf("session: %w", err)
	}

	return &Helper{
		info: info,
		ssid: h.Sum(),
	}, nil
}

// SendMessage is a convenience method for safely sending content to the peer.
// Returns an error if the message failed to send over out channel.
// `out` is expected to be a buffered channel with enough capacity to store all messages.
func (h *Helper) SendMessage(out chan<- *Message, content Content) error {
	msg := &Message{
		From:    h.info.SelfID,
		To:      h.info.PeerID,
		Content: content,
	}
	select {
	case out <- msg:
		return nil
	default:
		return ErrOutChanFull
	}
}

// ResultRound returns a round that contains only the result of the protocol.
// This indicates to the used that the protocol is finished.
func (h *Helper) ResultRound(result interface{}) Session {
	return &Output{
		Helper: h,
		Result: result,
	}
}

// AbortRound returns a round that contains the culprit that was able to be identified during
// a faulty execution of the protocol. The error returned by Round.Finalize() in this case should still be nil.
func (h *Helper) AbortRound(err error, culprit party.ID) Session {
	return &Abort{
		Helper:  h,
		Culprit: culprit,
		Err:     err,
	}
}

// ProtocolID is an identifier for this protocol.
func (h *Helper) ProtocolID() string { return h.info.ProtocolID }

// FinalRoundNumber is the number of the last round before the output.
func (h *Helper) FinalRoundNumber() Number { return h.info.FinalRoundNumber }

// SSID the unique identifier for this protocol execution.
func (h *Helper) SSID() []byte { return h.ssid }

// SelfID is this party's ID.
func (h *Helper) SelfID() party.ID { return h.info.SelfID }

// PeerID is the ID of the other party.
func (h *Helper) PeerID() party.ID { return h.info.PeerID }

// Group returns the curve used for this protocol.
func (h *Helper) Group() curve.Curve { return h.info.Group }
