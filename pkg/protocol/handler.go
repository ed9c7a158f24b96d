package protocol

import (
	"bytes"
	"errors"
	"fmt"
	"sync"

	"github.com/fxamacker/cbor/v2"
	"github.com/rs/zerolog"
	"github.com/taurusgroup/schnorr-pok/internal/round"
)

// StartFunc is function that creates the first round of a protocol.
// It returns the first round initialized with the session information.
// If the creation fails (likely due to misconfiguration), and error is returned.
//
// An optional sessionID can be provided, which should unique among all protocol executions.
type StartFunc func(sessionID []byte) (round.Session, error)

var (
	ErrNotFinished = errors.New("protocol: not finished")
	ErrStopped     = errors.New("protocol: aborted by user")
)

// Handler represents an execution of a two-party protocol.
// It provides a simple interface for the user to receive/deliver protocol messages.
type Handler struct {
	Log zerolog.Logger

	round    round.Session
	err      error
	result   interface{}
	messages map[round.Number]*Message
	out      chan *Message
	mtx      sync.Mutex
}

// NewHandler expects a StartFunc for the desired protocol. It returns a handler that the user can interact with.
//
// The handler logs to stderr at the info level.
func NewHandler(create StartFunc, sessionID []byte) (*Handler, error) {
	return NewHandlerWithLogger(create, sessionID, zerolog.New(zerolog.NewConsoleWriter()).Level(zerolog.InfoLevel))
}

// NewHandlerWithLogger is like NewHandler, but logs to the given logger.
func NewHandlerWithLogger(create StartFunc, sessionID []byte, log zerolog.Logger) (*Handler, error) {
	r, err := create(sessionID)
	if err != nil {
		return nil, fmt.Errorf("protocol: failed to create round: %w", err)
	}
	h := &Handler{
		round:    r,
		messages: map[round.Number]*Message{},
		out:      make(chan *Message, r.FinalRoundNumber()),
	}
	h.Log = log.With().
		Str("protocol", r.ProtocolID()).
		Str("party", string(r.SelfID())).
		Str("peer", string(r.PeerID())).
		Logger()
	h.Log.Info().Msg("start")

	h.mtx.Lock()
	defer h.mtx.Unlock()
	h.advance()
	return h, nil
}

// Result returns the protocol result if the protocol completed successfully. Otherwise an error is returned.
func (h *Handler) Result() (interface{}, error) {
	h.mtx.Lock()
	defer h.mtx.Unlock()
	if h.result != nil {
		return h.result, nil
	}
	if h.err != nil {
		return nil, h.err
	}
	return nil, ErrNotFinished
}

// Listen returns a channel with outgoing messages that must be sent to the peer.
// The channel is closed when either the protocol completes or an error occurs.
func (h *Handler) Listen() <-chan *Message {
	h.mtx.Lock()
	defer h.mtx.Unlock()
	return h.out
}

// Stop cancels the current execution of the protocol, and alerts the peer.
func (h *Handler) Stop() {
	h.mtx.Lock()
	defer h.mtx.Unlock()
	if h.err == nil && h.result == nil {
		h.abort(Error{RoundNumber: h.round.Number(), Err: ErrStopped})
	}
}

func (h *Handler) String() string {
	return fmt.Sprintf("party: %s, protocol: %s", h.round.SelfID(), h.round.ProtocolID())
}

// Accept tries to process the given message. If an abort occurs, the channel returned by Listen() is closed,
// and an error is returned by Result().
//
// Messages for a later round are kept until the handler reaches that round.
// Messages which are not meant for this execution, or which have already been received, are ignored.
func (h *Handler) Accept(msg *Message) {
	h.mtx.Lock()
	defer h.mtx.Unlock()

	if h.err != nil || h.result != nil {
		if msg != nil {
			h.Log.Debug().Stringer("msg", msg).Msg("protocol is done, ignoring message")
		}
		return
	}

	if err := h.validate(msg); err != nil {
		h.Log.Warn().Err(err).Msg("dropping message")
		return
	}

	if msg.RoundNumber == 0 {
		h.abort(Error{
			RoundNumber: h.round.Number(),
			Err:         fmt.Errorf("aborted by other party with error: %q", msg.Data),
		})
		return
	}

	h.messages[msg.RoundNumber] = msg
	h.advance()
}

// CanAccept reports whether the message would be considered by Accept.
func (h *Handler) CanAccept(msg *Message) bool {
	h.mtx.Lock()
	defer h.mtx.Unlock()
	return h.validate(msg) == nil
}

func (h *Handler) validate(msg *Message) error {
	r := h.round
	switch {
	case msg == nil:
		return errors.New("nil message")
	case !msg.IsFor(r.SelfID()):
		return fmt.Errorf("%s: not addressed to this party", msg)
	case msg.From != r.PeerID():
		return fmt.Errorf("%s: unknown sender", msg)
	case msg.Protocol != r.ProtocolID():
		return fmt.Errorf("%s: wrong protocol", msg)
	case !bytes.Equal(msg.SSID, r.SSID()):
		return fmt.Errorf("%s: wrong SSID", msg)
	case msg.Data == nil:
		return fmt.Errorf("%s: no content", msg)
	case msg.RoundNumber > r.FinalRoundNumber():
		return fmt.Errorf("%s: round number too high", msg)
	case h.messages[msg.RoundNumber] != nil:
		return fmt.Errorf("%s: duplicate message", msg)
	}
	return nil
}

func (h *Handler) canAdvance() bool {
	if h.round.MessageContent() == nil {
		return true
	}
	return h.messages[h.round.Number()] != nil
}

func (h *Handler) verifyMessage(msg *Message) error {
	if msg == nil {
		return nil
	}
	r := h.round
	content := r.MessageContent()
	if err := cbor.Unmarshal(msg.Data, content); err != nil {
		return fmt.Errorf("failed to unmarshal message: %w", err)
	}
	roundMsg := round.Message{
		From:    msg.From,
		To:      msg.To,
		Content: content,
	}
	if err := r.VerifyMessage(roundMsg); err != nil {
		return err
	}
	return r.StoreMessage(roundMsg)
}

func (h *Handler) advance() {
	for h.canAdvance() {
		number := h.round.Number()
		log := h.Log.With().Int("round", int(number)).Logger()

		msg := h.messages[number]
		if err := h.verifyMessage(msg); err != nil {
			h.abort(Error{RoundNumber: number, Culprit: msg.From, Err: err})
			return
		}

		out := make(chan *round.Message, 1)
		newRound, err := h.round.Finalize(out)
		close(out)
		if err != nil || newRound == nil {
			if err == nil {
				err = errors.New("no next round")
			}
			h.abort(Error{RoundNumber: number, Err: err})
			return
		}
		for roundMsg := range out {
			data, err := cbor.Marshal(roundMsg.Content)
			if err != nil {
				h.abort(Error{RoundNumber: number, Err: fmt.Errorf("failed to marshal round message: %w", err)})
				return
			}
			protocolMsg := &Message{
				SSID:        newRound.SSID(),
				From:        newRound.SelfID(),
				To:          roundMsg.To,
				Protocol:    newRound.ProtocolID(),
				RoundNumber: roundMsg.Content.RoundNumber(),
				Data:        data,
			}
			log.Debug().Stringer("msg", protocolMsg).Msg("sending message")
			h.out <- protocolMsg
		}
		log.Debug().Msg("round finalized")

		h.round = newRound
		switch R := newRound.(type) {
		case *round.Abort:
			h.abort(Error{RoundNumber: number, Culprit: R.Culprit, Err: R.Err})
			return
		case *round.Output:
			h.result = R.Result
			h.Log.Info().Msg("done")
			close(h.out)
			return
		}
	}
}

// abort records the error, notifies the peer, and closes the out channel.
func (h *Handler) abort(err Error) {
	h.err = err
	h.Log.Error().Int("round", int(err.RoundNumber)).Str("culprit", string(err.Culprit)).Err(err.Err).Msg("abort")
	select {
	case h.out <- &Message{
		SSID:     h.round.SSID(),
		From:     h.round.SelfID(),
		To:       h.round.PeerID(),
		Protocol: h.round.ProtocolID(),
		Data:     []byte(err.Error()),
	}:
	default:
	}
	close(h.out)
}
