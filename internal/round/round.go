package round

type Round interface {
	// VerifyMessage validates the content of an incoming Message from the peer.
	// The content can be cast to the type returned by MessageContent without error check.
	// It must not modify any saved state.
	VerifyMessage(msg Message) error

	// StoreMessage should be called after VerifyMessage and should only store the appropriate fields from the
	// content.
	StoreMessage(msg Message) error

	// Finalize is called once the message for the current round has been stored, or immediately
	// if the round expects none.
	// Messages for the peer are sent out through the out channel.
	//
	// In the last round, Finalize should return
	//   r.ResultRound(result), nil
	// and when the peer misbehaved
	//   r.AbortRound(err, culprit), nil
	Finalize(out chan<- *Message) (Session, error)

	// MessageContent returns an uninitialized Content for this round.
	//
	// A round which does not expect a message returns nil.
	MessageContent() Content

	// Number is the round number of the messages this round accepts.
	Number() Number
}
