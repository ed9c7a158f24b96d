package round

import "github.com/taurusgroup/schnorr-pok/pkg/party"

// Abort is an empty round containing the party who misbehaved, if it could be identified.
type Abort struct {
	*Helper
	Culprit party.ID
	Err     error
}

func (Abort) VerifyMessage(Message) error                  { return nil }
func (Abort) StoreMessage(Message) error                   { return nil }
func (r *Abort) Finalize(chan<- *Message) (Session, error) { return r, nil }
func (Abort) MessageContent() Content                      { return nil }
func (Abort) Number() Number                               { return 0 }
