package test

import (
	"sync"

	"github.com/taurusgroup/schnorr-pok/pkg/party"
	"github.com/taurusgroup/schnorr-pok/pkg/protocol"
)

// Network delivers messages between parties over buffered channels.
//
// Every message is encoded and decoded on the way, as a real transport would.
type Network struct {
	listenChannels   map[party.ID]chan *protocol.Message
	done             chan struct{}
	closedListenChan chan *protocol.Message
	mtx              sync.Mutex
}

func NewNetwork(parties ...party.ID) *Network {
	closed := make(chan *protocol.Message)
	close(closed)
	n := len(parties)
	c := &Network{
		listenChannels:   make(map[party.ID]chan *protocol.Message, n),
		done:             make(chan struct{}),
		closedListenChan: closed,
	}
	for _, id := range parties {
		c.listenChannels[id] = make(chan *protocol.Message, n*n)
	}
	return c
}

func (n *Network) Next(id party.ID) <-chan *protocol.Message {
	n.mtx.Lock()
	defer n.mtx.Unlock()
	c, ok := n.listenChannels[id]
	if !ok {
		return n.closedListenChan
	}
	return c
}

func (n *Network) Send(msg *protocol.Message) {
	data, err := msg.MarshalBinary()
	if err != nil {
		panic(err)
	}
	n.mtx.Lock()
	defer n.mtx.Unlock()
	for id, c := range n.listenChannels {
		if !msg.IsFor(id) {
			continue
		}
		var received protocol.Message
		if err = received.UnmarshalBinary(data); err != nil {
			panic(err)
		}
		c <- &received
	}
}

// Done removes the party from the network, and returns a channel which is closed once all parties are done.
func (n *Network) Done(id party.ID) chan struct{} {
	n.mtx.Lock()
	defer n.mtx.Unlock()
	if c, ok := n.listenChannels[id]; ok {
		close(c)
		delete(n.listenChannels, id)
		if len(n.listenChannels) == 0 {
			close(n.done)
		}
	}
	return n.done
}
