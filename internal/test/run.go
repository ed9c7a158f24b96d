package test

import (
	"fmt"

	"github.com/rs/zerolog"
	"github.com/taurusgroup/schnorr-pok/pkg/party"
	"github.com/taurusgroup/schnorr-pok/pkg/protocol"
	"golang.org/x/sync/errgroup"
)

// Run creates a handler for each party, and executes them concurrently over a fresh Network
// until every handler is done.
//
// The handlers are returned so that their results can be inspected.
func Run(log zerolog.Logger, sessionID []byte, starts map[party.ID]protocol.StartFunc) (map[party.ID]*protocol.Handler, error) {
	ids := make([]party.ID, 0, len(starts))
	handlers := make(map[party.ID]*protocol.Handler, len(starts))
	for id, start := range starts {
		h, err := protocol.NewHandlerWithLogger(start, sessionID, log)
		if err != nil {
			return nil, fmt.Errorf("party %s: %w", id, err)
		}
		ids = append(ids, id)
		handlers[id] = h
	}

	network := NewNetwork(ids...)
	var eg errgroup.Group
	for id, h := range handlers {
		id, h := id, h
		eg.Go(func() error {
			HandlerLoop(id, h, network)
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}
	return handlers, nil
}
