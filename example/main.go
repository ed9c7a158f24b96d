package main

import (
	"crypto/rand"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog"
	"github.com/taurusgroup/schnorr-pok/internal/pool"
	"github.com/taurusgroup/schnorr-pok/internal/test"
	"github.com/taurusgroup/schnorr-pok/pkg/math/curve"
	"github.com/taurusgroup/schnorr-pok/pkg/math/sample"
	"github.com/taurusgroup/schnorr-pok/pkg/party"
	"github.com/taurusgroup/schnorr-pok/pkg/protocol"
	zksch "github.com/taurusgroup/schnorr-pok/pkg/zk/sch"
	"github.com/taurusgroup/schnorr-pok/protocols/sch"
	"golang.org/x/sync/errgroup"
)

const sessionsPerGroup = 4

func Prove(id, verifier party.ID, group curve.Curve, x curve.Scalar, source io.Reader, sessionID []byte, n *test.Network, log zerolog.Logger) error {
	h, err := protocol.NewHandlerWithLogger(sch.StartProver(group, id, verifier, x, source), sessionID, log)
	if err != nil {
		return err
	}
	test.HandlerLoop(id, h, n)
	r, err := h.Result()
	if err != nil {
		return err
	}
	if _, ok := r.(*zksch.Proof); !ok {
		return errors.New("prover: unexpected result")
	}
	return nil
}

func Verify(id, prover party.ID, group curve.Curve, X curve.Point, source io.Reader, sessionID []byte, n *test.Network, log zerolog.Logger) error {
	h, err := protocol.NewHandlerWithLogger(sch.StartVerifier(group, id, prover, X, source), sessionID, log)
	if err != nil {
		return err
	}
	test.HandlerLoop(id, h, n)
	r, err := h.Result()
	if err != nil {
		return err
	}
	accepted, ok := r.(curve.Point)
	if !ok || !accepted.Equal(X) {
		return errors.New("verifier: unexpected result")
	}
	return nil
}

// Session runs one prover and one verifier over their own network.
// When cheat is set, the prover does not know the discrete logarithm of X.
func Session(group curve.Curve, index int, cheat bool, source io.Reader, log zerolog.Logger) error {
	prover, verifier := party.ID(fmt.Sprintf("prover-%d", index)), party.ID(fmt.Sprintf("verifier-%d", index))
	sessionID := []byte(fmt.Sprintf("%s/%d", group.Name(), index))
	x, X := sample.ScalarPointPair(source, group)
	if cheat {
		x = sample.Scalar(source, group)
	}

	n := test.NewNetwork(prover, verifier)
	var eg errgroup.Group
	eg.Go(func() error {
		return Prove(prover, verifier, group, x, source, sessionID, n, log)
	})
	eg.Go(func() error {
		return Verify(verifier, prover, group, X, source, sessionID, n, log)
	})
	return eg.Wait()
}

func main() {
	log := zerolog.New(zerolog.NewConsoleWriter()).Level(zerolog.InfoLevel).With().Timestamp().Logger()
	source := pool.NewLockedReader(rand.Reader)

	var eg errgroup.Group
	for _, group := range []curve.Curve{curve.Secp256k1{}, curve.Ristretto255{}} {
		for i := 0; i < sessionsPerGroup; i++ {
			group, i := group, i
			eg.Go(func() error {
				return Session(group, i, false, source, log)
			})
		}
	}
	if err := eg.Wait(); err != nil {
		log.Error().Err(err).Msg("honest session failed")
		os.Exit(1)
	}

	err := Session(curve.Secp256k1{}, sessionsPerGroup, true, source, log)
	if !errors.Is(err, zksch.ErrInvalidProof) {
		log.Error().Err(err).Msg("cheating prover was not caught")
		os.Exit(1)
	}
	log.Info().Msg("all sessions behaved as expected")
}
