package sch

import (
	"crypto/rand"
	"errors"
	"fmt"
	"testing"

	"github.com/fxamacker/cbor/v2"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/taurusgroup/schnorr-pok/internal/pool"
	"github.com/taurusgroup/schnorr-pok/internal/test"
	"github.com/taurusgroup/schnorr-pok/pkg/math/curve"
	"github.com/taurusgroup/schnorr-pok/pkg/math/sample"
	"github.com/taurusgroup/schnorr-pok/pkg/party"
	"github.com/taurusgroup/schnorr-pok/pkg/protocol"
	zksch "github.com/taurusgroup/schnorr-pok/pkg/zk/sch"
	"golang.org/x/sync/errgroup"
)

const (
	proverID   party.ID = "prover"
	verifierID party.ID = "verifier"
)

var groups = []curve.Curve{curve.Secp256k1{}, curve.Ristretto255{}}

func run(t *testing.T, group curve.Curve, x curve.Scalar, X curve.Point) (proverResult, verifierResult interface{}, proverErr, verifierErr error) {
	handlers, err := test.Run(zerolog.New(zerolog.NewTestWriter(t)).Level(zerolog.WarnLevel), []byte("session"), map[party.ID]protocol.StartFunc{
		proverID:   StartProver(group, proverID, verifierID, x, nil),
		verifierID: StartVerifier(group, verifierID, proverID, X, nil),
	})
	require.NoError(t, err)
	proverResult, proverErr = handlers[proverID].Result()
	verifierResult, verifierErr = handlers[verifierID].Result()
	return
}

func TestSch(t *testing.T) {
	for _, group := range groups {
		t.Run(group.Name(), func(t *testing.T) {
			x, X := sample.ScalarPointPair(rand.Reader, group)
			proverResult, verifierResult, proverErr, verifierErr := run(t, group, x, X)
			require.NoError(t, proverErr)
			require.NoError(t, verifierErr)

			require.IsType(t, &zksch.Proof{}, proverResult)
			require.Implements(t, (*curve.Point)(nil), verifierResult)
			assert.True(t, X.Equal(verifierResult.(curve.Point)))
		})
	}
}

func TestSchCheatingProver(t *testing.T) {
	for _, group := range groups {
		t.Run(group.Name(), func(t *testing.T) {
			_, X := sample.ScalarPointPair(rand.Reader, group)
			xOther := sample.Scalar(rand.Reader, group)
			_, verifierResult, proverErr, verifierErr := run(t, group, xOther, X)

			// the prover cannot tell that its proof was rejected
			assert.NoError(t, proverErr)

			assert.Nil(t, verifierResult)
			require.ErrorIs(t, verifierErr, zksch.ErrInvalidProof)
			var protocolErr protocol.Error
			require.True(t, errors.As(verifierErr, &protocolErr))
			assert.Equal(t, proverID, protocolErr.Culprit)
			assert.EqualValues(t, 3, protocolErr.RoundNumber)
		})
	}
}

func TestSchConcurrent(t *testing.T) {
	const sessions = 16
	source := pool.NewLockedReader(rand.Reader)

	var eg errgroup.Group
	for i := 0; i < sessions; i++ {
		group := groups[i%len(groups)]
		sessionID := []byte(fmt.Sprintf("session %d", i))
		eg.Go(func() error {
			x, X := sample.ScalarPointPair(source, group)
			handlers, err := test.Run(zerolog.Nop(), sessionID, map[party.ID]protocol.StartFunc{
				proverID:   StartProver(group, proverID, verifierID, x, source),
				verifierID: StartVerifier(group, verifierID, proverID, X, source),
			})
			if err != nil {
				return err
			}
			for _, h := range handlers {
				if _, err = h.Result(); err != nil {
					return err
				}
			}
			return nil
		})
	}
	assert.NoError(t, eg.Wait())
}

func TestSchDeterministic(t *testing.T) {
	group := curve.Ristretto255{}
	transcript := func() []byte {
		source := test.Reader([]byte("deterministic"))
		x, X := sample.ScalarPointPair(source, group)
		prover, err := protocol.NewHandlerWithLogger(StartProver(group, proverID, verifierID, x, source), nil, zerolog.Nop())
		require.NoError(t, err)
		verifier, err := protocol.NewHandlerWithLogger(StartVerifier(group, verifierID, proverID, X, source), nil, zerolog.Nop())
		require.NoError(t, err)

		var out []byte
		commit := <-prover.Listen()
		verifier.Accept(commit)
		challenge := <-verifier.Listen()
		prover.Accept(challenge)
		proof := <-prover.Listen()
		verifier.Accept(proof)
		for _, msg := range []*protocol.Message{commit, challenge, proof} {
			out = append(out, msg.Data...)
		}

		_, err = verifier.Result()
		require.NoError(t, err)
		return out
	}
	assert.Equal(t, transcript(), transcript())
}

// pair creates the prover and verifier handlers without connecting them.
func pair(t *testing.T, group curve.Curve, proverSession, verifierSession []byte) (prover, verifier *protocol.Handler) {
	x, X := sample.ScalarPointPair(rand.Reader, group)
	prover, err := protocol.NewHandlerWithLogger(StartProver(group, proverID, verifierID, x, nil), proverSession, zerolog.Nop())
	require.NoError(t, err)
	verifier, err = protocol.NewHandlerWithLogger(StartVerifier(group, verifierID, proverID, X, nil), verifierSession, zerolog.Nop())
	require.NoError(t, err)
	return prover, verifier
}

func TestSchWrongSession(t *testing.T) {
	prover, verifier := pair(t, curve.Secp256k1{}, []byte("session 1"), []byte("session 2"))

	commit := <-prover.Listen()
	assert.False(t, verifier.CanAccept(commit))
	verifier.Accept(commit)
	_, err := verifier.Result()
	assert.ErrorIs(t, err, protocol.ErrNotFinished)
	select {
	case msg := <-verifier.Listen():
		t.Fatalf("verifier should not answer a commitment from another session, got %v", msg)
	default:
	}
}

func TestSchDuplicate(t *testing.T) {
	group := curve.Secp256k1{}
	prover, verifier := pair(t, group, nil, nil)

	commit := <-prover.Listen()
	require.True(t, verifier.CanAccept(commit))
	verifier.Accept(commit)
	assert.False(t, verifier.CanAccept(commit), "a commitment is only accepted once")

	challenge := <-verifier.Listen()
	prover.Accept(challenge)
	proof, ok := <-prover.Listen()
	require.True(t, ok)
	_, ok = <-prover.Listen()
	require.False(t, ok, "the prover is done after sending its proof")
	first, err := prover.Result()
	require.NoError(t, err)

	// a second challenge must not produce a second proof for the same nonce
	data, err := cbor.Marshal(&challengeMessage{Challenge: zksch.NewChallenge(rand.Reader, group)})
	require.NoError(t, err)
	second := *challenge
	second.Data = data
	prover.Accept(&second)
	again, err := prover.Result()
	require.NoError(t, err)
	assert.Same(t, first, again)

	verifier.Accept(proof)
	_, err = verifier.Result()
	assert.NoError(t, err)
}

func TestSchMalformed(t *testing.T) {
	prover, verifier := pair(t, curve.Secp256k1{}, nil, nil)

	commit := <-prover.Listen()
	malformed := *commit
	malformed.Data = []byte{0xff}
	verifier.Accept(&malformed)

	_, err := verifier.Result()
	var protocolErr protocol.Error
	require.True(t, errors.As(err, &protocolErr))
	assert.Equal(t, proverID, protocolErr.Culprit)

	// the prover is notified of the abort
	abort, ok := <-verifier.Listen()
	require.True(t, ok)
	assert.EqualValues(t, 0, abort.RoundNumber)
	prover.Accept(abort)
	_, err = prover.Result()
	assert.Error(t, err)
	assert.NotErrorIs(t, err, protocol.ErrNotFinished)
}

func TestSchStop(t *testing.T) {
	prover, _ := pair(t, curve.Ristretto255{}, nil, nil)
	<-prover.Listen()
	prover.Stop()
	_, err := prover.Result()
	assert.ErrorIs(t, err, protocol.ErrStopped)
	prover.Stop()
}

func TestSchStartErrors(t *testing.T) {
	k, r := curve.Secp256k1{}, curve.Ristretto255{}
	x, X := sample.ScalarPointPair(rand.Reader, k)
	log := zerolog.Nop()

	_, err := protocol.NewHandlerWithLogger(StartProver(r, proverID, verifierID, x, nil), nil, log)
	assert.Error(t, err, "secret from another group")
	_, err = protocol.NewHandlerWithLogger(StartVerifier(r, verifierID, proverID, X, nil), nil, log)
	assert.Error(t, err, "public point from another group")
	_, err = protocol.NewHandlerWithLogger(StartProver(k, proverID, proverID, x, nil), nil, log)
	assert.Error(t, err, "prover cannot prove to itself")
	_, err = protocol.NewHandlerWithLogger(StartVerifier(k, verifierID, "", X, nil), nil, log)
	assert.Error(t, err, "empty prover ID")
}
