package sample

import (
	"bytes"
	"crypto/rand"
	"errors"
	"testing"

	"github.com/cronokirby/saferith"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/taurusgroup/schnorr-pok/pkg/math/curve"
)

func TestScalar_ErasesIntermediates(t *testing.T) {
	for _, group := range []curve.Curve{curve.Secp256k1{}, curve.Ristretto255{}} {
		t.Run(group.Name(), func(t *testing.T) {
			buffer := make([]byte, group.SafeScalarBytes())
			_, err := rand.Read(buffer)
			require.NoError(t, err)
			expected := group.NewScalar().SetNat(new(saferith.Nat).SetBytes(append([]byte(nil), buffer...)))

			n := new(saferith.Nat)
			s := reduce(group, buffer, n)
			assert.True(t, s.Equal(expected))

			assert.Equal(t, make([]byte, len(buffer)), buffer, "buffer should be cleared")
			assert.EqualValues(t, 1, n.EqZero(), "pre-image should be cleared")
			assert.Equal(t, 8*len(buffer), n.AnnouncedLen(), "pre-image should be cleared in place")
		})
	}
}

func TestScalar(t *testing.T) {
	for _, group := range []curve.Curve{curve.Secp256k1{}, curve.Ristretto255{}} {
		t.Run(group.Name(), func(t *testing.T) {
			a, b := Scalar(rand.Reader, group), Scalar(rand.Reader, group)
			assert.Equal(t, group.Name(), a.Curve().Name())
			assert.False(t, a.IsZero())
			assert.False(t, a.Equal(b), "two samples should not collide")

			x, X := ScalarPointPair(rand.Reader, group)
			assert.True(t, x.ActOnBase().Equal(X))
		})
	}
}

func TestScalar_Deterministic(t *testing.T) {
	group := curve.Secp256k1{}
	seed := bytes.Repeat([]byte{0x42}, 2*group.SafeScalarBytes())
	a := Scalar(bytes.NewReader(seed), group)
	b := Scalar(bytes.NewReader(seed), group)
	assert.True(t, a.Equal(b))
}

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) {
	return 0, errors.New("no entropy")
}

func TestScalar_FailingReader(t *testing.T) {
	assert.PanicsWithValue(t, ErrMaxIterations, func() {
		Scalar(failingReader{}, curve.Ristretto255{})
	})
}

// This exists to save the results of functions we want to benchmark, to avoid
// having them optimized away.
var resultScalar curve.Scalar

func BenchmarkScalar(b *testing.B) {
	group := curve.Secp256k1{}
	for i := 0; i < b.N; i++ {
		resultScalar = Scalar(rand.Reader, group)
	}
}
