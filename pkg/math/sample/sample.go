package sample

import (
	"fmt"
	"io"

	"github.com/cronokirby/saferith"
	"github.com/taurusgroup/schnorr-pok/pkg/math/curve"
)

const maxIterations = 255

var ErrMaxIterations = fmt.Errorf("sample: failed to generate after %d iterations", maxIterations)

func mustReadBits(rand io.Reader, buf []byte) {
	for i := 0; i < maxIterations; i++ {
		if _, err := io.ReadFull(rand, buf); err == nil {
			return
		}
	}
	panic(ErrMaxIterations)
}

// Scalar returns a new scalar of the given group, drawn uniformly at random.
//
// group.SafeScalarBytes() bytes are read from rand and reduced modulo the group order,
// which is statistically close to uniform.
func Scalar(rand io.Reader, group curve.Curve) curve.Scalar {
	buffer := make([]byte, group.SafeScalarBytes())
	mustReadBits(rand, buffer)
	return reduce(group, buffer, new(saferith.Nat))
}

// reduce returns the scalar buffer mod q, going through n.
// Both buffer and n are overwritten with zeros before returning.
func reduce(group curve.Curve, buffer []byte, n *saferith.Nat) curve.Scalar {
	n.SetBytes(buffer)
	s := group.NewScalar().SetNat(n)
	for i := range buffer {
		buffer[i] = 0
	}
	curve.ClearNat(n)
	return s
}

// ScalarPointPair returns a new uniformly random scalar x, along with X = x⋅G.
func ScalarPointPair(rand io.Reader, group curve.Curve) (curve.Scalar, curve.Point) {
	s := Scalar(rand, group)
	return s, s.ActOnBase()
}
