package curve

import (
	"encoding/hex"
	"testing"

	"github.com/cronokirby/saferith"
	"github.com/fxamacker/cbor/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var groups = []Curve{Secp256k1{}, Ristretto255{}}

func scalarFromUint(group Curve, x uint64) Scalar {
	return group.NewScalar().SetNat(new(saferith.Nat).SetUint64(x))
}

type marshalTester struct {
	S *MarshallableScalar
	P *MarshallablePoint
}

func TestMarshall(t *testing.T) {
	for _, group := range groups {
		t.Run(group.Name(), func(t *testing.T) {
			s := marshalTester{
				S: NewMarshallableScalar(scalarFromUint(group, 0xED)),
				P: NewMarshallablePoint(group.NewBasePoint()),
			}
			data, err := cbor.Marshal(s)
			require.NoError(t, err)
			var s2 marshalTester
			err = cbor.Unmarshal(data, &s2)
			require.NoError(t, err)
			assert.Equal(t, group.Name(), s2.S.Scalar.Curve().Name())
			assert.True(t, s.S.Scalar.Equal(s2.S.Scalar))
			assert.True(t, s.P.Point.Equal(s2.P.Point))
		})
	}
}

func TestBasePoint(t *testing.T) {
	for _, group := range groups {
		t.Run(group.Name(), func(t *testing.T) {
			g := group.NewBasePoint()
			two := scalarFromUint(group, 2)
			assert.True(t, g.Add(g).Equal(two.ActOnBase()))
			assert.True(t, two.Act(g).Equal(two.ActOnBase()))
			assert.False(t, g.IsIdentity())
			assert.True(t, group.NewPoint().IsIdentity())
		})
	}
}

func TestPoint_Negate(t *testing.T) {
	for _, group := range groups {
		t.Run(group.Name(), func(t *testing.T) {
			g := group.NewBasePoint()
			assert.True(t, g.Add(g.Negate()).IsIdentity())
			assert.True(t, g.Sub(g).IsIdentity())
			assert.True(t, group.NewPoint().Sub(g).Equal(g.Negate()))
		})
	}
}

func TestPoint_Marshal(t *testing.T) {
	for _, group := range groups {
		t.Run(group.Name(), func(t *testing.T) {
			p := scalarFromUint(group, 12345).ActOnBase()
			data, err := p.MarshalBinary()
			require.NoError(t, err)
			q := group.NewPoint()
			require.NoError(t, q.UnmarshalBinary(data))
			assert.True(t, p.Equal(q))

			id, err := group.NewPoint().MarshalBinary()
			require.NoError(t, err)
			for _, b := range id {
				assert.Zero(t, b)
			}
			q = group.NewBasePoint()
			require.NoError(t, q.UnmarshalBinary(id))
			assert.True(t, q.IsIdentity())

			assert.Error(t, q.UnmarshalBinary(data[1:]))
		})
	}
}

func TestSecp256k1_BasePointEncoding(t *testing.T) {
	data, err := Secp256k1{}.NewBasePoint().MarshalBinary()
	require.NoError(t, err)
	Gx, _ := hex.DecodeString("79be667ef9dcbbac55a06295ce870b07029bfcdb2dce28d959f2815b16f81798")
	assert.Equal(t, byte(0x02), data[0])
	assert.Equal(t, Gx, data[1:])
}

func TestScalar_Arithmetic(t *testing.T) {
	for _, group := range groups {
		t.Run(group.Name(), func(t *testing.T) {
			three, five, seven := scalarFromUint(group, 3), scalarFromUint(group, 5), scalarFromUint(group, 7)

			z := group.NewScalar().Set(five).Mul(seven).Add(three)
			assert.True(t, z.Equal(scalarFromUint(group, 38)))
			assert.True(t, z.Sub(three).Equal(scalarFromUint(group, 35)))

			inv := group.NewScalar().Set(five).Invert()
			assert.True(t, inv.Mul(five).Equal(scalarFromUint(group, 1)))

			neg := group.NewScalar().Set(seven).Negate()
			assert.True(t, neg.Add(seven).IsZero())

			// q ≡ 0
			q := group.NewScalar().SetNat(group.Order().Nat())
			assert.True(t, q.IsZero())
		})
	}
}

func TestScalar_Marshal(t *testing.T) {
	for _, group := range groups {
		t.Run(group.Name(), func(t *testing.T) {
			s := scalarFromUint(group, 0xDEADBEEF)
			data, err := s.MarshalBinary()
			require.NoError(t, err)
			assert.Len(t, data, 32)
			s2 := group.NewScalar()
			require.NoError(t, s2.UnmarshalBinary(data))
			assert.True(t, s.Equal(s2))

			overflow := make([]byte, 32)
			for i := range overflow {
				overflow[i] = 0xFF
			}
			assert.Error(t, s2.UnmarshalBinary(overflow))
			assert.Error(t, s2.UnmarshalBinary(data[:31]))
		})
	}
}

func TestConstantTimeEqual(t *testing.T) {
	for _, group := range groups {
		t.Run(group.Name(), func(t *testing.T) {
			a := scalarFromUint(group, 3).ActOnBase()
			b := group.NewBasePoint().Add(scalarFromUint(group, 2).ActOnBase())
			assert.True(t, ConstantTimeEqual(a, b))
			assert.False(t, ConstantTimeEqual(a, group.NewBasePoint()))
			assert.False(t, ConstantTimeEqual(a, nil))
		})
	}
	assert.False(t, ConstantTimeEqual(Secp256k1{}.NewBasePoint(), Ristretto255{}.NewBasePoint()))
}

func TestSecretScalar_Erase(t *testing.T) {
	for _, group := range groups {
		t.Run(group.Name(), func(t *testing.T) {
			s := scalarFromUint(group, 42)
			secret := NewSecretScalar(s)
			require.False(t, secret.Erased())
			assert.True(t, secret.Expose().Equal(scalarFromUint(group, 42)))

			secret.Erase()
			assert.True(t, secret.Erased())
			assert.Nil(t, secret.Expose())
			// the memory held by the secret was overwritten in place
			assert.True(t, s.IsZero())

			secret.Erase()
			assert.True(t, secret.Erased())
		})
	}
}

func TestFromName(t *testing.T) {
	for _, group := range groups {
		assert.Equal(t, group, FromName(group.Name()))
	}
	assert.Nil(t, FromName("p256"))
}

func TestClearNat(t *testing.T) {
	n := new(saferith.Nat).SetBytes([]byte{0xde, 0xad, 0xbe, 0xef, 0x01})
	ClearNat(n)
	assert.EqualValues(t, 1, n.EqZero())
	assert.Equal(t, 40, n.AnnouncedLen())
	assert.NotPanics(t, func() { ClearNat(nil) })
}

func TestScalar_SetNatKeepsInput(t *testing.T) {
	for _, group := range groups {
		t.Run(group.Name(), func(t *testing.T) {
			x := new(saferith.Nat).SetUint64(0xED)
			s := group.NewScalar().SetNat(x)
			assert.EqualValues(t, 1, x.Eq(new(saferith.Nat).SetUint64(0xED)))
			assert.True(t, s.Equal(scalarFromUint(group, 0xED)))
		})
	}
}
