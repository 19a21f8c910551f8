package types

import (
	"encoding/json"
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestIntArithmetic(t *testing.T) {
	a := NewInt(100)
	b := NewInt(30)

	require.True(t, a.Add(b).Equal(NewInt(130)))
	require.True(t, a.Sub(b).Equal(NewInt(70)))
	require.True(t, a.Mul(b).Equal(NewInt(3000)))
	require.True(t, a.Quo(b).Equal(NewInt(3)))
	require.True(t, a.Neg().Equal(NewInt(-100)))

	require.True(t, a.AddRaw(1).Equal(NewInt(101)))
	require.True(t, a.SubRaw(1).Equal(NewInt(99)))
	require.True(t, a.MulRaw(2).Equal(NewInt(200)))
	require.True(t, a.QuoRaw(7).Equal(NewInt(14)))
}

func TestIntComparison(t *testing.T) {
	a := NewInt(5)
	b := NewInt(7)

	require.True(t, a.LT(b))
	require.True(t, a.LTE(b))
	require.True(t, a.LTE(a))
	require.True(t, b.GT(a))
	require.True(t, b.GTE(a))
	require.True(t, b.GTE(b))
	require.False(t, a.Equal(b))
	require.True(t, a.Equal(NewInt(5)))

	require.True(t, MinInt(a, b).Equal(a))
	require.True(t, MaxInt(a, b).Equal(b))
}

func TestIntSign(t *testing.T) {
	require.True(t, ZeroInt().IsZero())
	require.False(t, ZeroInt().IsPositive())
	require.False(t, ZeroInt().IsNegative())
	require.True(t, OneInt().IsPositive())
	require.True(t, NewInt(-1).IsNegative())
}

func TestIntNil(t *testing.T) {
	var i Int
	require.True(t, i.IsNil())
	require.Nil(t, i.BigInt())
	require.Equal(t, "<nil>", i.String())

	require.False(t, ZeroInt().IsNil())
	require.True(t, NewIntFromBigInt(nil).IsNil())
}

func TestIntFromString(t *testing.T) {
	i, ok := NewIntFromString("123456789012345678901234567890")
	require.True(t, ok)
	require.Equal(t, "123456789012345678901234567890", i.String())

	_, ok = NewIntFromString("12x")
	require.False(t, ok)
	_, ok = NewIntFromString("")
	require.False(t, ok)
}

func TestIntBigIntCopies(t *testing.T) {
	raw := big.NewInt(42)
	i := NewIntFromBigInt(raw)
	raw.SetInt64(99)
	require.True(t, i.Equal(NewInt(42)))

	out := i.BigInt()
	out.SetInt64(7)
	require.True(t, i.Equal(NewInt(42)))
}

func TestMulDiv(t *testing.T) {
	// 1000 * 3 / 7 truncates to 428
	require.True(t, MulDiv(NewInt(1000), NewInt(3), NewInt(7)).Equal(NewInt(428)))
	require.True(t, MulDiv(ZeroInt(), NewInt(3), NewInt(7)).IsZero())

	// no intermediate overflow at 128 bits
	big1, _ := NewIntFromString("340282366920938463463374607431768211456")
	out := MulDiv(big1, big1, big1)
	require.True(t, out.Equal(big1))

	require.Panics(t, func() { MulDiv(OneInt(), OneInt(), ZeroInt()) })
	require.Panics(t, func() { OneInt().Quo(ZeroInt()) })
}

func TestIntJSON(t *testing.T) {
	bz, err := json.Marshal(NewInt(-12345))
	require.NoError(t, err)
	require.Equal(t, `"-12345"`, string(bz))

	var out Int
	require.NoError(t, json.Unmarshal(bz, &out))
	require.True(t, out.Equal(NewInt(-12345)))

	require.Error(t, json.Unmarshal([]byte(`"abc"`), &out))
	require.Error(t, json.Unmarshal([]byte(`12`), &out))

	bz, err = json.Marshal(Int{})
	require.NoError(t, err)
	require.Equal(t, `"0"`, string(bz))
}

func TestIntAmino(t *testing.T) {
	s, err := NewInt(777).MarshalAmino()
	require.NoError(t, err)
	require.Equal(t, "777", s)

	var i Int
	require.NoError(t, i.UnmarshalAmino("777"))
	require.True(t, i.Equal(NewInt(777)))
	require.Error(t, i.UnmarshalAmino("not a number"))
}
