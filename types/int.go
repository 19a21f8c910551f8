package types

import (
	"encoding/json"
	"fmt"
	"math/big"
)

// Int wraps big.Int for token amounts. The zero value is unusable; nil
// checks guard against it at the message boundary.
type Int struct {
	i *big.Int
}

func NewInt(n int64) Int {
	return Int{big.NewInt(n)}
}

// NewIntFromBigInt copies i; the result does not alias it.
func NewIntFromBigInt(i *big.Int) Int {
	if i == nil {
		return Int{}
	}
	return Int{new(big.Int).Set(i)}
}

func NewIntFromString(s string) (Int, bool) {
	i, ok := new(big.Int).SetString(s, 10)
	if !ok {
		return Int{}, false
	}
	return Int{i}, true
}

func ZeroInt() Int { return Int{big.NewInt(0)} }
func OneInt() Int  { return Int{big.NewInt(1)} }

func (i Int) BigInt() *big.Int {
	if i.IsNil() {
		return nil
	}
	return new(big.Int).Set(i.i)
}

func (i Int) IsNil() bool { return i.i == nil }

func (i Int) IsZero() bool     { return i.i.Sign() == 0 }
func (i Int) IsPositive() bool { return i.i.Sign() > 0 }
func (i Int) IsNegative() bool { return i.i.Sign() < 0 }

func (i Int) Int64() int64 {
	if !i.i.IsInt64() {
		panic("Int64() out of bounds")
	}
	return i.i.Int64()
}

func (i Int) Equal(i2 Int) bool { return i.i.Cmp(i2.i) == 0 }
func (i Int) GT(i2 Int) bool    { return i.i.Cmp(i2.i) > 0 }
func (i Int) GTE(i2 Int) bool   { return i.i.Cmp(i2.i) >= 0 }
func (i Int) LT(i2 Int) bool    { return i.i.Cmp(i2.i) < 0 }
func (i Int) LTE(i2 Int) bool   { return i.i.Cmp(i2.i) <= 0 }

func (i Int) Add(i2 Int) Int { return Int{new(big.Int).Add(i.i, i2.i)} }
func (i Int) Sub(i2 Int) Int { return Int{new(big.Int).Sub(i.i, i2.i)} }
func (i Int) Mul(i2 Int) Int { return Int{new(big.Int).Mul(i.i, i2.i)} }

func (i Int) AddRaw(n int64) Int { return i.Add(NewInt(n)) }
func (i Int) SubRaw(n int64) Int { return i.Sub(NewInt(n)) }
func (i Int) MulRaw(n int64) Int { return i.Mul(NewInt(n)) }

// Quo truncates towards zero.
func (i Int) Quo(i2 Int) Int {
	if i2.i.Sign() == 0 {
		panic("division by zero")
	}
	return Int{new(big.Int).Quo(i.i, i2.i)}
}

func (i Int) QuoRaw(n int64) Int { return i.Quo(NewInt(n)) }

func (i Int) Neg() Int { return Int{new(big.Int).Neg(i.i)} }

func MinInt(a, b Int) Int {
	if a.LT(b) {
		return a
	}
	return b
}

func MaxInt(a, b Int) Int {
	if a.GT(b) {
		return a
	}
	return b
}

// MulDiv computes a*b/c without intermediate overflow or precision loss.
// Pro-rata entitlements go through here so rounding is uniform.
func MulDiv(a, b, c Int) Int {
	if c.i.Sign() == 0 {
		panic("division by zero")
	}
	n := new(big.Int).Mul(a.i, b.i)
	return Int{n.Quo(n, c.i)}
}

func (i Int) String() string {
	if i.IsNil() {
		return "<nil>"
	}
	return i.i.String()
}

// MarshalAmino encodes as a decimal string.
func (i Int) MarshalAmino() (string, error) {
	if i.IsNil() {
		return "0", nil
	}
	return i.i.String(), nil
}

func (i *Int) UnmarshalAmino(s string) error {
	v, ok := new(big.Int).SetString(s, 10)
	if !ok {
		return fmt.Errorf("invalid integer: %q", s)
	}
	i.i = v
	return nil
}

func (i Int) MarshalJSON() ([]byte, error) {
	if i.IsNil() {
		return json.Marshal("0")
	}
	return json.Marshal(i.i.String())
}

func (i *Int) UnmarshalJSON(bz []byte) error {
	var s string
	if err := json.Unmarshal(bz, &s); err != nil {
		return err
	}
	return i.UnmarshalAmino(s)
}
