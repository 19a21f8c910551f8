package types

import (
	"bytes"
	"encoding/json"
	"strings"

	ethcmn "github.com/ethereum/go-ethereum/common"
)

// AccAddress is a 20-byte account identifier, hex-encoded with an EIP-55
// checksum when rendered as a string.
type AccAddress []byte

func AccAddressFromHex(s string) (AccAddress, error) {
	if !ethcmn.IsHexAddress(s) {
		return nil, ErrInvalidAddress("invalid hex address: " + s)
	}
	addr := ethcmn.HexToAddress(s)
	return AccAddress(addr.Bytes()), nil
}

// AccAddressFromBytes copies bz; the returned address does not alias it.
func AccAddressFromBytes(bz []byte) AccAddress {
	out := make(AccAddress, len(bz))
	copy(out, bz)
	return out
}

func (a AccAddress) Empty() bool {
	if len(a) == 0 {
		return true
	}
	return bytes.Equal(a, make([]byte, len(a)))
}

func (a AccAddress) Equals(b AccAddress) bool {
	return bytes.Equal(a, b)
}

func (a AccAddress) Bytes() []byte { return a }

func (a AccAddress) EthAddress() ethcmn.Address {
	return ethcmn.BytesToAddress(a)
}

func (a AccAddress) String() string {
	if a.Empty() {
		return ""
	}
	return a.EthAddress().Hex()
}

func (a AccAddress) MarshalJSON() ([]byte, error) {
	return json.Marshal(a.String())
}

func (a *AccAddress) UnmarshalJSON(bz []byte) error {
	var s string
	if err := json.Unmarshal(bz, &s); err != nil {
		return err
	}
	if s == "" {
		*a = nil
		return nil
	}
	addr, err := AccAddressFromHex(s)
	if err != nil {
		return err
	}
	*a = addr
	return nil
}

// Symbol identifies a token tracked by the bank ledger.
type Symbol string

func (s Symbol) String() string { return string(s) }

// IsValidTokenName requires a short lowercase alphanumeric name starting
// with a letter.
func (s Symbol) IsValidTokenName() bool {
	if len(s) < 2 || len(s) > 16 {
		return false
	}
	for i, c := range s {
		switch {
		case c >= 'a' && c <= 'z':
		case c >= '0' && c <= '9':
			if i == 0 {
				return false
			}
		default:
			return false
		}
	}
	return true
}

func ToSymbol(s string) Symbol {
	return Symbol(strings.ToLower(strings.TrimSpace(s)))
}
