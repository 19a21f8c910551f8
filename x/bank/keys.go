package bank

import (
	sdk "github.com/plexfi/plexlock/types"
)

const (
	// ModuleName is the name of this module
	ModuleName = "bank"

	// StoreKey is the prefix under which we store this module's data
	StoreKey = ModuleName
)

var (
	BalanceKeyPrefix = []byte{0x01}
	SupplyKeyPrefix  = []byte{0x02}
)

func BalanceKeyPrefixWithSymbol(symbol sdk.Symbol) []byte {
	return append(append(BalanceKeyPrefix, symbol...), ':')
}

func BalanceKey(symbol sdk.Symbol, addr sdk.AccAddress) []byte {
	return append(BalanceKeyPrefixWithSymbol(symbol), addr...)
}

func AddrFromBalanceKey(symbol sdk.Symbol, key []byte) sdk.AccAddress {
	prefixLen := len(BalanceKeyPrefix) + len(symbol) + 1
	return sdk.AccAddressFromBytes(key[prefixLen:])
}

func SupplyKey(symbol sdk.Symbol) []byte {
	return append(SupplyKeyPrefix, symbol...)
}
