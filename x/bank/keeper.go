// Package bank is the process-internal token ledger. It tracks fungible
// balances and total supply per symbol; the engine module is its sole
// authorized minter and burner.
package bank

import (
	"fmt"

	"github.com/plexfi/plexlock/codec"
	sdk "github.com/plexfi/plexlock/types"
)

type Keeper struct {
	storeKey sdk.StoreKey
	cdc      *codec.Codec
}

func NewKeeper(cdc *codec.Codec, key sdk.StoreKey) Keeper {
	return Keeper{
		storeKey: key,
		cdc:      cdc,
	}
}

func (k Keeper) GetBalance(ctx sdk.Context, addr sdk.AccAddress, symbol sdk.Symbol) sdk.Int {
	return k.getInt(ctx, BalanceKey(symbol, addr))
}

func (k Keeper) GetSupply(ctx sdk.Context, symbol sdk.Symbol) sdk.Int {
	return k.getInt(ctx, SupplyKey(symbol))
}

// MintTokens credits addr and grows the symbol's supply.
func (k Keeper) MintTokens(ctx sdk.Context, addr sdk.AccAddress, symbol sdk.Symbol, amount sdk.Int) sdk.Error {
	if !amount.IsPositive() {
		return sdk.ErrInvalidAmount(fmt.Sprintf("mint amount must be positive, got %s", amount))
	}
	k.setInt(ctx, BalanceKey(symbol, addr), k.GetBalance(ctx, addr, symbol).Add(amount))
	k.setInt(ctx, SupplyKey(symbol), k.GetSupply(ctx, symbol).Add(amount))
	return nil
}

// BurnTokens debits addr and shrinks the symbol's supply.
func (k Keeper) BurnTokens(ctx sdk.Context, addr sdk.AccAddress, symbol sdk.Symbol, amount sdk.Int) sdk.Error {
	if !amount.IsPositive() {
		return sdk.ErrInvalidAmount(fmt.Sprintf("burn amount must be positive, got %s", amount))
	}
	balance := k.GetBalance(ctx, addr, symbol)
	if balance.LT(amount) {
		return sdk.ErrInsufficientFunds(fmt.Sprintf("burn %s %s exceeds balance %s", amount, symbol, balance))
	}
	k.setInt(ctx, BalanceKey(symbol, addr), balance.Sub(amount))
	k.setInt(ctx, SupplyKey(symbol), k.GetSupply(ctx, symbol).Sub(amount))
	return nil
}

func (k Keeper) SendTokens(ctx sdk.Context, from, to sdk.AccAddress, symbol sdk.Symbol, amount sdk.Int) sdk.Error {
	if !amount.IsPositive() {
		return sdk.ErrInvalidAmount(fmt.Sprintf("send amount must be positive, got %s", amount))
	}
	fromBalance := k.GetBalance(ctx, from, symbol)
	if fromBalance.LT(amount) {
		return sdk.ErrInsufficientFunds(fmt.Sprintf("send %s %s exceeds balance %s", amount, symbol, fromBalance))
	}
	k.setInt(ctx, BalanceKey(symbol, from), fromBalance.Sub(amount))
	k.setInt(ctx, BalanceKey(symbol, to), k.GetBalance(ctx, to, symbol).Add(amount))
	return nil
}

// IterateBalances visits every holder of symbol until cb returns true.
func (k Keeper) IterateBalances(ctx sdk.Context, symbol sdk.Symbol, cb func(addr sdk.AccAddress, balance sdk.Int) (stop bool)) {
	store := ctx.KVStore(k.storeKey)
	prefix := BalanceKeyPrefixWithSymbol(symbol)
	it := store.Iterator(prefix, sdk.PrefixEndBytes(prefix))
	defer it.Close()
	for ; it.Valid(); it.Next() {
		var balance sdk.Int
		k.cdc.MustUnmarshalBinaryBare(it.Value(), &balance)
		if balance.IsZero() {
			continue
		}
		if cb(AddrFromBalanceKey(symbol, it.Key()), balance) {
			break
		}
	}
}

func (k Keeper) getInt(ctx sdk.Context, key []byte) (ret sdk.Int) {
	store := ctx.KVStore(k.storeKey)
	bz := store.Get(key)
	if len(bz) == 0 {
		return sdk.ZeroInt()
	}
	k.cdc.MustUnmarshalBinaryBare(bz, &ret)
	return
}

func (k Keeper) setInt(ctx sdk.Context, key []byte, v sdk.Int) {
	store := ctx.KVStore(k.storeKey)
	if v.IsZero() {
		store.Delete(key)
		return
	}
	store.Set(key, k.cdc.MustMarshalBinaryBare(v))
}
