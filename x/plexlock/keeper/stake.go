package keeper

import (
	"fmt"

	sdk "github.com/plexfi/plexlock/types"
	"github.com/plexfi/plexlock/x/plexlock/types"
)

func (k Keeper) GetStakePool(ctx sdk.Context, expiry int64) *types.StakePool {
	bz := ctx.KVStore(k.storeKey).Get(types.StakePoolKey(expiry))
	if len(bz) == 0 {
		return nil
	}
	var pool types.StakePool
	k.cdc.MustUnmarshalBinaryBare(bz, &pool)
	return &pool
}

func (k Keeper) setStakePool(ctx sdk.Context, pool *types.StakePool) {
	ctx.KVStore(k.storeKey).Set(types.StakePoolKey(pool.Expiry), k.cdc.MustMarshalBinaryBare(pool))
}

func (k Keeper) StakeShareBalance(ctx sdk.Context, expiry int64, addr sdk.AccAddress) sdk.Int {
	return k.getInt(ctx, types.StakeShareKey(expiry, addr))
}

// Stake burns receipt tokens into the fixed-expiry sub-pool maturing
// rounds epochs from now. Reward-kind stakers also receive reward futures
// for every staked round, since staked assets forgo ordinary holding.
func (k Keeper) Stake(ctx sdk.Context, from, receiver sdk.AccAddress, rounds int64, kind types.FuturesKind, assets sdk.Int) sdk.Error {
	if err := k.enterCall(); err != nil {
		return err
	}
	defer k.exitCall()
	if err := k.whenNotPaused(ctx); err != nil {
		return err
	}
	ctx, commit := ctx.CacheContext()

	params := k.GetParams(ctx)
	if err := k.bank.BurnTokens(ctx, from, params.ReceiptSymbol, assets); err != nil {
		return err
	}

	currentEpoch := k.CurrentEpoch(ctx)
	expiry := currentEpoch + rounds*params.EpochDuration
	pool := k.GetStakePool(ctx, expiry)
	if pool == nil {
		pool = types.NewStakePool(expiry)
	}
	shares := pool.SharesForAssets(assets)
	pool.TotalShares = pool.TotalShares.Add(shares)
	pool.TotalAssets = pool.TotalAssets.Add(assets)
	k.setStakePool(ctx, pool)
	k.setInt(ctx, types.StakeShareKey(expiry, receiver),
		k.StakeShareBalance(ctx, expiry, receiver).Add(shares))

	if kind == types.FuturesReward {
		k.mintFuturesRounds(ctx, types.FuturesReward, currentEpoch, rounds, assets, receiver)
	}

	ctx.EventManager().EmitEvent(sdk.NewEvent(
		types.EventTypeStake,
		sdk.NewAttribute(types.AttributeKeyFrom, from.String()),
		sdk.NewAttribute(types.AttributeKeyReceiver, receiver.String()),
		sdk.NewAttribute(types.AttributeKeyExpiry, fmt.Sprintf("%d", expiry)),
		sdk.NewAttribute(types.AttributeKeyAssets, assets.String()),
		sdk.NewAttribute(types.AttributeKeyShares, shares.String()),
	))
	commit()
	return nil
}

// Unstake burns matured stake shares and mints receipt tokens back at the
// sub-pool's share price.
func (k Keeper) Unstake(ctx sdk.Context, from, receiver sdk.AccAddress, expiry int64, shares sdk.Int) sdk.Error {
	if err := k.enterCall(); err != nil {
		return err
	}
	defer k.exitCall()
	if err := k.whenNotPaused(ctx); err != nil {
		return err
	}
	ctx, commit := ctx.CacheContext()

	now := ctx.BlockTime().Unix()
	if now < expiry {
		return types.ErrBeforeStakingExpiry(expiry, now)
	}
	pool := k.GetStakePool(ctx, expiry)
	if pool == nil {
		return sdk.ErrInsufficientFunds(fmt.Sprintf("no stake pool at expiry %d", expiry))
	}
	balance := k.StakeShareBalance(ctx, expiry, from)
	if balance.LT(shares) {
		return sdk.ErrInsufficientFunds(fmt.Sprintf(
			"unstake %s exceeds share balance %s at expiry %d", shares, balance, expiry))
	}

	assets := pool.AssetsForShares(shares)
	pool.TotalShares = pool.TotalShares.Sub(shares)
	pool.TotalAssets = pool.TotalAssets.Sub(assets)
	k.setStakePool(ctx, pool)
	k.setInt(ctx, types.StakeShareKey(expiry, from), balance.Sub(shares))

	params := k.GetParams(ctx)
	if err := k.bank.MintTokens(ctx, receiver, params.ReceiptSymbol, assets); err != nil {
		return err
	}

	ctx.EventManager().EmitEvent(sdk.NewEvent(
		types.EventTypeUnstake,
		sdk.NewAttribute(types.AttributeKeyFrom, from.String()),
		sdk.NewAttribute(types.AttributeKeyReceiver, receiver.String()),
		sdk.NewAttribute(types.AttributeKeyExpiry, fmt.Sprintf("%d", expiry)),
		sdk.NewAttribute(types.AttributeKeyAssets, assets.String()),
		sdk.NewAttribute(types.AttributeKeyShares, shares.String()),
	))
	commit()
	return nil
}
