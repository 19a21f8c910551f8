package keeper

import (
	"fmt"

	sdk "github.com/plexfi/plexlock/types"
	"github.com/plexfi/plexlock/x/plexlock/types"
)

func (k Keeper) FuturesBalance(ctx sdk.Context, kind types.FuturesKind, epoch int64, addr sdk.AccAddress) sdk.Int {
	return k.getInt(ctx, types.FuturesBalanceKey(kind, epoch, addr))
}

func (k Keeper) FuturesSupply(ctx sdk.Context, kind types.FuturesKind, epoch int64) sdk.Int {
	return k.getInt(ctx, types.FuturesSupplyKey(kind, epoch))
}

// mintFuturesRounds mints amount of futures per epoch across rounds
// consecutive epochs starting at startEpoch. The amount is the gross
// position size: forgone holding is compensated 1:1, undiminished by exit
// fees.
func (k Keeper) mintFuturesRounds(ctx sdk.Context, kind types.FuturesKind, startEpoch, rounds int64, amount sdk.Int, receiver sdk.AccAddress) {
	duration := k.GetParams(ctx).EpochDuration
	for i := int64(0); i < rounds; i++ {
		epoch := startEpoch + i*duration
		k.setInt(ctx, types.FuturesBalanceKey(kind, epoch, receiver),
			k.FuturesBalance(ctx, kind, epoch, receiver).Add(amount))
		k.setInt(ctx, types.FuturesSupplyKey(kind, epoch),
			k.FuturesSupply(ctx, kind, epoch).Add(amount))
	}

	ctx.EventManager().EmitEvent(sdk.NewEvent(
		types.EventTypeFuturesMinted,
		sdk.NewAttribute(types.AttributeKeyReceiver, receiver.String()),
		sdk.NewAttribute(types.AttributeKeyKind, kind.String()),
		sdk.NewAttribute(types.AttributeKeyEpoch, fmt.Sprintf("%d", startEpoch)),
		sdk.NewAttribute(types.AttributeKeyRounds, fmt.Sprintf("%d", rounds)),
		sdk.NewAttribute(types.AttributeKeyAssets, amount.String()),
	))
}

func (k Keeper) burnFutures(ctx sdk.Context, kind types.FuturesKind, epoch int64, addr sdk.AccAddress, amount sdk.Int) sdk.Error {
	balance := k.FuturesBalance(ctx, kind, epoch, addr)
	if balance.LT(amount) {
		return sdk.ErrInsufficientFunds(fmt.Sprintf(
			"burn %s %s futures for epoch %d exceeds balance %s", amount, kind, epoch, balance))
	}
	k.setInt(ctx, types.FuturesBalanceKey(kind, epoch, addr), balance.Sub(amount))
	k.setInt(ctx, types.FuturesSupplyKey(kind, epoch), k.FuturesSupply(ctx, kind, epoch).Sub(amount))
	return nil
}

// ExchangeFutures swaps futures notes of one kind for the other, 1:1, for a
// strictly future epoch. Once an epoch begins its reward character is fixed
// and the two kinds are no longer interchangeable.
func (k Keeper) ExchangeFutures(ctx sdk.Context, from, receiver sdk.AccAddress, epoch int64, amount sdk.Int, kind types.FuturesKind) sdk.Error {
	if err := k.enterCall(); err != nil {
		return err
	}
	defer k.exitCall()
	if err := k.whenNotPaused(ctx); err != nil {
		return err
	}
	ctx, commit := ctx.CacheContext()

	now := ctx.BlockTime().Unix()
	if epoch <= k.CurrentEpoch(ctx) {
		return types.ErrEpochNotFuture(epoch, now)
	}
	if err := k.burnFutures(ctx, kind, epoch, from, amount); err != nil {
		return err
	}
	other := types.FuturesReward
	if kind == types.FuturesReward {
		other = types.FuturesVote
	}
	k.setInt(ctx, types.FuturesBalanceKey(other, epoch, receiver),
		k.FuturesBalance(ctx, other, epoch, receiver).Add(amount))
	k.setInt(ctx, types.FuturesSupplyKey(other, epoch),
		k.FuturesSupply(ctx, other, epoch).Add(amount))

	ctx.EventManager().EmitEvent(sdk.NewEvent(
		types.EventTypeFuturesExchanged,
		sdk.NewAttribute(types.AttributeKeyFrom, from.String()),
		sdk.NewAttribute(types.AttributeKeyReceiver, receiver.String()),
		sdk.NewAttribute(types.AttributeKeyEpoch, fmt.Sprintf("%d", epoch)),
		sdk.NewAttribute(types.AttributeKeyKind, kind.String()),
		sdk.NewAttribute(types.AttributeKeyAssets, amount.String()),
	))
	commit()
	return nil
}
