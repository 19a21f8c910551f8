package keeper

import (
	"fmt"

	sdk "github.com/plexfi/plexlock/types"
	"github.com/plexfi/plexlock/x/plexlock/types"
)

func (k Keeper) OutstandingRedemptions(ctx sdk.Context) sdk.Int {
	return k.getInt(ctx, types.OutstandingRedemptionsKey)
}

func (k Keeper) RedemptionObligation(ctx sdk.Context, unlockTime int64) sdk.Int {
	return k.getInt(ctx, types.RedemptionObligationKey(unlockTime))
}

func (k Keeper) RedemptionNoteBalance(ctx sdk.Context, unlockTime int64, addr sdk.AccAddress) sdk.Int {
	return k.getInt(ctx, types.RedemptionNoteKey(unlockTime, addr))
}

func (k Keeper) RedemptionNoteSupply(ctx sdk.Context, unlockTime int64) sdk.Int {
	return k.getInt(ctx, types.RedemptionNoteSupplyKey(unlockTime))
}

// IterateRedemptionObligations visits every non-empty unlock-time bucket in
// ascending order until cb returns true.
func (k Keeper) IterateRedemptionObligations(ctx sdk.Context, cb func(unlockTime int64, obligation sdk.Int) (stop bool)) {
	store := ctx.KVStore(k.storeKey)
	prefix := types.RedemptionObligationKeyPrefix
	it := store.Iterator(prefix, sdk.PrefixEndBytes(prefix))
	defer it.Close()
	for ; it.Valid(); it.Next() {
		var obligation sdk.Int
		k.cdc.MustUnmarshalBinaryBare(it.Value(), &obligation)
		if cb(types.UnlockTimeFromObligationKey(it.Key()), obligation) {
			break
		}
	}
}

// InitiateRedemptions burns receipt tokens against chosen lock entries and
// mints redemption notes for the post-fee amounts. Each entry is checked
// against its own unlock-time bucket: buckets are independently
// collateralized, so the check can never be done in aggregate.
func (k Keeper) InitiateRedemptions(ctx sdk.Context, from, receiver sdk.AccAddress, kind types.FuturesKind, lockIndexes []int, assets []sdk.Int) sdk.Error {
	if err := k.enterCall(); err != nil {
		return err
	}
	defer k.exitCall()
	if err := k.whenNotPaused(ctx); err != nil {
		return err
	}
	ctx, commit := ctx.CacheContext()

	params := k.GetParams(ctx)
	now := ctx.BlockTime().Unix()
	currentEpoch := types.CurrentEpoch(now, params.EpochDuration)
	_, _, _, entries := k.ext.LockGateway.LockedBalances(ctx)

	// validate the whole batch before any mutation
	type pending struct {
		unlockTime int64
		amount     sdk.Int
		fee        sdk.Int
		postFee    sdk.Int
		rounds     int64
	}
	plan := make([]pending, 0, len(lockIndexes))
	grossByBucket := make(map[int64]sdk.Int)
	totalBurn := sdk.ZeroInt()
	totalFee := sdk.ZeroInt()
	for i, lockIndex := range lockIndexes {
		amount := assets[i]
		if lockIndex >= len(entries) {
			return types.ErrLockIndexOutOfRange(lockIndex, len(entries))
		}
		entry := entries[lockIndex]

		remaining := entry.UnlockTime - now
		if remaining < 0 {
			remaining = 0
		}
		feePercent := params.RedemptionFeePercent(remaining)
		fee, postFee := types.ApplyFee(amount, feePercent)

		bucketGross, ok := grossByBucket[entry.UnlockTime]
		if !ok {
			bucketGross = sdk.ZeroInt()
		}
		bucketGross = bucketGross.Add(amount)
		grossByBucket[entry.UnlockTime] = bucketGross
		if k.RedemptionObligation(ctx, entry.UnlockTime).Add(bucketGross).GT(entry.Amount) {
			return types.ErrInsufficientAllowance(fmt.Sprintf(
				"bucket %d: obligation %s + %s exceeds locked %s",
				entry.UnlockTime, k.RedemptionObligation(ctx, entry.UnlockTime), bucketGross, entry.Amount))
		}

		plan = append(plan, pending{
			unlockTime: entry.UnlockTime,
			amount:     amount,
			fee:        fee,
			postFee:    postFee,
			rounds:     types.RedemptionRounds(remaining, params.EpochDuration),
		})
		totalBurn = totalBurn.Add(amount)
		totalFee = totalFee.Add(fee)
	}
	if k.bank.GetBalance(ctx, from, params.ReceiptSymbol).LT(totalBurn) {
		return sdk.ErrInsufficientFunds(fmt.Sprintf(
			"redemption of %s exceeds receipt balance", totalBurn))
	}

	for _, p := range plan {
		k.setInt(ctx, types.RedemptionObligationKey(p.unlockTime),
			k.RedemptionObligation(ctx, p.unlockTime).Add(p.postFee))
		k.setInt(ctx, types.OutstandingRedemptionsKey, k.OutstandingRedemptions(ctx).Add(p.postFee))
		k.setInt(ctx, types.RedemptionNoteKey(p.unlockTime, receiver),
			k.RedemptionNoteBalance(ctx, p.unlockTime, receiver).Add(p.postFee))
		k.setInt(ctx, types.RedemptionNoteSupplyKey(p.unlockTime),
			k.RedemptionNoteSupply(ctx, p.unlockTime).Add(p.postFee))

		// futures are minted on the gross amount so the forgone holding
		// period is compensated undiminished by the exit fee
		if p.rounds > 0 {
			k.mintFuturesRounds(ctx, kind, currentEpoch, p.rounds, p.amount, receiver)
		}

		ctx.EventManager().EmitEvent(sdk.NewEvent(
			types.EventTypeInitiateRedemption,
			sdk.NewAttribute(types.AttributeKeyFrom, from.String()),
			sdk.NewAttribute(types.AttributeKeyReceiver, receiver.String()),
			sdk.NewAttribute(types.AttributeKeyUnlockTime, fmt.Sprintf("%d", p.unlockTime)),
			sdk.NewAttribute(types.AttributeKeyAssets, p.amount.String()),
			sdk.NewAttribute(types.AttributeKeyFee, p.fee.String()),
			sdk.NewAttribute(types.AttributeKeyPostFee, p.postFee.String()),
		))
	}

	// one aggregate burn for the whole batch
	if err := k.bank.BurnTokens(ctx, from, params.ReceiptSymbol, totalBurn); err != nil {
		return err
	}
	if totalFee.IsPositive() {
		if err := k.bank.MintTokens(ctx, types.ModuleAddress, params.ReceiptSymbol, totalFee); err != nil {
			return err
		}
		if err := k.ext.FeeSplitter.Distribute(ctx, types.ModuleAddress, params.ReceiptSymbol, totalFee); err != nil {
			return types.ErrExternalFailure("distribute redemption fee", err)
		}
	}
	commit()
	return nil
}

// Redeem pays out matured redemption notes. The relock step runs first so
// freed base assets in excess of outstanding obligations go back into the
// gateway while exactly enough stays on hand for the payouts.
func (k Keeper) Redeem(ctx sdk.Context, from, receiver sdk.AccAddress, unlockTimes []int64, assets []sdk.Int) sdk.Error {
	if err := k.enterCall(); err != nil {
		return err
	}
	defer k.exitCall()
	if err := k.whenNotPaused(ctx); err != nil {
		return err
	}
	ctx, commit := ctx.CacheContext()

	now := ctx.BlockTime().Unix()
	requested := make(map[int64]sdk.Int)
	for i, unlockTime := range unlockTimes {
		if now < unlockTime {
			return types.ErrBeforeUnlock(unlockTime, now)
		}
		sum, ok := requested[unlockTime]
		if !ok {
			sum = sdk.ZeroInt()
		}
		sum = sum.Add(assets[i])
		requested[unlockTime] = sum
		if balance := k.RedemptionNoteBalance(ctx, unlockTime, from); balance.LT(sum) {
			return sdk.ErrInsufficientFunds(fmt.Sprintf(
				"redeem %s exceeds note balance %s at %d", sum, balance, unlockTime))
		}
	}

	if err := k.relock(ctx); err != nil {
		return err
	}

	params := k.GetParams(ctx)
	total := sdk.ZeroInt()
	for i, unlockTime := range unlockTimes {
		amount := assets[i]
		k.setInt(ctx, types.RedemptionNoteKey(unlockTime, from),
			k.RedemptionNoteBalance(ctx, unlockTime, from).Sub(amount))
		k.setInt(ctx, types.RedemptionNoteSupplyKey(unlockTime),
			k.RedemptionNoteSupply(ctx, unlockTime).Sub(amount))
		k.setInt(ctx, types.RedemptionObligationKey(unlockTime),
			k.RedemptionObligation(ctx, unlockTime).Sub(amount))
		k.setInt(ctx, types.OutstandingRedemptionsKey, k.OutstandingRedemptions(ctx).Sub(amount))
		total = total.Add(amount)

		ctx.EventManager().EmitEvent(sdk.NewEvent(
			types.EventTypeRedeem,
			sdk.NewAttribute(types.AttributeKeyFrom, from.String()),
			sdk.NewAttribute(types.AttributeKeyReceiver, receiver.String()),
			sdk.NewAttribute(types.AttributeKeyUnlockTime, fmt.Sprintf("%d", unlockTime)),
			sdk.NewAttribute(types.AttributeKeyAssets, amount.String()),
		))
	}

	if err := k.bank.SendTokens(ctx, types.ModuleAddress, receiver, params.BaseSymbol, total); err != nil {
		return err
	}
	commit()
	return nil
}

// Relock is the public maintenance form of the relock step.
func (k Keeper) Relock(ctx sdk.Context) sdk.Error {
	if err := k.enterCall(); err != nil {
		return err
	}
	defer k.exitCall()
	if err := k.whenNotPaused(ctx); err != nil {
		return err
	}
	ctx, commit := ctx.CacheContext()
	if err := k.relock(ctx); err != nil {
		return err
	}
	commit()
	return nil
}

// relock processes expired gateway locks and locks the freed base asset
// back, minus everything still owed to redemption-note holders. Funds owed
// to pending redemptions are never relocked.
func (k Keeper) relock(ctx sdk.Context) sdk.Error {
	if _, err := k.ext.LockGateway.ProcessExpiredLocks(ctx); err != nil {
		return types.ErrExternalFailure("process expired locks", err)
	}

	params := k.GetParams(ctx)
	available := k.bank.GetBalance(ctx, types.ModuleAddress, params.BaseSymbol)
	outstanding := k.OutstandingRedemptions(ctx)
	relockAmount := available.Sub(outstanding)
	if !relockAmount.IsPositive() {
		return nil
	}
	if err := k.ext.LockGateway.Lock(ctx, relockAmount); err != nil {
		return types.ErrExternalFailure("relock", err)
	}

	ctx.EventManager().EmitEvent(sdk.NewEvent(
		types.EventTypeRelock,
		sdk.NewAttribute(types.AttributeKeyAssets, relockAmount.String()),
	))
	return nil
}
