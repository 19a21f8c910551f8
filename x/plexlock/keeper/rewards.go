package keeper

import (
	"fmt"

	sdk "github.com/plexfi/plexlock/types"
	"github.com/plexfi/plexlock/x/plexlock/types"
)

// ClaimExternalReward claims a proof-gated reward into the current epoch's
// ledger. The verifier decides validity; the engine only reconciles the
// paid amount. A token may enter an epoch's reward list once.
func (k Keeper) ClaimExternalReward(ctx sdk.Context, from sdk.AccAddress, token sdk.Symbol, index uint64, amount sdk.Int, proof [][]byte) sdk.Error {
	if err := k.enterCall(); err != nil {
		return err
	}
	defer k.exitCall()
	if err := k.whenNotPaused(ctx); err != nil {
		return err
	}
	ctx, commit := ctx.CacheContext()

	epoch := k.CurrentEpoch(ctx)
	record := k.GetEpochRecord(ctx, epoch)
	if record == nil || record.SnapshotID == 0 {
		return types.ErrMaintenanceRequired(epoch)
	}
	if _, exists := record.RewardIndex(token); exists {
		return types.ErrDuplicateRewardToken(token, epoch)
	}

	paid, err := k.ext.RewardClaimer.Claim(ctx, token, index, types.ModuleAddress, amount, proof)
	if err != nil {
		return types.ErrExternalFailure("claim external reward", err)
	}
	if !paid.IsPositive() {
		// zero payout is a valid outcome, nothing to record
		ctx.Logger().WithField("token", token).Debug("external reward claim paid zero")
		commit()
		return nil
	}

	if err := k.allocateReward(ctx, record, token, paid, false); err != nil {
		return err
	}
	k.setEpochRecord(ctx, record)
	commit()
	return nil
}

// HasClaimedSnapshotReward reports whether addr already claimed the given
// reward index of the epoch.
func (k Keeper) HasClaimedSnapshotReward(ctx sdk.Context, epoch int64, rewardIndex int, addr sdk.AccAddress) bool {
	return ctx.KVStore(k.storeKey).Has(types.RewardClaimedKey(epoch, rewardIndex, addr))
}

// ClaimSnapshotRewards pays the caller's snapshot-proportional share of the
// chosen reward indexes. Each (epoch, index, account) pays at most once.
func (k Keeper) ClaimSnapshotRewards(ctx sdk.Context, from, receiver sdk.AccAddress, epoch int64, rewardIndexes []int) sdk.Error {
	if err := k.enterCall(); err != nil {
		return err
	}
	defer k.exitCall()
	if err := k.whenNotPaused(ctx); err != nil {
		return err
	}
	ctx, commit := ctx.CacheContext()

	record := k.GetEpochRecord(ctx, epoch)
	if record == nil || record.SnapshotID == 0 {
		return types.ErrMaintenanceRequired(epoch)
	}

	balance := k.BalanceAtSnapshot(ctx, record.SnapshotID, from)
	if !balance.IsPositive() {
		return sdk.ErrInsufficientFunds(fmt.Sprintf(
			"no receipt balance at snapshot %d", record.SnapshotID))
	}
	supply := k.SupplyAtSnapshot(ctx, record.SnapshotID)

	for _, index := range rewardIndexes {
		if index >= len(record.RewardTokens) {
			return types.ErrRewardIndexOutOfRange(index, len(record.RewardTokens))
		}
		if k.HasClaimedSnapshotReward(ctx, epoch, index, from) {
			return types.ErrAlreadyClaimed(fmt.Sprintf(
				"reward %d of epoch %d already claimed by %s", index, epoch, from))
		}
	}

	store := ctx.KVStore(k.storeKey)
	for _, index := range rewardIndexes {
		store.Set(types.RewardClaimedKey(epoch, index, from), []byte{1})
		entitlement := sdk.MulDiv(record.SnapshotRewards[index], balance, supply)
		if !entitlement.IsPositive() {
			continue
		}
		token := record.RewardTokens[index]
		if err := k.bank.SendTokens(ctx, types.ModuleAddress, receiver, token, entitlement); err != nil {
			return err
		}

		ctx.EventManager().EmitEvent(sdk.NewEvent(
			types.EventTypeSnapshotRewards,
			sdk.NewAttribute(types.AttributeKeyFrom, from.String()),
			sdk.NewAttribute(types.AttributeKeyReceiver, receiver.String()),
			sdk.NewAttribute(types.AttributeKeyEpoch, fmt.Sprintf("%d", epoch)),
			sdk.NewAttribute(types.AttributeKeyToken, token.String()),
			sdk.NewAttribute(types.AttributeKeyAssets, entitlement.String()),
		))
	}
	commit()
	return nil
}

// ClaimFuturesRewards burns the caller's whole reward-futures balance for
// the current or any past epoch and pays the proportional share of every
// reward token in one call. Partial claims are achieved by transferring note
// balance away beforehand, never by claiming against a fraction of it.
func (k Keeper) ClaimFuturesRewards(ctx sdk.Context, from, receiver sdk.AccAddress, epoch int64) sdk.Error {
	if err := k.enterCall(); err != nil {
		return err
	}
	defer k.exitCall()
	if err := k.whenNotPaused(ctx); err != nil {
		return err
	}
	ctx, commit := ctx.CacheContext()

	if epoch > k.CurrentEpoch(ctx) {
		return types.ErrEpochNotStarted(epoch, ctx.BlockTime().Unix())
	}
	record := k.GetEpochRecord(ctx, epoch)
	if record == nil {
		return types.ErrUnknownEpoch(epoch)
	}

	balance := k.FuturesBalance(ctx, types.FuturesReward, epoch, from)
	if !balance.IsPositive() {
		return sdk.ErrInsufficientFunds(fmt.Sprintf(
			"no reward futures for epoch %d", epoch))
	}
	supply := k.FuturesSupply(ctx, types.FuturesReward, epoch)

	if err := k.burnFutures(ctx, types.FuturesReward, epoch, from, balance); err != nil {
		return err
	}

	// the paid share leaves the futures pool so later claimants split only
	// what remains against the reduced supply
	for i, token := range record.RewardTokens {
		entitlement := sdk.MulDiv(record.FuturesRewards[i], balance, supply)
		if !entitlement.IsPositive() {
			continue
		}
		record.FuturesRewards[i] = record.FuturesRewards[i].Sub(entitlement)
		if err := k.bank.SendTokens(ctx, types.ModuleAddress, receiver, token, entitlement); err != nil {
			return err
		}

		ctx.EventManager().EmitEvent(sdk.NewEvent(
			types.EventTypeFuturesRewards,
			sdk.NewAttribute(types.AttributeKeyFrom, from.String()),
			sdk.NewAttribute(types.AttributeKeyReceiver, receiver.String()),
			sdk.NewAttribute(types.AttributeKeyEpoch, fmt.Sprintf("%d", epoch)),
			sdk.NewAttribute(types.AttributeKeyToken, token.String()),
			sdk.NewAttribute(types.AttributeKeyAssets, entitlement.String()),
		))
	}
	k.setEpochRecord(ctx, record)
	commit()
	return nil
}
