package keeper

import (
	"fmt"

	sdk "github.com/plexfi/plexlock/types"
	"github.com/plexfi/plexlock/x/plexlock/types"
)

// CurrentEpoch is the boundary of the epoch containing the block time.
func (k Keeper) CurrentEpoch(ctx sdk.Context) int64 {
	return types.CurrentEpoch(ctx.BlockTime().Unix(), k.GetParams(ctx).EpochDuration)
}

func (k Keeper) GetEpochRecord(ctx sdk.Context, epoch int64) *types.EpochRecord {
	bz := ctx.KVStore(k.storeKey).Get(types.EpochKey(epoch))
	if len(bz) == 0 {
		return nil
	}
	var record types.EpochRecord
	k.cdc.MustUnmarshalBinaryBare(bz, &record)
	return &record
}

func (k Keeper) setEpochRecord(ctx sdk.Context, record *types.EpochRecord) {
	ctx.KVStore(k.storeKey).Set(types.EpochKey(record.Epoch), k.cdc.MustMarshalBinaryBare(record))
}

func (k Keeper) getOrNewEpochRecord(ctx sdk.Context, epoch int64) *types.EpochRecord {
	if record := k.GetEpochRecord(ctx, epoch); record != nil {
		return record
	}
	return types.NewEpochRecord(epoch)
}

// PerformEpochMaintenance snapshots receipt balances for the current epoch
// (once) and pulls accrued gateway rewards into its ledger. Safe to call
// repeatedly within an epoch: later calls only accumulate newly accrued
// rewards.
func (k Keeper) PerformEpochMaintenance(ctx sdk.Context) sdk.Error {
	if err := k.enterCall(); err != nil {
		return err
	}
	defer k.exitCall()
	if err := k.whenNotPaused(ctx); err != nil {
		return err
	}
	ctx, commit := ctx.CacheContext()

	epoch := k.CurrentEpoch(ctx)
	record := k.getOrNewEpochRecord(ctx, epoch)
	if record.SnapshotID == 0 {
		record.SnapshotID = k.takeSnapshot(ctx)
	}

	accruals := k.ext.LockGateway.ClaimableRewards(ctx)
	if len(accruals) > 0 {
		if err := k.ext.LockGateway.ClaimRewards(ctx); err != nil {
			return types.ErrExternalFailure("claim gateway rewards", err)
		}
	}
	for _, accrual := range accruals {
		if !accrual.Amount.IsPositive() {
			// a zero claim is a valid, not erroneous, outcome
			continue
		}
		if err := k.allocateReward(ctx, record, accrual.Token, accrual.Amount, true); err != nil {
			return err
		}
	}
	k.setEpochRecord(ctx, record)

	ctx.Logger().WithField("epoch", epoch).WithField("snapshot_id", record.SnapshotID).
		Debug("epoch maintenance")
	ctx.EventManager().EmitEvent(sdk.NewEvent(
		types.EventTypeEpochMaintenance,
		sdk.NewAttribute(types.AttributeKeyEpoch, fmt.Sprintf("%d", epoch)),
		sdk.NewAttribute(types.AttributeKeySnapshotID, fmt.Sprintf("%d", record.SnapshotID)),
	))
	commit()
	return nil
}

// allocateReward splits a freshly received reward between the protocol fee,
// snapshot holders and reward-futures holders and records it on the epoch.
// accumulate selects whether an already-listed token gains proceeds or is
// rejected as a duplicate (the proof-claim path never accumulates).
func (k Keeper) allocateReward(ctx sdk.Context, record *types.EpochRecord, token sdk.Symbol, received sdk.Int, accumulate bool) sdk.Error {
	if record.SnapshotID == 0 {
		return types.ErrMaintenanceRequired(record.Epoch)
	}

	index, exists := record.RewardIndex(token)
	if exists && !accumulate {
		return types.ErrDuplicateRewardToken(token, record.Epoch)
	}

	params := k.GetParams(ctx)
	snapshotSupply := k.SupplyAtSnapshot(ctx, record.SnapshotID)
	futuresSupply := k.FuturesSupply(ctx, types.FuturesReward, record.Epoch)

	rewardFee, snapshotRewards, futuresRewards := types.SplitReward(
		received, params.RewardFeePercent, snapshotSupply, futuresSupply)

	if rewardFee.IsPositive() {
		if err := k.ext.FeeSplitter.Distribute(ctx, types.ModuleAddress, token, rewardFee); err != nil {
			return types.ErrExternalFailure("distribute reward fee", err)
		}
	}

	if exists {
		record.AccumulateReward(index, snapshotRewards, futuresRewards)
	} else {
		record.AppendReward(token, snapshotRewards, futuresRewards)
	}

	ctx.EventManager().EmitEvent(sdk.NewEvent(
		types.EventTypeRewardClaimed,
		sdk.NewAttribute(types.AttributeKeyEpoch, fmt.Sprintf("%d", record.Epoch)),
		sdk.NewAttribute(types.AttributeKeyToken, token.String()),
		sdk.NewAttribute(types.AttributeKeyAssets, received.String()),
		sdk.NewAttribute(types.AttributeKeyFee, rewardFee.String()),
	))
	return nil
}

//----------------------------------------
// snapshots

// takeSnapshot captures every receipt-token balance and the total supply
// under the next snapshot id.
func (k Keeper) takeSnapshot(ctx sdk.Context) uint64 {
	id := k.getUint64(ctx, types.SnapshotCounterKey) + 1
	k.setUint64(ctx, types.SnapshotCounterKey, id)

	receipt := k.GetParams(ctx).ReceiptSymbol
	k.bank.IterateBalances(ctx, receipt, func(addr sdk.AccAddress, balance sdk.Int) bool {
		k.setInt(ctx, types.SnapshotBalanceKey(id, addr), balance)
		return false
	})
	k.setInt(ctx, types.SnapshotSupplyKey(id), k.bank.GetSupply(ctx, receipt))
	return id
}

func (k Keeper) CurrentSnapshotID(ctx sdk.Context) uint64 {
	return k.getUint64(ctx, types.SnapshotCounterKey)
}

func (k Keeper) BalanceAtSnapshot(ctx sdk.Context, snapshotID uint64, addr sdk.AccAddress) sdk.Int {
	return k.getInt(ctx, types.SnapshotBalanceKey(snapshotID, addr))
}

func (k Keeper) SupplyAtSnapshot(ctx sdk.Context, snapshotID uint64) sdk.Int {
	return k.getInt(ctx, types.SnapshotSupplyKey(snapshotID))
}
