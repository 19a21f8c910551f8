package types

import (
	sdk "github.com/plexfi/plexlock/types"
)

// RedemptionFeePercent computes the exit fee (in FeeDenominator parts) from
// the time remaining until the backing lock entry expires. Linear between
// feeMin at zero remaining and feeMax at maxRedemptionTime or beyond.
func (p Params) RedemptionFeePercent(remaining int64) uint64 {
	if remaining < 0 {
		remaining = 0
	}
	if remaining > p.MaxRedemptionTime {
		remaining = p.MaxRedemptionTime
	}
	spread := p.RedemptionFeeMax - p.RedemptionFeeMin
	discount := uint64(0)
	if p.MaxRedemptionTime > 0 {
		discount = spread * uint64(p.MaxRedemptionTime-remaining) / uint64(p.MaxRedemptionTime)
	}
	return p.RedemptionFeeMax - discount
}

// ApplyFee splits assets into (fee, postFee) at the given percentage.
func ApplyFee(assets sdk.Int, feePercent uint64) (fee, postFee sdk.Int) {
	fee = assets.Mul(sdk.NewInt(int64(feePercent))).Quo(sdk.NewInt(FeeDenominator))
	return fee, assets.Sub(fee)
}

// SplitReward divides a claimed reward between the protocol fee, snapshot
// holders and reward-futures holders. Futures supply joins the denominator
// so a futures note dilutes the snapshot exactly as a held balance would
// have.
func SplitReward(received sdk.Int, rewardFeePercent uint64, snapshotSupply, futuresSupply sdk.Int) (rewardFee, snapshotRewards, futuresRewards sdk.Int) {
	rewardFee = received.Mul(sdk.NewInt(int64(rewardFeePercent))).Quo(sdk.NewInt(FeeDenominator))
	distributable := received.Sub(rewardFee)

	total := snapshotSupply.Add(futuresSupply)
	if total.IsZero() {
		return rewardFee, distributable, sdk.ZeroInt()
	}
	if snapshotSupply.IsZero() {
		return rewardFee, sdk.ZeroInt(), distributable
	}
	snapshotRewards = sdk.MulDiv(distributable, snapshotSupply, total)
	futuresRewards = distributable.Sub(snapshotRewards)
	return rewardFee, snapshotRewards, futuresRewards
}
