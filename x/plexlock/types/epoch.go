package types

import (
	"fmt"

	sdk "github.com/plexfi/plexlock/types"
)

// CurrentEpoch maps a unix timestamp to its epoch boundary by floor
// division.
func CurrentEpoch(now int64, epochDuration int64) int64 {
	return (now / epochDuration) * epochDuration
}

// RedemptionRounds is the number of consecutive epochs a redemption spans.
// The documented rounding rule: floor of remaining/epoch, plus one extra
// round when the remainder exceeds half an epoch.
func RedemptionRounds(remaining, epochDuration int64) int64 {
	rounds := remaining / epochDuration
	if remaining%epochDuration > epochDuration/2 {
		rounds++
	}
	return rounds
}

// EpochRecord is the per-epoch reward ledger entry. RewardTokens is
// append-only within the epoch and index-aligned with both reward arrays.
type EpochRecord struct {
	Epoch           int64        `json:"epoch"`
	SnapshotID      uint64       `json:"snapshot_id"`
	RewardTokens    []sdk.Symbol `json:"reward_tokens"`
	SnapshotRewards []sdk.Int    `json:"snapshot_rewards"`
	FuturesRewards  []sdk.Int    `json:"futures_rewards"`
}

func NewEpochRecord(epoch int64) *EpochRecord {
	return &EpochRecord{Epoch: epoch}
}

// RewardIndex returns the position of token in the epoch's reward list.
func (e *EpochRecord) RewardIndex(token sdk.Symbol) (int, bool) {
	for i, t := range e.RewardTokens {
		if t == token {
			return i, true
		}
	}
	return 0, false
}

// AppendReward records a newly claimed reward token with its snapshot and
// futures allocations. The caller must have rejected duplicates already.
func (e *EpochRecord) AppendReward(token sdk.Symbol, snapshotAmount, futuresAmount sdk.Int) {
	e.RewardTokens = append(e.RewardTokens, token)
	e.SnapshotRewards = append(e.SnapshotRewards, snapshotAmount)
	e.FuturesRewards = append(e.FuturesRewards, futuresAmount)
}

// AccumulateReward adds further claim proceeds to an existing reward entry.
func (e *EpochRecord) AccumulateReward(index int, snapshotAmount, futuresAmount sdk.Int) {
	e.SnapshotRewards[index] = e.SnapshotRewards[index].Add(snapshotAmount)
	e.FuturesRewards[index] = e.FuturesRewards[index].Add(futuresAmount)
}

func (e *EpochRecord) String() string {
	return fmt.Sprintf(`EpochRecord
  Epoch:       %d
  Snapshot ID: %d
  Rewards:     %v`, e.Epoch, e.SnapshotID, e.RewardTokens)
}

// StakePool is one fixed-expiry staking sub-pool. Each expiry is isolated so
// entrants of different maturities never share a share price.
type StakePool struct {
	Expiry      int64   `json:"expiry"`
	TotalShares sdk.Int `json:"total_shares"`
	TotalAssets sdk.Int `json:"total_assets"`
}

func NewStakePool(expiry int64) *StakePool {
	return &StakePool{
		Expiry:      expiry,
		TotalShares: sdk.ZeroInt(),
		TotalAssets: sdk.ZeroInt(),
	}
}

// SharesForAssets converts deposited assets to shares at the pool's current
// share price; an empty pool prices shares 1:1.
func (p *StakePool) SharesForAssets(assets sdk.Int) sdk.Int {
	if p.TotalShares.IsZero() || p.TotalAssets.IsZero() {
		return assets
	}
	return sdk.MulDiv(assets, p.TotalShares, p.TotalAssets)
}

// AssetsForShares converts shares back to underlying assets.
func (p *StakePool) AssetsForShares(shares sdk.Int) sdk.Int {
	if p.TotalShares.IsZero() {
		return sdk.ZeroInt()
	}
	return sdk.MulDiv(shares, p.TotalAssets, p.TotalShares)
}
