package types

import (
	"testing"

	"github.com/stretchr/testify/require"

	sdk "github.com/plexfi/plexlock/types"
)

func TestCurrentEpoch(t *testing.T) {
	dur := DefaultEpochDuration

	require.Equal(t, int64(0), CurrentEpoch(0, dur))
	require.Equal(t, int64(0), CurrentEpoch(dur-1, dur))
	require.Equal(t, dur, CurrentEpoch(dur, dur))
	require.Equal(t, dur, CurrentEpoch(dur+1, dur))
	require.Equal(t, 41*dur, CurrentEpoch(41*dur+dur/2, dur))
}

func TestRedemptionRounds(t *testing.T) {
	dur := DefaultEpochDuration

	require.Equal(t, int64(0), RedemptionRounds(0, dur))
	require.Equal(t, int64(0), RedemptionRounds(dur/2, dur))

	// a remainder over half an epoch buys one more round
	require.Equal(t, int64(1), RedemptionRounds(dur/2+1, dur))
	require.Equal(t, int64(1), RedemptionRounds(dur, dur))
	require.Equal(t, int64(1), RedemptionRounds(dur+dur/2, dur))
	require.Equal(t, int64(2), RedemptionRounds(dur+dur/2+1, dur))

	// the full window spans the maximum number of rounds
	require.Equal(t, int64(8), RedemptionRounds(DefaultMaxRedemptionTime, dur))
}

func TestEpochRecordRewards(t *testing.T) {
	record := NewEpochRecord(42)

	_, ok := record.RewardIndex("crv")
	require.False(t, ok)

	record.AppendReward("crv", sdk.NewInt(80), sdk.NewInt(20))
	record.AppendReward("cvx", sdk.NewInt(10), sdk.NewInt(5))

	index, ok := record.RewardIndex("crv")
	require.True(t, ok)
	require.Equal(t, 0, index)
	index, ok = record.RewardIndex("cvx")
	require.True(t, ok)
	require.Equal(t, 1, index)

	record.AccumulateReward(0, sdk.NewInt(20), sdk.NewInt(5))
	require.Equal(t, sdk.NewInt(100), record.SnapshotRewards[0])
	require.Equal(t, sdk.NewInt(25), record.FuturesRewards[0])
	require.Equal(t, sdk.NewInt(10), record.SnapshotRewards[1])
}

func TestStakePoolSharePrice(t *testing.T) {
	pool := NewStakePool(100)

	// empty pool prices 1:1
	require.Equal(t, sdk.NewInt(50), pool.SharesForAssets(sdk.NewInt(50)))
	pool.TotalShares = sdk.NewInt(50)
	pool.TotalAssets = sdk.NewInt(100)

	// share price of 2: 10 assets buy 5 shares
	require.Equal(t, sdk.NewInt(5), pool.SharesForAssets(sdk.NewInt(10)))
	require.Equal(t, sdk.NewInt(10), pool.AssetsForShares(sdk.NewInt(5)))

	empty := NewStakePool(200)
	require.True(t, empty.AssetsForShares(sdk.NewInt(5)).IsZero())
}
