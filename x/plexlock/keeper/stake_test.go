package keeper

import (
	"testing"

	"github.com/stretchr/testify/require"

	sdk "github.com/plexfi/plexlock/types"
	"github.com/plexfi/plexlock/x/plexlock/types"
)

func TestStakeAndUnstake(t *testing.T) {
	env := newTestEnv(t)
	require.Nil(t, env.keeper.Deposit(env.ctx, testAlice, testAlice, sdk.NewInt(10000), false))

	epoch := env.keeper.CurrentEpoch(env.ctx)
	dur := types.DefaultEpochDuration
	require.Nil(t, env.keeper.Stake(env.ctx, testAlice, testAlice, 2, types.FuturesVote, sdk.NewInt(4000)))

	// receipt burned into the sub-pool, shares minted 1:1 on a fresh pool
	expiry := epoch + 2*dur
	require.Equal(t, sdk.NewInt(6000), env.bank.GetBalance(env.ctx, testAlice, testReceipt))
	pool := env.keeper.GetStakePool(env.ctx, expiry)
	require.NotNil(t, pool)
	require.Equal(t, sdk.NewInt(4000), pool.TotalShares)
	require.Equal(t, sdk.NewInt(4000), pool.TotalAssets)
	require.Equal(t, sdk.NewInt(4000), env.keeper.StakeShareBalance(env.ctx, expiry, testAlice))

	// vote-kind staking mints no reward futures
	require.True(t, env.keeper.FuturesSupply(env.ctx, types.FuturesReward, epoch).IsZero())

	// not matured yet
	err := env.keeper.Unstake(env.ctx, testAlice, testAlice, expiry, sdk.NewInt(4000))
	requireErrCode(t, err, types.CodeBeforeStakingExpiry)

	env.advanceEpochs(2)
	require.Nil(t, env.keeper.Unstake(env.ctx, testAlice, testAlice, expiry, sdk.NewInt(4000)))
	require.Equal(t, sdk.NewInt(10000), env.bank.GetBalance(env.ctx, testAlice, testReceipt))
	require.True(t, env.keeper.StakeShareBalance(env.ctx, expiry, testAlice).IsZero())
}

func TestStakeRewardKindMintsFutures(t *testing.T) {
	env := newTestEnv(t)
	require.Nil(t, env.keeper.Deposit(env.ctx, testAlice, testAlice, sdk.NewInt(10000), false))

	epoch := env.keeper.CurrentEpoch(env.ctx)
	dur := types.DefaultEpochDuration
	require.Nil(t, env.keeper.Stake(env.ctx, testAlice, testAlice, 3, types.FuturesReward, sdk.NewInt(5000)))

	for i := int64(0); i < 3; i++ {
		require.Equal(t, sdk.NewInt(5000),
			env.keeper.FuturesBalance(env.ctx, types.FuturesReward, epoch+i*dur, testAlice))
	}
	require.True(t, env.keeper.FuturesBalance(env.ctx, types.FuturesReward, epoch+3*dur, testAlice).IsZero())
}

func TestUnstakeGuards(t *testing.T) {
	env := newTestEnv(t)
	require.Nil(t, env.keeper.Deposit(env.ctx, testAlice, testAlice, sdk.NewInt(10000), false))

	epoch := env.keeper.CurrentEpoch(env.ctx)
	expiry := epoch + 1*types.DefaultEpochDuration
	require.Nil(t, env.keeper.Stake(env.ctx, testAlice, testAlice, 1, types.FuturesVote, sdk.NewInt(1000)))
	env.advanceEpochs(1)

	// no pool at a different expiry
	err := env.keeper.Unstake(env.ctx, testAlice, testAlice, expiry-types.DefaultEpochDuration, sdk.NewInt(1000))
	requireErrCode(t, err, sdk.CodeInsufficientFunds)

	// more shares than held
	err = env.keeper.Unstake(env.ctx, testAlice, testAlice, expiry, sdk.NewInt(1001))
	requireErrCode(t, err, sdk.CodeInsufficientFunds)

	// bob holds nothing in this pool
	err = env.keeper.Unstake(env.ctx, testBob, testBob, expiry, sdk.NewInt(1))
	requireErrCode(t, err, sdk.CodeInsufficientFunds)
}

func TestStakeInsufficientReceipt(t *testing.T) {
	env := newTestEnv(t)
	err := env.keeper.Stake(env.ctx, testAlice, testAlice, 1, types.FuturesVote, sdk.NewInt(1))
	requireErrCode(t, err, sdk.CodeInsufficientFunds)
}

func TestStakePoolsIsolatedByExpiry(t *testing.T) {
	env := newTestEnv(t)
	require.Nil(t, env.keeper.Deposit(env.ctx, testAlice, testAlice, sdk.NewInt(10000), false))
	require.Nil(t, env.keeper.Deposit(env.ctx, testBob, testBob, sdk.NewInt(10000), false))

	require.Nil(t, env.keeper.Stake(env.ctx, testAlice, testAlice, 1, types.FuturesVote, sdk.NewInt(1000)))
	require.Nil(t, env.keeper.Stake(env.ctx, testBob, testBob, 2, types.FuturesVote, sdk.NewInt(2000)))

	epoch := env.keeper.CurrentEpoch(env.ctx)
	dur := types.DefaultEpochDuration
	require.Equal(t, sdk.NewInt(1000), env.keeper.GetStakePool(env.ctx, epoch+dur).TotalAssets)
	require.Equal(t, sdk.NewInt(2000), env.keeper.GetStakePool(env.ctx, epoch+2*dur).TotalAssets)
}
