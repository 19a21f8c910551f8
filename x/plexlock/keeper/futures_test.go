package keeper

import (
	"testing"

	"github.com/stretchr/testify/require"

	sdk "github.com/plexfi/plexlock/types"
	"github.com/plexfi/plexlock/x/plexlock/types"
)

func TestExchangeFutures(t *testing.T) {
	env := newTestEnv(t)
	require.Nil(t, env.keeper.Deposit(env.ctx, testAlice, testAlice, sdk.NewInt(100000), false))
	require.Nil(t, env.keeper.InitiateRedemptions(env.ctx, testAlice, testAlice, types.FuturesVote,
		[]int{0}, []sdk.Int{sdk.NewInt(100000)}))

	epoch := env.keeper.CurrentEpoch(env.ctx)
	dur := types.DefaultEpochDuration
	future := epoch + 2*dur

	require.Nil(t, env.keeper.ExchangeFutures(env.ctx, testAlice, testAlice,
		future, sdk.NewInt(40000), types.FuturesVote))

	require.Equal(t, sdk.NewInt(60000), env.keeper.FuturesBalance(env.ctx, types.FuturesVote, future, testAlice))
	require.Equal(t, sdk.NewInt(40000), env.keeper.FuturesBalance(env.ctx, types.FuturesReward, future, testAlice))
	require.Equal(t, sdk.NewInt(60000), env.keeper.FuturesSupply(env.ctx, types.FuturesVote, future))
	require.Equal(t, sdk.NewInt(40000), env.keeper.FuturesSupply(env.ctx, types.FuturesReward, future))

	// swapping back restores the original position
	require.Nil(t, env.keeper.ExchangeFutures(env.ctx, testAlice, testBob,
		future, sdk.NewInt(40000), types.FuturesReward))
	require.Equal(t, sdk.NewInt(40000), env.keeper.FuturesBalance(env.ctx, types.FuturesVote, future, testBob))
	require.True(t, env.keeper.FuturesSupply(env.ctx, types.FuturesReward, future).IsZero())
}

func TestExchangeFuturesOnlyFutureEpochs(t *testing.T) {
	env := newTestEnv(t)
	require.Nil(t, env.keeper.Deposit(env.ctx, testAlice, testAlice, sdk.NewInt(100000), false))
	require.Nil(t, env.keeper.InitiateRedemptions(env.ctx, testAlice, testAlice, types.FuturesVote,
		[]int{0}, []sdk.Int{sdk.NewInt(100000)}))

	epoch := env.keeper.CurrentEpoch(env.ctx)

	// the running epoch's character is fixed
	err := env.keeper.ExchangeFutures(env.ctx, testAlice, testAlice,
		epoch, sdk.NewInt(1000), types.FuturesVote)
	requireErrCode(t, err, types.CodeEpochNotFuture)

	// so are elapsed ones
	err = env.keeper.ExchangeFutures(env.ctx, testAlice, testAlice,
		epoch-types.DefaultEpochDuration, sdk.NewInt(1000), types.FuturesVote)
	requireErrCode(t, err, types.CodeEpochNotFuture)
}

func TestExchangeFuturesInsufficientBalance(t *testing.T) {
	env := newTestEnv(t)
	epoch := env.keeper.CurrentEpoch(env.ctx) + types.DefaultEpochDuration

	err := env.keeper.ExchangeFutures(env.ctx, testAlice, testAlice,
		epoch, sdk.NewInt(1), types.FuturesVote)
	requireErrCode(t, err, sdk.CodeInsufficientFunds)
}
