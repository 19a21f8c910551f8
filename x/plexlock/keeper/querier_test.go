package keeper

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/require"

	sdk "github.com/plexfi/plexlock/types"
	"github.com/plexfi/plexlock/x/plexlock/types"
)

func TestQuerierBasics(t *testing.T) {
	env := newTestEnv(t)
	q := NewQuerier(env.keeper)

	bz, err := q(env.ctx, []string{types.QueryParams})
	require.Nil(t, err)
	var params types.Params
	require.NoError(t, types.ModuleCdc.UnmarshalJSON(bz, &params))
	require.Equal(t, types.DefaultBaseSymbol, params.BaseSymbol)

	bz, err = q(env.ctx, []string{types.QueryCurrentEpoch})
	require.Nil(t, err)
	var epochResp types.QueryCurrentEpochResponse
	require.NoError(t, types.ModuleCdc.UnmarshalJSON(bz, &epochResp))
	require.Equal(t, env.keeper.CurrentEpoch(env.ctx), epochResp.Epoch)

	_, err = q(env.ctx, []string{"no-such-path"})
	require.NotNil(t, err)
	_, err = q(env.ctx, nil)
	require.NotNil(t, err)
}

func TestQuerierEpochAndBalances(t *testing.T) {
	env := newTestEnv(t)
	q := NewQuerier(env.keeper)
	require.Nil(t, env.keeper.Deposit(env.ctx, testAlice, testAlice, sdk.NewInt(100000), false))
	require.Nil(t, env.keeper.PerformEpochMaintenance(env.ctx))
	require.Nil(t, env.keeper.InitiateRedemptions(env.ctx, testAlice, testAlice, types.FuturesReward,
		[]int{0}, []sdk.Int{sdk.NewInt(10000)}))

	// unknown epoch
	_, err := q(env.ctx, []string{types.QueryEpoch, "12345"})
	requireErrCode(t, err, types.CodeUnknownEpoch)

	bz, err := q(env.ctx, []string{types.QueryOutstanding})
	require.Nil(t, err)
	var out types.QueryOutstandingResponse
	require.NoError(t, types.ModuleCdc.UnmarshalJSON(bz, &out))
	require.Equal(t, env.keeper.OutstandingRedemptions(env.ctx), out.Outstanding)

	bz, err = q(env.ctx, []string{types.QueryObligations})
	require.Nil(t, err)
	var obligations types.QueryObligationsResponse
	require.NoError(t, types.ModuleCdc.UnmarshalJSON(bz, &obligations))
	require.Len(t, obligations.Obligations, 1)

	// futures balance by kind, epoch and hex address
	epoch := env.keeper.CurrentEpoch(env.ctx)
	bz, err = q(env.ctx, []string{types.QueryFutures, "reward",
		strconv.FormatInt(epoch, 10), testAlice.String()})
	require.Nil(t, err)
	var balance types.QueryBalanceResponse
	require.NoError(t, types.ModuleCdc.UnmarshalJSON(bz, &balance))
	require.Equal(t, sdk.NewInt(10000), balance.Balance)

	_, err = q(env.ctx, []string{types.QueryFutures, "banana", strconv.FormatInt(epoch, 10), testAlice.String()})
	require.NotNil(t, err)
}
