package keeper

import (
	"testing"

	"github.com/stretchr/testify/require"

	sdk "github.com/plexfi/plexlock/types"
	"github.com/plexfi/plexlock/x/plexlock/types"
)

func TestParamsRoundTrip(t *testing.T) {
	env := newTestEnv(t)

	params := env.keeper.GetParams(env.ctx)
	require.Equal(t, types.DefaultBaseSymbol, params.BaseSymbol)
	require.Equal(t, testAuthority, params.Authority)

	params.EpochDuration = 3600
	env.keeper.SetParams(env.ctx, params)
	require.Equal(t, int64(3600), env.keeper.GetParams(env.ctx).EpochDuration)
}

func TestSetFee(t *testing.T) {
	env := newTestEnv(t)

	err := env.keeper.SetFee(env.ctx, testAlice, types.FeeReward, 1000)
	requireErrCode(t, err, sdk.CodeUnauthorized)

	require.Nil(t, env.keeper.SetFee(env.ctx, testAuthority, types.FeeReward, 1000))
	require.Equal(t, uint64(1000), env.keeper.GetParams(env.ctx).RewardFeePercent)

	// min and max must stay ordered
	err = env.keeper.SetFee(env.ctx, testAuthority, types.FeeRedemptionMax, 20000)
	requireErrCode(t, err, types.CodeInvalidFee)
	err = env.keeper.SetFee(env.ctx, testAuthority, types.FeeRedemptionMin, 60000)
	requireErrCode(t, err, types.CodeInvalidFee)

	require.Nil(t, env.keeper.SetFee(env.ctx, testAuthority, types.FeeRedemptionMax, 80000))
	require.Nil(t, env.keeper.SetFee(env.ctx, testAuthority, types.FeeRedemptionMin, 40000))
	params := env.keeper.GetParams(env.ctx)
	require.Equal(t, uint64(80000), params.RedemptionFeeMax)
	require.Equal(t, uint64(40000), params.RedemptionFeeMin)

	err = env.keeper.SetFee(env.ctx, testAuthority, types.FeeKind(9), 1000)
	requireErrCode(t, err, types.CodeInvalidFeeKind)
}

func TestSetExternalContract(t *testing.T) {
	env := newTestEnv(t)
	addr := sdk.AccAddressFromBytes([]byte("new-gateway---------"))

	err := env.keeper.SetExternalContract(env.ctx, testAlice, types.ContractLockGateway, addr)
	requireErrCode(t, err, sdk.CodeUnauthorized)

	require.Nil(t, env.keeper.SetExternalContract(env.ctx, testAuthority, types.ContractLockGateway, addr))
	require.Equal(t, addr, env.keeper.GetExternalContract(env.ctx, types.ContractLockGateway))

	// unset kinds read back empty
	require.True(t, env.keeper.GetExternalContract(env.ctx, types.ContractVoteRegistry).Empty())
}

func TestSetCollaboratorRewires(t *testing.T) {
	env := newTestEnv(t)

	replacement := &mockVoteRegistry{}
	env.keeper.SetCollaborator(types.ContractVoteRegistry, replacement)

	delegate := sdk.AccAddressFromBytes([]byte("vote-delegate-------"))
	require.Nil(t, env.keeper.SetDelegate(env.ctx, testAuthority, delegate))
	require.Equal(t, delegate, replacement.delegate)
	require.True(t, env.registry.delegate.Empty())
}

func TestPauseState(t *testing.T) {
	env := newTestEnv(t)

	require.False(t, env.keeper.IsPaused(env.ctx))
	err := env.keeper.SetPauseState(env.ctx, testAlice, true)
	requireErrCode(t, err, sdk.CodeUnauthorized)

	require.Nil(t, env.keeper.SetPauseState(env.ctx, testAuthority, true))
	require.True(t, env.keeper.IsPaused(env.ctx))
	require.Nil(t, env.keeper.SetPauseState(env.ctx, testAuthority, false))
	require.False(t, env.keeper.IsPaused(env.ctx))
}

func TestDelegation(t *testing.T) {
	env := newTestEnv(t)
	delegate := sdk.AccAddressFromBytes([]byte("vote-delegate-------"))

	err := env.keeper.SetDelegate(env.ctx, testAlice, delegate)
	requireErrCode(t, err, sdk.CodeUnauthorized)

	require.Nil(t, env.keeper.SetDelegate(env.ctx, testAuthority, delegate))
	require.Equal(t, types.DefaultDelegationSpace, env.registry.space)
	require.Equal(t, delegate, env.registry.delegate)

	require.Nil(t, env.keeper.ClearDelegate(env.ctx, testAuthority))
	require.True(t, env.registry.delegate.Empty())

	env.registry.fail = true
	err = env.keeper.SetDelegate(env.ctx, testAuthority, delegate)
	requireErrCode(t, err, types.CodeExternalFailure)
}

func TestReentrancyGuard(t *testing.T) {
	env := newTestEnv(t)

	require.Nil(t, env.keeper.enterCall())
	err := env.keeper.Deposit(env.ctx, testAlice, testAlice, sdk.NewInt(100), false)
	requireErrCode(t, err, types.CodeReentrancy)
	env.keeper.exitCall()

	// the guard releases on exit
	require.Nil(t, env.keeper.Deposit(env.ctx, testAlice, testAlice, sdk.NewInt(100), false))
}
