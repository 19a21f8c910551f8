package keeper

import (
	"testing"

	"github.com/stretchr/testify/require"

	sdk "github.com/plexfi/plexlock/types"
	"github.com/plexfi/plexlock/x/plexlock/types"
)

func TestDeposit(t *testing.T) {
	env := newTestEnv(t)

	err := env.keeper.Deposit(env.ctx, testAlice, testAlice, sdk.NewInt(1000), false)
	require.Nil(t, err)

	// receipt minted 1:1, base pulled from the depositor into the gateway
	require.Equal(t, sdk.NewInt(1000), env.bank.GetBalance(env.ctx, testAlice, testReceipt))
	require.Equal(t, sdk.NewInt(999000), env.bank.GetBalance(env.ctx, testAlice, testBase))
	require.Equal(t, sdk.NewInt(1000), env.bank.GetBalance(env.ctx, env.gateway.addr, testBase))

	// nothing sticks to the engine account
	require.True(t, env.bank.GetBalance(env.ctx, types.ModuleAddress, testBase).IsZero())

	total, _, locked, entries := env.gateway.LockedBalances(env.ctx)
	require.Equal(t, sdk.NewInt(1000), total)
	require.Equal(t, sdk.NewInt(1000), locked)
	require.Len(t, entries, 1)
}

func TestDepositToOtherReceiver(t *testing.T) {
	env := newTestEnv(t)

	require.Nil(t, env.keeper.Deposit(env.ctx, testAlice, testBob, sdk.NewInt(500), false))
	require.True(t, env.bank.GetBalance(env.ctx, testAlice, testReceipt).IsZero())
	require.Equal(t, sdk.NewInt(500), env.bank.GetBalance(env.ctx, testBob, testReceipt))
}

func TestDepositCompound(t *testing.T) {
	env := newTestEnv(t)

	// the vault address must be on record first
	err := env.keeper.Deposit(env.ctx, testAlice, testAlice, sdk.NewInt(100), true)
	requireErrCode(t, err, sdk.CodeInvalidAddress)

	require.Nil(t, env.keeper.SetExternalContract(env.ctx, testAuthority, types.ContractCompoundVault, env.vault.addr))
	require.Nil(t, env.keeper.Deposit(env.ctx, testAlice, testAlice, sdk.NewInt(100), true))

	// receipt tokens sit in the vault, credited to alice there
	require.Equal(t, sdk.NewInt(100), env.bank.GetBalance(env.ctx, env.vault.addr, testReceipt))
	require.True(t, env.bank.GetBalance(env.ctx, testAlice, testReceipt).IsZero())
	require.Equal(t, sdk.NewInt(100), env.vault.deposits[testAlice.String()])
}

func TestDepositInsufficientBase(t *testing.T) {
	env := newTestEnv(t)

	err := env.keeper.Deposit(env.ctx, testAlice, testAlice, sdk.NewInt(2000000), false)
	requireErrCode(t, err, sdk.CodeInsufficientFunds)
}

func TestDepositWhilePaused(t *testing.T) {
	env := newTestEnv(t)

	require.Nil(t, env.keeper.SetPauseState(env.ctx, testAuthority, true))
	err := env.keeper.Deposit(env.ctx, testAlice, testAlice, sdk.NewInt(100), false)
	requireErrCode(t, err, types.CodePaused)

	require.Nil(t, env.keeper.SetPauseState(env.ctx, testAuthority, false))
	require.Nil(t, env.keeper.Deposit(env.ctx, testAlice, testAlice, sdk.NewInt(100), false))
}

func TestDepositGatewayFailure(t *testing.T) {
	env := newTestEnv(t)

	env.gateway.failLock = true
	err := env.keeper.Deposit(env.ctx, testAlice, testAlice, sdk.NewInt(100), false)
	requireErrCode(t, err, types.CodeExternalFailure)

	// the failed deposit left no trace: the base transfer into the module
	// account rolled back along with everything after it
	require.Equal(t, sdk.NewInt(1000000), env.bank.GetBalance(env.ctx, testAlice, testBase))
	require.True(t, env.bank.GetBalance(env.ctx, types.ModuleAddress, testBase).IsZero())
	require.True(t, env.bank.GetBalance(env.ctx, testAlice, testReceipt).IsZero())
	require.True(t, env.bank.GetSupply(env.ctx, testReceipt).IsZero())
}
