package plexlock

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/plexfi/plexlock/x/plexlock/types"
)

func TestValidateGenesis(t *testing.T) {
	require.NoError(t, ValidateGenesis(DefaultGenesisState()))

	bad := DefaultGenesisState()
	bad.Params.EpochDuration = 0
	require.Error(t, ValidateGenesis(bad))

	bad = DefaultGenesisState()
	bad.Params.RedemptionFeeMin = 60000
	bad.Params.RedemptionFeeMax = 50000
	require.Error(t, ValidateGenesis(bad))
}

func TestInitExportGenesis(t *testing.T) {
	ctx, k, _, authority := handlerTestSetup(t)

	params := types.DefaultParams()
	params.Authority = authority
	params.RewardFeePercent = 12345
	InitGenesis(ctx, k, NewGenesisState(params, true))

	require.True(t, k.IsPaused(ctx))
	require.Equal(t, uint64(12345), k.GetParams(ctx).RewardFeePercent)

	exported := ExportGenesis(ctx, k)
	require.True(t, exported.Paused)
	require.Equal(t, params.RewardFeePercent, exported.Params.RewardFeePercent)
	require.Equal(t, authority, exported.Params.Authority)
}
