package plexlock

import (
	"github.com/plexfi/plexlock/x/plexlock/keeper"
	"github.com/plexfi/plexlock/x/plexlock/types"
)

const (
	ModuleName       = types.ModuleName
	RouterKey        = types.RouterKey
	StoreKey         = types.StoreKey
	QuerierKey       = types.QuerierKey
	DefaultCodespace = types.DefaultCodespace
)

var (
	NewKeeper     = keeper.NewKeeper
	NewQuerier    = keeper.NewQuerier
	RegisterCodec = types.RegisterCodec
	ModuleCdc     = types.ModuleCdc
	ModuleAddress = types.ModuleAddress
	DefaultParams = types.DefaultParams
	ParamsKey     = types.ParamsKey

	NewMsgDeposit              = types.NewMsgDeposit
	NewMsgInitiateRedemptions  = types.NewMsgInitiateRedemptions
	NewMsgRedeem               = types.NewMsgRedeem
	NewMsgStake                = types.NewMsgStake
	NewMsgUnstake              = types.NewMsgUnstake
	NewMsgEpochMaintenance     = types.NewMsgEpochMaintenance
	NewMsgClaimExternalReward  = types.NewMsgClaimExternalReward
	NewMsgClaimSnapshotRewards = types.NewMsgClaimSnapshotRewards
	NewMsgClaimFuturesRewards  = types.NewMsgClaimFuturesRewards
	NewMsgExchangeFutures      = types.NewMsgExchangeFutures
	NewMsgRelock               = types.NewMsgRelock
	NewMsgSetFee               = types.NewMsgSetFee
	NewMsgSetContract          = types.NewMsgSetContract
	NewMsgSetPauseState        = types.NewMsgSetPauseState
	NewMsgSetDelegate          = types.NewMsgSetDelegate
	NewMsgClearDelegate        = types.NewMsgClearDelegate
	NewMsgUnlock               = types.NewMsgUnlock
	NewMsgSetMigration         = types.NewMsgSetMigration
	NewMsgMigrateTokens        = types.NewMsgMigrateTokens
)

type (
	Keeper        = keeper.Keeper
	Collaborators = keeper.Collaborators
	Params        = types.Params
	EpochRecord   = types.EpochRecord
	StakePool     = types.StakePool
	FuturesKind   = types.FuturesKind
	ContractKind  = types.ContractKind
	FeeKind       = types.FeeKind
)
