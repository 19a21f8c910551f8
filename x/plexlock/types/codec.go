package types

import (
	"github.com/plexfi/plexlock/codec"
)

var ModuleCdc = codec.New()

// Register concrete types on codec codec
func RegisterCodec(cdc *codec.Codec) {
	cdc.RegisterConcrete(&EpochRecord{}, "plexlock/EpochRecord", nil)
	cdc.RegisterConcrete(&StakePool{}, "plexlock/StakePool", nil)
	cdc.RegisterConcrete(Params{}, "plexlock/Params", nil)
	cdc.RegisterConcrete(MsgDeposit{}, "plexlock/MsgDeposit", nil)
	cdc.RegisterConcrete(MsgInitiateRedemptions{}, "plexlock/MsgInitiateRedemptions", nil)
	cdc.RegisterConcrete(MsgRedeem{}, "plexlock/MsgRedeem", nil)
	cdc.RegisterConcrete(MsgStake{}, "plexlock/MsgStake", nil)
	cdc.RegisterConcrete(MsgUnstake{}, "plexlock/MsgUnstake", nil)
	cdc.RegisterConcrete(MsgEpochMaintenance{}, "plexlock/MsgEpochMaintenance", nil)
	cdc.RegisterConcrete(MsgClaimExternalReward{}, "plexlock/MsgClaimExternalReward", nil)
	cdc.RegisterConcrete(MsgClaimSnapshotRewards{}, "plexlock/MsgClaimSnapshotRewards", nil)
	cdc.RegisterConcrete(MsgClaimFuturesRewards{}, "plexlock/MsgClaimFuturesRewards", nil)
	cdc.RegisterConcrete(MsgExchangeFutures{}, "plexlock/MsgExchangeFutures", nil)
	cdc.RegisterConcrete(MsgRelock{}, "plexlock/MsgRelock", nil)
	cdc.RegisterConcrete(MsgSetFee{}, "plexlock/MsgSetFee", nil)
	cdc.RegisterConcrete(MsgSetContract{}, "plexlock/MsgSetContract", nil)
	cdc.RegisterConcrete(MsgSetPauseState{}, "plexlock/MsgSetPauseState", nil)
	cdc.RegisterConcrete(MsgSetDelegate{}, "plexlock/MsgSetDelegate", nil)
	cdc.RegisterConcrete(MsgClearDelegate{}, "plexlock/MsgClearDelegate", nil)
	cdc.RegisterConcrete(MsgUnlock{}, "plexlock/MsgUnlock", nil)
	cdc.RegisterConcrete(MsgSetMigration{}, "plexlock/MsgSetMigration", nil)
	cdc.RegisterConcrete(MsgMigrateTokens{}, "plexlock/MsgMigrateTokens", nil)
}

func init() {
	RegisterCodec(ModuleCdc)
	ModuleCdc.Seal()
}
