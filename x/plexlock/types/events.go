package types

const (
	EventTypeDeposit            = "deposit"
	EventTypeInitiateRedemption = "initiate_redemption"
	EventTypeRedeem             = "redeem"
	EventTypeRelock             = "relock"
	EventTypeStake              = "stake"
	EventTypeUnstake            = "unstake"
	EventTypeEpochMaintenance   = "epoch_maintenance"
	EventTypeRewardClaimed      = "reward_claimed"
	EventTypeSnapshotRewards    = "snapshot_rewards"
	EventTypeFuturesRewards     = "futures_rewards"
	EventTypeFuturesMinted      = "futures_minted"
	EventTypeFuturesExchanged   = "futures_exchanged"
	EventTypeSetFee             = "set_fee"
	EventTypeSetContract        = "set_contract"
	EventTypeSetPauseState      = "set_pause_state"
	EventTypeSetDelegate        = "set_delegate"
	EventTypeClearDelegate      = "clear_delegate"
	EventTypeEmergencyUnlock    = "emergency_unlock"
	EventTypeSetMigration       = "set_migration"
	EventTypeMigrateTokens      = "migrate_tokens"

	AttributeKeyFrom       = "from"
	AttributeKeyReceiver   = "receiver"
	AttributeKeyAssets     = "assets"
	AttributeKeyFee        = "fee"
	AttributeKeyPostFee    = "post_fee"
	AttributeKeyEpoch      = "epoch"
	AttributeKeySnapshotID = "snapshot_id"
	AttributeKeyUnlockTime = "unlock_time"
	AttributeKeyExpiry     = "expiry"
	AttributeKeyRounds     = "rounds"
	AttributeKeyKind       = "kind"
	AttributeKeyToken      = "token"
	AttributeKeyShares     = "shares"
	AttributeKeyValue      = "value"
	AttributeKeyPaused     = "paused"
	AttributeKeyTarget     = "target"
	AttributeKeySpace      = "space"
	AttributeKeyDelegate   = "delegate"

	AttributeValueCategory = ModuleName
)
