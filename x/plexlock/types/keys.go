package types

import (
	ethcrypto "github.com/ethereum/go-ethereum/crypto"

	sdk "github.com/plexfi/plexlock/types"
)

const (
	// ModuleName is the name of this module
	ModuleName = "plexlock"

	// RouterKey is used to route messages to the handler
	RouterKey = ModuleName

	// StoreKey is the prefix under which we store this module's data
	StoreKey = ModuleName

	// QuerierKey is used to handle query requests
	QuerierKey = ModuleName
)

// ModuleAddress is the engine's own account in the bank ledger; it custodies
// every asset the engine holds that is not locked away in the gateway.
var ModuleAddress = sdk.AccAddressFromBytes(ethcrypto.Keccak256([]byte(ModuleName))[12:])

var (
	ParamsKey                     = []byte{0x00}
	EpochKeyPrefix                = []byte{0x01}
	SnapshotCounterKey            = []byte{0x02}
	SnapshotBalanceKeyPrefix      = []byte{0x03}
	SnapshotSupplyKeyPrefix       = []byte{0x04}
	OutstandingRedemptionsKey     = []byte{0x05}
	RedemptionObligationKeyPrefix = []byte{0x06}
	RedemptionNoteKeyPrefix       = []byte{0x07}
	RedemptionNoteSupplyKeyPrefix = []byte{0x08}
	FuturesBalanceKeyPrefix       = []byte{0x09}
	FuturesSupplyKeyPrefix        = []byte{0x0a}
	RewardClaimedKeyPrefix        = []byte{0x0b}
	StakePoolKeyPrefix            = []byte{0x0c}
	StakeShareKeyPrefix           = []byte{0x0d}
	PausedKey                     = []byte{0x0e}
	MigrationTargetKey            = []byte{0x0f}
	ContractAddressKeyPrefix      = []byte{0x10}
)

func EpochKey(epoch int64) []byte {
	return append(EpochKeyPrefix, sdk.Int64ToBigEndian(epoch)...)
}

func SnapshotBalanceKeyPrefixWithID(snapshotID uint64) []byte {
	return append(SnapshotBalanceKeyPrefix, sdk.Uint64ToBigEndian(snapshotID)...)
}

func SnapshotBalanceKey(snapshotID uint64, addr sdk.AccAddress) []byte {
	return append(SnapshotBalanceKeyPrefixWithID(snapshotID), addr...)
}

func SnapshotSupplyKey(snapshotID uint64) []byte {
	return append(SnapshotSupplyKeyPrefix, sdk.Uint64ToBigEndian(snapshotID)...)
}

func RedemptionObligationKey(unlockTime int64) []byte {
	return append(RedemptionObligationKeyPrefix, sdk.Int64ToBigEndian(unlockTime)...)
}

func UnlockTimeFromObligationKey(key []byte) int64 {
	return sdk.BigEndianToInt64(key[len(RedemptionObligationKeyPrefix):])
}

func RedemptionNoteKeyPrefixWithTime(unlockTime int64) []byte {
	return append(RedemptionNoteKeyPrefix, sdk.Int64ToBigEndian(unlockTime)...)
}

func RedemptionNoteKey(unlockTime int64, addr sdk.AccAddress) []byte {
	return append(RedemptionNoteKeyPrefixWithTime(unlockTime), addr...)
}

func RedemptionNoteSupplyKey(unlockTime int64) []byte {
	return append(RedemptionNoteSupplyKeyPrefix, sdk.Int64ToBigEndian(unlockTime)...)
}

func FuturesBalanceKeyPrefixWithEpoch(kind FuturesKind, epoch int64) []byte {
	bz := append(FuturesBalanceKeyPrefix, byte(kind))
	return append(bz, sdk.Int64ToBigEndian(epoch)...)
}

func FuturesBalanceKey(kind FuturesKind, epoch int64, addr sdk.AccAddress) []byte {
	return append(FuturesBalanceKeyPrefixWithEpoch(kind, epoch), addr...)
}

func FuturesSupplyKey(kind FuturesKind, epoch int64) []byte {
	bz := append(FuturesSupplyKeyPrefix, byte(kind))
	return append(bz, sdk.Int64ToBigEndian(epoch)...)
}

func RewardClaimedKey(epoch int64, rewardIndex int, addr sdk.AccAddress) []byte {
	bz := append(RewardClaimedKeyPrefix, sdk.Int64ToBigEndian(epoch)...)
	bz = append(bz, sdk.Uint64ToBigEndian(uint64(rewardIndex))...)
	return append(bz, addr...)
}

func StakePoolKey(expiry int64) []byte {
	return append(StakePoolKeyPrefix, sdk.Int64ToBigEndian(expiry)...)
}

func StakeShareKeyPrefixWithExpiry(expiry int64) []byte {
	return append(StakeShareKeyPrefix, sdk.Int64ToBigEndian(expiry)...)
}

func StakeShareKey(expiry int64, addr sdk.AccAddress) []byte {
	return append(StakeShareKeyPrefixWithExpiry(expiry), addr...)
}

func ContractAddressKey(kind ContractKind) []byte {
	return append(ContractAddressKeyPrefix, byte(kind))
}
