package types

import (
	"fmt"

	sdk "github.com/plexfi/plexlock/types"
)

const (
	TypeMsgDeposit             = "deposit"
	TypeMsgInitiateRedemptions = "initiateredemptions"
	TypeMsgRedeem              = "redeem"
	TypeMsgStake               = "stake"
	TypeMsgUnstake             = "unstake"
	TypeMsgEpochMaintenance    = "epochmaintenance"
	TypeMsgClaimExternalReward = "claimexternalreward"
	TypeMsgClaimSnapshotReward = "claimsnapshotrewards"
	TypeMsgClaimFuturesRewards = "claimfuturesrewards"
	TypeMsgExchangeFutures     = "exchangefutures"
	TypeMsgRelock              = "relock"
	TypeMsgSetFee              = "setfee"
	TypeMsgSetContract         = "setcontract"
	TypeMsgSetPauseState       = "setpausestate"
	TypeMsgSetDelegate         = "setdelegate"
	TypeMsgClearDelegate       = "cleardelegate"
	TypeMsgUnlock              = "unlock"
	TypeMsgSetMigration        = "setmigration"
	TypeMsgMigrateTokens       = "migratetokens"
)

type MsgDeposit struct {
	From           sdk.AccAddress `json:"from"`
	Receiver       sdk.AccAddress `json:"receiver"`
	Assets         sdk.Int        `json:"assets"`
	ShouldCompound bool           `json:"should_compound"`
}

func NewMsgDeposit(from, receiver sdk.AccAddress, assets sdk.Int, shouldCompound bool) MsgDeposit {
	return MsgDeposit{From: from, Receiver: receiver, Assets: assets, ShouldCompound: shouldCompound}
}

func (msg MsgDeposit) Route() string { return RouterKey }
func (msg MsgDeposit) Type() string  { return TypeMsgDeposit }

func (msg MsgDeposit) ValidateBasic() sdk.Error {
	if msg.From.Empty() {
		return sdk.ErrInvalidAddress("empty from address")
	}
	if msg.Receiver.Empty() {
		return sdk.ErrInvalidAddress("empty receiver address")
	}
	if msg.Assets.IsNil() || !msg.Assets.IsPositive() {
		return sdk.ErrInvalidAmount("deposit assets must be positive")
	}
	return nil
}

func (msg MsgDeposit) GetSigners() []sdk.AccAddress { return []sdk.AccAddress{msg.From} }

type MsgInitiateRedemptions struct {
	From        sdk.AccAddress `json:"from"`
	Receiver    sdk.AccAddress `json:"receiver"`
	FuturesKind FuturesKind    `json:"futures_kind"`
	LockIndexes []int          `json:"lock_indexes"`
	Assets      []sdk.Int      `json:"assets"`
}

func NewMsgInitiateRedemptions(from, receiver sdk.AccAddress, kind FuturesKind, lockIndexes []int, assets []sdk.Int) MsgInitiateRedemptions {
	return MsgInitiateRedemptions{From: from, Receiver: receiver, FuturesKind: kind, LockIndexes: lockIndexes, Assets: assets}
}

func (msg MsgInitiateRedemptions) Route() string { return RouterKey }
func (msg MsgInitiateRedemptions) Type() string  { return TypeMsgInitiateRedemptions }

func (msg MsgInitiateRedemptions) ValidateBasic() sdk.Error {
	if msg.From.Empty() {
		return sdk.ErrInvalidAddress("empty from address")
	}
	if msg.Receiver.Empty() {
		return sdk.ErrInvalidAddress("empty receiver address")
	}
	if !msg.FuturesKind.IsValid() {
		return ErrInvalidFuturesKind(msg.FuturesKind)
	}
	if len(msg.LockIndexes) == 0 {
		return ErrEmptyInput("no lock indexes")
	}
	if len(msg.LockIndexes) != len(msg.Assets) {
		return ErrMismatchedArrays(fmt.Sprintf("%d lock indexes, %d amounts", len(msg.LockIndexes), len(msg.Assets)))
	}
	for _, amount := range msg.Assets {
		if amount.IsNil() || !amount.IsPositive() {
			return sdk.ErrInvalidAmount("redemption assets must be positive")
		}
	}
	for _, index := range msg.LockIndexes {
		if index < 0 {
			return ErrLockIndexOutOfRange(index, 0)
		}
	}
	return nil
}

func (msg MsgInitiateRedemptions) GetSigners() []sdk.AccAddress { return []sdk.AccAddress{msg.From} }

type MsgRedeem struct {
	From        sdk.AccAddress `json:"from"`
	Receiver    sdk.AccAddress `json:"receiver"`
	UnlockTimes []int64        `json:"unlock_times"`
	Assets      []sdk.Int      `json:"assets"`
}

func NewMsgRedeem(from, receiver sdk.AccAddress, unlockTimes []int64, assets []sdk.Int) MsgRedeem {
	return MsgRedeem{From: from, Receiver: receiver, UnlockTimes: unlockTimes, Assets: assets}
}

func (msg MsgRedeem) Route() string { return RouterKey }
func (msg MsgRedeem) Type() string  { return TypeMsgRedeem }

func (msg MsgRedeem) ValidateBasic() sdk.Error {
	if msg.From.Empty() {
		return sdk.ErrInvalidAddress("empty from address")
	}
	if msg.Receiver.Empty() {
		return sdk.ErrInvalidAddress("empty receiver address")
	}
	if len(msg.UnlockTimes) == 0 {
		return ErrEmptyInput("no unlock times")
	}
	if len(msg.UnlockTimes) != len(msg.Assets) {
		return ErrMismatchedArrays(fmt.Sprintf("%d unlock times, %d amounts", len(msg.UnlockTimes), len(msg.Assets)))
	}
	for _, amount := range msg.Assets {
		if amount.IsNil() || !amount.IsPositive() {
			return sdk.ErrInvalidAmount("redeem assets must be positive")
		}
	}
	return nil
}

func (msg MsgRedeem) GetSigners() []sdk.AccAddress { return []sdk.AccAddress{msg.From} }

type MsgStake struct {
	From        sdk.AccAddress `json:"from"`
	Receiver    sdk.AccAddress `json:"receiver"`
	Rounds      int64          `json:"rounds"`
	FuturesKind FuturesKind    `json:"futures_kind"`
	Assets      sdk.Int        `json:"assets"`
}

func NewMsgStake(from, receiver sdk.AccAddress, rounds int64, kind FuturesKind, assets sdk.Int) MsgStake {
	return MsgStake{From: from, Receiver: receiver, Rounds: rounds, FuturesKind: kind, Assets: assets}
}

func (msg MsgStake) Route() string { return RouterKey }
func (msg MsgStake) Type() string  { return TypeMsgStake }

func (msg MsgStake) ValidateBasic() sdk.Error {
	if msg.From.Empty() {
		return sdk.ErrInvalidAddress("empty from address")
	}
	if msg.Receiver.Empty() {
		return sdk.ErrInvalidAddress("empty receiver address")
	}
	if msg.Rounds <= 0 {
		return sdk.ErrInvalidAmount("stake rounds must be positive")
	}
	if !msg.FuturesKind.IsValid() {
		return ErrInvalidFuturesKind(msg.FuturesKind)
	}
	if msg.Assets.IsNil() || !msg.Assets.IsPositive() {
		return sdk.ErrInvalidAmount("stake assets must be positive")
	}
	return nil
}

func (msg MsgStake) GetSigners() []sdk.AccAddress { return []sdk.AccAddress{msg.From} }

type MsgUnstake struct {
	From        sdk.AccAddress `json:"from"`
	Receiver    sdk.AccAddress `json:"receiver"`
	StakeExpiry int64          `json:"stake_expiry"`
	Assets      sdk.Int        `json:"assets"`
}

func NewMsgUnstake(from, receiver sdk.AccAddress, stakeExpiry int64, assets sdk.Int) MsgUnstake {
	return MsgUnstake{From: from, Receiver: receiver, StakeExpiry: stakeExpiry, Assets: assets}
}

func (msg MsgUnstake) Route() string { return RouterKey }
func (msg MsgUnstake) Type() string  { return TypeMsgUnstake }

func (msg MsgUnstake) ValidateBasic() sdk.Error {
	if msg.From.Empty() {
		return sdk.ErrInvalidAddress("empty from address")
	}
	if msg.Receiver.Empty() {
		return sdk.ErrInvalidAddress("empty receiver address")
	}
	if msg.Assets.IsNil() || !msg.Assets.IsPositive() {
		return sdk.ErrInvalidAmount("unstake shares must be positive")
	}
	return nil
}

func (msg MsgUnstake) GetSigners() []sdk.AccAddress { return []sdk.AccAddress{msg.From} }

type MsgEpochMaintenance struct {
	From sdk.AccAddress `json:"from"`
}

func NewMsgEpochMaintenance(from sdk.AccAddress) MsgEpochMaintenance {
	return MsgEpochMaintenance{From: from}
}

func (msg MsgEpochMaintenance) Route() string { return RouterKey }
func (msg MsgEpochMaintenance) Type() string  { return TypeMsgEpochMaintenance }

func (msg MsgEpochMaintenance) ValidateBasic() sdk.Error {
	if msg.From.Empty() {
		return sdk.ErrInvalidAddress("empty from address")
	}
	return nil
}

func (msg MsgEpochMaintenance) GetSigners() []sdk.AccAddress { return []sdk.AccAddress{msg.From} }

type MsgClaimExternalReward struct {
	From   sdk.AccAddress `json:"from"`
	Token  sdk.Symbol     `json:"token"`
	Index  uint64         `json:"index"`
	Amount sdk.Int        `json:"amount"`
	Proof  [][]byte       `json:"proof"`
}

func NewMsgClaimExternalReward(from sdk.AccAddress, token sdk.Symbol, index uint64, amount sdk.Int, proof [][]byte) MsgClaimExternalReward {
	return MsgClaimExternalReward{From: from, Token: token, Index: index, Amount: amount, Proof: proof}
}

func (msg MsgClaimExternalReward) Route() string { return RouterKey }
func (msg MsgClaimExternalReward) Type() string  { return TypeMsgClaimExternalReward }

func (msg MsgClaimExternalReward) ValidateBasic() sdk.Error {
	if msg.From.Empty() {
		return sdk.ErrInvalidAddress("empty from address")
	}
	if !msg.Token.IsValidTokenName() {
		return sdk.ErrInvalidSymbol(fmt.Sprintf("invalid reward token %q", msg.Token))
	}
	if msg.Amount.IsNil() || !msg.Amount.IsPositive() {
		return sdk.ErrInvalidAmount("reward amount must be positive")
	}
	return nil
}

func (msg MsgClaimExternalReward) GetSigners() []sdk.AccAddress { return []sdk.AccAddress{msg.From} }

type MsgClaimSnapshotRewards struct {
	From          sdk.AccAddress `json:"from"`
	Receiver      sdk.AccAddress `json:"receiver"`
	Epoch         int64          `json:"epoch"`
	RewardIndexes []int          `json:"reward_indexes"`
}

func NewMsgClaimSnapshotRewards(from, receiver sdk.AccAddress, epoch int64, rewardIndexes []int) MsgClaimSnapshotRewards {
	return MsgClaimSnapshotRewards{From: from, Receiver: receiver, Epoch: epoch, RewardIndexes: rewardIndexes}
}

func (msg MsgClaimSnapshotRewards) Route() string { return RouterKey }
func (msg MsgClaimSnapshotRewards) Type() string  { return TypeMsgClaimSnapshotReward }

func (msg MsgClaimSnapshotRewards) ValidateBasic() sdk.Error {
	if msg.From.Empty() {
		return sdk.ErrInvalidAddress("empty from address")
	}
	if msg.Receiver.Empty() {
		return sdk.ErrInvalidAddress("empty receiver address")
	}
	if msg.Epoch <= 0 {
		return sdk.ErrInvalidAmount("epoch must be positive")
	}
	if len(msg.RewardIndexes) == 0 {
		return ErrEmptyInput("no reward indexes")
	}
	for _, index := range msg.RewardIndexes {
		if index < 0 {
			return sdk.ErrInvalidAmount(fmt.Sprintf("negative reward index %d", index))
		}
	}
	return nil
}

func (msg MsgClaimSnapshotRewards) GetSigners() []sdk.AccAddress { return []sdk.AccAddress{msg.From} }

type MsgClaimFuturesRewards struct {
	From     sdk.AccAddress `json:"from"`
	Receiver sdk.AccAddress `json:"receiver"`
	Epoch    int64          `json:"epoch"`
}

func NewMsgClaimFuturesRewards(from, receiver sdk.AccAddress, epoch int64) MsgClaimFuturesRewards {
	return MsgClaimFuturesRewards{From: from, Receiver: receiver, Epoch: epoch}
}

func (msg MsgClaimFuturesRewards) Route() string { return RouterKey }
func (msg MsgClaimFuturesRewards) Type() string  { return TypeMsgClaimFuturesRewards }

func (msg MsgClaimFuturesRewards) ValidateBasic() sdk.Error {
	if msg.From.Empty() {
		return sdk.ErrInvalidAddress("empty from address")
	}
	if msg.Receiver.Empty() {
		return sdk.ErrInvalidAddress("empty receiver address")
	}
	if msg.Epoch <= 0 {
		return sdk.ErrInvalidAmount("epoch must be positive")
	}
	return nil
}

func (msg MsgClaimFuturesRewards) GetSigners() []sdk.AccAddress { return []sdk.AccAddress{msg.From} }

type MsgExchangeFutures struct {
	From     sdk.AccAddress `json:"from"`
	Receiver sdk.AccAddress `json:"receiver"`
	Epoch    int64          `json:"epoch"`
	Amount   sdk.Int        `json:"amount"`
	Kind     FuturesKind    `json:"kind"`
}

func NewMsgExchangeFutures(from, receiver sdk.AccAddress, epoch int64, amount sdk.Int, kind FuturesKind) MsgExchangeFutures {
	return MsgExchangeFutures{From: from, Receiver: receiver, Epoch: epoch, Amount: amount, Kind: kind}
}

func (msg MsgExchangeFutures) Route() string { return RouterKey }
func (msg MsgExchangeFutures) Type() string  { return TypeMsgExchangeFutures }

func (msg MsgExchangeFutures) ValidateBasic() sdk.Error {
	if msg.From.Empty() {
		return sdk.ErrInvalidAddress("empty from address")
	}
	if msg.Receiver.Empty() {
		return sdk.ErrInvalidAddress("empty receiver address")
	}
	if msg.Epoch <= 0 {
		return sdk.ErrInvalidAmount("epoch must be positive")
	}
	if msg.Amount.IsNil() || !msg.Amount.IsPositive() {
		return sdk.ErrInvalidAmount("exchange amount must be positive")
	}
	if !msg.Kind.IsValid() {
		return ErrInvalidFuturesKind(msg.Kind)
	}
	return nil
}

func (msg MsgExchangeFutures) GetSigners() []sdk.AccAddress { return []sdk.AccAddress{msg.From} }

type MsgRelock struct {
	From sdk.AccAddress `json:"from"`
}

func NewMsgRelock(from sdk.AccAddress) MsgRelock {
	return MsgRelock{From: from}
}

func (msg MsgRelock) Route() string { return RouterKey }
func (msg MsgRelock) Type() string  { return TypeMsgRelock }

func (msg MsgRelock) ValidateBasic() sdk.Error {
	if msg.From.Empty() {
		return sdk.ErrInvalidAddress("empty from address")
	}
	return nil
}

func (msg MsgRelock) GetSigners() []sdk.AccAddress { return []sdk.AccAddress{msg.From} }

type MsgSetFee struct {
	From  sdk.AccAddress `json:"from"`
	Kind  FeeKind        `json:"kind"`
	Value uint64         `json:"value"`
}

func NewMsgSetFee(from sdk.AccAddress, kind FeeKind, value uint64) MsgSetFee {
	return MsgSetFee{From: from, Kind: kind, Value: value}
}

func (msg MsgSetFee) Route() string { return RouterKey }
func (msg MsgSetFee) Type() string  { return TypeMsgSetFee }

func (msg MsgSetFee) ValidateBasic() sdk.Error {
	if msg.From.Empty() {
		return sdk.ErrInvalidAddress("empty from address")
	}
	if !msg.Kind.IsValid() {
		return ErrInvalidFeeKind(msg.Kind)
	}
	if msg.Value > FeeDenominator {
		return ErrInvalidFee(fmt.Sprintf("fee %d exceeds denominator %d", msg.Value, FeeDenominator))
	}
	return nil
}

func (msg MsgSetFee) GetSigners() []sdk.AccAddress { return []sdk.AccAddress{msg.From} }

type MsgSetContract struct {
	From    sdk.AccAddress `json:"from"`
	Kind    ContractKind   `json:"kind"`
	Address sdk.AccAddress `json:"address"`
}

func NewMsgSetContract(from sdk.AccAddress, kind ContractKind, address sdk.AccAddress) MsgSetContract {
	return MsgSetContract{From: from, Kind: kind, Address: address}
}

func (msg MsgSetContract) Route() string { return RouterKey }
func (msg MsgSetContract) Type() string  { return TypeMsgSetContract }

func (msg MsgSetContract) ValidateBasic() sdk.Error {
	if msg.From.Empty() {
		return sdk.ErrInvalidAddress("empty from address")
	}
	if !msg.Kind.IsValid() {
		return ErrInvalidContractKind(msg.Kind)
	}
	if msg.Address.Empty() {
		return sdk.ErrInvalidAddress("empty contract address")
	}
	return nil
}

func (msg MsgSetContract) GetSigners() []sdk.AccAddress { return []sdk.AccAddress{msg.From} }

type MsgSetPauseState struct {
	From   sdk.AccAddress `json:"from"`
	Paused bool           `json:"paused"`
}

func NewMsgSetPauseState(from sdk.AccAddress, paused bool) MsgSetPauseState {
	return MsgSetPauseState{From: from, Paused: paused}
}

func (msg MsgSetPauseState) Route() string { return RouterKey }
func (msg MsgSetPauseState) Type() string  { return TypeMsgSetPauseState }

func (msg MsgSetPauseState) ValidateBasic() sdk.Error {
	if msg.From.Empty() {
		return sdk.ErrInvalidAddress("empty from address")
	}
	return nil
}

func (msg MsgSetPauseState) GetSigners() []sdk.AccAddress { return []sdk.AccAddress{msg.From} }

type MsgSetDelegate struct {
	From     sdk.AccAddress `json:"from"`
	Delegate sdk.AccAddress `json:"delegate"`
}

func NewMsgSetDelegate(from, delegate sdk.AccAddress) MsgSetDelegate {
	return MsgSetDelegate{From: from, Delegate: delegate}
}

func (msg MsgSetDelegate) Route() string { return RouterKey }
func (msg MsgSetDelegate) Type() string  { return TypeMsgSetDelegate }

func (msg MsgSetDelegate) ValidateBasic() sdk.Error {
	if msg.From.Empty() {
		return sdk.ErrInvalidAddress("empty from address")
	}
	if msg.Delegate.Empty() {
		return sdk.ErrInvalidAddress("empty delegate address")
	}
	return nil
}

func (msg MsgSetDelegate) GetSigners() []sdk.AccAddress { return []sdk.AccAddress{msg.From} }

type MsgClearDelegate struct {
	From sdk.AccAddress `json:"from"`
}

func NewMsgClearDelegate(from sdk.AccAddress) MsgClearDelegate {
	return MsgClearDelegate{From: from}
}

func (msg MsgClearDelegate) Route() string { return RouterKey }
func (msg MsgClearDelegate) Type() string  { return TypeMsgClearDelegate }

func (msg MsgClearDelegate) ValidateBasic() sdk.Error {
	if msg.From.Empty() {
		return sdk.ErrInvalidAddress("empty from address")
	}
	return nil
}

func (msg MsgClearDelegate) GetSigners() []sdk.AccAddress { return []sdk.AccAddress{msg.From} }

type MsgUnlock struct {
	From sdk.AccAddress `json:"from"`
}

func NewMsgUnlock(from sdk.AccAddress) MsgUnlock {
	return MsgUnlock{From: from}
}

func (msg MsgUnlock) Route() string { return RouterKey }
func (msg MsgUnlock) Type() string  { return TypeMsgUnlock }

func (msg MsgUnlock) ValidateBasic() sdk.Error {
	if msg.From.Empty() {
		return sdk.ErrInvalidAddress("empty from address")
	}
	return nil
}

func (msg MsgUnlock) GetSigners() []sdk.AccAddress { return []sdk.AccAddress{msg.From} }

type MsgSetMigration struct {
	From   sdk.AccAddress `json:"from"`
	Target sdk.AccAddress `json:"target"`
}

func NewMsgSetMigration(from, target sdk.AccAddress) MsgSetMigration {
	return MsgSetMigration{From: from, Target: target}
}

func (msg MsgSetMigration) Route() string { return RouterKey }
func (msg MsgSetMigration) Type() string  { return TypeMsgSetMigration }

func (msg MsgSetMigration) ValidateBasic() sdk.Error {
	if msg.From.Empty() {
		return sdk.ErrInvalidAddress("empty from address")
	}
	if msg.Target.Empty() {
		return sdk.ErrInvalidAddress("empty migration target")
	}
	return nil
}

func (msg MsgSetMigration) GetSigners() []sdk.AccAddress { return []sdk.AccAddress{msg.From} }

type MsgMigrateTokens struct {
	From   sdk.AccAddress `json:"from"`
	Tokens []sdk.Symbol   `json:"tokens"`
}

func NewMsgMigrateTokens(from sdk.AccAddress, tokens []sdk.Symbol) MsgMigrateTokens {
	return MsgMigrateTokens{From: from, Tokens: tokens}
}

func (msg MsgMigrateTokens) Route() string { return RouterKey }
func (msg MsgMigrateTokens) Type() string  { return TypeMsgMigrateTokens }

func (msg MsgMigrateTokens) ValidateBasic() sdk.Error {
	if msg.From.Empty() {
		return sdk.ErrInvalidAddress("empty from address")
	}
	if len(msg.Tokens) == 0 {
		return ErrEmptyInput("no tokens to migrate")
	}
	for _, token := range msg.Tokens {
		if !token.IsValidTokenName() {
			return sdk.ErrInvalidSymbol(fmt.Sprintf("invalid token %q", token))
		}
	}
	return nil
}

func (msg MsgMigrateTokens) GetSigners() []sdk.AccAddress { return []sdk.AccAddress{msg.From} }
