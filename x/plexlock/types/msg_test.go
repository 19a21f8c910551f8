package types

import (
	"testing"

	"github.com/stretchr/testify/require"

	sdk "github.com/plexfi/plexlock/types"
)

var (
	msgTestAddr1 = sdk.AccAddressFromBytes([]byte("addr1---------------"))
	msgTestAddr2 = sdk.AccAddressFromBytes([]byte("addr2---------------"))
)

func requireCode(t *testing.T, err sdk.Error, code sdk.CodeType) {
	t.Helper()
	require.NotNil(t, err)
	require.Equal(t, code, err.Code())
}

func TestMsgDepositValidateBasic(t *testing.T) {
	msg := NewMsgDeposit(msgTestAddr1, msgTestAddr2, sdk.NewInt(100), false)
	require.Equal(t, RouterKey, msg.Route())
	require.Equal(t, TypeMsgDeposit, msg.Type())
	require.Nil(t, msg.ValidateBasic())
	require.Equal(t, []sdk.AccAddress{msgTestAddr1}, msg.GetSigners())

	requireCode(t, NewMsgDeposit(nil, msgTestAddr2, sdk.NewInt(100), false).ValidateBasic(), sdk.CodeInvalidAddress)
	requireCode(t, NewMsgDeposit(msgTestAddr1, nil, sdk.NewInt(100), false).ValidateBasic(), sdk.CodeInvalidAddress)
	requireCode(t, NewMsgDeposit(msgTestAddr1, msgTestAddr2, sdk.ZeroInt(), false).ValidateBasic(), sdk.CodeInvalidAmount)
	requireCode(t, NewMsgDeposit(msgTestAddr1, msgTestAddr2, sdk.NewInt(-5), false).ValidateBasic(), sdk.CodeInvalidAmount)
	requireCode(t, NewMsgDeposit(msgTestAddr1, msgTestAddr2, sdk.Int{}, false).ValidateBasic(), sdk.CodeInvalidAmount)
}

func TestMsgInitiateRedemptionsValidateBasic(t *testing.T) {
	valid := NewMsgInitiateRedemptions(msgTestAddr1, msgTestAddr2, FuturesReward,
		[]int{0, 1}, []sdk.Int{sdk.NewInt(10), sdk.NewInt(20)})
	require.Nil(t, valid.ValidateBasic())

	requireCode(t, NewMsgInitiateRedemptions(msgTestAddr1, msgTestAddr2, FuturesKind(9),
		[]int{0}, []sdk.Int{sdk.NewInt(10)}).ValidateBasic(), CodeInvalidFuturesKind)
	requireCode(t, NewMsgInitiateRedemptions(msgTestAddr1, msgTestAddr2, FuturesVote,
		nil, nil).ValidateBasic(), CodeEmptyInput)
	requireCode(t, NewMsgInitiateRedemptions(msgTestAddr1, msgTestAddr2, FuturesVote,
		[]int{0, 1}, []sdk.Int{sdk.NewInt(10)}).ValidateBasic(), CodeMismatchedArrays)
	requireCode(t, NewMsgInitiateRedemptions(msgTestAddr1, msgTestAddr2, FuturesVote,
		[]int{0}, []sdk.Int{sdk.ZeroInt()}).ValidateBasic(), sdk.CodeInvalidAmount)
	requireCode(t, NewMsgInitiateRedemptions(msgTestAddr1, msgTestAddr2, FuturesVote,
		[]int{-1}, []sdk.Int{sdk.NewInt(10)}).ValidateBasic(), CodeLockIndexOutOfRange)
}

func TestMsgRedeemValidateBasic(t *testing.T) {
	valid := NewMsgRedeem(msgTestAddr1, msgTestAddr2, []int64{100}, []sdk.Int{sdk.NewInt(10)})
	require.Nil(t, valid.ValidateBasic())

	requireCode(t, NewMsgRedeem(msgTestAddr1, msgTestAddr2, nil, nil).ValidateBasic(), CodeEmptyInput)
	requireCode(t, NewMsgRedeem(msgTestAddr1, msgTestAddr2, []int64{100, 200},
		[]sdk.Int{sdk.NewInt(10)}).ValidateBasic(), CodeMismatchedArrays)
	requireCode(t, NewMsgRedeem(msgTestAddr1, msgTestAddr2, []int64{100},
		[]sdk.Int{sdk.NewInt(-1)}).ValidateBasic(), sdk.CodeInvalidAmount)
}

func TestMsgStakeValidateBasic(t *testing.T) {
	require.Nil(t, NewMsgStake(msgTestAddr1, msgTestAddr2, 4, FuturesReward, sdk.NewInt(10)).ValidateBasic())

	requireCode(t, NewMsgStake(msgTestAddr1, msgTestAddr2, 0, FuturesReward, sdk.NewInt(10)).ValidateBasic(), sdk.CodeInvalidAmount)
	requireCode(t, NewMsgStake(msgTestAddr1, msgTestAddr2, 4, FuturesKind(3), sdk.NewInt(10)).ValidateBasic(), CodeInvalidFuturesKind)
	requireCode(t, NewMsgStake(msgTestAddr1, msgTestAddr2, 4, FuturesVote, sdk.ZeroInt()).ValidateBasic(), sdk.CodeInvalidAmount)
}

func TestMsgClaimExternalRewardValidateBasic(t *testing.T) {
	require.Nil(t, NewMsgClaimExternalReward(msgTestAddr1, "crv", 3, sdk.NewInt(10), nil).ValidateBasic())

	requireCode(t, NewMsgClaimExternalReward(nil, "crv", 3, sdk.NewInt(10), nil).ValidateBasic(), sdk.CodeInvalidAddress)
	requireCode(t, NewMsgClaimExternalReward(msgTestAddr1, "C!", 3, sdk.NewInt(10), nil).ValidateBasic(), sdk.CodeInvalidSymbol)
	requireCode(t, NewMsgClaimExternalReward(msgTestAddr1, "crv", 3, sdk.ZeroInt(), nil).ValidateBasic(), sdk.CodeInvalidAmount)
}

func TestMsgClaimSnapshotRewardsValidateBasic(t *testing.T) {
	require.Nil(t, NewMsgClaimSnapshotRewards(msgTestAddr1, msgTestAddr2, 100, []int{0}).ValidateBasic())

	requireCode(t, NewMsgClaimSnapshotRewards(msgTestAddr1, msgTestAddr2, 0, []int{0}).ValidateBasic(), sdk.CodeInvalidAmount)
	requireCode(t, NewMsgClaimSnapshotRewards(msgTestAddr1, msgTestAddr2, 100, nil).ValidateBasic(), CodeEmptyInput)
	requireCode(t, NewMsgClaimSnapshotRewards(msgTestAddr1, msgTestAddr2, 100, []int{-1}).ValidateBasic(), sdk.CodeInvalidAmount)
}

func TestMsgExchangeFuturesValidateBasic(t *testing.T) {
	require.Nil(t, NewMsgExchangeFutures(msgTestAddr1, msgTestAddr2, 100, sdk.NewInt(5), FuturesVote).ValidateBasic())

	requireCode(t, NewMsgExchangeFutures(msgTestAddr1, msgTestAddr2, -1, sdk.NewInt(5), FuturesVote).ValidateBasic(), sdk.CodeInvalidAmount)
	requireCode(t, NewMsgExchangeFutures(msgTestAddr1, msgTestAddr2, 100, sdk.ZeroInt(), FuturesVote).ValidateBasic(), sdk.CodeInvalidAmount)
	requireCode(t, NewMsgExchangeFutures(msgTestAddr1, msgTestAddr2, 100, sdk.NewInt(5), FuturesKind(7)).ValidateBasic(), CodeInvalidFuturesKind)
}

func TestMsgSetFeeValidateBasic(t *testing.T) {
	require.Nil(t, NewMsgSetFee(msgTestAddr1, FeeRedemptionMax, 60000).ValidateBasic())

	requireCode(t, NewMsgSetFee(msgTestAddr1, FeeKind(9), 60000).ValidateBasic(), CodeInvalidFeeKind)
	requireCode(t, NewMsgSetFee(msgTestAddr1, FeeReward, FeeDenominator+1).ValidateBasic(), CodeInvalidFee)
}

func TestMsgSetContractValidateBasic(t *testing.T) {
	require.Nil(t, NewMsgSetContract(msgTestAddr1, ContractLockGateway, msgTestAddr2).ValidateBasic())

	requireCode(t, NewMsgSetContract(msgTestAddr1, ContractKind(99), msgTestAddr2).ValidateBasic(), CodeInvalidContractKind)
	requireCode(t, NewMsgSetContract(msgTestAddr1, ContractFeeSplitter, nil).ValidateBasic(), sdk.CodeInvalidAddress)
}

func TestMsgMigrateTokensValidateBasic(t *testing.T) {
	require.Nil(t, NewMsgMigrateTokens(msgTestAddr1, []sdk.Symbol{"cvx", "crv"}).ValidateBasic())

	requireCode(t, NewMsgMigrateTokens(msgTestAddr1, nil).ValidateBasic(), CodeEmptyInput)
	requireCode(t, NewMsgMigrateTokens(msgTestAddr1, []sdk.Symbol{"X"}).ValidateBasic(), sdk.CodeInvalidSymbol)
}
