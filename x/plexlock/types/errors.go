package types

import (
	"fmt"

	sdk "github.com/plexfi/plexlock/types"
)

type CodeType = sdk.CodeType

// One code per rejectable condition so callers can assert on the exact
// cause.
const (
	DefaultCodespace sdk.CodespaceType = ModuleName

	CodeEmptyInput            CodeType = 101
	CodeMismatchedArrays      CodeType = 102
	CodeInvalidFuturesKind    CodeType = 103
	CodeInvalidContractKind   CodeType = 104
	CodeInvalidFeeKind        CodeType = 105
	CodeInvalidFee            CodeType = 106
	CodeLockIndexOutOfRange   CodeType = 107
	CodeInsufficientAllowance CodeType = 108
	CodeBeforeUnlock          CodeType = 109
	CodeBeforeStakingExpiry   CodeType = 110
	CodeAlreadyClaimed        CodeType = 111
	CodeMaintenanceRequired   CodeType = 112
	CodeDuplicateRewardToken  CodeType = 113
	CodeEpochNotStarted       CodeType = 114
	CodePaused                CodeType = 115
	CodeNotPaused             CodeType = 116
	CodeReentrancy            CodeType = 117
	CodeExternalFailure       CodeType = 118
	CodeNoMigrationTarget     CodeType = 119
	CodeUnknownEpoch          CodeType = 120
	CodeEpochNotFuture        CodeType = 121
	CodeRewardIndexOutOfRange CodeType = 122
)

func ErrEmptyInput(msg string) sdk.Error {
	return sdk.NewError(DefaultCodespace, CodeEmptyInput, msg)
}

func ErrMismatchedArrays(msg string) sdk.Error {
	return sdk.NewError(DefaultCodespace, CodeMismatchedArrays, msg)
}

func ErrInvalidFuturesKind(kind FuturesKind) sdk.Error {
	return sdk.NewError(DefaultCodespace, CodeInvalidFuturesKind, fmt.Sprintf("invalid futures kind %d", kind))
}

func ErrInvalidContractKind(kind ContractKind) sdk.Error {
	return sdk.NewError(DefaultCodespace, CodeInvalidContractKind, fmt.Sprintf("invalid contract kind %d", kind))
}

func ErrInvalidFeeKind(kind FeeKind) sdk.Error {
	return sdk.NewError(DefaultCodespace, CodeInvalidFeeKind, fmt.Sprintf("invalid fee kind %d", kind))
}

func ErrInvalidFee(msg string) sdk.Error {
	return sdk.NewError(DefaultCodespace, CodeInvalidFee, msg)
}

func ErrLockIndexOutOfRange(index int, entries int) sdk.Error {
	return sdk.NewError(DefaultCodespace, CodeLockIndexOutOfRange,
		fmt.Sprintf("lock index %d out of range, %d entries", index, entries))
}

func ErrInsufficientAllowance(msg string) sdk.Error {
	return sdk.NewError(DefaultCodespace, CodeInsufficientAllowance, msg)
}

func ErrBeforeUnlock(unlockTime, now int64) sdk.Error {
	return sdk.NewError(DefaultCodespace, CodeBeforeUnlock,
		fmt.Sprintf("not yet unlocked: unlock time %d, now %d", unlockTime, now))
}

func ErrBeforeStakingExpiry(expiry, now int64) sdk.Error {
	return sdk.NewError(DefaultCodespace, CodeBeforeStakingExpiry,
		fmt.Sprintf("before staking expiry %d, now %d", expiry, now))
}

func ErrAlreadyClaimed(msg string) sdk.Error {
	return sdk.NewError(DefaultCodespace, CodeAlreadyClaimed, msg)
}

func ErrMaintenanceRequired(epoch int64) sdk.Error {
	return sdk.NewError(DefaultCodespace, CodeMaintenanceRequired,
		fmt.Sprintf("maintenance required: no snapshot for epoch %d", epoch))
}

func ErrDuplicateRewardToken(token sdk.Symbol, epoch int64) sdk.Error {
	return sdk.NewError(DefaultCodespace, CodeDuplicateRewardToken,
		fmt.Sprintf("reward token %s already claimed in epoch %d", token, epoch))
}

func ErrEpochNotStarted(epoch, now int64) sdk.Error {
	return sdk.NewError(DefaultCodespace, CodeEpochNotStarted,
		fmt.Sprintf("epoch %d has not started, now %d", epoch, now))
}

func ErrPaused() sdk.Error {
	return sdk.NewError(DefaultCodespace, CodePaused, "engine is paused")
}

func ErrNotPaused() sdk.Error {
	return sdk.NewError(DefaultCodespace, CodeNotPaused, "engine must be paused")
}

func ErrReentrancy() sdk.Error {
	return sdk.NewError(DefaultCodespace, CodeReentrancy, "nested call rejected")
}

func ErrExternalFailure(op string, cause error) sdk.Error {
	return sdk.NewError(DefaultCodespace, CodeExternalFailure, fmt.Sprintf("%s: %v", op, cause))
}

func ErrNoMigrationTarget() sdk.Error {
	return sdk.NewError(DefaultCodespace, CodeNoMigrationTarget, "migration target not set")
}

func ErrUnknownEpoch(epoch int64) sdk.Error {
	return sdk.NewError(DefaultCodespace, CodeUnknownEpoch, fmt.Sprintf("no reward record for epoch %d", epoch))
}

func ErrEpochNotFuture(epoch, now int64) sdk.Error {
	return sdk.NewError(DefaultCodespace, CodeEpochNotFuture,
		fmt.Sprintf("epoch %d is not in the future, now %d", epoch, now))
}

func ErrRewardIndexOutOfRange(index, rewards int) sdk.Error {
	return sdk.NewError(DefaultCodespace, CodeRewardIndexOutOfRange,
		fmt.Sprintf("reward index %d out of range, %d rewards", index, rewards))
}
