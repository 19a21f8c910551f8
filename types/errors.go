package types

import (
	"fmt"
)

// CodeType - machine-readable identifier of an error condition within a
// codespace.
type CodeType uint32

// CodespaceType - namespace for error codes, one per module.
type CodespaceType string

func (code CodeType) IsOK() bool {
	return code == CodeOK
}

// Base error codes. Module-specific conditions live in each module's types
// package under its own codespace.
const (
	CodeOK                CodeType = 0
	CodeInternal          CodeType = 1
	CodeUnauthorized      CodeType = 4
	CodeInsufficientFunds CodeType = 5
	CodeUnknownRequest    CodeType = 6
	CodeInvalidAddress    CodeType = 7
	CodeInvalidAmount     CodeType = 10
	CodeInvalidSymbol     CodeType = 11

	CodespaceUndefined CodespaceType = ""
	CodespaceRoot      CodespaceType = "plexlock_base"
)

func CodeToDefaultMsg(code CodeType) string {
	switch code {
	case CodeInternal:
		return "internal error"
	case CodeUnauthorized:
		return "unauthorized"
	case CodeInsufficientFunds:
		return "insufficient funds"
	case CodeUnknownRequest:
		return "unknown request"
	case CodeInvalidAddress:
		return "invalid address"
	case CodeInvalidAmount:
		return "invalid amount"
	case CodeInvalidSymbol:
		return "invalid symbol"
	default:
		return fmt.Sprintf("unknown code %d", code)
	}
}

// All errors are created via constructors so call sites stay greppable by
// condition.

func ErrInternal(msg string) Error {
	return newErrorWithRootCodespace(CodeInternal, msg)
}
func ErrUnauthorized(msg string) Error {
	return newErrorWithRootCodespace(CodeUnauthorized, msg)
}
func ErrInsufficientFunds(msg string) Error {
	return newErrorWithRootCodespace(CodeInsufficientFunds, msg)
}
func ErrUnknownRequest(msg string) Error {
	return newErrorWithRootCodespace(CodeUnknownRequest, msg)
}
func ErrInvalidAddress(msg string) Error {
	return newErrorWithRootCodespace(CodeInvalidAddress, msg)
}
func ErrInvalidAmount(msg string) Error {
	return newErrorWithRootCodespace(CodeInvalidAmount, msg)
}
func ErrInvalidSymbol(msg string) Error {
	return newErrorWithRootCodespace(CodeInvalidSymbol, msg)
}

// Error carries a codespace and a code alongside the message so callers can
// assert on the exact failed condition.
type Error interface {
	error

	Code() CodeType
	Codespace() CodespaceType
	Message() string
	Result() Result
}

// NewError - create an error.
func NewError(codespace CodespaceType, code CodeType, format string, args ...interface{}) Error {
	return newError(codespace, code, format, args...)
}

func newErrorWithRootCodespace(code CodeType, format string, args ...interface{}) *codedError {
	return newError(CodespaceRoot, code, format, args...)
}

func newError(codespace CodespaceType, code CodeType, format string, args ...interface{}) *codedError {
	if format == "" {
		format = CodeToDefaultMsg(code)
	}
	return &codedError{
		codespace: codespace,
		code:      code,
		msg:       fmt.Sprintf(format, args...),
	}
}

type codedError struct {
	codespace CodespaceType
	code      CodeType
	msg       string
}

func (err *codedError) Error() string {
	return fmt.Sprintf("%s:%d: %s", err.codespace, err.code, err.msg)
}

func (err *codedError) Codespace() CodespaceType {
	return err.codespace
}

func (err *codedError) Code() CodeType {
	return err.code
}

func (err *codedError) Message() string {
	return err.msg
}

func (err *codedError) Result() Result {
	return Result{
		Code:      err.Code(),
		Codespace: err.Codespace(),
		Log:       err.msg,
	}
}

// Result is the outcome of handling a single message.
type Result struct {
	Code      CodeType      `json:"code"`
	Codespace CodespaceType `json:"codespace"`
	Log       string        `json:"log,omitempty"`
	Events    Events        `json:"events,omitempty"`
}

func (r Result) IsOK() bool {
	return r.Code.IsOK()
}
