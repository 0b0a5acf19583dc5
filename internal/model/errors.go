package model

import (
	"errors"
	"fmt"
)

// ErrorCode is one of the closed set of failure codes reported to callers.
type ErrorCode string

const (
	// CodeNotFound: a ref did not resolve against the current tree.
	CodeNotFound ErrorCode = "NotFound"
	// CodeNotActionable: the element exists but rejected the operation.
	CodeNotActionable ErrorCode = "NotActionable"
	// CodeExecutionError: anything else.
	CodeExecutionError ErrorCode = "ExecutionError"
)

// Error is a failure carrying one of the ErrorCode values.
type Error struct {
	Code    ErrorCode
	Message string
	Err     error
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *Error) Unwrap() error { return e.Err }

// Errorf builds an Error. A %w verb in format is recorded as the cause.
func Errorf(code ErrorCode, format string, args ...any) *Error {
	msg := fmt.Errorf(format, args...)
	return &Error{Code: code, Message: msg.Error(), Err: errors.Unwrap(msg)}
}

// NotFound builds a CodeNotFound error.
func NotFound(format string, args ...any) *Error {
	return Errorf(CodeNotFound, format, args...)
}

// NotActionable builds a CodeNotActionable error.
func NotActionable(format string, args ...any) *Error {
	return Errorf(CodeNotActionable, format, args...)
}

// ExecutionError builds a CodeExecutionError error.
func ExecutionError(format string, args ...any) *Error {
	return Errorf(CodeExecutionError, format, args...)
}

// CodeOf returns the code of err. Errors outside the taxonomy are
// ExecutionError.
func CodeOf(err error) ErrorCode {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return CodeExecutionError
}

// MessageOf returns the human-readable message of err without its code prefix.
func MessageOf(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.Message
	}
	return err.Error()
}
