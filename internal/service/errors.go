package service

import (
	"errors"
	"fmt"
)

// Code classifies a service operation failure.
type Code string

const (
	CodeUnauthenticated   Code = "UNAUTHENTICATED"
	CodePermissionDenied  Code = "PERMISSION_DENIED"
	CodeResourceExhausted Code = "RESOURCE_EXHAUSTED"
	CodeInternal          Code = "INTERNAL"
)

// Error is the failure shape returned by service operations. Message is
// written for direct display to an end user; Err keeps the wrapped cause for
// diagnostics and is never sent to the client.
type Error struct {
	Code    Code
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *Error) Unwrap() error { return e.Err }

// ErrUnauthenticated creates an UNAUTHENTICATED error.
func ErrUnauthenticated(message string) *Error {
	return &Error{Code: CodeUnauthenticated, Message: message}
}

// ErrPermissionDenied creates a PERMISSION_DENIED error.
func ErrPermissionDenied(message string) *Error {
	return &Error{Code: CodePermissionDenied, Message: message}
}

// ErrResourceExhausted creates a RESOURCE_EXHAUSTED error.
func ErrResourceExhausted(message string) *Error {
	return &Error{Code: CodeResourceExhausted, Message: message}
}

// ErrInternal wraps an unexpected downstream failure. The cause stays
// server-side; clients only ever see the generic message.
func ErrInternal(cause error) *Error {
	return &Error{Code: CodeInternal, Message: "internal error", Err: cause}
}

// CodeOf extracts the Code from err, defaulting to CodeInternal for anything
// that is not a *Error.
func CodeOf(err error) Code {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return CodeInternal
}

// MessageOf extracts the user-facing message from err. Non-*Error failures
// yield a generic message so store-specific error shapes never leak.
func MessageOf(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.Message
	}
	return "internal error"
}
