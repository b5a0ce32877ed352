package maptel

import (
	"errors"
	"fmt"
)

// Sentinel errors for registry operations.
var (
	// ErrInvalidHandle indicates an operation referenced a handle that is
	// not live: never allocated, or already destroyed.
	ErrInvalidHandle = errors.New("handle not live")

	// ErrInvalidNumber indicates a string that is not 1 to 22 decimal digits.
	ErrInvalidNumber = errors.New("invalid telephone number")
)

// HandleError wraps ErrInvalidHandle with the operation and handle.
type HandleError struct {
	// Op is the operation that was rejected (e.g., "insert").
	Op string
	// Handle is the handle that was not live.
	Handle Handle
}

// Error implements the error interface.
func (e *HandleError) Error() string {
	return fmt.Sprintf("maptel: %s: handle %d: %v", e.Op, e.Handle, ErrInvalidHandle)
}

// Unwrap returns ErrInvalidHandle for errors.Is support.
func (e *HandleError) Unwrap() error {
	return ErrInvalidHandle
}

// NumberError wraps ErrInvalidNumber with the rejected input.
type NumberError struct {
	// Op is the operation that was rejected.
	Op string
	// Number is the input as supplied.
	Number string
	// Reason is one of "empty", "too long", or "non-digit character".
	Reason string
}

// Error implements the error interface.
func (e *NumberError) Error() string {
	return fmt.Sprintf("maptel: %s: %q: %v: %s", e.Op, e.Number, ErrInvalidNumber, e.Reason)
}

// Unwrap returns ErrInvalidNumber for errors.Is support.
func (e *NumberError) Unwrap() error {
	return ErrInvalidNumber
}

// errorKind maps an operation error to a short metric label.
func errorKind(err error) string {
	switch {
	case errors.Is(err, ErrInvalidHandle):
		return "invalid_handle"
	case errors.Is(err, ErrInvalidNumber):
		return "invalid_number"
	default:
		return "other"
	}
}
