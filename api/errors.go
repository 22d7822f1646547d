// Package api
// Author: momentics <momentics@gmail.com>
//
// Common error types and error handling utilities for epring.

package api

import (
	"errors"
	"fmt"
)

// Common errors used across the library.
var (
	ErrBufferFull       = errors.New("ring buffer full")
	ErrBufferEmpty      = errors.New("ring buffer empty")
	ErrInvalidArgument  = errors.New("invalid argument")
	ErrCapacityMismatch = errors.New("capacity does not match storage length")
	ErrCapacityTooSmall = errors.New("capacity must be at least 2")
	ErrCapacityTooLarge = errors.New("capacity exceeds cursor range")
	ErrTransportClosed  = errors.New("transport is closed")
	ErrBadHeader        = errors.New("malformed stream header")
	ErrOperationTimeout = errors.New("operation timeout")
	ErrNotSupported     = errors.New("operation not supported")
)

// ErrorCode represents specific error conditions in the library.
type ErrorCode int

const (
	ErrCodeOK ErrorCode = iota
	ErrCodeInvalidArgument
	ErrCodeTimeout
	ErrCodeNotSupported
	ErrCodeInternal
)

// Error represents a structured error with code and context.
type Error struct {
	Code    ErrorCode
	Message string
	Context map[string]any
	cause   error
}

// Error implements the error interface.
func (e *Error) Error() string {
	if len(e.Context) == 0 {
		return e.Message
	}
	return fmt.Sprintf("%s (context: %+v)", e.Message, e.Context)
}

// Unwrap exposes the sentinel the error was built from, if any.
func (e *Error) Unwrap() error { return e.cause }

// NewError creates a new structured error.
func NewError(code ErrorCode, message string) *Error {
	return &Error{
		Code:    code,
		Message: message,
		Context: make(map[string]any),
	}
}

// WrapError creates a structured error whose message and identity come
// from a sentinel, so errors.Is(err, sentinel) holds.
func WrapError(code ErrorCode, sentinel error) *Error {
	e := NewError(code, sentinel.Error())
	e.cause = sentinel
	return e
}

// WithContext adds context information to the error.
func (e *Error) WithContext(key string, value any) *Error {
	if e.Context == nil {
		e.Context = make(map[string]any)
	}
	e.Context[key] = value
	return e
}
