package errors

import (
	"errors"
	"fmt"
)

// ErrorCode represents a unique error code for stable testing
type ErrorCode string

// Error codes for different error categories
const (
	// General errors
	ErrUnknown      ErrorCode = "UNKNOWN"
	ErrInternal     ErrorCode = "INTERNAL"
	ErrInvalidInput ErrorCode = "INVALID_INPUT"

	// Configuration errors
	ErrConfigLoad  ErrorCode = "CONFIG_LOAD"
	ErrConfigParse ErrorCode = "CONFIG_PARSE"

	// Scanning errors
	ErrBlockMalformed ErrorCode = "BLOCK_MALFORMED"

	// Relocation errors
	ErrDestCollision ErrorCode = "DEST_COLLISION"

	// FileSystem errors
	ErrFileRead  ErrorCode = "FILE_READ"
	ErrFileWrite ErrorCode = "FILE_WRITE"
	ErrDirCreate ErrorCode = "DIR_CREATE"
)

// RemodError represents a structured error with code and details
type RemodError struct {
	Code    ErrorCode
	Message string
	Details map[string]interface{}
	Wrapped error
}

// Error implements the error interface
func (e *RemodError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Wrapped)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap implements the errors.Unwrap interface
func (e *RemodError) Unwrap() error {
	return e.Wrapped
}

// Is implements errors.Is interface
func (e *RemodError) Is(target error) bool {
	var targetErr *RemodError
	if errors.As(target, &targetErr) {
		return e.Code == targetErr.Code
	}
	return false
}

// New creates a new RemodError with the given code and message
func New(code ErrorCode, message string) *RemodError {
	return &RemodError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
	}
}

// Newf creates a new RemodError with a formatted message
func Newf(code ErrorCode, format string, args ...interface{}) *RemodError {
	return &RemodError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
	}
}

// Wrap wraps an existing error with a RemodError
func Wrap(err error, code ErrorCode, message string) *RemodError {
	if err == nil {
		return nil
	}
	return &RemodError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// Wrapf wraps an existing error with a formatted message
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) *RemodError {
	if err == nil {
		return nil
	}
	return &RemodError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// WithDetail adds a detail to the error
func (e *RemodError) WithDetail(key string, value interface{}) *RemodError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// IsErrorCode checks if an error has a specific error code
func IsErrorCode(err error, code ErrorCode) bool {
	var remodErr *RemodError
	if errors.As(err, &remodErr) {
		return remodErr.Code == code
	}
	return false
}

// GetErrorCode returns the error code from an error, or ErrUnknown if not a RemodError
func GetErrorCode(err error) ErrorCode {
	var remodErr *RemodError
	if errors.As(err, &remodErr) {
		return remodErr.Code
	}
	return ErrUnknown
}
