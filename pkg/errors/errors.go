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
	ErrUnknown       ErrorCode = "UNKNOWN"
	ErrInternal      ErrorCode = "INTERNAL"
	ErrInvalidInput  ErrorCode = "INVALID_INPUT"
	ErrNotFound      ErrorCode = "NOT_FOUND"
	ErrAlreadyExists ErrorCode = "ALREADY_EXISTS"
	ErrPermission    ErrorCode = "PERMISSION"

	// Configuration errors
	ErrConfigLoad  ErrorCode = "CONFIG_LOAD"
	ErrConfigParse ErrorCode = "CONFIG_PARSE"

	// External tool errors
	ErrToolNotFound ErrorCode = "TOOL_NOT_FOUND"
	ErrToolFailed   ErrorCode = "TOOL_FAILED"

	// Staging errors
	ErrStagingNotFound ErrorCode = "STAGING_NOT_FOUND"
	ErrNotADirectory   ErrorCode = "NOT_A_DIRECTORY"
	ErrIsADirectory    ErrorCode = "IS_A_DIRECTORY"

	// Materialization errors
	ErrLinkCreate ErrorCode = "LINK_CREATE"
	ErrFileCopy   ErrorCode = "FILE_COPY"
	ErrDirCreate  ErrorCode = "DIR_CREATE"
	ErrFileCreate ErrorCode = "FILE_CREATE"

	// Archive validation errors
	ErrArchiveNotFound ErrorCode = "ARCHIVE_NOT_FOUND"
	ErrValidation      ErrorCode = "VALIDATION"
)

// MPQError represents a structured error with code and details
type MPQError struct {
	Code    ErrorCode
	Message string
	Details map[string]interface{}
	Wrapped error
}

// Error implements the error interface
func (e *MPQError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Wrapped)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap implements the errors.Unwrap interface
func (e *MPQError) Unwrap() error {
	return e.Wrapped
}

// Is implements errors.Is interface
func (e *MPQError) Is(target error) bool {
	var targetErr *MPQError
	if errors.As(target, &targetErr) {
		return e.Code == targetErr.Code
	}
	return false
}

// New creates a new MPQError with the given code and message
func New(code ErrorCode, message string) *MPQError {
	return &MPQError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
	}
}

// Newf creates a new MPQError with a formatted message
func Newf(code ErrorCode, format string, args ...interface{}) *MPQError {
	return &MPQError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
	}
}

// Wrap wraps an existing error with an MPQError
func Wrap(err error, code ErrorCode, message string) *MPQError {
	if err == nil {
		return nil
	}
	return &MPQError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// Wrapf wraps an existing error with a formatted message
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) *MPQError {
	if err == nil {
		return nil
	}
	return &MPQError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// WithDetail adds a detail to the error
func (e *MPQError) WithDetail(key string, value interface{}) *MPQError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// WithDetails adds multiple details to the error
func (e *MPQError) WithDetails(details map[string]interface{}) *MPQError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	for k, v := range details {
		e.Details[k] = v
	}
	return e
}

// IsErrorCode checks if an error has a specific error code
func IsErrorCode(err error, code ErrorCode) bool {
	var mpqErr *MPQError
	if errors.As(err, &mpqErr) {
		return mpqErr.Code == code
	}
	return false
}

// GetErrorCode returns the error code from an error, or ErrUnknown if not an MPQError
func GetErrorCode(err error) ErrorCode {
	var mpqErr *MPQError
	if errors.As(err, &mpqErr) {
		return mpqErr.Code
	}
	return ErrUnknown
}

// GetErrorDetails returns the details from an error, or nil if not an MPQError
func GetErrorDetails(err error) map[string]interface{} {
	var mpqErr *MPQError
	if errors.As(err, &mpqErr) {
		return mpqErr.Details
	}
	return nil
}
