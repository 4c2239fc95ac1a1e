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

	// Naming errors
	ErrInvalidConfig ErrorCode = "INVALID_CONFIG"
	ErrIllegalChar   ErrorCode = "ILLEGAL_CHAR"

	// Plan errors
	ErrNotADirectory ErrorCode = "NOT_A_DIRECTORY"
	ErrCollision     ErrorCode = "COLLISION"

	// Execution errors
	ErrTargetExists    ErrorCode = "TARGET_EXISTS"
	ErrRenameFailed    ErrorCode = "RENAME_FAILED"
	ErrPreviewRequired ErrorCode = "PREVIEW_REQUIRED"

	// FileSystem errors
	ErrFileAccess ErrorCode = "FILE_ACCESS"
)

// Detail keys used across packages
const (
	DetailName        = "name"
	DetailPath        = "path"
	DetailSource      = "source"
	DetailDestination = "destination"
	DetailPattern     = "pattern"
	DetailChar        = "char"
	DetailIndex       = "index"
)

// RenumberError represents a structured error with code and details
type RenumberError struct {
	Code    ErrorCode
	Message string
	Details map[string]interface{}
	Wrapped error
}

// Error implements the error interface
func (e *RenumberError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Wrapped)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap implements the errors.Unwrap interface
func (e *RenumberError) Unwrap() error {
	return e.Wrapped
}

// Is implements errors.Is interface
func (e *RenumberError) Is(target error) bool {
	var targetErr *RenumberError
	if errors.As(target, &targetErr) {
		return e.Code == targetErr.Code
	}
	return false
}

// New creates a new RenumberError with the given code and message
func New(code ErrorCode, message string) *RenumberError {
	return &RenumberError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
	}
}

// Newf creates a new RenumberError with a formatted message
func Newf(code ErrorCode, format string, args ...interface{}) *RenumberError {
	return &RenumberError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
	}
}

// Wrap wraps an existing error with a RenumberError
func Wrap(err error, code ErrorCode, message string) *RenumberError {
	if err == nil {
		return nil
	}
	return &RenumberError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// Wrapf wraps an existing error with a formatted message
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) *RenumberError {
	if err == nil {
		return nil
	}
	return &RenumberError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// WithDetail adds a detail to the error
func (e *RenumberError) WithDetail(key string, value interface{}) *RenumberError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// WithDetails adds multiple details to the error
func (e *RenumberError) WithDetails(details map[string]interface{}) *RenumberError {
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
	var renumberErr *RenumberError
	if errors.As(err, &renumberErr) {
		return renumberErr.Code == code
	}
	return false
}

// GetErrorCode returns the error code from an error, or ErrUnknown if not a RenumberError
func GetErrorCode(err error) ErrorCode {
	var renumberErr *RenumberError
	if errors.As(err, &renumberErr) {
		return renumberErr.Code
	}
	return ErrUnknown
}

// GetErrorDetails returns the details from an error, or nil if not a RenumberError
func GetErrorDetails(err error) map[string]interface{} {
	var renumberErr *RenumberError
	if errors.As(err, &renumberErr) {
		return renumberErr.Details
	}
	return nil
}

// GetDetailString returns a string detail from an error, or "" when absent
func GetDetailString(err error, key string) string {
	details := GetErrorDetails(err)
	if details == nil {
		return ""
	}
	s, _ := details[key].(string)
	return s
}

// UserMessage returns the text shown to users: the message without its
// code, followed by the cause when one is wrapped
func UserMessage(err error) string {
	var renumberErr *RenumberError
	if !errors.As(err, &renumberErr) {
		return err.Error()
	}
	if renumberErr.Wrapped != nil {
		return renumberErr.Message + ": " + UserMessage(renumberErr.Wrapped)
	}
	return renumberErr.Message
}
