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
	ErrNotFound     ErrorCode = "NOT_FOUND"

	// Style and field configuration errors
	ErrStyleInvalid ErrorCode = "STYLE_INVALID"
	ErrStyleUnknown ErrorCode = "STYLE_UNKNOWN"
	ErrFieldType    ErrorCode = "FIELD_TYPE"
	ErrFieldUnknown ErrorCode = "FIELD_UNKNOWN"
	ErrConfigParse  ErrorCode = "CONFIG_PARSE"

	// Value format errors
	ErrColorFormat ErrorCode = "COLOR_FORMAT"
	ErrURLFormat   ErrorCode = "URL_FORMAT"

	// Bundle filesystem errors
	ErrBundleNotFound ErrorCode = "BUNDLE_NOT_FOUND"
	ErrBundleInvalid  ErrorCode = "BUNDLE_INVALID"
	ErrBundleAccess   ErrorCode = "BUNDLE_ACCESS"
	ErrFileAccess     ErrorCode = "FILE_ACCESS"

	// Definition file errors
	ErrDefinitionParse ErrorCode = "DEFINITION_PARSE"
)

// PassbundleError represents a structured error with code and details
type PassbundleError struct {
	Code    ErrorCode
	Message string
	Details map[string]interface{}
	Wrapped error
}

// Error implements the error interface
func (e *PassbundleError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Wrapped)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap implements the errors.Unwrap interface
func (e *PassbundleError) Unwrap() error {
	return e.Wrapped
}

// Is implements errors.Is interface
func (e *PassbundleError) Is(target error) bool {
	var targetErr *PassbundleError
	if errors.As(target, &targetErr) {
		return e.Code == targetErr.Code
	}
	return false
}

// New creates a new PassbundleError with the given code and message
func New(code ErrorCode, message string) *PassbundleError {
	return &PassbundleError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
	}
}

// Newf creates a new PassbundleError with a formatted message
func Newf(code ErrorCode, format string, args ...interface{}) *PassbundleError {
	return &PassbundleError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
	}
}

// Wrap wraps an existing error with a PassbundleError
func Wrap(err error, code ErrorCode, message string) *PassbundleError {
	if err == nil {
		return nil
	}
	return &PassbundleError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// Wrapf wraps an existing error with a formatted message
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) *PassbundleError {
	if err == nil {
		return nil
	}
	return &PassbundleError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// WithDetail adds a detail to the error
func (e *PassbundleError) WithDetail(key string, value interface{}) *PassbundleError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// IsErrorCode checks if an error has a specific error code
func IsErrorCode(err error, code ErrorCode) bool {
	var perr *PassbundleError
	if errors.As(err, &perr) {
		return perr.Code == code
	}
	return false
}

// GetErrorCode returns the error code from an error, or ErrUnknown if not a PassbundleError
func GetErrorCode(err error) ErrorCode {
	var perr *PassbundleError
	if errors.As(err, &perr) {
		return perr.Code
	}
	return ErrUnknown
}

// GetErrorDetails returns the details from an error, or nil if not a PassbundleError
func GetErrorDetails(err error) map[string]interface{} {
	var perr *PassbundleError
	if errors.As(err, &perr) {
		return perr.Details
	}
	return nil
}
