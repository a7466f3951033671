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
	ErrUnknown  ErrorCode = "UNKNOWN"
	ErrInternal ErrorCode = "INTERNAL"

	// Style errors
	ErrStyleSyntax ErrorCode = "STYLE_SYNTAX"

	// Measurement errors
	ErrMeasurement ErrorCode = "MEASUREMENT"

	// Live session errors
	ErrLiveSession ErrorCode = "LIVE_SESSION"

	// Markup errors
	ErrMarkupParse ErrorCode = "MARKUP_PARSE"

	// Theme errors
	ErrThemeLoad     ErrorCode = "THEME_LOAD"
	ErrThemeNotFound ErrorCode = "THEME_NOT_FOUND"

	// Render errors
	ErrRender ErrorCode = "RENDER"
)

// GlintError represents a structured error with code and details
type GlintError struct {
	Code    ErrorCode
	Message string
	Details map[string]interface{}
	Wrapped error
}

// Error implements the error interface
func (e *GlintError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Wrapped)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap implements the errors.Unwrap interface
func (e *GlintError) Unwrap() error {
	return e.Wrapped
}

// Is implements errors.Is interface
func (e *GlintError) Is(target error) bool {
	var targetErr *GlintError
	if errors.As(target, &targetErr) {
		return e.Code == targetErr.Code
	}
	return false
}

// New creates a new GlintError with the given code and message
func New(code ErrorCode, message string) *GlintError {
	return &GlintError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
	}
}

// Newf creates a new GlintError with a formatted message
func Newf(code ErrorCode, format string, args ...interface{}) *GlintError {
	return &GlintError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
	}
}

// Wrap wraps an existing error with a GlintError
func Wrap(err error, code ErrorCode, message string) *GlintError {
	if err == nil {
		return nil
	}
	return &GlintError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// Wrapf wraps an existing error with a formatted message
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) *GlintError {
	if err == nil {
		return nil
	}
	return &GlintError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// WithDetail adds a detail to the error
func (e *GlintError) WithDetail(key string, value interface{}) *GlintError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// IsErrorCode checks if an error has a specific error code
func IsErrorCode(err error, code ErrorCode) bool {
	var glintErr *GlintError
	if errors.As(err, &glintErr) {
		return glintErr.Code == code
	}
	return false
}

// GetErrorCode returns the error code from an error, or ErrUnknown if not a GlintError
func GetErrorCode(err error) ErrorCode {
	var glintErr *GlintError
	if errors.As(err, &glintErr) {
		return glintErr.Code
	}
	return ErrUnknown
}
