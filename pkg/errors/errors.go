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

	// Configuration errors
	ErrConfigLoad  ErrorCode = "CONFIG_LOAD"
	ErrConfigParse ErrorCode = "CONFIG_PARSE"
	ErrConfigValid ErrorCode = "CONFIG_INVALID"

	// Tree file errors
	ErrTreeParse   ErrorCode = "TREE_PARSE"
	ErrTreeInvalid ErrorCode = "TREE_INVALID"

	// Session errors
	ErrConnect   ErrorCode = "CONNECT"
	ErrAuth      ErrorCode = "AUTH"
	ErrHostKey   ErrorCode = "HOST_KEY"
	ErrTransport ErrorCode = "TRANSPORT"

	// Reconciliation errors
	ErrDirCreate    ErrorCode = "DIR_CREATE"
	ErrFileCreate   ErrorCode = "FILE_CREATE"
	ErrEntryMissing ErrorCode = "ENTRY_MISSING"
	ErrSymlinkFound ErrorCode = "SYMLINK_FOUND"
)

// LayoutError represents a structured error with code and details
type LayoutError struct {
	Code    ErrorCode
	Message string
	Details map[string]interface{}
	Wrapped error
}

// Error implements the error interface
func (e *LayoutError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Wrapped)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap implements the errors.Unwrap interface
func (e *LayoutError) Unwrap() error {
	return e.Wrapped
}

// Is implements errors.Is interface
func (e *LayoutError) Is(target error) bool {
	var targetErr *LayoutError
	if errors.As(target, &targetErr) {
		return e.Code == targetErr.Code
	}
	return false
}

// New creates a new LayoutError with the given code and message
func New(code ErrorCode, message string) *LayoutError {
	return &LayoutError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
	}
}

// Newf creates a new LayoutError with a formatted message
func Newf(code ErrorCode, format string, args ...interface{}) *LayoutError {
	return &LayoutError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
	}
}

// Wrap wraps an existing error with a LayoutError
func Wrap(err error, code ErrorCode, message string) *LayoutError {
	if err == nil {
		return nil
	}
	return &LayoutError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// Wrapf wraps an existing error with a formatted message
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) *LayoutError {
	if err == nil {
		return nil
	}
	return &LayoutError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// WithDetail adds a detail to the error
func (e *LayoutError) WithDetail(key string, value interface{}) *LayoutError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// WithPath records the remote path the error refers to
func (e *LayoutError) WithPath(path string) *LayoutError {
	return e.WithDetail("path", path)
}

// IsErrorCode checks if an error has a specific error code
func IsErrorCode(err error, code ErrorCode) bool {
	var layoutErr *LayoutError
	if errors.As(err, &layoutErr) {
		return layoutErr.Code == code
	}
	return false
}

// GetErrorCode returns the error code from an error, or ErrUnknown if not a LayoutError
func GetErrorCode(err error) ErrorCode {
	var layoutErr *LayoutError
	if errors.As(err, &layoutErr) {
		return layoutErr.Code
	}
	return ErrUnknown
}

// GetErrorDetails returns the details from an error, or nil if not a LayoutError
func GetErrorDetails(err error) map[string]interface{} {
	var layoutErr *LayoutError
	if errors.As(err, &layoutErr) {
		return layoutErr.Details
	}
	return nil
}

// GetPath returns the "path" detail of an error, or "" when it has none
func GetPath(err error) string {
	details := GetErrorDetails(err)
	if details == nil {
		return ""
	}
	p, _ := details["path"].(string)
	return p
}
