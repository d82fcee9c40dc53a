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

	// Argument errors
	ErrFlagParse ErrorCode = "FLAG_PARSE"

	// Configuration errors
	ErrConfigLoad    ErrorCode = "CONFIG_LOAD"
	ErrConfigParse   ErrorCode = "CONFIG_PARSE"
	ErrConfigInvalid ErrorCode = "CONFIG_INVALID"

	// Override errors
	ErrOverrideType ErrorCode = "OVERRIDE_TYPE"
)

// Detail keys shared by the error producers and the diagnostics printer.
const (
	DetailViolations = "violations"
	DetailPath       = "path"
	DetailFlag       = "flag"
	DetailDirective  = "directive"
)

// ExitUsage is the process status for configuration mistakes the user can fix.
const ExitUsage = 2

// XpileError represents a structured error with code and details
type XpileError struct {
	Code    ErrorCode
	Message string
	Details map[string]interface{}
	Wrapped error
}

// Error implements the error interface
func (e *XpileError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Wrapped)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap implements the errors.Unwrap interface
func (e *XpileError) Unwrap() error {
	return e.Wrapped
}

// Is implements errors.Is interface
func (e *XpileError) Is(target error) bool {
	var targetErr *XpileError
	if errors.As(target, &targetErr) {
		return e.Code == targetErr.Code
	}
	return false
}

// Violations returns the collected validation messages, if any.
func (e *XpileError) Violations() []string {
	v, _ := e.Details[DetailViolations].([]string)
	return v
}

// New creates a new XpileError with the given code and message
func New(code ErrorCode, message string) *XpileError {
	return &XpileError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
	}
}

// Newf creates a new XpileError with a formatted message
func Newf(code ErrorCode, format string, args ...interface{}) *XpileError {
	return &XpileError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
	}
}

// Wrap wraps an existing error with an XpileError
func Wrap(err error, code ErrorCode, message string) *XpileError {
	if err == nil {
		return nil
	}
	return &XpileError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// Wrapf wraps an existing error with a formatted message
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) *XpileError {
	if err == nil {
		return nil
	}
	return &XpileError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// Validation bundles every violated rule into a single CONFIG_INVALID error.
// It returns nil when there are no violations.
func Validation(violations []string) *XpileError {
	if len(violations) == 0 {
		return nil
	}
	msgs := make([]string, len(violations))
	copy(msgs, violations)
	return New(ErrConfigInvalid, fmt.Sprintf("%d option constraint(s) violated", len(msgs))).
		WithDetail(DetailViolations, msgs)
}

// WithDetail adds a detail to the error
func (e *XpileError) WithDetail(key string, value interface{}) *XpileError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// WithDetails adds multiple details to the error
func (e *XpileError) WithDetails(details map[string]interface{}) *XpileError {
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
	var xerr *XpileError
	if errors.As(err, &xerr) {
		return xerr.Code == code
	}
	return false
}

// GetErrorCode returns the error code from an error, or ErrUnknown if not an XpileError
func GetErrorCode(err error) ErrorCode {
	var xerr *XpileError
	if errors.As(err, &xerr) {
		return xerr.Code
	}
	return ErrUnknown
}

// GetErrorDetails returns the details from an error, or nil if not an XpileError
func GetErrorDetails(err error) map[string]interface{} {
	var xerr *XpileError
	if errors.As(err, &xerr) {
		return xerr.Details
	}
	return nil
}

// Messages returns the user-facing lines for err: every violation of a
// validation error, otherwise the single message.
func Messages(err error) []string {
	if err == nil {
		return nil
	}
	var xerr *XpileError
	if !errors.As(err, &xerr) {
		return []string{err.Error()}
	}
	if v := xerr.Violations(); len(v) > 0 {
		return v
	}
	return []string{xerr.Message}
}

// IsUserError reports whether err is an input problem rather than a bug.
func IsUserError(err error) bool {
	switch GetErrorCode(err) {
	case ErrFlagParse, ErrConfigLoad, ErrConfigParse, ErrConfigInvalid, ErrOverrideType:
		return true
	}
	return false
}

// ExitCode maps err to a process exit status.
func ExitCode(err error) int {
	if err == nil {
		return 0
	}
	if IsUserError(err) {
		return ExitUsage
	}
	return 1
}
