package errors

import (
	"encoding/json"
	"fmt"
)

// ErrorCode represents a specific error condition
type ErrorCode string

const (
	// Configuration errors
	ErrCodeConfigCorrupt ErrorCode = "CONFIG_CORRUPT"
	ErrCodeConfigWrite   ErrorCode = "CONFIG_WRITE"

	// Precondition errors, raised before any process is spawned
	ErrCodeMissingExecutable ErrorCode = "MISSING_EXECUTABLE"
	ErrCodeMissingInputFile  ErrorCode = "MISSING_INPUT_FILE"

	// Execution errors
	ErrCodeExecutionError      ErrorCode = "EXECUTION_ERROR"
	ErrCodeNonZeroExit         ErrorCode = "NON_ZERO_EXIT"
	ErrCodeExecutionInProgress ErrorCode = "EXECUTION_IN_PROGRESS"
	ErrCodeCanceled            ErrorCode = "CANCELED"

	// General errors
	ErrCodeInternal     ErrorCode = "INTERNAL_ERROR"
	ErrCodeInvalidInput ErrorCode = "INVALID_INPUT"
)

// ToolError represents a structured error with context
type ToolError struct {
	Code    ErrorCode              `json:"code"`
	Message string                 `json:"message"`
	Details map[string]interface{} `json:"details,omitempty"`
	Cause   error                  `json:"-"`
}

// Error implements the error interface
func (e *ToolError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (caused by: %v)", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap implements the errors.Unwrap interface
func (e *ToolError) Unwrap() error {
	return e.Cause
}

// WithDetail adds a detail to the error
func (e *ToolError) WithDetail(key string, value interface{}) *ToolError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// ToJSON converts the error to JSON
func (e *ToolError) ToJSON() string {
	data, _ := json.MarshalIndent(e, "", "  ")
	return string(data)
}

// New creates a new ToolError
func New(code ErrorCode, message string) *ToolError {
	return &ToolError{
		Code:    code,
		Message: message,
	}
}

// Wrap wraps an existing error with a ToolError
func Wrap(err error, code ErrorCode, message string) *ToolError {
	return &ToolError{
		Code:    code,
		Message: message,
		Cause:   err,
	}
}

// Is checks if an error is a specific ToolError code
func Is(err error, code ErrorCode) bool {
	if err == nil {
		return false
	}

	toolErr, ok := err.(*ToolError)
	if !ok {
		// Try to unwrap
		if unwrapper, ok := err.(interface{ Unwrap() error }); ok {
			return Is(unwrapper.Unwrap(), code)
		}
		return false
	}

	return toolErr.Code == code
}

// GetCode extracts the error code from an error
func GetCode(err error) ErrorCode {
	if err == nil {
		return ""
	}

	toolErr, ok := err.(*ToolError)
	if !ok {
		// Try to unwrap
		if unwrapper, ok := err.(interface{ Unwrap() error }); ok {
			return GetCode(unwrapper.Unwrap())
		}
		return ""
	}

	return toolErr.Code
}
