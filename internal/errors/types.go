package errors

import (
	"fmt"
)

// ErrorType represents the category of error
type ErrorType int

const (
	ErrorTypeValidation ErrorType = iota
	ErrorTypeNotFound
	ErrorTypeDatabase
	ErrorTypeInvalidInput
	ErrorTypeTimeout
	ErrorTypeParse
	ErrorTypeDataIntegrity
)

var errorTypeNames = [...]string{
	ErrorTypeValidation:    "validation",
	ErrorTypeNotFound:      "not_found",
	ErrorTypeDatabase:      "database",
	ErrorTypeInvalidInput:  "invalid_input",
	ErrorTypeTimeout:       "timeout",
	ErrorTypeParse:         "parse",
	ErrorTypeDataIntegrity: "data_integrity",
}

// String returns the snake_case name of the error type
func (et ErrorType) String() string {
	if et < 0 || int(et) >= len(errorTypeNames) {
		return "unknown"
	}
	return errorTypeNames[et]
}

// IsUserError reports whether errors of this type are caused by the caller's
// input rather than by the system
func (et ErrorType) IsUserError() bool {
	switch et {
	case ErrorTypeValidation, ErrorTypeNotFound, ErrorTypeInvalidInput, ErrorTypeParse:
		return true
	default:
		return false
	}
}

// Stable error codes reported to CLI and HTTP clients
const (
	CodeValidation   = "VALIDATION_FAILED"
	CodeNotFound     = "NOT_FOUND"
	CodeDatabase     = "DATABASE_ERROR"
	CodeInvalidInput = "INVALID_INPUT"
	CodeTimeout      = "TIMEOUT"
	CodeParse        = "PARSE_ERROR"
	CodeUnknownColor = "UNKNOWN_COLOR"
	CodeUnknown      = "UNKNOWN_ERROR"
)

// ContextExpected holds the input format a parse error should point users to
const ContextExpected = "expected"

// AppError represents a structured application error
type AppError struct {
	Type    ErrorType
	Message string
	Code    string
	Cause   error
	Context map[string]interface{}
}

func (e *AppError) Error() string {
	msg := e.Type.String() + ": " + e.Message
	if e.Cause == nil {
		return msg
	}
	return fmt.Sprintf("%s (caused by: %v)", msg, e.Cause)
}

func (e *AppError) Unwrap() error {
	return e.Cause
}

// Is matches another AppError of the same type and code, so the sentinels
// below work with errors.Is
func (e *AppError) Is(target error) bool {
	t, ok := target.(*AppError)
	return ok && e.Type == t.Type && e.Code == t.Code
}

// IsType checks if this error is of the specified type
func (e *AppError) IsType(errorType ErrorType) bool {
	return e.Type == errorType
}

// WithContext records a key/value pair on the error and returns it
func (e *AppError) WithContext(key string, value interface{}) *AppError {
	if e.Context == nil {
		e.Context = make(map[string]interface{})
	}
	e.Context[key] = value
	return e
}

// GetContext retrieves a value recorded with WithContext
func (e *AppError) GetContext(key string) (interface{}, bool) {
	value, ok := e.Context[key]
	return value, ok
}
