package errors

import (
	"errors"
	"fmt"
)

// Sentinel values usable with errors.Is; matching is done on Type and Code.
var (
	ErrParse        = &AppError{Type: ErrorTypeParse, Code: CodeParse}
	ErrUnknownColor = &AppError{Type: ErrorTypeDataIntegrity, Code: CodeUnknownColor}
	ErrNotFound     = &AppError{Type: ErrorTypeNotFound, Code: CodeNotFound}
)

// newError builds an AppError whose context is filled from alternating
// key/value pairs
func newError(errorType ErrorType, code, message string, cause error, kv ...interface{}) *AppError {
	e := &AppError{
		Type:    errorType,
		Message: message,
		Code:    code,
		Cause:   cause,
		Context: make(map[string]interface{}, len(kv)/2),
	}
	for i := 0; i+1 < len(kv); i += 2 {
		if key, ok := kv[i].(string); ok {
			e.Context[key] = kv[i+1]
		}
	}
	return e
}

// NewValidationError wraps the field errors of a rejected request
func NewValidationError(message string, cause error) *AppError {
	return newError(ErrorTypeValidation, CodeValidation, message, cause)
}

// NewNotFoundError reports a missing project or task
func NewNotFoundError(resource string, identifier string) *AppError {
	return newError(ErrorTypeNotFound, CodeNotFound,
		fmt.Sprintf("%s not found: %s", resource, identifier), nil,
		"resource", resource, "identifier", identifier)
}

// NewDatabaseError wraps a failed query or connection
func NewDatabaseError(operation string, cause error) *AppError {
	return newError(ErrorTypeDatabase, CodeDatabase,
		"database operation failed: "+operation, cause,
		"operation", operation)
}

// NewInvalidInputError reports a malformed argument such as a non-numeric id
func NewInvalidInputError(field string, value interface{}, reason string) *AppError {
	return newError(ErrorTypeInvalidInput, CodeInvalidInput,
		fmt.Sprintf("invalid input for %s: %s", field, reason), nil,
		"field", field, "value", value, "reason", reason)
}

// NewTimeoutError reports an operation that ran past its deadline
func NewTimeoutError(operation string, timeout interface{}) *AppError {
	return newError(ErrorTypeTimeout, CodeTimeout,
		"operation timed out: "+operation, nil,
		"operation", operation, "timeout", timeout)
}

// NewParseError creates an error for a date bound that could not be parsed
func NewParseError(field string, value string, cause error) *AppError {
	return newError(ErrorTypeParse, CodeParse,
		fmt.Sprintf("unable to parse %s: %q", field, value), cause,
		"field", field, "value", value)
}

// NewUnknownColorError creates an error for a task that references a color
// missing from the color catalog.
func NewUnknownColorError(colorID string, taskID int64) *AppError {
	return newError(ErrorTypeDataIntegrity, CodeUnknownColor,
		fmt.Sprintf("task %d references unknown color %q", taskID, colorID), nil,
		"color_id", colorID, "task_id", taskID)
}

// WrapError wraps err under the given type; the code is the type name
func WrapError(err error, errorType ErrorType, message string) *AppError {
	return newError(errorType, errorType.String(), message, err)
}

// IsAppError checks if the error is an AppError
func IsAppError(err error) bool {
	_, ok := AsAppError(err)
	return ok
}

// AsAppError finds the first AppError in err's chain
func AsAppError(err error) (*AppError, bool) {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr, true
	}
	return nil, false
}

// IsErrorType checks if the error is of the specified type
func IsErrorType(err error, errorType ErrorType) bool {
	appErr, ok := AsAppError(err)
	return ok && appErr.IsType(errorType)
}

// userMessager is implemented by causes that carry their own friendly message
type userMessager interface {
	GetUserFriendlyMessage() string
}

// Messages shown instead of the internal message for system errors
var systemMessages = map[ErrorType]string{
	ErrorTypeDatabase: "A database error occurred. Please try again.",
	ErrorTypeTimeout:  "The operation timed out. Please try again.",
}

const unexpectedMessage = "An unexpected error occurred. Please try again."

// GetUserMessage returns the message shown to a CLI user or HTTP client.
// User errors keep their own message; system errors get a generic one.
func GetUserMessage(err error) string {
	appErr, ok := AsAppError(err)
	if !ok {
		return err.Error()
	}

	switch {
	case appErr.Type == ErrorTypeValidation:
		var um userMessager
		if errors.As(appErr.Cause, &um) {
			return appErr.Message + ": " + um.GetUserFriendlyMessage()
		}
		return appErr.Message
	case appErr.Type == ErrorTypeParse:
		if expected, ok := appErr.GetContext(ContextExpected); ok {
			return fmt.Sprintf("%s (expected %v)", appErr.Message, expected)
		}
		return appErr.Message
	case appErr.Type.IsUserError():
		return appErr.Message
	case appErr.Type == ErrorTypeDataIntegrity:
		return "The export was aborted because the data is inconsistent: " + appErr.Message
	}

	if msg, ok := systemMessages[appErr.Type]; ok {
		return msg
	}
	return unexpectedMessage
}

// GetErrorCode returns the error code for the error
func GetErrorCode(err error) string {
	if appErr, ok := AsAppError(err); ok {
		return appErr.Code
	}
	return CodeUnknown
}

// ShouldLogError reports whether err is a system error worth logging.
// Errors outside the AppError model are always logged.
func ShouldLogError(err error) bool {
	appErr, ok := AsAppError(err)
	return !ok || !appErr.Type.IsUserError()
}
