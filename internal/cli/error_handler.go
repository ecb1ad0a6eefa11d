package cli

import (
	"fmt"

	"task-export/internal/errors"
	"task-export/internal/logging"
	"task-export/internal/validation"
)

// ErrorHandler provides centralized error handling for command handlers
type ErrorHandler struct{}

// NewErrorHandler creates a new error handler
func NewErrorHandler() *ErrorHandler {
	return &ErrorHandler{}
}

// Handle logs system errors when debugging and returns err prefixed with
// the failed operation, using the message meant for users when there is one
func (eh *ErrorHandler) Handle(operation string, err error) error {
	if errors.ShouldLogError(err) {
		logging.Debugf("%s: %v\n", operation, err)
	}

	if msg, ok := userMessage(err); ok {
		return fmt.Errorf("failed to %s: %s", operation, msg)
	}
	return fmt.Errorf("failed to %s: %w", operation, err)
}

// HandleSimple is Handle without the operation prefix or logging
func (eh *ErrorHandler) HandleSimple(err error) error {
	if msg, ok := userMessage(err); ok {
		return fmt.Errorf("%s", msg)
	}
	return err
}

// userMessage reports the message for a bare validator result or an AppError
func userMessage(err error) (string, bool) {
	if ve, ok := err.(*validation.ValidationError); ok {
		return ve.GetUserFriendlyMessage(), true
	}
	if errors.IsAppError(err) {
		return errors.GetUserMessage(err), true
	}
	return "", false
}

// IsValidationError checks if an error is a validation error
func (eh *ErrorHandler) IsValidationError(err error) bool {
	if validation.IsValidationError(err) {
		return true
	}
	return errors.IsErrorType(err, errors.ErrorTypeValidation)
}

// IsNotFoundError checks if an error is a not found error
func (eh *ErrorHandler) IsNotFoundError(err error) bool {
	return errors.IsErrorType(err, errors.ErrorTypeNotFound)
}

// IsDatabaseError checks if an error is a database error
func (eh *ErrorHandler) IsDatabaseError(err error) bool {
	return errors.IsErrorType(err, errors.ErrorTypeDatabase)
}

// IsDataIntegrityError checks if an export was aborted on inconsistent data
func (eh *ErrorHandler) IsDataIntegrityError(err error) bool {
	return errors.IsErrorType(err, errors.ErrorTypeDataIntegrity)
}

// GetErrorCode returns the error code for structured errors
func (eh *ErrorHandler) GetErrorCode(err error) string {
	return errors.GetErrorCode(err)
}
