package validation

import (
	"fmt"
	"strings"
)

// ValidationErrorType classifies a rejected request field
type ValidationErrorType string

const (
	ErrorTypeRequired      ValidationErrorType = "required"
	ErrorTypeInvalidFormat ValidationErrorType = "invalid_format"
	ErrorTypeInvalidValue  ValidationErrorType = "invalid_value"
)

// FieldError is one problem with one request field
type FieldError struct {
	Field   string
	Type    ValidationErrorType
	Message string
	Value   interface{}
}

func (fe *FieldError) Error() string {
	return fmt.Sprintf("validation error for field '%s': %s", fe.Field, fe.Message)
}

// ValidationError collects every problem found in one request, so a caller
// sees all of them at once instead of fixing flags one by one.
type ValidationError struct {
	Errors []FieldError
}

func NewValidationError() *ValidationError {
	return &ValidationError{Errors: []FieldError{}}
}

func (ve *ValidationError) Error() string {
	if len(ve.Errors) == 0 {
		return "validation error"
	}
	if len(ve.Errors) == 1 {
		return ve.Errors[0].Error()
	}
	return "multiple validation errors: " + ve.join("; ", "", (*FieldError).Error)
}

// GetUserFriendlyMessage returns a message suitable for a terminal or an HTTP body
func (ve *ValidationError) GetUserFriendlyMessage() string {
	switch len(ve.Errors) {
	case 0:
		return "Input validation failed"
	case 1:
		return ve.Errors[0].Message
	}
	return "Multiple validation errors occurred:\n" +
		ve.join("\n", "- ", func(fe *FieldError) string { return fe.Message })
}

func (ve *ValidationError) join(sep, prefix string, text func(*FieldError) string) string {
	parts := make([]string, len(ve.Errors))
	for i := range ve.Errors {
		parts[i] = prefix + text(&ve.Errors[i])
	}
	return strings.Join(parts, sep)
}

// IsValidationError checks if an error is a ValidationError
func IsValidationError(err error) bool {
	_, ok := err.(*ValidationError)
	return ok
}

// ErrOrNil returns ve when it holds errors, nil otherwise
func (ve *ValidationError) ErrOrNil() error {
	if len(ve.Errors) == 0 {
		return nil
	}
	return ve
}

func (ve *ValidationError) add(field string, kind ValidationErrorType, message string, value interface{}) {
	ve.Errors = append(ve.Errors, FieldError{Field: field, Type: kind, Message: message, Value: value})
}

// AddRequiredError records a missing field
func (ve *ValidationError) AddRequiredError(field string) {
	ve.add(field, ErrorTypeRequired, field+" is required", nil)
}

// AddInvalidFormatError records a value outside the accepted set, e.g. an
// unknown export format
func (ve *ValidationError) AddInvalidFormatError(field string, value interface{}, expected string) {
	ve.add(field, ErrorTypeInvalidFormat, fmt.Sprintf("%s has invalid format, expected: %s", field, expected), value)
}

// AddInvalidValueError records a well-formed value that is not acceptable,
// e.g. a non-positive id
func (ve *ValidationError) AddInvalidValueError(field string, value interface{}, reason string) {
	ve.add(field, ErrorTypeInvalidValue, fmt.Sprintf("%s has invalid value: %s", field, reason), value)
}
