package errors

import (
	"errors"
	"testing"
)

func TestErrorType_String(t *testing.T) {
	names := map[ErrorType]string{
		ErrorTypeValidation:    "validation",
		ErrorTypeNotFound:      "not_found",
		ErrorTypeDatabase:      "database",
		ErrorTypeInvalidInput:  "invalid_input",
		ErrorTypeTimeout:       "timeout",
		ErrorTypeParse:         "parse",
		ErrorTypeDataIntegrity: "data_integrity",
		ErrorType(-1):          "unknown",
		ErrorType(99):          "unknown",
	}

	for et, want := range names {
		if got := et.String(); got != want {
			t.Errorf("ErrorType(%d).String() = %q, want %q", int(et), got, want)
		}
	}
}

func TestErrorType_IsUserError(t *testing.T) {
	user := []ErrorType{ErrorTypeValidation, ErrorTypeNotFound, ErrorTypeInvalidInput, ErrorTypeParse}
	system := []ErrorType{ErrorTypeDatabase, ErrorTypeTimeout, ErrorTypeDataIntegrity}

	for _, et := range user {
		if !et.IsUserError() {
			t.Errorf("%s should be a user error", et)
		}
	}
	for _, et := range system {
		if et.IsUserError() {
			t.Errorf("%s should not be a user error", et)
		}
	}
}

func TestAppError_Error(t *testing.T) {
	withoutCause := NewParseError("date", "soon", nil)
	if got, want := withoutCause.Error(), `parse: unable to parse date: "soon"`; got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}

	withCause := NewDatabaseError("fetch tasks", errors.New("no such table: tasks"))
	if got, want := withCause.Error(), "database: database operation failed: fetch tasks (caused by: no such table: tasks)"; got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
}

func TestAppError_Unwrap(t *testing.T) {
	cause := errors.New("no such table: tasks")
	err := NewDatabaseError("fetch tasks", cause)

	if !errors.Is(err, cause) {
		t.Errorf("errors.Is should reach the cause through Unwrap")
	}
}

func TestAppError_Is(t *testing.T) {
	err := NewParseError("date", "soon", nil)

	tests := []struct {
		name   string
		target error
		want   bool
	}{
		{"same type and code", &AppError{Type: ErrorTypeParse, Code: CodeParse}, true},
		{"same type other code", &AppError{Type: ErrorTypeParse, Code: "OTHER"}, false},
		{"other type same code", &AppError{Type: ErrorTypeValidation, Code: CodeParse}, false},
		{"plain error", errors.New("parse"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := err.Is(tt.target); got != tt.want {
				t.Errorf("Is() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestAppError_Context(t *testing.T) {
	err := &AppError{Type: ErrorTypeParse}

	if _, ok := err.GetContext("bound"); ok {
		t.Errorf("GetContext() on an empty error should report a missing key")
	}

	if got := err.WithContext("bound", "to"); got != err {
		t.Errorf("WithContext() should return the receiver")
	}
	if v, ok := err.GetContext("bound"); !ok || v != "to" {
		t.Errorf("GetContext(bound) = %v, %v; want to, true", v, ok)
	}
	if !err.IsType(ErrorTypeParse) || err.IsType(ErrorTypeDatabase) {
		t.Errorf("IsType() does not match the error type")
	}
}
