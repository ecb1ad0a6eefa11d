package validation

import (
	"testing"
)

func TestExportValidator_ValidateExportRequest(t *testing.T) {
	validator := NewExportValidator()

	tests := []struct {
		name           string
		projectID      int64
		from           string
		to             string
		expectedFields []string
	}{
		{"Valid dates", 7, "2024-03-01", "2024-03-01", nil},
		{"Valid epochs", 7, "1709251200", "1709337600", nil},
		{"Zero project", 0, "2024-03-01", "2024-03-01", []string{"project_id"}},
		{"Missing from", 7, "", "2024-03-01", []string{"from"}},
		{"Blank to", 7, "2024-03-01", "  ", []string{"to"}},
		{"Everything wrong", -1, "", "", []string{"project_id", "from", "to"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validator.ValidateExportRequest(tt.projectID, tt.from, tt.to)

			if len(tt.expectedFields) == 0 {
				if err != nil {
					t.Errorf("ValidateExportRequest() expected no error but got %v", err)
				}
				return
			}

			validationErr, ok := err.(*ValidationError)
			if !ok {
				t.Fatalf("ValidateExportRequest() expected ValidationError but got %T", err)
			}
			if len(validationErr.Errors) != len(tt.expectedFields) {
				t.Fatalf("Expected %d errors, got %d: %v", len(tt.expectedFields), len(validationErr.Errors), err)
			}
			for i, field := range tt.expectedFields {
				if validationErr.Errors[i].Field != field {
					t.Errorf("Error %d: expected field %q, got %q", i, field, validationErr.Errors[i].Field)
				}
			}
		})
	}
}

func TestExportValidator_ValidateTaskID(t *testing.T) {
	validator := NewExportValidator()

	if err := validator.ValidateTaskID(42); err != nil {
		t.Errorf("ValidateTaskID(42) unexpected error: %v", err)
	}

	err := validator.ValidateTaskID(0)
	validationErr, ok := err.(*ValidationError)
	if !ok {
		t.Fatalf("ValidateTaskID(0) expected ValidationError but got %T", err)
	}
	if validationErr.Errors[0].Type != ErrorTypeInvalidValue {
		t.Errorf("Expected %v, got %v", ErrorTypeInvalidValue, validationErr.Errors[0].Type)
	}
}

func TestExportValidator_ValidateFormat(t *testing.T) {
	validator := NewExportValidator()

	if err := validator.ValidateFormat(FormatTable); err != nil {
		t.Errorf("ValidateFormat(table) unexpected error: %v", err)
	}
	if err := validator.ValidateFormat("pdf"); err == nil {
		t.Error("ValidateFormat(pdf) expected an error")
	}
}
