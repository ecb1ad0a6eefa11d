package validation

import (
	"strings"
)

// Supported output formats of the export command
const (
	FormatCSV   = "csv"
	FormatTable = "table"
)

// Validator provides common validation utilities
type Validator struct{}

// NewValidator creates a new validator instance
func NewValidator() *Validator {
	return &Validator{}
}

// IsNonEmptyString checks if a string is not empty after trimming whitespace
func (v *Validator) IsNonEmptyString(s string) bool {
	return strings.TrimSpace(s) != ""
}

// IsValidID checks if a record ID is valid (positive)
func (v *Validator) IsValidID(id int64) bool {
	return id > 0
}

// IsSupportedFormat checks if format names an export output format
func (v *Validator) IsSupportedFormat(format string) bool {
	switch strings.ToLower(format) {
	case FormatCSV, FormatTable:
		return true
	default:
		return false
	}
}
