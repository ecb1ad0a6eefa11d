package validation

// ExportValidator validates export and notification requests before they
// reach storage
type ExportValidator struct {
	validator *Validator
}

// NewExportValidator creates a new export validator
func NewExportValidator() *ExportValidator {
	return &ExportValidator{
		validator: NewValidator(),
	}
}

// ValidateExportRequest checks the project and both date bounds. Bounds are
// only checked for presence; parsing happens in the date normalizer.
func (ev *ExportValidator) ValidateExportRequest(projectID int64, from, to string) error {
	validationError := NewValidationError()

	if !ev.validator.IsValidID(projectID) {
		validationError.AddInvalidValueError("project_id", projectID, "must be a positive integer")
	}
	if !ev.validator.IsNonEmptyString(from) {
		validationError.AddRequiredError("from")
	}
	if !ev.validator.IsNonEmptyString(to) {
		validationError.AddRequiredError("to")
	}

	return validationError.ErrOrNil()
}

// ValidateTaskID validates a task ID
func (ev *ExportValidator) ValidateTaskID(id int64) error {
	if !ev.validator.IsValidID(id) {
		validationError := NewValidationError()
		validationError.AddInvalidValueError("task_id", id, "must be a positive integer")
		return validationError
	}
	return nil
}

// ValidateFormat validates the output format of the export command
func (ev *ExportValidator) ValidateFormat(format string) error {
	if !ev.validator.IsSupportedFormat(format) {
		validationError := NewValidationError()
		validationError.AddInvalidFormatError("format", format, FormatCSV+" or "+FormatTable)
		return validationError
	}
	return nil
}
