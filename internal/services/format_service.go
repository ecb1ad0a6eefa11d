package services

import (
	"strconv"
	"time"

	"task-export/internal/domain"
	"task-export/internal/errors"
	"task-export/internal/i18n"
)

// rowFormatterImpl implements the RowFormatter interface
type rowFormatterImpl struct {
	colors     ColorCatalog
	translator *i18n.Translator
	location   *time.Location
}

// NewRowFormatter creates a RowFormatter rendering dates in loc
func NewRowFormatter(colors ColorCatalog, tr *i18n.Translator, loc *time.Location) RowFormatter {
	if loc == nil {
		loc = time.Local
	}
	return &rowFormatterImpl{colors: colors, translator: tr, location: loc}
}

// Format converts row into display strings. row is passed by value and
// never modified.
func (f *rowFormatterImpl) Format(row domain.TaskRow) (domain.ExportedRow, error) {
	color, ok := f.colors.Label(row.ColorID)
	if !ok {
		return domain.ExportedRow{}, errors.NewUnknownColorError(row.ColorID, row.ID)
	}

	status := f.translator.T(i18n.StatusClosed)
	if row.Status.IsOpen() {
		status = f.translator.T(i18n.StatusOpen)
	}

	return domain.ExportedRow{
		TaskID:           strconv.FormatInt(row.ID, 10),
		Project:          valueOrEmpty(row.ProjectName),
		Status:           status,
		Category:         valueOrEmpty(row.CategoryName),
		Column:           valueOrEmpty(row.ColumnTitle),
		Position:         strconv.FormatInt(row.Position, 10),
		Color:            color,
		DueDate:          f.optionalDate(row.DateDue),
		Creator:          valueOrEmpty(row.CreatorUsername),
		Assignee:         valueOrEmpty(row.AssigneeUsername),
		Complexity:       optionalInt(row.Score),
		Title:            row.Title,
		CreationDate:     f.date(row.DateCreation),
		ModificationDate: f.optionalDate(row.DateModification),
		CompletionDate:   f.optionalDate(row.DateCompleted),
	}, nil
}

func (f *rowFormatterImpl) date(epoch int64) string {
	return time.Unix(epoch, 0).In(f.location).Format(ISODateLayout)
}

// optionalDate renders zero as absent
func (f *rowFormatterImpl) optionalDate(epoch int64) string {
	if epoch == 0 {
		return ""
	}
	return f.date(epoch)
}

func optionalInt(v int64) string {
	if v == 0 {
		return ""
	}
	return strconv.FormatInt(v, 10)
}

func valueOrEmpty(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

// tableAssemblerImpl implements the TableAssembler interface
type tableAssemblerImpl struct {
	translator *i18n.Translator
}

// NewTableAssembler creates a new TableAssembler instance
func NewTableAssembler(tr *i18n.Translator) TableAssembler {
	return &tableAssemblerImpl{translator: tr}
}

var headerKeys = [domain.ExportColumnCount]string{
	i18n.LabelTaskID,
	i18n.LabelProject,
	i18n.LabelStatus,
	i18n.LabelCategory,
	i18n.LabelColumn,
	i18n.LabelPosition,
	i18n.LabelColor,
	i18n.LabelDueDate,
	i18n.LabelCreator,
	i18n.LabelAssignee,
	i18n.LabelComplexity,
	i18n.LabelTitle,
	i18n.LabelCreationDate,
	i18n.LabelModificationDate,
	i18n.LabelCompletionDate,
}

// Header returns the translated column labels
func (a *tableAssemblerImpl) Header() []string {
	header := make([]string, len(headerKeys))
	for i, key := range headerKeys {
		header[i] = a.translator.T(key)
	}
	return header
}

// Assemble puts the header first, then one record per row in the given order
func (a *tableAssemblerImpl) Assemble(rows []domain.ExportedRow) domain.ExportTable {
	table := make(domain.ExportTable, 0, len(rows)+1)
	table = append(table, a.Header())
	for _, row := range rows {
		table = append(table, row.Values())
	}
	return table
}
