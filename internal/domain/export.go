package domain

// ExportColumnCount is the width of every export row, header included
const ExportColumnCount = 15

// ExportedRow is a TaskRow rendered for display. Field order is the column order.
type ExportedRow struct {
	TaskID           string
	Project          string
	Status           string
	Category         string
	Column           string
	Position         string
	Color            string
	DueDate          string
	Creator          string
	Assignee         string
	Complexity       string
	Title            string
	CreationDate     string
	ModificationDate string
	CompletionDate   string
}

// Values flattens the row in column order
func (r ExportedRow) Values() []string {
	return []string{
		r.TaskID,
		r.Project,
		r.Status,
		r.Category,
		r.Column,
		r.Position,
		r.Color,
		r.DueDate,
		r.Creator,
		r.Assignee,
		r.Complexity,
		r.Title,
		r.CreationDate,
		r.ModificationDate,
		r.CompletionDate,
	}
}

// ExportTable is the header row followed by one value row per task
type ExportTable [][]string

// Header returns the header row, or nil for an empty table
func (t ExportTable) Header() []string {
	if len(t) == 0 {
		return nil
	}
	return t[0]
}

// Rows returns the data rows without the header
func (t ExportTable) Rows() [][]string {
	if len(t) < 2 {
		return nil
	}
	return t[1:]
}
