package domain

// TaskStatus is the is_active code stored on a task
type TaskStatus int64

const (
	StatusClosed TaskStatus = 0
	StatusOpen   TaskStatus = 1
)

// IsOpen reports whether the status is exactly StatusOpen. Every other code,
// including unexpected ones, counts as closed.
func (s TaskStatus) IsOpen() bool {
	return s == StatusOpen
}

// TaskRow is a task joined with the names of everything it references.
// This is a pure domain model without database-specific concerns.
// Epoch fields hold unix seconds, 0 meaning "not set" (DateCreation is always set).
type TaskRow struct {
	ID               int64
	ProjectName      *string
	Status           TaskStatus
	CategoryName     *string
	ColumnTitle      *string
	Position         int64
	ColorID          string
	DateDue          int64
	CreatorUsername  *string
	AssigneeUsername *string
	Score            int64
	Title            string
	DateCreation     int64
	DateModification int64
	DateCompleted    int64
}

// TaskDetail is the resolved view of a task used by notifications
type TaskDetail struct {
	ID               int64
	Title            string
	Description      string
	ProjectName      string
	AssigneeUsername string
	AssigneeName     string
}

// HasAssignee reports whether the task is assigned to someone
func (d TaskDetail) HasAssignee() bool {
	return d.AssigneeUsername != ""
}

// AssigneeDisplayName prefers the full name and falls back to the username
func (d TaskDetail) AssigneeDisplayName() string {
	if d.AssigneeName != "" {
		return d.AssigneeName
	}
	return d.AssigneeUsername
}

// Project is a board the export is scoped to
type Project struct {
	ID   int64
	Name string
}
