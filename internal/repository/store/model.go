package store

// TaskRow is one row of the export join: a task with the names of the
// project, category, column, creator and assignee it references.
// Nullable columns use pointers; epoch columns use 0 for "not set".
type TaskRow struct {
	ID               int64
	ProjectName      *string
	IsActive         int64
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

// TaskDetail carries the fields needed to render task notifications
type TaskDetail struct {
	ID               int64
	Title            string
	Description      string
	ProjectName      *string
	AssigneeUsername *string
	AssigneeName     *string
}

// Project represents a row of the projects table
type Project struct {
	ID   int64
	Name string
}

// User represents a row of the users table
type User struct {
	ID       int64
	Username string
	Name     string
}

// Category represents a row of the project_has_categories table
type Category struct {
	ID        int64
	ProjectID int64
	Name      string
}

// Column represents a board column
type Column struct {
	ID        int64
	ProjectID int64
	Title     string
	Position  int64
}

// Task represents a row of the tasks table. Zero foreign keys are stored as NULL.
type Task struct {
	ID               int64
	ProjectID        int64
	Title            string
	Description      string
	IsActive         int64
	CategoryID       int64
	ColumnID         int64
	Position         int64
	ColorID          string
	DateDue          int64
	CreatorID        int64
	OwnerID          int64
	Score            int64
	DateCreation     int64
	DateModification int64
	DateCompleted    int64
}
