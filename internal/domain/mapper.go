package domain

import (
	"task-export/internal/repository/store"
)

// TaskRowMapper handles conversion from database export rows to domain rows.
type TaskRowMapper struct{}

// NewTaskRowMapper creates a new TaskRowMapper instance.
func NewTaskRowMapper() *TaskRowMapper {
	return &TaskRowMapper{}
}

// FromDatabase converts a database TaskRow to a domain TaskRow.
func (m *TaskRowMapper) FromDatabase(dbRow store.TaskRow) TaskRow {
	return TaskRow{
		ID:               dbRow.ID,
		ProjectName:      dbRow.ProjectName,
		Status:           TaskStatus(dbRow.IsActive),
		CategoryName:     dbRow.CategoryName,
		ColumnTitle:      dbRow.ColumnTitle,
		Position:         dbRow.Position,
		ColorID:          dbRow.ColorID,
		DateDue:          dbRow.DateDue,
		CreatorUsername:  dbRow.CreatorUsername,
		AssigneeUsername: dbRow.AssigneeUsername,
		Score:            dbRow.Score,
		Title:            dbRow.Title,
		DateCreation:     dbRow.DateCreation,
		DateModification: dbRow.DateModification,
		DateCompleted:    dbRow.DateCompleted,
	}
}

// FromDatabaseSlice converts database rows to domain rows, keeping their order.
func (m *TaskRowMapper) FromDatabaseSlice(dbRows []*store.TaskRow) []TaskRow {
	rows := make([]TaskRow, len(dbRows))
	for i, row := range dbRows {
		rows[i] = m.FromDatabase(*row)
	}
	return rows
}

// TaskDetailMapper handles conversion of notification views.
type TaskDetailMapper struct{}

// NewTaskDetailMapper creates a new TaskDetailMapper instance.
func NewTaskDetailMapper() *TaskDetailMapper {
	return &TaskDetailMapper{}
}

// FromDatabase converts a database TaskDetail to a domain TaskDetail.
// Missing references become empty strings.
func (m *TaskDetailMapper) FromDatabase(dbDetail store.TaskDetail) TaskDetail {
	return TaskDetail{
		ID:               dbDetail.ID,
		Title:            dbDetail.Title,
		Description:      dbDetail.Description,
		ProjectName:      deref(dbDetail.ProjectName),
		AssigneeUsername: deref(dbDetail.AssigneeUsername),
		AssigneeName:     deref(dbDetail.AssigneeName),
	}
}

// ProjectMapper handles conversion of projects.
type ProjectMapper struct{}

// NewProjectMapper creates a new ProjectMapper instance.
func NewProjectMapper() *ProjectMapper {
	return &ProjectMapper{}
}

// FromDatabase converts a database Project to a domain Project.
func (m *ProjectMapper) FromDatabase(dbProject store.Project) Project {
	return Project{ID: dbProject.ID, Name: dbProject.Name}
}

// Mapper provides a unified interface for all mapping operations.
type Mapper struct {
	TaskRow    *TaskRowMapper
	TaskDetail *TaskDetailMapper
	Project    *ProjectMapper
}

// NewMapper creates a new Mapper instance with all sub-mappers.
func NewMapper() *Mapper {
	return &Mapper{
		TaskRow:    NewTaskRowMapper(),
		TaskDetail: NewTaskDetailMapper(),
		Project:    NewProjectMapper(),
	}
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
