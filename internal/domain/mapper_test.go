package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"task-export/internal/repository/store"
)

func strPtr(s string) *string { return &s }

func TestTaskRowMapper_FromDatabase(t *testing.T) {
	mapper := NewTaskRowMapper()
	dbRow := store.TaskRow{
		ID:               4,
		ProjectName:      strPtr("Website"),
		IsActive:         1,
		ColumnTitle:      strPtr("Ready"),
		Position:         2,
		ColorID:          "green",
		DateDue:          1709251200,
		AssigneeUsername: strPtr("alice"),
		Score:            3,
		Title:            "Write docs",
		DateCreation:     1709200000,
	}

	result := mapper.FromDatabase(dbRow)

	expected := TaskRow{
		ID:               4,
		ProjectName:      strPtr("Website"),
		Status:           StatusOpen,
		ColumnTitle:      strPtr("Ready"),
		Position:         2,
		ColorID:          "green",
		DateDue:          1709251200,
		AssigneeUsername: strPtr("alice"),
		Score:            3,
		Title:            "Write docs",
		DateCreation:     1709200000,
	}
	assert.Equal(t, expected, result)
}

func TestTaskRowMapper_FromDatabaseSlice(t *testing.T) {
	mapper := NewTaskRowMapper()
	dbRows := []*store.TaskRow{
		{ID: 9, Title: "Nine", IsActive: 0},
		{ID: 3, Title: "Three", IsActive: 1},
	}

	result := mapper.FromDatabaseSlice(dbRows)

	expected := []TaskRow{
		{ID: 9, Title: "Nine", Status: StatusClosed},
		{ID: 3, Title: "Three", Status: StatusOpen},
	}
	assert.Equal(t, expected, result)
}

func TestTaskRowMapper_FromDatabaseSlice_Empty(t *testing.T) {
	result := NewTaskRowMapper().FromDatabaseSlice(nil)
	assert.Empty(t, result)
}

func TestTaskDetailMapper_FromDatabase(t *testing.T) {
	mapper := NewTaskDetailMapper()

	withAssignee := mapper.FromDatabase(store.TaskDetail{
		ID: 1, Title: "A", ProjectName: strPtr("P"), AssigneeUsername: strPtr("bob"),
	})
	assert.Equal(t, TaskDetail{ID: 1, Title: "A", ProjectName: "P", AssigneeUsername: "bob"}, withAssignee)

	unassigned := mapper.FromDatabase(store.TaskDetail{ID: 2, Title: "B"})
	assert.Equal(t, TaskDetail{ID: 2, Title: "B"}, unassigned)
}

func TestProjectMapper_FromDatabase(t *testing.T) {
	result := NewProjectMapper().FromDatabase(store.Project{ID: 7, Name: "Website"})
	assert.Equal(t, Project{ID: 7, Name: "Website"}, result)
}

func TestNewMapper(t *testing.T) {
	mapper := NewMapper()
	assert.NotNil(t, mapper.TaskRow)
	assert.NotNil(t, mapper.TaskDetail)
	assert.NotNil(t, mapper.Project)
}
