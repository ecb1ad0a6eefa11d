package cli

import (
	"bytes"
	"context"
	"fmt"
	"testing"
	"time"

	"task-export/internal/api"
	"task-export/internal/config"
	"task-export/internal/domain"
	"task-export/internal/errors"
	"task-export/internal/repository/store"
)

// mockBusinessAPI implements the BusinessAPI interface for testing
type mockBusinessAPI struct {
	projects      map[int64]domain.Project
	tables        map[int64]domain.ExportTable
	notifications map[int64]string
	versions      []int
	seedErr       error
	seededAt      time.Time

	lastFrom string
	lastTo   string
}

// newMockBusinessAPI creates a mock holding project 7 with two exported rows
// and a notification for task 4
func newMockBusinessAPI() *mockBusinessAPI {
	return &mockBusinessAPI{
		projects: map[int64]domain.Project{7: {ID: 7, Name: "Website"}},
		tables: map[int64]domain.ExportTable{
			7: {
				{"Task Id", "Project", "Title"},
				{"1", "Website", "Fix login"},
				{"2", "Website", "Write \"docs\", again"},
			},
		},
		notifications: map[int64]string{
			4: "## Write docs (#4)\n\n* **Assigned to Alice Doe**\n\n## Description\n\nCover the **CLI**\n",
		},
		versions: []int{1, 2},
	}
}

func (m *mockBusinessAPI) ExportTasks(ctx context.Context, projectID int64, from, to string) (*api.ExportResult, error) {
	m.lastFrom, m.lastTo = from, to
	if from == "" || to == "" {
		return nil, errors.NewValidationError("invalid export request", requiredFrom())
	}
	project, ok := m.projects[projectID]
	if !ok {
		return nil, errors.NewNotFoundError("project", fmt.Sprintf("%d", projectID))
	}
	return &api.ExportResult{Project: project, Table: m.tables[projectID]}, nil
}

func (m *mockBusinessAPI) RenderAssigneeNotification(ctx context.Context, taskID int64) (string, error) {
	md, ok := m.notifications[taskID]
	if !ok {
		return "", errors.NewNotFoundError("task", fmt.Sprintf("%d", taskID))
	}
	return md, nil
}

func (m *mockBusinessAPI) ListColors(ctx context.Context) (*api.ColorList, error) {
	return &api.ColorList{
		Language: "fr",
		Colors:   []domain.Color{{ID: "yellow", Name: "Jaune"}, {ID: "light_green", Name: "Vert clair"}},
	}, nil
}

// SeedDemo reports a demo board whose oldest task is six days old
func (m *mockBusinessAPI) SeedDemo(ctx context.Context, now time.Time) (*store.Demo, error) {
	m.seededAt = now
	if m.seedErr != nil {
		return nil, m.seedErr
	}
	return &store.Demo{
		Project: &store.Project{ID: 12, Name: "Demo board"},
		Tasks:   make([]*store.Task, 5),
		First:   now.Add(-6 * 24 * time.Hour),
	}, nil
}

func (m *mockBusinessAPI) Ping(ctx context.Context) error {
	return nil
}

func (m *mockBusinessAPI) MigrationVersions(ctx context.Context) ([]int, error) {
	return m.versions, nil
}

// setupTestAppWithMockBusinessAPI returns an App over the mock writing to a buffer
func setupTestAppWithMockBusinessAPI(t *testing.T) (*App, *mockBusinessAPI, *bytes.Buffer) {
	t.Helper()
	mock := newMockBusinessAPI()
	out := &bytes.Buffer{}
	cfg := config.NewConfig()
	cfg.Locale.Timezone = "UTC"
	app := NewAppWithConfig(mock, cfg).WithOutput(out).WithMigrations(mock).WithSeeder(mock)
	return app, mock, out
}
