package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"task-export/internal/errors"
	"task-export/internal/i18n"
	"task-export/internal/repository/store"
)

func strPtr(s string) *string { return &s }

func englishTranslator() *i18n.Translator {
	return i18n.NewTranslator("en", false)
}

// isoOnly leaves only the built-in ISO layouts
func isoOnly() i18n.DateFormat {
	return i18n.DateFormat{Layouts: []string{}}
}

func setupTestRepo(t *testing.T) *store.SQLRepository {
	t.Helper()
	repo, err := store.NewSQLite(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { repo.Close() })
	return repo
}

func setupContainer(t *testing.T, repo store.Repository, applicationURL string) *ServiceContainer {
	t.Helper()
	return NewServiceContainer(repo, Options{
		Location:       time.UTC,
		DateFormat:     isoOnly(),
		Translator:     englishTranslator(),
		ApplicationURL: applicationURL,
	})
}

// fakeRepository serves canned rows and records the bounds it was queried with
type fakeRepository struct {
	rows      []*store.TaskRow
	detail    *store.TaskDetail
	err       error
	projectID int64
	from      int64
	to        int64
	calls     int
}

func (f *fakeRepository) FetchTasksInRange(ctx context.Context, projectID, from, to int64) ([]*store.TaskRow, error) {
	f.calls++
	f.projectID, f.from, f.to = projectID, from, to
	if f.err != nil {
		return nil, f.err
	}
	return f.rows, nil
}

func (f *fakeRepository) GetTaskDetail(ctx context.Context, taskID int64) (*store.TaskDetail, error) {
	if f.err != nil {
		return nil, f.err
	}
	if f.detail == nil || f.detail.ID != taskID {
		return nil, errors.NewNotFoundError("task", "missing")
	}
	return f.detail, nil
}

func (f *fakeRepository) GetProject(ctx context.Context, projectID int64) (*store.Project, error) {
	return nil, errors.NewNotFoundError("project", "missing")
}

func (f *fakeRepository) Ping(ctx context.Context) error { return f.err }

func (f *fakeRepository) Close() error { return nil }
