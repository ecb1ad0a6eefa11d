package api

import (
	"context"

	"task-export/internal/domain"
	"task-export/internal/errors"
	"task-export/internal/repository/store"
	"task-export/internal/services"
	"task-export/internal/validation"
)

// ExportResult is a finished export together with the project it belongs to
type ExportResult struct {
	Project domain.Project     `json:"project"`
	Table   domain.ExportTable `json:"table"`
}

// ColorList is the task color catalog with names in Language
type ColorList struct {
	Language string         `json:"language"`
	Colors   []domain.Color `json:"colors"`
}

// BusinessAPI defines the operations offered by the CLI and the HTTP server
type BusinessAPI interface {
	// ExportTasks exports the tasks of a project created between from and to.
	// Each bound is either an epoch timestamp or a user-formatted date.
	ExportTasks(ctx context.Context, projectID int64, from, to string) (*ExportResult, error)

	// RenderAssigneeNotification renders the assignee change document of a task as markdown
	RenderAssigneeNotification(ctx context.Context, taskID int64) (string, error)

	// ListColors returns the colors a task can carry, translated like the
	// export labels
	ListColors(ctx context.Context) (*ColorList, error)

	// Ping checks that storage is reachable
	Ping(ctx context.Context) error
}

// businessAPIImpl implements the BusinessAPI interface
type businessAPIImpl struct {
	repo      store.Repository
	services  *services.ServiceContainer
	mapper    *domain.Mapper
	validator *validation.ExportValidator
}

// NewBusinessAPI creates a new BusinessAPI instance
func NewBusinessAPI(repo store.Repository, container *services.ServiceContainer) BusinessAPI {
	return &businessAPIImpl{
		repo:      repo,
		services:  container,
		mapper:    domain.NewMapper(),
		validator: validation.NewExportValidator(),
	}
}

func (b *businessAPIImpl) ExportTasks(ctx context.Context, projectID int64, from, to string) (*ExportResult, error) {
	// 1. Validate request
	if err := b.validator.ValidateExportRequest(projectID, from, to); err != nil {
		return nil, errors.NewValidationError("invalid export request", err)
	}

	// 2. Check the project exists
	dbProject, err := b.repo.GetProject(ctx, projectID)
	if err != nil {
		return nil, err
	}

	// 3. Run the export
	table, err := b.services.ExportService.Export(ctx, projectID, domain.ParseDateBound(from), domain.ParseDateBound(to))
	if err != nil {
		return nil, err
	}

	return &ExportResult{
		Project: b.mapper.Project.FromDatabase(*dbProject),
		Table:   table,
	}, nil
}

func (b *businessAPIImpl) RenderAssigneeNotification(ctx context.Context, taskID int64) (string, error) {
	if err := b.validator.ValidateTaskID(taskID); err != nil {
		return "", errors.NewValidationError("invalid task ID", err)
	}
	return b.services.NotificationService.RenderAssigneeChange(ctx, taskID)
}

func (b *businessAPIImpl) ListColors(ctx context.Context) (*ColorList, error) {
	return &ColorList{
		Language: b.services.Translator.Language().String(),
		Colors:   b.services.ColorCatalog.Colors(),
	}, nil
}

func (b *businessAPIImpl) Ping(ctx context.Context) error {
	return b.repo.Ping(ctx)
}
