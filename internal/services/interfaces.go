package services

import (
	"context"
	"time"

	"task-export/internal/domain"
	"task-export/internal/i18n"
)

// DateParser turns user-formatted dates into instants in the export timezone
type DateParser interface {
	// Parse accepts the configured layout, the region layouts and ISO dates
	Parse(value string) (time.Time, error)
	// ResetDateToMidnight returns 00:00:00 of t's day in the export timezone
	ResetDateToMidnight(t time.Time) time.Time
	Location() *time.Location
}

// DateNormalizer converts export bounds into epoch seconds
type DateNormalizer interface {
	// Normalize resolves both bounds. Numeric bounds pass through; text
	// bounds snap to midnight and the to bound is advanced one day first.
	Normalize(from, to domain.DateBound) (domain.EpochRange, error)
}

// ColorCatalog resolves color identifiers to display labels
type ColorCatalog interface {
	Label(colorID string) (string, bool)
	Colors() []domain.Color
}

// RowFormatter converts raw task rows into display rows
type RowFormatter interface {
	Format(row domain.TaskRow) (domain.ExportedRow, error)
}

// TableAssembler builds the export table from formatted rows
type TableAssembler interface {
	Header() []string
	Assemble(rows []domain.ExportedRow) domain.ExportTable
}

// ExportService runs the task export pipeline
type ExportService interface {
	Export(ctx context.Context, projectID int64, from, to domain.DateBound) (domain.ExportTable, error)
}

// NotificationService renders task notification documents
type NotificationService interface {
	// RenderAssigneeChange loads a task and renders its assignee change document
	RenderAssigneeChange(ctx context.Context, taskID int64) (string, error)
	// Render renders the assignee change document of an already loaded task
	Render(detail domain.TaskDetail) (string, error)
}

// ServiceContainer manages all services and their dependencies
type ServiceContainer struct {
	Translator          *i18n.Translator
	DateParser          DateParser
	DateNormalizer      DateNormalizer
	ColorCatalog        ColorCatalog
	RowFormatter        RowFormatter
	TableAssembler      TableAssembler
	ExportService       ExportService
	NotificationService NotificationService
}
