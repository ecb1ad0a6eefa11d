package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"task-export/internal/errors"
	"task-export/internal/logging"
	"task-export/internal/repository/store/migrations"

	_ "github.com/lib/pq"
	_ "modernc.org/sqlite"
)

// exportQuery joins every reference table the export needs. Filtering is on
// the creation date and project only; no ORDER BY, rows come back in the
// database's natural order.
const exportQuery = `
	SELECT
	tasks.id,
	projects.name AS project_name,
	tasks.is_active,
	project_has_categories.name AS category_name,
	columns.title AS column_title,
	tasks.position,
	tasks.color_id,
	tasks.date_due,
	creators.username AS creator_username,
	users.username AS assignee_username,
	tasks.score,
	tasks.title,
	tasks.date_creation,
	tasks.date_modification,
	tasks.date_completed
	FROM tasks
	LEFT JOIN users ON users.id = tasks.owner_id
	LEFT JOIN users AS creators ON creators.id = tasks.creator_id
	LEFT JOIN project_has_categories ON project_has_categories.id = tasks.category_id
	LEFT JOIN columns ON columns.id = tasks.column_id
	LEFT JOIN projects ON projects.id = tasks.project_id
	WHERE tasks.date_creation >= ? AND tasks.date_creation <= ? AND tasks.project_id = ?`

const taskDetailQuery = `
	SELECT
	tasks.id,
	tasks.title,
	tasks.description,
	projects.name AS project_name,
	users.username AS assignee_username,
	users.name AS assignee_name
	FROM tasks
	LEFT JOIN users ON users.id = tasks.owner_id
	LEFT JOIN projects ON projects.id = tasks.project_id
	WHERE tasks.id = ?`

// Repository defines the read operations the export and notification
// features need from storage
type Repository interface {
	// FetchTasksInRange returns the joined rows of a project's tasks whose
	// creation date lies in [from, to]
	FetchTasksInRange(ctx context.Context, projectID, from, to int64) ([]*TaskRow, error)
	GetTaskDetail(ctx context.Context, taskID int64) (*TaskDetail, error)
	GetProject(ctx context.Context, projectID int64) (*Project, error)

	// Utility
	Ping(ctx context.Context) error
	Close() error
}

// Options configures a SQLRepository
type Options struct {
	Driver       string
	DSN          string
	QueryTimeout time.Duration
}

// SQLRepository implements the Repository interface on database/sql
type SQLRepository struct {
	db           *sql.DB
	dialect      Dialect
	queryTimeout time.Duration
}

// New opens the database described by opts and runs pending migrations
func New(opts Options) (*SQLRepository, error) {
	dialect := Dialect(opts.Driver)
	switch dialect {
	case DialectSQLite, DialectPostgres:
	default:
		return nil, errors.NewInvalidInputError("driver", opts.Driver, "unsupported database driver")
	}

	db, err := sql.Open(string(dialect), opts.DSN)
	if err != nil {
		return nil, errors.NewDatabaseError("open database", err)
	}
	if dialect == DialectSQLite {
		// A single connection keeps :memory: databases shared between queries.
		db.SetMaxOpenConns(1)
	}

	if err := migrations.RunMigrations(context.Background(), db, string(dialect)); err != nil {
		db.Close()
		return nil, errors.NewDatabaseError("run migrations", err)
	}

	logging.Debugf("opened %s database\n", dialect)
	return &SQLRepository{db: db, dialect: dialect, queryTimeout: opts.QueryTimeout}, nil
}

// NewSQLite opens a sqlite database at path with default options
func NewSQLite(path string) (*SQLRepository, error) {
	return New(Options{Driver: string(DialectSQLite), DSN: path})
}

// Close closes the database connection
func (r *SQLRepository) Close() error {
	return r.db.Close()
}

// Ping verifies the database is reachable
func (r *SQLRepository) Ping(ctx context.Context) error {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	if err := r.db.PingContext(ctx); err != nil {
		return HandleDatabaseError(ctx, "ping", err)
	}
	return nil
}

// FetchTasksInRange runs the export join for one project and creation-date range
func (r *SQLRepository) FetchTasksInRange(ctx context.Context, projectID, from, to int64) ([]*TaskRow, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	logging.Debugf("fetching tasks for project %d created in [%d, %d]\n", projectID, from, to)
	rows, err := QueryMultiple(ctx, r.db, r.dialect, exportQuery, ScanTaskRows, "tasks", from, to, projectID)
	if err != nil {
		return nil, err
	}
	return rows, nil
}

// GetTaskDetail retrieves the notification fields of a task
func (r *SQLRepository) GetTaskDetail(ctx context.Context, taskID int64) (*TaskDetail, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	return QuerySingle(ctx, r.db, r.dialect, taskDetailQuery, ScanTaskDetail, "task", fmt.Sprintf("%d", taskID), taskID)
}

// GetProject retrieves a project by ID
func (r *SQLRepository) GetProject(ctx context.Context, projectID int64) (*Project, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	query := `SELECT id, name FROM projects WHERE id = ?`
	return QuerySingle(ctx, r.db, r.dialect, query, ScanProject, "project", fmt.Sprintf("%d", projectID), projectID)
}

func (r *SQLRepository) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if r.queryTimeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, r.queryTimeout)
}

// MigrationVersions returns the schema migrations applied to the database
func (r *SQLRepository) MigrationVersions(ctx context.Context) ([]int, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	versions, err := migrations.AppliedVersions(ctx, r.db)
	if err != nil {
		return nil, HandleDatabaseError(ctx, "list migrations", err)
	}
	return versions, nil
}
