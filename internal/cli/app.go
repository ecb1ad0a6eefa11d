package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"task-export/internal/api"
	"task-export/internal/config"
	"task-export/internal/repository/store"
)

// MigrationReporter lists the schema migrations applied to the database
type MigrationReporter interface {
	MigrationVersions(ctx context.Context) ([]int, error)
}

// DemoSeeder writes a demo board to the database
type DemoSeeder interface {
	SeedDemo(ctx context.Context, now time.Time) (*store.Demo, error)
}

// App represents the main CLI application
type App struct {
	businessAPI api.BusinessAPI
	config      *config.Config
	migrations  MigrationReporter
	seeder      DemoSeeder
	out         io.Writer
	closer      io.Closer
}

// AppFactory builds the App a command runs against once configuration is loaded
type AppFactory func(cfg *config.Config) (*App, error)

// NewAppWithConfig creates a new CLI application instance with dependency injection
func NewAppWithConfig(businessAPI api.BusinessAPI, cfg *config.Config) *App {
	return &App{
		businessAPI: businessAPI,
		config:      cfg,
		out:         os.Stdout,
	}
}

// WithOutput redirects command output to w
func (a *App) WithOutput(w io.Writer) *App {
	a.out = w
	return a
}

// WithMigrations sets the reporter used by the migrate command
func (a *App) WithMigrations(m MigrationReporter) *App {
	a.migrations = m
	return a
}

// WithSeeder sets the database written by the seed command
func (a *App) WithSeeder(s DemoSeeder) *App {
	a.seeder = s
	return a
}

// OpenApp opens the configured database, running pending migrations, and
// builds the BusinessAPI over it. This is the production AppFactory.
func OpenApp(cfg *config.Config) (*App, error) {
	repo, err := config.CreateRepository(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	businessAPI, err := api.New(repo, cfg)
	if err != nil {
		repo.Close()
		return nil, err
	}

	app := NewAppWithConfig(businessAPI, cfg).WithMigrations(repo).WithSeeder(repo)
	app.closer = repo
	return app, nil
}

// Close releases the database held by the application
func (a *App) Close() error {
	if a.closer == nil {
		return nil
	}
	return a.closer.Close()
}
