package cli

import (
	"context"
	"fmt"
	"io"

	"task-export/internal/errors"
)

// MigrateCommand handles the migrate command. Opening the database already
// applies pending migrations; the command reports what is in place.
type MigrateCommand struct {
	migrations   MigrationReporter
	out          io.Writer
	errorHandler *ErrorHandler
}

// NewMigrateCommand creates a new migrate command handler
func NewMigrateCommand(app *App) *MigrateCommand {
	return &MigrateCommand{
		migrations:   app.migrations,
		out:          app.out,
		errorHandler: NewErrorHandler(),
	}
}

// Execute prints the applied schema versions
func (c *MigrateCommand) Execute(ctx context.Context) error {
	if c.migrations == nil {
		return c.errorHandler.HandleSimple(errors.NewInvalidInputError("command", "migrate", "no database is configured"))
	}

	versions, err := c.migrations.MigrationVersions(ctx)
	if err != nil {
		return c.errorHandler.Handle("list migrations", err)
	}

	if len(versions) == 0 {
		_, err = fmt.Fprintln(c.out, "No migrations applied")
		return err
	}

	if _, err := fmt.Fprintf(c.out, "Database is at version %d\n", versions[len(versions)-1]); err != nil {
		return err
	}
	for _, v := range versions {
		if _, err := fmt.Fprintf(c.out, "  applied %06d\n", v); err != nil {
			return err
		}
	}
	return nil
}
