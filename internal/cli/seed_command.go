package cli

import (
	"context"
	"fmt"
	"io"
	"time"

	"task-export/internal/config"
	"task-export/internal/errors"
	"task-export/internal/logging"
)

// SeedCommand handles the seed command
type SeedCommand struct {
	seeder       DemoSeeder
	config       *config.Config
	out          io.Writer
	errorHandler *ErrorHandler
	now          func() time.Time
}

// NewSeedCommand creates a new seed command handler
func NewSeedCommand(app *App) *SeedCommand {
	return &SeedCommand{
		seeder:       app.seeder,
		config:       app.config,
		out:          app.out,
		errorHandler: NewErrorHandler(),
		now:          time.Now,
	}
}

// Execute writes the demo board and prints an export command covering it
func (c *SeedCommand) Execute(ctx context.Context) error {
	if c.seeder == nil {
		return c.errorHandler.HandleSimple(errors.NewInvalidInputError("command", "seed", "no database is configured"))
	}

	now := c.now()
	demo, err := c.seeder.SeedDemo(ctx, now)
	if err != nil {
		return c.errorHandler.Handle("seed demo board", err)
	}
	logging.Debugf("seeded project %d with %d tasks\n", demo.Project.ID, len(demo.Tasks))

	loc := time.Local
	if c.config != nil {
		if l, err := c.config.Location(); err == nil {
			loc = l
		}
	}

	// ISO dates are accepted whatever the locale
	_, err = fmt.Fprintf(c.out, "Loaded demo project %q (id %d) with %d tasks\nTry: taskexport export -p %d --from %s --to %s\n",
		demo.Project.Name, demo.Project.ID, len(demo.Tasks),
		demo.Project.ID, demo.First.In(loc).Format("2006-01-02"), now.In(loc).Format("2006-01-02"))
	return err
}
