package cli

import (
	"context"
	"errors"
	"net/http"

	"task-export/internal/api"
	"task-export/internal/config"
	"task-export/internal/server"
)

// ServeCommand handles the serve command
type ServeCommand struct {
	businessAPI api.BusinessAPI
	config      *config.Config
}

// NewServeCommand creates a new serve command handler
func NewServeCommand(app *App) *ServeCommand {
	return &ServeCommand{businessAPI: app.businessAPI, config: app.config}
}

// Execute serves the HTTP API until ctx is cancelled
func (c *ServeCommand) Execute(ctx context.Context) error {
	srv := server.New(c.businessAPI, c.config.Server)
	if err := srv.ListenAndServe(ctx); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
