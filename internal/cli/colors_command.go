package cli

import (
	"context"
	"io"

	"task-export/internal/api"
	"task-export/internal/domain"
	"task-export/internal/logging"
)

// ColorsCommand handles the colors command
type ColorsCommand struct {
	businessAPI  api.BusinessAPI
	out          io.Writer
	errorHandler *ErrorHandler
}

// NewColorsCommand creates a new colors command handler
func NewColorsCommand(app *App) *ColorsCommand {
	return &ColorsCommand{
		businessAPI:  app.businessAPI,
		out:          app.out,
		errorHandler: NewErrorHandler(),
	}
}

// Execute prints the color identifiers with their translated names
func (c *ColorsCommand) Execute(ctx context.Context) error {
	list, err := c.businessAPI.ListColors(ctx)
	if err != nil {
		return c.errorHandler.Handle("list colors", err)
	}
	logging.Debugf("color names in %s\n", list.Language)

	t := domain.ExportTable{{"Id", "Name"}}
	for _, color := range list.Colors {
		t = append(t, []string{color.ID, color.Name})
	}
	return writeTable(c.out, t)
}
