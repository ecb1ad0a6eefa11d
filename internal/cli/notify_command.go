package cli

import (
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/glamour/ansi"
	"github.com/charmbracelet/glamour/styles"

	"task-export/internal/api"
	"task-export/internal/errors"
)

// Markdown styles accepted by the notify command
const (
	StyleDark  = "dark"
	StyleLight = "light"
	StyleNoTTY = "notty"
)

// NotifyOptions are the flags of the notify command
type NotifyOptions struct {
	Raw   bool
	Style string
	Width int
}

// NotifyCommand handles the notify command
type NotifyCommand struct {
	businessAPI  api.BusinessAPI
	out          io.Writer
	errorHandler *ErrorHandler
}

// NewNotifyCommand creates a new notify command handler
func NewNotifyCommand(app *App) *NotifyCommand {
	return &NotifyCommand{
		businessAPI:  app.businessAPI,
		out:          app.out,
		errorHandler: NewErrorHandler(),
	}
}

// Execute renders the assignee change notification of the task named by args[0]
func (c *NotifyCommand) Execute(ctx context.Context, args []string, opts NotifyOptions) error {
	if len(args) != 1 {
		return c.errorHandler.HandleSimple(errors.NewInvalidInputError("command", "notify", "usage: taskexport notify <task-id>"))
	}

	taskID, err := strconv.ParseInt(strings.TrimSpace(args[0]), 10, 64)
	if err != nil {
		return c.errorHandler.HandleSimple(errors.NewInvalidInputError("task_id", args[0], "must be an integer"))
	}

	markdown, err := c.businessAPI.RenderAssigneeNotification(ctx, taskID)
	if err != nil {
		return c.errorHandler.Handle("render notification", err)
	}

	if !opts.Raw {
		markdown, err = renderMarkdown(markdown, opts.Style, opts.Width)
		if err != nil {
			return c.errorHandler.Handle("render markdown", err)
		}
	}

	_, err = fmt.Fprint(c.out, markdown)
	return err
}

func renderMarkdown(md, style string, width int) (string, error) {
	if width < 20 {
		width = 80
	}

	config, err := styleConfig(style)
	if err != nil {
		return "", err
	}

	renderer, err := glamour.NewTermRenderer(
		glamour.WithWordWrap(width),
		glamour.WithStyles(config),
	)
	if err != nil {
		return "", err
	}
	return renderer.Render(md)
}

func styleConfig(name string) (ansi.StyleConfig, error) {
	switch strings.ToLower(name) {
	case "", StyleDark:
		return styles.DarkStyleConfig, nil
	case StyleLight:
		return styles.LightStyleConfig, nil
	case StyleNoTTY:
		return styles.NoTTYStyleConfig, nil
	default:
		return ansi.StyleConfig{}, errors.NewInvalidInputError("style", name, "must be dark, light or notty")
	}
}
