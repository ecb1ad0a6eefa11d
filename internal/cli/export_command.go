package cli

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"task-export/internal/api"
	"task-export/internal/domain"
	"task-export/internal/errors"
	"task-export/internal/logging"
	"task-export/internal/validation"
)

// ExportOptions are the flags of the export command
type ExportOptions struct {
	ProjectID int64
	From      string
	To        string
	Format    string
	Output    string
}

// ExportCommand handles the export command
type ExportCommand struct {
	businessAPI  api.BusinessAPI
	out          io.Writer
	validator    *validation.ExportValidator
	errorHandler *ErrorHandler
	create       func(path string) (io.WriteCloser, error)
}

func createFile(path string) (io.WriteCloser, error) {
	return os.Create(path)
}

// NewExportCommand creates a new export command handler
func NewExportCommand(app *App) *ExportCommand {
	return &ExportCommand{
		businessAPI:  app.businessAPI,
		out:          app.out,
		validator:    validation.NewExportValidator(),
		errorHandler: NewErrorHandler(),
		create:       createFile,
	}
}

// Execute runs the export command
func (c *ExportCommand) Execute(ctx context.Context, opts ExportOptions) error {
	format := strings.ToLower(opts.Format)
	if err := c.validator.ValidateFormat(format); err != nil {
		return c.errorHandler.Handle("export tasks", errors.NewValidationError("invalid output format", err))
	}

	result, err := c.businessAPI.ExportTasks(ctx, opts.ProjectID, opts.From, opts.To)
	if err != nil {
		return c.errorHandler.Handle("export tasks", err)
	}
	logging.Debugf("exported %d tasks of project %q\n", len(result.Table.Rows()), result.Project.Name)

	if opts.Output == "" || opts.Output == "-" {
		return writeExport(c.out, format, result.Table)
	}

	f, err := c.create(opts.Output)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	if err := writeExport(f, format, result.Table); err != nil {
		f.Close()
		return err
	}
	// A failed close can leave a truncated file behind
	if err := f.Close(); err != nil {
		return fmt.Errorf("failed to close output file: %w", err)
	}
	return nil
}

func writeExport(w io.Writer, format string, t domain.ExportTable) error {
	if format == validation.FormatTable {
		return writeTable(w, t)
	}
	return writeCSV(w, t)
}

// writeCSV writes the header and every row as RFC 4180 records
func writeCSV(w io.Writer, t domain.ExportTable) error {
	if err := csv.NewWriter(w).WriteAll(t); err != nil {
		return fmt.Errorf("failed to write CSV: %w", err)
	}
	return nil
}

// writeTable renders the export as a bordered terminal table
func writeTable(w io.Writer, t domain.ExportTable) error {
	headerStyle := lipgloss.NewStyle().Padding(0, 1).Bold(true)
	cellStyle := lipgloss.NewStyle().Padding(0, 1)

	tbl := table.New().
		Headers(t.Header()...).
		Rows(t.Rows()...).
		Border(lipgloss.NormalBorder()).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		})

	if _, err := fmt.Fprintln(w, tbl.String()); err != nil {
		return fmt.Errorf("failed to write table: %w", err)
	}
	return nil
}
