package cli

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"task-export/internal/config"
	"task-export/internal/i18n"
	"task-export/internal/logging"
)

// RootCommand represents the base command when called without any subcommands
type RootCommand struct {
	cmd     *cobra.Command
	loader  *config.Loader
	factory AppFactory
	config  *config.Config
}

// NewRootCommand creates the root cobra command with global flags. The
// factory is called once per command, after configuration is loaded.
func NewRootCommand(loader *config.Loader, factory AppFactory) *RootCommand {
	root := &RootCommand{
		loader:  loader,
		factory: factory,
	}

	root.cmd = &cobra.Command{
		Use:   "taskexport",
		Short: "Export board tasks and render task notifications",
		Long: `taskexport reads a task board database and produces reports from it.

FEATURES:
  • Export the tasks of a project created in a date range as CSV or a table
  • Render the markdown notification sent when a task changes assignee
  • Serve both over HTTP
  • Translated labels and region aware date input

EXAMPLES:
  taskexport export -p 7 --from 2024-03-01 --to 2024-03-31 > march.csv
  taskexport export -p 7 --from 1709251200 --to 1711929599 --format table
  taskexport notify 42
  taskexport serve --addr :9090
  taskexport migrate
  taskexport seed
  taskexport colors --language fr

CONFIGURATION:
  Configuration follows this priority order: command-line flags > environment variables > .env file > defaults

  Database Configuration:
    TE_DB_DRIVER                           sqlite or postgres (default: sqlite)
    TE_DB_DIR                              Database directory (default: ~/.taskexport)
    TE_DB_FILENAME                         Database filename (default: tasks.db)
    TE_DB_DSN                              Connection string, required for postgres
    TE_DB_QUERY_TIMEOUT                    Query timeout (default: 10s)

  Locale Configuration:
    TE_LANGUAGE                            Label language (default: from LC_ALL, LC_MESSAGES, LANG)
    TE_TIMEZONE                            Timezone of date input and output (default: Local)
    TE_DATE_FORMAT                         Go layout tried first for date input
    TE_ESCAPE_LABELS                       HTML-escape translated labels (default: false)

  Server Configuration:
    TE_SERVER_ADDR                         Listen address (default: :8080)
    TE_CORS_ALLOWED_ORIGINS                Comma separated origins (default: *)

  Notification Configuration:
    TE_APPLICATION_URL                     Base URL of the board, enables the task link

  Application Configuration:
    TE_APP_TIMEOUT                         Command timeout (default: 60s)
    TE_APP_VERBOSE                         Enable verbose output (default: false)
    TE_EXPORT_DEFAULT_FORMAT               Default export format (default: csv)

DATE BOUNDS:
  --from and --to take an epoch timestamp or a date in the locale's format.
  A date --to covers the whole day; an epoch --to is used as given.

GETTING HELP:
  taskexport [command] --help              # Get help for any specific command
  taskexport completion bash               # Generate bash completion script`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Add global flags for configuration overrides
	root.addGlobalFlags()

	// Add all subcommands
	root.addSubcommands()

	return root
}

// Execute runs the root command
func (r *RootCommand) Execute() error {
	return r.cmd.Execute()
}

// addGlobalFlags adds global configuration flags
func (r *RootCommand) addGlobalFlags() {
	flags := r.cmd.PersistentFlags()

	// Database configuration
	flags.String("db-driver", "", "Database driver, sqlite or postgres (overrides TE_DB_DRIVER)")
	flags.String("db-dir", "", "Database directory (overrides TE_DB_DIR)")
	flags.String("db-filename", "", "Database filename (overrides TE_DB_FILENAME)")
	flags.String("db-dsn", "", "Database connection string (overrides TE_DB_DSN)")
	flags.Duration("db-query-timeout", 0, "Database query timeout (overrides TE_DB_QUERY_TIMEOUT)")

	// Locale configuration
	flags.String("language", "", "Label language, e.g. fr or pt-BR (overrides TE_LANGUAGE)")
	flags.String("timezone", "", "IANA timezone of dates (overrides TE_TIMEZONE)")
	flags.String("date-format", "", "Go layout tried first for date input (overrides TE_DATE_FORMAT)")
	flags.Bool("escape-labels", false, "HTML-escape translated labels (overrides TE_ESCAPE_LABELS)")

	// Notification configuration
	flags.String("application-url", "", "Base URL of the board (overrides TE_APPLICATION_URL)")

	// Application configuration
	flags.Duration("app-timeout", 0, "Application timeout (overrides TE_APP_TIMEOUT)")
	flags.BoolP("verbose", "v", false, "Enable verbose output (overrides TE_APP_VERBOSE)")
}

// addSubcommands adds all CLI subcommands to the root command
func (r *RootCommand) addSubcommands() {
	// Export command
	var exportOpts ExportOptions
	exportCmd := &cobra.Command{
		Use:   "export",
		Short: "Export the tasks of a project",
		Long: `Export the tasks of a project created between two dates.

Each bound is an epoch timestamp or a date in the locale's format.

Examples:
  taskexport export -p 7 --from 2024-03-01 --to 2024-03-31
  taskexport export -p 7 --from 03/01/2024 --to 03/31/2024 --format table
  taskexport export -p 7 --from 1709251200 --to 1711929599 -o march.csv`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := r.openApp(cmd)
			if err != nil {
				return err
			}
			defer app.Close()

			if exportOpts.Format == "" {
				exportOpts.Format = r.config.Export.DefaultFormat
			}

			ctx, cancel := context.WithTimeout(context.Background(), r.getAppTimeout())
			defer cancel()

			exportHandler := NewExportCommand(app)
			return exportHandler.Execute(ctx, exportOpts)
		},
	}
	exportCmd.Flags().Int64VarP(&exportOpts.ProjectID, "project", "p", 0, "Project ID")
	dateHint := i18n.DetectDateFormat().Hint
	exportCmd.Flags().StringVar(&exportOpts.From, "from", "", "Start of the creation date range, an epoch or a date like "+dateHint)
	exportCmd.Flags().StringVar(&exportOpts.To, "to", "", "End of the creation date range, an epoch or a date like "+dateHint)
	exportCmd.Flags().StringVarP(&exportOpts.Format, "format", "f", "", "Output format, csv or table (overrides TE_EXPORT_DEFAULT_FORMAT)")
	exportCmd.Flags().StringVarP(&exportOpts.Output, "output", "o", "", "Write to a file instead of stdout")

	// Notify command
	var notifyOpts NotifyOptions
	notifyCmd := &cobra.Command{
		Use:   "notify <task-id>",
		Short: "Render the assignee change notification of a task",
		Long: `Render the notification sent when a task is assigned to someone.

The markdown is rendered for the terminal unless --raw is given.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := r.openApp(cmd)
			if err != nil {
				return err
			}
			defer app.Close()

			ctx, cancel := context.WithTimeout(context.Background(), r.getAppTimeout())
			defer cancel()

			notifyHandler := NewNotifyCommand(app)
			return notifyHandler.Execute(ctx, args, notifyOpts)
		},
	}
	notifyCmd.Flags().BoolVar(&notifyOpts.Raw, "raw", false, "Print the markdown source")
	notifyCmd.Flags().StringVar(&notifyOpts.Style, "style", StyleDark, "Terminal style: dark, light or notty")
	notifyCmd.Flags().IntVar(&notifyOpts.Width, "width", 80, "Word wrap width")

	// Serve command
	serveCmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve exports and notifications over HTTP",
		Long: `Start the HTTP server.

Routes:
  GET /projects/{project_id}/tasks/export?from=&to=[&format=json]
  GET /tasks/{task_id}/notifications/assignee-change
  GET /colors
  GET /healthz`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := r.openApp(cmd)
			if err != nil {
				return err
			}
			defer app.Close()

			// The server runs until interrupted, not for the app timeout
			ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			serveHandler := NewServeCommand(app)
			return serveHandler.Execute(ctx)
		},
	}
	serveCmd.Flags().String("addr", "", "Listen address (overrides TE_SERVER_ADDR)")

	// Migrate command
	migrateCmd := &cobra.Command{
		Use:   "migrate",
		Short: "Apply pending schema migrations",
		Long:  "Open the database, apply any pending schema migrations and list the applied versions.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := r.openApp(cmd)
			if err != nil {
				return err
			}
			defer app.Close()

			ctx, cancel := context.WithTimeout(context.Background(), r.getAppTimeout())
			defer cancel()

			migrateHandler := NewMigrateCommand(app)
			return migrateHandler.Execute(ctx)
		},
	}

	// Seed command
	seedCmd := &cobra.Command{
		Use:   "seed",
		Short: "Load a demo board into the database",
		Long: `Write a demo project with users, columns and a week of tasks, then print
an export command covering them. Each run adds another project.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := r.openApp(cmd)
			if err != nil {
				return err
			}
			defer app.Close()

			ctx, cancel := context.WithTimeout(context.Background(), r.getAppTimeout())
			defer cancel()

			return NewSeedCommand(app).Execute(ctx)
		},
	}

	// Colors command
	colorsCmd := &cobra.Command{
		Use:   "colors",
		Short: "List task colors with their translated names",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := r.openApp(cmd)
			if err != nil {
				return err
			}
			defer app.Close()

			ctx, cancel := context.WithTimeout(context.Background(), r.getAppTimeout())
			defer cancel()

			return NewColorsCommand(app).Execute(ctx)
		},
	}

	// Add all subcommands to root
	r.cmd.AddCommand(
		exportCmd,
		notifyCmd,
		serveCmd,
		migrateCmd,
		seedCmd,
		colorsCmd,
	)
}

// openApp loads configuration with the flags of cmd applied and builds the App
func (r *RootCommand) openApp(cmd *cobra.Command) (*App, error) {
	cfg, err := r.loader.LoadWithOverrides(overridesFromFlags(cmd.Flags()))
	if err != nil {
		return nil, err
	}
	r.config = cfg

	if cfg.Application.Verbose {
		logging.SetVerbose(true)
	}
	logging.Debugf("using %s database %s\n", cfg.Database.Driver, cfg.DataSourceName())

	return r.factory(cfg)
}

// getAppTimeout returns the configured application timeout
func (r *RootCommand) getAppTimeout() time.Duration {
	if r.config != nil {
		return r.config.Application.Timeout
	}
	return 60 * time.Second // Default timeout
}

// overridesFromFlags collects the flags set on the command line. Flags left
// at their default do not override the environment.
func overridesFromFlags(flags *pflag.FlagSet) *config.ConfigOverrides {
	overrides := &config.ConfigOverrides{}

	stringFlag := func(name string) *string {
		if !flags.Changed(name) {
			return nil
		}
		v, err := flags.GetString(name)
		if err != nil {
			return nil
		}
		return &v
	}
	durationFlag := func(name string) *time.Duration {
		if !flags.Changed(name) {
			return nil
		}
		v, err := flags.GetDuration(name)
		if err != nil {
			return nil
		}
		return &v
	}
	boolFlag := func(name string) *bool {
		if !flags.Changed(name) {
			return nil
		}
		v, err := flags.GetBool(name)
		if err != nil {
			return nil
		}
		return &v
	}

	// Database configuration
	overrides.DBDriver = stringFlag("db-driver")
	overrides.DBDir = stringFlag("db-dir")
	overrides.DBFilename = stringFlag("db-filename")
	overrides.DBDSN = stringFlag("db-dsn")
	overrides.DBQueryTimeout = durationFlag("db-query-timeout")

	// Locale configuration
	overrides.Language = stringFlag("language")
	overrides.Timezone = stringFlag("timezone")
	overrides.DateFormat = stringFlag("date-format")
	overrides.EscapeLabels = boolFlag("escape-labels")

	// Server configuration
	overrides.ServerAddr = stringFlag("addr")

	// Notification configuration
	overrides.ApplicationURL = stringFlag("application-url")

	// Application configuration
	overrides.Timeout = durationFlag("app-timeout")
	overrides.Verbose = boolFlag("verbose")

	return overrides
}
