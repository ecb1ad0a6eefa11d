package cli

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"task-export/internal/config"
	"task-export/internal/logging"
)

// newTestRoot builds a root command whose factory hands out an App over the
// mock and records the configuration it was given
func newTestRoot(t *testing.T, args ...string) (*RootCommand, *bytes.Buffer, **config.Config) {
	t.Helper()
	t.Cleanup(func() { logging.SetVerbose(false) })

	mock := newMockBusinessAPI()
	out := &bytes.Buffer{}
	var got *config.Config

	factory := func(cfg *config.Config) (*App, error) {
		got = cfg
		return NewAppWithConfig(mock, cfg).WithOutput(out).WithMigrations(mock).WithSeeder(mock), nil
	}

	root := NewRootCommand(config.NewLoader().WithEnvFile(""), factory)
	root.cmd.SetArgs(args)
	root.cmd.SetOut(out)
	root.cmd.SetErr(out)
	return root, out, &got
}

func TestRootCommand_Export(t *testing.T) {
	root, out, got := newTestRoot(t, "export", "-p", "7", "--from", "2024-03-01", "--to", "2024-03-02")

	require.NoError(t, root.Execute())
	assert.Equal(t, mockCSV, out.String())
	require.NotNil(t, *got)
	assert.Equal(t, "csv", (*got).Export.DefaultFormat)
}

func TestRootCommand_ExportDefaultFormatFromEnvironment(t *testing.T) {
	t.Setenv("TE_EXPORT_DEFAULT_FORMAT", "table")
	root, out, _ := newTestRoot(t, "export", "-p", "7", "--from", "a", "--to", "b")

	require.NoError(t, root.Execute())
	assert.Contains(t, out.String(), "Fix login")
	assert.NotContains(t, out.String(), "Task Id,Project")
}

func TestRootCommand_FlagOverrides(t *testing.T) {
	t.Setenv("TE_LANGUAGE", "de")
	root, _, got := newTestRoot(t,
		"--language", "fr",
		"--timezone", "UTC",
		"--date-format", "02.01.2006",
		"--escape-labels",
		"--application-url", "https://board.example/",
		"--db-driver", "postgres",
		"--db-dsn", "postgres://localhost/board",
		"--app-timeout", "5s",
		"notify", "4", "--raw")

	require.NoError(t, root.Execute())
	cfg := *got
	require.NotNil(t, cfg)
	assert.Equal(t, "fr", cfg.Locale.Language)
	assert.Equal(t, "UTC", cfg.Locale.Timezone)
	assert.Equal(t, "02.01.2006", cfg.Locale.DateFormat)
	assert.True(t, cfg.Locale.EscapeLabels)
	assert.Equal(t, "https://board.example/", cfg.Notification.ApplicationURL)
	assert.Equal(t, "postgres", cfg.Database.Driver)
	assert.Equal(t, "postgres://localhost/board", cfg.Database.DSN)
	assert.Equal(t, "5s", cfg.Application.Timeout.String())
}

func TestRootCommand_UnsetFlagsKeepEnvironment(t *testing.T) {
	t.Setenv("TE_LANGUAGE", "de")
	root, _, got := newTestRoot(t, "notify", "4", "--raw")

	require.NoError(t, root.Execute())
	assert.Equal(t, "de", (*got).Locale.Language)
}

func TestRootCommand_Verbose(t *testing.T) {
	t.Setenv("TE_DEBUG", "")
	root, _, _ := newTestRoot(t, "-v", "migrate")

	require.NoError(t, root.Execute())
	assert.True(t, logging.DebugEnabled())
}

func TestRootCommand_Migrate(t *testing.T) {
	root, out, _ := newTestRoot(t, "migrate")

	require.NoError(t, root.Execute())
	assert.Contains(t, out.String(), "Database is at version 2")
}

func TestRootCommand_InvalidConfiguration(t *testing.T) {
	root, _, got := newTestRoot(t, "--timezone", "Nowhere/Atlantis", "migrate")

	err := root.Execute()
	require.Error(t, err)
	var configErr *config.ConfigError
	require.True(t, errors.As(err, &configErr))
	assert.Equal(t, "locale.timezone", configErr.Field)
	assert.Nil(t, *got)
}

func TestRootCommand_FactoryError(t *testing.T) {
	root := NewRootCommand(config.NewLoader().WithEnvFile(""), func(cfg *config.Config) (*App, error) {
		return nil, errors.New("database unavailable")
	})
	root.cmd.SetArgs([]string{"migrate"})

	err := root.Execute()
	require.Error(t, err)
	assert.Equal(t, "database unavailable", err.Error())
}

func TestRootCommand_NotifyRequiresTaskID(t *testing.T) {
	root, _, got := newTestRoot(t, "notify")

	require.Error(t, root.Execute())
	assert.Nil(t, *got)
}

func TestRootCommand_Help(t *testing.T) {
	root, out, _ := newTestRoot(t, "--help")

	require.NoError(t, root.Execute())
	assert.Contains(t, out.String(), "TE_DB_DRIVER")
	assert.Contains(t, out.String(), "export")
	assert.Contains(t, out.String(), "notify")
}

func TestRootCommand_Seed(t *testing.T) {
	root, out, _ := newTestRoot(t, "seed")

	require.NoError(t, root.Execute())
	assert.Contains(t, out.String(), `Loaded demo project "Demo board" (id 12) with 5 tasks`)
	assert.Contains(t, out.String(), "taskexport export -p 12 --from ")
}

func TestRootCommand_Colors(t *testing.T) {
	root, out, _ := newTestRoot(t, "colors")

	require.NoError(t, root.Execute())
	assert.Contains(t, out.String(), "Jaune")
}

func TestRootCommand_ExportHelpShowsDateFormat(t *testing.T) {
	for _, key := range []string{"LC_ALL", "LC_TIME", "LANG"} {
		t.Setenv(key, "")
	}
	t.Setenv("LANG", "en_US.UTF-8")
	root, out, _ := newTestRoot(t, "export", "--help")

	require.NoError(t, root.Execute())
	assert.Contains(t, out.String(), "a date like MM/DD/YYYY")
}
