package cli

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"task-export/internal/config"
)

func TestOpenApp(t *testing.T) {
	cfg := config.NewConfig()
	cfg.Database.Dir = t.TempDir()
	cfg.Locale.Timezone = "UTC"

	app, err := OpenApp(cfg)
	require.NoError(t, err)
	defer app.Close()

	assert.NoError(t, app.businessAPI.Ping(context.Background()))

	out := &bytes.Buffer{}
	require.NoError(t, NewMigrateCommand(app.WithOutput(out)).Execute(context.Background()))
	assert.Contains(t, out.String(), "Database is at version 2")
}

func TestOpenApp_UnsupportedDriver(t *testing.T) {
	cfg := config.NewConfig()
	cfg.Database.Driver = "mysql"

	_, err := OpenApp(cfg)
	assert.Error(t, err)
}

func TestApp_CloseWithoutDatabase(t *testing.T) {
	app := NewAppWithConfig(newMockBusinessAPI(), config.NewConfig())
	assert.NoError(t, app.Close())
}
