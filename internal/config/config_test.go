package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConfig_Defaults(t *testing.T) {
	cfg := NewConfig()

	assert.Equal(t, DriverSQLite, cfg.Database.Driver)
	assert.Equal(t, "tasks.db", cfg.Database.Filename)
	assert.Equal(t, 10*time.Second, cfg.GetQueryTimeout())
	assert.Equal(t, "Local", cfg.Locale.Timezone)
	assert.False(t, cfg.Locale.EscapeLabels)
	assert.Equal(t, ":8080", cfg.Server.Addr)
	assert.Equal(t, []string{"*"}, cfg.Server.AllowedOrigins)
	assert.Equal(t, "csv", cfg.Export.DefaultFormat)
	assert.NoError(t, cfg.Validate())
}

func TestConfig_DataSourceName(t *testing.T) {
	cfg := NewConfig()
	cfg.Database.Dir = "/data"
	cfg.Database.Filename = "board.db"
	assert.Equal(t, filepath.Join("/data", "board.db"), cfg.DataSourceName())

	cfg.Database.DSN = "file:board.db?cache=shared"
	assert.Equal(t, "file:board.db?cache=shared", cfg.DataSourceName())
}

func TestConfig_Location(t *testing.T) {
	cfg := NewConfig()
	loc, err := cfg.Location()
	require.NoError(t, err)
	assert.Equal(t, time.Local, loc)

	cfg.Locale.Timezone = "UTC"
	loc, err = cfg.Location()
	require.NoError(t, err)
	assert.Equal(t, "UTC", loc.String())
}

func TestConfig_LoadFromEnvironment(t *testing.T) {
	t.Setenv("TE_DB_DRIVER", "POSTGRES")
	t.Setenv("TE_DB_DSN", "postgres://localhost/kanboard")
	t.Setenv("TE_DB_QUERY_TIMEOUT", "3s")
	t.Setenv("TE_LANGUAGE", "fr_FR")
	t.Setenv("TE_TIMEZONE", "UTC")
	t.Setenv("TE_DATE_FORMAT", "02/01/2006")
	t.Setenv("TE_ESCAPE_LABELS", "true")
	t.Setenv("TE_CORS_ALLOWED_ORIGINS", "https://a.example, https://b.example,")
	t.Setenv("TE_APPLICATION_URL", "https://board.example")
	t.Setenv("TE_EXPORT_DEFAULT_FORMAT", "table")

	cfg := NewConfig()
	require.NoError(t, cfg.LoadFromEnvironment())

	assert.Equal(t, DriverPostgres, cfg.Database.Driver)
	assert.Equal(t, "postgres://localhost/kanboard", cfg.Database.DSN)
	assert.Equal(t, 3*time.Second, cfg.Database.QueryTimeout)
	assert.Equal(t, "fr_FR", cfg.Locale.Language)
	assert.Equal(t, "UTC", cfg.Locale.Timezone)
	assert.Equal(t, "02/01/2006", cfg.Locale.DateFormat)
	assert.True(t, cfg.Locale.EscapeLabels)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.Server.AllowedOrigins)
	assert.Equal(t, "https://board.example", cfg.Notification.ApplicationURL)
	assert.Equal(t, "table", cfg.Export.DefaultFormat)
	assert.NoError(t, cfg.Validate())
}

func TestConfig_LoadFromEnvironment_BadQueryTimeout(t *testing.T) {
	t.Setenv("TE_DB_QUERY_TIMEOUT", "soon")

	err := NewConfig().LoadFromEnvironment()
	require.Error(t, err)
	var cfgErr *ConfigError
	require.ErrorAs(t, err, &cfgErr)
	assert.Equal(t, "TE_DB_QUERY_TIMEOUT", cfgErr.Field)
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		field  string
	}{
		{"unknown driver", func(c *Config) { c.Database.Driver = "mysql" }, "database.driver"},
		{"postgres without dsn", func(c *Config) { c.Database.Driver = DriverPostgres }, "database.dsn"},
		{"empty sqlite dir", func(c *Config) { c.Database.Dir = "" }, "database.dir"},
		{"non-positive query timeout", func(c *Config) { c.Database.QueryTimeout = 0 }, "database.query_timeout"},
		{"bad timezone", func(c *Config) { c.Locale.Timezone = "Mars/Olympus" }, "locale.timezone"},
		{"empty addr", func(c *Config) { c.Server.Addr = "" }, "server.addr"},
		{"non-positive app timeout", func(c *Config) { c.Application.Timeout = -time.Second }, "application.timeout"},
		{"unknown format", func(c *Config) { c.Export.DefaultFormat = "xlsx" }, "export.default_format"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := NewConfig()
			tt.mutate(cfg)

			err := cfg.Validate()
			require.Error(t, err)
			var cfgErr *ConfigError
			require.ErrorAs(t, err, &cfgErr)
			assert.Equal(t, tt.field, cfgErr.Field)
		})
	}
}

func TestParseWithFallback(t *testing.T) {
	assert.Equal(t, 5*time.Second, ParseDurationWithFallback("5s", time.Second))
	assert.Equal(t, time.Second, ParseDurationWithFallback("nope", time.Second))
	assert.True(t, ParseBoolWithFallback("1", false))
	assert.False(t, ParseBoolWithFallback("maybe", false))
	assert.Equal(t, uint32(0700), ParseUint32WithFallback("700", 8, 0755))
	assert.Equal(t, uint32(0755), ParseUint32WithFallback("999", 8, 0755))
}

func TestLoader_EnvFile(t *testing.T) {
	envFile := filepath.Join(t.TempDir(), "test.env")
	require.NoError(t, os.WriteFile(envFile, []byte("TE_SERVER_ADDR=127.0.0.1:9999\n"), 0600))
	t.Setenv("TE_SERVER_ADDR", "")
	os.Unsetenv("TE_SERVER_ADDR")

	cfg, err := NewLoader().WithEnvFile(envFile).Load()
	require.NoError(t, err)
	assert.Equal(t, "127.0.0.1:9999", cfg.Server.Addr)
}

func TestLoader_MissingEnvFileIgnored(t *testing.T) {
	cfg, err := NewLoader().WithEnvFile(filepath.Join(t.TempDir(), "absent.env")).Load()
	require.NoError(t, err)
	assert.NotNil(t, cfg)
}

func TestLoader_LoadWithOverrides(t *testing.T) {
	addr := "localhost:7000"
	lang := "de"
	escape := true
	timeout := 2 * time.Second

	cfg, err := NewLoader().WithEnvFile("").LoadWithOverrides(&ConfigOverrides{
		ServerAddr:     &addr,
		Language:       &lang,
		EscapeLabels:   &escape,
		DBQueryTimeout: &timeout,
	})
	require.NoError(t, err)

	assert.Equal(t, addr, cfg.Server.Addr)
	assert.Equal(t, lang, cfg.Locale.Language)
	assert.True(t, cfg.Locale.EscapeLabels)
	assert.Equal(t, timeout, cfg.Database.QueryTimeout)
}

func TestLoader_LoadWithOverrides_Invalid(t *testing.T) {
	tz := "Nowhere/Special"
	_, err := NewLoader().WithEnvFile("").LoadWithOverrides(&ConfigOverrides{Timezone: &tz})
	assert.Error(t, err)
}

func TestLoader_OverrideReplacesInvalidEnvironment(t *testing.T) {
	t.Setenv("TE_TIMEZONE", "Nowhere/Special")

	_, err := NewLoader().WithEnvFile("").Load()
	require.Error(t, err)

	tz := "UTC"
	cfg, err := NewLoader().WithEnvFile("").LoadWithOverrides(&ConfigOverrides{Timezone: &tz})
	require.NoError(t, err)
	assert.Equal(t, tz, cfg.Locale.Timezone)
}
