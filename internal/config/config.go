package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"
)

// Supported database drivers
const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
)

// Config holds all configuration options for the task export application
type Config struct {
	Database     DatabaseConfig
	Locale       LocaleConfig
	Server       ServerConfig
	Notification NotificationConfig
	Application  ApplicationConfig
	Export       ExportConfig
}

// DatabaseConfig holds database-related configuration
type DatabaseConfig struct {
	Driver         string        `env:"TE_DB_DRIVER"`
	Dir            string        `env:"TE_DB_DIR"`
	Filename       string        `env:"TE_DB_FILENAME"`
	DSN            string        `env:"TE_DB_DSN"`
	QueryTimeout   time.Duration `env:"TE_DB_QUERY_TIMEOUT"`
	DirPermissions uint32        `env:"TE_DB_DIR_PERMISSIONS"`
}

// LocaleConfig holds translation and date handling configuration
type LocaleConfig struct {
	Language     string `env:"TE_LANGUAGE"`
	Timezone     string `env:"TE_TIMEZONE"`
	DateFormat   string `env:"TE_DATE_FORMAT"`
	EscapeLabels bool   `env:"TE_ESCAPE_LABELS"`
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	Addr           string        `env:"TE_SERVER_ADDR"`
	AllowedOrigins []string      `env:"TE_CORS_ALLOWED_ORIGINS"`
	ReadTimeout    time.Duration `env:"TE_SERVER_READ_TIMEOUT"`
	WriteTimeout   time.Duration `env:"TE_SERVER_WRITE_TIMEOUT"`
}

// NotificationConfig holds notification rendering configuration
type NotificationConfig struct {
	ApplicationURL string `env:"TE_APPLICATION_URL"`
}

// ApplicationConfig holds application-level configuration
type ApplicationConfig struct {
	Timeout time.Duration `env:"TE_APP_TIMEOUT"`
	Verbose bool          `env:"TE_APP_VERBOSE"`
}

// ExportConfig holds export command defaults
type ExportConfig struct {
	DefaultFormat string `env:"TE_EXPORT_DEFAULT_FORMAT"`
}

// NewConfig creates a new configuration with sensible defaults
func NewConfig() *Config {
	homeDir, _ := os.UserHomeDir()
	defaultDBDir := filepath.Join(homeDir, ".taskexport")

	return &Config{
		Database: DatabaseConfig{
			Driver:         DriverSQLite,
			Dir:            defaultDBDir,
			Filename:       "tasks.db",
			QueryTimeout:   10 * time.Second,
			DirPermissions: 0755,
		},
		Locale: LocaleConfig{
			Timezone: "Local",
		},
		Server: ServerConfig{
			Addr:           ":8080",
			AllowedOrigins: []string{"*"},
			ReadTimeout:    15 * time.Second,
			WriteTimeout:   60 * time.Second,
		},
		Application: ApplicationConfig{
			Timeout: 60 * time.Second,
		},
		Export: ExportConfig{
			DefaultFormat: "csv",
		},
	}
}

// GetDatabasePath returns the full path to the sqlite database file
func (c *Config) GetDatabasePath() string {
	return filepath.Join(c.Database.Dir, c.Database.Filename)
}

// DataSourceName returns the connection string handed to the database driver.
// An explicit DSN always wins; sqlite falls back to the configured file path.
func (c *Config) DataSourceName() string {
	if c.Database.DSN != "" {
		return c.Database.DSN
	}
	return c.GetDatabasePath()
}

// GetQueryTimeout returns the database query timeout
func (c *Config) GetQueryTimeout() time.Duration {
	return c.Database.QueryTimeout
}

// Location resolves the configured export timezone
func (c *Config) Location() (*time.Location, error) {
	switch c.Locale.Timezone {
	case "", "Local":
		return time.Local, nil
	default:
		return time.LoadLocation(c.Locale.Timezone)
	}
}

// LoadFromEnvironment loads configuration from environment variables
func (c *Config) LoadFromEnvironment() error {
	// Database configuration
	if driver := os.Getenv("TE_DB_DRIVER"); driver != "" {
		c.Database.Driver = strings.ToLower(driver)
	}
	if dir := os.Getenv("TE_DB_DIR"); dir != "" {
		c.Database.Dir = dir
	}
	if filename := os.Getenv("TE_DB_FILENAME"); filename != "" {
		c.Database.Filename = filename
	}
	if dsn := os.Getenv("TE_DB_DSN"); dsn != "" {
		c.Database.DSN = dsn
	}
	if timeout := os.Getenv("TE_DB_QUERY_TIMEOUT"); timeout != "" {
		d, err := time.ParseDuration(timeout)
		if err != nil {
			return &ConfigError{Field: "TE_DB_QUERY_TIMEOUT", Message: err.Error()}
		}
		c.Database.QueryTimeout = d
	}
	if perms := os.Getenv("TE_DB_DIR_PERMISSIONS"); perms != "" {
		c.Database.DirPermissions = ParseUint32WithFallback(perms, 8, c.Database.DirPermissions)
	}

	// Locale configuration
	if lang := os.Getenv("TE_LANGUAGE"); lang != "" {
		c.Locale.Language = lang
	}
	if tz := os.Getenv("TE_TIMEZONE"); tz != "" {
		c.Locale.Timezone = tz
	}
	if format := os.Getenv("TE_DATE_FORMAT"); format != "" {
		c.Locale.DateFormat = format
	}
	if escape := os.Getenv("TE_ESCAPE_LABELS"); escape != "" {
		c.Locale.EscapeLabels = ParseBoolWithFallback(escape, c.Locale.EscapeLabels)
	}

	// Server configuration
	if addr := os.Getenv("TE_SERVER_ADDR"); addr != "" {
		c.Server.Addr = addr
	}
	if origins := os.Getenv("TE_CORS_ALLOWED_ORIGINS"); origins != "" {
		c.Server.AllowedOrigins = splitList(origins)
	}
	if timeout := os.Getenv("TE_SERVER_READ_TIMEOUT"); timeout != "" {
		c.Server.ReadTimeout = ParseDurationWithFallback(timeout, c.Server.ReadTimeout)
	}
	if timeout := os.Getenv("TE_SERVER_WRITE_TIMEOUT"); timeout != "" {
		c.Server.WriteTimeout = ParseDurationWithFallback(timeout, c.Server.WriteTimeout)
	}

	// Notification configuration
	if url := os.Getenv("TE_APPLICATION_URL"); url != "" {
		c.Notification.ApplicationURL = url
	}

	// Application configuration
	if timeout := os.Getenv("TE_APP_TIMEOUT"); timeout != "" {
		c.Application.Timeout = ParseDurationWithFallback(timeout, c.Application.Timeout)
	}
	if verbose := os.Getenv("TE_APP_VERBOSE"); verbose != "" {
		c.Application.Verbose = ParseBoolWithFallback(verbose, c.Application.Verbose)
	}

	// Export configuration
	if format := os.Getenv("TE_EXPORT_DEFAULT_FORMAT"); format != "" {
		c.Export.DefaultFormat = format
	}

	return nil
}

// Validate validates the configuration and returns any errors
func (c *Config) Validate() error {
	// Validate database configuration
	switch c.Database.Driver {
	case DriverSQLite:
		if c.Database.DSN == "" && c.Database.Dir == "" {
			return &ConfigError{Field: "database.dir", Message: "database directory cannot be empty"}
		}
		if c.Database.DSN == "" && c.Database.Filename == "" {
			return &ConfigError{Field: "database.filename", Message: "database filename cannot be empty"}
		}
	case DriverPostgres:
		if c.Database.DSN == "" {
			return &ConfigError{Field: "database.dsn", Message: "postgres requires a connection string"}
		}
	default:
		return &ConfigError{Field: "database.driver", Message: fmt.Sprintf("unsupported driver %q", c.Database.Driver)}
	}
	if c.Database.QueryTimeout <= 0 {
		return &ConfigError{Field: "database.query_timeout", Message: "query timeout must be positive"}
	}

	// Validate locale configuration
	if _, err := c.Location(); err != nil {
		return &ConfigError{Field: "locale.timezone", Message: err.Error()}
	}

	// Validate server configuration
	if c.Server.Addr == "" {
		return &ConfigError{Field: "server.addr", Message: "listen address cannot be empty"}
	}

	// Validate application configuration
	if c.Application.Timeout <= 0 {
		return &ConfigError{Field: "application.timeout", Message: "application timeout must be positive"}
	}

	switch c.Export.DefaultFormat {
	case "csv", "table":
	default:
		return &ConfigError{Field: "export.default_format", Message: fmt.Sprintf("unsupported format %q", c.Export.DefaultFormat)}
	}

	return nil
}

// ConfigError represents a configuration validation error
type ConfigError struct {
	Field   string
	Message string
}

func (e *ConfigError) Error() string {
	return e.Field + ": " + e.Message
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

// ParseDurationWithFallback parses a duration string with a fallback value
func ParseDurationWithFallback(s string, fallback time.Duration) time.Duration {
	if d, err := time.ParseDuration(s); err == nil {
		return d
	}
	return fallback
}

// ParseBoolWithFallback parses a boolean string with a fallback value
func ParseBoolWithFallback(s string, fallback bool) bool {
	if b, err := strconv.ParseBool(s); err == nil {
		return b
	}
	return fallback
}

// ParseUint32WithFallback parses a uint32 string with a fallback value
func ParseUint32WithFallback(s string, base int, fallback uint32) uint32 {
	if u, err := strconv.ParseUint(s, base, 32); err == nil {
		return uint32(u)
	}
	return fallback
}
