package config

import (
	"errors"
	"io/fs"
	"time"

	"github.com/joho/godotenv"
)

// DefaultEnvFile is read on startup when present
const DefaultEnvFile = ".env"

// Loader resolves configuration from defaults, a dotenv file, the
// environment and command line flags, in increasing order of precedence
type Loader struct {
	envFile string
}

// NewLoader creates a loader that reads DefaultEnvFile when present
func NewLoader() *Loader {
	return &Loader{envFile: DefaultEnvFile}
}

// WithEnvFile sets the dotenv file read before the environment. An empty
// path disables dotenv loading.
func (l *Loader) WithEnvFile(path string) *Loader {
	l.envFile = path
	return l
}

// Load returns a validated Config built from defaults and the environment.
// Variables already set in the process win over the dotenv file.
func (l *Loader) Load() (*Config, error) {
	return l.LoadWithOverrides(nil)
}

// LoadWithOverrides is Load with command line flags applied last
func (l *Loader) LoadWithOverrides(overrides *ConfigOverrides) (*Config, error) {
	if l.envFile != "" {
		if err := godotenv.Load(l.envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, &ConfigError{Field: "env_file", Message: err.Error()}
		}
	}

	cfg := NewConfig()
	if err := cfg.LoadFromEnvironment(); err != nil {
		return nil, err
	}
	overrides.apply(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// ConfigOverrides holds the flags given on the command line. A nil field
// leaves the value from the environment in place.
type ConfigOverrides struct {
	DBDriver       *string
	DBDir          *string
	DBFilename     *string
	DBDSN          *string
	DBQueryTimeout *time.Duration

	Language     *string
	Timezone     *string
	DateFormat   *string
	EscapeLabels *bool

	ServerAddr *string

	ApplicationURL *string

	Timeout *time.Duration
	Verbose *bool
}

func override[T any](dst *T, src *T) {
	if src != nil {
		*dst = *src
	}
}

func (o *ConfigOverrides) apply(cfg *Config) {
	if o == nil {
		return
	}

	override(&cfg.Database.Driver, o.DBDriver)
	override(&cfg.Database.Dir, o.DBDir)
	override(&cfg.Database.Filename, o.DBFilename)
	override(&cfg.Database.DSN, o.DBDSN)
	override(&cfg.Database.QueryTimeout, o.DBQueryTimeout)

	override(&cfg.Locale.Language, o.Language)
	override(&cfg.Locale.Timezone, o.Timezone)
	override(&cfg.Locale.DateFormat, o.DateFormat)
	override(&cfg.Locale.EscapeLabels, o.EscapeLabels)

	override(&cfg.Server.Addr, o.ServerAddr)
	override(&cfg.Notification.ApplicationURL, o.ApplicationURL)

	override(&cfg.Application.Timeout, o.Timeout)
	override(&cfg.Application.Verbose, o.Verbose)
}
