package config

import (
	"fmt"
	"os"

	"task-export/internal/repository/store"
)

// CreateRepository creates a repository instance using the configuration system
func CreateRepository(config *Config) (*store.SQLRepository, error) {
	if config.Database.Driver == DriverSQLite && config.Database.DSN == "" {
		if err := os.MkdirAll(config.Database.Dir, os.FileMode(config.Database.DirPermissions)); err != nil {
			return nil, fmt.Errorf("failed to create database directory: %w", err)
		}
	}

	repo, err := store.New(store.Options{
		Driver:       config.Database.Driver,
		DSN:          config.DataSourceName(),
		QueryTimeout: config.GetQueryTimeout(),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	return repo, nil
}

// CreateTestRepository creates an in-memory repository for testing
func CreateTestRepository() (*store.SQLRepository, error) {
	repo, err := store.NewSQLite(":memory:")
	if err != nil {
		return nil, fmt.Errorf("failed to initialize test database: %w", err)
	}

	return repo, nil
}
