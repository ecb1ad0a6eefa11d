package migrations

import (
	"context"
	"database/sql"
	"embed"
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strconv"
	"strings"
)

//go:embed sqlite/*.sql postgres/*.sql
var migrationsFS embed.FS

const (
	upSuffix = ".up.sql"

	createVersionTable = `
	CREATE TABLE IF NOT EXISTS migrations (
		version INTEGER PRIMARY KEY,
		applied_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
	)`
)

// Migration is one numbered schema change for a driver, read from a file
// named NNNNNN_name.up.sql. Migrations only move forward.
type Migration struct {
	Version int
	Name    string
	Up      string
}

// RunMigrations applies every embedded migration of driver that the
// migrations table does not list yet, each in its own transaction
func RunMigrations(ctx context.Context, db *sql.DB, driver string) error {
	if _, err := db.ExecContext(ctx, createVersionTable); err != nil {
		return fmt.Errorf("failed to create migrations table: %w", err)
	}

	all, err := LoadMigrations(driver)
	if err != nil {
		return fmt.Errorf("failed to load migrations: %w", err)
	}

	done, err := AppliedVersions(ctx, db)
	if err != nil {
		return fmt.Errorf("failed to get applied migrations: %w", err)
	}
	applied := make(map[int]struct{}, len(done))
	for _, v := range done {
		applied[v] = struct{}{}
	}

	record := "INSERT INTO migrations (version) VALUES (?)"
	if driver == "postgres" {
		record = "INSERT INTO migrations (version) VALUES ($1)"
	}

	for _, m := range all {
		if _, ok := applied[m.Version]; ok {
			continue
		}
		if err := apply(ctx, db, m, record); err != nil {
			return fmt.Errorf("failed to apply migration %d (%s): %w", m.Version, m.Name, err)
		}
	}
	return nil
}

// AppliedVersions returns the applied migration versions in ascending order
func AppliedVersions(ctx context.Context, db *sql.DB) ([]int, error) {
	rows, err := db.QueryContext(ctx, "SELECT version FROM migrations ORDER BY version")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	versions := []int{}
	for rows.Next() {
		var v int
		if err := rows.Scan(&v); err != nil {
			return nil, err
		}
		versions = append(versions, v)
	}
	return versions, rows.Err()
}

// LoadMigrations reads the embedded migrations of a driver, sorted by version
func LoadMigrations(driver string) ([]Migration, error) {
	entries, err := fs.ReadDir(migrationsFS, driver)
	if err != nil {
		return nil, fmt.Errorf("no migrations for driver %q: %w", driver, err)
	}

	var out []Migration
	for _, entry := range entries {
		name, ok := strings.CutSuffix(entry.Name(), upSuffix)
		if !ok {
			continue
		}
		version := extractVersion(entry.Name())
		if version == 0 {
			continue
		}

		up, err := migrationsFS.ReadFile(path.Join(driver, entry.Name()))
		if err != nil {
			return nil, err
		}
		out = append(out, Migration{Version: version, Name: name, Up: string(up)})
	}

	sort.Slice(out, func(i, j int) bool { return out[i].Version < out[j].Version })
	return out, nil
}

func apply(ctx context.Context, db *sql.DB, m Migration, record string) (err error) {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			tx.Rollback()
		}
	}()

	if _, err = tx.ExecContext(ctx, m.Up); err != nil {
		return err
	}
	if _, err = tx.ExecContext(ctx, record, m.Version); err != nil {
		return err
	}
	return tx.Commit()
}

// extractVersion parses the numeric prefix of a migration file name; 0 means
// the file is not a migration
func extractVersion(filename string) int {
	prefix, _, ok := strings.Cut(filename, "_")
	if !ok {
		return 0
	}
	v, err := strconv.Atoi(prefix)
	if err != nil || v < 0 {
		return 0
	}
	return v
}
