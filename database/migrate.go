package database

import (
	"context"
	"embed"
	"fmt"
	"io/fs"
	"path"
	"strconv"
	"strings"

	"gorm.io/gorm"
)

//go:embed migrations/*.sql
var migrationFiles embed.FS

// Migration is one numbered schema step. Files are named NNNN_description.sql
// and the number is recorded in PRAGMA user_version once the step commits.
type Migration struct {
	Version int
	Name    string
	SQL     string
}

// Migrations returns the embedded migrations in version order.
func Migrations() ([]Migration, error) {
	return loadMigrations(migrationFiles, "migrations")
}

func loadMigrations(fsys fs.FS, dir string) ([]Migration, error) {
	entries, err := fs.ReadDir(fsys, dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read migrations: %w", err)
	}

	migrations := make([]Migration, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() || path.Ext(entry.Name()) != ".sql" {
			continue
		}

		prefix, rest, ok := strings.Cut(entry.Name(), "_")
		if !ok {
			return nil, fmt.Errorf("migration %q: missing version prefix", entry.Name())
		}
		version, err := strconv.Atoi(prefix)
		if err != nil {
			return nil, fmt.Errorf("migration %q: invalid version: %w", entry.Name(), err)
		}

		// ReadDir sorts by name, so versions must come out as 1, 2, 3...
		if want := len(migrations) + 1; version != want {
			return nil, fmt.Errorf("migration %q: expected version %d", entry.Name(), want)
		}

		body, err := fs.ReadFile(fsys, path.Join(dir, entry.Name()))
		if err != nil {
			return nil, fmt.Errorf("failed to read migration %q: %w", entry.Name(), err)
		}

		migrations = append(migrations, Migration{
			Version: version,
			Name:    strings.TrimSuffix(rest, ".sql"),
			SQL:     string(body),
		})
	}

	return migrations, nil
}

// SchemaVersion reports the last migration applied to db.
func SchemaVersion(ctx context.Context, db *gorm.DB) (int, error) {
	var version int
	if err := db.WithContext(ctx).Raw("PRAGMA user_version").Scan(&version).Error; err != nil {
		return 0, fmt.Errorf("get user_version: %w", err)
	}
	return version, nil
}

// Migrate applies every embedded migration newer than the current schema
// version and returns the resulting version. Each step runs in its own
// transaction together with the user_version bump, so a failed step leaves
// the database at the previous version. Running it again is a no-op.
func Migrate(ctx context.Context, db *gorm.DB) (int, error) {
	migrations, err := Migrations()
	if err != nil {
		return 0, err
	}
	return apply(ctx, db, migrations)
}

func apply(ctx context.Context, db *gorm.DB, migrations []Migration) (int, error) {
	version, err := SchemaVersion(ctx, db)
	if err != nil {
		return 0, err
	}
	if version > len(migrations) {
		return version, fmt.Errorf("database schema version %d is newer than this build (%d)", version, len(migrations))
	}

	for _, m := range migrations {
		if m.Version <= version {
			continue
		}

		err := db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
			if err := tx.Exec(m.SQL).Error; err != nil {
				return err
			}
			return tx.Exec(fmt.Sprintf("PRAGMA user_version = %d", m.Version)).Error
		})
		if err != nil {
			return version, fmt.Errorf("migrate to v%d (%s): %w", m.Version, m.Name, err)
		}
		version = m.Version
	}

	return version, nil
}
