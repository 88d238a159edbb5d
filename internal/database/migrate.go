package database

import (
	"embed"
	"errors"
	"fmt"

	"github.com/golang-migrate/migrate/v4"
	migratedb "github.com/golang-migrate/migrate/v4/database"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/database/sqlite"
	"github.com/golang-migrate/migrate/v4/source/iofs"
)

//go:embed migrations
var migrationsFS embed.FS

// newMigrator builds a migrator over the embedded scripts for db's dialect.
// Postgres migrations run on their own connection opened from the URL;
// SQLite shares the pool because an in-memory database is private to it.
func newMigrator(db *DB) (*migrate.Migrate, error) {
	src, err := iofs.New(migrationsFS, "migrations/"+string(db.Dialect))
	if err != nil {
		return nil, fmt.Errorf("failed to load migrations: %w", err)
	}

	var driver migratedb.Driver
	switch db.Dialect {
	case DialectPostgres:
		return migrate.NewWithSourceInstance("iofs", src, db.URL)
	case DialectSQLite:
		driver, err = sqlite.WithInstance(db.DB, &sqlite.Config{})
	default:
		err = fmt.Errorf("unsupported dialect %q", db.Dialect)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to create migration driver: %w", err)
	}

	return migrate.NewWithInstance("iofs", src, string(db.Dialect), driver)
}

// RunMigrations applies every pending migration
func RunMigrations(db *DB) error {
	m, err := newMigrator(db)
	if err != nil {
		return err
	}
	defer closeMigrator(db, m)

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("failed to run migrations: %w", err)
	}
	return nil
}

// RollbackMigration reverts the most recent migration
func RollbackMigration(db *DB) error {
	m, err := newMigrator(db)
	if err != nil {
		return err
	}
	defer closeMigrator(db, m)

	if err := m.Steps(-1); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("failed to roll back migration: %w", err)
	}
	return nil
}

// MigrationVersion reports the applied schema version
func MigrationVersion(db *DB) (uint, bool, error) {
	m, err := newMigrator(db)
	if err != nil {
		return 0, false, err
	}
	defer closeMigrator(db, m)

	version, dirty, err := m.Version()
	if errors.Is(err, migrate.ErrNilVersion) {
		return 0, false, nil
	}
	return version, dirty, err
}

// closeMigrator releases the migrator. A SQLite migrator is left open since
// closing it would close the shared pool.
func closeMigrator(db *DB, m *migrate.Migrate) {
	if db.Dialect == DialectPostgres {
		m.Close()
	}
}
