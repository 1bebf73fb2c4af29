package database

import (
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"graphdb/logger"
	"os"
	"path/filepath"

	"github.com/golang-migrate/migrate/v4"
	migratesqlite "github.com/golang-migrate/migrate/v4/database/sqlite3"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	_ "github.com/mattn/go-sqlite3"
)

//go:embed migrations/*.sql
var migrationFS embed.FS

var DB *sql.DB

// dsn enables foreign keys and takes the write lock when a transaction
// begins, so an existence check and the write that depends on it cannot
// interleave with another writer.
func dsn(path string) string {
	return path + "?_foreign_keys=on&_txlock=immediate&_busy_timeout=5000"
}

// Open opens (creating if needed) the SQLite graph database at path and
// applies pending migrations.
func Open(path string) (*sql.DB, error) {
	dbDir := filepath.Dir(path)
	if dbDir != "." && dbDir != "" {
		if err := os.MkdirAll(dbDir, 0750); err != nil {
			return nil, fmt.Errorf("failed to create database directory %s: %w", dbDir, err)
		}
	}

	db, err := sql.Open("sqlite3", dsn(path))
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	if err = db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	if err := migrateUp(db); err != nil {
		db.Close()
		return nil, err
	}
	return db, nil
}

func migrateUp(db *sql.DB) error {
	src, err := iofs.New(migrationFS, "migrations")
	if err != nil {
		return fmt.Errorf("failed to load embedded migrations: %w", err)
	}
	driver, err := migratesqlite.WithInstance(db, &migratesqlite.Config{})
	if err != nil {
		return fmt.Errorf("failed to initialize migration driver: %w", err)
	}
	// m is not closed: closing it would close db as well.
	m, err := migrate.NewWithInstance("iofs", src, "sqlite3", driver)
	if err != nil {
		return fmt.Errorf("failed to initialize migrations: %w", err)
	}

	logger.Info("Applying database migrations...")
	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("failed to apply migrations: %w", err)
	}
	logger.Info("Database migrations applied successfully (or no changes).")
	return nil
}

// InitDB opens the database at dataSourceName into the package-level DB.
func InitDB(dataSourceName string) error {
	db, err := Open(dataSourceName)
	if err != nil {
		logger.Error("InitDB: %v", err)
		return err
	}
	DB = db
	return nil
}

func CloseDB() error {
	if DB == nil {
		return nil
	}
	err := DB.Close()
	DB = nil
	return err
}
