// Package state provides SQLite-based registry storage for the cylclockd nameserver.
package state

import (
	"context"
	"database/sql"
	_ "embed"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"github.com/jayteealao/cylclockd/internal/errors"
	_ "github.com/mattn/go-sqlite3"
)

//go:embed migrations/001_initial.sql
var initialMigration string

// Store persists name registrations in SQLite.
type Store struct {
	db      *sql.DB
	dataDir string
}

// Entry is one name registration.
type Entry struct {
	ID        string
	Name      string // composite group.object name
	Address   string // host:port of the registered object
	CreatedAt time.Time
	UpdatedAt time.Time
}

// New creates a new Store with the given data directory.
// The database file will be created at <dataDir>/registry.db.
func New(dataDir string) (*Store, error) {
	if err := os.MkdirAll(dataDir, 0750); err != nil {
		return nil, fmt.Errorf("failed to create data directory: %w", err)
	}

	dbPath := filepath.Join(dataDir, "registry.db")
	db, err := sql.Open("sqlite3", dbPath+"?_journal_mode=WAL&_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	db.SetMaxOpenConns(1) // SQLite doesn't handle concurrent writes well
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(time.Hour)

	store := &Store{
		db:      db,
		dataDir: dataDir,
	}

	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	return store, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// DataDir returns the data directory path.
func (s *Store) DataDir() string {
	return s.dataDir
}

// migrate runs database migrations.
func (s *Store) migrate() error {
	var version int
	err := s.db.QueryRow("SELECT COALESCE(MAX(version), 0) FROM schema_migrations").Scan(&version)
	if err != nil {
		// Table doesn't exist yet
		version = 0
	}

	if version < 1 {
		if _, err := s.db.Exec(initialMigration); err != nil {
			return fmt.Errorf("failed to run initial migration: %w", err)
		}
	}

	return nil
}

// Register binds name to address, replacing any previous binding.
// The entry ID is kept stable across rebinds.
func (s *Store) Register(ctx context.Context, name, address string) (*Entry, error) {
	query := `
		INSERT INTO registry (id, name, address)
		VALUES (?, ?, ?)
		ON CONFLICT(name) DO UPDATE SET address = excluded.address, updated_at = CURRENT_TIMESTAMP
	`

	_, err := s.db.ExecContext(ctx, query, uuid.New().String(), name, address)
	if err != nil {
		return nil, fmt.Errorf("failed to register %s: %w", name, err)
	}

	return s.Lookup(ctx, name)
}

// Lookup retrieves the entry registered under name.
func (s *Store) Lookup(ctx context.Context, name string) (*Entry, error) {
	query := `
		SELECT id, name, address, created_at, updated_at
		FROM registry WHERE name = ?
	`

	var e Entry
	err := s.db.QueryRowContext(ctx, query, name).Scan(
		&e.ID, &e.Name, &e.Address, &e.CreatedAt, &e.UpdatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, errors.ErrNameNotFound
		}
		return nil, fmt.Errorf("failed to look up %s: %w", name, err)
	}

	return &e, nil
}

// Unregister removes the binding for name.
func (s *Store) Unregister(ctx context.Context, name string) error {
	result, err := s.db.ExecContext(ctx, `DELETE FROM registry WHERE name = ?`, name)
	if err != nil {
		return fmt.Errorf("failed to unregister %s: %w", name, err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return errors.ErrNameNotFound
	}

	return nil
}

// List returns all registrations ordered by name.
func (s *Store) List(ctx context.Context) ([]*Entry, error) {
	query := `
		SELECT id, name, address, created_at, updated_at
		FROM registry ORDER BY name
	`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list registry: %w", err)
	}
	defer rows.Close()

	var entries []*Entry
	for rows.Next() {
		var e Entry
		if err := rows.Scan(&e.ID, &e.Name, &e.Address, &e.CreatedAt, &e.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan registry entry: %w", err)
		}
		entries = append(entries, &e)
	}

	return entries, rows.Err()
}
