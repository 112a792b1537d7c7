// Package storage provides SQLite-based persistence for the script
// library. Uses the pure-Go modernc.org/sqlite driver to avoid CGO
// dependencies.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// ErrNotFound is returned when a named script does not exist.
var ErrNotFound = errors.New("storage: script not found")

// Store manages the SQLite database connection for script persistence.
type Store struct {
	db *sql.DB
}

// Script is one saved teleprompter script.
type Script struct {
	ID        int64
	Name      string
	Body      string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Open creates or opens a SQLite database at the given path.
// It creates the parent directories if needed and runs migrations.
func Open(dbPath string) (*Store, error) {
	// Expand ~ to home directory
	if dbPath != "" && dbPath[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("storage: cannot expand home directory: %w", err)
		}
		dbPath = filepath.Join(home, dbPath[1:])
	}

	// Create parent directories
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	store := &Store{db: db}

	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}

	return store, nil
}

// migrate creates the database schema if it doesn't exist.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS scripts (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			name TEXT NOT NULL UNIQUE,
			body TEXT NOT NULL,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
			updated_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_scripts_updated ON scripts(updated_at DESC);
	`

	_, err := s.db.Exec(schema)
	return err
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// SaveScript inserts or updates a script by name and returns its ID.
func (s *Store) SaveScript(name, body string) (int64, error) {
	result, err := s.db.Exec(`
		INSERT INTO scripts (name, body) VALUES (?, ?)
		ON CONFLICT(name) DO UPDATE SET body = excluded.body, updated_at = CURRENT_TIMESTAMP`,
		name, body,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save script %q: %w", name, err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	return id, nil
}

// GetScript retrieves a script by name.
func (s *Store) GetScript(name string) (Script, error) {
	var sc Script
	err := s.db.QueryRow(
		"SELECT id, name, body, created_at, updated_at FROM scripts WHERE name = ?",
		name,
	).Scan(&sc.ID, &sc.Name, &sc.Body, &sc.CreatedAt, &sc.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return Script{}, ErrNotFound
	}
	if err != nil {
		return Script{}, fmt.Errorf("storage: cannot load script %q: %w", name, err)
	}
	return sc, nil
}

// ListScripts returns scripts ordered by most recently updated.
func (s *Store) ListScripts(limit int) ([]Script, error) {
	if limit <= 0 {
		limit = 50
	}

	rows, err := s.db.Query(
		"SELECT id, name, body, created_at, updated_at FROM scripts ORDER BY updated_at DESC LIMIT ?",
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot list scripts: %w", err)
	}
	defer rows.Close()

	var scripts []Script
	for rows.Next() {
		var sc Script
		if err := rows.Scan(&sc.ID, &sc.Name, &sc.Body, &sc.CreatedAt, &sc.UpdatedAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan script row: %w", err)
		}
		scripts = append(scripts, sc)
	}

	return scripts, rows.Err()
}

// DeleteScript removes a script by name.
func (s *Store) DeleteScript(name string) error {
	result, err := s.db.Exec("DELETE FROM scripts WHERE name = ?", name)
	if err != nil {
		return fmt.Errorf("storage: cannot delete script %q: %w", name, err)
	}

	n, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("storage: cannot check delete result: %w", err)
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}
