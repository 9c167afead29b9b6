package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	// Register modernc SQLite driver with database/sql.
	_ "modernc.org/sqlite"
)

const createLocalStorageTable = `
	CREATE TABLE IF NOT EXISTS local_storage (
		key   TEXT PRIMARY KEY,
		value BLOB NOT NULL
	)
`

// SQLiteStore keeps keys in a single two-column table
type SQLiteStore struct {
	db *sql.DB
}

// NewSQLiteStore opens (or creates) the sqlite database at path
func NewSQLiteStore(path string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open sqlite store %s: %w", path, err)
	}
	// sqlite allows a single writer
	db.SetMaxOpenConns(1)

	if _, err := db.Exec(createLocalStorageTable); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create local_storage table: %w", err)
	}

	return &SQLiteStore{db: db}, nil
}

// Get returns the value for key
func (s *SQLiteStore) Get(ctx context.Context, key string) ([]byte, bool, error) {
	var value []byte
	err := s.db.QueryRowContext(ctx, `SELECT value FROM local_storage WHERE key = ?`, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return value, true, nil
}

// Set upserts key
func (s *SQLiteStore) Set(ctx context.Context, key string, value []byte) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO local_storage (key, value) VALUES (?, ?)
		ON CONFLICT (key) DO UPDATE SET value = excluded.value
	`, key, value)
	return err
}

// Delete removes key
func (s *SQLiteStore) Delete(ctx context.Context, key string) error {
	_, err := s.db.ExecContext(ctx, `DELETE FROM local_storage WHERE key = ?`, key)
	return err
}

// Close closes the database
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}
