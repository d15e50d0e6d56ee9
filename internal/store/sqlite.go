// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package store

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// =============================================================================
// SQLITE STORE
// =============================================================================

// SQLiteStore persists preferences in a SQLite database and records
// every write in a history table, so `shade history` can show when and
// why the theme changed.
type SQLiteStore struct {
	db   *sql.DB
	path string

	// source tags history rows with who caused the write ("user",
	// "system", "resolution"). Defaults to "user".
	source string
}

// ChangeRecord is one row of the preference change history.
type ChangeRecord struct {
	ID        string
	Key       string
	Value     string
	Source    string
	ChangedAt time.Time
}

const schema = `
CREATE TABLE IF NOT EXISTS preferences (
	key        TEXT PRIMARY KEY,
	value      TEXT NOT NULL,
	updated_at INTEGER NOT NULL
);

CREATE TABLE IF NOT EXISTS history (
	id         TEXT PRIMARY KEY,
	key        TEXT NOT NULL,
	value      TEXT NOT NULL,
	source     TEXT NOT NULL,
	changed_at INTEGER NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_history_changed_at ON history(changed_at DESC);
`

// NewSQLiteStore opens (or creates) the database at path.
func NewSQLiteStore(path string) (*SQLiteStore, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, fmt.Errorf("create store directory: %w", err)
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open preference database: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("initialize schema: %w", err)
	}

	return &SQLiteStore{db: db, path: path, source: "user"}, nil
}

// SetSource tags subsequent writes with the given change source.
func (s *SQLiteStore) SetSource(source string) {
	s.source = source
}

// Get returns the stored value for key. Database errors read as
// absent; resolution falls through to the next preference source.
func (s *SQLiteStore) Get(key string) (string, bool) {
	var value string
	err := s.db.QueryRow("SELECT value FROM preferences WHERE key = ?", key).Scan(&value)
	if err != nil {
		return "", false
	}
	return value, true
}

// Set upserts the preference and appends a history row in one
// transaction.
func (s *SQLiteStore) Set(key, value string) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer tx.Rollback()

	now := time.Now().UnixNano()
	_, err = tx.Exec(`
		INSERT INTO preferences (key, value, updated_at) VALUES (?, ?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at
	`, key, value, now)
	if err != nil {
		return fmt.Errorf("upsert preference: %w", err)
	}

	_, err = tx.Exec(`
		INSERT INTO history (id, key, value, source, changed_at) VALUES (?, ?, ?, ?, ?)
	`, uuid.NewString(), key, value, s.source, now)
	if err != nil {
		return fmt.Errorf("record history: %w", err)
	}

	return tx.Commit()
}

// History returns the most recent preference changes, newest first.
// limit <= 0 means all rows.
func (s *SQLiteStore) History(limit int) ([]ChangeRecord, error) {
	query := "SELECT id, key, value, source, changed_at FROM history ORDER BY changed_at DESC, rowid DESC"
	args := []any{}
	if limit > 0 {
		query += " LIMIT ?"
		args = append(args, limit)
	}

	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("query history: %w", err)
	}
	defer rows.Close()

	var records []ChangeRecord
	for rows.Next() {
		var r ChangeRecord
		var ts int64
		if err := rows.Scan(&r.ID, &r.Key, &r.Value, &r.Source, &ts); err != nil {
			return nil, fmt.Errorf("scan history row: %w", err)
		}
		r.ChangedAt = time.Unix(0, ts)
		records = append(records, r)
	}
	return records, rows.Err()
}

// Path returns the backing database path.
func (s *SQLiteStore) Path() string {
	return s.path
}

// Close releases the database handle.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}
