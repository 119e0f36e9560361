package semantic

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"time"

	_ "modernc.org/sqlite"

	"github.com/ZaguanLabs/textkey"
)

// SQLiteStore persists semantic cache entries in a SQLite database.
type SQLiteStore struct {
	db   *sql.DB
	path string
}

// OpenSQLite opens or creates the database at path and applies migrations.
func OpenSQLite(path string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, &textkey.StoreError{Message: "open sqlite db", Cause: err}
	}

	pragmas := []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA foreign_keys = ON",
		"PRAGMA busy_timeout = 5000",
	}
	for _, pragma := range pragmas {
		if _, execErr := db.Exec(pragma); execErr != nil {
			_ = db.Close()
			return nil, &textkey.StoreError{Message: "apply pragma", Cause: execErr}
		}
	}

	store := &SQLiteStore{db: db, path: path}
	if err := store.applyMigrations(context.Background()); err != nil {
		_ = db.Close()
		return nil, err
	}

	return store, nil
}

func (s *SQLiteStore) applyMigrations(ctx context.Context) error {
	const schema = `
CREATE TABLE IF NOT EXISTS semantic_entries (
    id           TEXT PRIMARY KEY,
    fingerprint  TEXT NOT NULL UNIQUE,
    text         TEXT NOT NULL,
    embedding    TEXT NOT NULL,
    response     TEXT NOT NULL,
    created_at   TEXT NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_semantic_entries_fingerprint
    ON semantic_entries (fingerprint);`

	if _, err := s.db.ExecContext(ctx, schema); err != nil {
		return &textkey.StoreError{Message: "apply migrations", Cause: err}
	}
	return nil
}

// Insert stores an entry, replacing any existing entry with the same fingerprint.
func (s *SQLiteStore) Insert(ctx context.Context, entry Entry) error {
	embedding, err := json.Marshal(entry.Embedding)
	if err != nil {
		return &textkey.StoreError{Message: "encode embedding", Cause: err}
	}

	_, err = s.db.ExecContext(
		ctx,
		`INSERT INTO semantic_entries (id, fingerprint, text, embedding, response, created_at)
         VALUES (?, ?, ?, ?, ?, ?)
         ON CONFLICT(fingerprint) DO UPDATE SET
             id = excluded.id,
             text = excluded.text,
             embedding = excluded.embedding,
             response = excluded.response,
             created_at = excluded.created_at`,
		entry.ID,
		entry.Fingerprint,
		entry.Text,
		string(embedding),
		entry.Response,
		entry.CreatedAt.UTC().Format(time.RFC3339Nano),
	)
	if err != nil {
		return &textkey.StoreError{Message: "insert entry", Cause: err}
	}
	return nil
}

// GetByFingerprint returns the entry with the given fingerprint, or nil.
func (s *SQLiteStore) GetByFingerprint(ctx context.Context, fingerprint string) (*Entry, error) {
	row := s.db.QueryRowContext(
		ctx,
		`SELECT id, fingerprint, text, embedding, response, created_at
         FROM semantic_entries WHERE fingerprint = ?`,
		fingerprint,
	)

	entry, err := scanEntry(row.Scan)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return entry, nil
}

// All returns every stored entry.
func (s *SQLiteStore) All(ctx context.Context) ([]Entry, error) {
	rows, err := s.db.QueryContext(
		ctx,
		`SELECT id, fingerprint, text, embedding, response, created_at
         FROM semantic_entries ORDER BY created_at`,
	)
	if err != nil {
		return nil, &textkey.StoreError{Message: "query entries", Cause: err}
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		entry, scanErr := scanEntry(rows.Scan)
		if scanErr != nil {
			return nil, scanErr
		}
		entries = append(entries, *entry)
	}
	if err := rows.Err(); err != nil {
		return nil, &textkey.StoreError{Message: "iterate entries", Cause: err}
	}

	return entries, nil
}

// Len returns the number of stored entries.
func (s *SQLiteStore) Len(ctx context.Context) (int, error) {
	var n int
	err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM semantic_entries`).Scan(&n)
	if err != nil {
		return 0, &textkey.StoreError{Message: "count entries", Cause: err}
	}
	return n, nil
}

// Delete removes the entry with the given fingerprint.
func (s *SQLiteStore) Delete(ctx context.Context, fingerprint string) error {
	_, err := s.db.ExecContext(ctx, `DELETE FROM semantic_entries WHERE fingerprint = ?`, fingerprint)
	if err != nil {
		return &textkey.StoreError{Message: "delete entry", Cause: err}
	}
	return nil
}

// Close closes the underlying database connection.
func (s *SQLiteStore) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

// scanEntry reads one row into an Entry.
func scanEntry(scan func(dest ...any) error) (*Entry, error) {
	var entry Entry
	var embedding, createdAt string

	if err := scan(&entry.ID, &entry.Fingerprint, &entry.Text, &embedding, &entry.Response, &createdAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, &textkey.StoreError{Message: "scan entry", Cause: err}
	}

	if err := json.Unmarshal([]byte(embedding), &entry.Embedding); err != nil {
		return nil, &textkey.StoreError{Message: "decode embedding", Cause: err}
	}

	ts, err := time.Parse(time.RFC3339Nano, createdAt)
	if err != nil {
		return nil, &textkey.StoreError{Message: "parse created_at", Cause: err}
	}
	entry.CreatedAt = ts

	return &entry, nil
}

// Verify SQLiteStore implements Store
var _ Store = (*SQLiteStore)(nil)
