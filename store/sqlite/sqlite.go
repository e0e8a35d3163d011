/*
Package sqlite provides a SQLite-backed implementation of the document
store interface.

PURPOSE:
  Implements store.DocumentStore using SQLite. In production the same
  patterns apply to PostgreSQL - only minor SQL dialect differences.

SCHEMA:
  documents:
    id          TEXT PRIMARY KEY
    doc_type    TEXT NOT NULL (indexed)
    status      TEXT NOT NULL
    payload     TEXT NOT NULL (JSON, variant-specific fields)
    created_at  TIMESTAMP NOT NULL
    updated_at  TIMESTAMP NOT NULL

  Status lives in its own column so operational queries (stale drafts,
  open receivables) do not need to unpack the payload.

WAL MODE:
  The database is opened with WAL (Write-Ahead Logging):
  - Multiple readers don't block
  - Single writer at a time
  - Better crash recovery

USAGE:
  st, err := sqlite.New("./data/erp.db")
  if err != nil {
      log.Fatal(err)
  }
  defer st.Close()

MIGRATION:
  Schema is auto-migrated on New(). For production, use a proper
  migration tool (golang-migrate, goose) with versioned migrations.

SEE ALSO:
  - store: Interface definition and in-memory implementation
*/
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"sync"

	_ "github.com/mattn/go-sqlite3"

	"github.com/odnamta/gis-erp-sub004/lifecycle"
	"github.com/odnamta/gis-erp-sub004/store"
)

// Store implements store.DocumentStore using SQLite.
type Store struct {
	db *sql.DB
	mu sync.RWMutex
}

var _ store.DocumentStore = (*Store)(nil)

const schema = `
CREATE TABLE IF NOT EXISTS documents (
	id         TEXT PRIMARY KEY,
	doc_type   TEXT NOT NULL,
	status     TEXT NOT NULL,
	payload    TEXT NOT NULL,
	created_at TIMESTAMP NOT NULL,
	updated_at TIMESTAMP NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_documents_type ON documents(doc_type, created_at);
CREATE INDEX IF NOT EXISTS idx_documents_type_status ON documents(doc_type, status);
`

// New opens (or creates) the database at path and migrates the schema.
// Use ":memory:" for an in-memory database.
func New(path string) (*Store, error) {
	db, err := sql.Open("sqlite3", path+"?_journal_mode=WAL&_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to migrate schema: %w", err)
	}
	return &Store{db: db}, nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}

// Put inserts the row or replaces the row with the same ID.
func (s *Store) Put(ctx context.Context, rec store.Record) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO documents (id, doc_type, status, payload, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			status = excluded.status,
			payload = excluded.payload,
			updated_at = excluded.updated_at`,
		rec.ID, string(rec.DocType), string(rec.Status), string(rec.Payload),
		rec.CreatedAt, rec.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to persist document %s: %w", rec.ID, err)
	}
	return nil
}

// Get returns the row with the given ID or store.ErrNotFound.
func (s *Store) Get(ctx context.Context, id string) (store.Record, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	row := s.db.QueryRowContext(ctx, `
		SELECT id, doc_type, status, payload, created_at, updated_at
		FROM documents WHERE id = ?`, id)

	rec, err := scanRecord(row)
	if errors.Is(err, sql.ErrNoRows) {
		return store.Record{}, store.ErrNotFound
	}
	if err != nil {
		return store.Record{}, fmt.Errorf("failed to load document %s: %w", id, err)
	}
	return rec, nil
}

// ListByType returns every row of the given type, oldest first.
func (s *Store) ListByType(ctx context.Context, docType lifecycle.DocType) ([]store.Record, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rows, err := s.db.QueryContext(ctx, `
		SELECT id, doc_type, status, payload, created_at, updated_at
		FROM documents WHERE doc_type = ?
		ORDER BY created_at, id`, string(docType))
	if err != nil {
		return nil, fmt.Errorf("failed to list %s documents: %w", docType, err)
	}
	defer rows.Close()

	out := make([]store.Record, 0)
	for rows.Next() {
		rec, err := scanRecord(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan document row: %w", err)
		}
		out = append(out, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate document rows: %w", err)
	}
	return out, nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanRecord(sc scanner) (store.Record, error) {
	var rec store.Record
	var docType, status, payload string
	if err := sc.Scan(&rec.ID, &docType, &status, &payload, &rec.CreatedAt, &rec.UpdatedAt); err != nil {
		return store.Record{}, err
	}
	rec.DocType = lifecycle.DocType(docType)
	rec.Status = lifecycle.Status(status)
	rec.Payload = []byte(payload)
	return rec, nil
}
