/*
Package store defines the document persistence interface the core exposes
to its collaborators, plus an in-memory implementation for tests and dev.

PURPOSE:
  The engines are pure and never touch storage; the adapter layers load a
  document row, run the engines, and persist the result. DocumentStore is
  that seam. Rows are stored generically: the lifecycle fields the engine
  needs (type, status) are first-class columns, the variant-specific
  fields travel as a JSON payload owned by the domain packages.

ISOLATION CONTRACT:
  Re-validating a transition and persisting it must happen against the
  row that was read; the store implementations here serialize writes but
  deliberately add no transactional semantics beyond that. Database-level
  concurrency control belongs to the excluded persistence layer.

SEE ALSO:
  - sqlite: The SQLite-backed implementation
  - api: The collaborator driving this interface
*/
package store

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/odnamta/gis-erp-sub004/lifecycle"
)

// ErrNotFound is returned when no row matches the requested ID.
var ErrNotFound = errors.New("document not found")

// Record is one persisted document row.
type Record struct {
	ID        string            `json:"id"`
	DocType   lifecycle.DocType `json:"doc_type"`
	Status    lifecycle.Status  `json:"status"`
	Payload   json.RawMessage   `json:"payload"`
	CreatedAt time.Time         `json:"created_at"`
	UpdatedAt time.Time         `json:"updated_at"`
}

// DocumentStore persists document rows.
type DocumentStore interface {
	// Put inserts the row or replaces the row with the same ID.
	Put(ctx context.Context, rec Record) error

	// Get returns the row with the given ID or ErrNotFound.
	Get(ctx context.Context, id string) (Record, error)

	// ListByType returns every row of the given document type, oldest
	// first by creation time.
	ListByType(ctx context.Context, docType lifecycle.DocType) ([]Record, error)
}
