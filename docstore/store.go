// Package docstore keeps parsed documents available between requests for a
// limited time, keyed by a generated document ID.
package docstore

import (
	"context"
	"errors"
	"time"

	"github.com/PopovMP/html-ast/dom"
)

// Key prefix separating document entries from anything else sharing the
// same redis database.
const DocumentPrefix = "doc:"

// ErrNotFound is returned when a document ID is unknown or its entry has
// expired.
var ErrNotFound = errors.New("document not found or expired")

// StoredDocument is the value kept per document ID.
type StoredDocument struct {
	HTML      string    `json:"html"`
	Root      *dom.Node `json:"root"`
	CreatedAt time.Time `json:"created_at"`
}

type Store interface {
	SaveDocument(ctx context.Context, id string, doc StoredDocument, ttl time.Duration) error
	GetDocument(ctx context.Context, id string) (*StoredDocument, error)
	DeleteDocument(ctx context.Context, id string) error
}
