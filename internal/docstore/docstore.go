// Package docstore is a thin document-collection abstraction: named
// collections of field maps, queried by a single equality filter.
package docstore

import (
	"context"
	"errors"
)

// Document is one stored record as a field map.
type Document map[string]any

// Store is the query surface the question service needs. Implementations
// must be safe for concurrent use; one instance lives for the process.
type Store interface {
	// Where returns every document in collection whose field equals value.
	// An empty result is not an error.
	Where(ctx context.Context, collection, field, value string) ([]Document, error)

	// Insert adds doc to collection.
	Insert(ctx context.Context, collection string, doc Document) error

	Close() error
}

var ErrEmptyCollection = errors.New("collection name is required")

// matches reports whether doc[field] is a string equal to value. Non-string
// fields never match, the same as an equality filter on a typed store.
func matches(doc Document, field, value string) bool {
	v, ok := doc[field].(string)
	return ok && v == value
}
