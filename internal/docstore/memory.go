package docstore

import (
	"context"
	"maps"
	"sync"
)

// MemoryStore keeps collections in process memory. Used for local
// development and tests.
type MemoryStore struct {
	mu          sync.RWMutex
	collections map[string][]Document
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{collections: make(map[string][]Document)}
}

func (s *MemoryStore) Where(ctx context.Context, collection, field, value string) ([]Document, error) {
	if collection == "" {
		return nil, ErrEmptyCollection
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []Document
	for _, doc := range s.collections[collection] {
		if matches(doc, field, value) {
			out = append(out, maps.Clone(doc))
		}
	}
	return out, nil
}

func (s *MemoryStore) Insert(ctx context.Context, collection string, doc Document) error {
	if collection == "" {
		return ErrEmptyCollection
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.collections[collection] = append(s.collections[collection], maps.Clone(doc))
	return nil
}

func (s *MemoryStore) Close() error { return nil }
