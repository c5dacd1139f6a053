package store

import (
	"context"
	"sync"
)

// MemStore is an in-memory Store used by tests and offline tooling. FetchAll
// returns shallow copies of the stored slices so callers cannot mutate the
// fixtures between runs.
type MemStore struct {
	mu          sync.RWMutex
	collections map[string][]Record
	failures    map[string]error
}

// NewMemStore returns an empty MemStore.
func NewMemStore() *MemStore {
	return &MemStore{
		collections: make(map[string][]Record),
		failures:    make(map[string]error),
	}
}

// Put appends records to the named collection.
func (m *MemStore) Put(collection string, records ...Record) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.collections[collection] = append(m.collections[collection], records...)
}

// FailWith makes subsequent FetchAll calls for the named collection return err.
func (m *MemStore) FailWith(collection string, err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.failures[collection] = err
}

// FetchAll implements Store. Unknown collections return an empty result, not
// an error, matching the document database's behavior.
func (m *MemStore) FetchAll(ctx context.Context, collection string) ([]Record, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	if err := m.failures[collection]; err != nil {
		return nil, err
	}
	src := m.collections[collection]
	out := make([]Record, len(src))
	copy(out, src)
	return out, nil
}
