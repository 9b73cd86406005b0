package liststore

import (
	"errors"
	"fmt"
	"sync"
)

// Registry is a cache of long-lived open Store handles keyed by store
// name (the backing file path, or MemoryPath). It is not a general-purpose
// memoizer: an entry is created on first request and stays open until the
// registry itself is closed, so unrelated callers requesting the same name
// share one live connection instead of reopening the file.
//
// Construct one per process and inject it into callers; its Close is the
// process-exit teardown. There is no per-entry eviction.
//
// Memory-backed entries are opened exactly once for the registry's
// lifetime: their storage is released when the connection closes, so a
// cached memory handle must never close while cached.
type Registry struct {
	mu     sync.Mutex
	stores map[string]*Store
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{stores: make(map[string]*Store)}
}

// Get returns the open handle for name, creating and opening it on first
// request. When the backing file is absent it is initialized first, so the
// first request for a fresh name bootstraps the store.
//
// Second and later requests return the identical handle. Returned handles
// remain open for the registry's lifetime and must not be closed by
// callers; With on such a handle reuses the live connection.
func (r *Registry) Get(name string) (*Store, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if st, ok := r.stores[name]; ok {
		return st, nil
	}

	st, err := New(name)
	if errors.Is(err, ErrNotFound) {
		st, err = Initialize(name)
	}
	if err != nil {
		return nil, fmt.Errorf("get store %q: %w", name, err)
	}

	if err := st.Open(); err != nil {
		return nil, fmt.Errorf("open store %q: %w", name, err)
	}

	r.stores[name] = st
	return st, nil
}

// Close closes every cached handle and empties the registry. Call it once,
// at process exit.
func (r *Registry) Close() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	var errs []error
	for name, st := range r.stores {
		if err := st.Close(); err != nil {
			errs = append(errs, fmt.Errorf("close store %q: %w", name, err))
		}
		delete(r.stores, name)
	}
	return errors.Join(errs...)
}
