package store

import (
	"context"
	"sync"
)

// MemoryStore is an in-memory variable store for testing and
// single-process use. Data is lost when the process exits.
type MemoryStore struct {
	mu     sync.RWMutex
	data   map[string]map[string]string // scope -> key -> value
	closed bool
}

// NewMemoryStore creates a new in-memory variable store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		data: make(map[string]map[string]string),
	}
}

// Get implements Store.
func (m *MemoryStore) Get(_ context.Context, scope, key string) (string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.closed {
		return "", ErrStoreClosed
	}

	value, ok := m.data[scope][key]
	if !ok {
		return "", ErrNotFound
	}
	return value, nil
}

// Set implements Store.
func (m *MemoryStore) Set(_ context.Context, scope, key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.closed {
		return ErrStoreClosed
	}

	if m.data[scope] == nil {
		m.data[scope] = make(map[string]string)
	}
	m.data[scope][key] = value
	return nil
}

// Delete implements Store.
func (m *MemoryStore) Delete(_ context.Context, scope, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.closed {
		return ErrStoreClosed
	}

	delete(m.data[scope], key)
	return nil
}

// List implements Store.
func (m *MemoryStore) List(_ context.Context, scope string) (map[string]string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.closed {
		return nil, ErrStoreClosed
	}

	out := make(map[string]string, len(m.data[scope]))
	for k, v := range m.data[scope] {
		out[k] = v
	}
	return out, nil
}

// Close implements Store.
func (m *MemoryStore) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.closed = true
	return nil
}
