// Package store implements the namespaced key-value persistence layer that
// every feature of the hostel management system is built on.
//
// The layering mirrors how the data flows through the application:
//
//	Backend    — raw synchronous string-keyed persistence (memory or SQLite)
//	Store      — JSON (de)serialization under the shared "hostelManagement:" prefix
//	Collection — typed, ordered record sequences with upsert/remove semantics
//
// Nothing in this package ever panics or returns an error to a caller above
// the Backend boundary: a failed read degrades to "absent" and a failed write
// is dropped (and logged), so callers can always proceed with safe defaults.
package store

import "sync"

// Backend is the persistence substrate: synchronous get/set/remove by string
// key, string value. Implementations must be safe for concurrent use.
type Backend interface {
	// Get returns the raw value for key. The bool reports whether the key
	// exists; a missing key is not an error.
	Get(key string) (string, bool, error)
	// Set writes value under key, replacing any previous value.
	Set(key, value string) error
	// Remove deletes key. Removing an absent key is a no-op, not an error.
	Remove(key string) error
}

// MemoryBackend is a map-backed Backend. It is the default for tests and for
// ephemeral runs where durability is not wanted.
type MemoryBackend struct {
	mu   sync.RWMutex
	data map[string]string
}

// NewMemoryBackend returns an empty in-memory backend.
func NewMemoryBackend() *MemoryBackend {
	return &MemoryBackend{data: make(map[string]string)}
}

func (m *MemoryBackend) Get(key string) (string, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	v, ok := m.data[key]
	return v, ok, nil
}

func (m *MemoryBackend) Set(key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data[key] = value
	return nil
}

func (m *MemoryBackend) Remove(key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.data, key)
	return nil
}

// Len reports the number of stored keys. Used by tests.
func (m *MemoryBackend) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.data)
}
