package store

import (
	"encoding/json"
	"log/slog"
)

// Prefix is the shared key namespace. Every logical key is stored as
// Prefix+key so unrelated data in the same backend can never collide with
// ours, and every feature's storage logic stays self-contained.
const Prefix = "hostelManagement:"

// Store provides namespaced JSON get/set/remove over a Backend.
//
// Failure policy (deliberate, see the error handling design): a Store never
// surfaces an error. Corrupt or missing values read back as absent, and a
// write that the backend refuses is silently dropped apart from a warn-level
// log line. Callers must not assume a Set persisted.
type Store struct {
	backend Backend
	prefix  string
	log     *slog.Logger
}

// New returns a Store over backend using the shared Prefix. A nil logger
// falls back to slog.Default().
func New(backend Backend, log *slog.Logger) *Store {
	if log == nil {
		log = slog.Default()
	}
	return &Store{backend: backend, prefix: Prefix, log: log}
}

// Get reads the value stored under key into out (a pointer). It reports
// whether a well-formed value was found; on a missing key, backend failure,
// or corrupt JSON it leaves out in a usable state and returns false.
func (s *Store) Get(key string, out any) bool {
	raw, ok, err := s.backend.Get(s.prefix + key)
	if err != nil {
		s.log.Warn("store read failed", "key", key, "err", err)
		return false
	}
	if !ok {
		return false
	}
	if err := json.Unmarshal([]byte(raw), out); err != nil {
		// CorruptRecord: treat as absent rather than propagating.
		s.log.Warn("store value corrupt, treating as absent", "key", key, "err", err)
		return false
	}
	return true
}

// Set serializes value as JSON and writes it under key. Failures are dropped.
func (s *Store) Set(key string, value any) {
	raw, err := json.Marshal(value)
	if err != nil {
		s.log.Warn("store marshal failed, write dropped", "key", key, "err", err)
		return
	}
	if err := s.backend.Set(s.prefix+key, string(raw)); err != nil {
		s.log.Warn("store write failed, write dropped", "key", key, "err", err)
	}
}

// Remove deletes key. Removing an absent key is a no-op.
func (s *Store) Remove(key string) {
	if err := s.backend.Remove(s.prefix + key); err != nil {
		s.log.Warn("store remove failed", "key", key, "err", err)
	}
}

// Backend exposes the underlying backend, mainly so tests can plant raw
// (possibly malformed) values beneath the JSON layer.
func (s *Store) Backend() Backend { return s.backend }
