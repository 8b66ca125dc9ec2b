package store

import (
	"fmt"
	"strconv"
	"time"
)

// Record is any entity that can live in a Collection. Records carry their own
// identity; relationships between collections are stored identifiers only.
type Record interface {
	RecordID() string
}

// Collection is a typed view over one named collection: a homogeneous ordered
// sequence of records persisted as a single JSON document under one store key.
//
// Because every operation reads the full sequence, mutates it in memory, and
// writes it back with one Store.Set, writes are atomic from this process's
// perspective and last-writer-wins across processes. Two concurrent writers
// editing the same collection will silently lose one writer's changes — an
// accepted limitation of the whole-document model.
type Collection[T Record] struct {
	store *Store
	name  string

	// Normalize, when set, canonicalizes each record at the repository
	// boundary on both read and write (e.g. legacy comma-separated amenity
	// strings become string slices). It must be a pure function.
	Normalize func(T) T
}

// NewCollection binds a typed collection to its storage key.
func NewCollection[T Record](s *Store, name string) *Collection[T] {
	return &Collection[T]{store: s, name: name}
}

// Name returns the collection's storage key suffix.
func (c *Collection[T]) Name() string { return c.name }

// LoadAll returns the stored sequence. It never returns nil and never fails:
// an absent or corrupt value reads back as an empty collection.
func (c *Collection[T]) LoadAll() []T {
	var records []T
	if !c.store.Get(c.name, &records) || records == nil {
		return []T{}
	}
	if c.Normalize != nil {
		for i := range records {
			records[i] = c.Normalize(records[i])
		}
	}
	return records
}

// SaveAll replaces the entire stored sequence in one write.
func (c *Collection[T]) SaveAll(records []T) {
	if records == nil {
		records = []T{}
	}
	if c.Normalize != nil {
		normalized := make([]T, len(records))
		for i, r := range records {
			normalized[i] = c.Normalize(r)
		}
		records = normalized
	}
	c.store.Set(c.name, records)
}

// Find returns the record with the given id, if present.
func (c *Collection[T]) Find(id string) (T, bool) {
	for _, r := range c.LoadAll() {
		if r.RecordID() == id {
			return r, true
		}
	}
	var zero T
	return zero, false
}

// Upsert replaces the stored record whose id matches rec, or prepends rec as
// a new entry when no record has that id. The record must already carry an id
// (see NewID / SequentialID).
func (c *Collection[T]) Upsert(rec T) {
	records := c.LoadAll()
	for i, r := range records {
		if r.RecordID() == rec.RecordID() {
			records[i] = rec
			c.SaveAll(records)
			return
		}
	}
	c.SaveAll(append([]T{rec}, records...))
}

// Remove filters the id out and persists the result. It reports whether a
// record was actually removed; removing an unknown id leaves storage
// untouched.
func (c *Collection[T]) Remove(id string) bool {
	records := c.LoadAll()
	kept := records[:0]
	for _, r := range records {
		if r.RecordID() != id {
			kept = append(kept, r)
		}
	}
	if len(kept) == len(records) {
		return false
	}
	c.SaveAll(kept)
	return true
}

// NewID generates a timestamp-derived identifier, e.g. "owner_mf3k2j8q".
// Base-36 milliseconds are collision-resistant in practice for the
// single-writer usage this system is designed for, and sort roughly by
// creation time.
func NewID(prefix string) string {
	return prefix + "_" + strconv.FormatInt(time.Now().UnixMilli(), 36)
}

// SequentialID generates a zero-padded running identifier such as "B-004".
// This legacy scheme is kept only for admin bookings, for compatibility with
// data seeded under the B-NNN convention; n is the current collection length.
// New collections should use NewID instead — sequential ids can collide after
// deletions.
func SequentialID(prefix string, n int) string {
	return fmt.Sprintf("%s-%03d", prefix, n+1)
}
