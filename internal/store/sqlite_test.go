package store

import (
	"fmt"
	"sync/atomic"
	"testing"
)

var testDBCounter uint64

// newTestSQLite opens a unique in-memory SQLite backend per test. The shared
// cache keeps every pooled connection on the same tables.
func newTestSQLite(t *testing.T) *SQLiteBackend {
	t.Helper()
	id := atomic.AddUint64(&testDBCounter, 1)
	b, err := OpenSQLite(fmt.Sprintf("file:storetest%d?mode=memory&cache=shared", id))
	if err != nil {
		t.Fatalf("OpenSQLite: %v", err)
	}
	t.Cleanup(func() { b.Close() })
	return b
}

func TestSQLiteBackend_RoundTrip(t *testing.T) {
	b := newTestSQLite(t)

	if _, ok, err := b.Get("k1"); err != nil || ok {
		t.Fatalf("fresh key: got ok=%v err=%v", ok, err)
	}

	if err := b.Set("k1", "v1"); err != nil {
		t.Fatalf("Set: %v", err)
	}
	v, ok, err := b.Get("k1")
	if err != nil || !ok || v != "v1" {
		t.Errorf("Get: got %q ok=%v err=%v", v, ok, err)
	}

	// Set replaces, never appends.
	if err := b.Set("k1", "v2"); err != nil {
		t.Fatalf("replace: %v", err)
	}
	if v, _, _ := b.Get("k1"); v != "v2" {
		t.Errorf("after replace: got %q, want v2", v)
	}
}

func TestSQLiteBackend_Remove(t *testing.T) {
	b := newTestSQLite(t)
	b.Set("k1", "v1")

	if err := b.Remove("k1"); err != nil {
		t.Fatalf("Remove: %v", err)
	}
	if _, ok, _ := b.Get("k1"); ok {
		t.Error("key still present after Remove")
	}

	// Removing an absent key is a no-op, not an error.
	if err := b.Remove("never-existed"); err != nil {
		t.Errorf("Remove absent: %v", err)
	}
}

func TestOpenSQLite_FileIsIdempotent(t *testing.T) {
	path := t.TempDir() + "/test.db"

	b, err := OpenSQLite(path)
	if err != nil {
		t.Fatalf("OpenSQLite: %v", err)
	}
	b.Set("k1", "v1")
	b.Close()

	// Reopening migrates with IF NOT EXISTS and keeps the data.
	b2, err := OpenSQLite(path)
	if err != nil {
		t.Fatalf("second OpenSQLite: %v", err)
	}
	defer b2.Close()
	if v, ok, _ := b2.Get("k1"); !ok || v != "v1" {
		t.Errorf("data lost across reopen: got %q ok=%v", v, ok)
	}
}

func TestStoreOverSQLite(t *testing.T) {
	st := New(newTestSQLite(t), nil)
	st.Set("things", testRecord{ID: "x1", Name: "durable"})

	var out testRecord
	if !st.Get("things", &out) || out.Name != "durable" {
		t.Errorf("round trip over sqlite: got %+v", out)
	}
}
