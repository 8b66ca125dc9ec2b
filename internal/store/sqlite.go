package store

import (
	"database/sql"
	"errors"
	"fmt"

	// Blank import: the modernc driver registers itself with database/sql
	// under the name "sqlite" when this package loads. It is a pure-Go port
	// of SQLite, so the binary cross-compiles without CGo.
	_ "modernc.org/sqlite"
)

// SQLiteBackend persists the key-value namespace in a single SQLite table.
// One row per key keeps the storage model identical to the in-memory backend;
// collections are still stored as whole JSON documents, so last-writer-wins
// applies at the granularity of one collection, exactly as with MemoryBackend.
type SQLiteBackend struct {
	db *sql.DB
}

// OpenSQLite opens (or creates) the database at dsn and ensures the kv table
// exists.
//
// Recommended DSN for a durable file:
//
//	"hostel.db?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)"
//
// and for tests: "file:testXYZ?mode=memory&cache=shared".
func OpenSQLite(dsn string) (*SQLiteBackend, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}
	return &SQLiteBackend{db: db}, nil
}

const schema = `
CREATE TABLE IF NOT EXISTS kv (
    k TEXT PRIMARY KEY,
    v TEXT NOT NULL
)`

func (b *SQLiteBackend) Get(key string) (string, bool, error) {
	var v string
	err := b.db.QueryRow(`SELECT v FROM kv WHERE k = ?`, key).Scan(&v)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("get %q: %w", key, err)
	}
	return v, true, nil
}

func (b *SQLiteBackend) Set(key, value string) error {
	_, err := b.db.Exec(
		`INSERT INTO kv (k, v) VALUES (?, ?)
		 ON CONFLICT(k) DO UPDATE SET v = excluded.v`,
		key, value,
	)
	if err != nil {
		return fmt.Errorf("set %q: %w", key, err)
	}
	return nil
}

func (b *SQLiteBackend) Remove(key string) error {
	if _, err := b.db.Exec(`DELETE FROM kv WHERE k = ?`, key); err != nil {
		return fmt.Errorf("remove %q: %w", key, err)
	}
	return nil
}

// Close closes the underlying connection pool.
func (b *SQLiteBackend) Close() error {
	return b.db.Close()
}
