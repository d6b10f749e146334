// Package store holds the finza ledger and its SQLite-backed persistence.
package store

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // register sqlite driver
)

// KV is a SQLite-backed snapshot store. Each key holds the full JSON
// serialization of one collection; writes replace the previous snapshot.
type KV struct {
	db *sql.DB
}

// OpenKV opens or creates the snapshot database at the given path.
func OpenKV(dbPath string) (*KV, error) {
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return nil, fmt.Errorf("creating data dir: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath+"?_pragma=journal_mode(wal)&_pragma=synchronous(normal)")
	if err != nil {
		return nil, fmt.Errorf("opening snapshot db: %w", err)
	}

	if _, err := db.Exec(schemaSQL); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}

	return &KV{db: db}, nil
}

// Close closes the underlying database.
func (k *KV) Close() error {
	return k.db.Close()
}

// Get returns the payload stored under key. A missing key returns
// sql.ErrNoRows wrapped, which callers treat as an empty collection.
func (k *KV) Get(key string) ([]byte, error) {
	var payload string
	err := k.db.QueryRow("SELECT payload FROM snapshots WHERE key = ?", key).Scan(&payload)
	if err != nil {
		return nil, err
	}
	return []byte(payload), nil
}

// Put replaces the snapshot stored under key.
func (k *KV) Put(key string, payload []byte) error {
	now := time.Now().UTC().Format(time.RFC3339)
	_, err := k.db.Exec(`INSERT OR REPLACE INTO snapshots (key, payload, updated_at)
		VALUES (?, ?, ?)`, key, string(payload), now)
	return err
}

// PutAll writes several snapshots in one transaction so a mutation
// never leaves the three collections half-persisted.
func (k *KV) PutAll(entries map[string][]byte) error {
	tx, err := k.db.Begin()
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	now := time.Now().UTC().Format(time.RFC3339)
	for key, payload := range entries {
		if _, err := tx.Exec(`INSERT OR REPLACE INTO snapshots (key, payload, updated_at)
			VALUES (?, ?, ?)`, key, string(payload), now); err != nil {
			return err
		}
	}
	return tx.Commit()
}

// IsMissing reports whether err means the key has never been written.
func IsMissing(err error) bool {
	return errors.Is(err, sql.ErrNoRows)
}
