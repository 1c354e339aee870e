package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"sync"

	"github.com/vovakirdan/tui-wordplay/internal/games/crossword"
)

// Bucket is a key-value namespace inside the store, one per player.
type Bucket struct {
	db        *sql.DB
	namespace string
}

// Bucket returns the key-value namespace for a player. The empty namespace
// is the local player.
func (s *Store) Bucket(namespace string) *Bucket {
	return &Bucket{db: s.db, namespace: namespace}
}

// Namespace returns the bucket's namespace.
func (b *Bucket) Namespace() string {
	return b.namespace
}

// Get returns the value stored under key.
func (b *Bucket) Get(key string) (string, bool, error) {
	var value string
	err := b.db.QueryRow(
		"SELECT value FROM kv WHERE namespace = ? AND key = ?",
		b.namespace, key,
	).Scan(&value)

	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("storage: cannot read %s: %w", key, err)
	}
	return value, true, nil
}

// Set stores value under key, replacing any previous value.
func (b *Bucket) Set(key, value string) error {
	_, err := b.db.Exec(
		`INSERT INTO kv (namespace, key, value, updated_at)
		 VALUES (?, ?, ?, CURRENT_TIMESTAMP)
		 ON CONFLICT(namespace, key) DO UPDATE SET value = excluded.value, updated_at = CURRENT_TIMESTAMP`,
		b.namespace, key, value,
	)
	if err != nil {
		return fmt.Errorf("storage: cannot write %s: %w", key, err)
	}
	return nil
}

// Remove deletes key. Removing a missing key is not an error.
func (b *Bucket) Remove(key string) error {
	_, err := b.db.Exec("DELETE FROM kv WHERE namespace = ? AND key = ?", b.namespace, key)
	if err != nil {
		return fmt.Errorf("storage: cannot remove %s: %w", key, err)
	}
	return nil
}

// Keys lists the bucket's keys in order.
func (b *Bucket) Keys() ([]string, error) {
	rows, err := b.db.Query("SELECT key FROM kv WHERE namespace = ? ORDER BY key", b.namespace)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot list keys: %w", err)
	}
	defer rows.Close()

	var keys []string
	for rows.Next() {
		var k string
		if err := rows.Scan(&k); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		keys = append(keys, k)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return keys, nil
}

// MemoryKV is an in-process key-value store used when no database is
// available. Its contents die with the process.
type MemoryKV struct {
	mu   sync.Mutex
	data map[string]string
}

// NewMemoryKV creates an empty MemoryKV.
func NewMemoryKV() *MemoryKV {
	return &MemoryKV{data: make(map[string]string)}
}

// Get returns the value stored under key.
func (m *MemoryKV) Get(key string) (string, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	v, ok := m.data[key]
	return v, ok, nil
}

// Set stores value under key.
func (m *MemoryKV) Set(key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data[key] = value
	return nil
}

// Remove deletes key.
func (m *MemoryKV) Remove(key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.data, key)
	return nil
}

// Ensure both stores satisfy the crossword persistence surface
var (
	_ crossword.KV = (*Bucket)(nil)
	_ crossword.KV = (*MemoryKV)(nil)
)
