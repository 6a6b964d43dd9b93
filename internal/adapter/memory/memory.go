// Package memory implements an in-memory key-value store for development and testing.
package memory

import (
	"context"
	"slices"
	"sync"

	"weighttrack/internal/domain"
)

// DB implements an in-memory key-value store.
type DB struct {
	mu     sync.Mutex
	values map[string][]byte
}

// New creates a new in-memory store.
func New() *DB {
	return &DB{values: make(map[string][]byte)}
}

// Ensure interfaces are met.
var _ domain.KVStore = (*DB)(nil)

// Get returns a copy of the value stored under key.
func (db *DB) Get(ctx context.Context, key string) ([]byte, error) {
	db.mu.Lock()
	defer db.mu.Unlock()

	v, ok := db.values[key]
	if !ok {
		return nil, domain.ErrKeyNotFound
	}
	return slices.Clone(v), nil
}

// Set stores a copy of value under key.
func (db *DB) Set(ctx context.Context, key string, value []byte) error {
	db.mu.Lock()
	defer db.mu.Unlock()

	db.values[key] = slices.Clone(value)
	return nil
}

// Delete removes key. Deleting a missing key is not an error.
func (db *DB) Delete(ctx context.Context, key string) error {
	db.mu.Lock()
	defer db.mu.Unlock()

	delete(db.values, key)
	return nil
}

// Close is a no-op.
func (db *DB) Close() error {
	return nil
}
