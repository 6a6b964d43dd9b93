// Package badger implements the key-value port on an embedded Badger database.
package badger

import (
	"context"
	"errors"

	"github.com/dgraph-io/badger/v3"
	log "github.com/sirupsen/logrus"

	"weighttrack/internal/domain"
)

// DB wraps a *badger.DB and implements domain.KVStore.
type DB struct {
	db *badger.DB
}

var _ domain.KVStore = (*DB)(nil)

// Open opens or creates the database in dir.
func Open(dir string) (*DB, error) {
	return open(badger.DefaultOptions(dir))
}

// OpenInMemory opens a database that lives only in memory.
func OpenInMemory() (*DB, error) {
	return open(badger.DefaultOptions("").WithInMemory(true))
}

func open(opts badger.Options) (*DB, error) {
	opts = opts.WithLogger(log.WithField("component", "badger")).WithLoggingLevel(badger.WARNING)
	db, err := badger.Open(opts)
	if err != nil {
		return nil, err
	}
	return &DB{db: db}, nil
}

// Close flushes and closes the database.
func (d *DB) Close() error {
	return d.db.Close()
}

// Get returns the value stored under key.
func (d *DB) Get(_ context.Context, key string) ([]byte, error) {
	var out []byte
	err := d.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(key))
		if err != nil {
			return err
		}
		out, err = item.ValueCopy(nil)
		return err
	})
	if errors.Is(err, badger.ErrKeyNotFound) {
		return nil, domain.ErrKeyNotFound
	}
	return out, err
}

// Set stores value under key.
func (d *DB) Set(_ context.Context, key string, value []byte) error {
	return d.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(key), value)
	})
}

// Delete removes key. Deleting a missing key is not an error.
func (d *DB) Delete(_ context.Context, key string) error {
	return d.db.Update(func(txn *badger.Txn) error {
		return txn.Delete([]byte(key))
	})
}
