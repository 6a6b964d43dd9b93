package domain

import (
	"context"
	"errors"
)

// ErrKeyNotFound is returned by KVStore.Get when the key holds no value.
var ErrKeyNotFound = errors.New("key not found")

// KVStore is the port for key-value persistence. Values are opaque JSON
// documents.
type KVStore interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
}

// DefaultKeyPrefix scopes the keys of the implicit single user.
const DefaultKeyPrefix = "user"

// Keys names the storage keys of one user.
type Keys struct {
	Settings string
	Records  string
	Latest   string
	Goals    string
}

// KeysFor returns the keys scoped under prefix.
func KeysFor(prefix string) Keys {
	if prefix == "" {
		prefix = DefaultKeyPrefix
	}
	return Keys{
		Settings: prefix + ":settings",
		Records:  prefix + ":weight:records",
		Latest:   prefix + ":weight:latest",
		Goals:    prefix + ":goals",
	}
}
