// Package redis implements the key-value port on Redis.
package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"

	"weighttrack/internal/domain"
)

// DB wraps a *redis.Client and implements domain.KVStore.
type DB struct {
	client *redis.Client
}

var _ domain.KVStore = (*DB)(nil)

// Open connects to the Redis server at addr and pings it.
func Open(addr, password string, db int) (*DB, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("ping redis at %s: %w", addr, err)
	}
	return New(client), nil
}

// New wraps an existing client.
func New(client *redis.Client) *DB {
	return &DB{client: client}
}

// Close closes the client.
func (d *DB) Close() error {
	return d.client.Close()
}

// Get returns the value stored under key.
func (d *DB) Get(ctx context.Context, key string) ([]byte, error) {
	b, err := d.client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, domain.ErrKeyNotFound
	}
	return b, err
}

// Set stores value under key without expiry.
func (d *DB) Set(ctx context.Context, key string, value []byte) error {
	return d.client.Set(ctx, key, value, 0).Err()
}

// Delete removes key. Deleting a missing key is not an error.
func (d *DB) Delete(ctx context.Context, key string) error {
	return d.client.Del(ctx, key).Err()
}
