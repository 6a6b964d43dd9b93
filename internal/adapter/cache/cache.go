// Package cache provides a read-through cache in front of a key-value store.
package cache

import (
	"context"
	"errors"

	"github.com/coocood/freecache"
	log "github.com/sirupsen/logrus"

	"weighttrack/internal/domain"
)

const megabyte = 1024 * 1024

// Store caches the values of an underlying domain.KVStore in memory. Writes
// go to the store first; a failed write evicts the cached copy.
type Store struct {
	next  domain.KVStore
	cache *freecache.Cache
	ttl   int
}

var _ domain.KVStore = (*Store)(nil)

// New wraps next with a cache of sizeMB megabytes. Entries expire after
// ttlSeconds; 0 keeps them until evicted.
func New(next domain.KVStore, sizeMB, ttlSeconds int) *Store {
	if sizeMB <= 0 {
		sizeMB = 1
	}
	return &Store{
		next:  next,
		cache: freecache.NewCache(sizeMB * megabyte),
		ttl:   ttlSeconds,
	}
}

// Get serves key from the cache, falling back to the store on a miss.
func (s *Store) Get(ctx context.Context, key string) ([]byte, error) {
	if b, err := s.cache.Get([]byte(key)); err == nil {
		log.Tracef("cache hit for %s", key)
		return b, nil
	}

	b, err := s.next.Get(ctx, key)
	if err != nil {
		return nil, err
	}
	if err := s.cache.Set([]byte(key), b, s.ttl); err != nil {
		log.Debugf("cache %s: %s", key, err)
	}
	return b, nil
}

// Set writes through to the store.
func (s *Store) Set(ctx context.Context, key string, value []byte) error {
	if err := s.next.Set(ctx, key, value); err != nil {
		s.cache.Del([]byte(key))
		return err
	}
	if err := s.cache.Set([]byte(key), value, s.ttl); err != nil {
		if errors.Is(err, freecache.ErrLargeEntry) {
			log.Debugf("value of %s too large to cache", key)
		}
		s.cache.Del([]byte(key))
	}
	return nil
}

// Delete removes key from the store and the cache.
func (s *Store) Delete(ctx context.Context, key string) error {
	s.cache.Del([]byte(key))
	return s.next.Delete(ctx, key)
}

// HitRate returns the cache hit rate since creation.
func (s *Store) HitRate() float64 {
	return s.cache.HitRate()
}
