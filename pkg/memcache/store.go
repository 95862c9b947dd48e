// Package mem holds small in-process stores for short-lived state.
package mem

import (
	"time"

	"github.com/patrickmn/go-cache"
)

type Store[T any] interface {
	Set(key string, value T, ttl time.Duration)

	// Get returns the value for key if present and not expired.
	Get(key string) (T, bool)

	Delete(key string)
}

// CacheStore is a typed view over a go-cache instance.
type CacheStore[T any] struct {
	cache *cache.Cache
}

func NewCacheStore[T any](defaultTTL, cleanupInterval time.Duration) *CacheStore[T] {
	return &CacheStore[T]{cache: cache.New(defaultTTL, cleanupInterval)}
}

func (s *CacheStore[T]) Set(key string, value T, ttl time.Duration) {
	s.cache.Set(key, value, ttl)
}

func (s *CacheStore[T]) Get(key string) (T, bool) {
	var zero T
	raw, found := s.cache.Get(key)
	if !found {
		return zero, false
	}
	value, ok := raw.(T)
	if !ok {
		return zero, false
	}
	return value, true
}

func (s *CacheStore[T]) Delete(key string) {
	s.cache.Delete(key)
}
