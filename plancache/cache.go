// Package plancache provides an optional cache of compiled query plans,
// keyed by the query text that produced them. It never caches query
// results, only the artifact of compilation (SPEC_FULL.md §D.3).
package plancache

import (
	"context"
	"time"
)

// Cache is the storage backend a PlanCache writes through to. Callers
// supply their own implementation (in-memory, Redis, Memcached, ...).
type Cache interface {
	// Get retrieves a value from the cache. Returns nil, nil if the key
	// doesn't exist.
	Get(ctx context.Context, key string) ([]byte, error)

	// Set stores a value in the cache with an optional TTL. If ttl is 0,
	// the value should not expire.
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error

	// Delete removes a value from the cache.
	Delete(ctx context.Context, key string) error

	// DeletePrefix removes all values with the given prefix.
	DeletePrefix(ctx context.Context, prefix string) error

	// Clear removes all values from the cache.
	Clear(ctx context.Context) error
}
