// Package cache provides pluggable byte caches for solved layouts.
//
// A solve over an unchanged tree and cabinet is fully deterministic, so
// results are cached under a key derived from the tree hash and the
// cabinet parameters. Three backends are provided:
//
//   - FileCache: directory-backed cache for CLI usage
//   - RedisCache: shared cache for multi-instance server deployments
//   - NullCache: no-op cache for tests or when caching is disabled
//
// Keys are produced by a [Keyer] so that callers never concatenate key
// strings by hand; [ScopedKeyer] adds a namespace prefix on top for
// multi-tenant isolation.
package cache

import (
	"context"
	"time"
)

// DefaultTTL is the default lifetime of a cached layout.
const DefaultTTL = 24 * time.Hour

// Cache is a byte store with TTL-based expiration.
//
// Get returns (nil, false, nil) on a miss; an error is reserved for
// backend failures. Set with a non-positive ttl stores the entry
// without expiration.
type Cache interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
	Close() error
}
