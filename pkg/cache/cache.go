// Package cache stores rendered artifacts between runs.
//
// The [Cache] interface has three implementations: [FileCache] for the CLI
// (one JSON entry per key under a sharded directory), [RedisCache] for
// shared deployments, and [NullCache] when caching is disabled. Keys are
// built by a [Keyer] from a hash of the input and the options that affect
// the output, so changing the render width or format never returns a stale
// artifact.
//
// Cache failures are never fatal: callers treat a failed Get as a miss and
// ignore failed Sets.
package cache

import (
	"context"
	"time"
)

// Default lifetimes of cached entries.
const (
	TTLArtifact = 24 * time.Hour
	TTLPayload  = 7 * 24 * time.Hour
)

// Cache is a byte store with per-entry expiry.
type Cache interface {
	// Get returns the stored value and whether it was found. Expired
	// entries are reported as misses.
	Get(ctx context.Context, key string) ([]byte, bool, error)
	// Set stores data under key. A ttl of 0 never expires.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
	Close() error
}

// Clearer is implemented by caches that can drop every entry at once.
type Clearer interface {
	Clear(ctx context.Context) (int, error)
}
