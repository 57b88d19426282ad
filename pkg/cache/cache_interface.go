package cache

import (
	"context"
	"time"
)

// Cache is the contract for the shared cache layer. The content pipeline uses
// it for two things: the per-page revalidation cache (projection results held
// for a fixed window) and the citation-count cache filled by the worker.
type Cache interface {
	// Get reads a key and unmarshals it into dest.
	// Returns (false, nil) on a cache miss; dest is left untouched.
	Get(ctx context.Context, key string, dest interface{}) (bool, error)

	// Set stores value under key with a TTL. The write replaces the previous
	// value atomically; readers never observe a partial update.
	Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error

	// Delete removes keys from the cache.
	Delete(ctx context.Context, keys ...string) error

	// DeletePattern removes every key matching a glob pattern,
	// e.g. "page:*" after a studio mutation.
	DeletePattern(ctx context.Context, pattern string) error

	// Exists reports whether a key is present.
	Exists(ctx context.Context, key string) (bool, error)

	// Ping verifies connectivity.
	Ping(ctx context.Context) error
}
