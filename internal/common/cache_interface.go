package common

import (
	"context"
	"time"
)

// CacheInterface defines the contract for response cache implementations.
// Errors are reported to the caller, who decides whether to degrade.
//
// Every Clear advances an invalidation epoch. A writer reads Epoch before
// computing a value and passes it to Set; the store is skipped when a Clear
// happened in between, so a value computed before an invalidation is never
// stored after it.
type CacheInterface interface {
	// Get returns the stored payload and true on a fresh hit
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Epoch returns the current invalidation epoch
	Epoch(ctx context.Context) (uint64, error)

	// Set stores a payload for ttl if epoch is still current and reports
	// whether it was stored
	Set(ctx context.Context, key string, value []byte, ttl time.Duration, epoch uint64) (bool, error)

	// Clear drops every entry owned by this cache and advances the epoch
	Clear(ctx context.Context) error

	// Ping reports whether the backend is reachable
	Ping(ctx context.Context) error

	// Close closes any underlying connections (for Redis, etc.)
	Close() error
}
