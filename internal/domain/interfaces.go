package domain

import (
	"context"
	"time"
)

// Cache abstracts summary caching operations
type Cache interface {
	// Get retrieves a value by key, returning ErrCacheMiss if absent
	Get(ctx context.Context, key string) ([]byte, error)

	// Set stores a value with the given TTL
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error

	// Has checks whether a key exists
	Has(ctx context.Context, key string) bool

	// Delete removes a key
	Delete(ctx context.Context, key string) error

	// Close releases cache resources
	Close() error
}
