package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors for common failure conditions
var (
	// ErrCacheMiss indicates a cache key was not found
	ErrCacheMiss = errors.New("cache miss")

	// ErrCacheDisabled indicates the cache is disabled by configuration
	ErrCacheDisabled = errors.New("cache disabled")

	// ErrInvalidConfig indicates invalid configuration
	ErrInvalidConfig = errors.New("invalid configuration")
)

// ValidationError represents a configuration validation failure
type ValidationError struct {
	Field   string
	Value   interface{}
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed for field %q (value: %v): %s", e.Field, e.Value, e.Message)
}

func (e *ValidationError) Unwrap() error {
	return ErrInvalidConfig
}

// CacheError represents a cache operation failure
type CacheError struct {
	Op  string
	Key string
	Err error
}

func (e *CacheError) Error() string {
	return fmt.Sprintf("cache %s failed for key %q: %v", e.Op, e.Key, e.Err)
}

func (e *CacheError) Unwrap() error {
	return e.Err
}
