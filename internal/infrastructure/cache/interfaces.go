package cache

import (
	"context"
	"fmt"
	"time"
)

// Cache provides the caching surface used by catalog consumers: JSON blobs
// with a TTL.
type Cache interface {
	// Get retrieves a raw value by key.
	Get(ctx context.Context, key string) (string, error)

	// Set stores a value with a TTL.
	Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error

	// Delete removes a key.
	Delete(ctx context.Context, key string) error

	// GetJSON retrieves and unmarshals JSON data.
	GetJSON(ctx context.Context, key string, dest interface{}) error

	// SetJSON marshals and stores JSON data.
	SetJSON(ctx context.Context, key string, value interface{}, ttl time.Duration) error

	// Close closes the cache connection.
	Close() error
}

// ErrCacheKeyNotFound indicates a cache miss.
type ErrCacheKeyNotFound struct {
	Key string
}

func (e ErrCacheKeyNotFound) Error() string {
	return fmt.Sprintf("cache key not found: %s", e.Key)
}

// IsMiss reports whether err is a cache miss.
func IsMiss(err error) bool {
	_, ok := err.(ErrCacheKeyNotFound)
	return ok
}
