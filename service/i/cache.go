package i

import "context"

// ResultCache stores encoded solve outcomes keyed by maze and algorithm.
type ResultCache interface {
	// Get returns the value stored under key, or ErrCacheMiss.
	Get(ctx context.Context, key string) ([]byte, error)

	// Set stores value under key with the cache's TTL.
	Set(ctx context.Context, key string, value []byte) error

	// Lock acquires a distributed lock scoped to key and returns its release function.
	Lock(ctx context.Context, key string) (func() error, error)
}
