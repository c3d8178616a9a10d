package cache

import (
	"context"
	"errors"
	"time"

	"github.com/beka-birhanu/vinom-solver/service/i"
	"github.com/go-redsync/redsync/v4"
	"github.com/go-redsync/redsync/v4/redis/goredis/v9"
	"github.com/redis/go-redis/v9"
)

const lockSuffix = ":solve_lock"

// RedisResultCache keeps solve outcomes in Redis with a TTL and serializes
// solves of the same key with a redsync mutex.
type RedisResultCache struct {
	client *redis.Client
	locker *redsync.Redsync
	ttl    time.Duration
}

// NewRedisResultCache initializes a RedisResultCache with the provided Redis client and TTL.
func NewRedisResultCache(client *redis.Client, ttlSeconds int) *RedisResultCache {
	pool := goredis.NewPool(client)
	return &RedisResultCache{
		client: client,
		locker: redsync.New(pool),
		ttl:    time.Duration(ttlSeconds) * time.Second,
	}
}

// Get returns the stored value or i.ErrCacheMiss.
func (rc *RedisResultCache) Get(ctx context.Context, key string) ([]byte, error) {
	value, err := rc.client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, i.ErrCacheMiss
	}
	return value, err
}

func (rc *RedisResultCache) Set(ctx context.Context, key string, value []byte) error {
	return rc.client.Set(ctx, key, value, rc.ttl).Err()
}

// Lock blocks until the mutex for key is held or ctx ends.
func (rc *RedisResultCache) Lock(ctx context.Context, key string) (func() error, error) {
	mutex := rc.locker.NewMutex(key + lockSuffix)
	if err := mutex.LockContext(ctx); err != nil {
		return nil, err
	}
	return func() error {
		_, err := mutex.UnlockContext(context.WithoutCancel(ctx))
		return err
	}, nil
}
