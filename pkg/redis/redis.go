package redis

import (
	"context"
	"time"

	goredis "github.com/redis/go-redis/v9"
)

// Set writes key with a TTL. A zero ttl stores the key without expiry.
func (c *redisImpl) Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error {
	return c.client.Set(ctx, key, value, ttl).Err()
}

// Get reads key. Missing keys surface as goredis.Nil.
func (c *redisImpl) Get(ctx context.Context, key string) (string, error) {
	return c.client.Get(ctx, key).Result()
}

// Delete removes the given keys. Keys that do not exist are ignored.
func (c *redisImpl) Delete(ctx context.Context, keys ...string) error {
	return c.client.Del(ctx, keys...).Err()
}

// DeleteByPattern removes every key matching the glob pattern. SCAN keeps
// the walk incremental and the pipeline batches the deletes, so large
// invalidations do not block the server the way KEYS would.
func (c *redisImpl) DeleteByPattern(ctx context.Context, pattern string) error {
	var cursor uint64
	for {
		keys, nextCursor, err := c.client.Scan(ctx, cursor, pattern, ScanBatchSize).Result()
		if err != nil {
			return err
		}
		if len(keys) > 0 {
			pipe := c.client.Pipeline()
			for _, key := range keys {
				pipe.Del(ctx, key)
			}
			if _, err := pipe.Exec(ctx); err != nil && err != goredis.Nil {
				return err
			}
		}
		cursor = nextCursor
		if cursor == 0 {
			break
		}
	}
	return nil
}

// Ping checks the connection.
func (c *redisImpl) Ping(ctx context.Context) error {
	return c.client.Ping(ctx).Err()
}

// Close releases the connection pool.
func (c *redisImpl) Close() error {
	return c.client.Close()
}
