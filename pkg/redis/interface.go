package redis

import (
	"context"
	"fmt"
	"time"

	goredis "github.com/redis/go-redis/v9"
)

// IRedis is the slice of Redis the query cache needs: plain key/value with
// TTLs plus pattern deletion for invalidating an index wholesale.
// Implementations are safe for concurrent use.
type IRedis interface {
	Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error
	Get(ctx context.Context, key string) (string, error)
	Delete(ctx context.Context, keys ...string) error
	DeleteByPattern(ctx context.Context, pattern string) error
	Ping(ctx context.Context) error
	Close() error
}

// NewRedis dials Redis and verifies the connection with a ping before
// returning. The ping is bounded by DefaultConnectTimeout even when ctx has
// no deadline of its own.
func NewRedis(ctx context.Context, cfg RedisConfig) (IRedis, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	client := goredis.NewClient(&goredis.Options{
		Addr:     fmt.Sprintf("%s:%d", cfg.Host, cfg.Port),
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	pingCtx, cancel := context.WithTimeout(ctx, DefaultConnectTimeout)
	defer cancel()

	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &redisImpl{client: client}, nil
}
