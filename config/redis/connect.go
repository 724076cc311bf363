package redis

import (
	"context"
	"fmt"
	"sync"

	"github.com/endee-io/endee-go/config"
	"github.com/endee-io/endee-go/pkg/redis"
)

var (
	client      redis.IRedis
	connectOnce sync.Once
	mu          sync.RWMutex
	connectErr  error
)

// Connect dials the Redis that backs the query cache. The first successful
// call wins; later calls return the same client. A failed attempt resets the
// singleton so the next call can retry.
func Connect(ctx context.Context, cfg config.RedisConfig) (redis.IRedis, error) {
	mu.Lock()
	defer mu.Unlock()

	if client != nil {
		return client, nil
	}
	if connectErr != nil {
		connectOnce = sync.Once{}
		connectErr = nil
	}

	var err error
	connectOnce.Do(func() {
		c, e := redis.NewRedis(ctx, redis.RedisConfig{
			Host:     cfg.Host,
			Port:     cfg.Port,
			Password: cfg.Password,
			DB:       cfg.DB,
		})
		if e != nil {
			err = fmt.Errorf("failed to initialize Redis client: %w", e)
			connectErr = err
			return
		}
		client = c
	})

	return client, err
}

// GetClient returns the connected client. It panics when Connect has not
// succeeded yet, matching how the other infrastructure singletons behave.
func GetClient() redis.IRedis {
	mu.RLock()
	defer mu.RUnlock()

	if client == nil {
		panic("Redis client not initialized. Call Connect() first")
	}
	return client
}

// HealthCheck pings Redis through the singleton.
func HealthCheck(ctx context.Context) error {
	mu.RLock()
	defer mu.RUnlock()

	if client == nil {
		return fmt.Errorf("Redis client not initialized")
	}
	return client.Ping(ctx)
}

// Disconnect closes the client and resets the singleton.
func Disconnect() error {
	mu.Lock()
	defer mu.Unlock()

	var err error
	if client != nil {
		err = client.Close()
	}

	client = nil
	connectOnce = sync.Once{}
	connectErr = nil
	return err
}
