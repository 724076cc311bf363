package endee

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/endee-io/endee-go/config"
	"github.com/endee-io/endee-go/pkg/endee"
	"github.com/endee-io/endee-go/pkg/log"
)

var (
	instance endee.IEndee
	once     sync.Once
	mu       sync.RWMutex
	initErr  error
)

// Connect initializes and connects to Endee using singleton pattern.
func Connect(ctx context.Context, cfg config.EndeeConfig, l log.Logger) (endee.IEndee, error) {
	mu.Lock()
	defer mu.Unlock()

	if instance != nil {
		return instance, nil
	}

	if initErr != nil {
		once = sync.Once{}
		initErr = nil
	}

	var err error
	once.Do(func() {
		clientCfg := endee.Config{
			BaseURL: cfg.BaseURL,
			APIKey:  cfg.APIKey,
			Timeout: time.Duration(cfg.Timeout) * time.Second,
			Retries: cfg.Retries,
			Logger:  l,
		}

		client, e := endee.NewEndee(clientCfg)
		if e != nil {
			err = fmt.Errorf("failed to initialize Endee client: %w", e)
			initErr = err
			return
		}

		if e := client.Ping(ctx); e != nil {
			err = fmt.Errorf("failed to ping Endee: %w", e)
			initErr = err
			return
		}

		instance = client
	})

	return instance, err
}

// GetClient returns the singleton Endee client instance.
func GetClient() endee.IEndee {
	mu.RLock()
	defer mu.RUnlock()

	if instance == nil {
		panic("Endee client not initialized. Call Connect() first")
	}
	return instance
}

// HealthCheck checks if the Endee connection is healthy
func HealthCheck(ctx context.Context) error {
	mu.RLock()
	defer mu.RUnlock()

	if instance == nil {
		return fmt.Errorf("Endee client not initialized")
	}

	return instance.Ping(ctx)
}

// Disconnect closes the client and resets the singleton.
func Disconnect() error {
	mu.Lock()
	defer mu.Unlock()

	var err error
	if instance != nil {
		err = instance.Close()
	}

	instance = nil
	once = sync.Once{}
	initErr = nil
	return err
}
