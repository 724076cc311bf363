package objstore

import (
	"context"
	"fmt"
	"sync"

	"github.com/endee-io/endee-go/config"
	"github.com/endee-io/endee-go/pkg/objstore"
)

var (
	instance objstore.IObjStore
	once     sync.Once
	mu       sync.RWMutex
	initErr  error
)

// Connect initializes and connects to the object store using singleton pattern.
func Connect(ctx context.Context, cfg config.ObjStoreConfig) (objstore.IObjStore, error) {
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
		clientCfg := objstore.ObjStoreConfig{
			Endpoint:  cfg.Endpoint,
			AccessKey: cfg.AccessKey,
			SecretKey: cfg.SecretKey,
			UseSSL:    cfg.UseSSL,
			Region:    cfg.Region,
			Bucket:    cfg.Bucket,
		}

		client, e := objstore.NewObjStore(clientCfg)
		if e != nil {
			err = fmt.Errorf("failed to create object store client: %w", e)
			initErr = err
			return
		}
		if e := client.Connect(ctx); e != nil {
			err = fmt.Errorf("failed to connect to object store: %w", e)
			initErr = err
			return
		}
		instance = client
	})

	return instance, err
}

// GetClient returns the singleton object store client instance.
func GetClient() objstore.IObjStore {
	mu.RLock()
	defer mu.RUnlock()

	if instance == nil {
		panic("Object store client not initialized. Call Connect() first")
	}
	return instance
}

// HealthCheck checks if the object store connection is healthy
func HealthCheck(ctx context.Context) error {
	mu.RLock()
	defer mu.RUnlock()

	if instance == nil {
		return fmt.Errorf("object store client not initialized")
	}

	return instance.HealthCheck(ctx)
}

// Disconnect closes the object store client and resets the singleton.
func Disconnect() error {
	mu.Lock()
	defer mu.Unlock()

	if instance != nil {
		if err := instance.Close(); err != nil {
			return err
		}
		instance = nil
		once = sync.Once{}
		initErr = nil
	}
	return nil
}
