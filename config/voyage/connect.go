package voyage

import (
	"sync"

	"github.com/endee-io/endee-go/config"
	"github.com/endee-io/endee-go/pkg/voyage"
)

var (
	instance voyage.IVoyage
	once     sync.Once
	mu       sync.RWMutex
)

// Connect initializes the Voyage AI client.
func Connect(cfg config.VoyageConfig) voyage.IVoyage {
	mu.Lock()
	defer mu.Unlock()

	if instance != nil {
		return instance
	}

	once.Do(func() {
		instance = voyage.NewVoyage(voyage.VoyageConfig{
			APIKey: cfg.APIKey,
			Model:  cfg.Model,
		})
	})

	return instance
}

// GetClient returns the singleton Voyage client.
func GetClient() voyage.IVoyage {
	mu.RLock()
	defer mu.RUnlock()

	if instance == nil {
		panic("Voyage client not initialized. Call Connect() first")
	}
	return instance
}
