package kafka

import (
	"fmt"
	"sync"

	"github.com/endee-io/endee-go/config"
	"github.com/endee-io/endee-go/pkg/kafka"
)

var (
	dlqProducer kafka.IProducer
	dlqOnce     sync.Once
	dlqMu       sync.RWMutex
	dlqErr      error
)

// ConnectProducer builds the dead letter producer. The loader publishes to
// the DLQ topic and nothing else; batch events are consumed, never produced.
// A failed attempt resets the singleton so the next call can retry.
func ConnectProducer(cfg config.KafkaConfig) (kafka.IProducer, error) {
	dlqMu.Lock()
	defer dlqMu.Unlock()

	if dlqProducer != nil {
		return dlqProducer, nil
	}
	if dlqErr != nil {
		dlqOnce = sync.Once{}
		dlqErr = nil
	}

	var err error
	dlqOnce.Do(func() {
		if cfg.DLQTopic == "" {
			err = fmt.Errorf("DLQTopic is required for Kafka producer")
			dlqErr = err
			return
		}

		p, e := kafka.NewProducer(kafka.ProducerConfig{
			Brokers: cfg.Brokers,
			Topic:   cfg.DLQTopic,
		})
		if e != nil {
			err = fmt.Errorf("failed to initialize Kafka producer: %w", e)
			dlqErr = err
			return
		}
		dlqProducer = p
	})

	return dlqProducer, err
}

// GetProducer returns the connected producer. It panics when ConnectProducer
// has not succeeded yet, matching the other infrastructure singletons.
func GetProducer() kafka.IProducer {
	dlqMu.RLock()
	defer dlqMu.RUnlock()

	if dlqProducer == nil {
		panic("Kafka producer not initialized. Call ConnectProducer() first")
	}
	return dlqProducer
}

// ProducerHealthCheck reports whether the producer is up.
func ProducerHealthCheck() error {
	dlqMu.RLock()
	defer dlqMu.RUnlock()

	if dlqProducer == nil {
		return fmt.Errorf("Kafka producer not initialized")
	}
	return dlqProducer.HealthCheck()
}

// DisconnectProducer flushes, closes, and resets the singleton.
func DisconnectProducer() error {
	dlqMu.Lock()
	defer dlqMu.Unlock()

	var err error
	if dlqProducer != nil {
		err = dlqProducer.Close()
	}

	dlqProducer = nil
	dlqOnce = sync.Once{}
	dlqErr = nil
	return err
}
