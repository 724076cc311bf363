package consumer

import (
	"fmt"

	"github.com/endee-io/endee-go/config"
	"github.com/endee-io/endee-go/internal/loader"
	kafkaDelivery "github.com/endee-io/endee-go/internal/loader/delivery/kafka"
	pkgKafka "github.com/endee-io/endee-go/pkg/kafka"
	"github.com/endee-io/endee-go/pkg/log"
)

// Config holds the configuration for the loader consumer
type Config struct {
	Logger      log.Logger
	KafkaConfig config.KafkaConfig
	UseCase     loader.UseCase
}

// Consumer manages the Kafka consumer group for the loader domain
type Consumer struct {
	l           log.Logger
	kafkaConfig config.KafkaConfig
	uc          loader.UseCase

	// Consumer group for batch ready announcements
	batchReadyGroup pkgKafka.IConsumer
}

// New creates a new loader consumer
func New(cfg Config) (*Consumer, error) {
	if cfg.Logger == nil {
		return nil, fmt.Errorf("logger is required")
	}
	if cfg.UseCase == nil {
		return nil, fmt.Errorf("usecase is required")
	}
	if len(cfg.KafkaConfig.Brokers) == 0 {
		return nil, fmt.Errorf("kafka brokers are required")
	}

	return &Consumer{
		l:           cfg.Logger,
		kafkaConfig: cfg.KafkaConfig,
		uc:          cfg.UseCase,
	}, nil
}

// Close closes the consumer group
func (c *Consumer) Close() error {
	if c.batchReadyGroup != nil {
		if err := c.batchReadyGroup.Close(); err != nil {
			return fmt.Errorf("failed to close batch ready group: %w", err)
		}
	}
	return nil
}

// topic returns the configured batch topic, falling back to the default.
func (c *Consumer) topic() string {
	if c.kafkaConfig.Topic != "" {
		return c.kafkaConfig.Topic
	}
	return kafkaDelivery.TopicBatchReady
}

// groupID returns the configured consumer group, falling back to the default.
func (c *Consumer) groupID() string {
	if c.kafkaConfig.GroupID != "" {
		return c.kafkaConfig.GroupID
	}
	return kafkaDelivery.GroupIDLoader
}

// createConsumerGroup creates a new Kafka consumer group
func (c *Consumer) createConsumerGroup(groupID string) (pkgKafka.IConsumer, error) {
	group, err := pkgKafka.NewConsumer(pkgKafka.ConsumerConfig{
		Brokers: c.kafkaConfig.Brokers,
		GroupID: groupID,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create consumer group %s: %w", groupID, err)
	}
	return group, nil
}
