package kafka

import (
	"context"

	"github.com/IBM/sarama"
)

// IProducer publishes records to the topic fixed at construction.
// Implementations are safe for concurrent use.
type IProducer interface {
	Publish(key, value []byte) error
	Close() error
	HealthCheck() error
}

// IConsumer is a consumer group member. It hides the sarama session loop so
// callers deal with one blocking call and one shutdown call.
type IConsumer interface {
	// Consume handles the topics until the context is cancelled or the
	// group is closed. Rebalances are rejoined transparently.
	Consume(ctx context.Context, topics []string, handler sarama.ConsumerGroupHandler) error
	// Errors returns the group error channel.
	Errors() <-chan error
	// Close leaves the group and releases its resources.
	Close() error
}

// NewProducer creates a sync producer publishing to cfg.Topic.
func NewProducer(cfg ProducerConfig) (IProducer, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return newProducerImpl(cfg)
}

// NewConsumer joins the consumer group named by cfg.GroupID.
func NewConsumer(cfg ConsumerConfig) (IConsumer, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return newConsumerImpl(cfg)
}
