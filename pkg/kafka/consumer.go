package kafka

import (
	"context"
	"errors"
	"fmt"

	"github.com/IBM/sarama"
)

type consumerImpl struct {
	group sarama.ConsumerGroup
}

func newConsumerImpl(cfg ConsumerConfig) (*consumerImpl, error) {
	sc := newBaseConfig()
	sc.Consumer.Group.Rebalance.Strategy = sarama.NewBalanceStrategyRoundRobin()
	sc.Consumer.Offsets.Initial = sarama.OffsetNewest
	sc.Consumer.Return.Errors = true

	group, err := sarama.NewConsumerGroup(cfg.Brokers, cfg.GroupID, sc)
	if err != nil {
		return nil, fmt.Errorf("kafka: create consumer group: %w", err)
	}
	return &consumerImpl{group: group}, nil
}

// Consume joins the group and runs the handler session loop. A session ends
// on every rebalance, so the loop rejoins until the context is cancelled or
// the group is closed.
func (c *consumerImpl) Consume(ctx context.Context, topics []string, handler sarama.ConsumerGroupHandler) error {
	for {
		if err := c.group.Consume(ctx, topics, handler); err != nil {
			if errors.Is(err, sarama.ErrClosedConsumerGroup) {
				return nil
			}
			return fmt.Errorf("kafka: consume: %w", err)
		}
		if err := ctx.Err(); err != nil {
			return err
		}
	}
}

// Errors returns the group error channel.
func (c *consumerImpl) Errors() <-chan error {
	return c.group.Errors()
}

// Close leaves the group.
func (c *consumerImpl) Close() error {
	if c.group == nil {
		return nil
	}
	return c.group.Close()
}
