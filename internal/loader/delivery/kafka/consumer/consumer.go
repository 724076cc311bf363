package consumer

import (
	"context"
	"errors"
)

// ConsumeBatchReady starts consuming batch announcements. It returns after
// the group is joined; processing runs in background goroutines until the
// context is cancelled.
func (c *Consumer) ConsumeBatchReady(ctx context.Context) error {
	group, err := c.createConsumerGroup(c.groupID())
	if err != nil {
		return err
	}
	c.batchReadyGroup = group

	handler := &batchReadyHandler{consumer: c}
	topic := c.topic()

	go func() {
		if err := group.Consume(ctx, []string{topic}, handler); err != nil && !errors.Is(err, context.Canceled) {
			c.l.Errorf(ctx, "loader.delivery.kafka.consumer.ConsumeBatchReady: consumer stopped: %v", err)
		}
	}()

	go func() {
		for err := range group.Errors() {
			c.l.Errorf(ctx, "loader.delivery.kafka.consumer.ConsumeBatchReady: group error: %v", err)
		}
	}()

	c.l.Infof(ctx, "Consuming %s", topic)
	return nil
}
