package consumer

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/IBM/sarama"

	kafkaDelivery "github.com/endee-io/endee-go/internal/loader/delivery/kafka"
)

// handleBatchReadyMessage decodes and validates the message, then delegates
// to the usecase. Malformed messages are skipped so they do not wedge the
// partition.
func (c *Consumer) handleBatchReadyMessage(msg *sarama.ConsumerMessage) error {
	ctx := context.Background()

	c.l.Infof(ctx, "loader.delivery.kafka.consumer.handleBatchReadyMessage: processing message from partition %d, offset %d",
		msg.Partition, msg.Offset)

	// 1. Unmarshal message
	var message kafkaDelivery.BatchReadyMessage
	if err := json.Unmarshal(msg.Value, &message); err != nil {
		c.l.Warnf(ctx, "loader.delivery.kafka.consumer.handleBatchReadyMessage: invalid message format (skipping): %v", err)
		return nil
	}

	// 2. Validate message (format only; business rules stay in usecase)
	if message.BatchID == "" || message.Index == "" || message.FileURL == "" {
		c.l.Warnf(ctx, "loader.delivery.kafka.consumer.handleBatchReadyMessage: missing required fields (skipping)")
		return nil
	}

	// 3. Map to usecase input and run the pipeline
	output, err := c.uc.Load(ctx, toLoadInput(message))
	if err != nil {
		c.l.Errorf(ctx, "loader.delivery.kafka.consumer.handleBatchReadyMessage: usecase Load failed: %v", err)
		return fmt.Errorf("usecase error: %w", err)
	}

	c.l.Infof(ctx, "loader.delivery.kafka.consumer.handleBatchReadyMessage: processed batch %s: loaded=%d, failed=%d, skipped=%d",
		message.BatchID, output.Loaded, output.Failed, output.Skipped)
	return nil
}
