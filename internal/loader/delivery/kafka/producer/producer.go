package producer

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/endee-io/endee-go/internal/loader"
	kafkaDelivery "github.com/endee-io/endee-go/internal/loader/delivery/kafka"
)

// PublishFailedRecord dead-letters one record. Messages are keyed by record
// ID so retries of the same record land on the same partition.
func (p *implProducer) PublishFailedRecord(ctx context.Context, event loader.FailedRecordEvent) error {
	msg := kafkaDelivery.FailedRecordMessage{
		BatchID:      event.BatchID,
		Index:        event.Index,
		Record:       event.Record,
		ErrorType:    event.ErrorType,
		ErrorMessage: event.ErrorMessage,
		FailedAt:     event.FailedAt,
	}

	body, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("failed to marshal failed record: %w", err)
	}

	key := event.Record.ID
	if key == "" {
		key = event.BatchID
	}
	if err := p.producer.Publish([]byte(key), body); err != nil {
		return fmt.Errorf("failed to publish failed record: %w", err)
	}

	p.l.Debugf(ctx, "Dead lettered record %q from batch %s: %s", event.Record.ID, event.BatchID, event.ErrorType)
	return nil
}
