package consumer

import (
	"context"

	"github.com/IBM/sarama"
)

type batchReadyHandler struct {
	consumer *Consumer
}

func (h *batchReadyHandler) Setup(sarama.ConsumerGroupSession) error {
	return nil
}

func (h *batchReadyHandler) Cleanup(sarama.ConsumerGroupSession) error {
	return nil
}

// ConsumeClaim processes one partition claim. Failed messages are not
// marked, so they are redelivered on the next session.
func (h *batchReadyHandler) ConsumeClaim(session sarama.ConsumerGroupSession, claim sarama.ConsumerGroupClaim) error {
	for msg := range claim.Messages() {
		if err := h.consumer.handleBatchReadyMessage(msg); err != nil {
			h.consumer.l.Errorf(context.Background(), "loader.delivery.kafka.consumer.ConsumeClaim: failed to process batch message: %v", err)
			continue
		}
		session.MarkMessage(msg, "")
	}
	return nil
}
