package consumer

import (
	"github.com/endee-io/endee-go/internal/loader"
	kafkaDelivery "github.com/endee-io/endee-go/internal/loader/delivery/kafka"
)

// toLoadInput maps the Kafka message DTO to the usecase input.
func toLoadInput(m kafkaDelivery.BatchReadyMessage) loader.LoadInput {
	return loader.LoadInput{
		BatchID:     m.BatchID,
		Index:       m.Index,
		FileURL:     m.FileURL,
		RecordCount: m.RecordCount,
	}
}
