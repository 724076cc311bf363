package consumer

import (
	"context"

	loaderConsumer "github.com/endee-io/endee-go/internal/loader/delivery/kafka/consumer"
	loaderProducer "github.com/endee-io/endee-go/internal/loader/delivery/kafka/producer"
	loaderUsecase "github.com/endee-io/endee-go/internal/loader/usecase"
)

// buildLoader wires the loader domain: the dead letter producer, the use
// case on top of it, and the consumer that feeds the use case.
func (srv *ConsumerServer) buildLoader(ctx context.Context) (*loaderConsumer.Consumer, error) {
	dlq := loaderProducer.New(srv.l, srv.dlqProducer)
	uc := loaderUsecase.New(srv.l, srv.endeeClient, srv.voyageClient, srv.objStore, srv.redisClient, dlq)

	cons, err := loaderConsumer.New(loaderConsumer.Config{
		Logger:      srv.l,
		KafkaConfig: srv.kafkaConfig,
		UseCase:     uc,
	})
	if err != nil {
		return nil, err
	}

	srv.l.Infof(ctx, "Loader domain initialized")
	return cons, nil
}
