package consumer

import (
	"context"

	"github.com/endee-io/endee-go/config"
	"github.com/endee-io/endee-go/pkg/endee"
	pkgKafka "github.com/endee-io/endee-go/pkg/kafka"
	"github.com/endee-io/endee-go/pkg/log"
	"github.com/endee-io/endee-go/pkg/objstore"
	pkgRedis "github.com/endee-io/endee-go/pkg/redis"
	"github.com/endee-io/endee-go/pkg/voyage"
)

// ConsumerServer runs the loader's Kafka consumers on top of the shared
// infrastructure clients.
type ConsumerServer struct {
	l           log.Logger
	kafkaConfig config.KafkaConfig

	endeeClient  endee.IEndee
	redisClient  pkgRedis.IRedis
	objStore     objstore.IObjStore
	dlqProducer  pkgKafka.IProducer
	voyageClient voyage.IVoyage
}

// Config lists the dependencies for New. Every field is required.
type Config struct {
	Logger      log.Logger
	KafkaConfig config.KafkaConfig

	EndeeClient  endee.IEndee
	RedisClient  pkgRedis.IRedis
	ObjStore     objstore.IObjStore
	DLQProducer  pkgKafka.IProducer
	VoyageClient voyage.IVoyage
}

// Run blocks until the context is cancelled. It wires the loader domain,
// starts consuming, and drains on shutdown.
func (srv *ConsumerServer) Run(ctx context.Context) error {
	cons, err := srv.buildLoader(ctx)
	if err != nil {
		srv.l.Errorf(ctx, "Failed to build loader domain: %v", err)
		return err
	}

	if err := cons.ConsumeBatchReady(ctx); err != nil {
		srv.l.Errorf(ctx, "Failed to start batch consumer: %v", err)
		return err
	}

	srv.l.Info(ctx, "Loader is running")

	<-ctx.Done()
	srv.l.Info(ctx, "Shutdown signal received, stopping consumers...")

	if err := cons.Close(); err != nil {
		srv.l.Errorf(ctx, "Failed to close loader consumer: %v", err)
	}

	srv.l.Info(ctx, "Loader stopped gracefully")
	return nil
}
