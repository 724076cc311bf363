package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/endee-io/endee-go/config"
	endeeCfg "github.com/endee-io/endee-go/config/endee"
	"github.com/endee-io/endee-go/config/kafka"
	"github.com/endee-io/endee-go/config/objstore"
	"github.com/endee-io/endee-go/config/redis"
	"github.com/endee-io/endee-go/config/voyage"
	"github.com/endee-io/endee-go/internal/consumer"
	"github.com/endee-io/endee-go/pkg/log"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// Initialize logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	// Create context with signal handling for graceful shutdown
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting Endee Loader...")

	// Kafka Producer (for dead letters)
	dlqProducer, err := kafka.ConnectProducer(cfg.Kafka)
	if err != nil {
		logger.Errorf(ctx, "Failed to connect to Kafka producer: %v", err)
		return
	}
	defer kafka.DisconnectProducer()
	logger.Info(ctx, "Kafka producer initialized")

	// Redis
	redisClient, err := redis.Connect(ctx, cfg.Redis)
	if err != nil {
		logger.Errorf(ctx, "Failed to connect to Redis: %v", err)
		return
	}
	defer redis.Disconnect()
	logger.Info(ctx, "Redis client initialized")

	// Endee
	endeeClient, err := endeeCfg.Connect(ctx, cfg.Endee, logger)
	if err != nil {
		logger.Errorf(ctx, "Failed to connect to Endee: %v", err)
		return
	}
	defer endeeCfg.Disconnect()
	logger.Info(ctx, "Endee client initialized")

	// Object store
	objStore, err := objstore.Connect(ctx, cfg.ObjStore)
	if err != nil {
		logger.Errorf(ctx, "Failed to connect to object store: %v", err)
		return
	}
	defer objstore.Disconnect()
	logger.Info(ctx, "Object store client initialized")

	// Voyage
	voyageClient := voyage.Connect(cfg.Voyage)
	logger.Info(ctx, "Voyage client initialized")

	// Consumer server
	srv, err := consumer.New(consumer.Config{
		Logger:       logger,
		KafkaConfig:  cfg.Kafka,
		EndeeClient:  endeeClient,
		RedisClient:  redisClient,
		ObjStore:     objStore,
		DLQProducer:  dlqProducer,
		VoyageClient: voyageClient,
	})
	if err != nil {
		logger.Errorf(ctx, "Failed to create consumer server: %v", err)
		return
	}

	// Run consumer server
	logger.Info(ctx, "Consumer server starting...")
	if err := srv.Run(ctx); err != nil {
		logger.Errorf(ctx, "Consumer server error: %v", err)
		return
	}

	logger.Info(ctx, "Consumer server stopped gracefully")
}
