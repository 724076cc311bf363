package consumer

import "fmt"

// New builds a consumer server after checking that every dependency is
// present. Missing dependencies fail here rather than at first use.
func New(cfg Config) (*ConsumerServer, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return &ConsumerServer{
		l:            cfg.Logger,
		kafkaConfig:  cfg.KafkaConfig,
		endeeClient:  cfg.EndeeClient,
		redisClient:  cfg.RedisClient,
		objStore:     cfg.ObjStore,
		dlqProducer:  cfg.DLQProducer,
		voyageClient: cfg.VoyageClient,
	}, nil
}

func (cfg Config) validate() error {
	switch {
	case cfg.Logger == nil:
		return fmt.Errorf("consumer: logger is required")
	case len(cfg.KafkaConfig.Brokers) == 0:
		return fmt.Errorf("consumer: kafka brokers are required")
	case cfg.EndeeClient == nil:
		return fmt.Errorf("consumer: endee client is required")
	case cfg.RedisClient == nil:
		return fmt.Errorf("consumer: redis client is required")
	case cfg.ObjStore == nil:
		return fmt.Errorf("consumer: object store is required")
	case cfg.DLQProducer == nil:
		return fmt.Errorf("consumer: dlq producer is required")
	case cfg.VoyageClient == nil:
		return fmt.Errorf("consumer: voyage client is required")
	}
	return nil
}
