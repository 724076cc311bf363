package kafka

import "fmt"

// ProducerConfig describes a producer bound to one topic. The loader keeps a
// single producer for the dead letter queue, so the topic is fixed at
// construction rather than per message.
type ProducerConfig struct {
	Brokers []string
	Topic   string
}

func (cfg ProducerConfig) validate() error {
	if len(cfg.Brokers) == 0 {
		return fmt.Errorf("kafka: no brokers configured")
	}
	if cfg.Topic == "" {
		return fmt.Errorf("kafka: producer topic is empty")
	}
	return nil
}

// ConsumerConfig describes membership in a consumer group. Topics are chosen
// per Consume call, not here.
type ConsumerConfig struct {
	Brokers []string
	GroupID string
}

func (cfg ConsumerConfig) validate() error {
	if len(cfg.Brokers) == 0 {
		return fmt.Errorf("kafka: no brokers configured")
	}
	if cfg.GroupID == "" {
		return fmt.Errorf("kafka: consumer group ID is empty")
	}
	return nil
}
