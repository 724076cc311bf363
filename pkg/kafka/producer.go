package kafka

import (
	"fmt"

	"github.com/IBM/sarama"
)

type producerImpl struct {
	producer sarama.SyncProducer
	topic    string
}

func newProducerImpl(cfg ProducerConfig) (*producerImpl, error) {
	sc := newBaseConfig()
	sc.Producer.RequiredAcks = sarama.WaitForLocal
	sc.Producer.Compression = sarama.CompressionSnappy
	sc.Producer.Return.Successes = true
	sc.Producer.Retry.Max = publishRetries
	sc.Producer.Timeout = publishTimeout

	producer, err := sarama.NewSyncProducer(cfg.Brokers, sc)
	if err != nil {
		return nil, fmt.Errorf("kafka: create producer: %w", err)
	}
	return &producerImpl{producer: producer, topic: cfg.Topic}, nil
}

// Publish sends one record and waits for the leader ack.
func (p *producerImpl) Publish(key, value []byte) error {
	_, _, err := p.producer.SendMessage(&sarama.ProducerMessage{
		Topic: p.topic,
		Key:   sarama.ByteEncoder(key),
		Value: sarama.ByteEncoder(value),
	})
	if err != nil {
		return fmt.Errorf("kafka: publish to %s: %w", p.topic, err)
	}
	return nil
}

// Close flushes and closes the producer.
func (p *producerImpl) Close() error {
	if p.producer == nil {
		return nil
	}
	return p.producer.Close()
}

// HealthCheck reports whether the producer was constructed.
func (p *producerImpl) HealthCheck() error {
	if p.producer == nil {
		return fmt.Errorf("kafka: producer is not initialized")
	}
	return nil
}
