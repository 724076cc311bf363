package consumer

import (
	"context"
	"errors"
	"testing"

	"github.com/IBM/sarama"

	"github.com/endee-io/endee-go/config"
	"github.com/endee-io/endee-go/internal/loader"
	kafkaDelivery "github.com/endee-io/endee-go/internal/loader/delivery/kafka"
	"github.com/endee-io/endee-go/pkg/log"
)

type fakeUseCase struct {
	inputs []loader.LoadInput
	err    error
}

func (f *fakeUseCase) Load(ctx context.Context, input loader.LoadInput) (loader.LoadOutput, error) {
	f.inputs = append(f.inputs, input)
	if f.err != nil {
		return loader.LoadOutput{}, f.err
	}
	return loader.LoadOutput{BatchID: input.BatchID, Loaded: 1}, nil
}

func newTestConsumer(t *testing.T, uc loader.UseCase) *Consumer {
	t.Helper()
	c, err := New(Config{
		Logger:      log.NewNop(),
		KafkaConfig: config.KafkaConfig{Brokers: []string{"localhost:9092"}},
		UseCase:     uc,
	})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return c
}

func TestHandleBatchReadyMessage(t *testing.T) {
	uc := &fakeUseCase{}
	c := newTestConsumer(t, uc)

	msg := &sarama.ConsumerMessage{
		Value: []byte(`{"batch_id":"b-1","index":"articles","file_url":"s3://batches/b-1.jsonl","record_count":42}`),
	}
	if err := c.handleBatchReadyMessage(msg); err != nil {
		t.Fatalf("handleBatchReadyMessage: %v", err)
	}

	if len(uc.inputs) != 1 {
		t.Fatalf("usecase calls = %d, want 1", len(uc.inputs))
	}
	got := uc.inputs[0]
	want := loader.LoadInput{BatchID: "b-1", Index: "articles", FileURL: "s3://batches/b-1.jsonl", RecordCount: 42}
	if got != want {
		t.Errorf("input = %+v, want %+v", got, want)
	}
}

func TestHandleSkipsMalformedMessage(t *testing.T) {
	uc := &fakeUseCase{}
	c := newTestConsumer(t, uc)

	msg := &sarama.ConsumerMessage{Value: []byte(`{"batch_id":`)}
	if err := c.handleBatchReadyMessage(msg); err != nil {
		t.Errorf("malformed message should be skipped, got %v", err)
	}
	if len(uc.inputs) != 0 {
		t.Errorf("usecase calls = %d, want 0", len(uc.inputs))
	}
}

func TestHandleSkipsIncompleteMessage(t *testing.T) {
	uc := &fakeUseCase{}
	c := newTestConsumer(t, uc)

	msg := &sarama.ConsumerMessage{Value: []byte(`{"batch_id":"b-1","file_url":"x"}`)}
	if err := c.handleBatchReadyMessage(msg); err != nil {
		t.Errorf("incomplete message should be skipped, got %v", err)
	}
	if len(uc.inputs) != 0 {
		t.Errorf("usecase calls = %d, want 0", len(uc.inputs))
	}
}

func TestHandleReturnsUsecaseError(t *testing.T) {
	uc := &fakeUseCase{err: errors.New("boom")}
	c := newTestConsumer(t, uc)

	msg := &sarama.ConsumerMessage{
		Value: []byte(`{"batch_id":"b-1","index":"articles","file_url":"b-1.jsonl"}`),
	}
	if err := c.handleBatchReadyMessage(msg); err == nil {
		t.Error("usecase failure should propagate so the message is redelivered")
	}
}

func TestNewValidatesConfig(t *testing.T) {
	base := Config{
		Logger:      log.NewNop(),
		KafkaConfig: config.KafkaConfig{Brokers: []string{"localhost:9092"}},
		UseCase:     &fakeUseCase{},
	}

	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"no logger", func(c *Config) { c.Logger = nil }},
		{"no usecase", func(c *Config) { c.UseCase = nil }},
		{"no brokers", func(c *Config) { c.KafkaConfig.Brokers = nil }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := base
			tt.mutate(&cfg)
			if _, err := New(cfg); err == nil {
				t.Errorf("New(%s) should fail", tt.name)
			}
		})
	}
}

func TestTopicAndGroupFallbacks(t *testing.T) {
	c := newTestConsumer(t, &fakeUseCase{})
	if got := c.topic(); got != kafkaDelivery.TopicBatchReady {
		t.Errorf("topic = %q, want default %q", got, kafkaDelivery.TopicBatchReady)
	}
	if got := c.groupID(); got != kafkaDelivery.GroupIDLoader {
		t.Errorf("group = %q, want default %q", got, kafkaDelivery.GroupIDLoader)
	}

	c.kafkaConfig.Topic = "custom.topic"
	c.kafkaConfig.GroupID = "custom-group"
	if got := c.topic(); got != "custom.topic" {
		t.Errorf("topic = %q, want configured value", got)
	}
	if got := c.groupID(); got != "custom-group" {
		t.Errorf("group = %q, want configured value", got)
	}
}
