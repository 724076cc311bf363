package kafka

import (
	"errors"
	"strings"
	"testing"

	"github.com/IBM/sarama/mocks"
)

func TestProducerConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     ProducerConfig
		wantErr bool
	}{
		{"ok", ProducerConfig{Brokers: []string{"localhost:9092"}, Topic: "batch.ready"}, false},
		{"no brokers", ProducerConfig{Topic: "batch.ready"}, true},
		{"no topic", ProducerConfig{Brokers: []string{"localhost:9092"}}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("validate(%+v) = %v, wantErr %v", tt.cfg, err, tt.wantErr)
			}
		})
	}
}

func TestConsumerConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     ConsumerConfig
		wantErr bool
	}{
		{"ok", ConsumerConfig{Brokers: []string{"localhost:9092"}, GroupID: "loader"}, false},
		{"no brokers", ConsumerConfig{GroupID: "loader"}, true},
		{"no group", ConsumerConfig{Brokers: []string{"localhost:9092"}}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("validate(%+v) = %v, wantErr %v", tt.cfg, err, tt.wantErr)
			}
		})
	}
}

func TestNewProducerRejectsInvalidConfig(t *testing.T) {
	if _, err := NewProducer(ProducerConfig{}); err == nil {
		t.Error("NewProducer with empty config should fail")
	}
}

func TestPublishSendsToConfiguredTopic(t *testing.T) {
	mock := mocks.NewSyncProducer(t, nil)
	mock.ExpectSendMessageWithCheckerFunctionAndSucceed(func(val []byte) error {
		if string(val) != `{"batch":"b-1"}` {
			return errors.New("unexpected message value " + string(val))
		}
		return nil
	})

	p := &producerImpl{producer: mock, topic: "batch.ready"}
	if err := p.Publish([]byte("b-1"), []byte(`{"batch":"b-1"}`)); err != nil {
		t.Fatalf("Publish: %v", err)
	}
	if err := p.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}
}

func TestPublishWrapsBrokerError(t *testing.T) {
	mock := mocks.NewSyncProducer(t, nil)
	mock.ExpectSendMessageAndFail(errors.New("broker down"))

	p := &producerImpl{producer: mock, topic: "batch.ready"}
	err := p.Publish([]byte("b-1"), []byte("{}"))
	if err == nil {
		t.Fatal("expected publish error")
	}
	if !strings.Contains(err.Error(), "batch.ready") {
		t.Errorf("error %q should name the topic", err)
	}
	if err := p.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}
}

func TestHealthCheck(t *testing.T) {
	p := &producerImpl{}
	if err := p.HealthCheck(); err == nil {
		t.Error("HealthCheck on uninitialized producer should fail")
	}

	p = &producerImpl{producer: mocks.NewSyncProducer(t, nil), topic: "batch.ready"}
	if err := p.HealthCheck(); err != nil {
		t.Errorf("HealthCheck = %v, want nil", err)
	}
}
