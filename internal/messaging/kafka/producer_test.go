package kafka

import (
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/IBM/sarama"
	"github.com/IBM/sarama/mocks"
	log "github.com/sirupsen/logrus"

	"github.com/vladislavdragonenkov/cardapio/internal/domain"
)

func TestProducer_Send(t *testing.T) {
	mockProducer := mocks.NewSyncProducer(t, nil)

	producer := &Producer{
		producer: mockProducer,
		logger:   log.WithField("component", "kafka-producer-test"),
	}

	// Проверяем, что в topic уходит JSON с payload события
	mockProducer.ExpectSendMessageWithCheckerFunctionAndSucceed(func(val []byte) error {
		var got domain.StoreEventPayload
		if err := json.Unmarshal(val, &got); err != nil {
			return err
		}
		if !got.Open {
			t.Errorf("expected open=true in payload")
		}
		return nil
	})

	event := domain.StoreEventPayload{Open: true, OccurredAt: time.Now().UTC()}
	if err := producer.Send(TopicStoreEvents, "store", event); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if err := mockProducer.Close(); err != nil {
		t.Fatal(err)
	}
}

func TestProducer_Send_Error(t *testing.T) {
	mockProducer := mocks.NewSyncProducer(t, nil)

	producer := &Producer{
		producer: mockProducer,
		logger:   log.WithField("component", "kafka-producer-test"),
	}

	mockProducer.ExpectSendMessageAndFail(sarama.ErrOutOfBrokers)

	err := producer.Send(TopicOrderEvents, "order-123", domain.OrderEventPayload{OrderID: "order-123"})
	if err == nil {
		t.Fatal("expected error, got nil")
	}

	if err := mockProducer.Close(); err != nil {
		t.Fatal(err)
	}
}

func TestNewProducer_NoBrokers(t *testing.T) {
	if _, err := NewProducer(nil, "cardapio"); !errors.Is(err, ErrNoBrokers) {
		t.Fatalf("expected ErrNoBrokers, got %v", err)
	}
}

func TestEventHeaders(t *testing.T) {
	headers := EventHeaders(domain.OutboxMessage{AggregateType: domain.AggregateOrder, EventType: domain.EventOrderDelivered})
	if len(headers) != 2 {
		t.Fatalf("expected 2 headers, got %d", len(headers))
	}
	if string(headers[0].Key) != HeaderEventType || string(headers[0].Value) != domain.EventOrderDelivered {
		t.Fatalf("unexpected event_type header: %s=%s", headers[0].Key, headers[0].Value)
	}
	if string(headers[1].Key) != HeaderAggregateType || string(headers[1].Value) != domain.AggregateOrder {
		t.Fatalf("unexpected aggregate_type header: %s=%s", headers[1].Key, headers[1].Value)
	}

	if got := EventHeaders(domain.OutboxMessage{}); len(got) != 0 {
		t.Fatalf("expected no headers for empty event, got %d", len(got))
	}
}

func TestTopicFor(t *testing.T) {
	tests := []struct {
		aggregate string
		fallback  string
		want      string
	}{
		{aggregate: domain.AggregateOrder, want: TopicOrderEvents},
		{aggregate: domain.AggregateStore, want: TopicStoreEvents},
		{aggregate: "other", fallback: "custom", want: "custom"},
		{aggregate: "other", want: TopicOrderEvents},
	}
	for _, tt := range tests {
		if got := TopicFor(tt.aggregate, tt.fallback); got != tt.want {
			t.Errorf("TopicFor(%q, %q) = %q, want %q", tt.aggregate, tt.fallback, got, tt.want)
		}
	}
}
