package kafka

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/vladislavdragonenkov/cardapio/internal/domain"
)

// OutboxTopicPublisher публикует outbox-сообщения в Kafka.
// Пустой topic означает маршрутизацию по типу агрегата (TopicFor).
type OutboxTopicPublisher struct {
	producer *Producer
	topic    string
}

// NewOutboxPublisher создаёт Kafka-паблишер для transactional outbox.
func NewOutboxPublisher(producer *Producer, topic string) domain.OutboxPublisher {
	return &OutboxTopicPublisher{
		producer: producer,
		topic:    topic,
	}
}

// Envelope: формат сообщения во всех топиках сервиса, включая DLQ.
type Envelope struct {
	ID            string          `json:"id"`
	AggregateType string          `json:"aggregate_type"`
	AggregateID   string          `json:"aggregate_id"`
	EventType     string          `json:"event_type"`
	Payload       json.RawMessage `json:"payload"`
	PublishedAt   time.Time       `json:"published_at"`
}

func (p *OutboxTopicPublisher) Publish(event domain.OutboxMessage) error {
	if p == nil || p.producer == nil {
		return fmt.Errorf("kafka outbox publisher is not initialized")
	}

	topic := p.topic
	if topic == "" {
		topic = TopicFor(event.AggregateType, "")
	}
	return p.producer.Send(topic, MessageKey(event), NewEnvelope(event, time.Now()), EventHeaders(event)...)
}

// NewEnvelope оборачивает outbox-сообщение для публикации.
func NewEnvelope(event domain.OutboxMessage, publishedAt time.Time) Envelope {
	return Envelope{
		ID:            event.ID,
		AggregateType: event.AggregateType,
		AggregateID:   event.AggregateID,
		EventType:     event.EventType,
		Payload:       json.RawMessage(event.Payload),
		PublishedAt:   publishedAt.UTC(),
	}
}

// MessageKey: ключ партиционирования: агрегат, иначе id события.
func MessageKey(event domain.OutboxMessage) string {
	if event.AggregateID != "" {
		return event.AggregateID
	}
	return event.ID
}

var _ domain.OutboxPublisher = (*OutboxTopicPublisher)(nil)
