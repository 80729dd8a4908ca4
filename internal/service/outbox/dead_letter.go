package outbox

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/vladislavdragonenkov/cardapio/internal/domain"
)

// DeadLetter: событие, которое не удалось опубликовать за все попытки.
// В таком виде оно уходит в DLQ и оттуда же читается cmd/dlq-reprocess.
type DeadLetter struct {
	OutboxID      string          `json:"outbox_id"`
	AggregateType string          `json:"aggregate_type"`
	AggregateID   string          `json:"aggregate_id"`
	EventType     string          `json:"event_type"`
	Payload       json.RawMessage `json:"payload"`
	PublishError  string          `json:"publish_error"`
	Attempts      int             `json:"attempts"`
	FailedAt      time.Time       `json:"failed_at"`
}

// NewDeadLetter собирает DeadLetter из исходного события.
func NewDeadLetter(event domain.OutboxMessage, publishErr error, attempts int, failedAt time.Time) DeadLetter {
	dl := DeadLetter{
		OutboxID:      event.ID,
		AggregateType: event.AggregateType,
		AggregateID:   event.AggregateID,
		EventType:     event.EventType,
		Payload:       json.RawMessage(event.Payload),
		Attempts:      attempts,
		FailedAt:      failedAt.UTC(),
	}
	if publishErr != nil {
		dl.PublishError = publishErr.Error()
	}
	return dl
}

// Message упаковывает DeadLetter в outbox-сообщение для DLQ publisher.
func (d DeadLetter) Message() (domain.OutboxMessage, error) {
	payload, err := json.Marshal(d)
	if err != nil {
		return domain.OutboxMessage{}, fmt.Errorf("marshal dead letter: %w", err)
	}
	return domain.OutboxMessage{
		ID:            d.OutboxID,
		AggregateType: d.AggregateType,
		AggregateID:   d.AggregateID,
		EventType:     d.EventType,
		Payload:       payload,
	}, nil
}

// Original восстанавливает исходное событие для повторной публикации.
func (d DeadLetter) Original() domain.OutboxMessage {
	return domain.OutboxMessage{
		ID:            d.OutboxID,
		AggregateType: d.AggregateType,
		AggregateID:   d.AggregateID,
		EventType:     d.EventType,
		Payload:       []byte(d.Payload),
	}
}

// DecodeDeadLetter разбирает payload DLQ-сообщения.
func DecodeDeadLetter(raw []byte) (DeadLetter, error) {
	var dl DeadLetter
	if err := json.Unmarshal(raw, &dl); err != nil {
		return DeadLetter{}, fmt.Errorf("decode dead letter: %w", err)
	}
	if len(dl.Payload) == 0 {
		return DeadLetter{}, errors.New("dead letter does not contain original event payload")
	}
	return dl, nil
}
