package outbox

import (
	"context"
	"encoding/json"

	log "github.com/sirupsen/logrus"

	"github.com/vladislavdragonenkov/cardapio/internal/domain"
	"github.com/vladislavdragonenkov/cardapio/internal/metrics"
)

// Emitter сериализует события и кладёт их в outbox.
// Ошибка записи события не отменяет уже выполненное бизнес-действие: она логируется.
type Emitter struct {
	repo    domain.OutboxRepository
	metrics *metrics.ShopMetrics
	logger  *log.Entry
}

// NewEmitter создаёт Emitter. nil repo отключает запись событий.
func NewEmitter(repo domain.OutboxRepository, m *metrics.ShopMetrics, logger *log.Entry) *Emitter {
	if logger == nil {
		logger = log.WithField("component", "outbox-emitter")
	}
	return &Emitter{repo: repo, metrics: m, logger: logger}
}

// Emit пишет событие aggregateType/aggregateID с payload в outbox.
func (e *Emitter) Emit(ctx context.Context, aggregateType, aggregateID, eventType string, payload any) {
	if e == nil || e.repo == nil {
		return
	}

	fields := log.Fields{
		"aggregate_id": aggregateID,
		"event":        eventType,
	}

	data, err := json.Marshal(payload)
	if err != nil {
		e.logger.WithError(err).WithFields(fields).Error("marshal event failed")
		return
	}

	if _, err := e.repo.Enqueue(ctx, domain.OutboxMessage{
		AggregateType: aggregateType,
		AggregateID:   aggregateID,
		EventType:     eventType,
		Payload:       data,
	}); err != nil {
		e.logger.WithError(err).WithFields(fields).Error("enqueue event failed")
		return
	}
	e.metrics.RecordOutboxEvent()
}

// LogPublisher «публикует» события в лог. Используется, когда Kafka не настроена.
type LogPublisher struct {
	logger *log.Entry
}

// NewLogPublisher создаёт publisher, пишущий события в logrus.
func NewLogPublisher(logger *log.Entry) *LogPublisher {
	if logger == nil {
		logger = log.WithField("component", "outbox-log-publisher")
	}
	return &LogPublisher{logger: logger}
}

func (p *LogPublisher) Publish(event domain.OutboxMessage) error {
	p.logger.WithFields(log.Fields{
		"outbox_id":      event.ID,
		"aggregate_type": event.AggregateType,
		"aggregate_id":   event.AggregateID,
		"event_type":     event.EventType,
		"payload":        string(event.Payload),
	}).Info("событие опубликовано")
	return nil
}

var _ domain.OutboxPublisher = (*LogPublisher)(nil)
