package kafka

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/IBM/sarama"
	log "github.com/sirupsen/logrus"

	"github.com/vladislavdragonenkov/cardapio/internal/domain"
)

// Заголовки записи: по ним консьюмеры фильтруют события, не разбирая JSON.
const (
	HeaderEventType     = "event_type"
	HeaderAggregateType = "aggregate_type"
)

const producerMaxRetries = 5

// ErrNoBrokers возвращается, если список брокеров пуст.
var ErrNoBrokers = errors.New("kafka brokers are not configured")

// Producer отправляет JSON-сообщения в Kafka синхронно.
type Producer struct {
	producer sarama.SyncProducer
	logger   *log.Entry
}

// NewSyncProducer создаёт sarama.SyncProducer с acks=all и идемпотентной доставкой.
// Общий для сервиса и cmd/dlq-reprocess.
func NewSyncProducer(brokers []string, clientID string) (sarama.SyncProducer, error) {
	if len(brokers) == 0 {
		return nil, ErrNoBrokers
	}

	cfg := sarama.NewConfig()
	if clientID != "" {
		cfg.ClientID = clientID
	}
	cfg.Producer.RequiredAcks = sarama.WaitForAll
	cfg.Producer.Idempotent = true
	cfg.Net.MaxOpenRequests = 1 // обязательно при Idempotent
	cfg.Producer.Retry.Max = producerMaxRetries
	cfg.Producer.Return.Successes = true
	cfg.Producer.Compression = sarama.CompressionSnappy

	producer, err := sarama.NewSyncProducer(brokers, cfg)
	if err != nil {
		return nil, fmt.Errorf("create kafka producer: %w", err)
	}
	return producer, nil
}

// NewProducer подключается к брокерам. clientID попадает в логи брокера.
func NewProducer(brokers []string, clientID string) (*Producer, error) {
	producer, err := NewSyncProducer(brokers, clientID)
	if err != nil {
		return nil, err
	}
	return &Producer{
		producer: producer,
		logger:   log.WithField("component", "kafka-producer"),
	}, nil
}

// EventHeaders возвращает заголовки записи для outbox-события.
func EventHeaders(event domain.OutboxMessage) []sarama.RecordHeader {
	headers := make([]sarama.RecordHeader, 0, 2)
	if event.EventType != "" {
		headers = append(headers, sarama.RecordHeader{Key: []byte(HeaderEventType), Value: []byte(event.EventType)})
	}
	if event.AggregateType != "" {
		headers = append(headers, sarama.RecordHeader{Key: []byte(HeaderAggregateType), Value: []byte(event.AggregateType)})
	}
	return headers
}

// Send кодирует value в JSON и дожидается подтверждения брокера.
func (p *Producer) Send(topic, key string, value any, headers ...sarama.RecordHeader) error {
	body, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("marshal kafka message: %w", err)
	}

	fields := log.Fields{"topic": topic, "key": key}
	partition, offset, err := p.producer.SendMessage(&sarama.ProducerMessage{
		Topic:     topic,
		Key:       sarama.StringEncoder(key),
		Value:     sarama.ByteEncoder(body),
		Headers:   headers,
		Timestamp: time.Now().UTC(),
	})
	if err != nil {
		p.logger.WithError(err).WithFields(fields).Error("kafka send failed")
		return fmt.Errorf("send to %s: %w", topic, err)
	}

	fields["partition"], fields["offset"] = partition, offset
	p.logger.WithFields(fields).Debug("kafka message sent")
	return nil
}

// Close закрывает producer.
func (p *Producer) Close() error {
	if err := p.producer.Close(); err != nil {
		return fmt.Errorf("close kafka producer: %w", err)
	}
	return nil
}
