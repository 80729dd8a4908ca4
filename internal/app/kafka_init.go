package app

import (
	log "github.com/sirupsen/logrus"

	"github.com/vladislavdragonenkov/cardapio/internal/domain"
	"github.com/vladislavdragonenkov/cardapio/internal/messaging/kafka"
	"github.com/vladislavdragonenkov/cardapio/internal/service/outbox"
	"github.com/vladislavdragonenkov/cardapio/internal/version"
)

// outboxPublishers выбирает, куда уходят события outbox.
type outboxPublishers struct {
	main     domain.OutboxPublisher
	dlq      domain.OutboxPublisher
	producer *kafka.Producer
}

// initOutboxPublishers подключает Kafka, если брокеры заданы. Недоступный брокер
// не мешает принимать заказы: события пишутся в лог.
func initOutboxPublishers(cfg Config, logger *log.Entry) outboxPublishers {
	fallback := outboxPublishers{main: outbox.NewLogPublisher(logger.WithField("layer", "outbox-log"))}
	if len(cfg.KafkaBrokers) == 0 {
		return fallback
	}

	producer, err := kafka.NewProducer(cfg.KafkaBrokers, version.ClientID("cardapio"))
	if err != nil {
		logger.WithError(err).Warn("failed to create kafka producer, continuing without kafka")
		return fallback
	}

	logger.WithField("brokers", cfg.KafkaBrokers).Info("kafka producer initialized")
	return outboxPublishers{
		main:     kafka.NewOutboxPublisher(producer, cfg.KafkaTopic),
		dlq:      kafka.NewOutboxPublisher(producer, kafka.TopicDeadLetterQueue),
		producer: producer,
	}
}

// closeKafkaProducer закрывает producer, если он был создан.
func closeKafkaProducer(producer *kafka.Producer, logger *log.Entry) {
	if producer == nil {
		return
	}
	if err := producer.Close(); err != nil {
		logger.WithError(err).Warn("failed to close kafka producer")
	} else {
		logger.Info("kafka producer closed")
	}
}
