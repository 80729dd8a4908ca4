package kafka

import "github.com/vladislavdragonenkov/cardapio/internal/domain"

// Topics для Kafka
const (
	TopicOrderEvents     = "cardapio.order.events"
	TopicStoreEvents     = "cardapio.store.events"
	TopicDeadLetterQueue = "cardapio.dlq" // Dead Letter Queue для failed messages
)

// TopicFor возвращает topic по типу агрегата; неизвестные агрегаты идут в fallback.
func TopicFor(aggregateType, fallback string) string {
	switch aggregateType {
	case domain.AggregateOrder:
		return TopicOrderEvents
	case domain.AggregateStore:
		return TopicStoreEvents
	default:
		if fallback == "" {
			return TopicOrderEvents
		}
		return fallback
	}
}
