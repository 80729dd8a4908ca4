package domain

import "time"

// Типы событий, которые пишутся в outbox.
const (
	EventOrderSubmitted = "order.submitted"
	EventOrderDelivered = "order.delivered"
	EventOrderRemoved   = "order.removed"
	EventStoreOpened    = "store.opened"
	EventStoreClosed    = "store.closed"
)

// OrderEventPayload: полезная нагрузка событий заказа.
type OrderEventPayload struct {
	OrderID       string    `json:"order_id"`
	CustomerName  string    `json:"customer_name,omitempty"`
	PaymentMethod string    `json:"payment_method,omitempty"`
	Total         string    `json:"total,omitempty"`
	Items         []string  `json:"items,omitempty"`
	Status        string    `json:"status,omitempty"`
	OccurredAt    time.Time `json:"occurred_at"`
}

// NewOrderEventPayload собирает payload по заказу.
func NewOrderEventPayload(order Order, at time.Time) OrderEventPayload {
	return OrderEventPayload{
		OrderID:       order.ID,
		CustomerName:  order.CustomerName,
		PaymentMethod: string(order.PaymentMethod),
		Total:         order.Total.StringFixed(2),
		Items:         order.ItemNames(),
		Status:        string(order.Status),
		OccurredAt:    at,
	}
}

// StoreEventPayload: полезная нагрузка событий открытия/закрытия магазина.
type StoreEventPayload struct {
	Open       bool      `json:"open"`
	OccurredAt time.Time `json:"occurred_at"`
}
