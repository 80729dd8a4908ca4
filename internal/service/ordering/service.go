// Package ordering оформляет заказы из корзины сессии и ведёт их жизненный цикл
// pending → delivered / удаление.
package ordering

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"

	"github.com/vladislavdragonenkov/cardapio/internal/domain"
	"github.com/vladislavdragonenkov/cardapio/internal/metrics"
	"github.com/vladislavdragonenkov/cardapio/internal/service/outbox"
	"github.com/vladislavdragonenkov/cardapio/internal/whatsapp"
)

// SubmitRequest: данные формы оформления.
type SubmitRequest struct {
	SessionID     string
	CustomerName  string
	Address       string
	PaymentMethod string
	Note          string
}

// SubmitResult: оформленный заказ и ссылка для отправки продавцу.
// WhatsAppLink пустой, если номер магазина не настроен.
type SubmitResult struct {
	Order        domain.Order
	WhatsAppLink string
}

// Service реализует оформление и смену статусов заказов.
type Service struct {
	orders  domain.OrderRepository
	carts   domain.CartRepository
	config  domain.ConfigRepository
	events  *outbox.Emitter
	metrics *metrics.ShopMetrics
	logger  *log.Entry

	signature string
	now       func() time.Time
	newID     func() string
}

// Option настраивает Service.
type Option func(*Service)

// WithSignature задаёт подпись в конце сообщения для мессенджера.
func WithSignature(signature string) Option {
	return func(s *Service) {
		s.signature = signature
	}
}

// WithClock подменяет источник времени.
func WithClock(now func() time.Time) Option {
	return func(s *Service) {
		if now != nil {
			s.now = now
		}
	}
}

// NewService создаёт сервис заказов.
func NewService(
	orders domain.OrderRepository,
	carts domain.CartRepository,
	config domain.ConfigRepository,
	events *outbox.Emitter,
	m *metrics.ShopMetrics,
	logger *log.Entry,
	opts ...Option,
) *Service {
	if logger == nil {
		logger = log.WithField("component", "ordering-service")
	}
	s := &Service{
		orders:  orders,
		carts:   carts,
		config:  config,
		events:  events,
		metrics: m,
		logger:  logger,
		now:     func() time.Time { return time.Now().UTC() },
		newID:   func() string { return uuid.NewString() },
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Submit проверяет форму и корзину, забирает корзину и сохраняет заказ.
// Порядок проверок: обязательные поля, способ оплаты, пустая корзина,
// закрытый магазин. При ошибке ничего не сохраняется, а корзина остаётся у сессии.
func (s *Service) Submit(ctx context.Context, req SubmitRequest) (SubmitResult, error) {
	started := time.Now()

	name := strings.TrimSpace(req.CustomerName)
	address := strings.TrimSpace(req.Address)
	if name == "" || address == "" || strings.TrimSpace(req.PaymentMethod) == "" {
		return SubmitResult{}, s.reject(domain.ErrMissingFields)
	}
	method, err := domain.ParsePaymentMethod(req.PaymentMethod)
	if err != nil {
		return SubmitResult{}, s.reject(err)
	}

	// Get ради порядка ошибок: пустая корзина важнее закрытого магазина.
	peek, err := s.carts.Get(ctx, req.SessionID)
	if err != nil {
		return SubmitResult{}, err
	}
	if peek.IsEmpty() {
		return SubmitResult{}, s.reject(domain.ErrEmptyCart)
	}

	cfg, err := s.config.Get(ctx)
	if err != nil {
		return SubmitResult{}, err
	}
	if !cfg.Open {
		return SubmitResult{}, s.reject(domain.ErrStoreClosed)
	}

	// Take забирает корзину; параллельный Submit той же сессии получит пустую.
	cart, err := s.carts.Take(ctx, req.SessionID)
	if err != nil {
		return SubmitResult{}, err
	}
	if cart.IsEmpty() {
		return SubmitResult{}, s.reject(domain.ErrEmptyCart)
	}

	now := s.now()
	items := cart.OrderItems()
	order := domain.Order{
		ID:            s.newID(),
		CustomerName:  name,
		Address:       address,
		PaymentMethod: method,
		Note:          strings.TrimSpace(req.Note),
		Items:         items,
		ItemsText:     domain.FormatItemsText(items),
		Total:         domain.SumItems(items),
		Status:        domain.OrderStatusPending,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if err := s.orders.Create(ctx, order); err != nil {
		s.logger.WithError(err).Error("persist order failed")
		if restoreErr := s.carts.Save(ctx, cart); restoreErr != nil {
			s.logger.WithError(restoreErr).Warn("restore cart after failed submit")
		}
		return SubmitResult{}, err
	}

	logger := s.logger.WithFields(log.Fields{
		"order_id":       order.ID,
		"payment_method": string(order.PaymentMethod),
		"total":          order.Total.StringFixed(2),
		"items":          len(order.Items),
	})

	s.events.Emit(ctx, domain.AggregateOrder, order.ID, domain.EventOrderSubmitted, domain.NewOrderEventPayload(order, now))
	total, _ := order.Total.Float64()
	s.metrics.RecordOrderSubmitted(string(order.PaymentMethod), total, time.Since(started))
	logger.Info("order submitted")

	result := SubmitResult{Order: order}
	if cfg.ContactNumber != "" {
		link, err := whatsapp.OrderLink(cfg.ContactNumber, order, s.signature)
		if err != nil {
			logger.WithError(err).Warn("build whatsapp link failed")
		} else {
			result.WhatsAppLink = link
		}
	}
	return result, nil
}

// Get возвращает заказ.
func (s *Service) Get(ctx context.Context, id string) (domain.Order, error) {
	return s.orders.Get(ctx, id)
}

// List возвращает заказы по фильтру, новые первыми.
func (s *Service) List(ctx context.Context, filter domain.OrderFilter) ([]domain.Order, error) {
	return s.orders.List(ctx, filter)
}

// MarkDelivered переводит заказ в delivered. Повторный вызов возвращает заказ
// без изменений и не пишет событие.
func (s *Service) MarkDelivered(ctx context.Context, id string) (domain.Order, error) {
	current, err := s.orders.Get(ctx, id)
	if err != nil {
		return domain.Order{}, err
	}
	if current.Status == domain.OrderStatusDelivered {
		return current, nil
	}

	now := s.now()
	order, err := s.orders.MarkDelivered(ctx, id, now)
	if err != nil {
		return domain.Order{}, err
	}

	s.events.Emit(ctx, domain.AggregateOrder, order.ID, domain.EventOrderDelivered, domain.NewOrderEventPayload(order, now))
	s.metrics.RecordOrderDelivered()
	s.logger.WithField("order_id", order.ID).Info("order delivered")
	return order, nil
}

// Remove удаляет заказ в любом статусе.
func (s *Service) Remove(ctx context.Context, id string) error {
	if err := s.orders.Delete(ctx, id); err != nil {
		return err
	}

	now := s.now()
	s.events.Emit(ctx, domain.AggregateOrder, id, domain.EventOrderRemoved, domain.OrderEventPayload{OrderID: id, OccurredAt: now})
	s.metrics.RecordOrderRemoved()
	s.logger.WithField("order_id", id).Info("order removed")
	return nil
}

func (s *Service) reject(err error) error {
	s.metrics.RecordSubmitRejected(rejectReason(err))
	return err
}

func rejectReason(err error) string {
	switch {
	case errors.Is(err, domain.ErrMissingFields):
		return "missing_fields"
	case errors.Is(err, domain.ErrInvalidPaymentMethod):
		return "invalid_payment_method"
	case errors.Is(err, domain.ErrEmptyCart):
		return "empty_cart"
	case errors.Is(err, domain.ErrStoreClosed):
		return "store_closed"
	default:
		return "other"
	}
}
