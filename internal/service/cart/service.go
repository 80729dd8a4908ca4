// Package cart управляет корзинами клиентских сессий.
package cart

import (
	"context"
	"strings"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/vladislavdragonenkov/cardapio/internal/domain"
	"github.com/vladislavdragonenkov/cardapio/internal/metrics"
)

// ProductSource отдаёт текущую версию товара для снимка.
type ProductSource interface {
	GetProduct(ctx context.Context, id string) (domain.Product, error)
}

// Service добавляет снимки товаров в корзину сессии.
type Service struct {
	carts    domain.CartRepository
	products ProductSource
	metrics  *metrics.ShopMetrics
	logger   *log.Entry
	now      func() time.Time
}

// NewService создаёт сервис корзин.
func NewService(carts domain.CartRepository, products ProductSource, m *metrics.ShopMetrics, logger *log.Entry) *Service {
	if logger == nil {
		logger = log.WithField("component", "cart-service")
	}
	return &Service{
		carts:    carts,
		products: products,
		metrics:  m,
		logger:   logger,
		now:      func() time.Time { return time.Now().UTC() },
	}
}

// Get возвращает корзину сессии.
func (s *Service) Get(ctx context.Context, sessionID string) (domain.Cart, error) {
	sessionID = strings.TrimSpace(sessionID)
	if sessionID == "" {
		return domain.Cart{}, domain.ErrSessionRequired
	}
	return s.carts.Get(ctx, sessionID)
}

// AddProduct добавляет в корзину снимок товара productID. Повторное добавление
// даёт отдельную строку.
func (s *Service) AddProduct(ctx context.Context, sessionID, productID string) (domain.Cart, error) {
	cart, err := s.Get(ctx, sessionID)
	if err != nil {
		return domain.Cart{}, err
	}

	product, err := s.products.GetProduct(ctx, strings.TrimSpace(productID))
	if err != nil {
		return domain.Cart{}, err
	}

	cart.Add(product.Snapshot())
	cart.UpdatedAt = s.now()
	if err := s.carts.Save(ctx, cart); err != nil {
		return domain.Cart{}, err
	}

	s.metrics.RecordCartItemAdded()
	s.logger.WithFields(log.Fields{
		"session_id": cart.SessionID,
		"product_id": product.ID,
		"items":      len(cart.Items),
	}).Debug("product added to cart")
	return cart, nil
}

// Clear очищает корзину сессии.
func (s *Service) Clear(ctx context.Context, sessionID string) error {
	sessionID = strings.TrimSpace(sessionID)
	if sessionID == "" {
		return domain.ErrSessionRequired
	}
	return s.carts.Delete(ctx, sessionID)
}
