// Package storeconfig управляет единственной записью настроек магазина.
package storeconfig

import (
	"context"
	"strings"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/vladislavdragonenkov/cardapio/internal/domain"
	"github.com/vladislavdragonenkov/cardapio/internal/metrics"
	"github.com/vladislavdragonenkov/cardapio/internal/service/outbox"
)

// Service читает и перезаписывает StoreConfig. Значения не кэшируются:
// каждое чтение идёт в репозиторий.
type Service struct {
	repo    domain.ConfigRepository
	events  *outbox.Emitter
	metrics *metrics.ShopMetrics
	logger  *log.Entry
	now     func() time.Time
}

// NewService создаёт сервис настроек.
func NewService(repo domain.ConfigRepository, events *outbox.Emitter, m *metrics.ShopMetrics, logger *log.Entry) *Service {
	if logger == nil {
		logger = log.WithField("component", "store-config")
	}
	return &Service{
		repo:    repo,
		events:  events,
		metrics: m,
		logger:  logger,
		now:     func() time.Time { return time.Now().UTC() },
	}
}

// Get возвращает текущие настройки.
func (s *Service) Get(ctx context.Context) (domain.StoreConfig, error) {
	return s.repo.Get(ctx)
}

// IsOpen сообщает, принимает ли магазин заказы.
func (s *Service) IsOpen(ctx context.Context) (bool, error) {
	cfg, err := s.repo.Get(ctx)
	if err != nil {
		return false, err
	}
	s.metrics.SetStoreOpen(cfg.Open)
	return cfg.Open, nil
}

// Open открывает магазин.
func (s *Service) Open(ctx context.Context) (domain.StoreConfig, error) {
	return s.setOpen(ctx, true)
}

// Close закрывает магазин: оформление заказов и публичное меню недоступны.
func (s *Service) Close(ctx context.Context) (domain.StoreConfig, error) {
	return s.setOpen(ctx, false)
}

// SetOpen выставляет флаг открытия.
func (s *Service) SetOpen(ctx context.Context, open bool) (domain.StoreConfig, error) {
	return s.setOpen(ctx, open)
}

func (s *Service) setOpen(ctx context.Context, open bool) (domain.StoreConfig, error) {
	before, cfg, err := s.patch(ctx, domain.StoreConfigPatch{Open: &open})
	if err != nil {
		return domain.StoreConfig{}, err
	}

	s.metrics.SetStoreOpen(open)
	if before.Open != open {
		eventType := domain.EventStoreClosed
		if open {
			eventType = domain.EventStoreOpened
		}
		s.events.Emit(ctx, domain.AggregateStore, "store", eventType, domain.StoreEventPayload{Open: open, OccurredAt: cfg.UpdatedAt})
		s.logger.WithField("open", open).Info("store state changed")
	}
	return cfg, nil
}

// SetContact сохраняет номер для связи, оставляя только цифры.
func (s *Service) SetContact(ctx context.Context, raw string) (domain.StoreConfig, error) {
	contact, err := domain.NormalizeContact(raw)
	if err != nil {
		return domain.StoreConfig{}, err
	}
	_, cfg, err := s.patch(ctx, domain.StoreConfigPatch{ContactNumber: &contact})
	return cfg, err
}

// SetTheme сохраняет тему оформления: light или dark.
func (s *Service) SetTheme(ctx context.Context, raw string) (domain.StoreConfig, error) {
	theme, err := domain.ParseTheme(raw)
	if err != nil {
		return domain.StoreConfig{}, err
	}
	_, cfg, err := s.patch(ctx, domain.StoreConfigPatch{Theme: &theme})
	return cfg, err
}

// SetLogo сохраняет ссылку на логотип; пустая строка убирает логотип.
func (s *Service) SetLogo(ctx context.Context, ref string) (domain.StoreConfig, error) {
	ref = strings.TrimSpace(ref)
	_, cfg, err := s.patch(ctx, domain.StoreConfigPatch{LogoRef: &ref})
	return cfg, err
}

// patch меняет только переданные поля: параллельные изменения разных
// настроек, в том числе из разных экземпляров, не теряются.
func (s *Service) patch(ctx context.Context, p domain.StoreConfigPatch) (domain.StoreConfig, domain.StoreConfig, error) {
	p.UpdatedAt = s.now()
	before, after, err := s.repo.Patch(ctx, p)
	if err != nil {
		return domain.StoreConfig{}, domain.StoreConfig{}, err
	}
	return before, after, nil
}
