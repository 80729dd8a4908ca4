package app

import (
	"context"
	"fmt"
	"net/http"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/afero"
	"golang.org/x/time/rate"

	"github.com/vladislavdragonenkov/cardapio/internal/auth"
	"github.com/vladislavdragonenkov/cardapio/internal/catalog/seed"
	healthcheck "github.com/vladislavdragonenkov/cardapio/internal/health"
	"github.com/vladislavdragonenkov/cardapio/internal/httpapi"
	"github.com/vladislavdragonenkov/cardapio/internal/media"
	"github.com/vladislavdragonenkov/cardapio/internal/metrics"
	"github.com/vladislavdragonenkov/cardapio/internal/receipt"
	"github.com/vladislavdragonenkov/cardapio/internal/service/cart"
	"github.com/vladislavdragonenkov/cardapio/internal/service/catalog"
	"github.com/vladislavdragonenkov/cardapio/internal/service/cleanup"
	grpcsvc "github.com/vladislavdragonenkov/cardapio/internal/service/grpc"
	"github.com/vladislavdragonenkov/cardapio/internal/service/idempotency"
	"github.com/vladislavdragonenkov/cardapio/internal/service/ordering"
	"github.com/vladislavdragonenkov/cardapio/internal/service/outbox"
	"github.com/vladislavdragonenkov/cardapio/internal/service/reporting"
	"github.com/vladislavdragonenkov/cardapio/internal/service/storeconfig"
	"github.com/vladislavdragonenkov/cardapio/internal/version"
)

// components: собранные сервисы и транспорты приложения.
type components struct {
	api     http.Handler
	admin   *grpcsvc.AdminService
	gate    *auth.Gate
	health  *healthcheck.Handler
	cleanup []*cleanup.Worker
}

// buildComponents собирает сервисы поверх репозиториев и засевает пустой каталог.
func buildComponents(ctx context.Context, cfg Config, deps *runtimeDependencies, fs afero.Fs, logger *log.Entry) (*components, error) {
	loc, err := cfg.Location()
	if err != nil {
		logger.WithError(err).Warn("unknown timezone, reports use UTC")
	}

	gate, err := newGate(cfg)
	if err != nil {
		return nil, err
	}

	shopMetrics := metrics.NewShopMetrics()
	events := outbox.NewEmitter(deps.outboxRepo, shopMetrics, logger.WithField("layer", "outbox"))

	catalogSvc := catalog.NewService(deps.catalogRepo, logger.WithField("layer", "catalog"))
	menu, err := seed.Load(fs, cfg.MenuFile)
	if err != nil {
		return nil, fmt.Errorf("load seed menu: %w", err)
	}
	if _, err := catalogSvc.EnsureSeed(ctx, menu); err != nil {
		return nil, fmt.Errorf("seed catalog: %w", err)
	}

	storeSvc := storeconfig.NewService(deps.configRepo, events, shopMetrics, logger.WithField("layer", "store"))
	if _, err := storeSvc.IsOpen(ctx); err != nil {
		return nil, fmt.Errorf("read store config: %w", err)
	}

	orderSvc := ordering.NewService(deps.orderRepo, deps.cartRepo, deps.configRepo, events, shopMetrics,
		logger.WithField("layer", "ordering"), ordering.WithSignature(cfg.Signature))
	reportSvc := reporting.NewService(deps.orderRepo, loc)

	mediaStore, err := media.NewStore(fs, cfg.MediaDir)
	if err != nil {
		return nil, err
	}

	var limiter *rate.Limiter
	if cfg.SubmitRatePerSecond > 0 {
		burst := cfg.SubmitBurst
		if burst <= 0 {
			burst = 1
		}
		limiter = rate.NewLimiter(rate.Limit(cfg.SubmitRatePerSecond), burst)
	}

	api := httpapi.NewServer(httpapi.Deps{
		Catalog:         catalogSvc,
		Carts:           cart.NewService(deps.cartRepo, catalogSvc, shopMetrics, logger.WithField("layer", "cart")),
		Orders:          orderSvc,
		Store:           storeSvc,
		Reports:         reportSvc,
		Gate:            gate,
		Media:           mediaStore,
		Idempotency:     idempotency.NewGuard(deps.idempotencyRepo, cfg.IdempotencyTTL, logger.WithField("layer", "idempotency")),
		SubmitLimiter:   limiter,
		Receipt:         receipt.Options{StoreName: cfg.StoreName, Location: loc},
		RefreshInterval: cfg.AdminRefreshInterval,
		SessionTTL:      cfg.CartTTL,
		SecureCookie:    cfg.SecureCookie,
		Logger:          logger.WithField("layer", "http"),
	})

	health := healthcheck.NewHandler(version.GetVersion())
	if deps.storageChecker != nil {
		health.RegisterChecker("storage", deps.storageChecker)
	}
	health.RegisterChecker("outbox", healthcheck.NewOutboxChecker(deps.outboxRepo, cfg.OutboxMaxPending, 0))

	cleanupLogger := logger.WithField("layer", "cleanup")
	return &components{
		api:    api.Routes(),
		admin:  grpcsvc.NewAdminService(orderSvc, storeSvc, reportSvc, logger.WithField("layer", "grpc")),
		gate:   gate,
		health: health,
		cleanup: []*cleanup.Worker{
			cleanup.NewWorker("carts", deps.cartRepo,
				cleanup.WithLogger(cleanupLogger),
				cleanup.WithInterval(cfg.CleanupInterval),
				cleanup.WithBatchSize(cfg.CleanupBatchSize),
				cleanup.WithMaxAge(cfg.CartTTL),
			),
			cleanup.NewWorker("idempotency", deps.idempotencyRepo,
				cleanup.WithLogger(cleanupLogger),
				cleanup.WithInterval(cfg.CleanupInterval),
				cleanup.WithBatchSize(cfg.CleanupBatchSize),
			),
		},
	}, nil
}

func newGate(cfg Config) (*auth.Gate, error) {
	creds, err := auth.NewCredentials(cfg.AdminUsername, cfg.AdminPassword, cfg.AdminPasswordHash)
	if err != nil {
		return nil, fmt.Errorf("admin credentials: %w", err)
	}
	tokens, err := auth.NewTokenManager(cfg.JWTSecret, cfg.JWTTTL)
	if err != nil {
		return nil, fmt.Errorf("admin tokens: %w", err)
	}
	return auth.NewGate(creds, tokens, cfg.RequireAdminLogin), nil
}
