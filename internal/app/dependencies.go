package app

import (
	"context"
	"fmt"

	log "github.com/sirupsen/logrus"

	"github.com/vladislavdragonenkov/cardapio/internal/domain"
	healthcheck "github.com/vladislavdragonenkov/cardapio/internal/health"
	"github.com/vladislavdragonenkov/cardapio/internal/storage/memory"
	"github.com/vladislavdragonenkov/cardapio/internal/storage/postgres"
)

// runtimeDependencies: репозитории выбранного хранилища.
type runtimeDependencies struct {
	catalogRepo     domain.CatalogRepository
	orderRepo       domain.OrderRepository
	configRepo      domain.ConfigRepository
	cartRepo        domain.CartRepository
	outboxRepo      domain.OutboxRepository
	idempotencyRepo domain.IdempotencyRepository
	// storageChecker nil для memory: проверять нечего.
	storageChecker healthcheck.Checker
	closeFn        func() error
}

// initRuntimeDependencies открывает хранилище по cfg.StorageDriver.
// Корзины всегда живут в памяти процесса: это данные сессии, а не магазина.
func initRuntimeDependencies(ctx context.Context, cfg Config, logger *log.Entry) (*runtimeDependencies, error) {
	switch cfg.StorageDriver {
	case StorageDriverMemory, "":
		logger.Info("using in-memory storage")
		return &runtimeDependencies{
			catalogRepo:     memory.NewCatalogRepository(),
			orderRepo:       memory.NewOrderRepository(),
			configRepo:      memory.NewConfigRepository(),
			cartRepo:        memory.NewCartRepository(),
			outboxRepo:      memory.NewOutboxRepository(),
			idempotencyRepo: memory.NewIdempotencyRepository(),
		}, nil

	case StorageDriverPostgres:
		if cfg.PostgresDSN == "" {
			return nil, fmt.Errorf("postgres dsn is required for postgres storage driver")
		}
		store, err := postgres.Open(ctx, cfg.PostgresDSN)
		if err != nil {
			return nil, err
		}
		if cfg.PostgresAutoMigrate {
			if err := store.EnsureSchema(ctx); err != nil {
				_ = store.Close()
				return nil, fmt.Errorf("apply postgres migrations: %w", err)
			}
		}
		logger.Info("using postgres storage")
		return &runtimeDependencies{
			catalogRepo:     postgres.NewCatalogRepository(store),
			orderRepo:       postgres.NewOrderRepository(store),
			configRepo:      postgres.NewConfigRepository(store),
			cartRepo:        memory.NewCartRepository(),
			outboxRepo:      postgres.NewOutboxRepository(store),
			idempotencyRepo: postgres.NewIdempotencyRepository(store),
			storageChecker:  healthcheck.NewSimpleChecker("postgres", store.Ping),
			closeFn:         store.Close,
		}, nil

	default:
		return nil, fmt.Errorf("unsupported storage driver %q", cfg.StorageDriver)
	}
}

func (d *runtimeDependencies) close(logger *log.Entry) {
	if d == nil || d.closeFn == nil {
		return
	}
	if err := d.closeFn(); err != nil {
		logger.WithError(err).Warn("failed to close storage")
		return
	}
	logger.Info("storage closed")
}
