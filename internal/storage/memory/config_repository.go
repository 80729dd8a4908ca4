package memory

import (
	"context"
	"sync"

	"github.com/vladislavdragonenkov/cardapio/internal/domain"
)

type configRepositoryInMemory struct {
	mu  sync.RWMutex
	cfg domain.StoreConfig
}

// NewConfigRepository создаёт хранилище настроек с DefaultStoreConfig.
func NewConfigRepository() domain.ConfigRepository {
	return &configRepositoryInMemory{cfg: domain.DefaultStoreConfig()}
}

func (r *configRepositoryInMemory) Get(_ context.Context) (domain.StoreConfig, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.cfg, nil
}

func (r *configRepositoryInMemory) Save(_ context.Context, cfg domain.StoreConfig) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.cfg = cfg
	return nil
}

func (r *configRepositoryInMemory) Patch(_ context.Context, patch domain.StoreConfigPatch) (domain.StoreConfig, domain.StoreConfig, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	before := r.cfg
	r.cfg = patch.Apply(before)
	return before, r.cfg, nil
}

var _ domain.ConfigRepository = (*configRepositoryInMemory)(nil)
