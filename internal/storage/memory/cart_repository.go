package memory

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/vladislavdragonenkov/cardapio/internal/domain"
)

// cartRepositoryInMemory хранит корзины сессий. Корзины не переживают рестарт процесса.
type cartRepositoryInMemory struct {
	mu    sync.RWMutex
	carts map[string]domain.Cart
}

// NewCartRepository создаёт in-memory хранилище корзин.
func NewCartRepository() domain.CartRepository {
	return &cartRepositoryInMemory{carts: make(map[string]domain.Cart)}
}

func (r *cartRepositoryInMemory) Get(_ context.Context, sessionID string) (domain.Cart, error) {
	sessionID = strings.TrimSpace(sessionID)
	if sessionID == "" {
		return domain.Cart{}, domain.ErrSessionRequired
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	cart, ok := r.carts[sessionID]
	if !ok {
		return domain.Cart{SessionID: sessionID}, nil
	}
	return cart.Clone(), nil
}

func (r *cartRepositoryInMemory) Save(_ context.Context, cart domain.Cart) error {
	if strings.TrimSpace(cart.SessionID) == "" {
		return domain.ErrSessionRequired
	}
	if cart.UpdatedAt.IsZero() {
		cart.UpdatedAt = time.Now().UTC()
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.carts[cart.SessionID] = cart.Clone()
	return nil
}

func (r *cartRepositoryInMemory) Delete(_ context.Context, sessionID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.carts, sessionID)
	return nil
}

func (r *cartRepositoryInMemory) Take(_ context.Context, sessionID string) (domain.Cart, error) {
	sessionID = strings.TrimSpace(sessionID)
	if sessionID == "" {
		return domain.Cart{}, domain.ErrSessionRequired
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	cart, ok := r.carts[sessionID]
	if !ok {
		return domain.Cart{SessionID: sessionID}, nil
	}
	delete(r.carts, sessionID)
	return cart, nil
}

func (r *cartRepositoryInMemory) DeleteExpired(_ context.Context, before time.Time, limit int) (int, error) {
	if before.IsZero() {
		before = time.Now().UTC()
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	removed := 0
	for id, cart := range r.carts {
		if cart.UpdatedAt.After(before) {
			continue
		}
		delete(r.carts, id)
		removed++
		if limit > 0 && removed >= limit {
			break
		}
	}
	return removed, nil
}

var _ domain.CartRepository = (*cartRepositoryInMemory)(nil)
