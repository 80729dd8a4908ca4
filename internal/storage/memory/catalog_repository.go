package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/vladislavdragonenkov/cardapio/internal/domain"
)

// catalogRepositoryInMemory хранит категории и товары в памяти процесса.
type catalogRepositoryInMemory struct {
	mu         sync.RWMutex
	categories map[string]domain.Category
	products   map[string]domain.Product
	// order фиксирует порядок вставки: время создания может совпадать.
	order map[string]int
	seq   int
}

// NewCatalogRepository создаёт in-memory реализацию CatalogRepository.
func NewCatalogRepository() domain.CatalogRepository {
	return &catalogRepositoryInMemory{
		categories: make(map[string]domain.Category),
		products:   make(map[string]domain.Product),
		order:      make(map[string]int),
	}
}

func (r *catalogRepositoryInMemory) CreateCategory(_ context.Context, category domain.Category) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.seq++
	r.order[category.ID] = r.seq
	r.categories[category.ID] = category
	return nil
}

func (r *catalogRepositoryInMemory) ListCategories(_ context.Context) ([]domain.Category, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]domain.Category, 0, len(r.categories))
	for _, c := range r.categories {
		result = append(result, c)
	}
	sort.Slice(result, func(i, j int) bool {
		return r.order[result[i].ID] < r.order[result[j].ID]
	})
	return result, nil
}

// DeleteCategory отказывает для последней категории и для категории, на которую ссылаются товары.
func (r *catalogRepositoryInMemory) DeleteCategory(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.categories[id]; !ok {
		return domain.ErrCategoryNotFound
	}
	if len(r.categories) <= 1 {
		return domain.ErrInvalidCategoryOperation
	}
	for _, p := range r.products {
		if p.CategoryID == id {
			return domain.ErrInvalidCategoryOperation
		}
	}
	delete(r.categories, id)
	delete(r.order, id)
	return nil
}

func (r *catalogRepositoryInMemory) CreateProduct(_ context.Context, product domain.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.categories[product.CategoryID]; !ok {
		return domain.ErrCategoryNotFound
	}
	r.seq++
	r.order[product.ID] = r.seq
	r.products[product.ID] = product
	return nil
}

func (r *catalogRepositoryInMemory) UpdateProduct(_ context.Context, product domain.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.products[product.ID]; !ok {
		return domain.ErrProductNotFound
	}
	if _, ok := r.categories[product.CategoryID]; !ok {
		return domain.ErrCategoryNotFound
	}
	r.products[product.ID] = product
	return nil
}

func (r *catalogRepositoryInMemory) GetProduct(_ context.Context, id string) (domain.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	p, ok := r.products[id]
	if !ok {
		return domain.Product{}, domain.ErrProductNotFound
	}
	return p, nil
}

func (r *catalogRepositoryInMemory) ListProducts(_ context.Context, categoryID string) ([]domain.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]domain.Product, 0, len(r.products))
	for _, p := range r.products {
		if categoryID != "" && p.CategoryID != categoryID {
			continue
		}
		result = append(result, p)
	}
	sort.Slice(result, func(i, j int) bool {
		return r.order[result[i].ID] < r.order[result[j].ID]
	})
	return result, nil
}

func (r *catalogRepositoryInMemory) DeleteProduct(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.products[id]; !ok {
		return domain.ErrProductNotFound
	}
	delete(r.products, id)
	delete(r.order, id)
	return nil
}

var _ domain.CatalogRepository = (*catalogRepositoryInMemory)(nil)
