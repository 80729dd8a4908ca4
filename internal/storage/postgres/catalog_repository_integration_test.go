package postgres

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/vladislavdragonenkov/cardapio/internal/domain"
)

func TestCatalogRepository_PostgresCategoryRules(t *testing.T) {
	store := openPostgresStoreForIntegrationTest(t)
	repo := NewCatalogRepository(store)
	ctx := context.Background()
	now := time.Now().UTC()

	require.NoError(t, repo.CreateCategory(ctx, domain.Category{ID: "c1", Name: "Lanches", CreatedAt: now}))
	require.ErrorIs(t, repo.DeleteCategory(ctx, "c1"), domain.ErrInvalidCategoryOperation)

	require.NoError(t, repo.CreateCategory(ctx, domain.Category{ID: "c2", Name: "Bebidas", CreatedAt: now.Add(time.Second)}))
	require.NoError(t, repo.CreateProduct(ctx, domain.Product{
		ID: "p1", Name: "Suco", Price: decimal.RequireFromString("8.50"), CategoryID: "c2", CreatedAt: now, UpdatedAt: now,
	}))
	require.ErrorIs(t, repo.CreateProduct(ctx, domain.Product{ID: "p2", Name: "x", CategoryID: "nope", CreatedAt: now, UpdatedAt: now}), domain.ErrCategoryNotFound)

	require.ErrorIs(t, repo.DeleteCategory(ctx, "c2"), domain.ErrInvalidCategoryOperation, "category with products")
	require.ErrorIs(t, repo.DeleteCategory(ctx, "missing"), domain.ErrCategoryNotFound)
	require.NoError(t, repo.DeleteCategory(ctx, "c1"))

	categories, err := repo.ListCategories(ctx)
	require.NoError(t, err)
	require.Len(t, categories, 1)
	require.Equal(t, "c2", categories[0].ID)
}

func TestCatalogRepository_PostgresProductLifecycle(t *testing.T) {
	store := openPostgresStoreForIntegrationTest(t)
	repo := NewCatalogRepository(store)
	ctx := context.Background()
	now := time.Now().UTC()

	require.NoError(t, repo.CreateCategory(ctx, domain.Category{ID: "c1", Name: "Batatas", CreatedAt: now}))
	require.NoError(t, repo.CreateProduct(ctx, domain.Product{
		ID: "p1", Name: "Suco", Price: decimal.RequireFromString("8.50"), CategoryID: "c1", CreatedAt: now, UpdatedAt: now,
	}))

	p, err := repo.GetProduct(ctx, "p1")
	require.NoError(t, err)
	require.Equal(t, "8.50", p.Price.StringFixed(2))

	p.Price = decimal.RequireFromString("9.00")
	require.NoError(t, repo.UpdateProduct(ctx, p))
	products, err := repo.ListProducts(ctx, "c1")
	require.NoError(t, err)
	require.Len(t, products, 1)
	require.Equal(t, "9.00", products[0].Price.StringFixed(2))

	require.NoError(t, repo.DeleteProduct(ctx, "p1"))
	require.ErrorIs(t, repo.DeleteProduct(ctx, "p1"), domain.ErrProductNotFound)
	_, err = repo.GetProduct(ctx, "p1")
	require.ErrorIs(t, err, domain.ErrProductNotFound)
}

func TestCatalogRepository_PostgresConcurrentDeletesKeepOneCategory(t *testing.T) {
	store := openPostgresStoreForIntegrationTest(t)
	repo := NewCatalogRepository(store)
	ctx := context.Background()
	now := time.Now().UTC()

	const categories = 4
	for i := range categories {
		require.NoError(t, repo.CreateCategory(ctx, domain.Category{
			ID: fmt.Sprintf("c%d", i), Name: fmt.Sprintf("Categoria %d", i), CreatedAt: now.Add(time.Duration(i) * time.Second),
		}))
	}

	var (
		wg   sync.WaitGroup
		errs = make(chan error, categories)
	)
	for i := range categories {
		wg.Add(1)
		go func() {
			defer wg.Done()
			errs <- repo.DeleteCategory(ctx, fmt.Sprintf("c%d", i))
		}()
	}
	wg.Wait()
	close(errs)

	deleted, refused := 0, 0
	for err := range errs {
		switch {
		case err == nil:
			deleted++
		case errors.Is(err, domain.ErrInvalidCategoryOperation):
			refused++
		default:
			t.Fatalf("unexpected delete error: %v", err)
		}
	}
	require.Equal(t, categories-1, deleted)
	require.Equal(t, 1, refused)

	left, err := repo.ListCategories(ctx)
	require.NoError(t, err)
	require.Len(t, left, 1)
}
