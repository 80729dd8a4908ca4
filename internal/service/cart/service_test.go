package cart

import (
	"context"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vladislavdragonenkov/cardapio/internal/domain"
	"github.com/vladislavdragonenkov/cardapio/internal/metrics"
	"github.com/vladislavdragonenkov/cardapio/internal/storage/memory"
)

func setup(t *testing.T) (*Service, domain.CatalogRepository) {
	t.Helper()

	ctx := context.Background()
	catalog := memory.NewCatalogRepository()
	require.NoError(t, catalog.CreateCategory(ctx, domain.Category{ID: "cat", Name: "Lanches"}))
	require.NoError(t, catalog.CreateProduct(ctx, domain.Product{ID: "p1", Name: "Bacon com milho", Price: decimal.RequireFromString("37.00"), CategoryID: "cat"}))
	require.NoError(t, catalog.CreateProduct(ctx, domain.Product{ID: "p2", Name: "Bacon e cheddar", Price: decimal.RequireFromString("45.00"), CategoryID: "cat"}))

	svc := NewService(memory.NewCartRepository(), catalog, metrics.NewShopMetricsWith(prometheus.NewRegistry()), nil)
	return svc, catalog
}

func TestAddProduct_SnapshotSurvivesPriceEdit(t *testing.T) {
	ctx := context.Background()
	svc, catalog := setup(t)

	_, err := svc.AddProduct(ctx, "s1", "p1")
	require.NoError(t, err)

	edited, err := catalog.GetProduct(ctx, "p1")
	require.NoError(t, err)
	edited.Price = decimal.RequireFromString("50.00")
	require.NoError(t, catalog.UpdateProduct(ctx, edited))

	cart, err := svc.Get(ctx, "s1")
	require.NoError(t, err)
	require.Len(t, cart.Items, 1)
	assert.Equal(t, "37.00", cart.Total().StringFixed(2))
}

func TestAddProduct_RepeatedAddsStaySeparate(t *testing.T) {
	ctx := context.Background()
	svc, _ := setup(t)

	for _, id := range []string{"p1", "p1", "p2"} {
		_, err := svc.AddProduct(ctx, "s1", id)
		require.NoError(t, err)
	}

	cart, err := svc.Get(ctx, "s1")
	require.NoError(t, err)
	require.Len(t, cart.Items, 3)
	assert.Equal(t, "119.00", cart.Total().StringFixed(2))
	assert.False(t, cart.UpdatedAt.IsZero())
}

func TestAddProduct_Errors(t *testing.T) {
	ctx := context.Background()
	svc, _ := setup(t)

	_, err := svc.AddProduct(ctx, "s1", "missing")
	assert.ErrorIs(t, err, domain.ErrProductNotFound)

	_, err = svc.AddProduct(ctx, " ", "p1")
	assert.ErrorIs(t, err, domain.ErrSessionRequired)

	cart, err := svc.Get(ctx, "s1")
	require.NoError(t, err)
	assert.True(t, cart.IsEmpty())
}

func TestClear(t *testing.T) {
	ctx := context.Background()
	svc, _ := setup(t)

	_, err := svc.AddProduct(ctx, "s1", "p1")
	require.NoError(t, err)
	_, err = svc.AddProduct(ctx, "s2", "p2")
	require.NoError(t, err)

	require.NoError(t, svc.Clear(ctx, "s1"))

	cleared, err := svc.Get(ctx, "s1")
	require.NoError(t, err)
	assert.True(t, cleared.IsEmpty())
	assert.True(t, cleared.Total().IsZero())

	other, err := svc.Get(ctx, "s2")
	require.NoError(t, err)
	assert.Len(t, other.Items, 1)

	assert.ErrorIs(t, svc.Clear(ctx, ""), domain.ErrSessionRequired)
}
