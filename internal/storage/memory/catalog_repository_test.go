package memory_test

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/vladislavdragonenkov/cardapio/internal/domain"
	"github.com/vladislavdragonenkov/cardapio/internal/storage/memory"
)

func TestCatalogRepository_CategoryRules(t *testing.T) {
	ctx := context.Background()
	repo := memory.NewCatalogRepository()

	if err := repo.CreateCategory(ctx, domain.Category{ID: "c1", Name: "Lanches"}); err != nil {
		t.Fatalf("create category failed: %v", err)
	}
	if err := repo.DeleteCategory(ctx, "c1"); !errors.Is(err, domain.ErrInvalidCategoryOperation) {
		t.Fatalf("expected last category deletion to fail, got %v", err)
	}

	if err := repo.CreateCategory(ctx, domain.Category{ID: "c2", Name: "Bebidas"}); err != nil {
		t.Fatalf("create category failed: %v", err)
	}
	if err := repo.CreateProduct(ctx, domain.Product{ID: "p1", Name: "Suco", CategoryID: "c2"}); err != nil {
		t.Fatalf("create product failed: %v", err)
	}
	if err := repo.DeleteCategory(ctx, "c2"); !errors.Is(err, domain.ErrInvalidCategoryOperation) {
		t.Fatalf("expected referenced category deletion to fail, got %v", err)
	}
	if err := repo.DeleteCategory(ctx, "c1"); err != nil {
		t.Fatalf("delete category failed: %v", err)
	}
	if err := repo.DeleteCategory(ctx, "missing"); !errors.Is(err, domain.ErrCategoryNotFound) {
		t.Fatalf("expected ErrCategoryNotFound, got %v", err)
	}

	categories, err := repo.ListCategories(ctx)
	if err != nil {
		t.Fatalf("list categories failed: %v", err)
	}
	if len(categories) != 1 || categories[0].ID != "c2" {
		t.Fatalf("unexpected categories: %+v", categories)
	}
}

func TestCatalogRepository_Products(t *testing.T) {
	ctx := context.Background()
	repo := memory.NewCatalogRepository()
	_ = repo.CreateCategory(ctx, domain.Category{ID: "c1", Name: "Lanches"})
	_ = repo.CreateCategory(ctx, domain.Category{ID: "c2", Name: "Bebidas"})

	if err := repo.CreateProduct(ctx, domain.Product{ID: "p0", CategoryID: "nope"}); !errors.Is(err, domain.ErrCategoryNotFound) {
		t.Fatalf("expected ErrCategoryNotFound, got %v", err)
	}

	for _, p := range []domain.Product{
		{ID: "p2", Name: "B", CategoryID: "c1", Price: decimal.NewFromInt(2)},
		{ID: "p1", Name: "A", CategoryID: "c1", Price: decimal.NewFromInt(1)},
		{ID: "p3", Name: "C", CategoryID: "c2", Price: decimal.NewFromInt(3)},
	} {
		if err := repo.CreateProduct(ctx, p); err != nil {
			t.Fatalf("create product failed: %v", err)
		}
	}

	inC1, err := repo.ListProducts(ctx, "c1")
	if err != nil {
		t.Fatalf("list products failed: %v", err)
	}
	if len(inC1) != 2 || inC1[0].ID != "p2" || inC1[1].ID != "p1" {
		t.Fatalf("expected insertion order, got %+v", inC1)
	}

	all, _ := repo.ListProducts(ctx, "")
	if len(all) != 3 {
		t.Fatalf("expected 3 products, got %d", len(all))
	}

	updated := inC1[0]
	updated.Price = decimal.RequireFromString("9.90")
	if err := repo.UpdateProduct(ctx, updated); err != nil {
		t.Fatalf("update failed: %v", err)
	}
	got, err := repo.GetProduct(ctx, "p2")
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if got.Price.StringFixed(2) != "9.90" {
		t.Fatalf("expected updated price, got %s", got.Price)
	}

	if err := repo.UpdateProduct(ctx, domain.Product{ID: "missing", CategoryID: "c1"}); !errors.Is(err, domain.ErrProductNotFound) {
		t.Fatalf("expected ErrProductNotFound, got %v", err)
	}
	if err := repo.DeleteProduct(ctx, "p2"); err != nil {
		t.Fatalf("delete failed: %v", err)
	}
	if _, err := repo.GetProduct(ctx, "p2"); !domain.IsNotFound(err) {
		t.Fatalf("expected not found after delete, got %v", err)
	}
}
