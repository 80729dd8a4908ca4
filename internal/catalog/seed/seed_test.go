package seed

import (
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vladislavdragonenkov/cardapio/internal/domain"
)

func TestDefaultMenu(t *testing.T) {
	menu, err := Default()
	require.NoError(t, err)
	require.Len(t, menu.Categories, 1)
	assert.Equal(t, domain.DefaultCategoryName, menu.Categories[0].Name)

	products := menu.Categories[0].Products
	require.Len(t, products, 4)
	assert.Equal(t, "Bacon com brócolis", products[0].Name)

	first, err := products[0].Domain("cat-1")
	require.NoError(t, err)
	assert.Equal(t, "36.00", first.Price.StringFixed(2))
	assert.Equal(t, "brocolis.jpg", first.ImageRef)
	assert.Equal(t, "cat-1", first.CategoryID)
}

func TestLoadFromFile(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "/etc/menu.yaml", []byte(`
categories:
  - name: Bebidas
    products:
      - name: Suco
        price: "8.5"
`), 0o644))

	menu, err := Load(fs, "/etc/menu.yaml")
	require.NoError(t, err)
	require.Len(t, menu.Categories, 1)
	assert.Equal(t, "Bebidas", menu.Categories[0].Name)

	product, err := menu.Categories[0].Products[0].Domain("")
	require.NoError(t, err)
	assert.Equal(t, "8.50", product.Price.StringFixed(2))

	_, err = Load(fs, "/missing.yaml")
	require.Error(t, err)

	fallback, err := Load(fs, "  ")
	require.NoError(t, err)
	assert.Len(t, fallback.Categories[0].Products, 4)
}

func TestParseRejectsInvalidMenu(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{name: "no categories", data: `categories: []`},
		{name: "blank category", data: "categories:\n  - name: \" \"\n"},
		{name: "negative price", data: "categories:\n  - name: A\n    products:\n      - name: X\n        price: \"-1\"\n"},
		{name: "bad price", data: "categories:\n  - name: A\n    products:\n      - name: X\n        price: abc\n"},
		{name: "broken yaml", data: "categories: [\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.data))
			assert.Error(t, err)
		})
	}
}
