// Package seed описывает стартовое меню, которым заполняется пустой каталог.
package seed

import (
	_ "embed"
	"errors"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/spf13/afero"
	"gopkg.in/yaml.v3"

	"github.com/vladislavdragonenkov/cardapio/internal/domain"
)

//go:embed menu.yaml
var defaultMenu []byte

// Menu: содержимое файла меню.
type Menu struct {
	Categories []Category `yaml:"categories"`
}

// Category: категория с товарами.
type Category struct {
	Name     string    `yaml:"name"`
	Products []Product `yaml:"products"`
}

// Product: позиция стартового меню. Цена хранится строкой, чтобы не терять точность.
type Product struct {
	Name        string `yaml:"name"`
	Description string `yaml:"description"`
	Price       string `yaml:"price"`
	Image       string `yaml:"image"`
}

// Default возвращает встроенное меню.
func Default() (Menu, error) {
	return Parse(defaultMenu)
}

// Load читает меню из path в fs. Пустой path означает встроенное меню.
func Load(fs afero.Fs, path string) (Menu, error) {
	path = strings.TrimSpace(path)
	if path == "" {
		return Default()
	}
	data, err := afero.ReadFile(fs, path)
	if err != nil {
		return Menu{}, fmt.Errorf("read menu file %s: %w", path, err)
	}
	return Parse(data)
}

// Parse разбирает YAML и проверяет каждую позицию.
func Parse(data []byte) (Menu, error) {
	var menu Menu
	if err := yaml.Unmarshal(data, &menu); err != nil {
		return Menu{}, fmt.Errorf("parse menu: %w", err)
	}
	if len(menu.Categories) == 0 {
		return Menu{}, errors.New("menu has no categories")
	}
	for _, category := range menu.Categories {
		if strings.TrimSpace(category.Name) == "" {
			return Menu{}, domain.ErrCategoryNameRequired
		}
		for _, product := range category.Products {
			if _, err := product.Domain(""); err != nil {
				return Menu{}, fmt.Errorf("menu product %q: %w", product.Name, err)
			}
		}
	}
	return menu, nil
}

// Domain конвертирует позицию в domain.Product для категории categoryID.
func (p Product) Domain(categoryID string) (domain.Product, error) {
	price, err := decimal.NewFromString(strings.TrimSpace(p.Price))
	if err != nil {
		return domain.Product{}, fmt.Errorf("invalid price %q: %w", p.Price, err)
	}
	product := domain.Product{
		Name:        p.Name,
		Description: strings.TrimSpace(p.Description),
		Price:       price,
		ImageRef:    strings.TrimSpace(p.Image),
		CategoryID:  categoryID,
	}
	if err := product.Validate(); err != nil {
		return domain.Product{}, err
	}
	return product, nil
}
