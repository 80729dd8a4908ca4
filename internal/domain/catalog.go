package domain

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// DefaultCategoryName: категория, создаваемая при пустом каталоге.
const DefaultCategoryName = "Lanches"

// Category группирует товары в меню.
type Category struct {
	ID        string
	Name      string
	CreatedAt time.Time
}

// Product: позиция меню.
type Product struct {
	ID          string
	Name        string
	Description string
	Price       decimal.Decimal
	// ImageRef: имя файла изображения в медиахранилище; может быть пустым.
	ImageRef   string
	CategoryID string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// Validate проверяет инварианты товара и нормализует цену до двух знаков.
func (p *Product) Validate() error {
	p.Name = strings.TrimSpace(p.Name)
	if p.Name == "" {
		return ErrProductNameRequired
	}
	if p.Price.IsNegative() {
		return ErrProductPriceNegative
	}
	p.Price = p.Price.Round(2)
	return nil
}

// Snapshot фиксирует название и цену товара для корзины.
func (p Product) Snapshot() CartItem {
	return CartItem{ProductID: p.ID, Name: p.Name, Price: p.Price}
}

// MenuSection: категория с её товарами для публичного меню.
type MenuSection struct {
	Category Category
	Products []Product
}
