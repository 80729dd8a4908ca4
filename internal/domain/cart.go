package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// CartItem: снимок товара на момент добавления в корзину.
// Последующие правки товара на корзину не влияют.
type CartItem struct {
	ProductID string
	Name      string
	Price     decimal.Decimal
}

// Cart: корзина одной клиентской сессии. Повторное добавление товара
// создаёт отдельную строку, количества нет.
type Cart struct {
	SessionID string
	Items     []CartItem
	UpdatedAt time.Time
}

// Add добавляет снимок в конец корзины.
func (c *Cart) Add(item CartItem) {
	c.Items = append(c.Items, item)
}

// Clear очищает корзину.
func (c *Cart) Clear() {
	c.Items = nil
}

// Total: сумма цен позиций; для пустой корзины 0.
func (c Cart) Total() decimal.Decimal {
	total := decimal.Zero
	for _, item := range c.Items {
		total = total.Add(item.Price)
	}
	return total
}

// IsEmpty сообщает, пуста ли корзина.
func (c Cart) IsEmpty() bool {
	return len(c.Items) == 0
}

// OrderItems конвертирует позиции корзины в позиции заказа.
func (c Cart) OrderItems() []OrderItem {
	items := make([]OrderItem, 0, len(c.Items))
	for _, item := range c.Items {
		items = append(items, OrderItem{Name: item.Name, Price: item.Price})
	}
	return items
}

// Clone возвращает копию корзины, не разделяющую срез позиций.
func (c Cart) Clone() Cart {
	out := c
	if c.Items != nil {
		out.Items = append([]CartItem(nil), c.Items...)
	}
	return out
}
