package domain

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// OrderStatus описывает жизненный цикл заказа: pending → delivered.
type OrderStatus string

const (
	// OrderStatusPending: заказ принят и ждёт доставки.
	OrderStatusPending OrderStatus = "pending"
	// OrderStatusDelivered: заказ доставлен; переход необратим.
	OrderStatusDelivered OrderStatus = "delivered"
)

// Valid проверяет, что статус относится к поддерживаемым значениям.
func (s OrderStatus) Valid() bool {
	return s == OrderStatusPending || s == OrderStatusDelivered
}

// Label возвращает подпись статуса для клиента.
func (s OrderStatus) Label() string {
	switch s {
	case OrderStatusPending:
		return "Pendente"
	case OrderStatusDelivered:
		return "Entregue"
	default:
		return string(s)
	}
}

// ParseOrderStatus разбирает статус из строки; пустая строка не допускается.
func ParseOrderStatus(raw string) (OrderStatus, error) {
	s := OrderStatus(strings.ToLower(strings.TrimSpace(raw)))
	if !s.Valid() {
		return "", fmt.Errorf("unknown order status %q", raw)
	}
	return s, nil
}

// OrderItem: снимок позиции в момент оформления (название + цена).
type OrderItem struct {
	Name  string
	Price decimal.Decimal
}

// Order агрегирует оформленный заказ.
type Order struct {
	ID            string
	CustomerName  string
	Address       string
	PaymentMethod PaymentMethod
	Note          string
	Items         []OrderItem
	// ItemsText: строковое представление позиций, совместимое с прежним форматом хранения.
	ItemsText string
	Total     decimal.Decimal
	Status    OrderStatus
	CreatedAt time.Time
	UpdatedAt time.Time
}

// ItemNames возвращает названия позиций. Для заказов без структурированных позиций
// названия извлекаются из ItemsText.
func (o Order) ItemNames() []string {
	if len(o.Items) > 0 {
		names := make([]string, 0, len(o.Items))
		for _, item := range o.Items {
			names = append(names, item.Name)
		}
		return names
	}
	return ParseItemNames(o.ItemsText)
}

// SumItems складывает цены позиций.
func SumItems(items []OrderItem) decimal.Decimal {
	total := decimal.Zero
	for _, item := range items {
		total = total.Add(item.Price)
	}
	return total
}

// FormatPrice форматирует сумму как "R$ 36.00".
func FormatPrice(amount decimal.Decimal) string {
	return "R$ " + amount.StringFixed(2)
}

// FormatItemsText собирает строки вида "<name> (R$ <price>)" через перевод строки.
func FormatItemsText(items []OrderItem) string {
	var b strings.Builder
	for _, item := range items {
		b.WriteString(item.Name)
		b.WriteString(" (")
		b.WriteString(FormatPrice(item.Price))
		b.WriteString(")\n")
	}
	return b.String()
}

// ParseItemNames извлекает названия товаров из ItemsText: текст до первой "(" в каждой строке.
func ParseItemNames(text string) []string {
	var names []string
	for _, line := range strings.Split(text, "\n") {
		name, _, _ := strings.Cut(line, "(")
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		names = append(names, name)
	}
	return names
}

// OrderFilter ограничивает выборку заказов. Нулевые поля не фильтруют.
type OrderFilter struct {
	// Since: вернуть только заказы, созданные строго позже.
	Since  time.Time
	From   time.Time
	To     time.Time
	Status OrderStatus
	Limit  int
}

// Match проверяет заказ на соответствие фильтру. Интервал полуоткрытый: [From, To).
func (f OrderFilter) Match(o Order) bool {
	if !f.Since.IsZero() && !o.CreatedAt.After(f.Since) {
		return false
	}
	if !f.From.IsZero() && o.CreatedAt.Before(f.From) {
		return false
	}
	if !f.To.IsZero() && !o.CreatedAt.Before(f.To) {
		return false
	}
	if f.Status != "" && o.Status != f.Status {
		return false
	}
	return true
}
