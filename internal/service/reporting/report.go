// Package reporting строит read-only проекции по заказам: продажи по дням,
// популярные товары и выручку по способам оплаты.
package reporting

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/vladislavdragonenkov/cardapio/internal/domain"
)

// DateLayout: формат календарной даты в фильтрах и отчётах.
const DateLayout = "2006-01-02"

// DateRange: включительный диапазон календарных дат. Нулевая граница не ограничивает.
type DateRange struct {
	From time.Time
	To   time.Time
}

// ParseDateRange разбирает границы формата 2006-01-02 в зоне loc. Пустая строка, без границы.
func ParseDateRange(from, to string, loc *time.Location) (DateRange, error) {
	if loc == nil {
		loc = time.UTC
	}
	var r DateRange
	var err error
	if from = strings.TrimSpace(from); from != "" {
		if r.From, err = time.ParseInLocation(DateLayout, from, loc); err != nil {
			return DateRange{}, fmt.Errorf("invalid from date %q: %w", from, err)
		}
	}
	if to = strings.TrimSpace(to); to != "" {
		if r.To, err = time.ParseInLocation(DateLayout, to, loc); err != nil {
			return DateRange{}, fmt.Errorf("invalid to date %q: %w", to, err)
		}
	}
	return r, nil
}

// Filter переводит диапазон дат в полуоткрытый интервал [From, To+1d) по времени создания.
func (r DateRange) Filter(loc *time.Location) domain.OrderFilter {
	if loc == nil {
		loc = time.UTC
	}
	var f domain.OrderFilter
	if !r.From.IsZero() {
		f.From = startOfDay(r.From, loc)
	}
	if !r.To.IsZero() {
		f.To = startOfDay(r.To, loc).AddDate(0, 0, 1)
	}
	return f
}

// DaySales: сумма заказов за календарный день.
type DaySales struct {
	Date  string
	Total decimal.Decimal
}

// ProductCount: сколько раз товар встречался в заказах.
type ProductCount struct {
	Name  string
	Count int
}

// PaymentRevenue: выручка по способу оплаты.
type PaymentRevenue struct {
	Method domain.PaymentMethod
	Total  decimal.Decimal
}

// Report: все три проекции и исходные заказы.
type Report struct {
	Range       DateRange
	GeneratedAt time.Time
	Location    *time.Location
	SalesByDay  []DaySales
	TopProducts []ProductCount
	ByPayment   []PaymentRevenue
	Orders      []domain.Order
	Total       decimal.Decimal
}

// SalesByDay группирует суммы по календарной дате в зоне loc, даты по возрастанию.
func SalesByDay(orders []domain.Order, loc *time.Location) []DaySales {
	if loc == nil {
		loc = time.UTC
	}
	sums := make(map[string]decimal.Decimal)
	for _, order := range orders {
		day := order.CreatedAt.In(loc).Format(DateLayout)
		sums[day] = sums[day].Add(order.Total)
	}

	result := make([]DaySales, 0, len(sums))
	for day, total := range sums {
		result = append(result, DaySales{Date: day, Total: total})
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Date < result[j].Date })
	return result
}

// TopProducts считает вхождения товаров: по убыванию количества, затем по имени.
// Для заказов без структурированных позиций названия берутся из ItemsText.
func TopProducts(orders []domain.Order) []ProductCount {
	counts := make(map[string]int)
	for _, order := range orders {
		for _, name := range order.ItemNames() {
			counts[name]++
		}
	}

	result := make([]ProductCount, 0, len(counts))
	for name, count := range counts {
		result = append(result, ProductCount{Name: name, Count: count})
	}
	sort.Slice(result, func(i, j int) bool {
		if result[i].Count != result[j].Count {
			return result[i].Count > result[j].Count
		}
		return result[i].Name < result[j].Name
	})
	return result
}

// RevenueByPaymentMethod суммирует заказы по способу оплаты, по убыванию выручки.
// При равной выручке порядок как в domain.PaymentMethods.
func RevenueByPaymentMethod(orders []domain.Order) []PaymentRevenue {
	sums := make(map[domain.PaymentMethod]decimal.Decimal)
	for _, order := range orders {
		sums[order.PaymentMethod] = sums[order.PaymentMethod].Add(order.Total)
	}

	result := make([]PaymentRevenue, 0, len(sums))
	for method, total := range sums {
		result = append(result, PaymentRevenue{Method: method, Total: total})
	}
	sort.Slice(result, func(i, j int) bool {
		if cmp := result[i].Total.Cmp(result[j].Total); cmp != 0 {
			return cmp > 0
		}
		return methodRank(result[i].Method) < methodRank(result[j].Method)
	})
	return result
}

func methodRank(m domain.PaymentMethod) int {
	for i, known := range domain.PaymentMethods {
		if known == m {
			return i
		}
	}
	return len(domain.PaymentMethods)
}

func startOfDay(t time.Time, loc *time.Location) time.Time {
	y, m, d := t.In(loc).Date()
	return time.Date(y, m, d, 0, 0, 0, 0, loc)
}

// Service строит отчёты по OrderRepository.
type Service struct {
	orders domain.OrderRepository
	loc    *time.Location
	now    func() time.Time
}

// NewService создаёт сервис отчётов; календарные даты считаются в зоне loc.
func NewService(orders domain.OrderRepository, loc *time.Location) *Service {
	if loc == nil {
		loc = time.UTC
	}
	return &Service{
		orders: orders,
		loc:    loc,
		now:    func() time.Time { return time.Now().UTC() },
	}
}

// Location возвращает зону, в которой считаются даты.
func (s *Service) Location() *time.Location {
	return s.loc
}

// Build читает заказы диапазона и строит все проекции. Пустая выборка даёт пустой отчёт.
func (s *Service) Build(ctx context.Context, r DateRange) (Report, error) {
	orders, err := s.orders.List(ctx, r.Filter(s.loc))
	if err != nil {
		return Report{}, err
	}
	return Build(orders, r, s.loc, s.now()), nil
}

// Build строит отчёт по уже отобранным заказам.
func Build(orders []domain.Order, r DateRange, loc *time.Location, generatedAt time.Time) Report {
	if loc == nil {
		loc = time.UTC
	}
	total := decimal.Zero
	for _, order := range orders {
		total = total.Add(order.Total)
	}
	return Report{
		Range:       r,
		GeneratedAt: generatedAt,
		Location:    loc,
		SalesByDay:  SalesByDay(orders, loc),
		TopProducts: TopProducts(orders),
		ByPayment:   RevenueByPaymentMethod(orders),
		Orders:      orders,
		Total:       total,
	}
}
