package receipt

import (
	"bytes"
	"fmt"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vladislavdragonenkov/cardapio/internal/domain"
	"github.com/vladislavdragonenkov/cardapio/internal/service/reporting"
)

func sampleOrder(items int) domain.Order {
	lines := make([]domain.OrderItem, 0, items)
	for i := 0; i < items; i++ {
		lines = append(lines, domain.OrderItem{Name: fmt.Sprintf("Bacon com brócolis %d", i), Price: decimal.RequireFromString("36.00")})
	}
	at := time.Date(2024, 5, 10, 18, 30, 0, 0, time.UTC)
	return domain.Order{
		ID:            "order-1",
		CustomerName:  "João",
		Address:       "Rua das Flores, 10",
		PaymentMethod: domain.PaymentCreditCard,
		Note:          "Sem cebola",
		Items:         lines,
		ItemsText:     domain.FormatItemsText(lines),
		Total:         domain.SumItems(lines),
		Status:        domain.OrderStatusPending,
		CreatedAt:     at,
		UpdatedAt:     at,
	}
}

func TestRenderOrder(t *testing.T) {
	data, err := OrderBytes(sampleOrder(3), Options{StoreName: "Quero Batata"})
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(data, []byte("%PDF-")))
}

func TestRenderOrderDeterministic(t *testing.T) {
	first, err := OrderBytes(sampleOrder(2), Options{})
	require.NoError(t, err)
	second, err := OrderBytes(sampleOrder(2), Options{})
	require.NoError(t, err)
	assert.Equal(t, len(first), len(second))
}

func TestRenderOrderPaginatesLongLists(t *testing.T) {
	short, err := OrderBytes(sampleOrder(1), Options{})
	require.NoError(t, err)
	long, err := OrderBytes(sampleOrder(120), Options{})
	require.NoError(t, err)

	assert.Equal(t, 1, bytes.Count(short, []byte("/Type /Page\n")))
	assert.Greater(t, bytes.Count(long, []byte("/Type /Page\n")), 1)
}

func TestRenderOrderLegacyItemsText(t *testing.T) {
	order := sampleOrder(0)
	order.ItemsText = "A (R$ 5.00)\nB (R$ 3.00)\n"
	order.Total = decimal.RequireFromString("8")

	var buf bytes.Buffer
	require.NoError(t, RenderOrder(&buf, order, Options{}))
	assert.NotZero(t, buf.Len())
}

func TestRenderReport(t *testing.T) {
	orders := []domain.Order{sampleOrder(2), sampleOrder(1)}
	orders[1].ID = "order-2"
	orders[1].PaymentMethod = domain.PaymentPix

	r, err := reporting.ParseDateRange("2024-05-01", "2024-05-31", time.UTC)
	require.NoError(t, err)
	report := reporting.Build(orders, r, time.UTC, time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC))

	data, err := ReportBytes(report, Options{StoreName: "Quero Batata"})
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(data, []byte("%PDF-")))

	empty, err := ReportBytes(reporting.Build(nil, reporting.DateRange{}, nil, time.Time{}), Options{})
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(empty, []byte("%PDF-")))
}
