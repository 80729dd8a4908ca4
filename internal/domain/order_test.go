package domain

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestFormatItemsText(t *testing.T) {
	items := []OrderItem{
		{Name: "Bacon com brócolis", Price: decimal.RequireFromString("36")},
		{Name: "Bacon e cheddar", Price: decimal.RequireFromString("45.5")},
	}

	got := FormatItemsText(items)
	want := "Bacon com brócolis (R$ 36.00)\nBacon e cheddar (R$ 45.50)\n"
	if got != want {
		t.Fatalf("FormatItemsText() = %q, want %q", got, want)
	}
}

func TestParseItemNames(t *testing.T) {
	tests := []struct {
		name string
		text string
		want []string
	}{
		{name: "formatted", text: "A (R$ 1.00)\nB (R$ 2.00)\nA (R$ 1.00)\n", want: []string{"A", "B", "A"}},
		{name: "blank lines skipped", text: "\n  \nA (R$ 1.00)\n\n", want: []string{"A"}},
		{name: "no parenthesis", text: "  Plain name  ", want: []string{"Plain name"}},
		{name: "empty", text: "", want: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseItemNames(tt.text))
		})
	}
}

func TestOrderItemNamesFallsBackToText(t *testing.T) {
	structured := Order{
		Items:     []OrderItem{{Name: "X"}},
		ItemsText: "Y (R$ 1.00)\n",
	}
	assert.Equal(t, []string{"X"}, structured.ItemNames())

	legacy := Order{ItemsText: "Y (R$ 1.00)\nZ (R$ 2.00)\n"}
	assert.Equal(t, []string{"Y", "Z"}, legacy.ItemNames())
}

func TestSumItems(t *testing.T) {
	items := []OrderItem{
		{Price: decimal.RequireFromString("36.00")},
		{Price: decimal.RequireFromString("45.00")},
	}
	assert.Equal(t, "81.00", SumItems(items).StringFixed(2))
	assert.True(t, SumItems(nil).IsZero())
}

func TestParseOrderStatus(t *testing.T) {
	s, err := ParseOrderStatus(" Delivered ")
	assert.NoError(t, err)
	assert.Equal(t, OrderStatusDelivered, s)

	_, err = ParseOrderStatus("shipped")
	assert.Error(t, err)
}

func TestOrderFilterMatch(t *testing.T) {
	base := time.Date(2024, 3, 10, 12, 0, 0, 0, time.UTC)
	order := Order{CreatedAt: base, Status: OrderStatusPending}

	tests := []struct {
		name   string
		filter OrderFilter
		want   bool
	}{
		{name: "zero filter", filter: OrderFilter{}, want: true},
		{name: "since before", filter: OrderFilter{Since: base.Add(-time.Second)}, want: true},
		{name: "since equal excluded", filter: OrderFilter{Since: base}, want: false},
		{name: "range includes", filter: OrderFilter{From: base, To: base.Add(time.Hour)}, want: true},
		{name: "to exclusive", filter: OrderFilter{To: base}, want: false},
		{name: "status mismatch", filter: OrderFilter{Status: OrderStatusDelivered}, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.filter.Match(order))
		})
	}
}
