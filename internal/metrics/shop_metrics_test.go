package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
)

func counterValue(t *testing.T, c prometheus.Counter) float64 {
	t.Helper()
	metric := &dto.Metric{}
	if err := c.Write(metric); err != nil {
		t.Fatalf("failed to write metric: %v", err)
	}
	return metric.Counter.GetValue()
}

func TestNewShopMetricsWith(t *testing.T) {
	m := NewShopMetricsWith(prometheus.NewRegistry())

	if m.ordersSubmitted == nil || m.submitRejected == nil {
		t.Fatal("order counters should not be nil")
	}
	if m.submitDuration == nil || m.orderTotal == nil {
		t.Fatal("histograms should not be nil")
	}
	if m.storeOpen == nil {
		t.Fatal("storeOpen gauge should not be nil")
	}
}

func TestNewShopMetricsWith_ReusesRegisteredCollectors(t *testing.T) {
	reg := prometheus.NewRegistry()
	first := NewShopMetricsWith(reg)
	second := NewShopMetricsWith(reg)

	first.RecordOrderDelivered()
	second.RecordOrderDelivered()

	if got := counterValue(t, first.ordersDelivered); got != 2 {
		t.Fatalf("expected shared counter value 2, got %f", got)
	}
}

func TestRecordOrderSubmitted(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewShopMetricsWith(reg)

	m.RecordOrderSubmitted("pix", 81, 20*time.Millisecond)
	m.RecordOrderSubmitted("pix", 36, 10*time.Millisecond)
	m.RecordOrderSubmitted("cash", 45, 10*time.Millisecond)

	if got := counterValue(t, m.ordersSubmitted.WithLabelValues("pix")); got != 2 {
		t.Errorf("expected pix=2, got %f", got)
	}
	if got := counterValue(t, m.ordersSubmitted.WithLabelValues("cash")); got != 1 {
		t.Errorf("expected cash=1, got %f", got)
	}

	metric := &dto.Metric{}
	if err := m.orderTotal.Write(metric); err != nil {
		t.Fatalf("failed to write histogram: %v", err)
	}
	if metric.Histogram.GetSampleCount() != 3 {
		t.Errorf("expected 3 samples, got %d", metric.Histogram.GetSampleCount())
	}
	if metric.Histogram.GetSampleSum() != 162 {
		t.Errorf("expected sum 162, got %f", metric.Histogram.GetSampleSum())
	}
}

func TestRecordSubmitRejectedAndStoreGauge(t *testing.T) {
	m := NewShopMetricsWith(prometheus.NewRegistry())

	m.RecordSubmitRejected("empty_cart")
	m.SetStoreOpen(true)
	m.SetStoreOpen(false)

	if got := counterValue(t, m.submitRejected.WithLabelValues("empty_cart")); got != 1 {
		t.Errorf("expected empty_cart=1, got %f", got)
	}

	gauge := &dto.Metric{}
	if err := m.storeOpen.Write(gauge); err != nil {
		t.Fatalf("failed to write gauge: %v", err)
	}
	if gauge.Gauge.GetValue() != 0 {
		t.Errorf("expected closed store gauge 0, got %f", gauge.Gauge.GetValue())
	}
}

func TestNilShopMetricsIsNoop(t *testing.T) {
	var m *ShopMetrics
	m.RecordOrderSubmitted("pix", 1, time.Millisecond)
	m.RecordSubmitRejected("x")
	m.RecordOrderDelivered()
	m.RecordOrderRemoved()
	m.RecordCartItemAdded()
	m.RecordOutboxEvent()
	m.SetStoreOpen(true)
}
