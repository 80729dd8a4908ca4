package metrics

import (
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// ShopMetrics содержит метрики витрины и панели заказов.
// Все методы безопасны для nil-получателя: сервисы работают и без метрик.
type ShopMetrics struct {
	// Счётчики заказов
	ordersSubmitted *prometheus.CounterVec
	submitRejected  *prometheus.CounterVec
	ordersDelivered prometheus.Counter
	ordersRemoved   prometheus.Counter

	// Гистограммы
	submitDuration prometheus.Histogram
	orderTotal     prometheus.Histogram

	cartItemsAdded prometheus.Counter
	outboxEvents   prometheus.Counter

	storeOpen prometheus.Gauge
}

// NewShopMetrics регистрирует метрики в prometheus.DefaultRegisterer.
func NewShopMetrics() *ShopMetrics {
	return NewShopMetricsWith(prometheus.DefaultRegisterer)
}

// NewShopMetricsWith регистрирует метрики в переданном registerer (изолированные тесты).
func NewShopMetricsWith(registerer prometheus.Registerer) *ShopMetrics {
	if registerer == nil {
		registerer = prometheus.DefaultRegisterer
	}

	return &ShopMetrics{
		ordersSubmitted: registerCounterVec(registerer, prometheus.CounterOpts{
			Name: "cardapio_orders_submitted_total",
			Help: "Total number of orders submitted, by payment method",
		}, []string{"payment_method"}),
		submitRejected: registerCounterVec(registerer, prometheus.CounterOpts{
			Name: "cardapio_order_submit_rejected_total",
			Help: "Total number of rejected order submissions, by reason",
		}, []string{"reason"}),
		ordersDelivered: registerCounter(registerer, prometheus.CounterOpts{
			Name: "cardapio_orders_delivered_total",
			Help: "Total number of orders marked as delivered",
		}),
		ordersRemoved: registerCounter(registerer, prometheus.CounterOpts{
			Name: "cardapio_orders_removed_total",
			Help: "Total number of orders removed by admins",
		}),
		submitDuration: registerHistogram(registerer, prometheus.HistogramOpts{
			Name:    "cardapio_order_submit_duration_seconds",
			Help:    "Duration of order submission in seconds",
			Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1.0, 2.5},
		}),
		orderTotal: registerHistogram(registerer, prometheus.HistogramOpts{
			Name:    "cardapio_order_total_amount",
			Help:    "Distribution of order totals in currency units",
			Buckets: []float64{10, 25, 50, 75, 100, 150, 200, 300, 500},
		}),
		cartItemsAdded: registerCounter(registerer, prometheus.CounterOpts{
			Name: "cardapio_cart_items_added_total",
			Help: "Total number of items added to session carts",
		}),
		outboxEvents: registerCounter(registerer, prometheus.CounterOpts{
			Name: "cardapio_outbox_events_total",
			Help: "Total number of events written to the outbox",
		}),
		storeOpen: registerGauge(registerer, prometheus.GaugeOpts{
			Name: "cardapio_store_open",
			Help: "1 when the store accepts orders, 0 otherwise",
		}),
	}
}

func registerCounter(registerer prometheus.Registerer, opts prometheus.CounterOpts) prometheus.Counter {
	collector := prometheus.NewCounter(opts)
	if err := registerer.Register(collector); err != nil {
		if alreadyRegistered, ok := err.(prometheus.AlreadyRegisteredError); ok {
			existing, ok := alreadyRegistered.ExistingCollector.(prometheus.Counter)
			if !ok {
				panic(fmt.Sprintf("collector %q already registered with unexpected type", opts.Name))
			}
			return existing
		}
		panic(fmt.Sprintf("register counter %q: %v", opts.Name, err))
	}
	return collector
}

func registerCounterVec(registerer prometheus.Registerer, opts prometheus.CounterOpts, labels []string) *prometheus.CounterVec {
	collector := prometheus.NewCounterVec(opts, labels)
	if err := registerer.Register(collector); err != nil {
		if alreadyRegistered, ok := err.(prometheus.AlreadyRegisteredError); ok {
			existing, ok := alreadyRegistered.ExistingCollector.(*prometheus.CounterVec)
			if !ok {
				panic(fmt.Sprintf("collector %q already registered with unexpected type", opts.Name))
			}
			return existing
		}
		panic(fmt.Sprintf("register counter vec %q: %v", opts.Name, err))
	}
	return collector
}

func registerGauge(registerer prometheus.Registerer, opts prometheus.GaugeOpts) prometheus.Gauge {
	collector := prometheus.NewGauge(opts)
	if err := registerer.Register(collector); err != nil {
		if alreadyRegistered, ok := err.(prometheus.AlreadyRegisteredError); ok {
			existing, ok := alreadyRegistered.ExistingCollector.(prometheus.Gauge)
			if !ok {
				panic(fmt.Sprintf("collector %q already registered with unexpected type", opts.Name))
			}
			return existing
		}
		panic(fmt.Sprintf("register gauge %q: %v", opts.Name, err))
	}
	return collector
}

func registerHistogram(registerer prometheus.Registerer, opts prometheus.HistogramOpts) prometheus.Histogram {
	collector := prometheus.NewHistogram(opts)
	if err := registerer.Register(collector); err != nil {
		if alreadyRegistered, ok := err.(prometheus.AlreadyRegisteredError); ok {
			existing, ok := alreadyRegistered.ExistingCollector.(prometheus.Histogram)
			if !ok {
				panic(fmt.Sprintf("collector %q already registered with unexpected type", opts.Name))
			}
			return existing
		}
		panic(fmt.Sprintf("register histogram %q: %v", opts.Name, err))
	}
	return collector
}

// RecordOrderSubmitted учитывает оформленный заказ, его сумму и длительность оформления.
func (m *ShopMetrics) RecordOrderSubmitted(paymentMethod string, total float64, duration time.Duration) {
	if m == nil {
		return
	}
	m.ordersSubmitted.WithLabelValues(paymentMethod).Inc()
	m.orderTotal.Observe(total)
	m.submitDuration.Observe(duration.Seconds())
}

// RecordSubmitRejected учитывает отказ в оформлении с причиной.
func (m *ShopMetrics) RecordSubmitRejected(reason string) {
	if m == nil {
		return
	}
	m.submitRejected.WithLabelValues(reason).Inc()
}

// RecordOrderDelivered увеличивает счётчик доставленных заказов.
func (m *ShopMetrics) RecordOrderDelivered() {
	if m == nil {
		return
	}
	m.ordersDelivered.Inc()
}

// RecordOrderRemoved увеличивает счётчик удалённых заказов.
func (m *ShopMetrics) RecordOrderRemoved() {
	if m == nil {
		return
	}
	m.ordersRemoved.Inc()
}

// RecordCartItemAdded увеличивает счётчик добавлений в корзину.
func (m *ShopMetrics) RecordCartItemAdded() {
	if m == nil {
		return
	}
	m.cartItemsAdded.Inc()
}

// RecordOutboxEvent увеличивает счётчик событий outbox.
func (m *ShopMetrics) RecordOutboxEvent() {
	if m == nil {
		return
	}
	m.outboxEvents.Inc()
}

// SetStoreOpen выставляет gauge состояния магазина.
func (m *ShopMetrics) SetStoreOpen(open bool) {
	if m == nil {
		return
	}
	if open {
		m.storeOpen.Set(1)
		return
	}
	m.storeOpen.Set(0)
}
