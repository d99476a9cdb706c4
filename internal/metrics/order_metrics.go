package metrics

import (
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Причины отказов оформления заказа для метрики shop_orders_failed_total.
const (
	FailureReasonInvalidCustomer   = "invalid_customer"
	FailureReasonInvalidProducts   = "invalid_products"
	FailureReasonInsufficientStock = "insufficient_stock"
	FailureReasonValidation        = "validation"
	FailureReasonInternal          = "internal"
)

// OrderMetrics содержит метрики оформления заказов.
type OrderMetrics struct {
	// Счётчики операций
	ordersCreated prometheus.Counter
	ordersFailed  *prometheus.CounterVec

	// Гистограмма времени оформления
	createDuration prometheus.Histogram

	// Счётчик списанных единиц товара
	stockDecremented prometheus.Counter
}

// NewOrderMetrics создаёт новый экземпляр метрик заказов.
func NewOrderMetrics() *OrderMetrics {
	return newOrderMetricsWithRegisterer(prometheus.DefaultRegisterer)
}

func newOrderMetricsWithRegisterer(registerer prometheus.Registerer) *OrderMetrics {
	if registerer == nil {
		registerer = prometheus.DefaultRegisterer
	}

	return &OrderMetrics{
		ordersCreated: registerCounter(registerer, prometheus.CounterOpts{
			Name: "shop_orders_created_total",
			Help: "Total number of orders successfully created",
		}),
		ordersFailed: registerCounterVec(registerer, prometheus.CounterOpts{
			Name: "shop_orders_failed_total",
			Help: "Total number of order creation failures by reason",
		}, []string{"reason"}),
		createDuration: registerHistogram(registerer, prometheus.HistogramOpts{
			Name:    "shop_order_create_duration_seconds",
			Help:    "Duration of order creation in seconds",
			Buckets: prometheus.DefBuckets,
		}),
		stockDecremented: registerCounter(registerer, prometheus.CounterOpts{
			Name: "shop_stock_decremented_units_total",
			Help: "Total number of stock units decremented by orders",
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

// RecordOrderCreated увеличивает счётчик успешно оформленных заказов.
func (m *OrderMetrics) RecordOrderCreated() {
	m.ordersCreated.Inc()
}

// RecordOrderFailed увеличивает счётчик отказов с указанной причиной.
func (m *OrderMetrics) RecordOrderFailed(reason string) {
	m.ordersFailed.WithLabelValues(reason).Inc()
}

// RecordCreateDuration записывает время оформления заказа.
func (m *OrderMetrics) RecordCreateDuration(duration time.Duration) {
	m.createDuration.Observe(duration.Seconds())
}

// RecordStockDecremented увеличивает счётчик списанных единиц товара.
func (m *OrderMetrics) RecordStockDecremented(units int64) {
	if units <= 0 {
		return
	}
	m.stockDecremented.Add(float64(units))
}
