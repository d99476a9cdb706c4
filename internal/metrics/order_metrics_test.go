package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
)

func TestNewOrderMetrics(t *testing.T) {
	metrics := newOrderMetricsWithRegisterer(prometheus.NewRegistry())

	if metrics == nil {
		t.Fatal("newOrderMetricsWithRegisterer should not return nil")
	}
	if metrics.ordersCreated == nil {
		t.Error("ordersCreated counter should not be nil")
	}
	if metrics.ordersFailed == nil {
		t.Error("ordersFailed counter vec should not be nil")
	}
	if metrics.createDuration == nil {
		t.Error("createDuration histogram should not be nil")
	}
	if metrics.stockDecremented == nil {
		t.Error("stockDecremented counter should not be nil")
	}
}

func TestNewOrderMetrics_ReusesRegisteredCollectors(t *testing.T) {
	reg := prometheus.NewRegistry()

	first := newOrderMetricsWithRegisterer(reg)
	second := newOrderMetricsWithRegisterer(reg)

	first.RecordOrderCreated()
	second.RecordOrderCreated()

	if got := counterValue(t, first.ordersCreated); got != 2 {
		t.Fatalf("expected shared counter value 2, got %v", got)
	}
}

func TestRecordOrderFailed(t *testing.T) {
	metrics := newOrderMetricsWithRegisterer(prometheus.NewRegistry())

	metrics.RecordOrderFailed(FailureReasonInsufficientStock)
	metrics.RecordOrderFailed(FailureReasonInsufficientStock)
	metrics.RecordOrderFailed(FailureReasonInvalidCustomer)

	stock := metrics.ordersFailed.WithLabelValues(FailureReasonInsufficientStock)
	if got := counterValue(t, stock); got != 2 {
		t.Fatalf("expected insufficient_stock count 2, got %v", got)
	}
}

func TestRecordStockDecremented(t *testing.T) {
	metrics := newOrderMetricsWithRegisterer(prometheus.NewRegistry())

	metrics.RecordStockDecremented(3)
	metrics.RecordStockDecremented(0)
	metrics.RecordStockDecremented(-5)

	if got := counterValue(t, metrics.stockDecremented); got != 3 {
		t.Fatalf("expected 3 decremented units, got %v", got)
	}
}

func TestRecordCreateDuration(t *testing.T) {
	metrics := newOrderMetricsWithRegisterer(prometheus.NewRegistry())

	metrics.RecordCreateDuration(150 * time.Millisecond)

	var m dto.Metric
	if err := metrics.createDuration.Write(&m); err != nil {
		t.Fatalf("write histogram metric: %v", err)
	}
	if m.Histogram.GetSampleCount() != 1 {
		t.Fatalf("expected 1 observation, got %d", m.Histogram.GetSampleCount())
	}
}

func counterValue(t *testing.T, counter prometheus.Counter) float64 {
	t.Helper()

	var m dto.Metric
	if err := counter.Write(&m); err != nil {
		t.Fatalf("write counter metric: %v", err)
	}
	return m.Counter.GetValue()
}
