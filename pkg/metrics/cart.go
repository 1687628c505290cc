package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// CartMetrics records cart mutations and checkout outcomes.
type CartMetrics struct {
	mutations   *prometheus.CounterVec
	checkouts   *prometheus.CounterVec
	orderTotals prometheus.Histogram
}

// NewCartMetrics registers the cart metrics on the provided registerer.
func NewCartMetrics(reg prometheus.Registerer) *CartMetrics {
	if reg == nil {
		return &CartMetrics{}
	}
	mutations := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "cart_mutations_total",
		Help: "Cart store mutations by operation.",
	}, []string{"op"})
	checkouts := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "checkout_compositions_total",
		Help: "Checkout compositions by outcome.",
	}, []string{"outcome"})
	orderTotals := prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "checkout_order_total",
		Help:    "Grand total of composed orders in whole currency units.",
		Buckets: prometheus.ExponentialBuckets(50000, 2, 10),
	})
	reg.MustRegister(mutations, checkouts, orderTotals)
	return &CartMetrics{
		mutations:   mutations,
		checkouts:   checkouts,
		orderTotals: orderTotals,
	}
}

// IncMutation counts a store operation such as add, change_quantity, remove or clear.
func (c *CartMetrics) IncMutation(op string) {
	if c == nil || c.mutations == nil {
		return
	}
	c.mutations.WithLabelValues(normalizeLabel(op)).Inc()
}

// IncCheckout counts a composition attempt by outcome.
func (c *CartMetrics) IncCheckout(outcome string) {
	if c == nil || c.checkouts == nil {
		return
	}
	c.checkouts.WithLabelValues(normalizeLabel(outcome)).Inc()
}

// ObserveOrderTotal records the grand total of a composed order.
func (c *CartMetrics) ObserveOrderTotal(total int64) {
	if c == nil || c.orderTotals == nil {
		return
	}
	c.orderTotals.Observe(float64(total))
}

func normalizeLabel(value string) string {
	if value == "" {
		return "unknown"
	}
	return value
}
