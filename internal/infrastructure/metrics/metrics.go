// Package metrics exposes Prometheus counters for the resolution engine.
// Metrics are registered on the default registry and scraped on /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "resolution_desk"

var (
	// ResolutionsTotal counts completed resolve requests by compensation tier and final state.
	ResolutionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "resolutions_total",
			Help:      "Total resolve requests by compensation tier and final state.",
		},
		[]string{"tier", "state"},
	)

	// RefundAmountTotal sums refunded currency units.
	RefundAmountTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "refund_amount_total",
			Help:      "Sum of refund amounts credited to customer wallets.",
		},
	)

	// ToolCallsTotal counts named operations by tool and outcome.
	// outcome: success | failed
	ToolCallsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "tool_calls_total",
			Help:      "Total named operations invoked, by tool and outcome.",
		},
		[]string{"tool", "outcome"},
	)

	// HTTPRequestDurationSeconds tracks request latency by route and status class.
	HTTPRequestDurationSeconds = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "HTTP request latency in seconds.",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"method", "route", "status"},
	)
)

// Outcome maps a success flag onto the outcome label value
func Outcome(success bool) string {
	if success {
		return "success"
	}
	return "failed"
}
