package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all prometheus metrics
type Metrics struct {
	ProviderCalls  *prometheus.CounterVec
	QuotaReserved  prometheus.Counter
	QuotaDenied    prometheus.Counter
	QuotaRemaining prometheus.Gauge
	Searches       *prometheus.CounterVec
	SearchDuration prometheus.Histogram
}

// NewMetrics registers the metrics on reg; tests pass a fresh prometheus.NewRegistry().
func NewMetrics(namespace string, reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)

	return &Metrics{
		ProviderCalls: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "provider_calls_total",
			Help:      "Provider calls by result (ok, no_offers, failed, auth_failure)",
		}, []string{"result"}),
		QuotaReserved: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "quota_units_reserved_total",
			Help:      "Quota units granted to searches",
		}),
		QuotaDenied: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "quota_units_denied_total",
			Help:      "Quota units requested but not granted",
		}),
		QuotaRemaining: factory.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "quota_units_remaining",
			Help:      "Quota units left in the current month",
		}),
		Searches: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "searches_total",
			Help:      "Searches by status (complete, partial, aborted, invalid)",
		}, []string{"status"}),
		SearchDuration: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "search_duration_seconds",
			Help:      "Wall time of a full multi-day search",
			Buckets:   prometheus.DefBuckets,
		}),
	}
}
