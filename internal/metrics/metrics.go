// Package metrics registers the Prometheus collectors exposed on /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// SimulationsTotal counts computations by product type and outcome.
	SimulationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "renix_simulations_total",
			Help: "Total simulation computations",
		},
		[]string{"product_type", "status"},
	)

	// CacheRequests counts computation cache lookups by result.
	CacheRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "renix_cache_requests_total",
			Help: "Computation cache lookups",
		},
		[]string{"result"},
	)

	// BatchSize observes the size of batch computations.
	BatchSize = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "renix_batch_size",
			Help:    "Number of investments per batch computation",
			Buckets: prometheus.ExponentialBuckets(1, 2, 10),
		},
	)
)
