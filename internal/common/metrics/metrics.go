// internal/common/metrics/metrics.go
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	StoreOperations = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "board_store_operations_total",
			Help: "Total number of entity store operations",
		},
		[]string{"collection", "operation"},
	)

	StoreFailures = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "board_store_failures_total",
			Help: "Total number of entity store operations rejected by the medium",
		},
		[]string{"collection", "operation"},
	)

	Registrations = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "board_registrations_total",
			Help: "Total number of identity registrations",
		},
		[]string{"role"},
	)

	ApplicationsSaved = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "board_applications_saved_total",
			Help: "Total number of application records saved",
		},
		[]string{"status"},
	)

	MatchScores = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "board_match_score",
			Help:    "Distribution of computed match scores",
			Buckets: prometheus.LinearBuckets(0, 10, 11),
		},
	)
)
