// Package metrics exposes prometheus instrumentation for the service.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// PredictionsTotal counts classified records, labeled by the
	// predicted class.
	PredictionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "petal_predictions_total",
			Help: "Total number of records classified",
		},
		[]string{"class"},
	)

	// EvaluationsTotal counts cross-validation runs.
	EvaluationsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "petal_evaluations_total",
			Help: "Total number of cross-validation runs",
		},
	)

	// RequestDuration measures handler response time.
	RequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "petal_http_request_duration_seconds",
			Help:    "Duration of HTTP requests in seconds",
			Buckets: []float64{0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1, 5},
		},
		[]string{"path"},
	)
)
