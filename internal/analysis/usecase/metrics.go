package usecase

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Outcome labels for analysesTotal.
const (
	outcomeSuccess       = "success"
	outcomeMisconfigured = "misconfigured"
	outcomeGateway       = "gateway_error"
	outcomeInvalidJSON   = "invalid_json"
	outcomeSchema        = "schema_error"
	outcomeDueDate       = "due_date_error"
)

var (
	analysesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "task_analysis_total",
			Help: "Task analyses by outcome",
		},
		[]string{"outcome"},
	)

	collaboratorDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "task_analysis_collaborator_duration_seconds",
			Help:    "Latency of the collaborator call",
			Buckets: []float64{0.25, 0.5, 1, 2, 5, 10, 30, 60},
		},
		[]string{"provider", "model"},
	)
)
