package calculator

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	computationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "calculator_computations_total",
			Help: "Total number of computations recorded to history",
		},
		[]string{"operation"},
	)

	errorsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "calculator_errors_total",
			Help: "Total number of user-visible calculator errors",
		},
		[]string{"kind"},
	)

	sessionsActive = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "calculator_sessions_active",
			Help: "Number of widget sessions held in memory",
		},
	)
)
