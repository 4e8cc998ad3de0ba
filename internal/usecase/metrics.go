package usecase

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	syncRunsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "accounting",
			Name:      "sync_runs_total",
			Help:      "Total number of accounting sync runs",
		},
		[]string{"provider", "status"},
	)
	syncPaymentsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "accounting",
			Name:      "sync_payments_total",
			Help:      "Total number of payments processed by sync runs",
		},
		[]string{"provider", "result"},
	)
)
