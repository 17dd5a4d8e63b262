package usecase

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	solveOutcomes = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "sudoku",
		Name:      "solve_total",
		Help:      "Solve attempts by outcome (yes, no, rejected, timeout).",
	}, []string{"outcome"})

	solveDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Namespace: "sudoku",
		Name:      "solve_duration_seconds",
		Help:      "Wall time spent in the backtracking search.",
		Buckets:   prometheus.ExponentialBuckets(0.0001, 4, 8),
	})
)
