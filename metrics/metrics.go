// Package metrics holds the Prometheus collectors for solver runs.
//
// Collectors are registered with the default registry through promauto when
// the package is loaded.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Status label values for SolverRunsTotal.
const (
	StatusOK    = "ok"
	StatusError = "error"
)

var (
	// SolverRunsTotal counts ComputePath calls by solver and outcome.
	SolverRunsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "tourkit_solver_runs_total",
			Help: "Total number of solver runs",
		},
		[]string{"solver", "status"},
	)

	// SolverDuration measures ComputePath wall time.
	// Buckets span sort solvers (microseconds) to exact searches (minutes).
	SolverDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "tourkit_solver_duration_seconds",
			Help:    "Duration of solver runs in seconds",
			Buckets: []float64{0.0001, 0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1, 5, 30, 120},
		},
		[]string{"solver"},
	)

	// PathDistance holds the length of the last path computed per solver and
	// point set.
	PathDistance = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "tourkit_path_distance",
			Help: "Total distance of the last computed path",
		},
		[]string{"solver", "set"},
	)
)

// ObserveRun records one finished run. distance is only recorded for
// successful runs.
func ObserveRun(solver, set string, seconds, distance float64, err error) {
	SolverDuration.WithLabelValues(solver).Observe(seconds)
	if err != nil {
		SolverRunsTotal.WithLabelValues(solver, StatusError).Inc()
		return
	}
	SolverRunsTotal.WithLabelValues(solver, StatusOK).Inc()
	PathDistance.WithLabelValues(solver, set).Set(distance)
}
