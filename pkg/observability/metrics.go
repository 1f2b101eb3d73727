package observability

import (
	"context"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/aretw0/geomass/pkg/domain"
)

// Outcome label values for geomass_runs_total.
const (
	OutcomeSuccess = "success"
	OutcomeFailure = "failure"
)

// Metrics holds the counters of a single process on a private registry.
type Metrics struct {
	Registry     *prometheus.Registry
	Transformed  prometheus.Counter
	Unrecognized *prometheus.CounterVec
	Runs         *prometheus.CounterVec
}

// NewMetrics creates and registers the geomass counters.
func NewMetrics() *Metrics {
	m := &Metrics{
		Registry: prometheus.NewRegistry(),
		Transformed: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "geomass_lines_transformed_total",
			Help: "Geometry rows whose symbol was replaced by a mass",
		}),
		Unrecognized: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "geomass_unrecognized_symbols_total",
				Help: "Geometry rows left unchanged because the symbol has no mass",
			},
			[]string{"symbol"},
		),
		Runs: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "geomass_runs_total",
				Help: "Completed extraction runs by outcome",
			},
			[]string{"outcome"},
		),
	}
	m.Registry.MustRegister(m.Transformed, m.Unrecognized, m.Runs)
	return m
}

// Hooks returns lifecycle hooks that record into m.
func (m *Metrics) Hooks() domain.Hooks {
	return domain.Hooks{
		OnRowTransformed: func(ctx context.Context, e *domain.RowEvent) {
			m.Transformed.Inc()
		},
		OnUnrecognized: func(ctx context.Context, e *domain.RowEvent) {
			m.Unrecognized.WithLabelValues(e.Token).Inc()
		},
		OnRunFinish: func(ctx context.Context, e *domain.RunEvent) {
			outcome := OutcomeSuccess
			if e.Err != nil {
				outcome = OutcomeFailure
			}
			m.Runs.WithLabelValues(outcome).Inc()
		},
	}
}

// WriteTextfile writes the registry in the Prometheus text format to path,
// atomically, for the node-exporter textfile collector.
func (m *Metrics) WriteTextfile(path string) error {
	return prometheus.WriteToTextfile(path, m.Registry)
}
