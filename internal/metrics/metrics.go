// Package metrics wires prometheus collectors into the engine's lifecycle
// hooks.
package metrics

import (
	"context"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/nthterm/nthterm/pkg/domain"
)

// Collectors holds the prometheus instruments for the sequence engine.
type Collectors struct {
	Generations *prometheus.CounterVec
	Rejects     *prometheus.CounterVec
	Terms       prometheus.Histogram
}

// New registers the collectors on the given registerer.
func New(reg prometheus.Registerer) *Collectors {
	c := &Collectors{
		Generations: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "nthterm_generations_total",
				Help: "Total number of successful sequence generations",
			},
			[]string{"kind"},
		),
		Rejects: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "nthterm_generation_rejects_total",
				Help: "Total number of requests rejected by validation",
			},
			[]string{"kind"},
		),
		Terms: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "nthterm_sequence_terms",
				Help:    "Distribution of requested term counts",
				Buckets: []float64{1, 10, 50, 100, 250, 500, 1000},
			},
		),
	}
	reg.MustRegister(c.Generations, c.Rejects, c.Terms)
	return c
}

// Hooks returns lifecycle hooks that record the collectors.
func (c *Collectors) Hooks() domain.LifecycleHooks {
	return domain.LifecycleHooks{
		OnGenerate: func(ctx context.Context, e *domain.GenerateEvent) {
			c.Generations.WithLabelValues(string(e.Kind)).Inc()
			c.Terms.Observe(float64(e.TermCount))
		},
		OnReject: func(ctx context.Context, e *domain.RejectEvent) {
			c.Rejects.WithLabelValues(string(e.Kind)).Inc()
		},
	}
}
