package observability

import (
	"context"
	"net/http"

	"github.com/aretw0/vignes/pkg/domain"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Outcome label values of vignes_estimates_total.
const (
	OutcomeOK        = "ok"
	OutcomeNonFinite = "non_finite"
	OutcomeRejected  = "rejected"
)

// Metrics holds the estimator collectors.
type Metrics struct {
	Estimates     *prometheus.CounterVec
	Rejections    *prometheus.CounterVec
	Duration      prometheus.Histogram
	RelativeError prometheus.Histogram

	gatherer prometheus.Gatherer
}

// NewMetrics creates the collectors and registers them on reg.
// If reg is also a Gatherer, Handler serves it; otherwise the default gatherer is used.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		Estimates: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "vignes_estimates_total",
				Help: "Total number of estimation requests by outcome",
			},
			[]string{"outcome"},
		),
		Rejections: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "vignes_rejections_total",
				Help: "Total number of rejected queries by field",
			},
			[]string{"field"},
		),
		Duration: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "vignes_estimate_duration_seconds",
				Help:    "Duration of correlation evaluations",
				Buckets: prometheus.ExponentialBuckets(1e-7, 4, 10),
			},
		),
		RelativeError: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "vignes_relative_error_percent",
				Help:    "Relative error of the estimate against the experimental reference",
				Buckets: []float64{0.1, 0.5, 1, 2, 5, 10, 25, 50, 100},
			},
		),
		gatherer: prometheus.DefaultGatherer,
	}

	reg.MustRegister(m.Estimates, m.Rejections, m.Duration, m.RelativeError)
	if g, ok := reg.(prometheus.Gatherer); ok {
		m.gatherer = g
	}
	return m
}

// Hooks returns lifecycle hooks that record into m.
func (m *Metrics) Hooks() domain.LifecycleHooks {
	return domain.LifecycleHooks{
		OnEstimate: func(ctx context.Context, e *domain.EstimateEvent) {
			m.Duration.Observe(e.Duration.Seconds())
			if !e.Finite {
				m.Estimates.WithLabelValues(OutcomeNonFinite).Inc()
				return
			}
			m.Estimates.WithLabelValues(OutcomeOK).Inc()
			m.RelativeError.Observe(e.Result.RelativeErrorPercent)
		},
		OnReject: func(ctx context.Context, e *domain.RejectEvent) {
			m.Estimates.WithLabelValues(OutcomeRejected).Inc()
			m.Rejections.WithLabelValues(e.Field).Inc()
		},
	}
}

// Handler serves the registered metrics in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.gatherer, promhttp.HandlerOpts{})
}
