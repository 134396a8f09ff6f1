package observability_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/aretw0/vignes"
	"github.com/aretw0/vignes/pkg/domain"
	"github.com/aretw0/vignes/pkg/observability"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetrics_Hooks(t *testing.T) {
	m := observability.NewMetrics(prometheus.NewRegistry())

	est, err := vignes.New(vignes.WithLifecycleHooks(m.Hooks()))
	require.NoError(t, err)

	ctx := context.Background()
	_, err = est.Estimate(ctx, domain.Query{Xa: 0.5, T: 298.15})
	require.NoError(t, err)
	_, err = est.Estimate(ctx, domain.Query{Xa: 0.25, T: 298.15})
	require.NoError(t, err)
	_, err = est.Estimate(ctx, domain.Query{Xa: 1.5, T: 298.15})
	require.Error(t, err)
	_, err = est.Estimate(ctx, domain.Query{Xa: 0.5, T: 0})
	require.Error(t, err)
	_, err = est.Estimate(ctx, domain.Query{Xa: 0.5, T: 1e-3})
	require.NoError(t, err)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.Estimates.WithLabelValues(observability.OutcomeOK)))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.Estimates.WithLabelValues(observability.OutcomeRejected)))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.Estimates.WithLabelValues(observability.OutcomeNonFinite)))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.Rejections.WithLabelValues("Xa")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.Rejections.WithLabelValues("T")))

	rr := httptest.NewRecorder()
	m.Handler().ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Contains(t, rr.Body.String(), "vignes_relative_error_percent_count 2")
	assert.Contains(t, rr.Body.String(), "vignes_estimate_duration_seconds_count 3")
}

func TestMetrics_Handler(t *testing.T) {
	m := observability.NewMetrics(prometheus.NewRegistry())
	m.Estimates.WithLabelValues(observability.OutcomeOK).Inc()

	rr := httptest.NewRecorder()
	m.Handler().ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), `vignes_estimates_total{outcome="ok"} 1`)
}
