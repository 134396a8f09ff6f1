package vignes_test

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"math"
	"testing"

	"github.com/aretw0/vignes"
	"github.com/aretw0/vignes/pkg/domain"
	"github.com/aretw0/vignes/pkg/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_Defaults(t *testing.T) {
	est, err := vignes.New()
	require.NoError(t, err)
	assert.Equal(t, domain.DefaultConstants(), est.Constants())
}

func TestNew_InvalidConstants(t *testing.T) {
	c := domain.DefaultConstants()
	c.LambdaB = 0
	c.DAB = -1
	c.AAB = math.NaN()

	_, err := vignes.New(vignes.WithConstants(c))
	require.Error(t, err)

	errs := schema.ValidationErrors(err)
	require.Len(t, errs, 3)

	var keys []string
	for _, e := range errs {
		var ve *schema.ValidationError
		require.True(t, errors.As(e, &ve))
		keys = append(keys, ve.Key)
	}
	assert.Equal(t, []string{domain.KeyAAB, domain.KeyDAB, domain.KeyLambdaB}, keys)
}

func TestEstimate_CustomConstants(t *testing.T) {
	c := domain.DefaultConstants()
	c.ExperimentalD = 1.4e-05

	est, err := vignes.New(vignes.WithConstants(c))
	require.NoError(t, err)

	res, err := est.Estimate(context.Background(), domain.Query{Xa: 0.5, T: 298.15})
	require.NoError(t, err)
	assert.Equal(t, 0.094, res.RelativeErrorPercent)
}

func TestEstimate_Hooks(t *testing.T) {
	var estimates []*domain.EstimateEvent
	var rejects []*domain.RejectEvent
	var order []string

	hooks := domain.LifecycleHooks{
		OnEstimate: func(ctx context.Context, e *domain.EstimateEvent) {
			estimates = append(estimates, e)
			order = append(order, "first")
		},
		OnReject: func(ctx context.Context, e *domain.RejectEvent) {
			rejects = append(rejects, e)
		},
	}
	second := domain.LifecycleHooks{
		OnEstimate: func(ctx context.Context, e *domain.EstimateEvent) {
			order = append(order, "second")
		},
	}

	est, err := vignes.New(vignes.WithLifecycleHooks(hooks), vignes.WithLifecycleHooks(second))
	require.NoError(t, err)

	ctx := context.Background()
	res, err := est.Estimate(ctx, domain.Query{Xa: 0.5, T: 298.15})
	require.NoError(t, err)

	_, err = est.Estimate(ctx, domain.Query{Xa: 0.5, T: -5})
	require.Error(t, err)

	require.Len(t, estimates, 1)
	assert.Equal(t, res, estimates[0].Result)
	assert.Equal(t, domain.EventEstimate, estimates[0].Type)
	assert.True(t, estimates[0].Finite)
	assert.Equal(t, []string{"first", "second"}, order)

	require.Len(t, rejects, 1)
	assert.Equal(t, "T", rejects[0].Field)
	assert.Equal(t, domain.Query{Xa: 0.5, T: -5}, rejects[0].Query)
	assert.ErrorIs(t, rejects[0].Err, domain.ErrInvalidInput)
}

func TestEstimate_CancelledContext(t *testing.T) {
	est, err := vignes.New()
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err = est.Estimate(ctx, domain.Query{Xa: 0.5, T: 298.15})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestEstimate_LogsRejection(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	est, err := vignes.New(vignes.WithLogger(logger))
	require.NoError(t, err)

	_, err = est.Estimate(context.Background(), domain.Query{Xa: 1.0001, T: 298.15})
	require.Error(t, err)

	out := buf.String()
	assert.Contains(t, out, "query rejected")
	assert.Contains(t, out, "field=Xa")
}

func TestExplain(t *testing.T) {
	est, err := vignes.New()
	require.NoError(t, err)

	res, b, err := est.Explain(context.Background(), domain.Query{Xa: 0.3, T: 320})
	require.NoError(t, err)
	assert.Equal(t, res.LnD, b.Terms.Sum())
	assert.Equal(t, math.Exp(res.LnD), res.D)
}
