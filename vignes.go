package vignes

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/aretw0/vignes/internal/runtime"
	"github.com/aretw0/vignes/pkg/domain"
	"github.com/aretw0/vignes/pkg/schema"
)

// Estimator is the high-level entry point for the vignes library.
// It wraps the internal runtime and adds validation of the constants,
// structured logging and lifecycle hooks.
type Estimator struct {
	runtime   *runtime.Estimator
	constants domain.ModelConstants
	hooks     domain.LifecycleHooks
	logger    *slog.Logger
	now       func() time.Time
}

// Option defines a functional option for configuring the Estimator.
type Option func(*Estimator)

// WithConstants replaces the default model constants.
func WithConstants(c domain.ModelConstants) Option {
	return func(e *Estimator) {
		e.constants = c
	}
}

// WithLifecycleHooks registers observability hooks.
// Hooks registered by successive calls are all invoked, in registration order.
func WithLifecycleHooks(hooks domain.LifecycleHooks) Option {
	return func(e *Estimator) {
		e.hooks = e.hooks.Merge(hooks)
	}
}

// WithLogger sets a custom structured logger for the estimator.
func WithLogger(logger *slog.Logger) Option {
	return func(e *Estimator) {
		e.logger = logger
	}
}

// ConstantsSchema is the validation schema applied to model constants.
var ConstantsSchema = schema.Schema{
	domain.KeyExperimentalD: schema.Positive(),
	domain.KeyABA:           schema.Finite(),
	domain.KeyAAB:           schema.Finite(),
	domain.KeyLambdaA:       schema.Positive(),
	domain.KeyLambdaB:       schema.Positive(),
	domain.KeyQA:            schema.Positive(),
	domain.KeyQB:            schema.Positive(),
	domain.KeyDAB:           schema.Positive(),
	domain.KeyDBA:           schema.Positive(),
}

// ValidateConstants checks every parameter of c and reports all failures at once.
func ValidateConstants(c domain.ModelConstants) error {
	fields := c.Fields()
	data := make(map[string]any, len(fields))
	for k, v := range fields {
		data[k] = v
	}
	return schema.Validate(ConstantsSchema, data)
}

// New initializes an Estimator. Without options it uses domain.DefaultConstants.
func New(opts ...Option) (*Estimator, error) {
	est := &Estimator{
		constants: domain.DefaultConstants(),
		now:       time.Now,
	}

	for _, opt := range opts {
		opt(est)
	}

	if err := ValidateConstants(est.constants); err != nil {
		return nil, fmt.Errorf("invalid model constants: %w", err)
	}

	if est.logger == nil {
		est.logger = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}

	est.runtime = runtime.NewEstimator(est.constants)
	return est, nil
}

// Constants returns the model constants in use.
func (e *Estimator) Constants() domain.ModelConstants {
	return e.constants
}

// Estimate computes the diffusivity for q.
// A validation failure is returned as a *domain.InputError matching domain.ErrInvalidInput.
func (e *Estimator) Estimate(ctx context.Context, q domain.Query) (domain.Result, error) {
	res, _, err := e.Explain(ctx, q)
	return res, err
}

// Explain is Estimate plus the intermediate quantities of the model.
func (e *Estimator) Explain(ctx context.Context, q domain.Query) (domain.Result, domain.Breakdown, error) {
	if err := ctx.Err(); err != nil {
		return domain.Result{}, domain.Breakdown{}, err
	}

	start := e.now()
	res, b, err := e.runtime.Explain(q)
	if err != nil {
		e.reject(ctx, q, err)
		return domain.Result{}, domain.Breakdown{}, err
	}

	finite := res.Finite()
	if !finite {
		e.logger.WarnContext(ctx, "estimate is not finite", "xa", q.Xa, "t", q.T, "ln_d", res.LnD)
	} else {
		e.logger.DebugContext(ctx, "estimate", "xa", q.Xa, "t", q.T, "d", res.D, "relative_error_percent", res.RelativeErrorPercent)
	}

	if e.hooks.OnEstimate != nil {
		e.hooks.OnEstimate(ctx, &domain.EstimateEvent{
			EventBase: domain.EventBase{Timestamp: start, Type: domain.EventEstimate},
			Result:    res,
			Duration:  e.now().Sub(start),
			Finite:    finite,
		})
	}
	return res, b, nil
}

func (e *Estimator) reject(ctx context.Context, q domain.Query, err error) {
	field := ""
	if inputErr, ok := err.(*domain.InputError); ok {
		field = inputErr.Field
	}
	e.logger.InfoContext(ctx, "query rejected", "xa", q.Xa, "t", q.T, "field", field, "err", err)

	if e.hooks.OnReject != nil {
		e.hooks.OnReject(ctx, &domain.RejectEvent{
			EventBase: domain.EventBase{Timestamp: e.now(), Type: domain.EventReject},
			Query:     q,
			Field:     field,
			Err:       err,
		})
	}
}
