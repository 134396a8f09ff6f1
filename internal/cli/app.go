package cli

import (
	"fmt"
	"log/slog"

	"github.com/aretw0/vignes"
	"github.com/aretw0/vignes/internal/config"
	"github.com/aretw0/vignes/internal/logging"
	"github.com/aretw0/vignes/pkg/observability"
	"github.com/prometheus/client_golang/prometheus"
)

// App bundles the dependencies shared by every command.
type App struct {
	Config    config.Config
	Logger    *slog.Logger
	Estimator *vignes.Estimator
	Metrics   *observability.Metrics
}

// GlobalOptions are the persistent flags of the root command.
type GlobalOptions struct {
	ConfigPath string
	LogLevel   string
}

// bootstrap loads the configuration and builds the estimator with standard CLI conventions.
func bootstrap(opts GlobalOptions) (*App, error) {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return nil, err
	}

	if opts.LogLevel != "" {
		cfg.LogLevel = opts.LogLevel
		if err := cfg.Validate(); err != nil {
			return nil, err
		}
	}

	logger := logging.New(cfg.Level(), logging.Format(cfg.LogFormat))

	estOpts := []vignes.Option{
		vignes.WithConstants(cfg.Constants),
		vignes.WithLogger(logger),
	}

	var metrics *observability.Metrics
	if cfg.Metrics.Enabled {
		metrics = observability.NewMetrics(prometheus.NewRegistry())
		estOpts = append(estOpts, vignes.WithLifecycleHooks(metrics.Hooks()))
	}

	est, err := vignes.New(estOpts...)
	if err != nil {
		return nil, fmt.Errorf("error initializing estimator: %w", err)
	}

	return &App{
		Config:    cfg,
		Logger:    logger,
		Estimator: est,
		Metrics:   metrics,
	}, nil
}
