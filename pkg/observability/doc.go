/*
Package observability provides Prometheus instrumentation for the estimator.

Metrics are fed through domain.LifecycleHooks, so the estimator itself has no
dependency on the metrics backend:

	m := observability.NewMetrics(prometheus.NewRegistry())
	est, err := vignes.New(vignes.WithLifecycleHooks(m.Hooks()))
*/
package observability
