package main

import (
	"context"

	"campus-salary/internal/config"
	"campus-salary/internal/observability"
	"campus-salary/internal/salary"
)

// initTelemetry starts OTLP export when enabled and registers the
// application's metric instruments. With export disabled the instruments
// bind to the global no-op providers. Add new domain InitMetrics calls here
// as the project grows.
func initTelemetry(ctx context.Context, cfg config.Config) (observability.ShutdownFunc, error) {
	shutdown := observability.ShutdownFunc(func(context.Context) error { return nil })

	if cfg.TelemetryEnabled {
		var err error
		shutdown, err = observability.InitTelemetry(ctx)
		if err != nil {
			return nil, err
		}
	}

	if err := salary.InitMetrics(); err != nil {
		_ = shutdown(ctx)
		return nil, err
	}

	return shutdown, nil
}
