package salary

import (
	"fmt"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/metric"
)

// Metric instruments — initialized once via InitMetrics().
var (
	calcCounter       metric.Int64Counter
	calcHistogram     metric.Float64Histogram
	errorCounter      metric.Int64Counter
	campusHistogram   metric.Int64Histogram
	monthlyTotalGauge metric.Float64Gauge
)

// InitMetrics registers the salary domain's OTel instruments.
// Call this once at startup (after observability.InitMetrics).
func InitMetrics() error {
	meter := otel.Meter("salary")

	var err error

	calcCounter, err = meter.Int64Counter("salary.calculations.total",
		metric.WithDescription("Total number of salary breakdowns computed"),
		metric.WithUnit("{calculation}"),
	)
	if err != nil {
		return fmt.Errorf("creating calculations counter: %w", err)
	}

	calcHistogram, err = meter.Float64Histogram("salary.calculation.duration",
		metric.WithDescription("Duration of salary breakdown computation in milliseconds"),
		metric.WithUnit("ms"),
		metric.WithExplicitBucketBoundaries(0.01, 0.05, 0.1, 0.5, 1, 5, 10),
	)
	if err != nil {
		return fmt.Errorf("creating calculation histogram: %w", err)
	}

	errorCounter, err = meter.Int64Counter("salary.errors.total",
		metric.WithDescription("Total number of rejected or failed salary requests"),
		metric.WithUnit("{error}"),
	)
	if err != nil {
		return fmt.Errorf("creating error counter: %w", err)
	}

	campusHistogram, err = meter.Int64Histogram("salary.request.campuses",
		metric.WithDescription("Number of campuses per salary request"),
		metric.WithUnit("{campus}"),
		metric.WithExplicitBucketBoundaries(0, 1, 2, 3, 5, 10, 20),
	)
	if err != nil {
		return fmt.Errorf("creating campus histogram: %w", err)
	}

	monthlyTotalGauge, err = meter.Float64Gauge("salary.last_overall_monthly",
		metric.WithDescription("Overall monthly salary of the last computed breakdown"),
		metric.WithUnit("1"),
	)
	if err != nil {
		return fmt.Errorf("creating monthly total gauge: %w", err)
	}

	return nil
}
