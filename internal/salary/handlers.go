package salary

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"campus-salary/internal/handlers"
	"campus-salary/internal/observability"
	"campus-salary/internal/validation"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
)

const opCalculate = "calculate"

// MaxBodyBytes caps the size of a calculate request body.
const MaxBodyBytes = 1 << 20

var tracer = otel.Tracer("salary")

// Calculate handles POST /calcular-salario
func Calculate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := observability.LoggerWithTrace(ctx)
	requestID := observability.RequestIDFromContext(ctx)

	ctx, span := tracer.Start(ctx, "salary.calculate",
		trace.WithAttributes(
			attribute.String("request.id", requestID),
		),
	)
	defer span.End()

	var payload CalculateRequest
	if err := decodeBody(w, r, &payload); err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			observability.RecordError(ctx, span, logger, errorCounter, opCalculate, "request body too large", err, http.StatusRequestEntityTooLarge, w)
			return
		}
		observability.RecordError(ctx, span, logger, errorCounter, opCalculate, "invalid request body", err, http.StatusBadRequest, w)
		return
	}

	if err := validation.Struct(payload); err != nil {
		var verr *validation.Error
		if errors.As(err, &verr) {
			observability.RecordValidationError(ctx, span, logger, errorCounter, opCalculate, verr.Fields, err, w)
			return
		}
		observability.RecordError(ctx, span, logger, errorCounter, opCalculate, "internal server error", err, http.StatusInternalServerError, w)
		return
	}

	req := payload.ToRequest()
	span.SetAttributes(
		attribute.Float64("salary.hourly_rate", req.HourlyRate),
		attribute.Int("salary.campuses_count", len(req.Campuses)),
	)

	_, computeSpan := tracer.Start(ctx, "salary.compute")
	start := time.Now()
	resp := Compute(req)
	elapsed := float64(time.Since(start).Microseconds()) / 1000.0 // ms
	computeSpan.End()

	body, err := encode(resp)
	if err != nil {
		observability.RecordError(ctx, span, logger, errorCounter, opCalculate, "internal server error", err, http.StatusInternalServerError, w)
		return
	}

	attrs := metric.WithAttributes(attribute.String("operation", opCalculate))
	calcCounter.Add(ctx, 1, attrs)
	calcHistogram.Record(ctx, elapsed, attrs)
	campusHistogram.Record(ctx, int64(len(req.Campuses)), attrs)
	monthlyTotalGauge.Record(ctx, resp.OverallMonthlySalary, attrs)

	span.AddEvent("calculation.complete", trace.WithAttributes(
		attribute.Float64("overall_weekly_salary", resp.OverallWeeklySalary),
		attribute.Float64("overall_monthly_salary", resp.OverallMonthlySalary),
		attribute.Float64("duration_ms", elapsed),
	))
	span.SetStatus(codes.Ok, "")

	logger.Info("salary breakdown computed",
		zap.Float64("hourly_rate", req.HourlyRate),
		zap.Int("campuses", len(req.Campuses)),
		zap.Float64("overall_weekly_salary", resp.OverallWeeklySalary),
		zap.Float64("overall_monthly_salary", resp.OverallMonthlySalary),
		zap.String("request_id", requestID),
		zap.Float64("duration_ms", elapsed),
	)

	handlers.WriteRawJSON(w, http.StatusOK, body)
}

// decodeBody reads exactly one JSON value of at most MaxBodyBytes into dst.
func decodeBody(w http.ResponseWriter, r *http.Request, dst any) error {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, MaxBodyBytes))
	if err := dec.Decode(dst); err != nil {
		return err
	}
	if err := dec.Decode(&struct{}{}); !errors.Is(err, io.EOF) {
		if err == nil {
			err = errors.New("unexpected data after JSON body")
		}
		return fmt.Errorf("trailing data: %w", err)
	}
	return nil
}

// encode marshals resp before any header is written, so a failure can still
// be reported as a 500.
func encode(resp Response) ([]byte, error) {
	if !resp.finite() {
		return nil, fmt.Errorf("salary figures overflow: weekly=%g monthly=%g",
			resp.OverallWeeklySalary, resp.OverallMonthlySalary)
	}
	body, err := json.Marshal(resp)
	if err != nil {
		return nil, fmt.Errorf("encode response: %w", err)
	}
	return body, nil
}
