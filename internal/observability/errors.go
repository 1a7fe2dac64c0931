package observability

import (
	"context"
	"net/http"

	"campus-salary/internal/handlers"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
)

// RecordError centralises error handling across all domains: records the error
// on the span, increments the provided error counter, logs with trace context,
// and writes a JSON error HTTP response. Only msg reaches the client; err is
// logged.
func RecordError(ctx context.Context, span trace.Span, logger *zap.Logger, counter metric.Int64Counter, opName, msg string, err error, status int, w http.ResponseWriter) {
	record(ctx, span, logger, counter, opName, msg, err, status)
	handlers.WriteError(w, status, msg)
}

// RecordValidationError is RecordError for rejected input: it always answers
// 400 and includes details in the response body.
func RecordValidationError(ctx context.Context, span trace.Span, logger *zap.Logger, counter metric.Int64Counter, opName string, details any, err error, w http.ResponseWriter) {
	const msg = "validation failed"
	record(ctx, span, logger, counter, opName, msg, err, http.StatusBadRequest)
	handlers.WriteErrorDetails(w, http.StatusBadRequest, msg, details)
}

func record(ctx context.Context, span trace.Span, logger *zap.Logger, counter metric.Int64Counter, opName, msg string, err error, status int) {
	span.RecordError(err)
	span.SetStatus(codes.Error, msg)

	counter.Add(ctx, 1, metric.WithAttributes(
		attribute.String("operation", opName),
		attribute.Int("status", status),
	))

	fields := []zap.Field{
		zap.String("operation", opName),
		zap.Int("status", status),
		zap.Error(err),
		zap.String("request_id", RequestIDFromContext(ctx)),
	}
	if status >= http.StatusInternalServerError {
		logger.Error(msg, fields...)
		return
	}
	logger.Warn(msg, fields...)
}
