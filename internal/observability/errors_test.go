package observability

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestRecordErrorWritesStandardizedErrorResponse(t *testing.T) {
	ctx := ContextWithRequestID(context.Background(), "req-1")
	span := trace.SpanFromContext(ctx)
	logger := zap.NewNop()

	counter, err := otel.Meter("test").Int64Counter("test.errors.total")
	if err != nil {
		t.Fatalf("creating counter: %v", err)
	}

	w := httptest.NewRecorder()

	RecordError(
		ctx,
		span,
		logger,
		counter,
		"calculate",
		"invalid request body",
		errors.New("bad json"),
		http.StatusBadRequest,
		w,
	)

	resp := w.Result()
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected status %d, got %d", http.StatusBadRequest, resp.StatusCode)
	}

	if ct := resp.Header.Get("Content-Type"); ct != "application/json" {
		t.Fatalf("expected Content-Type application/json, got %q", ct)
	}

	var body map[string]any
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("decoding response body: %v", err)
	}

	if got := body["error"]; got != "invalid request body" {
		t.Fatalf("expected error %q, got %#v", "invalid request body", got)
	}

	if _, ok := body["request_id"]; ok {
		t.Fatal("did not expect request_id field in JSON body")
	}
}

func TestRecordErrorHidesCauseAndLogsIt(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	logger := zap.New(core)
	ctx := ContextWithRequestID(context.Background(), "req-2")

	counter, err := otel.Meter("test").Int64Counter("test.errors.total")
	if err != nil {
		t.Fatalf("creating counter: %v", err)
	}

	w := httptest.NewRecorder()
	RecordError(ctx, trace.SpanFromContext(ctx), logger, counter, "calculate",
		"internal server error", errors.New("secret cause"), http.StatusInternalServerError, w)

	if w.Code != http.StatusInternalServerError {
		t.Fatalf("expected status %d, got %d", http.StatusInternalServerError, w.Code)
	}

	var body map[string]any
	if err := json.NewDecoder(w.Result().Body).Decode(&body); err != nil {
		t.Fatalf("decoding response body: %v", err)
	}
	if body["error"] != "internal server error" {
		t.Fatalf("expected opaque error message, got %#v", body["error"])
	}

	entries := logs.FilterLevelExact(zap.ErrorLevel).All()
	if len(entries) != 1 {
		t.Fatalf("expected 1 error log entry, got %d", len(entries))
	}
	fields := entries[0].ContextMap()
	if fields["error"] != "secret cause" {
		t.Fatalf("expected cause in log, got %#v", fields["error"])
	}
	if fields["request_id"] != "req-2" {
		t.Fatalf("expected request_id %q, got %#v", "req-2", fields["request_id"])
	}
}

func TestRecordValidationErrorWritesDetails(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	ctx := context.Background()

	counter, err := otel.Meter("test").Int64Counter("test.errors.total")
	if err != nil {
		t.Fatalf("creating counter: %v", err)
	}

	w := httptest.NewRecorder()
	details := []map[string]string{{"field": "hourly_rate", "message": "Hourly Rate must be greater than 0"}}
	RecordValidationError(ctx, trace.SpanFromContext(ctx), zap.New(core), counter, "calculate",
		details, errors.New("hourly_rate"), w)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected status %d, got %d", http.StatusBadRequest, w.Code)
	}

	var body struct {
		Error   string              `json:"error"`
		Details []map[string]string `json:"details"`
	}
	if err := json.NewDecoder(w.Result().Body).Decode(&body); err != nil {
		t.Fatalf("decoding response body: %v", err)
	}
	if body.Error != "validation failed" {
		t.Fatalf("expected error %q, got %q", "validation failed", body.Error)
	}
	if len(body.Details) != 1 || body.Details[0]["field"] != "hourly_rate" {
		t.Fatalf("unexpected details: %#v", body.Details)
	}

	if n := logs.FilterLevelExact(zap.WarnLevel).Len(); n != 1 {
		t.Fatalf("expected 1 warn log entry, got %d", n)
	}
}
