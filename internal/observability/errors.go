package observability

import (
	"context"
	"errors"
	"net/http"

	"go-chi-calculator/internal/handlers"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
)

// ErrorKind returns the failure class of err when some error in its chain
// reports one through a Kind() string method, or "" otherwise.
func ErrorKind(err error) string {
	var k interface{ Kind() string }
	if errors.As(err, &k) {
		return k.Kind()
	}
	return ""
}

// RecordError centralises error handling across all domains: records the error
// on the span, increments the provided error counter, logs with trace context,
// and writes a JSON error HTTP response.
func RecordError(ctx context.Context, span trace.Span, logger *zap.Logger, counter metric.Int64Counter, opName, msg string, err error, status int, w http.ResponseWriter) {
	kind := ErrorKind(err)

	span.RecordError(err)
	span.SetStatus(codes.Error, msg)
	if kind != "" {
		span.SetAttributes(attribute.String("error.kind", kind))
	}

	counter.Add(ctx, 1, metric.WithAttributes(
		attribute.String("operation", opName),
		attribute.String("kind", kind),
	))

	logger.Error(msg,
		zap.String("operation", opName),
		zap.String("kind", kind),
		zap.Error(err),
		zap.String("request_id", RequestIDFromContext(ctx)),
	)

	handlers.WriteErrorKind(w, status, msg, kind)
}
