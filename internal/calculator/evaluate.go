package calculator

import (
	"net/http"
	"time"

	"go-chi-calculator/internal/expr"
	"go-chi-calculator/internal/handlers"
	"go-chi-calculator/internal/observability"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
)

// Evaluate handles POST /calculator/evaluate: it computes a free-form
// expression such as "(2+3)*4" with the usual operator precedence.
func Evaluate(w http.ResponseWriter, r *http.Request) {
	const opName = "evaluate"

	ctx := r.Context()
	logger := observability.LoggerWithTrace(ctx)
	requestID := observability.RequestIDFromContext(ctx)

	ctx, span := tracer.Start(ctx, "calculator.evaluate",
		trace.WithAttributes(
			attribute.String("calculator.operation", opName),
			attribute.String("request.id", requestID),
		),
	)
	defer span.End()

	var req EvaluateRequest
	if err := decode(w, r, &req); err != nil {
		observability.RecordError(ctx, span, logger, errorCounter, opName, "invalid request body", err, http.StatusBadRequest, w)
		return
	}

	span.SetAttributes(attribute.String("calculator.expression", req.Expression))
	exprLength.Record(ctx, int64(len(req.Expression)))

	start := time.Now()
	result, err := expr.Evaluate(req.Expression)
	elapsed := float64(time.Since(start).Microseconds()) / 1000.0 // ms

	if err != nil {
		observability.RecordError(ctx, span, logger, errorCounter, opName, err.Error(), err, http.StatusBadRequest, w)
		return
	}

	attrs := metric.WithAttributes(attribute.String("operation", opName))
	opsCounter.Add(ctx, 1, attrs)
	opsHistogram.Record(ctx, elapsed, attrs)
	resultGauge.Record(ctx, result.Float64(), attrs)

	span.AddEvent("evaluation.complete", trace.WithAttributes(
		attribute.String("result", result.String()),
		attribute.Float64("duration_ms", elapsed),
	))
	span.SetAttributes(attribute.String("calculator.result", result.String()))
	span.SetStatus(codes.Ok, "")

	logger.Info("expression evaluated",
		zap.String("expression", req.Expression),
		zap.Stringer("result", result),
		zap.String("request_id", requestID),
		zap.Float64("duration_ms", elapsed),
	)

	handlers.WriteJSON(w, http.StatusOK, EvaluateResponse{
		Expression: req.Expression,
		Result:     result,
	})
}
