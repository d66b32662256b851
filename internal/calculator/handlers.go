package calculator

import (
	"encoding/json"
	"fmt"
	"math"
	"net/http"
	"time"

	"go-chi-calculator/internal/arith"
	"go-chi-calculator/internal/expr"
	"go-chi-calculator/internal/handlers"
	"go-chi-calculator/internal/observability"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
)

// tracer is the calculator's dedicated OpenTelemetry tracer.
var tracer = otel.Tracer("calculator")

// maxBodyBytes bounds every request body.
const maxBodyBytes = 64 << 10

// ---------------------------------------------------------------------------
// Handlers: binary operations
// ---------------------------------------------------------------------------

// Binary returns the handler for POST /calculator/<op.Name>.
func Binary(op arith.Operator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		handleBinaryOp(w, r, op)
	}
}

// handleBinaryOp is the shared implementation for all binary calculator operations.
func handleBinaryOp(w http.ResponseWriter, r *http.Request, op arith.Operator) {
	ctx := r.Context()
	logger := observability.LoggerWithTrace(ctx)
	requestID := observability.RequestIDFromContext(ctx)
	opName := op.Name

	ctx, span := tracer.Start(ctx, fmt.Sprintf("calculator.%s", opName),
		trace.WithAttributes(
			attribute.String("calculator.operation", opName),
			attribute.String("request.id", requestID),
		),
	)
	defer span.End()

	var req CalcRequest
	if err := decode(w, r, &req); err != nil {
		observability.RecordError(ctx, span, logger, errorCounter, opName, "invalid request body", err, http.StatusBadRequest, w)
		return
	}

	if !finite(req.A) || !finite(req.B) {
		observability.RecordError(ctx, span, logger, errorCounter, opName, "invalid numeric input", fmt.Errorf("a=%g b=%g", req.A, req.B), http.StatusBadRequest, w)
		return
	}

	span.SetAttributes(
		attribute.Float64("calculator.operand.a", req.A),
		attribute.Float64("calculator.operand.b", req.B),
	)

	start := time.Now()
	result, err := op.Apply(req.A, req.B)
	if err == nil {
		err = arith.Check(result)
	}
	elapsed := float64(time.Since(start).Microseconds()) / 1000.0 // ms

	if err != nil {
		observability.RecordError(ctx, span, logger, errorCounter, opName, err.Error(), err, http.StatusBadRequest, w)
		return
	}

	attrs := metric.WithAttributes(attribute.String("operation", opName))
	opsCounter.Add(ctx, 1, attrs)
	opsHistogram.Record(ctx, elapsed, attrs)
	resultGauge.Record(ctx, result, attrs)

	span.AddEvent("computation.complete", trace.WithAttributes(
		attribute.Float64("result", result),
		attribute.Float64("duration_ms", elapsed),
	))
	span.SetAttributes(attribute.Float64("calculator.result", result))
	span.SetStatus(codes.Ok, "")

	logger.Info("calculator operation completed",
		zap.String("operation", opName),
		zap.Float64("a", req.A),
		zap.Float64("b", req.B),
		zap.Float64("result", result),
		zap.String("request_id", requestID),
		zap.Float64("duration_ms", elapsed),
	)

	handlers.WriteJSON(w, http.StatusOK, CalcResponse{
		Operation: opName,
		A:         req.A,
		B:         req.B,
		Result:    expr.Normalize(result),
	})
}

// ---------------------------------------------------------------------------
// Handler: chained operations (nested spans)
// ---------------------------------------------------------------------------

// Chain handles POST /calculator/chain. It runs a sequence of operations on a
// running total, creating a child span for every step.
func Chain(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := observability.LoggerWithTrace(ctx)
	requestID := observability.RequestIDFromContext(ctx)

	ctx, span := tracer.Start(ctx, "calculator.chain",
		trace.WithAttributes(
			attribute.String("request.id", requestID),
		),
	)
	defer span.End()

	var req ChainRequest
	if err := decode(w, r, &req); err != nil {
		observability.RecordError(ctx, span, logger, errorCounter, "chain", "invalid request body", err, http.StatusBadRequest, w)
		return
	}

	if len(req.Steps) == 0 {
		observability.RecordError(ctx, span, logger, errorCounter, "chain", "no steps provided", fmt.Errorf("steps array is empty"), http.StatusBadRequest, w)
		return
	}

	span.SetAttributes(
		attribute.Float64("chain.initial", req.Initial),
		attribute.Int("chain.steps_count", len(req.Steps)),
	)

	logger.Info("starting chained calculation",
		zap.Float64("initial", req.Initial),
		zap.Int("steps", len(req.Steps)),
		zap.String("request_id", requestID),
	)

	running := req.Initial
	results := make([]ChainResult, 0, len(req.Steps))

	for i, step := range req.Steps {
		_, stepSpan := tracer.Start(ctx, fmt.Sprintf("calculator.chain.step.%d.%s", i, step.Op),
			trace.WithAttributes(
				attribute.Int("chain.step.index", i),
				attribute.String("chain.step.operation", step.Op),
				attribute.Float64("chain.step.input", running),
				attribute.Float64("chain.step.value", step.Value),
			),
		)

		stepStart := time.Now()
		prev := running

		var err error
		op, ok := arith.ByName(step.Op)
		if !ok {
			err = fmt.Errorf("unknown operation %q at step %d", step.Op, i)
		} else if running, err = op.Apply(prev, step.Value); err == nil {
			err = arith.Check(running)
		}
		if err != nil && ok {
			err = fmt.Errorf("step %d: %w", i, err)
		}

		stepElapsed := float64(time.Since(stepStart).Microseconds()) / 1000.0

		if err != nil {
			stepSpan.RecordError(err)
			stepSpan.SetStatus(codes.Error, err.Error())
			stepSpan.End()

			observability.RecordError(ctx, span, logger, errorCounter, step.Op, err.Error(), err, http.StatusBadRequest, w)
			return
		}

		attrs := metric.WithAttributes(attribute.String("operation", step.Op))
		opsCounter.Add(ctx, 1, attrs)
		opsHistogram.Record(ctx, stepElapsed, attrs)

		stepSpan.AddEvent("step.complete", trace.WithAttributes(
			attribute.Float64("input", prev),
			attribute.Float64("result", running),
		))
		stepSpan.SetAttributes(attribute.Float64("chain.step.result", running))
		stepSpan.SetStatus(codes.Ok, "")
		stepSpan.End()

		logger.Info("chain step completed",
			zap.Int("step", i),
			zap.String("operation", step.Op),
			zap.Float64("input", prev),
			zap.Float64("value", step.Value),
			zap.Float64("result", running),
			zap.Float64("duration_ms", stepElapsed),
		)

		results = append(results, ChainResult{
			Op:     step.Op,
			Value:  step.Value,
			Result: expr.Normalize(running),
		})
	}

	resultGauge.Record(ctx, running, metric.WithAttributes(attribute.String("operation", "chain")))

	span.AddEvent("chain.complete", trace.WithAttributes(
		attribute.Float64("final_result", running),
		attribute.Int("total_steps", len(req.Steps)),
	))
	span.SetAttributes(attribute.Float64("chain.result", running))
	span.SetStatus(codes.Ok, "")

	logger.Info("chained calculation completed",
		zap.Float64("initial", req.Initial),
		zap.Float64("result", running),
		zap.Int("steps", len(req.Steps)),
		zap.String("request_id", requestID),
	)

	handlers.WriteJSON(w, http.StatusOK, ChainResponse{
		Initial: req.Initial,
		Steps:   results,
		Result:  expr.Normalize(running),
	})
}

// decode reads a single JSON document of at most maxBodyBytes into dst.
func decode(w http.ResponseWriter, r *http.Request, dst any) error {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()
	return dec.Decode(dst)
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
