package main

import (
	"context"

	"go-chi-calculator/internal/calculator"
	"go-chi-calculator/internal/config"
	"go-chi-calculator/internal/observability"
)

// initTelemetry installs the OTLP trace, metric and log pipelines and returns
// one shutdown func flushing all of them. Add new domain InitMetrics calls in
// initMetrics as the project grows.
func initTelemetry(ctx context.Context, cfg config.Config) (func(context.Context) error, error) {
	var shutdowns []func(context.Context) error
	shutdown := func(ctx context.Context) error {
		var first error
		for i := len(shutdowns) - 1; i >= 0; i-- {
			if err := shutdowns[i](ctx); err != nil && first == nil {
				first = err
			}
		}
		return first
	}

	traceShutdown, err := observability.InitTracing(ctx, cfg.ServiceName)
	if err != nil {
		return nil, err
	}
	shutdowns = append(shutdowns, traceShutdown)

	logShutdown, err := observability.InitLogging(ctx, cfg.ServiceName)
	if err != nil {
		_ = shutdown(ctx)
		return nil, err
	}
	shutdowns = append(shutdowns, logShutdown)

	metricShutdown, err := initMetrics(ctx, cfg.ServiceName)
	if err != nil {
		_ = shutdown(ctx)
		return nil, err
	}
	shutdowns = append(shutdowns, metricShutdown)

	return shutdown, nil
}

// initMetrics initialises the meter provider and application-specific
// metric instruments.
func initMetrics(ctx context.Context, serviceName string) (func(context.Context) error, error) {
	shutdown, err := observability.InitMetrics(ctx, serviceName)
	if err != nil {
		return nil, err
	}

	if err := calculator.InitMetrics(); err != nil {
		return nil, err
	}

	return shutdown, nil
}
