package observability

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// MetricsRecorder records condition evaluation metrics.
// Use NewMetricsRecorder() for OTel metrics or NoopMetrics{} when disabled.
type MetricsRecorder interface {
	// RecordEvaluation records a single-expression evaluation with its
	// result and duration.
	RecordEvaluation(ctx context.Context, result bool, duration time.Duration)

	// RecordParseFailure records a malformed expression.
	RecordParseFailure(ctx context.Context)

	// RecordBatch records a multi-line evaluation.
	RecordBatch(ctx context.Context, lines int, result bool, duration time.Duration)
}

// otelMetrics implements MetricsRecorder using OpenTelemetry.
type otelMetrics struct {
	evaluations   metric.Int64Counter
	evalLatency   metric.Float64Histogram
	parseFailures metric.Int64Counter
	batchRuns     metric.Int64Counter
	batchLatency  metric.Float64Histogram
}

var (
	defaultMetrics     *otelMetrics
	defaultMetricsOnce sync.Once
	defaultMetricsErr  error
)

// getDefaultMetrics returns the default OTel metrics instance.
// Lazily initializes the metrics on first call.
func getDefaultMetrics() (*otelMetrics, error) {
	defaultMetricsOnce.Do(func() {
		defaultMetrics, defaultMetricsErr = newOtelMetrics()
	})
	return defaultMetrics, defaultMetricsErr
}

// newOtelMetrics creates a new OTel metrics instance.
func newOtelMetrics() (*otelMetrics, error) {
	meter := otel.Meter("condkit")

	evaluations, err := meter.Int64Counter("condkit.eval.count",
		metric.WithDescription("Number of condition evaluations"),
	)
	if err != nil {
		return nil, err
	}

	evalLatency, err := meter.Float64Histogram("condkit.eval.latency_ms",
		metric.WithDescription("Condition evaluation latency in milliseconds"),
		metric.WithUnit("ms"),
	)
	if err != nil {
		return nil, err
	}

	parseFailures, err := meter.Int64Counter("condkit.parse.failures",
		metric.WithDescription("Number of malformed condition expressions"),
	)
	if err != nil {
		return nil, err
	}

	batchRuns, err := meter.Int64Counter("condkit.batch.count",
		metric.WithDescription("Number of multi-line condition evaluations"),
	)
	if err != nil {
		return nil, err
	}

	batchLatency, err := meter.Float64Histogram("condkit.batch.latency_ms",
		metric.WithDescription("Multi-line evaluation latency in milliseconds"),
		metric.WithUnit("ms"),
	)
	if err != nil {
		return nil, err
	}

	return &otelMetrics{
		evaluations:   evaluations,
		evalLatency:   evalLatency,
		parseFailures: parseFailures,
		batchRuns:     batchRuns,
		batchLatency:  batchLatency,
	}, nil
}

// NewMetricsRecorder returns a MetricsRecorder that uses OpenTelemetry.
// If metrics initialization fails, returns a no-op recorder.
//
// The recorder uses the global OTel meter provider. Configure the
// provider before calling this function:
//
//	import "go.opentelemetry.io/otel"
//	otel.SetMeterProvider(yourProvider)
func NewMetricsRecorder() MetricsRecorder {
	m, err := getDefaultMetrics()
	if err != nil {
		slog.Warn("metrics initialization failed, using no-op recorder",
			slog.String("error", err.Error()))
		return NoopMetrics{}
	}
	return m
}

// RecordEvaluation records a single-expression evaluation.
func (m *otelMetrics) RecordEvaluation(ctx context.Context, result bool, duration time.Duration) {
	attrs := []attribute.KeyValue{
		attribute.Bool("result", result),
	}
	m.evaluations.Add(ctx, 1, metric.WithAttributes(attrs...))
	m.evalLatency.Record(ctx, float64(duration.Milliseconds()), metric.WithAttributes(attrs...))
}

// RecordParseFailure records a malformed expression.
func (m *otelMetrics) RecordParseFailure(ctx context.Context) {
	m.parseFailures.Add(ctx, 1)
}

// RecordBatch records a multi-line evaluation.
func (m *otelMetrics) RecordBatch(ctx context.Context, lines int, result bool, duration time.Duration) {
	attrs := []attribute.KeyValue{
		attribute.Int("lines", lines),
		attribute.Bool("result", result),
	}
	m.batchRuns.Add(ctx, 1, metric.WithAttributes(attrs...))
	m.batchLatency.Record(ctx, float64(duration.Milliseconds()), metric.WithAttributes(attrs...))
}
