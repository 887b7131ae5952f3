package condkit

import (
	"io"
	"log/slog"

	"github.com/condkit/condkit/pkg/condkit/condition"
	"github.com/condkit/condkit/pkg/condkit/observability"
)

// engineConfig holds configuration for engine construction.
type engineConfig struct {
	resolver  condition.Resolver
	logger    *slog.Logger
	metrics   observability.MetricsRecorder
	spans     observability.SpanManager
	workers   int
	queueSize int
	workerEx  Executor
	callback  Executor
	closers   []io.Closer
}

// defaultEngineConfig returns the default engine configuration.
func defaultEngineConfig() engineConfig {
	return engineConfig{
		logger:    slog.Default(),
		metrics:   observability.NoopMetrics{},
		spans:     observability.NoopSpanManager{},
		workers:   0, // goroutine per task
		queueSize: 16,
	}
}

// Option configures an Engine.
type Option func(*engineConfig)

// WithResolver sets the operand resolver used for every evaluation.
// Without a resolver, operands compare as their raw text.
func WithResolver(r condition.Resolver) Option {
	return func(c *engineConfig) {
		c.resolver = r
	}
}

// WithLogger sets the structured logger. Pass nil to disable logging.
// Default: slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(c *engineConfig) {
		c.logger = logger
	}
}

// WithMetrics sets the metrics recorder.
// Default: observability.NoopMetrics.
func WithMetrics(m observability.MetricsRecorder) Option {
	return func(c *engineConfig) {
		if m != nil {
			c.metrics = m
		}
	}
}

// WithTracing sets the span manager.
// Default: observability.NoopSpanManager.
func WithTracing(sm observability.SpanManager) Option {
	return func(c *engineConfig) {
		if sm != nil {
			c.spans = sm
		}
	}
}

// WithWorkers sets the size of the engine-owned worker pool for async
// evaluation. n <= 0 means no pool: each async task gets its own
// goroutine.
func WithWorkers(n int) Option {
	return func(c *engineConfig) {
		c.workers = n
	}
}

// WithQueueSize sets the task queue capacity of the engine-owned
// worker pool. Only meaningful together with WithWorkers.
// Default: 16.
func WithQueueSize(n int) Option {
	return func(c *engineConfig) {
		if n >= 0 {
			c.queueSize = n
		}
	}
}

// WithWorkerExecutor sets the Executor async evaluation work is
// submitted to, overriding WithWorkers. Pass Direct() to make async
// evaluation synchronous, which is useful in tests.
func WithWorkerExecutor(ex Executor) Option {
	return func(c *engineConfig) {
		c.workerEx = ex
	}
}

// WithCallbackExecutor sets the Executor Future callbacks run on.
// Use NewSerial to pin all completion handling to one goroutine.
// Default: Direct() (callbacks run on the completing goroutine).
//
// The engine does not own this Executor; close it yourself if it
// needs closing.
func WithCallbackExecutor(ex Executor) Option {
	return func(c *engineConfig) {
		c.callback = ex
	}
}
