// Package observability provides production-grade observability for
// condition evaluation: structured logging, metrics, and tracing.
//
// Features:
//   - Structured logging via slog (Go stdlib)
//   - Metrics via OpenTelemetry
//   - Tracing via OpenTelemetry
//
// All features are opt-in and have no-op implementations when disabled.
package observability

import (
	"log/slog"
	"time"
)

// EnrichLogger adds evaluation context to a logger.
// Returns a new logger with the eval_id field.
func EnrichLogger(logger *slog.Logger, evalID string) *slog.Logger {
	if logger == nil {
		return nil
	}
	return logger.With(slog.String("eval_id", evalID))
}

// LogEvalStart logs the start of a condition evaluation.
func LogEvalStart(logger *slog.Logger, evalID, expression string) {
	if logger == nil {
		return
	}
	logger.Debug("condition evaluation starting",
		slog.String("eval_id", evalID),
		slog.String("expression", expression),
	)
}

// LogEvalResult logs a completed condition evaluation.
func LogEvalResult(logger *slog.Logger, evalID, expression string, result bool, durationMs float64) {
	if logger == nil {
		return
	}
	logger.Debug("condition evaluated",
		slog.String("eval_id", evalID),
		slog.String("expression", expression),
		slog.Bool("result", result),
		slog.Float64("duration_ms", durationMs),
	)
}

// LogParseFailure logs a malformed condition expression. The gated
// feature degrades to false, so this is a warning, not an error.
func LogParseFailure(logger *slog.Logger, evalID, expression string, err error) {
	if logger == nil {
		return
	}
	logger.Warn("condition failed to parse",
		slog.String("eval_id", evalID),
		slog.String("expression", expression),
		slog.String("error", err.Error()),
	)
}

// LogBatchResult logs a completed multi-line evaluation.
func LogBatchResult(logger *slog.Logger, evalID string, lines int, result bool, durationMs float64) {
	if logger == nil {
		return
	}
	logger.Debug("condition batch evaluated",
		slog.String("eval_id", evalID),
		slog.Int("lines", lines),
		slog.Bool("result", result),
		slog.Float64("duration_ms", durationMs),
	)
}

// LogAsyncPanic logs a panic recovered on the async path. The
// evaluation degrades to false instead of crashing the caller.
func LogAsyncPanic(logger *slog.Logger, expression string, value any, stack string) {
	if logger == nil {
		return
	}
	logger.Error("async evaluation panicked",
		slog.String("expression", expression),
		slog.Any("panic", value),
		slog.String("stack", stack),
	)
}

// TimedOperation measures the duration of an operation.
// Returns a function that, when called, returns the elapsed time in
// milliseconds.
func TimedOperation() func() float64 {
	start := time.Now()
	return func() float64 {
		return float64(time.Since(start).Milliseconds())
	}
}
