package condkit

import (
	"context"
	"io"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/condkit/condkit/pkg/condkit/condition"
	"github.com/condkit/condkit/pkg/condkit/observability"
)

// Engine evaluates condition expressions against subjects.
//
// An Engine is safe for concurrent use. Construct one with New and
// reuse it; Close releases the engine-owned worker pool and any
// resources created by FromConfig.
type Engine struct {
	resolver condition.Resolver
	logger   *slog.Logger
	metrics  observability.MetricsRecorder
	spans    observability.SpanManager
	workers  Executor
	callback Executor
	pool     *Pool
	closers  []io.Closer

	closeOnce sync.Once
	closeErr  error
}

// New creates an Engine with the given options.
func New(opts ...Option) *Engine {
	cfg := defaultEngineConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	e := &Engine{
		resolver: cfg.resolver,
		logger:   cfg.logger,
		metrics:  cfg.metrics,
		spans:    cfg.spans,
		callback: cfg.callback,
		closers:  cfg.closers,
	}

	switch {
	case cfg.workerEx != nil:
		e.workers = cfg.workerEx
	case cfg.workers > 0:
		e.pool = NewPool(cfg.workers, cfg.queueSize)
		e.workers = e.pool
	default:
		e.workers = Go()
	}

	if e.callback == nil {
		e.callback = Direct()
	}

	return e
}

// Evaluate parses and evaluates a single condition expression against
// the subject. Returns the boolean result, or a *condition.ParseError
// if the expression is malformed.
//
// The expression is re-parsed and operands are re-resolved on every
// call, so results track the subject's current state.
func (e *Engine) Evaluate(ctx context.Context, subject any, expression string) (bool, error) {
	return e.evaluateOne(ctx, newEvalID(), subject, expression)
}

// EvaluateAll evaluates lines as a conjunction: every line must hold.
// Evaluation is sequential and short-circuits on the first false
// line. An empty or nil slice is vacuously true.
//
// A malformed line yields (false, err) with the *condition.ParseError
// for diagnostics; lines after it are not evaluated.
func (e *Engine) EvaluateAll(ctx context.Context, subject any, lines []string) (bool, error) {
	evalID := newEvalID()
	start := time.Now()
	ctx, span := e.spans.StartBatchSpan(ctx, evalID, len(lines))

	for i, line := range lines {
		result, err := e.evaluateOne(ctx, evalID, subject, line)
		e.spans.AddSpanEvent(ctx, "line_evaluated",
			attribute.Int("line", i),
			attribute.Bool("result", err == nil && result),
		)
		if err != nil {
			e.finishBatch(ctx, span, evalID, len(lines), false, start, err)
			return false, err
		}
		if !result {
			e.finishBatch(ctx, span, evalID, len(lines), false, start, nil)
			return false, nil
		}
	}

	e.finishBatch(ctx, span, evalID, len(lines), true, start, nil)
	return true, nil
}

// evaluateOne runs one expression under the given evaluation ID.
func (e *Engine) evaluateOne(ctx context.Context, evalID string, subject any, expression string) (bool, error) {
	start := time.Now()
	ctx, span := e.spans.StartEvalSpan(ctx, evalID, expression)
	observability.LogEvalStart(e.logger, evalID, expression)

	node, err := condition.Parse(expression)
	if err != nil {
		e.metrics.RecordParseFailure(ctx)
		observability.LogParseFailure(e.logger, evalID, expression, err)
		e.spans.EndSpanWithError(span, err)
		return false, err
	}

	result := condition.Eval(ctx, node, subject, e.resolver)

	elapsed := time.Since(start)
	e.metrics.RecordEvaluation(ctx, result, elapsed)
	observability.LogEvalResult(e.logger, evalID, expression, result, durationMs(elapsed))
	e.spans.EndSpanWithError(span, nil)
	return result, nil
}

// finishBatch records batch metrics, logs, and ends the batch span.
func (e *Engine) finishBatch(ctx context.Context, span trace.Span, evalID string, lines int, result bool, start time.Time, err error) {
	elapsed := time.Since(start)
	e.metrics.RecordBatch(ctx, lines, result, elapsed)
	observability.LogBatchResult(e.logger, evalID, lines, result, durationMs(elapsed))
	e.spans.EndSpanWithError(span, err)
}

func newEvalID() string {
	return "eval-" + uuid.New().String()[:8]
}

func durationMs(d time.Duration) float64 {
	return float64(d) / float64(time.Millisecond)
}

// Close releases the engine-owned worker pool and closes any
// resources the engine owns, such as a store opened by FromConfig.
// Safe to call more than once.
func (e *Engine) Close() error {
	e.closeOnce.Do(func() {
		if e.pool != nil {
			e.pool.Close()
		}
		for _, c := range e.closers {
			if err := c.Close(); err != nil && e.closeErr == nil {
				e.closeErr = err
			}
		}
	})
	return e.closeErr
}
