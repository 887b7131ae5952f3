package condkit

import (
	"context"
	"runtime/debug"

	"github.com/condkit/condkit/pkg/condkit/observability"
)

// EvaluateAsync evaluates the expression without blocking the caller.
// Work is submitted to the engine's worker Executor and the result is
// delivered through the returned Future.
//
// Async evaluation never fails: parse errors collapse to false (with
// a logged warning), and a panic on the worker is recovered, logged
// with its stack, and collapses to false. The Future always
// completes.
func (e *Engine) EvaluateAsync(ctx context.Context, subject any, expression string) *Future {
	f := newFuture(e.callback)
	e.workers.Submit(func() {
		f.complete(e.evaluateSafe(ctx, subject, expression))
	})
	return f
}

// EvaluateAllAsync evaluates lines as a conjunction without blocking
// the caller. The whole batch is one worker task: lines run strictly
// in order with no parallel fan-out even on a multi-worker pool, and
// the fold short-circuits on the first false or malformed line. A
// batch never resubmits to the pool from inside its own task, so a
// bounded pool cannot wedge on its own continuations. Empty input
// completes with true.
func (e *Engine) EvaluateAllAsync(ctx context.Context, subject any, lines []string) *Future {
	f := newFuture(e.callback)
	if len(lines) == 0 {
		f.complete(true)
		return f
	}
	e.workers.Submit(func() {
		for _, line := range lines {
			if !e.evaluateSafe(ctx, subject, line) {
				f.complete(false)
				return
			}
		}
		f.complete(true)
	})
	return f
}

// evaluateSafe evaluates one expression, degrading every failure mode
// to false. Runs on a worker goroutine.
func (e *Engine) evaluateSafe(ctx context.Context, subject any, expression string) (result bool) {
	defer func() {
		if r := recover(); r != nil {
			observability.LogAsyncPanic(e.logger, expression, r, string(debug.Stack()))
			result = false
		}
	}()

	res, err := e.Evaluate(ctx, subject, expression)
	if err != nil {
		// Already logged as a parse failure by Evaluate.
		return false
	}
	return res
}
