package condkit

import (
	"context"
	"sync"
)

// Future is the handle for an asynchronous evaluation result.
//
// A Future transitions from pending to fulfilled exactly once. Async
// evaluation never fails: errors and panics on the worker collapse to
// a false result, so the Future carries only a bool.
type Future struct {
	mu        sync.Mutex
	done      chan struct{}
	value     bool
	fulfilled bool
	callbacks []func(bool)
	callback  Executor
}

func newFuture(callback Executor) *Future {
	if callback == nil {
		callback = Direct()
	}
	return &Future{
		done:     make(chan struct{}),
		callback: callback,
	}
}

// complete fulfills the future. Calls after the first are ignored.
// Registered callbacks are submitted to the callback Executor in
// registration order.
func (f *Future) complete(result bool) {
	f.mu.Lock()
	if f.fulfilled {
		f.mu.Unlock()
		return
	}
	f.fulfilled = true
	f.value = result
	callbacks := f.callbacks
	f.callbacks = nil
	close(f.done)
	f.mu.Unlock()

	for _, cb := range callbacks {
		cb := cb
		f.callback.Submit(func() { cb(result) })
	}
}

// Done returns a channel that is closed when the result is available.
func (f *Future) Done() <-chan struct{} {
	return f.done
}

// Wait blocks until the result is available or ctx is cancelled.
// On cancellation it returns false and the context error.
func (f *Future) Wait(ctx context.Context) (bool, error) {
	select {
	case <-f.done:
		f.mu.Lock()
		v := f.value
		f.mu.Unlock()
		return v, nil
	case <-ctx.Done():
		return false, ctx.Err()
	}
}

// Then registers fn to be invoked with the result on the callback
// Executor. If the future is already fulfilled, fn is submitted
// immediately. Returns the receiver for chaining.
func (f *Future) Then(fn func(result bool)) *Future {
	f.mu.Lock()
	if f.fulfilled {
		v := f.value
		f.mu.Unlock()
		f.callback.Submit(func() { fn(v) })
		return f
	}
	f.callbacks = append(f.callbacks, fn)
	f.mu.Unlock()
	return f
}
