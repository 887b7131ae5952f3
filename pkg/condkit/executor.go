package condkit

import "sync"

// Executor schedules units of work. Async evaluation work runs on the
// engine's worker Executor; Future callbacks run on the callback
// Executor, so callers can pin completion handling to a dedicated
// goroutine when ordering matters.
type Executor interface {
	// Submit schedules fn for execution. Implementations decide
	// whether Submit blocks, queues, or runs fn inline.
	Submit(fn func())
}

// ExecutorFunc adapts a function to the Executor interface.
type ExecutorFunc func(fn func())

// Submit calls f(fn).
func (f ExecutorFunc) Submit(fn func()) {
	f(fn)
}

// Direct returns an Executor that runs each task inline on the
// caller's goroutine.
func Direct() Executor {
	return ExecutorFunc(func(fn func()) {
		fn()
	})
}

// Go returns an Executor that runs each task on its own goroutine.
func Go() Executor {
	return ExecutorFunc(func(fn func()) {
		go fn()
	})
}

// Pool is a fixed-size worker pool Executor. Tasks are executed in
// submission order by a bounded set of goroutines.
type Pool struct {
	tasks     chan func()
	wg        sync.WaitGroup
	closeOnce sync.Once
}

// NewPool creates a pool with the given number of worker goroutines
// and task queue capacity. workers is clamped to at least 1; queue is
// clamped to at least 0 (unbuffered).
func NewPool(workers, queue int) *Pool {
	if workers < 1 {
		workers = 1
	}
	if queue < 0 {
		queue = 0
	}

	p := &Pool{tasks: make(chan func(), queue)}
	p.wg.Add(workers)
	for i := 0; i < workers; i++ {
		go func() {
			defer p.wg.Done()
			for fn := range p.tasks {
				fn()
			}
		}()
	}
	return p
}

// NewSerial creates a single-worker pool. Tasks run one at a time in
// FIFO order, a stand-in for a designated callback thread.
func NewSerial(queue int) *Pool {
	return NewPool(1, queue)
}

// Submit enqueues fn. Blocks while the queue is full.
// Must not be called after Close.
func (p *Pool) Submit(fn func()) {
	p.tasks <- fn
}

// Close stops the pool after draining queued tasks. Blocks until all
// workers exit. Safe to call more than once.
func (p *Pool) Close() {
	p.closeOnce.Do(func() {
		close(p.tasks)
	})
	p.wg.Wait()
}
