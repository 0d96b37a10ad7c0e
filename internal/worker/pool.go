// Package worker provides a small fixed-size worker pool. Jobs are processed
// concurrently and results come back on a channel in completion order; each
// job carries its index so callers can restore submission order.
package worker

import (
	"sync"
	"sync/atomic"
)

// Job is one unit of work.
type Job[T any] struct {
	Index int
	Input T
}

// Result is the outcome of one Job.
type Result[R any] struct {
	Index  int
	Output R
}

// Func processes a single job input.
type Func[T, R any] func(T) R

// Pool manages a fixed set of worker goroutines.
type Pool[T, R any] struct {
	numWorkers int
	bufferSize int
	work       chan Job[T]
	results    chan Result[R]
	fn         Func[T, R]
	wg         sync.WaitGroup
	stopFlag   int32 // Atomic flag for early termination
}

// Option configures a Pool.
type Option func(*options)

type options struct {
	workers int
	buffer  int
}

// WithWorkers sets the number of worker goroutines.
func WithWorkers(n int) Option {
	return func(o *options) {
		if n >= 1 {
			o.workers = n
		}
	}
}

// WithBufferSize sets the channel buffer size.
func WithBufferSize(size int) Option {
	return func(o *options) {
		if size >= 1 {
			o.buffer = size
		}
	}
}

// New creates a pool running fn. Defaults: 1 worker, buffer size of 16.
func New[T, R any](fn Func[T, R], opts ...Option) *Pool[T, R] {
	o := options{workers: 1, buffer: 16}
	for _, opt := range opts {
		opt(&o)
	}
	return &Pool[T, R]{
		numWorkers: o.workers,
		bufferSize: o.buffer,
		work:       make(chan Job[T], o.buffer),
		results:    make(chan Result[R], o.buffer),
		fn:         fn,
	}
}

// Start starts the worker goroutines.
func (p *Pool[T, R]) Start() {
	for i := 0; i < p.numWorkers; i++ {
		p.wg.Add(1)
		go p.worker()
	}
}

func (p *Pool[T, R]) worker() {
	defer p.wg.Done()
	for job := range p.work {
		if p.IsStopped() {
			continue // Drain channel without processing
		}
		p.results <- Result[R]{Index: job.Index, Output: p.fn(job.Input)}
	}
}

// Submit queues a job. It blocks while the work buffer is full.
func (p *Pool[T, R]) Submit(job Job[T]) {
	p.work <- job
}

// Stop makes workers skip any job they have not started yet.
func (p *Pool[T, R]) Stop() {
	atomic.StoreInt32(&p.stopFlag, 1)
}

// IsStopped returns true if the pool has been stopped.
func (p *Pool[T, R]) IsStopped() bool {
	return atomic.LoadInt32(&p.stopFlag) != 0
}

// Close closes the work channel, waits for the workers and then closes the
// result channel.
func (p *Pool[T, R]) Close() {
	close(p.work)
	p.wg.Wait()
	close(p.results)
}

// Results returns the result channel.
func (p *Pool[T, R]) Results() <-chan Result[R] {
	return p.results
}

// NumWorkers returns the number of workers in the pool.
func (p *Pool[T, R]) NumWorkers() int {
	return p.numWorkers
}

// Map runs fn over inputs on n workers and returns the outputs in input
// order.
func Map[T, R any](inputs []T, n int, fn Func[T, R]) []R {
	pool := New(fn, WithWorkers(n), WithBufferSize(len(inputs)))
	pool.Start()
	for i, in := range inputs {
		pool.Submit(Job[T]{Index: i, Input: in})
	}
	go pool.Close()

	out := make([]R, len(inputs))
	for r := range pool.Results() {
		out[r.Index] = r.Output
	}
	return out
}
