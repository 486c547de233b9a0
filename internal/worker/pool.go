// Package worker analyses batches of positions in parallel.
package worker

import (
	"context"
	"sync"
	"sync/atomic"
)

// ProcessFunc is the function signature for processing a work item.
type ProcessFunc func(item WorkItem) ProcessResult

// Pool runs a ProcessFunc over submitted items on a fixed set of goroutines.
// Results arrive in completion order; Index ties them back to their input.
type Pool struct {
	numWorkers  int
	bufferSize  int
	work        chan WorkItem
	results     chan ProcessResult
	processFunc ProcessFunc
	wg          sync.WaitGroup
	stopped     atomic.Bool
}

// PoolOption configures a Pool.
type PoolOption func(*Pool)

// WithWorkers sets the number of worker goroutines.
func WithWorkers(n int) PoolOption {
	return func(p *Pool) {
		if n >= 1 {
			p.numWorkers = n
		}
	}
}

// WithBufferSize sets the channel buffer size.
func WithBufferSize(size int) PoolOption {
	return func(p *Pool) {
		if size >= 1 {
			p.bufferSize = size
		}
	}
}

// NewPool creates a pool. Defaults: 1 worker, buffer of twice the workers.
func NewPool(processFunc ProcessFunc, opts ...PoolOption) *Pool {
	p := &Pool{
		numWorkers:  1,
		processFunc: processFunc,
	}
	for _, opt := range opts {
		opt(p)
	}
	if p.bufferSize == 0 {
		p.bufferSize = 2 * p.numWorkers
	}
	p.work = make(chan WorkItem, p.bufferSize)
	p.results = make(chan ProcessResult, p.bufferSize)
	return p
}

// Start starts the worker goroutines.
func (p *Pool) Start() {
	for i := 0; i < p.numWorkers; i++ {
		p.wg.Add(1)
		go p.worker()
	}
}

func (p *Pool) worker() {
	defer p.wg.Done()
	for item := range p.work {
		if p.stopped.Load() {
			continue // Drain without processing
		}
		p.results <- p.processFunc(item)
	}
}

// Submit queues an item, blocking while the buffer is full.
func (p *Pool) Submit(item WorkItem) {
	p.work <- item
}

// TrySubmit queues an item without blocking. It returns false if the buffer
// is full or the pool has been stopped.
func (p *Pool) TrySubmit(item WorkItem) bool {
	if p.stopped.Load() {
		return false
	}
	select {
	case p.work <- item:
		return true
	default:
		return false
	}
}

// Stop makes workers discard queued items instead of processing them.
func (p *Pool) Stop() {
	p.stopped.Store(true)
}

// IsStopped reports whether Stop has been called.
func (p *Pool) IsStopped() bool {
	return p.stopped.Load()
}

// Close closes the work channel, waits for the workers and then closes the
// result channel. Results must be drained concurrently or Close may block.
func (p *Pool) Close() {
	close(p.work)
	p.wg.Wait()
	close(p.results)
}

// Results returns the result channel.
func (p *Pool) Results() <-chan ProcessResult {
	return p.results
}

// NumWorkers returns the number of workers in the pool.
func (p *Pool) NumWorkers() int {
	return p.numWorkers
}

// Run processes items and returns their results in input order. When ctx is
// cancelled the remaining items are skipped and reported with ctx.Err().
func (p *Pool) Run(ctx context.Context, items []WorkItem) []ProcessResult {
	out := make([]ProcessResult, len(items))
	done := make([]bool, len(items))

	p.Start()
	go func() {
		defer p.Close()
		for _, item := range items {
			select {
			case p.work <- item:
			case <-ctx.Done():
				p.Stop()
				return
			}
		}
	}()

	for res := range p.results {
		if res.Index >= 0 && res.Index < len(out) {
			out[res.Index] = res
			done[res.Index] = true
		}
	}

	for i, item := range items {
		if !done[i] {
			out[i] = ProcessResult{Index: i, FEN: item.FEN, Err: ctx.Err()}
		}
	}
	return out
}
