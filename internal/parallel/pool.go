// Package parallel provides the fixed worker pool and row-band
// partitioning used by the rasterizer and post-processor.
//
// The canvas is split into contiguous horizontal bands, one task per
// band. Bands never overlap, so workers need no synchronization beyond
// the barrier at the end of each phase. This is a static work split,
// not a scheduler: there is no work stealing and no task queue beyond
// the submission channel.
package parallel

import (
	"runtime"
	"sync"
)

// Pool is a fixed-size pool of worker goroutines.
//
// Work is submitted in batches via ForEach, which blocks until every
// task in the batch has completed. The pool is safe for use from a
// single submitting goroutine at a time; concurrent ForEach calls from
// multiple goroutines would interleave tasks and are not supported.
type Pool struct {
	workers int
	tasks   chan task

	// wg waits for worker goroutines to exit on Close.
	wg sync.WaitGroup
}

type task struct {
	fn   func(int)
	idx  int
	done *sync.WaitGroup
}

// NewPool creates a pool with the given number of workers.
// If workers is 0 or negative, GOMAXPROCS is used.
// Workers start immediately and wait for work.
func NewPool(workers int) *Pool {
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	p := &Pool{
		workers: workers,
		tasks:   make(chan task, workers),
	}

	p.wg.Add(workers)
	for i := 0; i < workers; i++ {
		go p.worker()
	}

	return p
}

func (p *Pool) worker() {
	defer p.wg.Done()
	for t := range p.tasks {
		t.fn(t.idx)
		t.done.Done()
	}
}

// Workers returns the number of worker goroutines in the pool.
func (p *Pool) Workers() int {
	return p.workers
}

// ForEach runs fn(i) for every i in [0, n) on the pool's workers and
// blocks until all n calls have returned. The return acts as the
// barrier between pipeline phases: a caller that issues a draw phase
// and then a resolve phase is guaranteed the draw phase is fully
// complete before resolve work begins.
func (p *Pool) ForEach(n int, fn func(i int)) {
	if n <= 0 {
		return
	}

	var done sync.WaitGroup
	done.Add(n)
	for i := 0; i < n; i++ {
		p.tasks <- task{fn: fn, idx: i, done: &done}
	}
	done.Wait()
}

// Close shuts the pool down and waits for all workers to exit.
// ForEach must not be called after Close.
func (p *Pool) Close() {
	close(p.tasks)
	p.wg.Wait()
}
