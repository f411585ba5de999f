package parallel

import (
	"runtime"
	"sync"
	"sync/atomic"
)

// Pool is a persistent worker pool reused across parallel operations.
// Workers are spawned once at construction and persist until Close.
// A nil *Pool is valid everywhere one is accepted: calls degrade to
// sequential execution.
type Pool struct {
	workers   int
	workC     chan task
	closeOnce sync.Once
	closed    atomic.Bool
}

// task pairs a unit of work with the barrier its completion signals.
type task struct {
	fn      func()
	barrier *sync.WaitGroup
}

// NewPool creates a pool with the given number of workers; n <= 0 uses
// runtime.GOMAXPROCS(0). Workers are spawned immediately.
func NewPool(n int) *Pool {
	if n <= 0 {
		n = runtime.GOMAXPROCS(0)
	}
	p := &Pool{
		workers: n,
		workC:   make(chan task, n*2),
	}
	for i := 0; i < n; i++ {
		go p.worker()
	}

	return p
}

// worker is the loop run by each persistent goroutine.
func (p *Pool) worker() {
	for t := range p.workC {
		t.fn()
		t.barrier.Done()
	}
}

// Workers returns the number of workers, or 0 for a nil pool.
func (p *Pool) Workers() int {
	if p == nil {
		return 0
	}

	return p.workers
}

// Close shuts the pool down after pending work completes. Safe to call
// multiple times; a closed pool still accepts ParallelFor calls and runs
// them sequentially.
func (p *Pool) Close() {
	if p == nil {
		return
	}
	p.closeOnce.Do(func() {
		p.closed.Store(true)
		close(p.workC)
	})
}

// ParallelFor partitions [0, n) into contiguous chunks and executes
// fn(start, end) for each chunk on the pool, blocking until all chunks
// complete. Chunks are disjoint, so fn may write to per-index output
// without locking. Runs sequentially when the pool is nil, closed, or n
// is too small to split.
func (p *Pool) ParallelFor(n int, fn func(start, end int)) {
	if n <= 0 {
		return
	}
	if p == nil || p.closed.Load() {
		fn(0, n)
		return
	}

	workers := p.workers
	if workers > n {
		workers = n
	}
	if workers == 1 {
		fn(0, n)
		return
	}

	chunk := (n + workers - 1) / workers

	var wg sync.WaitGroup
	for start := 0; start < n; start += chunk {
		end := start + chunk
		if end > n {
			end = n
		}
		wg.Add(1)
		s, e := start, end
		p.workC <- task{fn: func() { fn(s, e) }, barrier: &wg}
	}
	wg.Wait()
}
