// Package parallel runs indexed jobs on a fixed set of goroutines.
package parallel

import (
	"context"
	"runtime"
	"sync"
	"sync/atomic"
)

// WorkerPool is a pool of goroutines fed from one shared queue.
//
// Thread safety: WorkerPool is safe for concurrent use.
type WorkerPool struct {
	workers int
	queue   chan func()
	done    chan struct{}
	wg      sync.WaitGroup
	running atomic.Bool

	// mu is held for reading while Run queues jobs, so Close never
	// strands a job between the queue and the workers.
	mu sync.RWMutex
}

// NewWorkerPool starts a pool with the given number of workers.
// If workers is 0 or negative, GOMAXPROCS is used.
func NewWorkerPool(workers int) *WorkerPool {
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	p := &WorkerPool{
		workers: workers,
		queue:   make(chan func(), max(8, workers*4)),
		done:    make(chan struct{}),
	}
	p.running.Store(true)

	p.wg.Add(workers)
	for range workers {
		go p.worker()
	}
	return p
}

func (p *WorkerPool) worker() {
	defer p.wg.Done()
	for {
		select {
		case <-p.done:
			p.drain()
			return
		case work := <-p.queue:
			work()
		}
	}
}

// drain runs the jobs still queued when the pool closes.
func (p *WorkerPool) drain() {
	for {
		select {
		case work := <-p.queue:
			work()
		default:
			return
		}
	}
}

// Run calls fn(i) for every i in [0, n) on the pool's workers and waits for
// all calls to finish. It returns the error of the lowest index that
// failed. Once ctx is done, or a call has failed, jobs that have not
// started are skipped; if nothing failed, ctx's error is returned.
//
// Run on a closed pool returns context.Canceled without calling fn.
// Run must not be called from inside a job of the same pool.
func (p *WorkerPool) Run(ctx context.Context, n int, fn func(i int) error) error {
	if n <= 0 {
		return nil
	}
	p.mu.RLock()
	if !p.running.Load() {
		p.mu.RUnlock()
		return context.Canceled
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	errs := make([]error, n)
	var pending sync.WaitGroup
	pending.Add(n)

	for i := range n {
		job := func() {
			defer pending.Done()
			if ctx.Err() != nil {
				return
			}
			if err := fn(i); err != nil {
				errs[i] = err
				cancel()
			}
		}

		p.queue <- job
	}
	p.mu.RUnlock()
	pending.Wait()

	for _, err := range errs {
		if err != nil {
			return err
		}
	}
	return context.Cause(ctx)
}

// Close waits for queued jobs to finish and stops the workers.
// Close is safe to call multiple times.
func (p *WorkerPool) Close() {
	p.mu.Lock()
	if !p.running.CompareAndSwap(true, false) {
		p.mu.Unlock()
		return
	}
	close(p.done)
	p.mu.Unlock()
	p.wg.Wait()
}

// Workers returns the number of workers in the pool.
func (p *WorkerPool) Workers() int {
	return p.workers
}

// IsRunning reports whether the pool still accepts work.
func (p *WorkerPool) IsRunning() bool {
	return p.running.Load()
}
