// Package pool provides a bounded worker pool for running independent
// solves concurrently.
//
// A single puzzle's search is strictly sequential, but separate puzzles
// share no state, so batch callers can fan them out across workers with no
// coordination beyond this pool.
package pool

import (
	"context"
	"errors"
	"runtime"
	"sync"
)

// ErrShutdown is returned by Submit after the pool has been shut down.
var ErrShutdown = errors.New("pool is shut down")

// Pool runs submitted tasks on a fixed number of worker goroutines.
type Pool struct {
	tasks    chan func()
	workers  sync.WaitGroup
	shutdown chan struct{}
	once     sync.Once
}

// New creates a pool with the given number of workers. Zero or negative
// defaults to the number of CPU cores.
func New(workers int) *Pool {
	if workers <= 0 {
		workers = runtime.NumCPU()
	}

	p := &Pool{
		tasks:    make(chan func(), workers*2),
		shutdown: make(chan struct{}),
	}

	for i := 0; i < workers; i++ {
		p.workers.Add(1)
		go p.worker()
	}

	return p
}

func (p *Pool) worker() {
	defer p.workers.Done()

	for {
		select {
		case task := <-p.tasks:
			if task != nil {
				task()
			}
		case <-p.shutdown:
			return
		}
	}
}

// Submit hands a task to the pool, blocking while all workers are busy and
// the task buffer is full. Returns the context error on cancellation or
// ErrShutdown after Shutdown.
func (p *Pool) Submit(ctx context.Context, task func()) error {
	// Checked before the send: the task buffer may still have free slots
	// after shutdown, and a send that lands there would never be drained.
	select {
	case <-p.shutdown:
		return ErrShutdown
	default:
	}

	select {
	case p.tasks <- task:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	case <-p.shutdown:
		return ErrShutdown
	}
}

// Shutdown stops the workers and waits for in-flight tasks to finish.
// Tasks still buffered but not yet picked up are dropped; callers that
// need every task to run must wait for completion before shutting down.
func (p *Pool) Shutdown() {
	p.once.Do(func() {
		close(p.shutdown)
		p.workers.Wait()
	})
}
