package gridlock

import (
	"context"
	"sync"

	"github.com/roach88/gridlock/internal/pool"
)

// SolveBatch solves independent puzzles concurrently on a worker pool and
// returns outcomes in input order. Each puzzle gets its own private state,
// so the solves need no coordination; a single puzzle's search remains
// sequential.
//
// workers ≤ 0 uses one worker per CPU core. Options apply to every solve
// in the batch.
func SolveBatch(ctx context.Context, puzzles [][][]int, workers int, opts ...Option) []Outcome {
	p := pool.New(workers)
	defer p.Shutdown()

	outcomes := make([]Outcome, len(puzzles))
	var wg sync.WaitGroup

	for i := range puzzles {
		i := i
		wg.Add(1)
		err := p.Submit(ctx, func() {
			defer wg.Done()
			outcomes[i] = Solve(ctx, puzzles[i], opts...)
		})
		if err != nil {
			outcomes[i] = Outcome{Status: StatusAborted, Err: err}
			wg.Done()
		}
	}

	wg.Wait()
	return outcomes
}
