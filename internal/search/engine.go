package search

import (
	"context"
	"errors"
	"io"
	"log/slog"

	"github.com/roach88/gridlock/internal/cells"
	"github.com/roach88/gridlock/internal/propagate"
)

// Stats describes the work one engine run performed.
type Stats struct {
	// Nodes is the number of search nodes visited, including the root.
	Nodes int

	// Guesses is the number of speculative trial assignments. Zero means
	// propagation alone solved the puzzle.
	Guesses int

	// Propagated is the number of cells filled by propagation (naked and
	// hidden singles) rather than by guessing.
	Propagated int

	// MaxDepth is the deepest recursion level reached.
	MaxDepth int
}

// Engine drives one puzzle from seeded store to terminal outcome.
//
// An Engine owns its store for the duration of one run and is not safe for
// concurrent use; independent puzzles get independent engines and need no
// coordination.
type Engine struct {
	store    *cells.Store
	logger   *slog.Logger
	maxNodes int
	stats    Stats
}

// Option configures an Engine.
type Option func(*Engine)

// WithLogger sets the structured logger. The default discards everything
// so the engine is silent inside library callers.
func WithLogger(logger *slog.Logger) Option {
	return func(e *Engine) {
		if logger != nil {
			e.logger = logger
		}
	}
}

// WithMaxNodes bounds how many search nodes a run may visit. Zero (the
// default) means unbounded. Exceeding the budget aborts the run with
// NodesExceededError.
func WithMaxNodes(limit int) Option {
	return func(e *Engine) {
		e.maxNodes = limit
	}
}

// New creates an engine over a freshly built store. The store must not
// have been seeded or mutated yet.
func New(store *cells.Store, opts ...Option) *Engine {
	e := &Engine{
		store:  store,
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Run seeds the store from its given cells, propagates to a fixed point,
// and searches the remaining choices depth-first.
//
// Returns nil when the store holds a complete solution, ErrUnsatisfiable
// when every branch fails, NodesExceededError when the node budget runs
// out, or the context error on cancellation.
func (e *Engine) Run(ctx context.Context) error {
	if err := e.store.Seed(); err != nil {
		if cells.IsContradiction(err) {
			e.logger.Debug("givens are contradictory", "error", err)
			return ErrUnsatisfiable
		}
		return err
	}

	res, err := propagate.Run(e.store)
	e.stats.Propagated += res.Assignments
	if err != nil {
		if cells.IsContradiction(err) {
			e.logger.Debug("initial propagation hit a contradiction", "error", err)
			return ErrUnsatisfiable
		}
		return err
	}

	e.logger.Debug("initial propagation done",
		"assignments", res.Assignments,
		"passes", res.Passes,
		"unassigned", e.store.Unassigned(),
	)

	err = e.search(ctx, 1)
	if errors.Is(err, errExhausted) {
		return ErrUnsatisfiable
	}
	return err
}

// Stats returns counters for the run so far.
func (e *Engine) Stats() Stats {
	return e.stats
}

// search is one level of depth-first backtracking with forward checking.
//
// Error contract: nil means solved (success propagates up immediately, no
// further candidates are tried); errExhausted means this level failed and
// the parent should resume its candidate loop; anything else aborts the
// whole search (cancellation, node budget).
func (e *Engine) search(ctx context.Context, depth int) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	e.stats.Nodes++
	if e.maxNodes > 0 && e.stats.Nodes > e.maxNodes {
		return &NodesExceededError{Nodes: e.stats.Nodes, Limit: e.maxNodes}
	}
	if depth > e.stats.MaxDepth {
		e.stats.MaxDepth = depth
	}

	row, col, found := pick(e.store)
	if !found {
		return nil // every cell assigned
	}
	if e.store.Count(row, col) == 0 {
		// Should not happen in a consistent state; backtrack defensively.
		return errExhausted
	}

	for _, value := range e.store.Candidates(row, col) {
		mark := e.store.Mark()
		e.stats.Guesses++

		err := e.store.Assign(row, col, value)
		if err == nil {
			var res propagate.Result
			res, err = propagate.Run(e.store)
			e.stats.Propagated += res.Assignments
		}
		if err == nil {
			err = e.search(ctx, depth+1)
		}
		if err == nil {
			return nil
		}
		if !cells.IsContradiction(err) && !errors.Is(err, errExhausted) {
			return err
		}

		e.store.Rewind(mark)
	}

	return errExhausted
}
