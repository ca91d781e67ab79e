package gridlock

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"time"

	"github.com/roach88/gridlock/internal/cells"
	"github.com/roach88/gridlock/internal/grid"
	"github.com/roach88/gridlock/internal/search"
)

// Status is the terminal classification of a solve attempt.
type Status int

const (
	// StatusSolved means the grid was completed; Outcome.Grid holds the
	// solution.
	StatusSolved Status = iota + 1

	// StatusUnsatisfiable means the search exhausted every branch: the
	// puzzle has no completion. A valid, expected result, not a failure.
	StatusUnsatisfiable

	// StatusInvalid means the input failed structural validation before
	// any search ran; Outcome.Err carries the ValidationError.
	StatusInvalid

	// StatusAborted means the caller's context was cancelled or the node
	// budget ran out before a definitive answer; Outcome.Err carries the
	// cause. Proves nothing about the puzzle.
	StatusAborted
)

// String returns the status name for logs.
func (s Status) String() string {
	switch s {
	case StatusSolved:
		return "solved"
	case StatusUnsatisfiable:
		return "unsatisfiable"
	case StatusInvalid:
		return "invalid"
	case StatusAborted:
		return "aborted"
	default:
		return "unknown"
	}
}

// Stats describes the work a solve performed.
type Stats struct {
	// Nodes is the number of search nodes visited.
	Nodes int

	// Guesses is the number of speculative assignments; zero means
	// propagation alone solved the puzzle.
	Guesses int

	// Propagated is the number of cells filled by inference rather than
	// guessing.
	Propagated int

	// MaxDepth is the deepest recursion level the search reached.
	MaxDepth int
}

// Outcome is the result of one Solve call.
type Outcome struct {
	// Status classifies the result.
	Status Status

	// Grid is the completed puzzle when Status is StatusSolved, nil
	// otherwise. Always freshly allocated; never aliases the input.
	Grid [][]int

	// Elapsed is the wall-clock duration of the whole call, including
	// validation.
	Elapsed time.Duration

	// Stats counts the engine's work.
	Stats Stats

	// Token is the run correlation token stamped on this solve's logs.
	Token string

	// Err holds the validation error for StatusInvalid or the
	// cancellation/budget cause for StatusAborted; nil otherwise.
	Err error
}

type config struct {
	logger   *slog.Logger
	tokens   TokenGenerator
	maxNodes int
}

// Option configures a solve run.
type Option func(*config)

// WithLogger sets the structured logger for the run. The default discards
// everything, so the library is silent unless a caller opts in.
func WithLogger(logger *slog.Logger) Option {
	return func(c *config) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// WithMaxNodes bounds how many search nodes the run may visit before
// giving up with StatusAborted. Zero (the default) means unbounded.
func WithMaxNodes(limit int) Option {
	return func(c *config) {
		c.maxNodes = limit
	}
}

// WithTokenGenerator overrides the run token source. Tests use
// NewFixedGenerator for deterministic log and golden output.
func WithTokenGenerator(gen TokenGenerator) Option {
	return func(c *config) {
		if gen != nil {
			c.tokens = gen
		}
	}
}

// Solve validates the puzzle, then runs propagation and backtracking
// search on a private copy until a terminal outcome is reached. The
// caller's matrix is never mutated.
//
// The call blocks until done; cancellation is cooperative through ctx,
// checked once per search node.
func Solve(ctx context.Context, puzzle [][]int, opts ...Option) Outcome {
	return solve(ctx, puzzle, false, opts)
}

// SolveInPlace behaves like Solve but, on success, additionally writes the
// solution back into the caller's matrix. On any other outcome the input
// is left untouched.
func SolveInPlace(ctx context.Context, puzzle [][]int, opts ...Option) Outcome {
	return solve(ctx, puzzle, true, opts)
}

func solve(ctx context.Context, puzzle [][]int, inPlace bool, opts []Option) Outcome {
	start := time.Now()

	cfg := config{
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
		tokens: UUIDv7Generator{},
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	token := cfg.tokens.Generate()
	logger := cfg.logger.With("solve", token)

	working := grid.FromRows(puzzle)
	if err := grid.Validate(working); err != nil {
		logger.Info("input rejected", "error", err, "elapsed", time.Since(start))
		return Outcome{
			Status:  StatusInvalid,
			Elapsed: time.Since(start),
			Token:   token,
			Err:     err,
		}
	}

	store, err := cells.NewStore(working)
	if err != nil {
		// Unreachable after Validate; surfaced as invalid input anyway.
		return Outcome{
			Status:  StatusInvalid,
			Elapsed: time.Since(start),
			Token:   token,
			Err:     err,
		}
	}

	engine := search.New(store,
		search.WithLogger(logger),
		search.WithMaxNodes(cfg.maxNodes),
	)

	logger.Info("solve starting", "size", working.Size(), "unassigned", store.Unassigned())

	runErr := engine.Run(ctx)
	es := engine.Stats()
	out := Outcome{
		Elapsed: time.Since(start),
		Token:   token,
		Stats: Stats{
			Nodes:      es.Nodes,
			Guesses:    es.Guesses,
			Propagated: es.Propagated,
			MaxDepth:   es.MaxDepth,
		},
	}

	switch {
	case runErr == nil:
		out.Status = StatusSolved
		out.Grid = store.Grid()
		if inPlace {
			store.WriteTo(puzzle)
		}

	case errors.Is(runErr, search.ErrUnsatisfiable):
		out.Status = StatusUnsatisfiable

	default:
		out.Status = StatusAborted
		out.Err = runErr
	}

	logger.Info("solve finished",
		"status", out.Status,
		"elapsed", out.Elapsed,
		"nodes", out.Stats.Nodes,
		"guesses", out.Stats.Guesses,
		"propagated", out.Stats.Propagated,
	)

	return out
}
