package harness

import (
	"context"
	"fmt"

	"github.com/roach88/gridlock"
	"github.com/roach88/gridlock/internal/grid"
)

// Result holds a scenario run's outcome and any expectation failures.
type Result struct {
	// Scenario is the scenario name.
	Scenario string

	// Outcome is the solver's raw outcome.
	Outcome gridlock.Outcome

	// Failures lists every violated expectation, empty on pass.
	Failures []string
}

// Passed reports whether every expectation held.
func (r *Result) Passed() bool {
	return len(r.Failures) == 0
}

func (r *Result) failf(format string, args ...any) {
	r.Failures = append(r.Failures, fmt.Sprintf(format, args...))
}

// Run executes a scenario through the public Solve entry point with a
// deterministic run token, then evaluates its expectations.
func Run(sc *Scenario) *Result {
	out := gridlock.Solve(context.Background(), sc.Puzzle,
		gridlock.WithTokenGenerator(gridlock.NewFixedGenerator("golden-"+sc.Name)),
		gridlock.WithMaxNodes(sc.MaxNodes),
	)

	res := &Result{Scenario: sc.Name, Outcome: out}

	if got := out.Status.String(); got != sc.Expect.Status {
		res.failf("status: got %q, want %q", got, sc.Expect.Status)
		return res
	}

	if sc.Expect.Grid != nil {
		if out.Grid == nil {
			res.failf("expected exact grid but outcome carries none")
		} else if !grid.Grid(out.Grid).Equal(grid.FromRows(sc.Expect.Grid)) {
			res.failf("solution grid differs from expected grid")
		}
	}

	if sc.Expect.Check == "valid" {
		checkValidSolution(res, sc)
	}

	return res
}

// checkValidSolution verifies completeness, constraint satisfaction, and
// fidelity to the givens without assuming a unique solution.
func checkValidSolution(res *Result, sc *Scenario) {
	g := grid.Grid(res.Outcome.Grid)
	if g == nil {
		res.failf("expected a solution grid, got none")
		return
	}
	if !g.IsSolved() {
		res.failf("solution grid violates row/column/box constraints")
	}
	for r := range sc.Puzzle {
		for c, v := range sc.Puzzle[r] {
			if v != 0 && g[r][c] != v {
				res.failf("given at (%d,%d) changed: %d -> %d", r, c, v, g[r][c])
			}
		}
	}
}
