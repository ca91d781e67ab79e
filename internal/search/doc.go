// Package search implements the backtracking engine that finishes what
// propagation alone cannot.
//
// The engine runs classic depth-first search with forward checking: pick
// the unassigned cell with the fewest candidates (most-constrained-variable
// heuristic, ties broken by row-major scan order), trial-assign each
// candidate in ascending order, re-propagate to a fixed point, and recurse.
// A contradiction anywhere below a trial rewinds the store's undo trail to
// the pre-trial mark and moves on to the next candidate. Exhausting every
// candidate at the top level proves the puzzle unsatisfiable.
//
// The search is strictly sequential and deterministic: the same input grid
// always walks the same tree and returns the same solution. Recursion depth
// is bounded by the cell count N², at most 625 frames for 25×25, which is
// comfortably inside Go's growable goroutine stacks.
//
// Cancellation is cooperative: the context is checked once per search node.
// An optional node budget bounds runaway searches the same way the caller
// might bound wall-clock time.
package search
