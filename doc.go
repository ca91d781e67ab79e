// Package gridlock solves exact-constraint grid puzzles: Sudoku variants
// of side N where N is a perfect square (4, 9, 16, 25).
//
// The engine combines constraint propagation (naked and hidden singles)
// with depth-first backtracking search, forward checking after every trial
// assignment, and a most-constrained-variable branching heuristic. The
// combination keeps 16×16 and 25×25 instances tractable where plain
// backtracking is exponential in practice.
//
// The package exposes one blocking operation, Solve, which validates the
// input, runs the engine on a private copy, and returns a definitive
// outcome: Solved with the completed grid, Unsatisfiable, Invalid with the
// structural defect, or Aborted when the caller's context or node budget
// cut the search short. Solving is deterministic: the same input always
// yields the same solution.
//
// Callers own all input and output concerns - file formats, rendering,
// interactive surfaces. The engine only consumes an in-memory integer
// matrix (0 for empty cells) and produces another.
//
// Independent puzzles may be solved concurrently; each Solve call owns all
// of its state. SolveBatch fans a slice of puzzles out over a worker pool.
// A single puzzle's search is never parallelized internally.
package gridlock
