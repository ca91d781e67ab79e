// Package harness provides a conformance testing framework for the solver.
//
// Scenarios are YAML fixtures pairing an input puzzle with an expected
// terminal outcome: a status, and either an exact solution grid or a
// validity-only check for puzzles with more than one completion. The
// harness runs each scenario through the real public Solve entry point
// with a fixed run token, evaluates the expectations, and can compare a
// rendered outcome trace against a golden file.
//
// Everything the harness does is deterministic - fixed tokens, fixed
// traversal order inside the engine, no timing data in rendered traces -
// so golden files stay byte-stable across runs and machines.
//
// To regenerate golden files after an intentional behavior change:
//
//	go test ./internal/harness -update
package harness
