// Package cells implements the per-cell candidate store that the whole
// solver reads and mutates.
//
// For every cell the store tracks the set of values still consistent with
// the row, column, and box constraints. Candidate sets are bitsets packed
// into uint64 words (bit v-1 represents value v), giving O(1) membership
// tests and popcount-based cardinality.
//
// # Invariants
//
// An assigned cell's candidate set is exactly the singleton of its value.
// An unassigned cell's candidate set emptying is a contradiction: the
// current partial assignment cannot be extended to a solution, and the
// mutation that caused it reports ContradictionError.
//
// # Undo model
//
// Every destructive mutation (candidate bit cleared, value placed) appends
// an entry to an undo trail. Speculative work takes a Mark first and calls
// Rewind on failure, which replays the trail in reverse and restores the
// store bit-for-bit. This incremental scheme avoids the O(N²) deep copies
// a snapshot-per-branch design would pay on 25×25 grids.
//
// A Store lives for exactly one solve attempt and is not safe for
// concurrent use; independent solves own independent stores.
package cells
