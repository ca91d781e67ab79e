// Package grid defines the puzzle grid type and its structural validation.
//
// A Grid is an N×N matrix of cell values where 0 marks an empty cell and
// 1..N are placed values. N must be a perfect square; the √N×√N sub-squares
// are the boxes. Rows, columns, and boxes are the three unit families that
// constrain a puzzle: each unit must contain every value at most once.
//
// Validation here is purely structural. It answers "is this a well-formed
// puzzle?" (square shape, legal side length, in-range values, no duplicate
// within any unit) and never attempts to answer "is this puzzle solvable?" -
// that is the solver's job.
//
// Validate is a pure function: it never mutates its input and always returns
// the same result for the same grid.
package grid
