// Package propagate drives a candidate store to a fixed point with two
// deterministic inference rules:
//
//   - Naked single: an unassigned cell whose candidate set has exactly one
//     value is assigned that value.
//   - Hidden single: a value that fits exactly one remaining cell of a row,
//     column, or box is assigned there.
//
// Passes repeat until neither rule fires. Propagation stops the moment any
// assignment reports a contradiction: the store is already inconsistent at
// that point and further scanning cannot change the outcome.
//
// The rule order within a pass (naked before hidden, rows before columns
// before boxes) is non-normative: any fixed-point-reaching order yields the
// same fixed point. The chosen order only affects how much work a pass does.
package propagate
