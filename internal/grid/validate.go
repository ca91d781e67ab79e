package grid

import "fmt"

// Validate checks a grid for structural defects before any solving begins.
//
// Checks, in order:
//  1. The grid is non-empty and square (every row has length N).
//  2. N is a perfect square, so the box decomposition exists.
//  3. Every cell value lies in [0, N].
//  4. No row, column, or box contains a duplicate among its non-zero values.
//
// Validate is pure: it never mutates the grid, and repeated calls on the
// same grid return the same result. A failing grid short-circuits the whole
// solve with zero search effort.
func Validate(g Grid) error {
	n := len(g)
	if n == 0 {
		return newShapeError(CodeNotSquare, "grid is empty")
	}
	for r, row := range g {
		if len(row) != n {
			return newShapeError(CodeNotSquare,
				fmt.Sprintf("row %d has %d cells, want %d", r, len(row), n))
		}
	}

	boxSize, ok := BoxSize(n)
	if !ok {
		return newShapeError(CodeBadSide,
			fmt.Sprintf("side length %d is not a perfect square", n))
	}

	for r, row := range g {
		for c, v := range row {
			if v < 0 || v > n {
				return &ValidationError{
					Code:    CodeValueOutOfRange,
					Message: fmt.Sprintf("value %d outside [0, %d]", v, n),
					Row:     r,
					Col:     c,
					Value:   v,
				}
			}
		}
	}

	// Rows.
	seen := make([]bool, n+1)
	for r := 0; r < n; r++ {
		clearSeen(seen)
		for c := 0; c < n; c++ {
			v := g[r][c]
			if v == 0 {
				continue
			}
			if seen[v] {
				return newDuplicateError("row", r, c, v)
			}
			seen[v] = true
		}
	}

	// Columns.
	for c := 0; c < n; c++ {
		clearSeen(seen)
		for r := 0; r < n; r++ {
			v := g[r][c]
			if v == 0 {
				continue
			}
			if seen[v] {
				return newDuplicateError("column", r, c, v)
			}
			seen[v] = true
		}
	}

	// Boxes.
	for box := 0; box < n; box++ {
		clearSeen(seen)
		startRow := (box / boxSize) * boxSize
		startCol := (box % boxSize) * boxSize
		for r := startRow; r < startRow+boxSize; r++ {
			for c := startCol; c < startCol+boxSize; c++ {
				v := g[r][c]
				if v == 0 {
					continue
				}
				if seen[v] {
					return newDuplicateError("box", r, c, v)
				}
				seen[v] = true
			}
		}
	}

	return nil
}

// IsComplete reports whether the grid has no empty cells.
func (g Grid) IsComplete() bool {
	for _, row := range g {
		for _, v := range row {
			if v == 0 {
				return false
			}
		}
	}
	return true
}

// IsSolved reports whether the grid is complete and satisfies every unit
// constraint. Used by tests and the conformance harness to check solver
// output without trusting the solver.
func (g Grid) IsSolved() bool {
	return g.IsComplete() && Validate(g) == nil
}

func clearSeen(seen []bool) {
	for i := range seen {
		seen[i] = false
	}
}
