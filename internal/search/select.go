package search

import "github.com/roach88/gridlock/internal/cells"

// pick scans all unassigned cells in row-major order and returns the one
// with the smallest candidate set, first-encountered winning ties. Returns
// found=false when every cell is assigned (solved state).
//
// The scan stops early at cardinality 1, which cannot be beaten, and at
// cardinality 0, which should not occur in a consistent state but is
// returned so the engine backtracks instead of branching on nothing.
func pick(s *cells.Store) (row, col int, found bool) {
	n := s.Size()
	best := n + 1
	row, col = -1, -1

	for r := 0; r < n; r++ {
		for c := 0; c < n; c++ {
			if s.Assigned(r, c) {
				continue
			}
			count := s.Count(r, c)
			if count < best {
				best = count
				row, col = r, c
				if count <= 1 {
					return row, col, true
				}
			}
		}
	}

	return row, col, row >= 0
}
