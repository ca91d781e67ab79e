package propagate

import "github.com/roach88/gridlock/internal/cells"

// Result reports what a propagation run accomplished.
type Result struct {
	// Assignments is the number of cells the run filled in.
	Assignments int

	// Passes is the number of full rule sweeps, including the final sweep
	// that made no progress.
	Passes int
}

// Run applies naked-single and hidden-single inference to the store until
// a full pass makes no progress.
//
// Returns the accumulated Result and, on contradiction, the
// cells.ContradictionError from the assignment that exposed it. On
// contradiction the store is inconsistent; the caller owns rewinding.
func Run(s *cells.Store) (Result, error) {
	var res Result
	for {
		res.Passes++
		progress := false

		applied, err := nakedSingles(s)
		res.Assignments += applied
		if err != nil {
			return res, err
		}
		progress = progress || applied > 0

		applied, err = hiddenSingles(s)
		res.Assignments += applied
		if err != nil {
			return res, err
		}
		progress = progress || applied > 0

		if !progress {
			return res, nil
		}
	}
}

// nakedSingles assigns every unassigned cell whose candidate set is a
// singleton. Returns the number of assignments made.
func nakedSingles(s *cells.Store) (int, error) {
	n := s.Size()
	applied := 0
	for r := 0; r < n; r++ {
		for c := 0; c < n; c++ {
			if s.Assigned(r, c) || s.Count(r, c) != 1 {
				continue
			}
			if err := s.Assign(r, c, s.FirstCandidate(r, c)); err != nil {
				return applied, err
			}
			applied++
		}
	}
	return applied, nil
}

// hiddenSingles scans every row, column, and box for values that fit
// exactly one remaining cell of the unit, and assigns them there.
func hiddenSingles(s *cells.Store) (int, error) {
	n := s.Size()
	box := s.BoxSize()
	applied := 0

	// Rows.
	for r := 0; r < n; r++ {
		for v := 1; v <= n; v++ {
			if valueInRow(s, r, v) {
				continue
			}
			count, lastCol := 0, -1
			for c := 0; c < n; c++ {
				if !s.Assigned(r, c) && s.Has(r, c, v) {
					count++
					lastCol = c
				}
			}
			if count == 1 {
				if err := s.Assign(r, lastCol, v); err != nil {
					return applied, err
				}
				applied++
			}
		}
	}

	// Columns.
	for c := 0; c < n; c++ {
		for v := 1; v <= n; v++ {
			if valueInColumn(s, c, v) {
				continue
			}
			count, lastRow := 0, -1
			for r := 0; r < n; r++ {
				if !s.Assigned(r, c) && s.Has(r, c, v) {
					count++
					lastRow = r
				}
			}
			if count == 1 {
				if err := s.Assign(lastRow, c, v); err != nil {
					return applied, err
				}
				applied++
			}
		}
	}

	// Boxes.
	for b := 0; b < n; b++ {
		startRow := (b / box) * box
		startCol := (b % box) * box
		for v := 1; v <= n; v++ {
			if valueInBox(s, startRow, startCol, v) {
				continue
			}
			count, lastRow, lastCol := 0, -1, -1
			for r := startRow; r < startRow+box; r++ {
				for c := startCol; c < startCol+box; c++ {
					if !s.Assigned(r, c) && s.Has(r, c, v) {
						count++
						lastRow, lastCol = r, c
					}
				}
			}
			if count == 1 {
				if err := s.Assign(lastRow, lastCol, v); err != nil {
					return applied, err
				}
				applied++
			}
		}
	}

	return applied, nil
}

func valueInRow(s *cells.Store, row, value int) bool {
	for c := 0; c < s.Size(); c++ {
		if s.Value(row, c) == value {
			return true
		}
	}
	return false
}

func valueInColumn(s *cells.Store, col, value int) bool {
	for r := 0; r < s.Size(); r++ {
		if s.Value(r, col) == value {
			return true
		}
	}
	return false
}

func valueInBox(s *cells.Store, startRow, startCol, value int) bool {
	box := s.BoxSize()
	for r := startRow; r < startRow+box; r++ {
		for c := startCol; c < startCol+box; c++ {
			if s.Value(r, c) == value {
				return true
			}
		}
	}
	return false
}
