package cells

import (
	"errors"
	"fmt"
)

// ContradictionError signals that an unassigned cell's candidate set became
// empty, proving the current partial assignment has no extension.
//
// Contradictions are expected, recoverable control flow inside the solver:
// the search engine rewinds the trail and tries the next candidate. They are
// never surfaced to callers of the public API.
type ContradictionError struct {
	// Row and Col locate the cell whose candidate set emptied.
	Row int
	Col int

	// Value is the candidate whose elimination emptied the cell.
	Value int
}

// Error implements the error interface.
func (e *ContradictionError) Error() string {
	return fmt.Sprintf("contradiction: cell (%d,%d) has no candidates after removing %d",
		e.Row, e.Col, e.Value)
}

// IsContradiction returns true if the error is a ContradictionError.
// Uses errors.As to handle wrapped errors.
func IsContradiction(err error) bool {
	var ce *ContradictionError
	return errors.As(err, &ce)
}
