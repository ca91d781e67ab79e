package grid

import (
	"errors"
	"fmt"
)

// ValidationCode categorizes structural validation failures.
type ValidationCode string

const (
	// CodeNotSquare indicates the grid is empty or not N×N.
	CodeNotSquare ValidationCode = "NOT_SQUARE"

	// CodeBadSide indicates the side length is not a perfect square,
	// so no √N×√N box decomposition exists.
	CodeBadSide ValidationCode = "SIDE_NOT_PERFECT_SQUARE"

	// CodeValueOutOfRange indicates a cell value outside [0, N].
	CodeValueOutOfRange ValidationCode = "VALUE_OUT_OF_RANGE"

	// CodeDuplicateInUnit indicates the same value appears twice in a
	// row, column, or box.
	CodeDuplicateInUnit ValidationCode = "DUPLICATE_IN_UNIT"
)

// ValidationError describes a structural defect in an input grid.
//
// Validation errors are always surfaced to the caller and never retried:
// a malformed puzzle cannot become well-formed by searching harder.
type ValidationError struct {
	// Code identifies the defect category.
	Code ValidationCode

	// Message is a human-readable description.
	Message string

	// Row and Col locate the offending cell where applicable (-1 otherwise).
	Row int
	Col int

	// Value is the offending cell value where applicable.
	Value int

	// Unit names the constraint group for duplicate errors:
	// "row", "column", or "box".
	Unit string
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	if e.Row >= 0 {
		return fmt.Sprintf("%s: %s (row=%d, col=%d)", e.Code, e.Message, e.Row, e.Col)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// IsValidationError returns true if the error is a ValidationError.
// Uses errors.As to handle wrapped errors.
func IsValidationError(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

func newShapeError(code ValidationCode, message string) *ValidationError {
	return &ValidationError{Code: code, Message: message, Row: -1, Col: -1}
}

func newDuplicateError(unit string, row, col, value int) *ValidationError {
	return &ValidationError{
		Code:    CodeDuplicateInUnit,
		Message: fmt.Sprintf("value %d appears twice in %s", value, unit),
		Row:     row,
		Col:     col,
		Value:   value,
		Unit:    unit,
	}
}
