package search

import (
	"errors"
	"fmt"
)

// ErrUnsatisfiable is returned when the search exhausts every branch
// without finding a solution. It is a legitimate terminal outcome for a
// structurally valid puzzle, not a crash.
var ErrUnsatisfiable = errors.New("puzzle has no solution")

// errExhausted signals internally that a recursion level ran out of
// candidates. It propagates one frame up, where the parent resumes its own
// candidate loop; only the top level converts it to ErrUnsatisfiable.
var errExhausted = errors.New("branch exhausted")

// NodesExceededError is returned when the search visits more nodes than
// the configured budget allows. Unlike ErrUnsatisfiable it proves nothing
// about the puzzle; the caller chose bounded effort over a definitive
// answer.
type NodesExceededError struct {
	// Nodes is the number of search nodes visited.
	Nodes int

	// Limit is the configured budget.
	Limit int
}

// Error implements the error interface.
func (e *NodesExceededError) Error() string {
	return fmt.Sprintf("search exceeded node budget: %d nodes > %d limit", e.Nodes, e.Limit)
}

// IsNodesExceeded returns true if the error is a NodesExceededError.
// Uses errors.As to handle wrapped errors.
func IsNodesExceeded(err error) bool {
	var ne *NodesExceededError
	return errors.As(err, &ne)
}
