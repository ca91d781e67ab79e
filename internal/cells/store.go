package cells

import (
	"fmt"
	"math/bits"

	"github.com/roach88/gridlock/internal/grid"
)

// Store owns the candidate sets and current assignments for one solve
// attempt. It is created fresh from an input grid, mutated destructively
// during propagation and search, and discarded once a result is produced.
//
// Not safe for concurrent use. Independent solves must own independent
// stores; they then need no coordination at all.
type Store struct {
	n        int
	boxSize  int
	wordsPer int // uint64 words per cell candidate set

	values     []int    // n*n cell values, 0 = unassigned
	words      []uint64 // n*n*wordsPer candidate bits, bit v-1 = value v
	counts     []int    // cached candidate cardinality per cell
	unassigned int

	trail []change
}

// Mark is a position in the undo trail. Rewind restores the store to the
// exact state it had when the mark was taken.
type Mark int

type changeKind uint8

const (
	// elimChange records a candidate bit that was cleared.
	elimChange changeKind = iota + 1
	// placeChange records a cell value that was set (previous value always 0).
	placeChange
)

type change struct {
	kind  changeKind
	cell  int
	value int
}

// NewStore builds a store from a grid: full candidate sets {1..N} for empty
// cells, singletons for given cells.
//
// The grid must already have passed structural validation; NewStore still
// rejects malformed dimensions defensively so a misuse fails loudly instead
// of corrupting candidate bookkeeping.
func NewStore(g grid.Grid) (*Store, error) {
	n := g.Size()
	boxSize, ok := grid.BoxSize(n)
	if !ok {
		return nil, &grid.ValidationError{
			Code:    grid.CodeBadSide,
			Message: fmt.Sprintf("side length %d is not a perfect square", n),
			Row:     -1,
			Col:     -1,
		}
	}
	for r, row := range g {
		if len(row) != n {
			return nil, &grid.ValidationError{
				Code:    grid.CodeNotSquare,
				Message: fmt.Sprintf("row %d has %d cells, want %d", r, len(row), n),
				Row:     -1,
				Col:     -1,
			}
		}
	}

	wordsPer := (n + 63) / 64
	s := &Store{
		n:        n,
		boxSize:  boxSize,
		wordsPer: wordsPer,
		values:   make([]int, n*n),
		words:    make([]uint64, n*n*wordsPer),
		counts:   make([]int, n*n),
		trail:    make([]change, 0, n*n),
	}

	for r := 0; r < n; r++ {
		for c := 0; c < n; c++ {
			cell := r*n + c
			v := g[r][c]
			if v == 0 {
				s.fillFull(cell)
				s.counts[cell] = n
				s.unassigned++
				continue
			}
			s.values[cell] = v
			s.setBit(cell, v)
			s.counts[cell] = 1
		}
	}

	return s, nil
}

// Size returns the side length N.
func (s *Store) Size() int { return s.n }

// BoxSize returns √N.
func (s *Store) BoxSize() int { return s.boxSize }

// Unassigned returns the number of cells without a value.
func (s *Store) Unassigned() int { return s.unassigned }

// Value returns the assigned value of a cell, or 0 if unassigned.
func (s *Store) Value(row, col int) int {
	return s.values[row*s.n+col]
}

// Assigned reports whether a cell has a value.
func (s *Store) Assigned(row, col int) bool {
	return s.values[row*s.n+col] != 0
}

// Count returns the candidate cardinality of a cell.
func (s *Store) Count(row, col int) int {
	return s.counts[row*s.n+col]
}

// Has reports whether value is still a candidate for a cell.
func (s *Store) Has(row, col, value int) bool {
	cell := row*s.n + col
	return s.words[cell*s.wordsPer+(value-1)/64]&(1<<uint((value-1)%64)) != 0
}

// Candidates returns the cell's candidates in ascending order.
// The returned slice is freshly allocated and safe to retain across
// subsequent store mutations.
func (s *Store) Candidates(row, col int) []int {
	cell := row*s.n + col
	out := make([]int, 0, s.counts[cell])
	base := cell * s.wordsPer
	for w := 0; w < s.wordsPer; w++ {
		word := s.words[base+w]
		for word != 0 {
			b := bits.TrailingZeros64(word)
			out = append(out, w*64+b+1)
			word &= word - 1
		}
	}
	return out
}

// FirstCandidate returns the smallest candidate of a cell, or 0 if the
// candidate set is empty.
func (s *Store) FirstCandidate(row, col int) int {
	cell := row*s.n + col
	base := cell * s.wordsPer
	for w := 0; w < s.wordsPer; w++ {
		if word := s.words[base+w]; word != 0 {
			return w*64 + bits.TrailingZeros64(word) + 1
		}
	}
	return 0
}

// Assign places value in the cell, narrows the cell's candidate set to the
// singleton {value}, and removes value from every peer sharing the row,
// column, or box.
//
// This is the single propagation primitive everything else builds on: O(N)
// peer updates per call, with box cells outside the row and column visited
// once each. Returns ContradictionError the moment any unassigned peer's
// candidate set empties; the store is then inconsistent and the caller must
// Rewind to its last mark.
func (s *Store) Assign(row, col, value int) error {
	cell := row*s.n + col
	if s.values[cell] != 0 {
		return fmt.Errorf("assign (%d,%d): cell already has value %d", row, col, s.values[cell])
	}
	if !s.Has(row, col, value) {
		// Defensive: assigning an already-eliminated value is a dead end,
		// not a crash.
		return &ContradictionError{Row: row, Col: col, Value: value}
	}

	s.place(cell, value)

	// Narrow the cell's own set to {value}. The cell is assigned now, so
	// these removals cannot contradict.
	base := cell * s.wordsPer
	for w := 0; w < s.wordsPer; w++ {
		word := s.words[base+w]
		for word != 0 {
			b := bits.TrailingZeros64(word)
			v := w*64 + b + 1
			if v != value {
				s.clearBit(cell, v)
			}
			word &= word - 1
		}
	}

	return s.eliminateFromPeers(row, col, value)
}

// Eliminate removes value from a cell's candidate set, returning
// ContradictionError if that empties the cell. An assigned cell holds a
// singleton set, so stripping its own value is reported the same way;
// duplicate givens that slipped past validation surface here during Seed
// instead of corrupting the counts. Removing an already-absent value is a
// no-op.
func (s *Store) Eliminate(row, col, value int) error {
	if !s.Has(row, col, value) {
		return nil
	}
	cell := row*s.n + col
	s.clearBit(cell, value)
	if s.counts[cell] == 0 {
		return &ContradictionError{Row: row, Col: col, Value: value}
	}
	return nil
}

// Seed runs the initial elimination pass: every given cell's value is
// removed from its peers, exactly as if the givens had just been assigned.
// Returns ContradictionError if the givens alone already empty some cell.
func (s *Store) Seed() error {
	for r := 0; r < s.n; r++ {
		for c := 0; c < s.n; c++ {
			if v := s.values[r*s.n+c]; v != 0 {
				if err := s.eliminateFromPeers(r, c, v); err != nil {
					return err
				}
			}
		}
	}
	return nil
}

// eliminateFromPeers removes value from every other cell in the row, the
// column, and the box. Box cells sharing the row or column are skipped so
// each peer is touched exactly once.
func (s *Store) eliminateFromPeers(row, col, value int) error {
	for c := 0; c < s.n; c++ {
		if c == col {
			continue
		}
		if err := s.Eliminate(row, c, value); err != nil {
			return err
		}
	}
	for r := 0; r < s.n; r++ {
		if r == row {
			continue
		}
		if err := s.Eliminate(r, col, value); err != nil {
			return err
		}
	}
	startRow := (row / s.boxSize) * s.boxSize
	startCol := (col / s.boxSize) * s.boxSize
	for r := startRow; r < startRow+s.boxSize; r++ {
		if r == row {
			continue
		}
		for c := startCol; c < startCol+s.boxSize; c++ {
			if c == col {
				continue
			}
			if err := s.Eliminate(r, c, value); err != nil {
				return err
			}
		}
	}
	return nil
}

// Mark returns the current undo-trail position.
func (s *Store) Mark() Mark {
	return Mark(len(s.trail))
}

// Rewind replays the trail in reverse down to the mark, restoring values,
// candidate bits, cardinality counts, and the unassigned-cell count to a
// bit-for-bit copy of the state at Mark time.
func (s *Store) Rewind(m Mark) {
	for i := len(s.trail) - 1; i >= int(m); i-- {
		ch := s.trail[i]
		switch ch.kind {
		case elimChange:
			s.words[ch.cell*s.wordsPer+(ch.value-1)/64] |= 1 << uint((ch.value-1)%64)
			s.counts[ch.cell]++
		case placeChange:
			s.values[ch.cell] = 0
			s.unassigned++
		}
	}
	s.trail = s.trail[:int(m)]
}

// Grid copies the current assignments out into a fresh grid.
func (s *Store) Grid() grid.Grid {
	g := grid.New(s.n)
	for r := 0; r < s.n; r++ {
		copy(g[r], s.values[r*s.n:(r+1)*s.n])
	}
	return g
}

// WriteTo copies the current assignments into dst, which must be N×N.
// Used for opt-in in-place solving.
func (s *Store) WriteTo(dst grid.Grid) {
	for r := 0; r < s.n; r++ {
		copy(dst[r], s.values[r*s.n:(r+1)*s.n])
	}
}

func (s *Store) place(cell, value int) {
	s.values[cell] = value
	s.unassigned--
	s.trail = append(s.trail, change{kind: placeChange, cell: cell, value: value})
}

func (s *Store) clearBit(cell, value int) {
	s.words[cell*s.wordsPer+(value-1)/64] &^= 1 << uint((value-1)%64)
	s.counts[cell]--
	s.trail = append(s.trail, change{kind: elimChange, cell: cell, value: value})
}

func (s *Store) setBit(cell, value int) {
	s.words[cell*s.wordsPer+(value-1)/64] |= 1 << uint((value-1)%64)
}

// fillFull sets all N candidate bits for a cell.
func (s *Store) fillFull(cell int) {
	base := cell * s.wordsPer
	remaining := s.n
	for w := 0; w < s.wordsPer; w++ {
		if remaining >= 64 {
			s.words[base+w] = ^uint64(0)
			remaining -= 64
			continue
		}
		s.words[base+w] = (1 << uint(remaining)) - 1
		remaining = 0
	}
}
