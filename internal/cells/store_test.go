package cells

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/gridlock/internal/grid"
)

func newEmptyStore(t *testing.T, n int) *Store {
	t.Helper()
	s, err := NewStore(grid.New(n))
	require.NoError(t, err)
	return s
}

func TestNewStore_InitialDomains(t *testing.T) {
	g := grid.Grid{
		{1, 0, 0, 0},
		{0, 0, 0, 3},
		{0, 0, 0, 0},
		{0, 4, 0, 0},
	}
	s, err := NewStore(g)
	require.NoError(t, err)

	assert.Equal(t, 4, s.Size())
	assert.Equal(t, 2, s.BoxSize())
	assert.Equal(t, 13, s.Unassigned())

	// Given cell: singleton domain.
	assert.Equal(t, 1, s.Value(0, 0))
	assert.Equal(t, 1, s.Count(0, 0))
	assert.Equal(t, []int{1}, s.Candidates(0, 0))

	// Empty cell: full domain until Seed runs.
	assert.Equal(t, 0, s.Value(2, 2))
	assert.Equal(t, 4, s.Count(2, 2))
	assert.Equal(t, []int{1, 2, 3, 4}, s.Candidates(2, 2))
}

func TestNewStore_RejectsBadDimensions(t *testing.T) {
	_, err := NewStore(grid.New(5))
	require.Error(t, err)
	assert.True(t, grid.IsValidationError(err))

	_, err = NewStore(grid.Grid{{0, 0}, {0}})
	require.Error(t, err)
	assert.True(t, grid.IsValidationError(err))
}

func TestNewStore_LargeSideUsesMultipleWords(t *testing.T) {
	// 81 values per cell exercises the multi-word candidate layout.
	s := newEmptyStore(t, 81)
	assert.Equal(t, 81, s.Count(0, 0))
	assert.True(t, s.Has(0, 0, 1))
	assert.True(t, s.Has(0, 0, 64))
	assert.True(t, s.Has(0, 0, 65))
	assert.True(t, s.Has(0, 0, 81))

	cands := s.Candidates(40, 40)
	require.Len(t, cands, 81)
	assert.Equal(t, 1, cands[0])
	assert.Equal(t, 81, cands[80])
}

func TestAssign_EliminatesPeers(t *testing.T) {
	s := newEmptyStore(t, 9)
	require.NoError(t, s.Assign(4, 4, 7))

	assert.Equal(t, 7, s.Value(4, 4))
	assert.Equal(t, []int{7}, s.Candidates(4, 4))

	// Row, column, and box peers all lose 7.
	assert.False(t, s.Has(4, 0, 7), "row peer")
	assert.False(t, s.Has(0, 4, 7), "column peer")
	assert.False(t, s.Has(3, 3, 7), "box peer")
	assert.Equal(t, 8, s.Count(4, 0))
	assert.Equal(t, 8, s.Count(3, 3))

	// Unrelated cell untouched.
	assert.True(t, s.Has(0, 0, 7))
	assert.Equal(t, 9, s.Count(0, 0))
}

func TestAssign_AlreadyAssignedIsError(t *testing.T) {
	s := newEmptyStore(t, 4)
	require.NoError(t, s.Assign(0, 0, 1))
	err := s.Assign(0, 0, 2)
	require.Error(t, err)
	assert.False(t, IsContradiction(err))
}

func TestAssign_EliminatedValueIsContradiction(t *testing.T) {
	s := newEmptyStore(t, 4)
	require.NoError(t, s.Assign(0, 0, 1))

	// 1 was eliminated from the whole row.
	err := s.Assign(0, 3, 1)
	require.Error(t, err)
	assert.True(t, IsContradiction(err))
}

func TestEliminate_EmptyDomainIsContradiction(t *testing.T) {
	s := newEmptyStore(t, 4)
	for v := 1; v <= 3; v++ {
		require.NoError(t, s.Eliminate(2, 2, v))
	}
	err := s.Eliminate(2, 2, 4)
	require.Error(t, err)
	assert.True(t, IsContradiction(err))

	var ce *ContradictionError
	require.ErrorAs(t, err, &ce)
	assert.Equal(t, 2, ce.Row)
	assert.Equal(t, 2, ce.Col)
	assert.Equal(t, 4, ce.Value)
}

func TestEliminate_AbsentValueIsNoOp(t *testing.T) {
	s := newEmptyStore(t, 4)
	require.NoError(t, s.Eliminate(1, 1, 3))
	assert.Equal(t, 3, s.Count(1, 1))
	require.NoError(t, s.Eliminate(1, 1, 3))
	assert.Equal(t, 3, s.Count(1, 1))
}

func TestSeed_PropagatesGivens(t *testing.T) {
	g := grid.Grid{
		{1, 0, 0, 0},
		{0, 0, 0, 3},
		{0, 0, 0, 0},
		{0, 4, 0, 0},
	}
	s, err := NewStore(g)
	require.NoError(t, err)
	require.NoError(t, s.Seed())

	// (0,1) shares row and box with the given 1.
	assert.False(t, s.Has(0, 1, 1))
	// (1,0) shares column and box with the given 1.
	assert.False(t, s.Has(1, 0, 1))
	// (0,3) shares row with 1 and column with 3.
	assert.Equal(t, []int{2, 4}, s.Candidates(0, 3))
}

func TestSeed_DetectsImmediateContradiction(t *testing.T) {
	// (0,0) sees 2,3,4 in its row and 1 in its column: empty domain.
	g := grid.Grid{
		{0, 2, 3, 4},
		{1, 0, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
	}
	s, err := NewStore(g)
	require.NoError(t, err)

	err = s.Seed()
	require.Error(t, err)
	assert.True(t, IsContradiction(err))
}

func TestSeed_DuplicateGivensAreContradiction(t *testing.T) {
	// Two identical givens in one row would normally be caught by grid
	// validation; a store built from such a grid must still refuse to
	// strip an assigned cell's singleton instead of zeroing its count.
	g := grid.Grid{
		{1, 1, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
	}
	s, err := NewStore(g)
	require.NoError(t, err)

	err = s.Seed()
	require.Error(t, err)
	assert.True(t, IsContradiction(err))

	var ce *ContradictionError
	require.ErrorAs(t, err, &ce)
	assert.Equal(t, 1, ce.Value)
}

func TestRewind_RestoresExactState(t *testing.T) {
	g := grid.Grid{
		{1, 0, 0, 0},
		{0, 0, 0, 3},
		{0, 0, 0, 0},
		{0, 4, 0, 0},
	}
	s, err := NewStore(g)
	require.NoError(t, err)
	require.NoError(t, s.Seed())

	type cellState struct {
		value      int
		candidates []int
	}
	snapshot := func() []cellState {
		var out []cellState
		for r := 0; r < 4; r++ {
			for c := 0; c < 4; c++ {
				out = append(out, cellState{s.Value(r, c), s.Candidates(r, c)})
			}
		}
		return out
	}

	before := snapshot()
	unassignedBefore := s.Unassigned()
	mark := s.Mark()

	// Speculative work: two assignments and a failing one.
	require.NoError(t, s.Assign(2, 2, 1))
	require.NoError(t, s.Assign(0, 1, 2))
	_ = s.Assign(0, 2, 2) // contradiction or error, state may be dirty

	s.Rewind(mark)

	assert.Equal(t, before, snapshot(), "rewind must restore candidates bit-for-bit")
	assert.Equal(t, unassignedBefore, s.Unassigned())
}

func TestRewind_NestedMarks(t *testing.T) {
	s := newEmptyStore(t, 4)

	m0 := s.Mark()
	require.NoError(t, s.Assign(0, 0, 1))
	m1 := s.Mark()
	require.NoError(t, s.Assign(1, 1, 2))

	s.Rewind(m1)
	assert.Equal(t, 1, s.Value(0, 0))
	assert.Equal(t, 0, s.Value(1, 1))
	assert.True(t, s.Has(1, 1, 2))
	assert.False(t, s.Has(0, 1, 1), "outer assignment still in effect")

	s.Rewind(m0)
	assert.Equal(t, 0, s.Value(0, 0))
	assert.Equal(t, 4, s.Count(0, 1))
	assert.Equal(t, 16, s.Unassigned())
}

func TestGrid_RoundTrip(t *testing.T) {
	g := grid.Grid{
		{1, 0, 0, 0},
		{0, 0, 0, 3},
		{0, 0, 0, 0},
		{0, 4, 0, 0},
	}
	s, err := NewStore(g)
	require.NoError(t, err)

	out := s.Grid()
	assert.True(t, g.Equal(out))

	// The copy is independent of the store.
	out[0][0] = 9
	assert.Equal(t, 1, s.Value(0, 0))
}
