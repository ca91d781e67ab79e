package propagate

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/gridlock/internal/cells"
	"github.com/roach88/gridlock/internal/grid"
	"github.com/roach88/gridlock/internal/testutil"
)

func seededStore(t *testing.T, g grid.Grid) *cells.Store {
	t.Helper()
	s, err := cells.NewStore(g)
	require.NoError(t, err)
	require.NoError(t, s.Seed())
	return s
}

func TestRun_NakedSingleFillsLastCell(t *testing.T) {
	g := testutil.Blank(testutil.Pattern(4), [2]int{0, 0})
	s := seededStore(t, g)

	res, err := Run(s)
	require.NoError(t, err)

	assert.Equal(t, 1, res.Assignments)
	assert.Equal(t, 0, s.Unassigned())
	assert.True(t, s.Grid().Equal(testutil.Pattern(4)))
}

func TestRun_HiddenSingleRow(t *testing.T) {
	s, err := cells.NewStore(grid.New(9))
	require.NoError(t, err)

	// Eliminate 1 from every row-0 cell but (0,0). The cell keeps a full
	// complement of other candidates, so only the hidden-single rule can
	// place it.
	for c := 1; c < 9; c++ {
		require.NoError(t, s.Eliminate(0, c, 1))
	}
	require.Equal(t, 9, s.Count(0, 0))

	res, err := Run(s)
	require.NoError(t, err)

	assert.Equal(t, 1, s.Value(0, 0))
	assert.Equal(t, 1, res.Assignments)
}

func TestRun_HiddenSinglesCompleteBox(t *testing.T) {
	// Blanking the whole center box of a solved grid leaves each missing
	// value exactly one feasible cell in the box.
	blanks := make([][2]int, 0, 9)
	for r := 3; r < 6; r++ {
		for c := 3; c < 6; c++ {
			blanks = append(blanks, [2]int{r, c})
		}
	}
	g := testutil.Blank(testutil.Pattern(9), blanks...)
	s := seededStore(t, g)

	res, err := Run(s)
	require.NoError(t, err)

	assert.Equal(t, 9, res.Assignments)
	assert.Equal(t, 0, s.Unassigned())
	assert.True(t, s.Grid().Equal(testutil.Pattern(9)))
}

func TestRun_FullyAssignedIsNoOp(t *testing.T) {
	s := seededStore(t, testutil.Pattern(16))

	res, err := Run(s)
	require.NoError(t, err)

	assert.Equal(t, 0, res.Assignments)
	assert.Equal(t, 1, res.Passes)
	assert.Equal(t, 0, s.Unassigned())
}

func TestRun_StopsOnContradiction(t *testing.T) {
	s, err := cells.NewStore(grid.New(4))
	require.NoError(t, err)

	// Force (0,0) and (0,1) both down to {1}. The first naked single
	// assigns 1 at (0,0), which empties (0,1).
	for v := 2; v <= 4; v++ {
		require.NoError(t, s.Eliminate(0, 0, v))
		require.NoError(t, s.Eliminate(0, 1, v))
	}

	_, err = Run(s)
	require.Error(t, err)
	assert.True(t, cells.IsContradiction(err))
}

func TestRun_Deterministic(t *testing.T) {
	g := testutil.Blank(testutil.Pattern(9),
		[2]int{0, 3}, [2]int{1, 7}, [2]int{4, 4}, [2]int{8, 0})

	s1 := seededStore(t, g)
	s2 := seededStore(t, g)

	r1, err1 := Run(s1)
	r2, err2 := Run(s2)
	require.NoError(t, err1)
	require.NoError(t, err2)

	assert.Equal(t, r1, r2)
	assert.True(t, s1.Grid().Equal(s2.Grid()))
}
