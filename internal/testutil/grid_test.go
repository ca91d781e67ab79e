package testutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPattern_IsSolvedAtAllSupportedSizes(t *testing.T) {
	for _, n := range []int{4, 9, 16, 25} {
		g := Pattern(n)
		require.Equal(t, n, g.Size(), "n=%d", n)
		assert.True(t, g.IsSolved(), "pattern grid of side %d must be a valid solution", n)
	}
}

func TestPattern_Deterministic(t *testing.T) {
	assert.Equal(t, Pattern(9), Pattern(9))
}

func TestPattern_PanicsOnBadSide(t *testing.T) {
	assert.Panics(t, func() { Pattern(5) })
}

func TestBlank_ClearsOnlyRequestedCells(t *testing.T) {
	g := Pattern(4)
	b := Blank(g, [2]int{0, 0}, [2]int{3, 3})

	assert.Equal(t, 0, b[0][0])
	assert.Equal(t, 0, b[3][3])
	assert.Equal(t, g[1][1], b[1][1])

	// Source untouched.
	assert.NotEqual(t, 0, g[0][0])
}

func TestFromDigits(t *testing.T) {
	g := FromDigits(
		"1..4",
		"..3.",
		".2..",
		"4..1",
	)
	assert.Equal(t, 1, g[0][0])
	assert.Equal(t, 0, g[0][1])
	assert.Equal(t, 4, g[0][3])
	assert.Equal(t, 3, g[1][2])
	assert.Equal(t, 2, g[2][1])
	assert.Equal(t, 1, g[3][3])
}

func TestFromDigits_PanicsOnBadRune(t *testing.T) {
	assert.Panics(t, func() { FromDigits("1x") })
}
