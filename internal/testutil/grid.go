// Package testutil provides deterministic puzzle fixtures for tests.
//
// Fixtures are pure functions of their inputs so every test run sees
// identical grids, which keeps solver traces and golden files stable.
package testutil

import (
	"fmt"

	"github.com/roach88/gridlock/internal/grid"
)

// Pattern returns the canonical solved grid of side n (n a perfect square):
//
//	value(r, c) = (r*√n + r/√n + c) mod n + 1
//
// The band-shift construction satisfies every row, column, and box
// constraint for any valid n, giving tests a known-solved grid at sizes
// where hand-written fixtures are impractical (16×16, 25×25).
func Pattern(n int) grid.Grid {
	box, ok := grid.BoxSize(n)
	if !ok {
		panic(fmt.Sprintf("testutil.Pattern: %d is not a perfect square", n))
	}
	g := grid.New(n)
	for r := 0; r < n; r++ {
		for c := 0; c < n; c++ {
			g[r][c] = (r*box+r/box+c)%n + 1
		}
	}
	return g
}

// Blank returns a copy of g with the given cells emptied.
func Blank(g grid.Grid, coords ...[2]int) grid.Grid {
	out := g.Clone()
	for _, rc := range coords {
		out[rc[0]][rc[1]] = 0
	}
	return out
}

// FromDigits builds a grid from one string per row, one digit per cell,
// with '0' or '.' marking empty cells. Only usable for sides up to 9;
// larger fixtures come from Pattern plus Blank.
func FromDigits(rows ...string) grid.Grid {
	g := make(grid.Grid, len(rows))
	for r, row := range rows {
		g[r] = make([]int, len(row))
		for c, ch := range row {
			switch {
			case ch == '.' || ch == '0':
				g[r][c] = 0
			case ch >= '1' && ch <= '9':
				g[r][c] = int(ch - '0')
			default:
				panic(fmt.Sprintf("testutil.FromDigits: bad cell %q at row %d col %d", ch, r, c))
			}
		}
	}
	return g
}
