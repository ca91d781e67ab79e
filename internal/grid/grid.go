package grid

import (
	"strconv"
	"strings"
)

// Grid is an N×N cell matrix. 0 marks an empty cell, 1..N a placed value.
//
// Grid is a plain slice-of-slices so callers can construct literals without
// ceremony. All solver components treat the outer and inner lengths as
// authoritative; use Validate before handing a grid to anything else.
type Grid [][]int

// New returns an all-empty grid of the given side length.
func New(size int) Grid {
	g := make(Grid, size)
	for i := range g {
		g[i] = make([]int, size)
	}
	return g
}

// FromRows deep-copies rows into a new Grid.
//
// The copy ensures the solver's private working state never aliases
// caller-owned memory.
func FromRows(rows [][]int) Grid {
	g := make(Grid, len(rows))
	for i, row := range rows {
		g[i] = make([]int, len(row))
		copy(g[i], row)
	}
	return g
}

// Size returns the side length N.
func (g Grid) Size() int {
	return len(g)
}

// Clone returns an independent deep copy of the grid.
func (g Grid) Clone() Grid {
	return FromRows(g)
}

// Equal reports whether two grids have identical dimensions and values.
func (g Grid) Equal(other Grid) bool {
	if len(g) != len(other) {
		return false
	}
	for r := range g {
		if len(g[r]) != len(other[r]) {
			return false
		}
		for c := range g[r] {
			if g[r][c] != other[r][c] {
				return false
			}
		}
	}
	return true
}

// BoxSize returns √N for a side length N, and whether N is a perfect square.
func BoxSize(n int) (int, bool) {
	if n <= 0 {
		return 0, false
	}
	b := 1
	for b*b < n {
		b++
	}
	return b, b*b == n
}

// BoxIndex returns the box number for a cell, counting boxes row-major.
func BoxIndex(row, col, boxSize int) int {
	return (row/boxSize)*boxSize + (col/boxSize)
}

// String renders the grid as one line of space-separated values per row,
// with "." for empty cells. Used for logs, test diffs, and golden files.
func (g Grid) String() string {
	var sb strings.Builder
	for r, row := range g {
		if r > 0 {
			sb.WriteByte('\n')
		}
		for c, v := range row {
			if c > 0 {
				sb.WriteByte(' ')
			}
			if v == 0 {
				sb.WriteByte('.')
			} else {
				sb.WriteString(strconv.Itoa(v))
			}
		}
	}
	return sb.String()
}
