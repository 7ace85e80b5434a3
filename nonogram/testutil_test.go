package nonogram

// testutil_test.go holds helpers shared by the package tests: compact
// string notation for lines and boards, and hint derivation from pictures.
//
// Line notation: '.' Unknown, '*' Filled, '-' Blank. Board pictures use
// the same glyphs, one string per row.

import "testing"

// cellsOf parses line notation into cell states.
func cellsOf(s string) []CellState {
	out := make([]CellState, len(s))
	for i, ch := range s {
		switch ch {
		case '*':
			out[i] = Filled
		case '-':
			out[i] = Blank
		default:
			out[i] = Unknown
		}
	}
	return out
}

// notation renders cell states back into line notation.
func notation(cells []CellState) string {
	b := make([]byte, len(cells))
	for i, c := range cells {
		b[i] = c.String()[0]
	}
	return string(b)
}

// hintsOf derives the run-length hints of a completed picture line.
func hintsOf(cells []CellState) []int {
	var hints []int
	run := 0
	for _, c := range cells {
		if c == Filled {
			run++
			continue
		}
		if run > 0 {
			hints = append(hints, run)
			run = 0
		}
	}
	if run > 0 {
		hints = append(hints, run)
	}
	if hints == nil {
		hints = []int{}
	}
	return hints
}

// puzzleOf derives row and column hints from a completed picture, so tests
// can state puzzles as the images they draw.
func puzzleOf(t *testing.T, picture []string) (rowHints, colHints [][]int) {
	t.Helper()
	rows := len(picture)
	cols := len(picture[0])
	rowHints = make([][]int, rows)
	for r, line := range picture {
		if len(line) != cols {
			t.Fatalf("ragged picture row %d", r)
		}
		rowHints[r] = hintsOf(cellsOf(line))
	}
	colHints = make([][]int, cols)
	for c := 0; c < cols; c++ {
		col := make([]CellState, rows)
		for r := 0; r < rows; r++ {
			col[r] = cellsOf(picture[r])[c]
		}
		colHints[c] = hintsOf(col)
	}
	return rowHints, colHints
}

// boardNotation renders the whole board in picture notation.
func boardNotation(b *Board) []string {
	out := make([]string, b.rows)
	for r, row := range b.Cells() {
		out[r] = notation(row)
	}
	return out
}
