package nonogram

// board.go owns the ground truth: one contiguous row-major cell matrix.
// Rows and columns are index-mapping views over that single storage, so a
// cell written while solving row r is the very cell column c reads next —
// there is exactly one copy of every cell and nothing to drift apart.

// Board is the R×C puzzle state together with its row and column hints.
// Construct with NewBoard; the zero value is not usable.
type Board struct {
	rows, cols int
	rowHints   []Hints
	colHints   []Hints

	// cells is the single shared matrix, row-major: cell (r,c) lives at
	// index r*cols+c and is aliased by row r and column c.
	cells []CellState

	// Per-line bookkeeping: a solved line is skipped by every sweep; a
	// line is dirty when a crossing line changed one of its cells since
	// it was last solved.
	rowSolved, colSolved []bool
	rowDirty, colDirty   []bool

	// sweeps counts completed propagation sweeps, for diagnostics.
	sweeps int
}

// NewBoard builds a blank board from per-row and per-column hint sequences.
// The row count is len(rowHints) and the column count len(colHints); a nil
// or empty inner slice means an all-Blank line.
//
// Returns ErrEmptyBoard for zero dimensions, ErrBadHint for non-positive
// runs, and ErrHintsTooLong when a line's hints cannot fit its length —
// the malformed-puzzle class of errors, surfaced before solving starts.
func NewBoard(rowHints, colHints [][]int) (*Board, error) {
	rows, cols := len(rowHints), len(colHints)
	if rows == 0 || cols == 0 {
		return nil, ErrEmptyBoard
	}
	b := &Board{
		rows:      rows,
		cols:      cols,
		rowHints:  make([]Hints, rows),
		colHints:  make([]Hints, cols),
		cells:     make([]CellState, rows*cols),
		rowSolved: make([]bool, rows),
		colSolved: make([]bool, cols),
		rowDirty:  make([]bool, rows),
		colDirty:  make([]bool, cols),
	}
	var err error
	for r, h := range rowHints {
		if b.rowHints[r], err = adoptHints(h, cols); err != nil {
			return nil, err
		}
		b.rowDirty[r] = true // everything has changed!
	}
	for c, h := range colHints {
		if b.colHints[c], err = adoptHints(h, rows); err != nil {
			return nil, err
		}
		b.colDirty[c] = true
	}
	return b, nil
}

// adoptHints validates one hint sequence against its line length and
// returns a private copy (hints are immutable once loaded).
func adoptHints(h []int, length int) (Hints, error) {
	copied := make(Hints, len(h))
	for i, run := range h {
		if run <= 0 {
			return nil, ErrBadHint
		}
		copied[i] = run
	}
	if copied.minSpan() > length {
		return nil, ErrHintsTooLong
	}
	return copied, nil
}

// Rows returns the number of rows.
func (b *Board) Rows() int { return b.rows }

// Cols returns the number of columns.
func (b *Board) Cols() int { return b.cols }

// Sweeps returns the number of propagation sweeps completed so far.
func (b *Board) Sweeps() int { return b.sweeps }

// CellAt returns the state of cell (r,c). Panics on out-of-range indices,
// matching slice semantics.
func (b *Board) CellAt(r, c int) CellState {
	if r < 0 || r >= b.rows || c < 0 || c >= b.cols {
		panic("nonogram: cell index out of range")
	}
	return b.cells[r*b.cols+c]
}

// Cells returns an independent copy of the cell matrix, row-major, for
// rendering at any moment of the solve. Mutating the copy does not affect
// the board.
func (b *Board) Cells() [][]CellState {
	out := make([][]CellState, b.rows)
	for r := 0; r < b.rows; r++ {
		out[r] = make([]CellState, b.cols)
		copy(out[r], b.cells[r*b.cols:(r+1)*b.cols])
	}
	return out
}

// RowHints returns a copy of the hints for row r.
func (b *Board) RowHints(r int) []int {
	out := make([]int, len(b.rowHints[r]))
	copy(out, b.rowHints[r])
	return out
}

// ColHints returns a copy of the hints for column c.
func (b *Board) ColHints(c int) []int {
	out := make([]int, len(b.colHints[c]))
	copy(out, b.colHints[c])
	return out
}

// Clone returns a deep, fully independent copy of the board.
func (b *Board) Clone() *Board {
	c := &Board{
		rows:      b.rows,
		cols:      b.cols,
		rowHints:  b.rowHints, // immutable, safe to share
		colHints:  b.colHints,
		cells:     append([]CellState(nil), b.cells...),
		rowSolved: append([]bool(nil), b.rowSolved...),
		colSolved: append([]bool(nil), b.colSolved...),
		rowDirty:  append([]bool(nil), b.rowDirty...),
		colDirty:  append([]bool(nil), b.colDirty...),
		sweeps:    b.sweeps,
	}
	return c
}

// line identifies one board line plus the geometry to address its cells.
type line struct {
	id     LineID
	length int
	hints  Hints
}

// lineOf resolves a LineID to its geometry.
func (b *Board) lineOf(id LineID) line {
	if id.Axis == AxisRow {
		return line{id: id, length: b.cols, hints: b.rowHints[id.Index]}
	}
	return line{id: id, length: b.rows, hints: b.colHints[id.Index]}
}

// readLine copies the line's cells from the shared matrix into buf, which
// must have the line's length.
func (b *Board) readLine(ln line, buf []CellState) {
	if ln.id.Axis == AxisRow {
		copy(buf, b.cells[ln.id.Index*b.cols:(ln.id.Index+1)*b.cols])
		return
	}
	for r := 0; r < b.rows; r++ {
		buf[r] = b.cells[r*b.cols+ln.id.Index]
	}
}

// writeBack merges refined cells at the changed offsets into the shared
// matrix and marks every crossing line dirty. Monotonic by construction:
// only offsets the line solver promoted are written.
func (b *Board) writeBack(ln line, buf []CellState, changed []int) {
	for _, i := range changed {
		if ln.id.Axis == AxisRow {
			b.cells[ln.id.Index*b.cols+i] = buf[i]
			b.colDirty[i] = true
		} else {
			b.cells[i*b.cols+ln.id.Index] = buf[i]
			b.rowDirty[i] = true
		}
	}
}

// setCell writes one cell directly (used by guided search to apply a
// speculative move) and marks both owning lines dirty and unsolved.
func (b *Board) setCell(id LineID, pos int, state CellState) {
	var r, c int
	if id.Axis == AxisRow {
		r, c = id.Index, pos
	} else {
		r, c = pos, id.Index
	}
	b.cells[r*b.cols+c] = state
	b.rowDirty[r] = true
	b.colDirty[c] = true
	b.rowSolved[r] = false
	b.colSolved[c] = false
}

// lineIDs enumerates every line of the board, rows first.
func (b *Board) lineIDs() []LineID {
	ids := make([]LineID, 0, b.rows+b.cols)
	for r := 0; r < b.rows; r++ {
		ids = append(ids, LineID{AxisRow, r})
	}
	for c := 0; c < b.cols; c++ {
		ids = append(ids, LineID{AxisCol, c})
	}
	return ids
}

// IsSolved reports whether every cell is known and every row and column
// matches its hints exactly.
func (b *Board) IsSolved() bool {
	for _, s := range b.cells {
		if s == Unknown {
			return false
		}
	}
	buf := make([]CellState, maxInt(b.rows, b.cols))
	for _, id := range b.lineIDs() {
		ln := b.lineOf(id)
		b.readLine(ln, buf[:ln.length])
		if !runsMatch(ln.hints, buf[:ln.length]) {
			return false
		}
	}
	return true
}

// IsLegal reports whether every line still admits at least one placement
// of its hints given the currently fixed cells. A legal board may still be
// unsolvable as a whole; an illegal one definitely is.
func (b *Board) IsLegal() bool {
	return b.firstIllegalLine(DefaultEnumerationLimit) == nil
}

// firstIllegalLine returns the identity of the first line with zero
// surviving placements, or nil when all lines are feasible.
func (b *Board) firstIllegalLine(budget int) *LineID {
	buf := make([]CellState, maxInt(b.rows, b.cols))
	for _, id := range b.lineIDs() {
		ln := b.lineOf(id)
		cells := buf[:ln.length]
		b.readLine(ln, cells)
		if !lineFeasible(ln.hints, cells, budget) {
			lid := id
			return &lid
		}
	}
	return nil
}

// lineFeasible reports whether the hints admit at least one placement over
// the given cells.
func lineFeasible(hints Hints, cells []CellState, budget int) bool {
	n := len(cells)
	left, right := 0, n-1
	for left < n && cells[left] == Blank {
		left++
	}
	for right > left && cells[right] == Blank {
		right--
	}
	if len(hints) == 0 {
		for i := 0; i < n; i++ {
			if cells[i] == Filled {
				return false
			}
		}
		return true
	}
	if left >= n || hints.minSpan() > right-left+1 {
		return false
	}
	return hasPlacement(hints, cells, left, right, budget)
}

// unknownCount returns the number of Unknown cells left on the board.
func (b *Board) unknownCount() int {
	n := 0
	for _, s := range b.cells {
		if s == Unknown {
			n++
		}
	}
	return n
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
