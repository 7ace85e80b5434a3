package nonogram

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

// plusPicture is a 5×5 puzzle solvable by pure line deduction.
var plusPicture = []string{
	"--*--",
	"--*--",
	"*****",
	"--*--",
	"--*--",
}

// TestPropagate_SolvesDeterministic runs the fixed-point loop on a puzzle
// that needs no guessing and checks the exact final picture.
func TestPropagate_SolvesDeterministic(t *testing.T) {
	rowHints, colHints := puzzleOf(t, plusPicture)
	b, err := NewBoard(rowHints, colHints)
	if err != nil {
		t.Fatalf("NewBoard error: %v", err)
	}
	status, err := b.Propagate()
	if err != nil {
		t.Fatalf("Propagate error: %v", err)
	}
	if status != StatusSolved {
		t.Fatalf("Propagate status = %v; want solved", status)
	}
	if !b.IsSolved() {
		t.Error("IsSolved = false on a solved board")
	}
	if diff := cmp.Diff(plusPicture, boardNotation(b)); diff != "" {
		t.Errorf("final board mismatch (-want +got):\n%s", diff)
	}
	if b.Sweeps() > b.Rows()*b.Cols() {
		t.Errorf("Propagate took %d sweeps; bound is R*C = %d", b.Sweeps(), b.Rows()*b.Cols())
	}
}

// TestPropagate_Idempotent verifies a second Propagate at the fixed point
// does not sweep the board into a different state.
func TestPropagate_Idempotent(t *testing.T) {
	rowHints, colHints := puzzleOf(t, plusPicture)
	b, err := NewBoard(rowHints, colHints)
	if err != nil {
		t.Fatalf("NewBoard error: %v", err)
	}
	if _, err = b.Propagate(); err != nil {
		t.Fatalf("Propagate error: %v", err)
	}
	before := boardNotation(b)
	status, err := b.Propagate()
	if err != nil {
		t.Fatalf("second Propagate error: %v", err)
	}
	if status != StatusSolved {
		t.Errorf("second Propagate status = %v; want solved", status)
	}
	if diff := cmp.Diff(before, boardNotation(b)); diff != "" {
		t.Errorf("fixed point not stable (-before +after):\n%s", diff)
	}
}

// TestPropagate_Stalls verifies a legal puzzle with two symmetric solutions
// reaches a fixed point with Unknown cells and no illegality.
func TestPropagate_Stalls(t *testing.T) {
	// Rows [1],[1] × cols [1],[1]: the two diagonal fillings both satisfy
	// every hint, so no cell is deducible.
	b, err := NewBoard([][]int{{1}, {1}}, [][]int{{1}, {1}})
	if err != nil {
		t.Fatalf("NewBoard error: %v", err)
	}
	status, err := b.Propagate()
	if err != nil {
		t.Fatalf("Propagate error: %v", err)
	}
	if status != StatusStalled {
		t.Fatalf("Propagate status = %v; want stalled", status)
	}
	if !b.IsLegal() {
		t.Error("stalled board reported illegal")
	}
	if got := b.unknownCount(); got != 4 {
		t.Errorf("unknownCount = %d; want 4 (nothing deducible)", got)
	}
}

// TestPropagate_Illegal verifies an inconsistent puzzle surfaces the
// offending line. Rows demand every cell filled, columns demand one per
// column.
func TestPropagate_Illegal(t *testing.T) {
	b, err := NewBoard([][]int{{2}, {2}}, [][]int{{1}, {1}})
	if err != nil {
		t.Fatalf("NewBoard error: %v", err)
	}
	status, err := b.Propagate()
	if status != StatusIllegal {
		t.Fatalf("Propagate status = %v; want illegal", status)
	}
	var lineErr *IllegalLineError
	if !errors.As(err, &lineErr) {
		t.Fatalf("Propagate error = %v; want *IllegalLineError", err)
	}
	if !errors.Is(err, ErrIllegalLine) {
		t.Errorf("error does not unwrap to ErrIllegalLine: %v", err)
	}
	if lineErr.Line.Axis != AxisCol {
		t.Errorf("offending line = %v; want a column", lineErr.Line)
	}
}

// TestPropagate_ChangedCellCountsAsProgress pins the sweep accounting: the
// first sweep of the plus puzzle must report progress through row 2 alone.
func TestPropagate_ChangedCellCountsAsProgress(t *testing.T) {
	rowHints, colHints := puzzleOf(t, plusPicture)
	b, err := NewBoard(rowHints, colHints)
	if err != nil {
		t.Fatalf("NewBoard error: %v", err)
	}
	buf := make([]CellState, 5)
	progressed, err := b.sweep(buf, DefaultEnumerationLimit)
	if err != nil {
		t.Fatalf("sweep error: %v", err)
	}
	if !progressed {
		t.Error("first sweep reported no progress")
	}
	for c := 0; c < 5; c++ {
		if got := b.CellAt(2, c); got != Filled {
			t.Errorf("cell (2,%d) = %v after first sweep; want Filled", c, got)
		}
	}
}
