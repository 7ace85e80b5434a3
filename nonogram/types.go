package nonogram

// types.go declares the core types, configuration options, and sentinel
// errors shared by the whole package.

import (
	"errors"
	"fmt"
)

// Sentinel errors returned by the nonogram solver.
var (
	// ErrEmptyBoard indicates the puzzle declares zero rows or zero columns.
	ErrEmptyBoard = errors.New("nonogram: board must have at least one row and one column")

	// ErrBadHint indicates a hint run that is zero or negative.
	ErrBadHint = errors.New("nonogram: hint runs must be positive")

	// ErrHintsTooLong indicates a line whose hints cannot fit its length
	// (sum of runs plus mandatory single-cell gaps exceeds the line).
	ErrHintsTooLong = errors.New("nonogram: hints cannot fit the line length")

	// ErrIllegalLine indicates a line whose fixed cells admit no placement
	// of its hints. Wrapped by IllegalLineError to carry the line identity.
	ErrIllegalLine = errors.New("nonogram: line admits no placement of its hints")

	// ErrGuessingDisabled indicates GuessStep was called on a Solver whose
	// Options.Force is false.
	ErrGuessingDisabled = errors.New("nonogram: guessing disabled; set Options.Force")

	// ErrBadEnumerationLimit indicates Options.EnumerationLimit is not positive.
	ErrBadEnumerationLimit = errors.New("nonogram: EnumerationLimit must be positive")

	// ErrBadGuessPolicy indicates an unrecognized Options.GuessPolicy value.
	ErrBadGuessPolicy = errors.New("nonogram: unknown GuessPolicy")
)

// CellState is the knowledge state of a single grid cell.
// Unknown is the zero value; information only ever grows
// (Unknown → Filled or Unknown → Blank), except by explicit snapshot
// rollback during guided search.
type CellState uint8

const (
	// Unknown means the cell has not been deduced yet.
	Unknown CellState = iota
	// Filled means the cell belongs to a hint run.
	Filled
	// Blank means the cell belongs to no hint run.
	Blank
)

// String returns the conventional single-character glyph for the state.
func (s CellState) String() string {
	switch s {
	case Filled:
		return "*"
	case Blank:
		return "-"
	default:
		return "."
	}
}

// Hints is the ordered sequence of run lengths for one line.
// An empty Hints means the whole line is Blank. Immutable once loaded.
type Hints []int

// minSpan returns the minimum number of cells the hints occupy:
// sum of runs plus one mandatory gap between consecutive runs.
// An empty Hints needs zero cells.
func (h Hints) minSpan() int {
	if len(h) == 0 {
		return 0
	}
	span := len(h) - 1
	for _, run := range h {
		span += run
	}
	return span
}

// max returns the largest run, or 0 for empty Hints.
func (h Hints) max() int {
	m := 0
	for _, run := range h {
		if run > m {
			m = run
		}
	}
	return m
}

// Axis distinguishes row lines from column lines.
type Axis uint8

const (
	// AxisRow identifies a horizontal line.
	AxisRow Axis = iota
	// AxisCol identifies a vertical line.
	AxisCol
)

// String returns "row" or "col".
func (a Axis) String() string {
	if a == AxisCol {
		return "col"
	}
	return "row"
}

// LineID identifies one line of the board: an axis plus a zero-based index.
type LineID struct {
	Axis  Axis
	Index int
}

// String formats the identity as e.g. "row 3" or "col 7".
func (id LineID) String() string {
	return fmt.Sprintf("%s %d", id.Axis, id.Index)
}

// IllegalLineError reports a line whose current fixed cells contradict its
// hints: no placement of the runs survives. During pure deterministic
// propagation of a well-formed puzzle this signals inconsistent input;
// during guided search it is the expected trigger for a backtrack.
type IllegalLineError struct {
	Line LineID
}

// Error implements the error interface.
func (e *IllegalLineError) Error() string {
	return fmt.Sprintf("nonogram: %s admits no placement of its hints", e.Line)
}

// Unwrap makes errors.Is(err, ErrIllegalLine) hold.
func (e *IllegalLineError) Unwrap() error { return ErrIllegalLine }

// Status is the terminal outcome of a propagation pass or a whole solve.
type Status uint8

const (
	// StatusSolved means every cell is known and every line matches its hints.
	StatusSolved Status = iota
	// StatusStalled means a fixed point was reached with Unknown cells left.
	StatusStalled
	// StatusIllegal means some line admits no placement of its hints.
	StatusIllegal
	// StatusUnsatisfiable means the guided search exhausted every branch.
	StatusUnsatisfiable
)

// String returns a human-readable status name.
func (s Status) String() string {
	switch s {
	case StatusSolved:
		return "solved"
	case StatusStalled:
		return "stalled"
	case StatusIllegal:
		return "illegal"
	case StatusUnsatisfiable:
		return "unsatisfiable"
	default:
		return "unknown"
	}
}

// GuessPolicy selects the heuristic used to pick the next speculative cell.
// The choice affects only performance, never correctness: any Unknown cell
// with a non-unanimous fill tally is a valid branch point.
type GuessPolicy uint8

const (
	// GuessFewestPlacements branches on the line with the fewest surviving
	// hint placements, minimizing the branching factor.
	GuessFewestPlacements GuessPolicy = iota
	// GuessFirstUnknown branches on the first Unknown cell in row-major
	// order. Cheap to pick, usually slower to solve.
	GuessFirstUnknown
)

// DefaultEnumerationLimit caps the number of hint placements examined per
// line before the enumeration rule gives up for that line.
const DefaultEnumerationLimit = 1 << 20

// Options configures a Solver.
//
//   - Force enables the guided guess-and-backtrack phase after the
//     deterministic phase stalls. Off by default: a stalled board is then
//     reported as StatusStalled.
//   - GuessPolicy picks the heuristic for the next speculative cell.
//   - EnumerationLimit is the maximum number of placements examined per
//     line enumeration. Must be positive. Lines exceeding the cap skip the
//     enumeration rule (sound: fewer deductions, never wrong ones).
type Options struct {
	Force            bool
	GuessPolicy      GuessPolicy
	EnumerationLimit int
}

// DefaultOptions returns the canonical configuration:
// deterministic-only solving with the fewest-placements guess policy and
// DefaultEnumerationLimit.
func DefaultOptions() Options {
	return Options{
		Force:            false,
		GuessPolicy:      GuessFewestPlacements,
		EnumerationLimit: DefaultEnumerationLimit,
	}
}

// validate rejects out-of-range option values with sentinel errors.
func (o Options) validate() error {
	if o.EnumerationLimit <= 0 {
		return ErrBadEnumerationLimit
	}
	if o.GuessPolicy != GuessFewestPlacements && o.GuessPolicy != GuessFirstUnknown {
		return ErrBadGuessPolicy
	}
	return nil
}
