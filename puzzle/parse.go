package puzzle

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// Sentinel errors for puzzle parsing.
var (
	// ErrBadDimensions indicates the size line is not 'RxC' with positive integers.
	ErrBadDimensions = errors.New("puzzle: expected '[rows]x[cols]' like '10x10' with positive integers")
	// ErrBadHeader indicates a missing or misspelled Rows:/Cols:/Done header.
	ErrBadHeader = errors.New("puzzle: missing or misspelled section header")
	// ErrBadHint indicates a hint entry that is not a positive integer.
	ErrBadHint = errors.New("puzzle: each hint entry must be a positive integer")
	// ErrMissingDone indicates the input ended before the Done sentinel,
	// so the declared column count cannot be confirmed fully supplied.
	ErrMissingDone = errors.New("puzzle: input ended before 'Done' sentinel")
)

// Puzzle is a parsed nonogram description: dimensions plus the ordered
// hint sequence for every row and column. Hintless lines are empty slices.
type Puzzle struct {
	Rows, Cols int
	RowHints   [][]int
	ColHints   [][]int
}

// parseState tracks progress through the fixed section order of the format.
type parseState int

const (
	stateSize parseState = iota
	stateRowHeader
	stateRows
	stateColHeader
	stateCols
	stateDone
)

// Parse reads a .nano puzzle description from r.
func Parse(r io.Reader) (*Puzzle, error) {
	var (
		p      *Puzzle
		state  = stateSize
		idx    int
		lineNo int
	)
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		lineNo++
		line := strings.TrimSpace(sc.Text())
		if isComment(line) {
			continue
		}
		// Blank lines are ignored everywhere except inside the Rows/Cols
		// sections, where a blank line is a valid hintless entry.
		if line == "" && state != stateRows && state != stateCols {
			continue
		}

		switch state {
		case stateSize:
			rows, cols, err := parseSize(line)
			if err != nil {
				return nil, lineErr(lineNo, err)
			}
			p = &Puzzle{
				Rows:     rows,
				Cols:     cols,
				RowHints: make([][]int, 0, rows),
				ColHints: make([][]int, 0, cols),
			}
			state = stateRowHeader

		case stateRowHeader:
			if !strings.EqualFold(line, "rows:") {
				return nil, lineErr(lineNo, fmt.Errorf("%w: expected 'Rows:', got %q", ErrBadHeader, line))
			}
			state = stateRows
			idx = 0

		case stateRows:
			hints, err := parseHintLine(line)
			if err != nil {
				return nil, lineErr(lineNo, err)
			}
			p.RowHints = append(p.RowHints, hints)
			idx++
			if idx >= p.Rows {
				state = stateColHeader
			}

		case stateColHeader:
			if !strings.EqualFold(line, "cols:") && !strings.EqualFold(line, "columns:") {
				return nil, lineErr(lineNo, fmt.Errorf("%w: expected 'Cols:' or 'Columns:', got %q", ErrBadHeader, line))
			}
			state = stateCols
			idx = 0

		case stateCols:
			hints, err := parseHintLine(line)
			if err != nil {
				return nil, lineErr(lineNo, err)
			}
			p.ColHints = append(p.ColHints, hints)
			idx++
			if idx >= p.Cols {
				state = stateDone
			}

		case stateDone:
			if !strings.EqualFold(line, "done") {
				return nil, lineErr(lineNo, fmt.Errorf("%w: expected 'Done', got %q", ErrBadHeader, line))
			}
			// Anything after the sentinel is ignored.
			return p, nil
		}
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return nil, lineErr(lineNo, ErrMissingDone)
}

// ParseFile opens and parses the puzzle file at path.
func ParseFile(path string) (*Puzzle, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("puzzle: open %s: %w", path, err)
	}
	defer f.Close()
	p, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return p, nil
}

// isComment reports whether the line is a comment.
func isComment(line string) bool {
	return strings.HasPrefix(line, "#") ||
		strings.HasPrefix(line, ";") ||
		strings.HasPrefix(line, "//")
}

// parseSize parses the 'RxC' dimension line.
func parseSize(line string) (rows, cols int, err error) {
	parts := strings.SplitN(line, "x", 2)
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("%w: got %q", ErrBadDimensions, line)
	}
	rows, err = strconv.Atoi(strings.TrimSpace(parts[0]))
	if err == nil {
		cols, err = strconv.Atoi(strings.TrimSpace(parts[1]))
	}
	if err != nil || rows < 1 || cols < 1 {
		return 0, 0, fmt.Errorf("%w: got %q", ErrBadDimensions, line)
	}
	return rows, cols, nil
}

// parseHintLine parses one row/column entry: space- or comma-separated
// positive integers. '0' or an empty line means no hints.
func parseHintLine(line string) ([]int, error) {
	if line == "" || line == "0" {
		return []int{}, nil
	}
	fields := strings.FieldsFunc(line, func(r rune) bool { return r == ' ' || r == ',' || r == '\t' })
	hints := make([]int, 0, len(fields))
	for _, f := range fields {
		n, err := strconv.Atoi(f)
		if err != nil || n < 1 {
			return nil, fmt.Errorf("%w: got %q", ErrBadHint, f)
		}
		hints = append(hints, n)
	}
	return hints, nil
}

// lineErr wraps an error with its 1-based input line number.
func lineErr(lineNo int, err error) error {
	return fmt.Errorf("line %d: %w", lineNo, err)
}
