// Package puzzle parses the plain-text .nano/.nono nonogram description
// format into row and column hint sequences.
//
// Format:
//
//	# comment lines start with '#', ';' or '//'
//	10x10            — rows x columns, the first significant line
//	Rows:            — header (case-insensitive)
//	1 3 2            — one line of space- or comma-separated runs per row
//	0                — '0' or an empty entry means a hintless (all-blank) line
//	...
//	Cols:            — or 'Columns:'
//	4 3 1
//	...
//	Done             — required sentinel; proves every declared column
//	                   hint line was actually supplied
//
// Outside the Rows:/Cols: sections blank lines are ignored; inside them a
// blank line is a valid hintless entry.
//
// The parser checks shape only (dimensions, headers, integer runs, the
// Done sentinel). Whether the hints actually fit their lines is the
// solver's concern: nonogram.NewBoard rejects oversized hints.
//
// Errors:
//
//   - ErrBadDimensions: first line is not RxC with positive integers.
//   - ErrBadHeader: a Rows:/Cols:/Done header is missing or misspelled.
//   - ErrBadHint: a hint entry is not a positive integer.
//   - ErrMissingDone: input ended before the Done sentinel.
//
// All errors are wrapped with the 1-based input line number.
package puzzle
