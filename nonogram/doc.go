// Package nonogram solves Picross/Nonogram logic puzzles: given run-length
// hints for every row and column of an R×C grid, deduce for each cell
// whether it is Filled or Blank.
//
// What:
//
//   - Board wraps a single row-major cell matrix; rows and columns are thin
//     index-mapping views over the same storage, so a deduction made while
//     solving a row is immediately visible to every crossing column.
//   - The line solver refines one row or column at a time through a ladder
//     of rules: zero-hint shortcut, exact-fit shortcut, slack/overlap
//     deduction, and a full placement-enumeration fallback. Every rule is
//     monotonic: an Unknown cell may become Filled or Blank, but a known
//     cell is never reversed.
//   - Propagate sweeps all rows and columns to a fixed point (no sweep
//     changes any cell), tracking per-line solved/dirty state so settled
//     lines are skipped.
//   - Solver adds guided guessing on top of propagation: when the
//     deterministic phase stalls, it picks a low-branching line, pushes a
//     full board snapshot, applies a speculative cell, and rolls back to
//     the exact saved state on contradiction.
//
// Why:
//
//   - Many published puzzles are solvable by pure line-by-line deduction;
//     the propagation fixed point handles those in a handful of sweeps.
//   - Harder puzzles stall with legal but ambiguous boards; the snapshot
//     stack turns the solver into a complete backtracking search without
//     tying recursion depth to the call stack.
//
// Complexity:
//
//   - Line enumeration: O(P·L) per line, where P is the number of hint
//     placements surviving the fixed cells and L the line length. P is
//     capped by Options.EnumerationLimit; exceeding the cap skips the rule
//     (fewer deductions, never wrong ones).
//   - Propagate: at most R·C progressing sweeps; each progressing sweep
//     promotes at least one Unknown cell.
//   - Guided search: exponential worst case, bounded by the finite set of
//     (line, position, state) choices; each backtrack strictly shrinks it.
//
// Errors:
//
//   - ErrEmptyBoard: the puzzle declares zero rows or zero columns.
//   - ErrBadHint: a hint run is zero or negative.
//   - ErrHintsTooLong: a line's hints cannot fit its length.
//   - ErrIllegalLine: a line's fixed cells admit no hint placement;
//     carried with line identity by IllegalLineError.
//   - ErrGuessingDisabled: GuessStep called without Options.Force.
//
// See cmd/picross for the command-line front end, puzzle for the .nano
// file format, and render for board pretty-printing.
package nonogram
