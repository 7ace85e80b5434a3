package nonogram

// propagate.go drives line solving to a fixed point. A sweep visits every
// row then every column against the one shared matrix, so deductions made
// early in the sweep are already visible to the lines solved after them.
// Solved lines are skipped; clean (not dirty) lines are skipped too, since
// nothing they depend on changed since their last visit.

// Propagate runs full sweeps until a sweep changes no cell, then reports:
//
//   - StatusSolved   — no Unknown cells remain (and, by monotonic sound
//     deduction, every line matches its hints);
//   - StatusStalled  — a fixed point was reached with Unknown cells left;
//   - StatusIllegal  — some line admits no placement; the returned error
//     is an *IllegalLineError naming it. With correct input and no prior
//     speculative move this cannot happen; after a guess it is the normal
//     contradiction signal.
//
// Terminates in at most R·C progressing sweeps: each progressing sweep
// promotes at least one Unknown cell and cells are never demoted.
func (b *Board) Propagate() (Status, error) {
	return b.propagate(DefaultEnumerationLimit)
}

func (b *Board) propagate(enumBudget int) (Status, error) {
	buf := make([]CellState, maxInt(b.rows, b.cols))
	for {
		progressed, err := b.sweep(buf, enumBudget)
		if err != nil {
			return StatusIllegal, err
		}
		if !progressed {
			break
		}
	}
	if b.unknownCount() == 0 {
		return StatusSolved, nil
	}
	return StatusStalled, nil
}

// sweep runs the line solver once over every dirty, unsolved row and
// column, merging refinements back into the shared matrix. It reports
// whether any cell changed state.
func (b *Board) sweep(buf []CellState, enumBudget int) (bool, error) {
	b.sweeps++
	progressed := false
	for _, id := range b.lineIDs() {
		solved, dirty := b.lineFlags(id)
		if *solved || !*dirty {
			continue
		}
		*dirty = false // re-set by writeBack if a crossing line touches us

		ln := b.lineOf(id)
		cells := buf[:ln.length]
		b.readLine(ln, cells)
		changed, done, err := solveLine(ln.hints, cells, enumBudget)
		if len(changed) > 0 {
			// Merge even on error: partial refinements made before the
			// contradiction was noticed are still sound.
			b.writeBack(ln, cells, changed)
			progressed = true
		}
		if err != nil {
			return progressed, &IllegalLineError{Line: id}
		}
		if done {
			*solved = true
		}
	}
	return progressed, nil
}

// lineFlags returns pointers to the solved and dirty flags of a line.
func (b *Board) lineFlags(id LineID) (solved, dirty *bool) {
	if id.Axis == AxisRow {
		return &b.rowSolved[id.Index], &b.rowDirty[id.Index]
	}
	return &b.colSolved[id.Index], &b.colDirty[id.Index]
}
