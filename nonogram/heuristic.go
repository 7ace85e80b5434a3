package nonogram

// heuristic.go picks the next speculative move. Correctness never depends
// on the pick — any Unknown cell whose fill tally is non-unanimous is a
// sound branch point — so the policies here only trade search speed.

// chooseGuess selects a (line, position, state) candidate according to the
// configured policy. ok=false means no Unknown cell admits a branch, which
// at a legal fixed point is only reachable through enumeration caps.
func (s *Solver) chooseGuess() (Guess, bool) {
	switch s.opts.GuessPolicy {
	case GuessFirstUnknown:
		return s.firstUnknownGuess()
	default:
		return s.fewestPlacementsGuess()
	}
}

// firstUnknownGuess branches on the first Unknown cell in row-major order,
// trying Filled first.
func (s *Solver) firstUnknownGuess() (Guess, bool) {
	b := s.board
	for r := 0; r < b.rows; r++ {
		for c := 0; c < b.cols; c++ {
			if b.cells[r*b.cols+c] == Unknown {
				return Guess{Line: LineID{AxisRow, r}, Pos: c, State: Filled}, true
			}
		}
	}
	return Guess{}, false
}

// fewestPlacementsGuess scans every unsettled line, counts its surviving
// hint placements, and branches on the line with the fewest — the smallest
// branching factor. Within that line it picks the first Unknown cell whose
// fill tally is non-unanimous and speculates the majority state, so the
// first branch tried is the likelier one.
func (s *Solver) fewestPlacementsGuess() (Guess, bool) {
	b := s.board
	buf := make([]CellState, maxInt(b.rows, b.cols))

	best := Guess{}
	bestCount := -1
	found := false

	for _, id := range b.lineIDs() {
		solved, _ := b.lineFlags(id)
		if *solved {
			continue
		}
		ln := b.lineOf(id)
		cells := buf[:ln.length]
		b.readLine(ln, cells)
		if !hasUnknown(cells) {
			continue
		}

		left, right := window(cells)
		tally := tallyPlacements(ln.hints, cells, left, right, s.opts.EnumerationLimit)
		if tally.capped || tally.count == 0 {
			continue // too wide to measure, or illegal: not a guess target
		}
		if found && tally.count >= bestCount {
			continue
		}
		pos, state, ok := splitCell(cells, left, tally)
		if !ok {
			continue // every Unknown is unanimous; propagation will finish it
		}
		best = Guess{Line: id, Pos: pos, State: state}
		bestCount = tally.count
		found = true
		if bestCount == 2 {
			break // cannot do better than a binary line
		}
	}
	return best, found
}

// splitCell finds the first Unknown cell of the window that is Filled in
// some but not all surviving placements, and the majority state for it.
func splitCell(cells []CellState, left int, tally placementTally) (pos int, state CellState, ok bool) {
	for i, n := range tally.fill {
		j := left + i
		if cells[j] != Unknown {
			continue
		}
		if n == 0 || n == uint32(tally.count) {
			continue
		}
		if int(n)*2 >= tally.count {
			return j, Filled, true
		}
		return j, Blank, true
	}
	return 0, Unknown, false
}

// window returns the Blank-trimmed bounds of a line.
func window(cells []CellState) (left, right int) {
	left, right = 0, len(cells)-1
	for left < len(cells) && cells[left] == Blank {
		left++
	}
	for right > left && cells[right] == Blank {
		right--
	}
	return left, right
}

// hasUnknown reports whether any cell of the line is Unknown.
func hasUnknown(cells []CellState) bool {
	for _, c := range cells {
		if c == Unknown {
			return true
		}
	}
	return false
}
