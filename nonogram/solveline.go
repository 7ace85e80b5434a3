package nonogram

// solveline.go holds the per-line deduction engine. solveLine refines one
// row or column in place and is strictly monotonic: an Unknown cell may be
// promoted to Filled or Blank; a known cell is never touched. Rerunning it
// on its own output is a no-op.
//
// The rules form a speed ladder. Rules 1–3 are cheap strict refinements;
// rule 4 (full enumeration) is the only logically complete deduction and
// would reach the same fixed point alone, just slower.

// solveLine applies the rule ladder to cells, which holds a full copy of
// one line. It returns the indices it promoted, whether the line is now
// settled (no further deduction can ever change it), and ErrIllegalLine if
// the fixed cells provably contradict the hints.
//
// enumBudget caps the placements examined by rule 4 and the legality probe;
// a capped line simply yields no rule-4 deductions.
func solveLine(hints Hints, cells []CellState, enumBudget int) (changed []int, done bool, err error) {
	n := len(cells)

	// Rule 1: no hints — the whole line is Blank.
	if len(hints) == 0 {
		for i := 0; i < n; i++ {
			switch cells[i] {
			case Filled:
				return changed, false, ErrIllegalLine
			case Unknown:
				cells[i] = Blank
				changed = append(changed, i)
			}
		}
		return changed, true, nil
	}

	// Trim the window: runs can never extend into the Blank margins.
	left, right := 0, n-1
	for left < n && cells[left] == Blank {
		left++
	}
	for right > left && cells[right] == Blank {
		right--
	}
	if left >= n {
		return changed, false, ErrIllegalLine // hints exist but no space remains
	}
	available := right - left + 1
	span := hints.minSpan()
	if span > available {
		return changed, false, ErrIllegalLine
	}

	// Rule 2: exact fit — the hints occupy the window exactly, so the
	// unique placement is forced: runs left to right, single Blank gaps.
	if span == available {
		pos := left
		for i, h := range hints {
			for j := pos; j < pos+h; j++ {
				switch cells[j] {
				case Blank:
					return changed, false, ErrIllegalLine
				case Unknown:
					cells[j] = Filled
					changed = append(changed, j)
				}
			}
			pos += h
			if i < len(hints)-1 {
				switch cells[pos] {
				case Filled:
					return changed, false, ErrIllegalLine
				case Unknown:
					cells[pos] = Blank
					changed = append(changed, pos)
				}
				pos++
			}
		}
		return changed, true, nil
	}

	// Not worth going further when the line carries no information yet and
	// the slack swallows even the widest run: nothing is forcible.
	slack := available - span
	if slack >= hints.max() && windowUntouched(cells, left, right) {
		return nil, false, nil
	}

	// Rule 3: slack/overlap deduction. Pack the runs flush left and flush
	// right, sliding past Blank cells; where a run's two extreme placements
	// overlap, those cells are Filled in every placement. A window cell no
	// run can reach is Blank in every placement.
	loStarts, ok := packFlush(hints, cells, left, right, false)
	if !ok {
		return changed, false, ErrIllegalLine
	}
	hiStarts, ok := packFlush(hints, cells, left, right, true)
	if !ok {
		return changed, false, ErrIllegalLine
	}
	covered := make([]bool, available)
	for i, h := range hints {
		for j := hiStarts[i]; j < loStarts[i]+h; j++ { // extreme-placement overlap
			switch cells[j] {
			case Blank:
				return changed, false, ErrIllegalLine
			case Unknown:
				cells[j] = Filled
				changed = append(changed, j)
			}
		}
		for j := loStarts[i]; j < hiStarts[i]+h; j++ { // reachable span
			covered[j-left] = true
		}
	}
	for j := left; j <= right; j++ {
		if covered[j-left] {
			continue
		}
		switch cells[j] {
		case Filled:
			return changed, false, ErrIllegalLine
		case Unknown:
			cells[j] = Blank
			changed = append(changed, j)
		}
	}

	// Rule 4: full enumeration fallback. Tally surviving placements; a cell
	// covered in all of them is Filled, in none of them Blank.
	tally := tallyPlacements(hints, cells, left, right, enumBudget)
	if !tally.capped {
		if tally.count == 0 {
			return changed, false, ErrIllegalLine
		}
		for j := left; j <= right; j++ {
			if cells[j] != Unknown {
				continue
			}
			switch tally.fill[j-left] {
			case uint32(tally.count):
				cells[j] = Filled
				changed = append(changed, j)
			case 0:
				cells[j] = Blank
				changed = append(changed, j)
			}
		}
	}

	done = lineSettled(hints, cells, &changed)
	if done && !runsMatch(hints, cells) {
		// Complete but wrong: only reachable past a capped enumeration,
		// propagate it as the illegal-line signal it is.
		return changed, false, ErrIllegalLine
	}
	return changed, done, nil
}

// windowUntouched reports whether cells[left..right] is entirely Unknown.
func windowUntouched(cells []CellState, left, right int) bool {
	for i := left; i <= right; i++ {
		if cells[i] != Unknown {
			return false
		}
	}
	return true
}

// packFlush computes, for each run, its extreme legal start position when
// all runs are packed flush against one window edge, sliding past Blank
// cells (a run may never sit on a Blank). reverse=false packs flush left,
// reverse=true flush right. Returns ok=false when no packing exists, which
// proves the line illegal.
//
// Filled cells are deliberately ignored here: placements constrained only
// by Blanks are a superset of the truly legal ones, so any overlap forced
// from them holds in every legal placement too.
func packFlush(hints Hints, cells []CellState, left, right int, reverse bool) ([]int, bool) {
	k := len(hints)
	starts := make([]int, k)
	if !reverse {
		pos := left
		for i := 0; i < k; i++ {
			p, ok := slideRun(cells, pos, right, hints[i], +1)
			if !ok {
				return nil, false
			}
			starts[i] = p
			pos = p + hints[i] + 1
		}
		return starts, true
	}
	pos := right
	for i := k - 1; i >= 0; i-- {
		p, ok := slideRun(cells, pos, left, hints[i], -1)
		if !ok {
			return nil, false
		}
		starts[i] = p - hints[i] + 1
		pos = starts[i] - 2
	}
	return starts, true
}

// slideRun finds the first position at or beyond pos (in direction dir)
// where a run of length h fits without covering a Blank cell. For dir=+1,
// pos is the candidate start and bound the rightmost usable index; for
// dir=-1, pos is the candidate end and bound the leftmost usable index.
func slideRun(cells []CellState, pos, bound, h, dir int) (int, bool) {
	for {
		last := pos + dir*(h-1)
		if dir > 0 && last > bound || dir < 0 && last < bound {
			return 0, false
		}
		blockedAt := -1
		for j := 0; j < h; j++ {
			if cells[pos+dir*j] == Blank {
				blockedAt = pos + dir*j
			}
		}
		if blockedAt < 0 {
			return pos, true
		}
		pos = blockedAt + dir // restart just past the farthest blocking Blank
	}
}

// lineSettled reports whether the line is finished: either no Unknown
// remains, or the Filled runs already match the hints exactly, in which
// case every remaining Unknown is promoted to Blank (appending to changed).
func lineSettled(hints Hints, cells []CellState, changed *[]int) bool {
	if runsMatch(hints, cells) {
		for i := range cells {
			if cells[i] == Unknown {
				cells[i] = Blank
				*changed = append(*changed, i)
			}
		}
		return true
	}
	for i := range cells {
		if cells[i] == Unknown {
			return false
		}
	}
	return true
}

// runsMatch reports whether the maximal runs of Filled cells equal the
// hints exactly, in order.
func runsMatch(hints Hints, cells []CellState) bool {
	idx := 0
	run := 0
	for _, c := range cells {
		if c == Filled {
			run++
			continue
		}
		if run > 0 {
			if idx >= len(hints) || hints[idx] != run {
				return false
			}
			idx++
			run = 0
		}
	}
	if run > 0 {
		if idx >= len(hints) || hints[idx] != run {
			return false
		}
		idx++
	}
	return idx == len(hints)
}
