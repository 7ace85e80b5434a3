package nonogram

// placements.go enumerates every placement of a line's hint runs that is
// consistent with the cells already fixed. A placement assigns each run a
// start position inside the window [left,right]; runs keep their order and
// are separated by at least one non-run cell.
//
// Enumeration walks start positions like an odometer: the last run advances
// one cell at a time; when it passes its rightmost legal start, the previous
// run advances and every later run snaps back to its tightest legal spot.
// This visits each placement exactly once in lexicographic order.

// placementTally accumulates per-cell statistics over surviving placements.
type placementTally struct {
	// fill[i] counts surviving placements in which cell left+i is covered
	// by a run.
	fill []uint32
	// count is the number of surviving placements.
	count int
	// capped reports that enumeration stopped at the placement budget and
	// the tally is therefore incomplete.
	capped bool
}

// enumeratePlacements visits every placement of hints within cells[left..right]
// that is consistent with the fixed cells, invoking visit with the run start
// positions (the slice is reused between calls; copy it to retain).
// A nil visit is allowed when only the survivor count matters.
//
// Enumeration stops early once either budget placements have been examined
// (returning capped=true) or visit returns false.
//
// Consistency checks per candidate:
//   - no run sits on a Blank cell;
//   - every Filled cell is covered by some run.
//
// (The second check subsumes the usual "no Filled cell adjacent to a run"
// conditions: an uncovered Filled neighbor fails coverage outright.)
func enumeratePlacements(hints Hints, cells []CellState, left, right, budget int, visit func(starts []int) bool) (count int, capped bool) {
	k := len(hints)
	if k == 0 {
		// The empty placement survives iff no Filled cell exists.
		for i := left; i <= right; i++ {
			if cells[i] == Filled {
				return 0, false
			}
		}
		return 1, false
	}

	// Tightest-left and tightest-right start positions per run, ignoring
	// fixed cells; they bound the odometer digits.
	loStart := make([]int, k)
	hiStart := make([]int, k)
	pos := left
	var i int
	for i = 0; i < k; i++ {
		loStart[i] = pos
		pos += hints[i] + 1
	}
	pos = right + 1
	for i = k - 1; i >= 0; i-- {
		pos -= hints[i]
		hiStart[i] = pos
		pos--
	}
	if hiStart[0] < loStart[0] {
		return 0, false // hints cannot fit the window at all
	}

	starts := make([]int, k)
	copy(starts, loStart)
	examined := 0

	for {
		examined++
		if budget > 0 && examined > budget {
			return count, true
		}
		if placementFits(hints, cells, left, right, starts) {
			count++
			if visit != nil && !visit(starts) {
				return count, false
			}
		}

		// Odometer advance: bump the last run; on overflow carry leftward
		// and re-pack everything to the right of the bumped digit.
		i = k - 1
		for i >= 0 {
			starts[i]++
			if starts[i] <= hiStart[i] {
				break
			}
			i--
		}
		if i < 0 {
			return count, false
		}
		for j := i + 1; j < k; j++ {
			starts[j] = starts[j-1] + hints[j-1] + 1
		}
	}
}

// placementFits reports whether the given run starts are consistent with
// the fixed cells in cells[left..right].
func placementFits(hints Hints, cells []CellState, left, right int, starts []int) bool {
	// Runs must avoid Blank cells.
	var i, j int
	for i = range hints {
		for j = starts[i]; j < starts[i]+hints[i]; j++ {
			if cells[j] == Blank {
				return false
			}
		}
	}
	// Every Filled cell must be covered by a run.
	run := 0
	for j = left; j <= right; j++ {
		if cells[j] != Filled {
			continue
		}
		for run < len(hints) && starts[run]+hints[run] <= j {
			run++
		}
		if run >= len(hints) || j < starts[run] {
			return false
		}
	}
	return true
}

// tallyPlacements runs enumeratePlacements and accumulates per-cell fill
// counts over the window. The fill slice is indexed from left (cell left+i).
func tallyPlacements(hints Hints, cells []CellState, left, right, budget int) placementTally {
	t := placementTally{fill: make([]uint32, right-left+1)}
	t.count, t.capped = enumeratePlacements(hints, cells, left, right, budget, func(starts []int) bool {
		for i, h := range hints {
			for j := starts[i]; j < starts[i]+h; j++ {
				t.fill[j-left]++
			}
		}
		return true
	})
	return t
}

// hasPlacement reports whether at least one placement survives the fixed
// cells; it stops at the first survivor.
func hasPlacement(hints Hints, cells []CellState, left, right, budget int) bool {
	count, capped := enumeratePlacements(hints, cells, left, right, budget, func([]int) bool {
		return false // first survivor is enough
	})
	// A capped enumeration found no survivor among the examined prefix;
	// treat it as feasible rather than condemn the line on partial evidence.
	return count > 0 || capped
}
