package nonogram

// search.go implements the guided guess-and-backtrack phase ("force" mode)
// as an explicit state machine over an explicit snapshot stack, so search
// depth is bounded by data, not by the call stack.
//
// Branch discipline: every guess is binary (a cell is Filled or Blank).
// A snapshot saves the exact pre-guess board plus the choice taken; on
// contradiction the snapshot is popped, the board restored cell-for-cell,
// and the opposite state applied *without* a new snapshot — if that branch
// also contradicts, the next pop lands on the guess one level up. Each
// snapshot therefore holds exactly one untried alternative, each backtrack
// strictly shrinks the remaining choice set, and the search terminates.

// phase is the search state machine state.
type phase uint8

const (
	phaseDeterministic phase = iota
	phaseGuessing
	phaseBacktrack
	phaseSolved
	phaseExhausted
)

// Guess is one speculative move: set the cell at Pos of Line to State.
type Guess struct {
	Line  LineID
	Pos   int
	State CellState
}

// opposite returns the same cell with the other definite state.
func (g Guess) opposite() Guess {
	o := g
	if g.State == Filled {
		o.State = Blank
	} else {
		o.State = Filled
	}
	return o
}

// GuessOutcome classifies the effect of one GuessStep call.
type GuessOutcome uint8

const (
	// GuessApplied means a fresh speculative move was pushed and applied.
	GuessApplied GuessOutcome = iota
	// GuessBacktracked means a contradiction was rolled back and the
	// opposite state of the popped guess applied.
	GuessBacktracked
	// GuessExhausted means no snapshot remained to backtrack to, or no
	// Unknown cell was left to branch on.
	GuessExhausted
)

// GuessResult reports what one GuessStep did. Choice is meaningful for
// GuessApplied (the move taken) and GuessBacktracked (the opposite move
// applied after restoration).
type GuessResult struct {
	Outcome GuessOutcome
	Choice  Guess
}

// snapshot is a full independent copy of the board state taken just before
// a guess was applied, plus the guess itself. No slice aliases the live
// board, so restoration is exact and mutation-safe.
type snapshot struct {
	cells     []CellState
	rowSolved []bool
	colSolved []bool
	rowDirty  []bool
	colDirty  []bool
	choice    Guess
}

// Result summarizes a whole Solve run.
type Result struct {
	// Status is the terminal outcome: StatusSolved, StatusStalled (guessing
	// disabled), StatusIllegal (contradiction with guessing disabled), or
	// StatusUnsatisfiable (every branch exhausted).
	Status Status
	// Guesses counts speculative moves applied, Backtracks the rollbacks.
	Guesses, Backtracks int
	// Sweeps is the total number of propagation sweeps across all phases.
	Sweeps int
}

// Solver orchestrates the deterministic phase and, when Options.Force is
// set, the guided guess-and-backtrack phase over one Board.
type Solver struct {
	board *Board
	opts  Options
	stack []snapshot
	state phase

	guesses    int
	backtracks int
}

// NewSolver wraps a board with solving policy. The board is owned by the
// solver for the duration of the solve (no process-wide state is kept).
func NewSolver(b *Board, opts Options) (*Solver, error) {
	if err := opts.validate(); err != nil {
		return nil, err
	}
	return &Solver{board: b, opts: opts, state: phaseDeterministic}, nil
}

// Board returns the board under the solver, for inspection or rendering.
func (s *Solver) Board() *Board { return s.board }

// Depth returns the current snapshot stack depth (pending guesses).
func (s *Solver) Depth() int { return len(s.stack) }

// Solve runs propagation to a fixed point and, if enabled, alternates
// guessing and backtracking until the board is solved, proven
// unsatisfiable, or (with guessing disabled) stalled.
//
// A contradiction reached with no pending guess means the puzzle itself is
// inconsistent: reported as StatusIllegal with the offending line when
// guessing is disabled, StatusUnsatisfiable once the search has exhausted
// every branch otherwise.
func (s *Solver) Solve() (Result, error) {
	for {
		s.state = phaseDeterministic
		status, err := s.board.propagate(s.opts.EnumerationLimit)
		switch status {
		case StatusSolved:
			s.state = phaseSolved
			return s.result(StatusSolved), nil

		case StatusIllegal:
			if !s.opts.Force {
				return s.result(StatusIllegal), err
			}
			s.state = phaseBacktrack
			if len(s.stack) == 0 {
				s.state = phaseExhausted
				return s.result(StatusUnsatisfiable), nil
			}
			s.backtrack()

		case StatusStalled:
			if !s.opts.Force {
				return s.result(StatusStalled), nil
			}
			s.state = phaseGuessing
			g, ok := s.chooseGuess()
			if !ok {
				// Stalled, legal, yet nothing to branch on: give up rather
				// than loop. Reachable only through enumeration caps.
				s.state = phaseExhausted
				return s.result(StatusStalled), nil
			}
			s.push(g)
			s.board.setCell(g.Line, g.Pos, g.State)
			s.guesses++
		}
	}
}

// GuessStep performs exactly one step of the guess machinery, for callers
// that drive the solve incrementally (e.g. step-by-step rendering). It is
// meaningful after Propagate has returned StatusStalled or StatusIllegal.
//
// On an illegal board it pops and restores the latest snapshot and applies
// the opposite move (GuessBacktracked), or reports GuessExhausted when no
// snapshot remains. On a legal board it picks, pushes, and applies a fresh
// speculative move (GuessApplied).
func (s *Solver) GuessStep() (GuessResult, error) {
	if !s.opts.Force {
		return GuessResult{}, ErrGuessingDisabled
	}
	if s.board.firstIllegalLine(s.opts.EnumerationLimit) != nil {
		if len(s.stack) == 0 {
			s.state = phaseExhausted
			return GuessResult{Outcome: GuessExhausted}, nil
		}
		s.state = phaseBacktrack
		applied := s.backtrack()
		return GuessResult{Outcome: GuessBacktracked, Choice: applied}, nil
	}
	s.state = phaseGuessing
	g, ok := s.chooseGuess()
	if !ok {
		s.state = phaseExhausted
		return GuessResult{Outcome: GuessExhausted}, nil
	}
	s.push(g)
	s.board.setCell(g.Line, g.Pos, g.State)
	s.guesses++
	return GuessResult{Outcome: GuessApplied, Choice: g}, nil
}

// push saves a full independent copy of the board ahead of applying g.
func (s *Solver) push(g Guess) {
	b := s.board
	s.stack = append(s.stack, snapshot{
		cells:     append([]CellState(nil), b.cells...),
		rowSolved: append([]bool(nil), b.rowSolved...),
		colSolved: append([]bool(nil), b.colSolved...),
		rowDirty:  append([]bool(nil), b.rowDirty...),
		colDirty:  append([]bool(nil), b.colDirty...),
		choice:    g,
	})
}

// backtrack pops the latest snapshot, restores the board to it exactly,
// and applies the opposite of the popped choice. The popped snapshot is
// never reused. Returns the move applied.
func (s *Solver) backtrack() Guess {
	top := s.stack[len(s.stack)-1]
	s.stack = s.stack[:len(s.stack)-1]

	b := s.board
	copy(b.cells, top.cells)
	copy(b.rowSolved, top.rowSolved)
	copy(b.colSolved, top.colSolved)
	copy(b.rowDirty, top.rowDirty)
	copy(b.colDirty, top.colDirty)

	alt := top.choice.opposite()
	b.setCell(alt.Line, alt.Pos, alt.State)
	s.backtracks++
	return alt
}

// result assembles the Solve summary.
func (s *Solver) result(status Status) Result {
	return Result{
		Status:     status,
		Guesses:    s.guesses,
		Backtracks: s.backtracks,
		Sweeps:     s.board.sweeps,
	}
}
