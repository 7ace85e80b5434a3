// Command picross solves Picross/Nonogram puzzles described in the .nano
// text format, printing the board as it is deduced.
//
// Usage:
//
//	picross puzzle.nano            solve by pure line deduction
//	picross -f puzzle.nano         enable guess-and-backtrack when stalled
//	picross -v -o out.txt p.nano   verbose progress, plain-text copy to file
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/picross/nonogram"
	"github.com/katalvlaran/picross/puzzle"
	"github.com/katalvlaran/picross/render"
)

var (
	flagVerbose  int
	flagQuiet    bool
	flagForce    bool
	flagFileHelp bool
	flagOutFile  string
	flagUnknown  string
	flagFilled   string
	flagBlank    string
)

var rootCmd = &cobra.Command{
	Use:   "picross [infile]",
	Short: "Solve Picross/Nonogram puzzles from .nano files",
	Args:  cobra.MaximumNArgs(1),
	RunE:  run,

	SilenceUsage: true,
}

func init() {
	f := rootCmd.Flags()
	f.CountVarP(&flagVerbose, "verbose", "v", "be more verbose (repeatable)")
	f.BoolVarP(&flagQuiet, "quiet", "q", false, "don't write boards to the console")
	f.BoolVarP(&flagForce, "force", "f", false, "guess and backtrack when deduction stalls")
	f.BoolVarP(&flagFileHelp, "filehelp", "H", false, "show the expected infile format")
	f.StringVarP(&flagOutFile, "out-file", "o", "", "also write plain-text output to this file")
	f.StringVar(&flagUnknown, "uc", ".", "single character for unknown cells")
	f.StringVar(&flagFilled, "fc", "*", "single character for filled cells")
	f.StringVar(&flagBlank, "bc", "-", "single character for blank cells")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, args []string) error {
	if flagFileHelp {
		fmt.Print(fileHelp)
		return nil
	}
	if len(args) != 1 {
		return fmt.Errorf("expected one puzzle file (or --filehelp)")
	}
	setupLogging()

	p, err := puzzle.ParseFile(args[0])
	if err != nil {
		return err
	}
	board, err := nonogram.NewBoard(p.RowHints, p.ColHints)
	if err != nil {
		return err
	}
	opts := nonogram.DefaultOptions()
	opts.Force = flagForce
	solver, err := nonogram.NewSolver(board, opts)
	if err != nil {
		return err
	}

	out := newOutput(p)
	defer out.close()

	out.headline(fmt.Sprintf("* %s - %d rows x %d cols", args[0], p.Rows, p.Cols))
	out.board(board, "0")

	return drive(solver, out)
}

// drive alternates propagation and (when forced) guess steps, printing the
// board after every phase, until a terminal state is reached.
func drive(solver *nonogram.Solver, out *output) error {
	board := solver.Board()
	step := 0
	for {
		step++
		status, err := board.Propagate()
		out.board(board, fmt.Sprintf("%d", step))

		switch status {
		case nonogram.StatusSolved:
			out.say(solvedStyle, "*** SOLVED!")
			return nil

		case nonogram.StatusIllegal:
			if !flagForce {
				out.say(deadStyle, fmt.Sprintf("* %v", err))
				return fmt.Errorf("puzzle is inconsistent: %w", err)
			}
			slog.Debug("contradiction", "err", err)

		case nonogram.StatusStalled:
			if !flagForce {
				out.say(deadStyle, "Unsolved, but couldn't find anything else to do.")
				return nil
			}
		}

		res, err := solver.GuessStep()
		if err != nil {
			return err
		}
		switch res.Outcome {
		case nonogram.GuessApplied:
			slog.Info("guess", "line", res.Choice.Line, "pos", res.Choice.Pos, "state", res.Choice.State, "depth", solver.Depth())
		case nonogram.GuessBacktracked:
			slog.Info("backtrack", "line", res.Choice.Line, "pos", res.Choice.Pos, "state", res.Choice.State, "depth", solver.Depth())
		case nonogram.GuessExhausted:
			out.say(deadStyle, "* Unsatisfiable: no consistent filling exists.")
			return fmt.Errorf("puzzle is unsatisfiable")
		}
	}
}

// setupLogging maps -v counts onto slog levels on stderr.
func setupLogging() {
	level := slog.LevelWarn
	switch {
	case flagVerbose >= 2:
		level = slog.LevelDebug
	case flagVerbose == 1:
		level = slog.LevelInfo
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))
}

var (
	solvedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("2")).Bold(true)
	deadStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("1")).Bold(true)
)

// styled applies the style only when stdout is a terminal.
func styled(st lipgloss.Style, s string) string {
	if !isatty.IsTerminal(os.Stdout.Fd()) {
		return s
	}
	return st.Render(s)
}

// output fans board renderings out to the console and the optional file.
type output struct {
	console *render.Renderer
	file    *render.Renderer
	outFile *os.File
}

func newOutput(p *puzzle.Puzzle) *output {
	glyphs := render.Glyphs{Unknown: glyph(flagUnknown, '.'), Filled: glyph(flagFilled, '*'), Blank: glyph(flagBlank, '-')}
	o := &output{}
	if !flagQuiet {
		color := isatty.IsTerminal(os.Stdout.Fd())
		o.console = render.New(p.RowHints, p.ColHints, glyphs, color)
	}
	if flagOutFile != "" {
		f, err := os.Create(flagOutFile)
		if err != nil {
			slog.Warn("cannot open out-file, skipping", "path", flagOutFile, "err", err)
		} else {
			o.outFile = f
			o.file = render.New(p.RowHints, p.ColHints, glyphs, false)
		}
	}
	return o
}

// glyph picks the first byte of a flag value, falling back on the default.
func glyph(s string, def byte) byte {
	if len(s) == 0 {
		return def
	}
	return s[0]
}

func (o *output) board(b *nonogram.Board, label string) {
	cells := b.Cells()
	if o.console != nil {
		fmt.Println(o.console.Render(cells, label))
	}
	if o.file != nil {
		fmt.Fprintln(o.outFile, o.file.Render(cells, label))
	}
}

// headline prints a plain status line to the console and the file.
func (o *output) headline(s string) {
	if o.console != nil {
		fmt.Println(s)
	}
	if o.outFile != nil {
		fmt.Fprintln(o.outFile, s)
	}
}

// say prints a styled status line to the console and its plain form to the
// file.
func (o *output) say(st lipgloss.Style, s string) {
	if o.console != nil {
		fmt.Println(styled(st, s))
	}
	if o.outFile != nil {
		fmt.Fprintln(o.outFile, s)
	}
}

func (o *output) close() {
	if o.outFile != nil {
		_ = o.outFile.Close()
	}
}

const fileHelp = `Comment lines starting with #, ; or // are ignored.
Blank lines are ignored EXCEPT in Rows: and Cols: sections, where they are
valid (hintless) entries.

The first non-comment line must be [rows]x[columns]:
    10x10
The next line must be 'Rows:' (case insensitive):
    Rows:
Then one line of space- or comma-separated numbers per row:
    1 3 2
    2 2
Use '0' or a blank line for a row with no filled cells.
After one line per row, the next line must be 'Cols:' or 'Columns:':
    Cols:
Then one line per column, same format:
    0
    4 3 1
Finally, 'Done' (case insensitive):
    Done
`
