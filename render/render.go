// Package render pretty-prints nonogram boards as text: hint headers on
// the top and left edges, one configurable glyph per cell, and an optional
// ANSI-styled variant for terminals.
//
// Layout (a 2x3 board with column hints [1,2,3], [4,4], [10,2]):
//
//	      1| |
//	       | |1
//	      2|4|0
//	       | |
//	      3|4|2
//	------------
//	1 3 2|. . .
//	  4 4|. . .
//
// Row headers are right-justified to the widest row; column headers are
// rotated vertically, one digit per text row, with tens digits stacked
// above units for two-digit runs.
package render

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/katalvlaran/picross/nonogram"
)

// Glyphs selects the character printed for each cell state.
type Glyphs struct {
	Unknown, Filled, Blank byte
}

// DefaultGlyphs returns the conventional glyph set: '.' unknown,
// '*' filled, '-' blank.
func DefaultGlyphs() Glyphs {
	return Glyphs{Unknown: '.', Filled: '*', Blank: '-'}
}

// Renderer formats boards of one fixed hint geometry. Build once per
// puzzle with New; Render may then be called for every intermediate state.
type Renderer struct {
	glyphs     Glyphs
	color      bool
	rowHeaders []string
	colHeaders []string
	leftWidth  int

	unknownStyle lipgloss.Style
	filledStyle  lipgloss.Style
	labelStyle   lipgloss.Style
}

// New builds a Renderer for the given hint geometry. With color=true,
// Render emits ANSI-styled cells (dim unknowns, reverse-video fills) and a
// highlighted label; otherwise plain text suitable for file output.
func New(rowHints, colHints [][]int, glyphs Glyphs, color bool) *Renderer {
	rowHeaders, width := buildRowHeaders(rowHints)
	return &Renderer{
		glyphs:       glyphs,
		color:        color,
		rowHeaders:   rowHeaders,
		colHeaders:   buildColHeaders(colHints, width),
		leftWidth:    width,
		unknownStyle: lipgloss.NewStyle().Faint(true),
		filledStyle:  lipgloss.NewStyle().Reverse(true),
		labelStyle:   lipgloss.NewStyle().Foreground(lipgloss.Color("6")), // cyan
	}
}

// Render formats one board state. label, when non-empty, is overlaid on
// the top-left corner (the original uses the solve step number there).
// cells is the row-major matrix from Board.Cells.
func (rd *Renderer) Render(cells [][]nonogram.CellState, label string) string {
	var sb strings.Builder
	for i, h := range rd.colHeaders {
		if i == 0 && label != "" {
			sb.WriteString(rd.overlayLabel(h, label))
		} else {
			sb.WriteString(h)
		}
		sb.WriteByte('\n')
	}
	for r, row := range cells {
		sb.WriteString(rd.rowHeaders[r])
		for _, cell := range row {
			sb.WriteString(rd.cell(cell))
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

// cell returns the two-character glyph for one cell state.
func (rd *Renderer) cell(s nonogram.CellState) string {
	switch s {
	case nonogram.Filled:
		if rd.color {
			return rd.filledStyle.Render(" ") + " "
		}
		return string(rd.glyphs.Filled) + " "
	case nonogram.Blank:
		return string(rd.glyphs.Blank) + " "
	default:
		if rd.color {
			return rd.unknownStyle.Render(string(rd.glyphs.Unknown)) + " "
		}
		return string(rd.glyphs.Unknown) + " "
	}
}

// overlayLabel writes the label over the left margin of the first header
// line, right-justified to the margin width.
func (rd *Renderer) overlayLabel(headerLine, label string) string {
	w := rd.leftWidth
	if len(label) > w {
		label = label[:w]
	}
	pad := fmt.Sprintf("%*s", w, label)
	rest := ""
	if len(headerLine) > w {
		rest = headerLine[w:]
	}
	if rd.color {
		return rd.labelStyle.Render(pad) + rest
	}
	return pad + rest
}

// buildRowHeaders renders each row's hints as "1 3 2|", right-justified to
// the widest row. Returns the headers and the margin width before the bar.
func buildRowHeaders(rowHints [][]int) ([]string, int) {
	texts := make([]string, len(rowHints))
	width := 1
	for i, hints := range rowHints {
		parts := make([]string, len(hints))
		for j, n := range hints {
			parts[j] = fmt.Sprintf("%d", n)
		}
		texts[i] = strings.Join(parts, " ")
		if len(texts[i]) > width {
			width = len(texts[i])
		}
	}
	headers := make([]string, len(texts))
	for i, t := range texts {
		headers[i] = fmt.Sprintf("%*s|", width, t)
	}
	return headers, width + 1 // +1 for the bar
}

// buildColHeaders renders the column hints rotated vertically: one digit
// per text row, a blank row between runs, tens digits stacked above units.
// Columns are joined with '|' so each column occupies two characters,
// matching the two-character cell glyphs. A dashed rule closes the block.
func buildColHeaders(colHints [][]int, leftWidth int) []string {
	height := 1
	for _, hints := range colHints {
		h := colHeaderHeight(hints)
		if h > height {
			height = h
		}
	}
	grid := make([][]byte, height)
	for y := range grid {
		grid[y] = make([]byte, len(colHints))
		for x := range grid[y] {
			grid[y][x] = ' '
		}
	}
	for x, hints := range colHints {
		y := height - colHeaderHeight(hints) // bottom-align the column
		for _, n := range hints {
			if n >= 10 {
				grid[y][x] = byte('0' + n/10)
				y++
				n %= 10
			}
			grid[y][x] = byte('0' + n)
			y += 2
		}
	}
	margin := strings.Repeat(" ", leftWidth)
	lines := make([]string, 0, height+1)
	for y := 0; y < height; y++ {
		cols := make([]string, len(grid[y]))
		for x, ch := range grid[y] {
			cols[x] = string(ch)
		}
		lines = append(lines, margin+strings.Join(cols, "|"))
	}
	ruleWidth := leftWidth + 2*len(colHints)
	lines = append(lines, strings.Repeat("-", ruleWidth))
	return lines
}

// colHeaderHeight is the number of text rows one column's hints occupy:
// two per run minus the trailing gap, plus one extra row per two-digit run.
func colHeaderHeight(hints []int) int {
	if len(hints) == 0 {
		return 1
	}
	h := 2*len(hints) - 1
	for _, n := range hints {
		if n >= 10 {
			h++
		}
	}
	return h
}
