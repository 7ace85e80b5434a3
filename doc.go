// Package picross solves Picross / Nonogram puzzles: grids of cells
// constrained by run-length hints on every row and column.
//
// 🚀 What is picross?
//
//	A small, thread-safe-per-board toolkit that brings together:
//		• Line logic: per-line deduction rules from exact fits to full
//		  placement enumeration
//		• Board propagation: dirty-line sweeps to a deterministic fixed point
//		• Search: guided binary guess-and-backtrack for puzzles deduction
//		  alone cannot finish
//		• Puzzle files: the plain-text .nano description format
//		• Rendering: hint headers, step labels, optional ANSI styling
//
// ✨ Why choose picross?
//
//   - Sound deductions – every forced cell holds in all legal fillings
//   - Explicit search – snapshot stack, no recursion, bounded by data
//   - Pure Go core – the solver itself carries no runtime dependencies
//   - Scriptable – each phase is a public API, not just a CLI
//
// Under the hood, everything is organized under four subpackages:
//
//	nonogram/    — boards, line solving, propagation, guess-and-backtrack
//	puzzle/      — .nano puzzle file parsing
//	render/      — text rendering with hint headers and ANSI styling
//	cmd/picross/ — the command-line solver
//
// Quick ASCII example:
//
//	  1|3|1
//	--------
//	1|- * -
//	3|* * *
//	1|- * -
//
//	a 3x3 plus sign, fully determined by its hints.
//
// Dive into the nonogram package docs for the rule ladder and the search
// discipline, and into cmd/picross for the file format help.
//
//	go get github.com/katalvlaran/picross
package picross
