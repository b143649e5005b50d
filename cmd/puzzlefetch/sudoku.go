package main

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/fwojciec/puzzlefetch"
)

// Run executes the sudoku command.
func (c *SudokuCmd) Run(deps *Dependencies) error {
	puzzle, err := deps.Sudoku.TodayPuzzle(deps.Ctx)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", puzzlefetch.ErrorMessage(err))
		return err
	}

	archivePuzzle(deps, puzzlefetch.KindSudoku, sudokuDate(puzzle), puzzle)

	if c.JSON {
		encoded, err := json.MarshalIndent(puzzle, "", "  ")
		if err != nil {
			return err
		}
		fmt.Fprintln(deps.Stdout, string(encoded))
		return nil
	}

	fmt.Fprintf(deps.Stdout, "%s Sudoku, %s\n\n", puzzle.Difficulty, puzzle.DisplayDate)
	fmt.Fprintln(deps.Stdout, formatBoard(puzzle.Puzzle))

	if c.Solution {
		fmt.Fprintln(deps.Stdout, "\nSolution:")
		fmt.Fprintln(deps.Stdout, formatBoard(puzzle.Solution))
	}

	return nil
}

// sudokuDate picks the archive date for a puzzle: the provider's print
// date when present, otherwise its display date.
func sudokuDate(puzzle *puzzlefetch.SudokuPuzzle) string {
	if puzzle.PrintDate != "" {
		return puzzle.PrintDate
	}
	return puzzle.DisplayDate
}

// formatBoard renders a board as a 9x9 grid with box separators.
// Blank cells (zeroes) render as dots.
func formatBoard(board puzzlefetch.Board) string {
	var b strings.Builder
	for r, row := range board {
		if r > 0 && r%3 == 0 {
			b.WriteString("------+-------+------\n")
		}
		for c, cell := range row {
			if c > 0 {
				b.WriteString(" ")
				if c%3 == 0 {
					b.WriteString("| ")
				}
			}
			if cell == 0 {
				b.WriteString(".")
			} else {
				fmt.Fprintf(&b, "%d", cell)
			}
		}
		if r < len(board)-1 {
			b.WriteString("\n")
		}
	}
	return b.String()
}
