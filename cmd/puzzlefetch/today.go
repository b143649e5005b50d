package main

import (
	"encoding/json"
	"fmt"

	"github.com/fwojciec/puzzlefetch"
	"golang.org/x/sync/errgroup"
)

// Run executes the today command. The two pipelines are independent and
// share no state, so they fetch concurrently.
func (c *TodayCmd) Run(deps *Dependencies) error {
	var (
		answer *puzzlefetch.WordleAnswer
		puzzle *puzzlefetch.SudokuPuzzle
	)

	g, ctx := errgroup.WithContext(deps.Ctx)
	g.Go(func() error {
		a, err := deps.Wordle.TodayAnswer(ctx)
		if err != nil {
			return err
		}
		answer = a
		return nil
	})
	g.Go(func() error {
		p, err := deps.Sudoku.TodayPuzzle(ctx)
		if err != nil {
			return err
		}
		puzzle = p
		return nil
	})
	if err := g.Wait(); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", puzzlefetch.ErrorMessage(err))
		return err
	}

	archivePuzzle(deps, puzzlefetch.KindWordle, answer.Date, answer)
	archivePuzzle(deps, puzzlefetch.KindSudoku, sudokuDate(puzzle), puzzle)

	if c.JSON {
		encoded, err := json.MarshalIndent(map[string]any{
			"wordle": answer,
			"sudoku": puzzle,
		}, "", "  ")
		if err != nil {
			return err
		}
		fmt.Fprintln(deps.Stdout, string(encoded))
		return nil
	}

	fmt.Fprintf(deps.Stdout, "%s (%s): %s\n\n", answer.Puzzle, answer.Date, answer.Word)
	fmt.Fprintf(deps.Stdout, "%s Sudoku, %s\n\n", puzzle.Difficulty, puzzle.DisplayDate)
	fmt.Fprintln(deps.Stdout, formatBoard(puzzle.Puzzle))
	return nil
}
