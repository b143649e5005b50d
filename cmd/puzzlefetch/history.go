package main

import (
	"encoding/json"
	"fmt"

	"github.com/fwojciec/puzzlefetch"
)

// Run executes the history command.
func (c *HistoryCmd) Run(deps *Dependencies) error {
	filter := puzzlefetch.ArchiveFilter{Limit: c.Limit}
	if c.Kind != "" {
		if c.Kind != puzzlefetch.KindWordle && c.Kind != puzzlefetch.KindSudoku {
			return puzzlefetch.Errorf(puzzlefetch.EINVALID, "unknown kind %q; use %q or %q", c.Kind, puzzlefetch.KindWordle, puzzlefetch.KindSudoku)
		}
		filter.Kind = &c.Kind
	}

	entries, err := deps.Archive.FindEntries(deps.Ctx, filter)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", puzzlefetch.ErrorMessage(err))
		return err
	}

	if len(entries) == 0 {
		fmt.Fprintln(deps.Stdout, "No archived puzzles yet. Run 'puzzlefetch today' to fetch some.")
		return nil
	}

	for _, entry := range entries {
		fmt.Fprintf(deps.Stdout, "%s  %-6s  %s\n", entry.Date, entry.Kind, summarize(entry))
	}

	return nil
}

// summarize renders a one-line description of an archived payload.
func summarize(entry *puzzlefetch.ArchiveEntry) string {
	switch entry.Kind {
	case puzzlefetch.KindWordle:
		var answer puzzlefetch.WordleAnswer
		if err := json.Unmarshal([]byte(entry.Payload), &answer); err == nil {
			return fmt.Sprintf("%s: %s", answer.Puzzle, answer.Word)
		}
	case puzzlefetch.KindSudoku:
		var puzzle puzzlefetch.SudokuPuzzle
		if err := json.Unmarshal([]byte(entry.Payload), &puzzle); err == nil {
			return fmt.Sprintf("%s Sudoku", puzzle.Difficulty)
		}
	}
	return "(unreadable payload)"
}
