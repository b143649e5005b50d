package main

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"

	"github.com/fwojciec/puzzlefetch"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx     context.Context
	Stdout  io.Writer
	Stderr  io.Writer
	Logger  *slog.Logger
	Archive puzzlefetch.ArchiveService
	Wordle  puzzlefetch.WordleService
	Sudoku  puzzlefetch.SudokuService
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Browser bool `help:"Fetch pages with a headless browser instead of plain HTTP"`
	Verbose bool `short:"v" help:"Enable verbose logging"`

	Wordle  WordleCmd  `cmd:"" help:"Fetch today's Wordle answer"`
	Sudoku  SudokuCmd  `cmd:"" help:"Fetch today's hard Sudoku puzzle"`
	Today   TodayCmd   `cmd:"" help:"Fetch both of today's puzzles"`
	History HistoryCmd `cmd:"" help:"List archived puzzles"`
}

// WordleCmd is the "wordle" subcommand.
type WordleCmd struct {
	JSON bool `help:"Print the result as JSON"`
}

// SudokuCmd is the "sudoku" subcommand.
type SudokuCmd struct {
	JSON     bool `help:"Print the result as JSON"`
	Solution bool `help:"Also print the solution grid"`
}

// TodayCmd is the "today" subcommand.
type TodayCmd struct {
	JSON bool `help:"Print the results as JSON"`
}

// HistoryCmd is the "history" subcommand.
type HistoryCmd struct {
	Kind  string `help:"Filter by kind (wordle or sudoku)"`
	Limit int    `default:"14" help:"Maximum number of entries to show"`
}

// logger returns the configured logger, or a discarding one when unset.
func (d *Dependencies) logger() *slog.Logger {
	if d.Logger != nil {
		return d.Logger
	}
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// archivePuzzle stores a fetched puzzle best-effort: an archive write
// failure is logged but never fails the fetch command itself.
func archivePuzzle(deps *Dependencies, kind, date string, payload any) {
	if deps.Archive == nil {
		return
	}

	encoded, err := json.Marshal(payload)
	if err != nil {
		deps.logger().Warn("failed to encode archive payload", "kind", kind, "err", err)
		return
	}

	entry := &puzzlefetch.ArchiveEntry{
		Kind:    kind,
		Date:    date,
		Payload: string(encoded),
	}
	if err := deps.Archive.CreateEntry(deps.Ctx, entry); err != nil {
		deps.logger().Warn("failed to archive puzzle", "kind", kind, "date", date, "err", err)
	}
}
