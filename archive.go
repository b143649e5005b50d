package puzzlefetch

import (
	"context"
	"time"
)

// Archive entry kinds.
const (
	KindWordle = "wordle"
	KindSudoku = "sudoku"
)

// ArchiveEntry is a persisted record of a successfully fetched puzzle.
// The extraction pipelines themselves are stateless; archiving happens at
// the application boundary after a fetch succeeds.
type ArchiveEntry struct {
	ID        string    `json:"id"`
	Kind      string    `json:"kind"`
	Date      string    `json:"date"`
	Payload   string    `json:"payload"` // JSON-encoded WordleAnswer or SudokuPuzzle
	CreatedAt time.Time `json:"createdAt"`
}

// Validate returns an error if the entry contains invalid fields.
func (e *ArchiveEntry) Validate() error {
	if e.Kind != KindWordle && e.Kind != KindSudoku {
		return Errorf(EINVALID, "archive entry kind must be %q or %q", KindWordle, KindSudoku)
	}
	if e.Date == "" {
		return Errorf(EINVALID, "archive entry date required")
	}
	if e.Payload == "" {
		return Errorf(EINVALID, "archive entry payload required")
	}
	return nil
}

// ArchiveFilter represents a filter for FindEntries.
type ArchiveFilter struct {
	Kind *string `json:"kind"`
	Date *string `json:"date"`

	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}

// ArchiveService persists fetched puzzles for later display.
type ArchiveService interface {
	// CreateEntry stores a fetched puzzle. Storing a second entry with
	// the same kind and date replaces the earlier one.
	CreateEntry(ctx context.Context, entry *ArchiveEntry) error

	// FindEntries retrieves entries matching the filter, newest first.
	FindEntries(ctx context.Context, filter ArchiveFilter) ([]*ArchiveEntry, error)
}
