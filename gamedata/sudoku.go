package gamedata

import (
	"context"
	"encoding/json"

	"github.com/fwojciec/puzzlefetch"
)

// PuzzleURL is the provider's hard-difficulty Sudoku page.
const PuzzleURL = "https://www.nytimes.com/puzzles/sudoku/hard"

// boardCells is the element count of a flattened 9x9 board.
const boardCells = puzzlefetch.BoardSize * puzzlefetch.BoardSize

// Ensure SudokuService implements puzzlefetch.SudokuService at compile time.
var _ puzzlefetch.SudokuService = (*SudokuService)(nil)

// SudokuService extracts the day's hard Sudoku from the provider's
// embedded game-data blob.
type SudokuService struct {
	// Fetcher retrieves the puzzle page.
	Fetcher puzzlefetch.Fetcher

	// URL overrides the puzzle page location. Defaults to PuzzleURL.
	URL string
}

// NewSudokuService creates a SudokuService fetching the live puzzle page.
func NewSudokuService(fetcher puzzlefetch.Fetcher) *SudokuService {
	return &SudokuService{
		Fetcher: fetcher,
		URL:     PuzzleURL,
	}
}

// TodayPuzzle fetches the puzzle page and extracts the puzzle, its
// solution, and the metadata fields.
func (s *SudokuService) TodayPuzzle(ctx context.Context) (*puzzlefetch.SudokuPuzzle, error) {
	url := s.URL
	if url == "" {
		url = PuzzleURL
	}

	html, err := s.Fetcher.Fetch(ctx, url)
	if err != nil {
		return nil, err
	}

	blob, err := ExtractBlob(html)
	if err != nil {
		return nil, err
	}

	return decodePuzzle(blob)
}

// decodePuzzle turns the raw game-data JSON into a SudokuPuzzle. Field
// shape is dictated entirely by the provider's payload: displayDate at
// the root, then hard.difficulty, hard.print_date, and the puzzle and
// solution arrays under hard.puzzle_data.
func decodePuzzle(blob string) (*puzzlefetch.SudokuPuzzle, error) {
	var root map[string]json.RawMessage
	if err := json.Unmarshal([]byte(blob), &root); err != nil {
		return nil, puzzlefetch.Errorf(puzzlefetch.EINVALID, "failed to parse game data JSON: %v", err)
	}

	displayDate := stringField(root, "displayDate", "")

	hardRaw, ok := root["hard"]
	if !ok {
		return nil, puzzlefetch.Errorf(puzzlefetch.ENOTFOUND, "missing hard puzzle block")
	}
	var hard map[string]json.RawMessage
	if err := json.Unmarshal(hardRaw, &hard); err != nil {
		return nil, puzzlefetch.Errorf(puzzlefetch.EINVALID, "hard puzzle block is not an object")
	}

	dataRaw, ok := hard["puzzle_data"]
	if !ok {
		return nil, puzzlefetch.Errorf(puzzlefetch.ENOTFOUND, "missing puzzle_data block")
	}
	var data map[string]json.RawMessage
	if err := json.Unmarshal(dataRaw, &data); err != nil {
		return nil, puzzlefetch.Errorf(puzzlefetch.EINVALID, "puzzle_data block is not an object")
	}

	puzzleRaw, ok := data["puzzle"]
	if !ok {
		return nil, puzzlefetch.Errorf(puzzlefetch.ENOTFOUND, "missing puzzle array")
	}
	puzzle, err := decodeBoard(puzzleRaw, "puzzle")
	if err != nil {
		return nil, err
	}

	solutionRaw, ok := data["solution"]
	if !ok {
		return nil, puzzlefetch.Errorf(puzzlefetch.ENOTFOUND, "missing solution array")
	}
	solution, err := decodeBoard(solutionRaw, "solution")
	if err != nil {
		return nil, err
	}

	return &puzzlefetch.SudokuPuzzle{
		DisplayDate: displayDate,
		PrintDate:   stringField(hard, "print_date", displayDate),
		Difficulty:  stringField(hard, "difficulty", "Hard"),
		Puzzle:      puzzle,
		Solution:    solution,
	}, nil
}

// decodeBoard converts a flat 81-element numeric JSON array into a 9x9
// grid, rows top-to-bottom and cells left-to-right. Row-major flattening
// matches the provider's own serialization; it is not independently
// verified.
func decodeBoard(raw json.RawMessage, label string) (puzzlefetch.Board, error) {
	var cells []json.RawMessage
	if err := json.Unmarshal(raw, &cells); err != nil {
		return nil, puzzlefetch.Errorf(puzzlefetch.EINVALID, "sudoku %s data is not an array", label)
	}
	if len(cells) != boardCells {
		return nil, puzzlefetch.Errorf(puzzlefetch.EINVALID, "sudoku %s expected %d entries but found %d", label, boardCells, len(cells))
	}

	flat := make([]int, 0, boardCells)
	for _, cell := range cells {
		var num json.Number
		if err := json.Unmarshal(cell, &num); err != nil {
			return nil, puzzlefetch.Errorf(puzzlefetch.EINVALID, "non-numeric value in sudoku %s", label)
		}
		n, err := num.Int64()
		if err != nil {
			return nil, puzzlefetch.Errorf(puzzlefetch.EINVALID, "non-integer value %s in sudoku %s", num, label)
		}
		if n < 0 || n > 9 {
			return nil, puzzlefetch.Errorf(puzzlefetch.EINVALID, "invalid sudoku digit %d in %s", n, label)
		}
		flat = append(flat, int(n))
	}

	board := make(puzzlefetch.Board, 0, puzzlefetch.BoardSize)
	for i := 0; i < boardCells; i += puzzlefetch.BoardSize {
		board = append(board, flat[i:i+puzzlefetch.BoardSize])
	}
	return board, nil
}

// stringField reads an optional string field from a decoded JSON object,
// falling back to def when the field is absent or not a string.
func stringField(obj map[string]json.RawMessage, key, def string) string {
	raw, ok := obj[key]
	if !ok {
		return def
	}
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return def
	}
	return s
}
