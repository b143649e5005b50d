package puzzlefetch

import "context"

// BoardSize is the side length of a Sudoku board.
const BoardSize = 9

// Board is a 9x9 grid of single-digit values, rows top-to-bottom and
// cells left-to-right. Zero denotes a blank cell in a puzzle grid.
type Board [][]int

// Validate returns an error if the board is not 9 rows of 9 cells with
// every value in [0, 9].
func (b Board) Validate() error {
	if len(b) != BoardSize {
		return Errorf(EINVALID, "board must have %d rows, got %d", BoardSize, len(b))
	}
	for i, row := range b {
		if len(row) != BoardSize {
			return Errorf(EINVALID, "board row %d must have %d cells, got %d", i, BoardSize, len(row))
		}
		for _, cell := range row {
			if cell < 0 || cell > 9 {
				return Errorf(EINVALID, "board row %d contains invalid digit %d", i, cell)
			}
		}
	}
	return nil
}

// SudokuPuzzle is the day's hard Sudoku as extracted from the provider's
// embedded game-data blob.
type SudokuPuzzle struct {
	DisplayDate string `json:"displayDate"`
	PrintDate   string `json:"printDate"`
	Difficulty  string `json:"difficulty"`
	Puzzle      Board  `json:"puzzle"`
	Solution    Board  `json:"solution"`
}

// Validate returns an error if either grid violates its shape invariants.
// The solution grid is expected fully populated but that is not enforced
// here; only structural shape is checked.
func (p *SudokuPuzzle) Validate() error {
	if err := p.Puzzle.Validate(); err != nil {
		return err
	}
	return p.Solution.Validate()
}

// SudokuService fetches the day's hard Sudoku puzzle.
type SudokuService interface {
	// TodayPuzzle fetches and extracts today's puzzle and solution.
	TodayPuzzle(ctx context.Context) (*SudokuPuzzle, error)
}
