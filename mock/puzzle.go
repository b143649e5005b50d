package mock

import (
	"context"

	"github.com/fwojciec/puzzlefetch"
)

var _ puzzlefetch.WordleService = (*WordleService)(nil)

// WordleService is a mock implementation of puzzlefetch.WordleService.
type WordleService struct {
	TodayAnswerFn func(ctx context.Context) (*puzzlefetch.WordleAnswer, error)
}

func (s *WordleService) TodayAnswer(ctx context.Context) (*puzzlefetch.WordleAnswer, error) {
	return s.TodayAnswerFn(ctx)
}

var _ puzzlefetch.SudokuService = (*SudokuService)(nil)

// SudokuService is a mock implementation of puzzlefetch.SudokuService.
type SudokuService struct {
	TodayPuzzleFn func(ctx context.Context) (*puzzlefetch.SudokuPuzzle, error)
}

func (s *SudokuService) TodayPuzzle(ctx context.Context) (*puzzlefetch.SudokuPuzzle, error) {
	return s.TodayPuzzleFn(ctx)
}
