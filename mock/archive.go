package mock

import (
	"context"

	"github.com/fwojciec/puzzlefetch"
)

var _ puzzlefetch.ArchiveService = (*ArchiveService)(nil)

// ArchiveService is a mock implementation of puzzlefetch.ArchiveService.
type ArchiveService struct {
	CreateEntryFn func(ctx context.Context, entry *puzzlefetch.ArchiveEntry) error
	FindEntriesFn func(ctx context.Context, filter puzzlefetch.ArchiveFilter) ([]*puzzlefetch.ArchiveEntry, error)
}

func (s *ArchiveService) CreateEntry(ctx context.Context, entry *puzzlefetch.ArchiveEntry) error {
	return s.CreateEntryFn(ctx, entry)
}

func (s *ArchiveService) FindEntries(ctx context.Context, filter puzzlefetch.ArchiveFilter) ([]*puzzlefetch.ArchiveEntry, error) {
	return s.FindEntriesFn(ctx, filter)
}
