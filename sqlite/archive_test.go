package sqlite_test

import (
	"context"
	"testing"

	"github.com/fwojciec/puzzlefetch"
	"github.com/fwojciec/puzzlefetch/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestDB(t *testing.T) *sqlite.DB {
	t.Helper()

	db := sqlite.NewDB(":memory:")
	require.NoError(t, db.Open())
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func TestArchiveService_CreateEntry(t *testing.T) {
	t.Parallel()

	t.Run("stores an entry and assigns ID and timestamp", func(t *testing.T) {
		t.Parallel()

		svc := sqlite.NewArchiveService(openTestDB(t))
		entry := &puzzlefetch.ArchiveEntry{
			Kind:    puzzlefetch.KindWordle,
			Date:    "2026-01-15",
			Payload: `{"date":"2026-01-15","word":"STORM","puzzle":"Wordle #1234"}`,
		}

		err := svc.CreateEntry(context.Background(), entry)
		require.NoError(t, err)
		assert.NotEmpty(t, entry.ID)
		assert.False(t, entry.CreatedAt.IsZero())
	})

	t.Run("replaces an entry with the same kind and date", func(t *testing.T) {
		t.Parallel()

		svc := sqlite.NewArchiveService(openTestDB(t))
		ctx := context.Background()

		first := &puzzlefetch.ArchiveEntry{
			Kind:    puzzlefetch.KindWordle,
			Date:    "2026-01-15",
			Payload: `{"word":"STORM"}`,
		}
		require.NoError(t, svc.CreateEntry(ctx, first))

		second := &puzzlefetch.ArchiveEntry{
			Kind:    puzzlefetch.KindWordle,
			Date:    "2026-01-15",
			Payload: `{"word":"CRANE"}`,
		}
		require.NoError(t, svc.CreateEntry(ctx, second))

		entries, err := svc.FindEntries(ctx, puzzlefetch.ArchiveFilter{})
		require.NoError(t, err)
		require.Len(t, entries, 1)
		assert.Contains(t, entries[0].Payload, "CRANE")
	})

	t.Run("rejects an invalid entry", func(t *testing.T) {
		t.Parallel()

		svc := sqlite.NewArchiveService(openTestDB(t))
		entry := &puzzlefetch.ArchiveEntry{Kind: "crossword", Date: "2026-01-15", Payload: "{}"}

		err := svc.CreateEntry(context.Background(), entry)
		require.Error(t, err)
		assert.Equal(t, puzzlefetch.EINVALID, puzzlefetch.ErrorCode(err))
	})
}

func TestArchiveService_FindEntries(t *testing.T) {
	t.Parallel()

	seed := func(t *testing.T, svc *sqlite.ArchiveService) {
		t.Helper()
		ctx := context.Background()
		for _, e := range []*puzzlefetch.ArchiveEntry{
			{Kind: puzzlefetch.KindWordle, Date: "2026-01-14", Payload: `{"word":"CRANE"}`},
			{Kind: puzzlefetch.KindWordle, Date: "2026-01-15", Payload: `{"word":"STORM"}`},
			{Kind: puzzlefetch.KindSudoku, Date: "2026-01-15", Payload: `{"difficulty":"Hard"}`},
		} {
			require.NoError(t, svc.CreateEntry(ctx, e))
		}
	}

	t.Run("returns entries newest first", func(t *testing.T) {
		t.Parallel()

		svc := sqlite.NewArchiveService(openTestDB(t))
		seed(t, svc)

		entries, err := svc.FindEntries(context.Background(), puzzlefetch.ArchiveFilter{})
		require.NoError(t, err)
		require.Len(t, entries, 3)
		assert.Equal(t, "2026-01-15", entries[0].Date)
		assert.Equal(t, "2026-01-14", entries[2].Date)
	})

	t.Run("filters by kind", func(t *testing.T) {
		t.Parallel()

		svc := sqlite.NewArchiveService(openTestDB(t))
		seed(t, svc)

		kind := puzzlefetch.KindSudoku
		entries, err := svc.FindEntries(context.Background(), puzzlefetch.ArchiveFilter{Kind: &kind})
		require.NoError(t, err)
		require.Len(t, entries, 1)
		assert.Equal(t, puzzlefetch.KindSudoku, entries[0].Kind)
	})

	t.Run("filters by date", func(t *testing.T) {
		t.Parallel()

		svc := sqlite.NewArchiveService(openTestDB(t))
		seed(t, svc)

		date := "2026-01-15"
		entries, err := svc.FindEntries(context.Background(), puzzlefetch.ArchiveFilter{Date: &date})
		require.NoError(t, err)
		require.Len(t, entries, 2)
	})

	t.Run("applies limit and offset", func(t *testing.T) {
		t.Parallel()

		svc := sqlite.NewArchiveService(openTestDB(t))
		seed(t, svc)

		entries, err := svc.FindEntries(context.Background(), puzzlefetch.ArchiveFilter{Limit: 1, Offset: 1})
		require.NoError(t, err)
		require.Len(t, entries, 1)
	})

	t.Run("returns empty result for empty archive", func(t *testing.T) {
		t.Parallel()

		svc := sqlite.NewArchiveService(openTestDB(t))

		entries, err := svc.FindEntries(context.Background(), puzzlefetch.ArchiveFilter{})
		require.NoError(t, err)
		assert.Empty(t, entries)
	})
}
