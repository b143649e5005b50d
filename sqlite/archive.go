package sqlite

import (
	"context"
	"strings"
	"time"

	"github.com/fwojciec/puzzlefetch"
	"github.com/google/uuid"
)

// Compile-time interface verification.
var _ puzzlefetch.ArchiveService = (*ArchiveService)(nil)

// ArchiveService implements puzzlefetch.ArchiveService using SQLite.
type ArchiveService struct {
	db *DB
}

// NewArchiveService creates a new ArchiveService.
func NewArchiveService(db *DB) *ArchiveService {
	return &ArchiveService{db: db}
}

// CreateEntry stores a fetched puzzle. A second entry with the same kind
// and date replaces the earlier one so re-fetching a day is idempotent.
func (s *ArchiveService) CreateEntry(ctx context.Context, entry *puzzlefetch.ArchiveEntry) error {
	if err := entry.Validate(); err != nil {
		return err
	}

	entry.ID = uuid.New().String()
	entry.CreatedAt = time.Now().UTC()

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO entries (id, kind, date, payload, created_at)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT (kind, date) DO UPDATE SET
			id = excluded.id,
			payload = excluded.payload,
			created_at = excluded.created_at
	`, entry.ID, entry.Kind, entry.Date, entry.Payload, entry.CreatedAt.Format(time.RFC3339))

	return err
}

// FindEntries retrieves entries matching the filter, newest first.
func (s *ArchiveService) FindEntries(ctx context.Context, filter puzzlefetch.ArchiveFilter) ([]*puzzlefetch.ArchiveEntry, error) {
	var query strings.Builder
	var args []any

	query.WriteString("SELECT id, kind, date, payload, created_at FROM entries WHERE 1=1")

	if filter.Kind != nil {
		query.WriteString(" AND kind = ?")
		args = append(args, *filter.Kind)
	}
	if filter.Date != nil {
		query.WriteString(" AND date = ?")
		args = append(args, *filter.Date)
	}

	query.WriteString(" ORDER BY date DESC, kind ASC")

	if filter.Limit > 0 {
		query.WriteString(" LIMIT ?")
		args = append(args, filter.Limit)
	}
	if filter.Offset > 0 {
		query.WriteString(" OFFSET ?")
		args = append(args, filter.Offset)
	}

	rows, err := s.db.QueryContext(ctx, query.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []*puzzlefetch.ArchiveEntry
	for rows.Next() {
		var entry puzzlefetch.ArchiveEntry
		var createdAt string

		if err := rows.Scan(&entry.ID, &entry.Kind, &entry.Date, &entry.Payload, &createdAt); err != nil {
			return nil, err
		}

		entry.CreatedAt, err = parseRFC3339(createdAt, "created_at")
		if err != nil {
			return nil, err
		}

		entries = append(entries, &entry)
	}

	return entries, rows.Err()
}
