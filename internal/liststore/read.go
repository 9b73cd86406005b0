package liststore

import (
	"context"
	"fmt"
	"strings"
)

// Filter narrows a Get scan. The zero value returns every open item
// across all authors.
type Filter struct {
	// Author restricts the scan to one author's rows when non-nil.
	Author *int64

	// IncludeClosed additionally returns rows with closed_at > 0.
	IncludeClosed bool
}

// Get returns items matching the filter in row_id (insertion) order.
// The result is a snapshot at the time of the call, not a live view.
//
// Returns an empty slice (not nil) when nothing matches, and
// ErrNotConnected if no connection is held.
func (s *Store) Get(ctx context.Context, filter Filter) ([]Item, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.db == nil {
		return nil, ErrNotConnected
	}

	query := `
		SELECT row_id, author, created_at, updated_at, closed_at, message_reference, message, priority
		FROM liststore
	`
	var conds []string
	var args []any
	if !filter.IncludeClosed {
		conds = append(conds, "closed_at = 0")
	}
	if filter.Author != nil {
		conds = append(conds, "author = ?")
		args = append(args, *filter.Author)
	}
	if len(conds) > 0 {
		query += " WHERE " + strings.Join(conds, " AND ")
	}
	query += " ORDER BY row_id ASC"

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query items: %w", err)
	}
	defer rows.Close()

	items := []Item{}
	for rows.Next() {
		var it Item
		var priority int
		if err := rows.Scan(
			&it.RowID, &it.Author, &it.CreatedAt, &it.UpdatedAt,
			&it.ClosedAt, &it.MessageReference, &it.Message, &priority,
		); err != nil {
			return nil, fmt.Errorf("scan item: %w", err)
		}
		it.Priority = Priority(priority)
		items = append(items, it)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate items: %w", err)
	}

	return items, nil
}

// Counts returns the total row count and the count of closed rows
// (closed_at > 0). It returns raw counts only; deriving percentages, and
// handling a zero total, is the caller's concern.
//
// Returns ErrNotConnected if no connection is held.
func (s *Store) Counts(ctx context.Context) (total, closed int64, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.db == nil {
		return 0, 0, ErrNotConnected
	}

	err = s.db.QueryRowContext(ctx, `
		SELECT COUNT(*), COUNT(CASE WHEN closed_at > 0 THEN 1 END)
		FROM liststore
	`).Scan(&total, &closed)
	if err != nil {
		return 0, 0, fmt.Errorf("count items: %w", err)
	}

	return total, closed, nil
}
