package liststore

import (
	"context"
	"fmt"

	"golang.org/x/text/unicode/norm"
)

// Write upserts one item. RowID on the input is ignored; the store assigns
// it on first insert. If a row already exists with the same
// (author, message_reference) pair, only updated_at, closed_at, message
// and priority are overwritten; row_id, author, message_reference and
// created_at keep their original values.
//
// The write holds the store mutex for its full duration and returns only
// after the statement has committed, so errors surface synchronously and
// no interleaved write can observe a partial row.
//
// Message text is normalized to Unicode NFC before storage, so the same
// logical text upserts identically regardless of composition form.
//
// Returns ErrNotConnected if no connection is held.
func (s *Store) Write(ctx context.Context, item Item) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.db == nil {
		return ErrNotConnected
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO liststore
		(author, created_at, updated_at, closed_at, message_reference, message, priority)
		VALUES (?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(author, message_reference) DO UPDATE SET
			updated_at = excluded.updated_at,
			closed_at  = excluded.closed_at,
			message    = excluded.message,
			priority   = excluded.priority
	`,
		item.Author,
		item.CreatedAt,
		item.UpdatedAt,
		item.ClosedAt,
		item.MessageReference,
		norm.NFC.String(item.Message),
		int(item.Priority),
	)
	if err != nil {
		return fmt.Errorf("write item: %w", err)
	}

	return nil
}
