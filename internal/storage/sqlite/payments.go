package sqlite

import (
	"context"
	"fmt"
	"time"

	"github.com/vasooly/vasooly/internal/models"
	"github.com/vasooly/vasooly/internal/storage"
)

// SetParticipantPaid records (or clears) a participant's payment and returns
// the updated bill. Marking an already paid participant keeps the original
// payment time.
func (s *SQLiteStore) SetParticipantPaid(ctx context.Context, billID, participantID string, paid bool) (*models.Bill, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	var query string
	var args []any
	if paid {
		query = `UPDATE participants
			SET paid = 1, paid_at = CASE WHEN paid = 1 THEN paid_at ELSE ? END
			WHERE id = ? AND bill_id = ?`
		args = []any{time.Now().Unix(), participantID, billID}
	} else {
		query = "UPDATE participants SET paid = 0, paid_at = 0 WHERE id = ? AND bill_id = ?"
		args = []any{participantID, billID}
	}

	res, err := tx.ExecContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to update participant: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return nil, fmt.Errorf("failed to check updated rows: %w", err)
	}
	if n == 0 {
		return nil, fmt.Errorf("participant %s on bill %s: %w", participantID, billID, storage.ErrNotFound)
	}

	bill, err := getBill(ctx, tx, billID)
	if err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}
	return bill, nil
}
