package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/vindursweden/kalender/internal/db"
	"github.com/vindursweden/kalender/internal/domain"
)

// SQLiteCompletionRepo implements CompletionRepo on SQLite.
type SQLiteCompletionRepo struct {
	db db.DBTX
}

func NewSQLiteCompletionRepo(dbtx db.DBTX) *SQLiteCompletionRepo {
	return &SQLiteCompletionRepo{db: dbtx}
}

func (r *SQLiteCompletionRepo) MarkDone(ctx context.Context, eventID string, date time.Time, completedAt time.Time) error {
	query := `
		INSERT INTO completions (event_id, date, completed_at)
		VALUES (?, ?, ?)
		ON CONFLICT(event_id) DO UPDATE SET completed_at = excluded.completed_at`

	if _, err := r.db.ExecContext(ctx, query, eventID, domain.DateKey(date), formatTime(completedAt)); err != nil {
		return fmt.Errorf("marking %s done: %w", eventID, err)
	}
	return nil
}

func (r *SQLiteCompletionRepo) Completions(ctx context.Context, date time.Time) (map[string]time.Time, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT event_id, completed_at FROM completions WHERE date = ?`,
		domain.DateKey(date))
	if err != nil {
		return nil, fmt.Errorf("querying completions: %w", err)
	}
	defer rows.Close()

	out := make(map[string]time.Time)
	for rows.Next() {
		var eventID, completedAt string
		if err := rows.Scan(&eventID, &completedAt); err != nil {
			return nil, fmt.Errorf("scanning completion: %w", err)
		}
		t, err := parseTime(completedAt)
		if err != nil {
			return nil, fmt.Errorf("parsing completed_at for %s: %w", eventID, err)
		}
		out[eventID] = t
	}
	return out, rows.Err()
}
