package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/vindursweden/kalender/internal/db"
	"github.com/vindursweden/kalender/internal/domain"
)

// SQLiteOverrideRepo implements OverrideRepo on SQLite. Writes merge into
// any existing row field by field, matching domain.Overrides.Merge.
type SQLiteOverrideRepo struct {
	db db.DBTX
}

func NewSQLiteOverrideRepo(dbtx db.DBTX) *SQLiteOverrideRepo {
	return &SQLiteOverrideRepo{db: dbtx}
}

func (r *SQLiteOverrideRepo) Get(ctx context.Context, date time.Time) (domain.Overrides, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT event_id, start, planned_ms FROM overrides WHERE date = ?`,
		domain.DateKey(date))
	if err != nil {
		return nil, fmt.Errorf("querying overrides: %w", err)
	}
	defer rows.Close()

	out := make(domain.Overrides)
	for rows.Next() {
		var eventID string
		var start sql.NullString
		var plannedMs sql.NullInt64
		if err := rows.Scan(&eventID, &start, &plannedMs); err != nil {
			return nil, fmt.Errorf("scanning override: %w", err)
		}

		var ov domain.Override
		if start.Valid {
			t, err := parseTime(start.String)
			if err != nil {
				return nil, fmt.Errorf("parsing override start for %s: %w", eventID, err)
			}
			ov.Start = &t
		}
		ov.PlannedDuration = millisPtr(plannedMs)
		out[eventID] = ov
	}
	return out, rows.Err()
}

func (r *SQLiteOverrideRepo) Put(ctx context.Context, eventID string, date time.Time, patch domain.Override) error {
	query := `
		INSERT INTO overrides (event_id, date, start, planned_ms, updated_at)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT(event_id) DO UPDATE SET
			start      = COALESCE(excluded.start, overrides.start),
			planned_ms = COALESCE(excluded.planned_ms, overrides.planned_ms),
			updated_at = excluded.updated_at`

	_, err := r.db.ExecContext(ctx, query,
		eventID,
		domain.DateKey(date),
		nullTime(patch.Start),
		nullMillis(patch.PlannedDuration),
		formatTime(time.Now()),
	)
	if err != nil {
		return fmt.Errorf("storing override for %s: %w", eventID, err)
	}
	return nil
}

func (r *SQLiteOverrideRepo) Clear(ctx context.Context, date time.Time) error {
	if _, err := r.db.ExecContext(ctx,
		`DELETE FROM overrides WHERE date = ?`, domain.DateKey(date)); err != nil {
		return fmt.Errorf("clearing overrides: %w", err)
	}
	return nil
}
