package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/vindursweden/kalender/internal/db"
	"github.com/vindursweden/kalender/internal/domain"
)

// SQLiteManualEventRepo implements ManualEventRepo on SQLite.
type SQLiteManualEventRepo struct {
	db db.DBTX
}

func NewSQLiteManualEventRepo(dbtx db.DBTX) *SQLiteManualEventRepo {
	return &SQLiteManualEventRepo{db: dbtx}
}

const manualColumns = `id, person_id, title, date, start_at, end_at, min_min, best_min, fixed, resource, cluster, image_ref`

func (r *SQLiteManualEventRepo) Create(ctx context.Context, event domain.Event) error {
	query := `
		INSERT INTO manual_events (` + manualColumns + `, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`

	now := formatTime(time.Now())
	_, err := r.db.ExecContext(ctx, query,
		event.ID,
		event.PersonID,
		event.Title,
		domain.DateKey(event.Start),
		formatTime(event.Start),
		formatTime(event.End),
		nullMinutes(event.MinDuration),
		nullMinutes(event.BestDuration),
		boolToInt(event.FixedStart),
		event.Resource,
		event.Cluster,
		event.ImageRef,
		now,
		now,
	)
	if err != nil {
		return fmt.Errorf("creating manual event: %w", err)
	}
	return nil
}

func (r *SQLiteManualEventRepo) Update(ctx context.Context, event domain.Event) error {
	query := `
		UPDATE manual_events SET
			person_id = ?, title = ?, date = ?, start_at = ?, end_at = ?,
			min_min = ?, best_min = ?, fixed = ?, resource = ?, cluster = ?,
			image_ref = ?, updated_at = ?
		WHERE id = ?`

	result, err := r.db.ExecContext(ctx, query,
		event.PersonID,
		event.Title,
		domain.DateKey(event.Start),
		formatTime(event.Start),
		formatTime(event.End),
		nullMinutes(event.MinDuration),
		nullMinutes(event.BestDuration),
		boolToInt(event.FixedStart),
		event.Resource,
		event.Cluster,
		event.ImageRef,
		formatTime(time.Now()),
		event.ID,
	)
	if err != nil {
		return fmt.Errorf("updating manual event %s: %w", event.ID, err)
	}
	n, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("checking update of %s: %w", event.ID, err)
	}
	if n == 0 {
		return fmt.Errorf("manual event %s not found", event.ID)
	}
	return nil
}

func (r *SQLiteManualEventRepo) Delete(ctx context.Context, eventID string) error {
	result, err := r.db.ExecContext(ctx,
		`DELETE FROM manual_events WHERE id = ?`, eventID)
	if err != nil {
		return fmt.Errorf("deleting manual event %s: %w", eventID, err)
	}
	n, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("checking delete of %s: %w", eventID, err)
	}
	if n == 0 {
		return fmt.Errorf("manual event %s not found", eventID)
	}
	return nil
}

func (r *SQLiteManualEventRepo) GetByID(ctx context.Context, eventID string) (*domain.Event, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+manualColumns+` FROM manual_events WHERE id = ?`, eventID)

	event, err := scanManualEvent(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return event, nil
}

func (r *SQLiteManualEventRepo) ListByDate(ctx context.Context, date time.Time) ([]domain.Event, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+manualColumns+` FROM manual_events WHERE date = ? ORDER BY start_at, id`,
		domain.DateKey(date))
	if err != nil {
		return nil, fmt.Errorf("querying manual events: %w", err)
	}
	defer rows.Close()

	var out []domain.Event
	for rows.Next() {
		event, err := scanManualEvent(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *event)
	}
	return out, rows.Err()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanManualEvent(row rowScanner) (*domain.Event, error) {
	var e domain.Event
	var date, start, end string
	var minMin, bestMin sql.NullInt64
	var fixed int

	err := row.Scan(&e.ID, &e.PersonID, &e.Title, &date, &start, &end,
		&minMin, &bestMin, &fixed, &e.Resource, &e.Cluster, &e.ImageRef)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("scanning manual event: %w", err)
	}

	if e.Start, err = parseTime(start); err != nil {
		return nil, fmt.Errorf("parsing start of %s: %w", e.ID, err)
	}
	if e.End, err = parseTime(end); err != nil {
		return nil, fmt.Errorf("parsing end of %s: %w", e.ID, err)
	}
	e.MinDuration = minutesPtr(minMin)
	e.BestDuration = minutesPtr(bestMin)
	e.FixedStart = fixed != 0
	e.Origin = domain.OriginManual
	return &e, nil
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
