package db

import (
	"database/sql"
	"fmt"
	"strings"
)

// migrations are applied in order on every open. Statements must stay
// idempotent; additive ALTER TABLE steps may report duplicate columns,
// which Migrate tolerates.
var migrations = []string{
	`CREATE TABLE IF NOT EXISTS completions (
		event_id     TEXT NOT NULL,
		date         TEXT NOT NULL,
		completed_at TEXT NOT NULL,
		PRIMARY KEY (event_id)
	)`,
	`CREATE INDEX IF NOT EXISTS idx_completions_date ON completions(date)`,

	`CREATE TABLE IF NOT EXISTS overrides (
		event_id    TEXT NOT NULL,
		date        TEXT NOT NULL,
		start       TEXT,
		planned_ms  INTEGER,
		updated_at  TEXT NOT NULL,
		PRIMARY KEY (event_id)
	)`,
	`CREATE INDEX IF NOT EXISTS idx_overrides_date ON overrides(date)`,

	`CREATE TABLE IF NOT EXISTS manual_events (
		id         TEXT PRIMARY KEY,
		person_id  TEXT NOT NULL,
		title      TEXT NOT NULL,
		date       TEXT NOT NULL,
		start_at   TEXT NOT NULL,
		end_at     TEXT NOT NULL,
		min_min    INTEGER,
		best_min   INTEGER,
		fixed      INTEGER NOT NULL DEFAULT 0,
		resource   TEXT NOT NULL DEFAULT '',
		cluster    TEXT NOT NULL DEFAULT '',
		image_ref  TEXT NOT NULL DEFAULT '',
		created_at TEXT NOT NULL,
		updated_at TEXT NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS idx_manual_events_date ON manual_events(date)`,
}

// Migrate runs all schema migrations.
func Migrate(database *sql.DB) error {
	for i, stmt := range migrations {
		if _, err := database.Exec(stmt); err != nil {
			if strings.Contains(err.Error(), "duplicate column name") {
				continue
			}
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	return nil
}
