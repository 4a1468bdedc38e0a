package testutil

import (
	"database/sql"
	"testing"

	"github.com/vindursweden/kalender/internal/db"
)

// NewTestDB opens a migrated in-memory SQLite database scoped to the
// test; it is closed automatically when the test finishes.
func NewTestDB(t *testing.T) *sql.DB {
	t.Helper()
	database, err := db.OpenDB(":memory:")
	if err != nil {
		t.Fatalf("opening test database: %v", err)
	}
	t.Cleanup(func() { database.Close() })
	return database
}

// NewTestUoW wraps the given test database in a unit of work.
func NewTestUoW(database *sql.DB) db.UnitOfWork {
	return db.NewSQLiteUnitOfWork(database)
}
