package testutil

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/vindursweden/kalender/internal/db"
)

// FailOnNthExecUoW is a unit of work whose transactions fail on the Nth
// write. Rollback tests point FailOn at a specific ExecContext call in a
// multi-write operation and assert that the earlier writes did not
// stick. Writes are counted from 1; reads pass through untouched.
type FailOnNthExecUoW struct {
	DB     *sql.DB
	FailOn int
	Err    error
}

func (u *FailOnNthExecUoW) WithinTx(ctx context.Context, fn func(ctx context.Context, tx db.DBTX) error) error {
	tx, err := u.DB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}

	counted := &countingExecTx{DBTX: tx, failOn: u.FailOn, err: u.Err}
	if fnErr := fn(ctx, counted); fnErr != nil {
		_ = tx.Rollback()
		return fnErr
	}
	return tx.Commit()
}

type countingExecTx struct {
	db.DBTX
	execs  int
	failOn int
	err    error
}

func (c *countingExecTx) ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error) {
	c.execs++
	if c.execs == c.failOn {
		return nil, c.err
	}
	return c.DBTX.ExecContext(ctx, query, args...)
}
