package testutil

import (
	"context"
	"database/sql"
	"sync/atomic"

	"github.com/alexanderramin/nuclides/internal/db"
)

// FailOnNthExecUoW runs transactions like db.SQLiteUnitOfWork but makes the
// FailOn-th ExecContext call, counted from 1, return Err instead of
// executing. Reads are never counted. FailedQuery holds the statement that
// was rejected.
type FailOnNthExecUoW struct {
	DB     *sql.DB
	FailOn int32
	Err    error

	FailedQuery string
}

func (u *FailOnNthExecUoW) WithinTx(ctx context.Context, fn func(ctx context.Context, tx db.DBTX) error) error {
	return db.NewSQLiteUnitOfWork(u.DB).WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		return fn(ctx, &failOnNthExec{DBTX: tx, uow: u})
	})
}

type failOnNthExec struct {
	db.DBTX
	uow   *FailOnNthExecUoW
	count atomic.Int32
}

func (f *failOnNthExec) ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error) {
	if f.count.Add(1) == f.uow.FailOn {
		f.uow.FailedQuery = query
		return nil, f.uow.Err
	}
	return f.DBTX.ExecContext(ctx, query, args...)
}
