package testutil

import (
	"context"
	"database/sql"
	"strings"

	"github.com/alexanderramin/cronograma/internal/db"
)

// FailingWriteUoW runs real transactions but makes every write to Table
// fail with Err. Reads and writes to other tables go through, so a test can
// break one step of a multi-table use case and check that the earlier steps
// were rolled back.
type FailingWriteUoW struct {
	DB    *sql.DB
	Table string
	Err   error
}

func (u *FailingWriteUoW) WithinTx(ctx context.Context, fn func(ctx context.Context, tx db.DBTX) error) error {
	return db.RunTx(ctx, u.DB, func(ctx context.Context, tx db.DBTX) error {
		return fn(ctx, &tableWriteFailer{DBTX: tx, table: u.Table, err: u.Err})
	})
}

type tableWriteFailer struct {
	db.DBTX
	table string
	err   error
}

func (f *tableWriteFailer) ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error) {
	if f.writesTable(query) {
		return nil, f.err
	}
	return f.DBTX.ExecContext(ctx, query, args...)
}

func (f *tableWriteFailer) writesTable(query string) bool {
	q := strings.Join(strings.Fields(query), " ")
	for _, verb := range []string{"INSERT INTO ", "UPDATE ", "DELETE FROM "} {
		if strings.Contains(q, verb+f.table+" ") || strings.HasSuffix(q, verb+f.table) {
			return true
		}
	}
	return false
}
