// Package dbexec defines the narrow database seams the catalog code
// depends on. The query pipeline is read-only and sees only Querier; the
// schema/data loader sees only Execer. Both can be satisfied by a mock in
// tests.
package dbexec

import (
	"context"
	"database/sql"
)

// Rows is the subset of sql.Rows the store scans from.
type Rows interface {
	Next() bool
	Scan(dest ...any) error
	Err() error
	Close() error
}

// Querier is the read path's only database dependency.
type Querier interface {
	QueryContext(ctx context.Context, query string, args ...any) (Rows, error)
}

// Execer is the write surface used for schema creation and data loading.
type Execer interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}

// StandardExecutor adapts a *sql.DB to both seams.
type StandardExecutor struct {
	db *sql.DB
}

var (
	_ Querier = (*StandardExecutor)(nil)
	_ Execer  = (*StandardExecutor)(nil)
)

// NewStandardExecutor creates an executor backed by db.
func NewStandardExecutor(db *sql.DB) *StandardExecutor {
	return &StandardExecutor{db: db}
}

func (e *StandardExecutor) QueryContext(ctx context.Context, query string, args ...any) (Rows, error) {
	if e.db == nil {
		return nil, sql.ErrConnDone
	}
	return e.db.QueryContext(ctx, query, args...)
}

func (e *StandardExecutor) ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error) {
	if e.db == nil {
		return nil, sql.ErrConnDone
	}
	return e.db.ExecContext(ctx, query, args...)
}
