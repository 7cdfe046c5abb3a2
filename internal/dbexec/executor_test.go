package dbexec

import (
	"context"
	"database/sql"
	"errors"
	"testing"
)

func TestStandardExecutor_NilHandleFailsClosed(t *testing.T) {
	exec := NewStandardExecutor(nil)

	var q Querier = exec
	if _, err := q.QueryContext(context.Background(), "SELECT 1"); !errors.Is(err, sql.ErrConnDone) {
		t.Fatalf("expected ErrConnDone from query, got %v", err)
	}

	var x Execer = exec
	if _, err := x.ExecContext(context.Background(), "DELETE FROM t"); !errors.Is(err, sql.ErrConnDone) {
		t.Fatalf("expected ErrConnDone from exec, got %v", err)
	}
}
