package resolver

import (
	"database/sql"
	"database/sql/driver"
	"fmt"
	"regexp"
	"testing"
	"time"

	"catalog-graphql/internal/dbexec"
	"catalog-graphql/internal/planner"
	"catalog-graphql/internal/store"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/require"
)

func newMockResolver(t *testing.T, limits Limits) (*Resolver, sqlmock.Sqlmock, *sql.DB) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	return New(store.New(dbexec.NewStandardExecutor(db)), limits), mock, db
}

// expectQuery registers an exact-SQL expectation for a planned query.
func expectQuery(t *testing.T, mock sqlmock.Sqlmock, q planner.SQLQuery, rows *sqlmock.Rows) {
	t.Helper()
	args := make([]driver.Value, len(q.Args))
	for i, a := range q.Args {
		args[i] = a
	}
	mock.ExpectQuery(regexp.QuoteMeta(q.SQL)).WithArgs(args...).WillReturnRows(rows)
}

var productRowColumns = []string{
	"id", "name", "slug", "description", "category_id", "price",
	"discount_percent", "stock_quantity", "sku", "is_featured",
	"is_active", "rating", "review_count", "created_at", "updated_at",
	"published_date",
}

// productRows builds n sequential product rows, ids starting at startID,
// all in category 1.
func productRows(n int, startID int64) *sqlmock.Rows {
	rows := sqlmock.NewRows(productRowColumns)
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	for i := 0; i < n; i++ {
		id := startID + int64(i)
		rows.AddRow(
			id, fmt.Sprintf("Product %d", id), fmt.Sprintf("product-%d", id),
			"sample", int64(1), 49.99, 0, 5, fmt.Sprintf("SKU%03d", id),
			false, true, 4.5, 10, now, now, nil,
		)
	}
	return rows
}

func categoryRows() *sqlmock.Rows {
	now := time.Date(2026, 1, 10, 0, 0, 0, 0, time.UTC)
	return sqlmock.NewRows([]string{"id", "name", "slug", "description", "created_at"}).
		AddRow(int64(1), "Electronics", "electronics", "Electronic devices and gadgets", now)
}

func countRows(count int) *sqlmock.Rows {
	return sqlmock.NewRows([]string{"count"}).AddRow(count)
}
