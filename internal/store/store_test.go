package store

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"errors"
	"regexp"
	"testing"
	"time"

	"catalog-graphql/internal/dbexec"
	"catalog-graphql/internal/planner"
	"catalog-graphql/internal/qerr"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMockStore(t *testing.T) (*Store, sqlmock.Sqlmock, *sql.DB) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	return New(dbexec.NewStandardExecutor(db)), mock, db
}

func driverArgs(args []interface{}) []driver.Value {
	out := make([]driver.Value, len(args))
	for i, a := range args {
		out[i] = a
	}
	return out
}

var productRowColumns = []string{
	"id", "name", "slug", "description", "category_id", "price",
	"discount_percent", "stock_quantity", "sku", "is_featured",
	"is_active", "rating", "review_count", "created_at", "updated_at",
	"published_date",
}

func sampleProductRow(rs *sqlmock.Rows, id int64, name string, categoryID int64, price float64) *sqlmock.Rows {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	return rs.AddRow(id, name, "slug", "desc", categoryID, price, 0, 5, "SKU", false, true, 4.5, 10, now, now, nil)
}

func TestSelectProducts(t *testing.T) {
	s, mock, db := newMockStore(t)
	defer db.Close()

	q := planner.SQLQuery{SQL: "SELECT * FROM `products` WHERE `id` = ?", Args: []interface{}{int64(1)}}
	rows := sqlmock.NewRows(productRowColumns)
	sampleProductRow(rows, 1, "Laptop Pro", 2, 1299.99)
	mock.ExpectQuery(regexp.QuoteMeta(q.SQL)).WithArgs(driverArgs(q.Args)...).WillReturnRows(rows)

	products, err := s.SelectProducts(context.Background(), q)
	require.NoError(t, err)
	require.Len(t, products, 1)
	assert.Equal(t, "Laptop Pro", products[0].Name)
	assert.Equal(t, int64(2), products[0].CategoryID)
	assert.InDelta(t, 1299.99, products[0].Price, 0.0001)
	assert.Nil(t, products[0].PublishedDate)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSelectProducts_QueryFailureIsStoreUnavailable(t *testing.T) {
	s, mock, db := newMockStore(t)
	defer db.Close()

	mock.ExpectQuery("SELECT").WillReturnError(errors.New("connection reset"))

	_, err := s.SelectProducts(context.Background(), planner.SQLQuery{SQL: "SELECT 1"})
	require.Error(t, err)
	assert.True(t, qerr.IsStoreUnavailable(err))
}

func TestCountScalar(t *testing.T) {
	s, mock, db := newMockStore(t)
	defer db.Close()

	mock.ExpectQuery(regexp.QuoteMeta("SELECT COUNT(*) FROM `products`")).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(45))

	count, err := s.CountScalar(context.Background(), planner.SQLQuery{SQL: "SELECT COUNT(*) FROM `products`"})
	require.NoError(t, err)
	assert.Equal(t, 45, count)
}

func TestFloatScalar_NullMeansNoData(t *testing.T) {
	s, mock, db := newMockStore(t)
	defer db.Close()

	mock.ExpectQuery(regexp.QuoteMeta("SELECT AVG(`price`) FROM `products`")).
		WillReturnRows(sqlmock.NewRows([]string{"avg"}).AddRow(nil))

	avg, err := s.FloatScalar(context.Background(), planner.SQLQuery{SQL: "SELECT AVG(`price`) FROM `products`"})
	require.NoError(t, err)
	assert.Nil(t, avg)
}

func TestFloatScalar_Value(t *testing.T) {
	s, mock, db := newMockStore(t)
	defer db.Close()

	mock.ExpectQuery("SELECT AVG").
		WillReturnRows(sqlmock.NewRows([]string{"avg"}).AddRow(199.99))

	avg, err := s.FloatScalar(context.Background(), planner.SQLQuery{SQL: "SELECT AVG(`price`) FROM `products`"})
	require.NoError(t, err)
	require.NotNil(t, avg)
	assert.InDelta(t, 199.99, *avg, 0.0001)
}

func TestBucketCounts_ZeroRowsYieldZeroes(t *testing.T) {
	s, mock, db := newMockStore(t)
	defer db.Close()

	mock.ExpectQuery("SELECT").
		WillReturnRows(sqlmock.NewRows([]string{"budget", "mid", "premium"}).AddRow(nil, nil, nil))

	counts, err := s.BucketCounts(context.Background(), planner.SQLQuery{SQL: "SELECT 1"}, 3)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 0, 0}, counts)
}

func TestBucketCounts(t *testing.T) {
	s, mock, db := newMockStore(t)
	defer db.Close()

	mock.ExpectQuery("SELECT").
		WillReturnRows(sqlmock.NewRows([]string{"budget", "mid", "premium"}).AddRow(9, 6, 2))

	counts, err := s.BucketCounts(context.Background(), planner.SQLQuery{SQL: "SELECT 1"}, 3)
	require.NoError(t, err)
	assert.Equal(t, []int{9, 6, 2}, counts)
}

func TestSelectCategories_WithCount(t *testing.T) {
	s, mock, db := newMockStore(t)
	defer db.Close()

	now := time.Date(2026, 1, 10, 0, 0, 0, 0, time.UTC)
	mock.ExpectQuery("SELECT").WillReturnRows(
		sqlmock.NewRows([]string{"id", "name", "slug", "description", "created_at", "products_count"}).
			AddRow(1, "Books", "books", "Books and literature", now, 4),
	)

	categories, err := s.SelectCategories(context.Background(), planner.SQLQuery{SQL: "SELECT 1"}, true)
	require.NoError(t, err)
	require.Len(t, categories, 1)
	assert.Equal(t, 4, categories[0].ProductsCount)
}

func TestSelectReviews(t *testing.T) {
	s, mock, db := newMockStore(t)
	defer db.Close()

	now := time.Date(2026, 2, 2, 0, 0, 0, 0, time.UTC)
	mock.ExpectQuery("SELECT").WillReturnRows(
		sqlmock.NewRows([]string{"id", "product_id", "user", "rating", "title", "comment", "is_verified_purchase", "helpful_count", "created_at"}).
			AddRow(1, 5, "python_dev", 5, "Fantastic resource", "Comprehensive", true, 80, now),
	)

	reviews, err := s.SelectReviews(context.Background(), planner.SQLQuery{SQL: "SELECT 1"})
	require.NoError(t, err)
	require.Len(t, reviews, 1)
	assert.Equal(t, int64(5), reviews[0].ProductID)
	assert.Equal(t, 5, reviews[0].Rating)
}
