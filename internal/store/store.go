// Package store executes planned SQL against the catalog database and scans
// rows into catalog entities. Every failure is classified as
// StoreUnavailable; retry policy belongs to callers.
package store

import (
	"context"
	"database/sql"

	"catalog-graphql/internal/catalog"
	"catalog-graphql/internal/dbexec"
	"catalog-graphql/internal/planner"
	"catalog-graphql/internal/qerr"
)

// Store reads catalog entities through the read-only Querier seam.
type Store struct {
	exec dbexec.Querier
}

// New creates a Store backed by exec.
func New(exec dbexec.Querier) *Store {
	return &Store{exec: exec}
}

// SelectProducts runs a planned product query and scans all rows.
func (s *Store) SelectProducts(ctx context.Context, q planner.SQLQuery) ([]catalog.Product, error) {
	rows, err := s.exec.QueryContext(ctx, q.SQL, q.Args...)
	if err != nil {
		return nil, qerr.StoreUnavailable("select products", err)
	}
	defer func() { _ = rows.Close() }()

	products := []catalog.Product{}
	for rows.Next() {
		var p catalog.Product
		var published sql.NullTime
		if err := rows.Scan(
			&p.ID, &p.Name, &p.Slug, &p.Description, &p.CategoryID, &p.Price,
			&p.DiscountPercent, &p.StockQuantity, &p.SKU, &p.IsFeatured,
			&p.IsActive, &p.Rating, &p.ReviewCount, &p.CreatedAt,
			&p.UpdatedAt, &published,
		); err != nil {
			return nil, qerr.StoreUnavailable("scan product", err)
		}
		if published.Valid {
			t := published.Time
			p.PublishedDate = &t
		}
		products = append(products, p)
	}
	if err := rows.Err(); err != nil {
		return nil, qerr.StoreUnavailable("iterate products", err)
	}
	return products, nil
}

// SelectCategories runs a planned category query and scans all rows. The
// query may or may not select a products_count column; withCount selects
// the scan shape.
func (s *Store) SelectCategories(ctx context.Context, q planner.SQLQuery, withCount bool) ([]catalog.Category, error) {
	rows, err := s.exec.QueryContext(ctx, q.SQL, q.Args...)
	if err != nil {
		return nil, qerr.StoreUnavailable("select categories", err)
	}
	defer func() { _ = rows.Close() }()

	categories := []catalog.Category{}
	for rows.Next() {
		var c catalog.Category
		dests := []any{&c.ID, &c.Name, &c.Slug, &c.Description, &c.CreatedAt}
		if withCount {
			dests = append(dests, &c.ProductsCount)
		}
		if err := rows.Scan(dests...); err != nil {
			return nil, qerr.StoreUnavailable("scan category", err)
		}
		categories = append(categories, c)
	}
	if err := rows.Err(); err != nil {
		return nil, qerr.StoreUnavailable("iterate categories", err)
	}
	return categories, nil
}

// SelectReviews runs a planned review query and scans all rows.
func (s *Store) SelectReviews(ctx context.Context, q planner.SQLQuery) ([]catalog.Review, error) {
	rows, err := s.exec.QueryContext(ctx, q.SQL, q.Args...)
	if err != nil {
		return nil, qerr.StoreUnavailable("select reviews", err)
	}
	defer func() { _ = rows.Close() }()

	reviews := []catalog.Review{}
	for rows.Next() {
		var r catalog.Review
		if err := rows.Scan(
			&r.ID, &r.ProductID, &r.User, &r.Rating, &r.Title, &r.Comment,
			&r.IsVerifiedPurchase, &r.HelpfulCount, &r.CreatedAt,
		); err != nil {
			return nil, qerr.StoreUnavailable("scan review", err)
		}
		reviews = append(reviews, r)
	}
	if err := rows.Err(); err != nil {
		return nil, qerr.StoreUnavailable("iterate reviews", err)
	}
	return reviews, nil
}

// CountScalar runs a COUNT query and returns its single integer result.
func (s *Store) CountScalar(ctx context.Context, q planner.SQLQuery) (int, error) {
	rows, err := s.exec.QueryContext(ctx, q.SQL, q.Args...)
	if err != nil {
		return 0, qerr.StoreUnavailable("count", err)
	}
	defer func() { _ = rows.Close() }()

	var count int
	if rows.Next() {
		if err := rows.Scan(&count); err != nil {
			return 0, qerr.StoreUnavailable("scan count", err)
		}
	}
	if err := rows.Err(); err != nil {
		return 0, qerr.StoreUnavailable("iterate count", err)
	}
	return count, nil
}

// FloatScalar runs a scalar aggregate and returns its value, or nil when
// the aggregate is SQL NULL (no matching rows).
func (s *Store) FloatScalar(ctx context.Context, q planner.SQLQuery) (*float64, error) {
	rows, err := s.exec.QueryContext(ctx, q.SQL, q.Args...)
	if err != nil {
		return nil, qerr.StoreUnavailable("scalar aggregate", err)
	}
	defer func() { _ = rows.Close() }()

	var value sql.NullFloat64
	if rows.Next() {
		if err := rows.Scan(&value); err != nil {
			return nil, qerr.StoreUnavailable("scan scalar aggregate", err)
		}
	}
	if err := rows.Err(); err != nil {
		return nil, qerr.StoreUnavailable("iterate scalar aggregate", err)
	}
	if !value.Valid {
		return nil, nil
	}
	v := value.Float64
	return &v, nil
}

// BucketCounts runs a grouped-count query whose single row carries one
// integer column per bucket, in bucket order. Missing values scan as zero.
func (s *Store) BucketCounts(ctx context.Context, q planner.SQLQuery, buckets int) ([]int, error) {
	rows, err := s.exec.QueryContext(ctx, q.SQL, q.Args...)
	if err != nil {
		return nil, qerr.StoreUnavailable("bucket counts", err)
	}
	defer func() { _ = rows.Close() }()

	counts := make([]int, buckets)
	if rows.Next() {
		values := make([]sql.NullInt64, buckets)
		dests := make([]any, buckets)
		for i := range values {
			dests[i] = &values[i]
		}
		if err := rows.Scan(dests...); err != nil {
			return nil, qerr.StoreUnavailable("scan bucket counts", err)
		}
		for i, v := range values {
			if v.Valid {
				counts[i] = int(v.Int64)
			}
		}
	}
	if err := rows.Err(); err != nil {
		return nil, qerr.StoreUnavailable("iterate bucket counts", err)
	}
	return counts, nil
}
