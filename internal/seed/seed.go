// Package seed creates the catalog schema and loads the demo data set
// (4 categories, 17 products, 10 reviews).
package seed

import (
	"context"
	"fmt"
	"time"

	"catalog-graphql/internal/dbexec"
	"catalog-graphql/internal/logging"

	sq "github.com/Masterminds/squirrel"
)

// Seeder creates the schema and loads the sample data. It is the only
// catalog component with a write surface.
type Seeder struct {
	exec dbexec.Execer
}

// New creates a Seeder.
func New(exec dbexec.Execer) *Seeder {
	return &Seeder{exec: exec}
}

// Apply creates the tables if needed, clears them, and inserts the sample
// data set. Reviews are removed first to respect foreign keys.
func (s *Seeder) Apply(ctx context.Context) error {
	logger := logging.FromContext(ctx)

	for _, ddl := range schemaDDL {
		if _, err := s.exec.ExecContext(ctx, ddl); err != nil {
			return fmt.Errorf("failed to create schema: %w", err)
		}
	}

	for _, table := range []string{"reviews", "products", "categories"} {
		if _, err := s.exec.ExecContext(ctx, fmt.Sprintf("DELETE FROM `%s`", table)); err != nil {
			return fmt.Errorf("failed to clear %s: %w", table, err)
		}
	}

	if err := s.insertCategories(ctx); err != nil {
		return err
	}
	if err := s.insertProducts(ctx); err != nil {
		return err
	}
	if err := s.insertReviews(ctx); err != nil {
		return err
	}

	logger.Info("sample data loaded",
		"categories", len(sampleCategories),
		"products", len(sampleProducts),
		"reviews", len(sampleReviews),
	)
	return nil
}

func (s *Seeder) insertCategories(ctx context.Context) error {
	builder := sq.Insert("`categories`").
		Columns("`id`", "`name`", "`slug`", "`description`").
		PlaceholderFormat(sq.Question)
	for _, c := range sampleCategories {
		builder = builder.Values(c.id, c.name, c.slug, c.description)
	}
	return s.execInsert(ctx, builder, "categories")
}

func (s *Seeder) insertProducts(ctx context.Context) error {
	published := time.Now().UTC().AddDate(0, 0, -30)
	builder := sq.Insert("`products`").
		Columns(
			"`id`", "`name`", "`slug`", "`description`", "`category_id`",
			"`price`", "`discount_percent`", "`stock_quantity`", "`sku`",
			"`is_featured`", "`is_active`", "`rating`", "`review_count`",
			"`published_date`",
		).
		PlaceholderFormat(sq.Question)
	for _, p := range sampleProducts {
		builder = builder.Values(
			p.id, p.name, p.slug, p.description, p.categoryID,
			p.price, 0, p.stockQuantity, p.sku,
			p.isFeatured, p.isActive, p.rating, p.reviewCount,
			published,
		)
	}
	return s.execInsert(ctx, builder, "products")
}

func (s *Seeder) insertReviews(ctx context.Context) error {
	builder := sq.Insert("`reviews`").
		Columns(
			"`id`", "`product_id`", "`user`", "`rating`", "`title`",
			"`comment`", "`is_verified_purchase`", "`helpful_count`",
		).
		PlaceholderFormat(sq.Question)
	for _, r := range sampleReviews {
		builder = builder.Values(
			r.id, r.productID, r.user, r.rating, r.title,
			r.comment, r.isVerifiedPurchase, r.helpfulCount,
		)
	}
	return s.execInsert(ctx, builder, "reviews")
}

func (s *Seeder) execInsert(ctx context.Context, builder sq.InsertBuilder, table string) error {
	query, args, err := builder.ToSql()
	if err != nil {
		return fmt.Errorf("failed to build %s insert: %w", table, err)
	}
	if _, err := s.exec.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to insert %s: %w", table, err)
	}
	return nil
}
