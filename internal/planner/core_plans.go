package planner

import (
	"sort"

	sq "github.com/Masterminds/squirrel"
)

var categoryColumns = []string{
	"`id`", "`name`", "`slug`", "`description`", "`created_at`",
}

var reviewColumns = []string{
	"`id`", "`product_id`", "`user`", "`rating`", "`title`", "`comment`",
	"`is_verified_purchase`", "`helpful_count`", "`created_at`",
}

const (
	categoriesTable = "`categories`"
	reviewsTable    = "`reviews`"
)

// PlanProductByID compiles a single-product lookup.
func PlanProductByID(id int64) (SQLQuery, error) {
	sqlStr, args, err := sq.Select(productColumns...).
		From(productsTable).
		Where(sq.Eq{"`id`": id}).
		PlaceholderFormat(sq.Question).
		ToSql()
	if err != nil {
		return SQLQuery{}, err
	}
	return SQLQuery{SQL: sqlStr, Args: args}, nil
}

// PlanCategoriesByIDs compiles the batched category fetch used to attach
// categories to a whole page of products in one round trip. IDs are
// deduplicated and sorted so identical pages produce identical SQL.
func PlanCategoriesByIDs(ids []int64) (SQLQuery, error) {
	sqlStr, args, err := sq.Select(categoryColumns...).
		From(categoriesTable).
		Where(sq.Eq{"`id`": dedupeSorted(ids)}).
		PlaceholderFormat(sq.Question).
		ToSql()
	if err != nil {
		return SQLQuery{}, err
	}
	return SQLQuery{SQL: sqlStr, Args: args}, nil
}

// PlanCategoryByID compiles a single-category lookup.
func PlanCategoryByID(id int64) (SQLQuery, error) {
	sqlStr, args, err := sq.Select(categoryColumns...).
		From(categoriesTable).
		Where(sq.Eq{"`id`": id}).
		PlaceholderFormat(sq.Question).
		ToSql()
	if err != nil {
		return SQLQuery{}, err
	}
	return SQLQuery{SQL: sqlStr, Args: args}, nil
}

// PlanAllCategories compiles the category listing with a per-category
// product count computed in the same statement.
func PlanAllCategories() (SQLQuery, error) {
	sqlStr, args, err := sq.Select(
		"c.`id`", "c.`name`", "c.`slug`", "c.`description`", "c.`created_at`",
		"COUNT(p.`id`) AS `products_count`",
	).
		From(categoriesTable + " AS c").
		LeftJoin(productsTable + " AS p ON p.`category_id` = c.`id`").
		GroupBy("c.`id`", "c.`name`", "c.`slug`", "c.`description`", "c.`created_at`").
		OrderBy("c.`name` ASC").
		PlaceholderFormat(sq.Question).
		ToSql()
	if err != nil {
		return SQLQuery{}, err
	}
	return SQLQuery{SQL: sqlStr, Args: args}, nil
}

// PlanReviewsForProducts compiles the batched review fetch for a set of
// products, optionally restricted to a single rating.
func PlanReviewsForProducts(productIDs []int64, rating *int) (SQLQuery, error) {
	builder := sq.Select(reviewColumns...).
		From(reviewsTable).
		Where(sq.Eq{"`product_id`": dedupeSorted(productIDs)})
	if rating != nil {
		builder = builder.Where(sq.Eq{"`rating`": *rating})
	}
	sqlStr, args, err := builder.
		OrderBy("`created_at` DESC", "`id` ASC").
		PlaceholderFormat(sq.Question).
		ToSql()
	if err != nil {
		return SQLQuery{}, err
	}
	return SQLQuery{SQL: sqlStr, Args: args}, nil
}

// PlanReviews compiles the unscoped review listing, optionally restricted
// to a single rating. Newest reviews come first.
func PlanReviews(rating *int) (SQLQuery, error) {
	builder := sq.Select(reviewColumns...).
		From(reviewsTable)
	if rating != nil {
		builder = builder.Where(sq.Eq{"`rating`": *rating})
	}
	sqlStr, args, err := builder.
		OrderBy("`created_at` DESC", "`id` ASC").
		PlaceholderFormat(sq.Question).
		ToSql()
	if err != nil {
		return SQLQuery{}, err
	}
	return SQLQuery{SQL: sqlStr, Args: args}, nil
}

func dedupeSorted(ids []int64) []int64 {
	seen := make(map[int64]struct{}, len(ids))
	out := make([]int64, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}
