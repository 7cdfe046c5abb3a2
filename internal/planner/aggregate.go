package planner

import (
	"catalog-graphql/internal/catalog"
	"catalog-graphql/internal/sqlutil"

	sq "github.com/Masterminds/squirrel"
)

// PriceBucket is one partition of the grouped price aggregate. Buckets are
// half-open [Min, Max); the final bucket has no upper bound, so every
// non-negative price falls into exactly one bucket.
type PriceBucket struct {
	Label string
	Min   float64
	Max   *float64
}

func upperBound(v float64) *float64 { return &v }

// PriceBuckets is the fixed, ordered price partition.
var PriceBuckets = []PriceBucket{
	{Label: "budget", Min: 0, Max: upperBound(50)},
	{Label: "mid", Min: 50, Max: upperBound(200)},
	{Label: "premium", Min: 200},
}

// PlanAverageProductPrice compiles the mean-price aggregate over the
// filtered product set. AVG over zero rows yields SQL NULL, which the
// store surfaces as "no data" rather than an error.
func PlanAverageProductPrice(filter catalog.ProductFilter) (SQLQuery, error) {
	sqlStr, args, err := ApplyProductFilter(sq.Select("AVG(`price`)").From(productsTable), filter).
		PlaceholderFormat(sq.Question).
		ToSql()
	if err != nil {
		return SQLQuery{}, err
	}
	return SQLQuery{SQL: sqlStr, Args: args}, nil
}

// PlanPriceRangeCounts compiles the grouped price aggregate as a single
// statement with one conditional sum per bucket, in bucket order.
func PlanPriceRangeCounts() (SQLQuery, error) {
	builder := sq.Select().From(productsTable)
	for _, bucket := range PriceBuckets {
		alias := sqlutil.QuoteIdentifier(bucket.Label)
		if bucket.Max != nil {
			builder = builder.Column(sq.Expr(
				"COALESCE(SUM(CASE WHEN `price` >= ? AND `price` < ? THEN 1 ELSE 0 END), 0) AS "+alias,
				bucket.Min, *bucket.Max,
			))
		} else {
			builder = builder.Column(sq.Expr(
				"COALESCE(SUM(CASE WHEN `price` >= ? THEN 1 ELSE 0 END), 0) AS "+alias,
				bucket.Min,
			))
		}
	}
	sqlStr, args, err := builder.PlaceholderFormat(sq.Question).ToSql()
	if err != nil {
		return SQLQuery{}, err
	}
	return SQLQuery{SQL: sqlStr, Args: args}, nil
}
