package planner

import (
	"catalog-graphql/internal/catalog"
	"catalog-graphql/internal/qerr"

	sq "github.com/Masterminds/squirrel"
)

// ConnectionPlan holds the statements behind a cursor page. Rows fetches
// First+1 entries so the executor can detect a further page without a
// second round trip; Count is the full filtered count.
type ConnectionPlan struct {
	Rows  SQLQuery
	Count SQLQuery
	First int
}

// PlanProductConnection compiles a cursor-paginated product query. The
// order is fixed to id ascending so a cursor stays a stable resumption
// point even when rows are inserted concurrently; afterID, when present,
// is an exclusive lower bound.
func PlanProductConnection(filter catalog.ProductFilter, first int, afterID *int64) (*ConnectionPlan, error) {
	if first < 1 {
		return nil, qerr.InvalidArgumentf("first must be >= 1, got %d", first)
	}

	base := ApplyProductFilter(sq.Select(productColumns...).From(productsTable), filter)
	if afterID != nil {
		base = base.Where(sq.Gt{"`id`": *afterID})
	}

	rowsSQL, rowsArgs, err := base.
		OrderBy("`id` ASC").
		Limit(uint64(first + 1)).
		PlaceholderFormat(sq.Question).
		ToSql()
	if err != nil {
		return nil, err
	}

	countSQL, countArgs, err := ApplyProductFilter(sq.Select("COUNT(*)").From(productsTable), filter).
		PlaceholderFormat(sq.Question).
		ToSql()
	if err != nil {
		return nil, err
	}

	return &ConnectionPlan{
		Rows:  SQLQuery{SQL: rowsSQL, Args: rowsArgs},
		Count: SQLQuery{SQL: countSQL, Args: countArgs},
		First: first,
	}, nil
}
