package planner

import (
	"catalog-graphql/internal/catalog"
	"catalog-graphql/internal/qerr"

	sq "github.com/Masterminds/squirrel"
)

// productColumns is the fixed select list for product rows, in scan order.
var productColumns = []string{
	"`id`", "`name`", "`slug`", "`description`", "`category_id`", "`price`",
	"`discount_percent`", "`stock_quantity`", "`sku`", "`is_featured`",
	"`is_active`", "`rating`", "`review_count`", "`created_at`",
	"`updated_at`", "`published_date`",
}

const productsTable = "`products`"

// PagePlan holds the two statements behind an offset page: the bounded row
// query and the pre-pagination count.
type PagePlan struct {
	Rows  SQLQuery
	Count SQLQuery
}

// PlanProductPage compiles a filtered, sorted, offset-paginated product
// query. page and pageSize below 1 are rejected rather than clamped; a
// page beyond the last one simply selects an empty slice.
func PlanProductPage(filter catalog.ProductFilter, sort *catalog.Sort, page, pageSize int) (*PagePlan, error) {
	if page < 1 {
		return nil, qerr.InvalidArgumentf("page must be >= 1, got %d", page)
	}
	if pageSize < 1 {
		return nil, qerr.InvalidArgumentf("pageSize must be >= 1, got %d", pageSize)
	}
	orderBy, err := ParseSort(sort)
	if err != nil {
		return nil, err
	}

	offset := (page - 1) * pageSize
	rowsSQL, rowsArgs, err := ApplyProductFilter(sq.Select(productColumns...).From(productsTable), filter).
		OrderBy(orderBy.Clauses()...).
		Limit(uint64(pageSize)).
		Offset(uint64(offset)).
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

	return &PagePlan{
		Rows:  SQLQuery{SQL: rowsSQL, Args: rowsArgs},
		Count: SQLQuery{SQL: countSQL, Args: countArgs},
	}, nil
}
