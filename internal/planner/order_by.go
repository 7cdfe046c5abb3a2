package planner

import (
	"strings"

	"catalog-graphql/internal/catalog"
	"catalog-graphql/internal/qerr"
	"catalog-graphql/internal/sqlutil"
)

// sortColumns whitelists the sortable product fields and maps them to
// their backing columns. A field outside this map is a contract violation.
var sortColumns = map[string]string{
	"price":       "price",
	"rating":      "rating",
	"createdAt":   "created_at",
	"reviewCount": "review_count",
	"name":        "name",
}

const (
	// DefaultSortField is used when the caller supplies no sort.
	DefaultSortField = "createdAt"
	defaultSortOrder = "desc"
)

// OrderBy is a validated sort: a whitelisted column plus direction.
type OrderBy struct {
	Column    string
	Direction string
}

// ParseSort validates a caller-supplied sort against the whitelist. A nil
// sort (or empty fields) falls back to the default: createdAt descending.
func ParseSort(sort *catalog.Sort) (OrderBy, error) {
	field := DefaultSortField
	order := defaultSortOrder
	if sort != nil {
		if sort.Field != "" {
			field = sort.Field
		}
		if sort.Order != "" {
			order = strings.ToLower(sort.Order)
		}
	}

	column, ok := sortColumns[field]
	if !ok {
		return OrderBy{}, qerr.InvalidArgumentf("unknown sort field %q", field)
	}
	if order != "asc" && order != "desc" {
		return OrderBy{}, qerr.InvalidArgumentf("sort order must be asc or desc, got %q", order)
	}

	return OrderBy{Column: column, Direction: strings.ToUpper(order)}, nil
}

// Clauses returns the ORDER BY clauses for this sort. The id tie-break
// keeps the ordering total when the primary sort key repeats, so identical
// inputs always produce identical sequences.
func (o OrderBy) Clauses() []string {
	return []string{
		sqlutil.QuoteIdentifier(o.Column) + " " + o.Direction,
		"`id` ASC",
	}
}

// SortFields returns the whitelisted sort field names, for schema
// documentation.
func SortFields() []string {
	fields := make([]string, 0, len(sortColumns))
	for field := range sortColumns {
		fields = append(fields, field)
	}
	return fields
}
