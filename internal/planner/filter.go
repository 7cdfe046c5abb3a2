package planner

import (
	"catalog-graphql/internal/catalog"

	sq "github.com/Masterminds/squirrel"
)

// predicateFunc translates one optional filter field into a SQL condition,
// or nil when the field is absent.
type predicateFunc func(f catalog.ProductFilter) sq.Sqlizer

// productPredicates is the fixed application order for product filters.
// Each builder is independent; the fold in ApplyProductFilter combines the
// present ones with AND, so the effect is order-independent even though the
// generated SQL text is stable.
var productPredicates = []predicateFunc{
	func(f catalog.ProductFilter) sq.Sqlizer {
		if f.Name == nil {
			return nil
		}
		// Substring match; case sensitivity follows the column collation.
		return sq.Like{"`name`": "%" + *f.Name + "%"}
	},
	func(f catalog.ProductFilter) sq.Sqlizer {
		if f.CategoryID == nil {
			return nil
		}
		return sq.Eq{"`category_id`": *f.CategoryID}
	},
	func(f catalog.ProductFilter) sq.Sqlizer {
		if f.IsActive == nil {
			return nil
		}
		return sq.Eq{"`is_active`": *f.IsActive}
	},
	func(f catalog.ProductFilter) sq.Sqlizer {
		if f.IsFeatured == nil {
			return nil
		}
		return sq.Eq{"`is_featured`": *f.IsFeatured}
	},
	func(f catalog.ProductFilter) sq.Sqlizer {
		if f.PriceMin == nil {
			return nil
		}
		return sq.GtOrEq{"`price`": *f.PriceMin}
	},
	func(f catalog.ProductFilter) sq.Sqlizer {
		if f.PriceMax == nil {
			return nil
		}
		return sq.LtOrEq{"`price`": *f.PriceMax}
	},
	func(f catalog.ProductFilter) sq.Sqlizer {
		if f.RatingMin == nil {
			return nil
		}
		return sq.GtOrEq{"`rating`": *f.RatingMin}
	},
	func(f catalog.ProductFilter) sq.Sqlizer {
		if f.HasStock == nil {
			return nil
		}
		if *f.HasStock {
			return sq.Gt{"`stock_quantity`": 0}
		}
		return sq.Eq{"`stock_quantity`": 0}
	},
}

// ApplyProductFilter folds every present filter field into the builder as
// an AND-ed predicate.
func ApplyProductFilter(builder sq.SelectBuilder, filter catalog.ProductFilter) sq.SelectBuilder {
	for _, build := range productPredicates {
		if cond := build(filter); cond != nil {
			builder = builder.Where(cond)
		}
	}
	return builder
}
