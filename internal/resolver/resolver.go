// Package resolver implements the catalog query contract: deterministic,
// bounded, read-only resolution of filter/sort/pagination requests against
// the product store. Every operation is stateless; concurrent calls share
// nothing but the store handle.
package resolver

import (
	"context"

	"catalog-graphql/internal/catalog"
	"catalog-graphql/internal/planner"
	"catalog-graphql/internal/qerr"
	"catalog-graphql/internal/store"
)

// productCursorType names the entity type embedded in product cursors.
const productCursorType = "Product"

// Limits caps caller-supplied page sizes. Zero values disable the cap.
type Limits struct {
	MaxPageSize int
	MaxFirst    int
}

// Resolver resolves catalog queries against a Store.
type Resolver struct {
	store  *store.Store
	limits Limits
}

// New creates a Resolver.
func New(s *store.Store, limits Limits) *Resolver {
	return &Resolver{store: s, limits: limits}
}

// ResolvePage returns one offset-paginated page of filtered, sorted
// products. A page beyond the last one yields an empty item list with
// accurate counts; out-of-range pagination arguments are rejected, never
// clamped.
func (r *Resolver) ResolvePage(ctx context.Context, filter catalog.ProductFilter, sort *catalog.Sort, page, pageSize int) (*catalog.Page, error) {
	if r.limits.MaxPageSize > 0 && pageSize > r.limits.MaxPageSize {
		return nil, qerr.InvalidArgumentf("pageSize must be <= %d, got %d", r.limits.MaxPageSize, pageSize)
	}

	plan, err := planner.PlanProductPage(filter, sort, page, pageSize)
	if err != nil {
		return nil, err
	}

	totalCount, err := r.store.CountScalar(ctx, plan.Count)
	if err != nil {
		return nil, err
	}

	items, err := r.store.SelectProducts(ctx, plan.Rows)
	if err != nil {
		return nil, err
	}
	if err := r.attachCategories(ctx, items); err != nil {
		return nil, err
	}

	totalPages := 0
	if totalCount > 0 {
		totalPages = (totalCount + pageSize - 1) / pageSize
	}

	return &catalog.Page{
		Items:       items,
		TotalCount:  totalCount,
		Page:        page,
		PageSize:    pageSize,
		TotalPages:  totalPages,
		HasNext:     page < totalPages,
		HasPrevious: page > 1,
	}, nil
}
