package resolver

import (
	"context"

	"catalog-graphql/internal/catalog"
	"catalog-graphql/internal/cursor"
	"catalog-graphql/internal/planner"
	"catalog-graphql/internal/qerr"
)

// ResolveConnection returns one cursor-paginated page of filtered products
// in id-ascending order. The after cursor is an exclusive lower bound; a
// malformed cursor fails the whole operation rather than restarting from
// the beginning.
func (r *Resolver) ResolveConnection(ctx context.Context, filter catalog.ProductFilter, first int, after *string) (*catalog.Connection, error) {
	if r.limits.MaxFirst > 0 && first > r.limits.MaxFirst {
		return nil, qerr.InvalidArgumentf("first must be <= %d, got %d", r.limits.MaxFirst, first)
	}

	var afterID *int64
	if after != nil {
		id, err := cursor.Decode(productCursorType, *after)
		if err != nil {
			return nil, qerr.InvalidArgument("after", err)
		}
		afterID = &id
	}

	plan, err := planner.PlanProductConnection(filter, first, afterID)
	if err != nil {
		return nil, err
	}

	rows, err := r.store.SelectProducts(ctx, plan.Rows)
	if err != nil {
		return nil, err
	}
	// The plan fetched one row beyond the requested page; its presence is
	// the hasNextPage signal.
	hasNext := len(rows) > plan.First
	if hasNext {
		rows = rows[:plan.First]
	}

	totalCount, err := r.store.CountScalar(ctx, plan.Count)
	if err != nil {
		return nil, err
	}
	if err := r.attachCategories(ctx, rows); err != nil {
		return nil, err
	}

	edges := make([]catalog.Edge, len(rows))
	for i, p := range rows {
		edges[i] = catalog.Edge{
			Cursor: cursor.Encode(productCursorType, p.ID),
			Node:   p,
		}
	}

	pageInfo := catalog.PageInfo{
		HasNextPage:     hasNext,
		HasPreviousPage: after != nil,
	}
	if len(edges) > 0 {
		pageInfo.StartCursor = &edges[0].Cursor
		pageInfo.EndCursor = &edges[len(edges)-1].Cursor
	}

	return &catalog.Connection{
		Edges:      edges,
		PageInfo:   pageInfo,
		TotalCount: totalCount,
	}, nil
}
