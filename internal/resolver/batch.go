package resolver

import (
	"context"

	"catalog-graphql/internal/catalog"
	"catalog-graphql/internal/planner"
)

// attachCategories loads the categories for a page of products in a single
// batched query and attaches them in place. One round trip per page, never
// one per row.
func (r *Resolver) attachCategories(ctx context.Context, products []catalog.Product) error {
	if len(products) == 0 {
		return nil
	}

	ids := make([]int64, 0, len(products))
	for _, p := range products {
		ids = append(ids, p.CategoryID)
	}
	q, err := planner.PlanCategoriesByIDs(ids)
	if err != nil {
		return err
	}
	categories, err := r.store.SelectCategories(ctx, q, false)
	if err != nil {
		return err
	}

	byID := make(map[int64]catalog.Category, len(categories))
	for _, c := range categories {
		byID[c.ID] = c
	}
	for i := range products {
		if c, ok := byID[products[i].CategoryID]; ok {
			category := c
			products[i].Category = &category
		}
	}
	return nil
}

// attachReviews loads reviews for a set of products in one batched query
// and attaches them in place, preserving the store's ordering.
func (r *Resolver) attachReviews(ctx context.Context, products []catalog.Product) error {
	if len(products) == 0 {
		return nil
	}

	ids := make([]int64, 0, len(products))
	for _, p := range products {
		ids = append(ids, p.ID)
	}
	q, err := planner.PlanReviewsForProducts(ids, nil)
	if err != nil {
		return err
	}
	reviews, err := r.store.SelectReviews(ctx, q)
	if err != nil {
		return err
	}

	byProduct := make(map[int64][]catalog.Review)
	for _, rv := range reviews {
		byProduct[rv.ProductID] = append(byProduct[rv.ProductID], rv)
	}
	for i := range products {
		products[i].Reviews = byProduct[products[i].ID]
	}
	return nil
}
