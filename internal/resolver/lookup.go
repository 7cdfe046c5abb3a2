package resolver

import (
	"context"

	"catalog-graphql/internal/catalog"
	"catalog-graphql/internal/planner"
	"catalog-graphql/internal/qerr"
)

// Product returns a single product by id with its category and reviews
// attached. A missing id is NotFound, distinct from an empty filtered page.
func (r *Resolver) Product(ctx context.Context, id int64) (*catalog.Product, error) {
	q, err := planner.PlanProductByID(id)
	if err != nil {
		return nil, err
	}
	products, err := r.store.SelectProducts(ctx, q)
	if err != nil {
		return nil, err
	}
	if len(products) == 0 {
		return nil, qerr.NotFoundf("product %d not found", id)
	}
	if err := r.attachCategories(ctx, products); err != nil {
		return nil, err
	}
	if err := r.attachReviews(ctx, products); err != nil {
		return nil, err
	}
	return &products[0], nil
}

// Category returns a single category by id.
func (r *Resolver) Category(ctx context.Context, id int64) (*catalog.Category, error) {
	q, err := planner.PlanCategoryByID(id)
	if err != nil {
		return nil, err
	}
	categories, err := r.store.SelectCategories(ctx, q, false)
	if err != nil {
		return nil, err
	}
	if len(categories) == 0 {
		return nil, qerr.NotFoundf("category %d not found", id)
	}
	return &categories[0], nil
}

// AllCategories lists every category with its product count.
func (r *Resolver) AllCategories(ctx context.Context) ([]catalog.Category, error) {
	q, err := planner.PlanAllCategories()
	if err != nil {
		return nil, err
	}
	return r.store.SelectCategories(ctx, q, true)
}

// AllReviews lists every review, newest first.
func (r *Resolver) AllReviews(ctx context.Context) ([]catalog.Review, error) {
	q, err := planner.PlanReviews(nil)
	if err != nil {
		return nil, err
	}
	return r.store.SelectReviews(ctx, q)
}

// ReviewsByRating lists every review carrying the given rating.
func (r *Resolver) ReviewsByRating(ctx context.Context, rating int) ([]catalog.Review, error) {
	if rating < 1 || rating > 5 {
		return nil, qerr.InvalidArgumentf("rating must be between 1 and 5, got %d", rating)
	}
	q, err := planner.PlanReviews(&rating)
	if err != nil {
		return nil, err
	}
	return r.store.SelectReviews(ctx, q)
}

// ReviewsByProduct lists the reviews for one product, optionally
// restricted to a single rating.
func (r *Resolver) ReviewsByProduct(ctx context.Context, productID int64, rating *int) ([]catalog.Review, error) {
	if rating != nil && (*rating < 1 || *rating > 5) {
		return nil, qerr.InvalidArgumentf("rating must be between 1 and 5, got %d", *rating)
	}
	q, err := planner.PlanReviewsForProducts([]int64{productID}, rating)
	if err != nil {
		return nil, err
	}
	return r.store.SelectReviews(ctx, q)
}
