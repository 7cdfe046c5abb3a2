package resolver

import (
	"context"

	"catalog-graphql/internal/catalog"
	"catalog-graphql/internal/planner"
)

// AverageProductPrice computes the mean price over the filtered product
// set. The result is nil when no products match; it is never a
// division-by-zero failure.
func (r *Resolver) AverageProductPrice(ctx context.Context, filter catalog.ProductFilter) (*float64, error) {
	q, err := planner.PlanAverageProductPrice(filter)
	if err != nil {
		return nil, err
	}
	return r.store.FloatScalar(ctx, q)
}

// ProductsByPriceRange counts products per fixed price bucket. The result
// is ordered and includes zero-count buckets.
func (r *Resolver) ProductsByPriceRange(ctx context.Context) ([]catalog.PriceRangeCount, error) {
	q, err := planner.PlanPriceRangeCounts()
	if err != nil {
		return nil, err
	}
	counts, err := r.store.BucketCounts(ctx, q, len(planner.PriceBuckets))
	if err != nil {
		return nil, err
	}

	result := make([]catalog.PriceRangeCount, len(planner.PriceBuckets))
	for i, bucket := range planner.PriceBuckets {
		result[i] = catalog.PriceRangeCount{Label: bucket.Label, Count: counts[i]}
	}
	return result, nil
}
