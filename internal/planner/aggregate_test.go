package planner

import (
	"strings"
	"testing"

	"catalog-graphql/internal/catalog"
)

func TestPlanAverageProductPrice(t *testing.T) {
	q, err := PlanAverageProductPrice(catalog.ProductFilter{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if q.SQL != "SELECT AVG(`price`) FROM `products`" {
		t.Fatalf("unexpected SQL: %s", q.SQL)
	}
}

func TestPlanAverageProductPrice_WithFilter(t *testing.T) {
	q, err := PlanAverageProductPrice(catalog.ProductFilter{CategoryID: intPtr(2)})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if q.SQL != "SELECT AVG(`price`) FROM `products` WHERE `category_id` = ?" {
		t.Fatalf("unexpected SQL: %s", q.SQL)
	}
}

func TestPriceBuckets_AreOrderedAndExhaustive(t *testing.T) {
	if len(PriceBuckets) != 3 {
		t.Fatalf("expected 3 buckets, got %d", len(PriceBuckets))
	}
	// Each bucket's upper bound is the next bucket's lower bound, and the
	// last bucket is unbounded.
	for i := 0; i < len(PriceBuckets)-1; i++ {
		if PriceBuckets[i].Max == nil {
			t.Fatalf("bucket %d must have an upper bound", i)
		}
		if *PriceBuckets[i].Max != PriceBuckets[i+1].Min {
			t.Fatalf("gap between bucket %d and %d", i, i+1)
		}
	}
	if PriceBuckets[len(PriceBuckets)-1].Max != nil {
		t.Fatal("final bucket must be unbounded above")
	}
}

func TestPlanPriceRangeCounts_OneConditionalSumPerBucket(t *testing.T) {
	q, err := PlanPriceRangeCounts()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := strings.Count(q.SQL, "SUM(CASE WHEN"); got != len(PriceBuckets) {
		t.Fatalf("expected %d conditional sums, got %d in %s", len(PriceBuckets), got, q.SQL)
	}
	for _, bucket := range PriceBuckets {
		if !strings.Contains(q.SQL, "AS `"+bucket.Label+"`") {
			t.Fatalf("missing bucket alias %q in %s", bucket.Label, q.SQL)
		}
	}
	// Args: two bounds per bounded bucket, one for the unbounded tail.
	if len(q.Args) != 5 {
		t.Fatalf("expected 5 args, got %v", q.Args)
	}
}
