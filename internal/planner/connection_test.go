package planner

import (
	"strings"
	"testing"

	"catalog-graphql/internal/catalog"
	"catalog-graphql/internal/qerr"
)

func TestPlanProductConnection_FetchesOneExtraRow(t *testing.T) {
	plan, err := PlanProductConnection(catalog.ProductFilter{}, 10, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.HasSuffix(plan.Rows.SQL, "ORDER BY `id` ASC LIMIT 11") {
		t.Fatalf("unexpected rows SQL: %s", plan.Rows.SQL)
	}
	if plan.First != 10 {
		t.Fatalf("expected First=10, got %d", plan.First)
	}
}

func TestPlanProductConnection_AfterIsExclusiveLowerBound(t *testing.T) {
	after := int64(42)
	plan, err := PlanProductConnection(catalog.ProductFilter{}, 5, &after)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(plan.Rows.SQL, "WHERE `id` > ?") {
		t.Fatalf("missing exclusive lower bound: %s", plan.Rows.SQL)
	}
	if len(plan.Rows.Args) != 1 || plan.Rows.Args[0] != int64(42) {
		t.Fatalf("unexpected args: %v", plan.Rows.Args)
	}
	// The count covers the whole filtered set, not the post-cursor remainder.
	if strings.Contains(plan.Count.SQL, "`id` >") {
		t.Fatalf("count SQL must not include the cursor bound: %s", plan.Count.SQL)
	}
}

func TestPlanProductConnection_FiltersPrecedeCursorBound(t *testing.T) {
	after := int64(7)
	plan, err := PlanProductConnection(catalog.ProductFilter{IsActive: boolPtr(true)}, 3, &after)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(plan.Rows.SQL, "WHERE `is_active` = ? AND `id` > ?") {
		t.Fatalf("unexpected rows SQL: %s", plan.Rows.SQL)
	}
}

func TestPlanProductConnection_RejectsFirstBelowOne(t *testing.T) {
	for _, first := range []int{0, -1} {
		_, err := PlanProductConnection(catalog.ProductFilter{}, first, nil)
		if !qerr.IsInvalidArgument(err) {
			t.Fatalf("first=%d: expected InvalidArgument, got %v", first, err)
		}
	}
}
