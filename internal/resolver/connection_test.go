package resolver

import (
	"context"
	"testing"

	"catalog-graphql/internal/catalog"
	"catalog-graphql/internal/cursor"
	"catalog-graphql/internal/planner"
	"catalog-graphql/internal/qerr"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveConnection_FirstPageOfSeventeen(t *testing.T) {
	r, mock, db := newMockResolver(t, Limits{})
	defer db.Close()

	plan, err := planner.PlanProductConnection(catalog.ProductFilter{}, 10, nil)
	require.NoError(t, err)

	// The look-ahead query returns first+1 rows, signaling a next page.
	expectQuery(t, mock, plan.Rows, productRows(11, 1))
	expectQuery(t, mock, plan.Count, countRows(17))
	catPlan, err := planner.PlanCategoriesByIDs([]int64{1})
	require.NoError(t, err)
	expectQuery(t, mock, catPlan, categoryRows())

	conn, err := r.ResolveConnection(context.Background(), catalog.ProductFilter{}, 10, nil)
	require.NoError(t, err)

	assert.Len(t, conn.Edges, 10)
	assert.Equal(t, 17, conn.TotalCount)
	assert.True(t, conn.PageInfo.HasNextPage)
	assert.False(t, conn.PageInfo.HasPreviousPage)
	require.NotNil(t, conn.PageInfo.EndCursor)

	endID, err := cursor.Decode("Product", *conn.PageInfo.EndCursor)
	require.NoError(t, err)
	assert.Equal(t, int64(10), endID)
}

func TestResolveConnection_SecondPageResumesAfterCursor(t *testing.T) {
	r, mock, db := newMockResolver(t, Limits{})
	defer db.Close()

	after := cursor.Encode("Product", 10)
	afterID := int64(10)
	plan, err := planner.PlanProductConnection(catalog.ProductFilter{}, 10, &afterID)
	require.NoError(t, err)

	// Only 7 rows remain past id 10; no look-ahead row means no next page.
	expectQuery(t, mock, plan.Rows, productRows(7, 11))
	expectQuery(t, mock, plan.Count, countRows(17))
	catPlan, err := planner.PlanCategoriesByIDs([]int64{1})
	require.NoError(t, err)
	expectQuery(t, mock, catPlan, categoryRows())

	conn, err := r.ResolveConnection(context.Background(), catalog.ProductFilter{}, 10, &after)
	require.NoError(t, err)

	assert.Len(t, conn.Edges, 7)
	assert.False(t, conn.PageInfo.HasNextPage)
	assert.True(t, conn.PageInfo.HasPreviousPage)
	// Strictly-following page: first edge is the id right after the cursor.
	assert.Equal(t, int64(11), conn.Edges[0].Node.ID)
}

func TestResolveConnection_EmptyResultHasNilCursors(t *testing.T) {
	r, mock, db := newMockResolver(t, Limits{})
	defer db.Close()

	filter := catalog.ProductFilter{IsActive: boolPtr(false)}
	plan, err := planner.PlanProductConnection(filter, 5, nil)
	require.NoError(t, err)

	expectQuery(t, mock, plan.Rows, productRows(0, 0))
	expectQuery(t, mock, plan.Count, countRows(0))

	conn, err := r.ResolveConnection(context.Background(), filter, 5, nil)
	require.NoError(t, err)

	assert.Empty(t, conn.Edges)
	assert.Nil(t, conn.PageInfo.StartCursor)
	assert.Nil(t, conn.PageInfo.EndCursor)
	assert.False(t, conn.PageInfo.HasNextPage)
}

func TestResolveConnection_MalformedCursorFailsWholeOperation(t *testing.T) {
	r, _, db := newMockResolver(t, Limits{})
	defer db.Close()

	bad := "not-a-cursor"
	_, err := r.ResolveConnection(context.Background(), catalog.ProductFilter{}, 10, &bad)
	require.Error(t, err)
	assert.True(t, qerr.IsInvalidArgument(err))
}

func TestResolveConnection_RejectsFirstBelowOne(t *testing.T) {
	r, _, db := newMockResolver(t, Limits{})
	defer db.Close()

	_, err := r.ResolveConnection(context.Background(), catalog.ProductFilter{}, 0, nil)
	assert.True(t, qerr.IsInvalidArgument(err))
}

func TestResolveConnection_EnforcesMaxFirst(t *testing.T) {
	r, _, db := newMockResolver(t, Limits{MaxFirst: 50})
	defer db.Close()

	_, err := r.ResolveConnection(context.Background(), catalog.ProductFilter{}, 51, nil)
	assert.True(t, qerr.IsInvalidArgument(err))
}
