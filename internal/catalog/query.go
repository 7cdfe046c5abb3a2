package catalog

// ProductFilter is the optional filter set for product queries. Nil fields
// impose no constraint; all present fields are combined with logical AND.
type ProductFilter struct {
	// Name matches products whose name contains the value.
	Name *string
	// CategoryID matches products in the given category.
	CategoryID *int64
	IsActive   *bool
	IsFeatured *bool
	// PriceMin and PriceMax are inclusive bounds. An inverted range is a
	// valid always-empty intersection, not an error.
	PriceMin  *float64
	PriceMax  *float64
	RatingMin *float64
	// HasStock selects products with stock_quantity > 0 when true, and
	// products with zero stock when false.
	HasStock *bool
}

// Sort names a whitelisted sort field and a direction ("asc" or "desc").
// The zero value means "use the default ordering".
type Sort struct {
	Field string
	Order string
}

// Page is an offset-paginated result.
type Page struct {
	Items       []Product
	TotalCount  int
	Page        int
	PageSize    int
	TotalPages  int
	HasNext     bool
	HasPrevious bool
}

// Edge pairs a product with its opaque cursor.
type Edge struct {
	Cursor string
	Node   Product
}

// PageInfo describes cursor-pagination boundaries. Start and end cursors
// are nil when the page is empty.
type PageInfo struct {
	HasNextPage     bool
	HasPreviousPage bool
	StartCursor     *string
	EndCursor       *string
}

// Connection is a cursor-paginated result.
type Connection struct {
	Edges      []Edge
	PageInfo   PageInfo
	TotalCount int
}

// PriceRangeCount is one bucket of the grouped price aggregate.
type PriceRangeCount struct {
	Label string
	Count int
}
