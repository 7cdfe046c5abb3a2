package gqlschema

import (
	"fmt"
	"strings"
	"unicode"

	"catalog-graphql/internal/catalog"
	"catalog-graphql/internal/planner"

	"github.com/graphql-go/graphql"
)

func (b *Builder) categoryType() *graphql.Object {
	if b.category != nil {
		return b.category
	}
	b.category = graphql.NewObject(graphql.ObjectConfig{
		Name:        "Category",
		Description: "A product category.",
		Fields: graphql.Fields{
			"id":            &graphql.Field{Type: graphql.NewNonNull(graphql.Int)},
			"name":          &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
			"slug":          &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
			"description":   &graphql.Field{Type: graphql.String},
			"createdAt":     &graphql.Field{Type: graphql.DateTime},
			"productsCount": &graphql.Field{Type: graphql.NewNonNull(graphql.Int)},
		},
	})
	return b.category
}

func (b *Builder) reviewType() *graphql.Object {
	if b.review != nil {
		return b.review
	}
	b.review = graphql.NewObject(graphql.ObjectConfig{
		Name:        "Review",
		Description: "A customer review of a product.",
		Fields: graphql.Fields{
			"id":                 &graphql.Field{Type: graphql.NewNonNull(graphql.Int)},
			"productId":          &graphql.Field{Type: graphql.NewNonNull(graphql.Int)},
			"user":               &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
			"rating":             &graphql.Field{Type: graphql.NewNonNull(graphql.Int)},
			"title":              &graphql.Field{Type: graphql.String},
			"comment":            &graphql.Field{Type: graphql.String},
			"isVerifiedPurchase": &graphql.Field{Type: graphql.NewNonNull(graphql.Boolean)},
			"helpfulCount":       &graphql.Field{Type: graphql.NewNonNull(graphql.Int)},
			"createdAt":          &graphql.Field{Type: graphql.DateTime},
		},
	})
	return b.review
}

func (b *Builder) productType() *graphql.Object {
	if b.product != nil {
		return b.product
	}
	// FieldsThunk defers field construction so category and review types can
	// be built in any order.
	b.product = graphql.NewObject(graphql.ObjectConfig{
		Name:        "Product",
		Description: "A catalog product.",
		Fields: graphql.FieldsThunk(func() graphql.Fields {
			return graphql.Fields{
				"id":              &graphql.Field{Type: graphql.NewNonNull(graphql.Int)},
				"name":            &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
				"slug":            &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
				"description":     &graphql.Field{Type: graphql.String},
				"categoryId":      &graphql.Field{Type: graphql.NewNonNull(graphql.Int)},
				"category":        &graphql.Field{Type: b.categoryType()},
				"price":           &graphql.Field{Type: graphql.NewNonNull(graphql.Float)},
				"discountPercent": &graphql.Field{Type: graphql.NewNonNull(graphql.Int)},
				"discountedPrice": &graphql.Field{
					Type:    graphql.NewNonNull(graphql.Float),
					Resolve: resolveDiscountedPrice,
				},
				"stockQuantity": &graphql.Field{Type: graphql.NewNonNull(graphql.Int)},
				"sku":           &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
				"isFeatured":    &graphql.Field{Type: graphql.NewNonNull(graphql.Boolean)},
				"isActive":      &graphql.Field{Type: graphql.NewNonNull(graphql.Boolean)},
				"rating":        &graphql.Field{Type: graphql.NewNonNull(graphql.Float)},
				"reviewCount":   &graphql.Field{Type: graphql.NewNonNull(graphql.Int)},
				"createdAt":     &graphql.Field{Type: graphql.DateTime},
				"updatedAt":     &graphql.Field{Type: graphql.DateTime},
				"publishedDate": &graphql.Field{Type: graphql.DateTime},
				"reviews":       &graphql.Field{Type: graphql.NewList(graphql.NewNonNull(b.reviewType()))},
			}
		}),
	})
	return b.product
}

func resolveDiscountedPrice(p graphql.ResolveParams) (interface{}, error) {
	switch src := p.Source.(type) {
	case catalog.Product:
		return src.DiscountedPrice(), nil
	case *catalog.Product:
		return src.DiscountedPrice(), nil
	}
	// The field is non-null; an unknown source must fail loudly rather
	// than surface as a null-in-non-null error.
	return nil, fmt.Errorf("discountedPrice: unexpected source type %T", p.Source)
}

func (b *Builder) productPageType() *graphql.Object {
	if b.productPage != nil {
		return b.productPage
	}
	b.productPage = graphql.NewObject(graphql.ObjectConfig{
		Name:        "ProductPage",
		Description: "An offset-paginated page of products.",
		Fields: graphql.Fields{
			"items":       &graphql.Field{Type: graphql.NewNonNull(graphql.NewList(graphql.NewNonNull(b.productType())))},
			"totalCount":  &graphql.Field{Type: graphql.NewNonNull(graphql.Int)},
			"page":        &graphql.Field{Type: graphql.NewNonNull(graphql.Int)},
			"pageSize":    &graphql.Field{Type: graphql.NewNonNull(graphql.Int)},
			"totalPages":  &graphql.Field{Type: graphql.NewNonNull(graphql.Int)},
			"hasNext":     &graphql.Field{Type: graphql.NewNonNull(graphql.Boolean)},
			"hasPrevious": &graphql.Field{Type: graphql.NewNonNull(graphql.Boolean)},
		},
	})
	return b.productPage
}

func (b *Builder) pageInfoType() *graphql.Object {
	if b.pageInfo != nil {
		return b.pageInfo
	}
	b.pageInfo = graphql.NewObject(graphql.ObjectConfig{
		Name: "PageInfo",
		Fields: graphql.Fields{
			"hasNextPage":     &graphql.Field{Type: graphql.NewNonNull(graphql.Boolean)},
			"hasPreviousPage": &graphql.Field{Type: graphql.NewNonNull(graphql.Boolean)},
			"startCursor":     &graphql.Field{Type: graphql.String},
			"endCursor":       &graphql.Field{Type: graphql.String},
		},
	})
	return b.pageInfo
}

func (b *Builder) productConnectionType() *graphql.Object {
	if b.productConnection != nil {
		return b.productConnection
	}
	edgeType := graphql.NewObject(graphql.ObjectConfig{
		Name: "ProductEdge",
		Fields: graphql.Fields{
			"cursor": &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
			"node":   &graphql.Field{Type: graphql.NewNonNull(b.productType())},
		},
	})
	b.productConnection = graphql.NewObject(graphql.ObjectConfig{
		Name:        "ProductConnection",
		Description: "A cursor-paginated slice of products.",
		Fields: graphql.Fields{
			"edges":      &graphql.Field{Type: graphql.NewNonNull(graphql.NewList(graphql.NewNonNull(edgeType)))},
			"pageInfo":   &graphql.Field{Type: graphql.NewNonNull(b.pageInfoType())},
			"totalCount": &graphql.Field{Type: graphql.NewNonNull(graphql.Int)},
		},
	})
	return b.productConnection
}

func (b *Builder) priceRangeCountType() *graphql.Object {
	if b.priceRangeCount != nil {
		return b.priceRangeCount
	}
	b.priceRangeCount = graphql.NewObject(graphql.ObjectConfig{
		Name: "PriceRangeCount",
		Fields: graphql.Fields{
			"label": &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
			"count": &graphql.Field{Type: graphql.NewNonNull(graphql.Int)},
		},
	})
	return b.priceRangeCount
}

func (b *Builder) sortFieldEnum() *graphql.Enum {
	if b.sortField != nil {
		return b.sortField
	}
	values := graphql.EnumValueConfigMap{}
	for _, f := range planner.SortFields() {
		values[enumValueName(f)] = &graphql.EnumValueConfig{Value: f}
	}
	b.sortField = graphql.NewEnum(graphql.EnumConfig{
		Name:   "ProductSortField",
		Values: values,
	})
	return b.sortField
}

func (b *Builder) sortOrderEnum() *graphql.Enum {
	if b.sortOrder != nil {
		return b.sortOrder
	}
	b.sortOrder = graphql.NewEnum(graphql.EnumConfig{
		Name: "SortOrder",
		Values: graphql.EnumValueConfigMap{
			"ASC":  &graphql.EnumValueConfig{Value: "asc"},
			"DESC": &graphql.EnumValueConfig{Value: "desc"},
		},
	})
	return b.sortOrder
}

// enumValueName converts a camelCase field name to the SCREAMING_SNAKE
// convention GraphQL enums use, e.g. "reviewCount" -> "REVIEW_COUNT".
func enumValueName(field string) string {
	var sb strings.Builder
	for i, r := range field {
		if unicode.IsUpper(r) && i > 0 {
			sb.WriteByte('_')
		}
		sb.WriteRune(unicode.ToUpper(r))
	}
	return sb.String()
}
