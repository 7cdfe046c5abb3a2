// Package gqlschema assembles the GraphQL schema for the product catalog:
// object types for the catalog entities plus a root query exposing
// filtered pages, cursor connections, single lookups, and aggregates.
package gqlschema

import (
	"catalog-graphql/internal/catalog"
	"catalog-graphql/internal/resolver"

	"github.com/graphql-go/graphql"
)

// Defaults supplies the pagination defaults baked into query arguments.
type Defaults struct {
	PageSize int
	First    int
}

// Builder constructs the schema once; the type fields cache the GraphQL
// object types so shared types (Product, PageInfo) are built exactly once.
type Builder struct {
	resolver *resolver.Resolver
	defaults Defaults

	category          *graphql.Object
	product           *graphql.Object
	review            *graphql.Object
	productPage       *graphql.Object
	pageInfo          *graphql.Object
	productConnection *graphql.Object
	priceRangeCount   *graphql.Object
	sortField         *graphql.Enum
	sortOrder         *graphql.Enum
}

// New builds the executable schema over the given resolver.
func New(r *resolver.Resolver, defaults Defaults) (graphql.Schema, error) {
	if defaults.PageSize <= 0 {
		defaults.PageSize = 10
	}
	if defaults.First <= 0 {
		defaults.First = 10
	}
	b := &Builder{resolver: r, defaults: defaults}
	return graphql.NewSchema(graphql.SchemaConfig{
		Query: graphql.NewObject(graphql.ObjectConfig{
			Name:   "Query",
			Fields: b.rootFields(),
		}),
	})
}

func (b *Builder) rootFields() graphql.Fields {
	fields := graphql.Fields{}

	fields[catalog.SingleFieldName("Product")] = &graphql.Field{
		Type: b.productType(),
		Args: graphql.FieldConfigArgument{
			"id": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.Int)},
		},
		Resolve: func(p graphql.ResolveParams) (interface{}, error) {
			return b.resolver.Product(p.Context, int64(p.Args["id"].(int)))
		},
	}

	fields[catalog.SingleFieldName("Category")] = &graphql.Field{
		Type: b.categoryType(),
		Args: graphql.FieldConfigArgument{
			"id": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.Int)},
		},
		Resolve: func(p graphql.ResolveParams) (interface{}, error) {
			return b.resolver.Category(p.Context, int64(p.Args["id"].(int)))
		},
	}

	fields[catalog.ListFieldName("Category")] = &graphql.Field{
		Type: graphql.NewNonNull(graphql.NewList(graphql.NewNonNull(b.categoryType()))),
		Resolve: func(p graphql.ResolveParams) (interface{}, error) {
			return b.resolver.AllCategories(p.Context)
		},
	}

	pageArgs := b.filterArgs()
	pageArgs["sortField"] = &graphql.ArgumentConfig{Type: b.sortFieldEnum()}
	pageArgs["sortOrder"] = &graphql.ArgumentConfig{Type: b.sortOrderEnum()}
	pageArgs["page"] = &graphql.ArgumentConfig{Type: graphql.Int, DefaultValue: 1}
	pageArgs["pageSize"] = &graphql.ArgumentConfig{Type: graphql.Int, DefaultValue: b.defaults.PageSize}
	fields[catalog.ListFieldName("Product")] = &graphql.Field{
		Type:        graphql.NewNonNull(b.productPageType()),
		Description: "Filtered, sorted, offset-paginated products.",
		Args:        pageArgs,
		Resolve: func(p graphql.ResolveParams) (interface{}, error) {
			return b.resolver.ResolvePage(
				p.Context,
				filterFromArgs(p.Args),
				sortFromArgs(p.Args),
				intArg(p.Args, "page", 1),
				intArg(p.Args, "pageSize", b.defaults.PageSize),
			)
		},
	}

	connArgs := b.filterArgs()
	connArgs["first"] = &graphql.ArgumentConfig{Type: graphql.Int, DefaultValue: b.defaults.First}
	connArgs["after"] = &graphql.ArgumentConfig{Type: graphql.String}
	fields["productsConnection"] = &graphql.Field{
		Type:        graphql.NewNonNull(b.productConnectionType()),
		Description: "Filtered products as a cursor-paginated connection.",
		Args:        connArgs,
		Resolve: func(p graphql.ResolveParams) (interface{}, error) {
			return b.resolver.ResolveConnection(
				p.Context,
				filterFromArgs(p.Args),
				intArg(p.Args, "first", b.defaults.First),
				optString(p.Args, "after"),
			)
		},
	}

	fields["allReviews"] = &graphql.Field{
		Type:        graphql.NewNonNull(graphql.NewList(graphql.NewNonNull(b.reviewType()))),
		Description: "Every review, newest first.",
		Resolve: func(p graphql.ResolveParams) (interface{}, error) {
			return b.resolver.AllReviews(p.Context)
		},
	}

	fields["reviewsByRating"] = &graphql.Field{
		Type: graphql.NewNonNull(graphql.NewList(graphql.NewNonNull(b.reviewType()))),
		Args: graphql.FieldConfigArgument{
			"rating": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.Int)},
		},
		Resolve: func(p graphql.ResolveParams) (interface{}, error) {
			return b.resolver.ReviewsByRating(p.Context, p.Args["rating"].(int))
		},
	}

	fields["reviewsByProduct"] = &graphql.Field{
		Type: graphql.NewNonNull(graphql.NewList(graphql.NewNonNull(b.reviewType()))),
		Args: graphql.FieldConfigArgument{
			"productId": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.Int)},
			"rating":    &graphql.ArgumentConfig{Type: graphql.Int},
		},
		Resolve: func(p graphql.ResolveParams) (interface{}, error) {
			return b.resolver.ReviewsByProduct(
				p.Context,
				int64(p.Args["productId"].(int)),
				optInt(p.Args, "rating"),
			)
		},
	}

	fields["avgProductPrice"] = &graphql.Field{
		Type:        graphql.Float,
		Description: "Mean price of the filtered products; null when none match.",
		Args:        b.filterArgs(),
		Resolve: func(p graphql.ResolveParams) (interface{}, error) {
			avg, err := b.resolver.AverageProductPrice(p.Context, filterFromArgs(p.Args))
			if err != nil {
				return nil, err
			}
			if avg == nil {
				return nil, nil
			}
			return *avg, nil
		},
	}

	fields["productsByPriceRange"] = &graphql.Field{
		Type:        graphql.NewNonNull(graphql.NewList(graphql.NewNonNull(b.priceRangeCountType()))),
		Description: "Product counts per fixed price bucket, zero buckets included.",
		Resolve: func(p graphql.ResolveParams) (interface{}, error) {
			return b.resolver.ProductsByPriceRange(p.Context)
		},
	}

	return fields
}
