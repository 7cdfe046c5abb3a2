package gqlschema

import (
	"catalog-graphql/internal/catalog"

	"github.com/graphql-go/graphql"
)

// filterArgs is the shared optional-filter argument set for product
// queries. All filters are AND-combined; omitted arguments impose no
// constraint.
func (b *Builder) filterArgs() graphql.FieldConfigArgument {
	return graphql.FieldConfigArgument{
		"name":       &graphql.ArgumentConfig{Type: graphql.String, Description: "Substring match on product name."},
		"categoryId": &graphql.ArgumentConfig{Type: graphql.Int},
		"isActive":   &graphql.ArgumentConfig{Type: graphql.Boolean},
		"isFeatured": &graphql.ArgumentConfig{Type: graphql.Boolean},
		"priceMin":   &graphql.ArgumentConfig{Type: graphql.Float, Description: "Inclusive lower price bound."},
		"priceMax":   &graphql.ArgumentConfig{Type: graphql.Float, Description: "Inclusive upper price bound."},
		"ratingMin":  &graphql.ArgumentConfig{Type: graphql.Float},
		"hasStock":   &graphql.ArgumentConfig{Type: graphql.Boolean, Description: "Only products with stock on hand."},
	}
}

func filterFromArgs(args map[string]interface{}) catalog.ProductFilter {
	return catalog.ProductFilter{
		Name:       optString(args, "name"),
		CategoryID: optInt64(args, "categoryId"),
		IsActive:   optBool(args, "isActive"),
		IsFeatured: optBool(args, "isFeatured"),
		PriceMin:   optFloat(args, "priceMin"),
		PriceMax:   optFloat(args, "priceMax"),
		RatingMin:  optFloat(args, "ratingMin"),
		HasStock:   optBool(args, "hasStock"),
	}
}

func sortFromArgs(args map[string]interface{}) *catalog.Sort {
	field := optString(args, "sortField")
	order := optString(args, "sortOrder")
	if field == nil && order == nil {
		return nil
	}
	sort := catalog.Sort{}
	if field != nil {
		sort.Field = *field
	}
	if order != nil {
		sort.Order = *order
	}
	return &sort
}

func optString(args map[string]interface{}, key string) *string {
	if v, ok := args[key].(string); ok {
		return &v
	}
	return nil
}

func optBool(args map[string]interface{}, key string) *bool {
	if v, ok := args[key].(bool); ok {
		return &v
	}
	return nil
}

func optFloat(args map[string]interface{}, key string) *float64 {
	switch v := args[key].(type) {
	case float64:
		return &v
	case int:
		f := float64(v)
		return &f
	}
	return nil
}

func optInt(args map[string]interface{}, key string) *int {
	if v, ok := args[key].(int); ok {
		return &v
	}
	return nil
}

func optInt64(args map[string]interface{}, key string) *int64 {
	if v, ok := args[key].(int); ok {
		id := int64(v)
		return &id
	}
	return nil
}

func intArg(args map[string]interface{}, key string, fallback int) int {
	if v, ok := args[key].(int); ok {
		return v
	}
	return fallback
}
