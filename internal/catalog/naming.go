package catalog

import (
	"strings"

	"github.com/jinzhu/inflection"
)

// ListFieldName derives the GraphQL list field name for an entity type,
// e.g. "Product" -> "allProducts", "Category" -> "allCategories".
func ListFieldName(typeName string) string {
	return "all" + inflection.Plural(typeName)
}

// SingleFieldName derives the GraphQL single-lookup field name for an
// entity type, e.g. "Product" -> "product".
func SingleFieldName(typeName string) string {
	if typeName == "" {
		return ""
	}
	return strings.ToLower(typeName[:1]) + typeName[1:]
}
