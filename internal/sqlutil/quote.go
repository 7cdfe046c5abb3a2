// Package sqlutil provides SQL identifier helpers.
package sqlutil

import "strings"

// QuoteIdentifier quotes a table or column name with backticks, escaping
// any embedded backticks.
func QuoteIdentifier(name string) string {
	return "`" + strings.ReplaceAll(name, "`", "``") + "`"
}
