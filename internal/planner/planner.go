// Package planner compiles catalog query requests (filters, sorts,
// pagination) into parameterized SQL.
package planner

// SQLQuery is a parameterized SQL statement ready for execution.
type SQLQuery struct {
	SQL  string
	Args []interface{}
}
