// Package query provides the SQL console feature backed by the
// embedded engine.
package query

// Signals are the values the frontend publishes.
type Signals struct {
	SQL string `json:"sql"`
}

// TableInfo is one seeded table shown above the console.
type TableInfo struct {
	Name     string
	RowCount string
}

// ResultData feeds the query-results fragment.
type ResultData struct {
	Ran       bool
	Columns   []string
	Rows      [][]string
	RowCount  int
	Truncated bool
	ElapsedMS int64
	Error     string
}

// PageData feeds the full query page.
type PageData struct {
	Title       string
	SignalsJSON string
	Tables      []TableInfo
	Result      ResultData
}
