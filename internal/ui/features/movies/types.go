// Package movies provides the dataset explorer feature: the filtered
// record listing with column selection and a row limit.
package movies

import (
	"github.com/reeldash/reeldash/internal/filter"
	"github.com/reeldash/reeldash/internal/ui/features/common"
)

// Signals are the filter and view settings the frontend publishes.
type Signals struct {
	Certificate string   `json:"certificate"`
	YearFrom    int      `json:"yearfrom"`
	YearTo      int      `json:"yearto"`
	Genre       string   `json:"genre"`
	Columns     []string `json:"columns"`
	Limit       int      `json:"limit"`
}

// ViewData feeds the movies-view fragment.
type ViewData struct {
	Empty   bool
	Columns []string
	Rows    [][]string
	Total   int // matching records
	Shown   int // rows rendered after the limit
}

// PageData feeds the full movies page.
type PageData struct {
	Title           string
	SignalsJSON     string
	Criteria        filter.Criteria
	Options         common.FilterOptions
	AllColumns      []string
	SelectedColumns map[string]bool
	View            ViewData
}
