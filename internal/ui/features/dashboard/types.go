// Package dashboard provides the main dashboard feature: filter
// controls, KPI cards, frequency tables, the yearly trend, and the
// leaderboards, recomputed in full on every filter change.
package dashboard

import (
	"github.com/reeldash/reeldash/internal/filter"
	"github.com/reeldash/reeldash/internal/ui/features/common"
)

// Signals are the filter values the frontend publishes.
type Signals struct {
	Certificate string `json:"certificate"`
	YearFrom    int    `json:"yearfrom"`
	YearTo      int    `json:"yearto"`
	Genre       string `json:"genre"`
}

// BarRow is one row of a frequency table.
type BarRow struct {
	Label string
	Count string
	Width int
}

// BarTable is one frequency-table card.
type BarTable struct {
	Title string
	Rows  []BarRow
}

// YearPoint is one bar of the yearly trend strip.
type YearPoint struct {
	Year   int
	Count  int
	Height int
}

// BoardRow is one row of a leaderboard card.
type BoardRow struct {
	Rank  int
	Name  string
	Year  int
	Value string
}

// Board is one leaderboard card.
type Board struct {
	Title       string
	ValueHeader string
	Rows        []BoardRow
}

// ViewData feeds the dashboard-view fragment.
type ViewData struct {
	Criteria filter.Criteria
	Options  common.FilterOptions

	Empty           bool
	TotalCount      string
	TopRated        string
	TopGrossing     string
	MostCommonGenre string

	Tables []BarTable
	Years  []YearPoint
	Boards []Board
}

// PageData feeds the full dashboard page.
type PageData struct {
	Title       string
	SignalsJSON string
	View        ViewData
}
