package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/reeldash/reeldash/internal/cli/output"
	"github.com/reeldash/reeldash/internal/filter"
	"github.com/reeldash/reeldash/internal/stats"
)

// NewSummaryCommand creates the summary command.
func NewSummaryCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "summary",
		Short: "Show headline KPIs for the (filtered) collection",
		Long: `Show the four headline metrics of the dashboard: total movie count,
top-rated movie, top-grossing movie, and most common genre.

All filter flags apply, so the KPIs describe the selection, not
necessarily the whole collection.`,
		Example: `  # KPIs for the whole collection
  reeldash summary

  # KPIs for R-rated movies from the nineties
  reeldash summary --certificate R --year-from 1990 --year-to 1999

  # Machine-readable
  reeldash summary -o json`,
		RunE: runSummary,
	}

	AddFilterFlags(cmd)

	return cmd
}

// SummaryOutput is the JSON output for the summary command.
type SummaryOutput struct {
	Dataset DatasetInfo     `json:"dataset"`
	Filters FilterSelection `json:"filters"`
	KPIs    stats.KPIs      `json:"kpis"`
}

// DatasetInfo describes the loaded dataset file.
type DatasetInfo struct {
	Path               string `json:"path"`
	Rows               int    `json:"rows"`
	MissingRatings     int    `json:"missing_ratings"`
	BoxOfficeFallbacks int    `json:"box_office_fallbacks"`
}

// FilterSelection echoes the applied filter criteria.
type FilterSelection struct {
	Certificate string `json:"certificate"`
	YearFrom    int    `json:"year_from"`
	YearTo      int    `json:"year_to"`
	Genre       string `json:"genre"`
}

func runSummary(cmd *cobra.Command, _ []string) error {
	cmdCtx, err := NewCommandContextWithoutEngine(cmd)
	if err != nil {
		return err
	}

	ds := cmdCtx.Dataset
	r := cmdCtx.Renderer

	criteria := CriteriaFromFlags(cmd, ds)
	movies := filter.Apply(ds, criteria)
	kpis := stats.Compute(movies)

	out := SummaryOutput{
		Dataset: DatasetInfo{
			Path:               ds.Path(),
			Rows:               ds.Len(),
			MissingRatings:     ds.Stats().MissingRatings,
			BoxOfficeFallbacks: ds.Stats().BoxOfficeFallbacks,
		},
		Filters: FilterSelection{
			Certificate: criteria.Certificate,
			YearFrom:    criteria.YearFrom,
			YearTo:      criteria.YearTo,
			Genre:       criteria.Genre,
		},
		KPIs: kpis,
	}

	switch r.EffectiveMode() {
	case output.ModeJSON:
		return r.JSON(out)
	case output.ModeMarkdown:
		return renderSummaryMarkdown(r, out)
	default:
		return renderSummaryText(r, out)
	}
}

func renderSummaryText(r *output.Renderer, out SummaryOutput) error {
	styles := r.Styles()

	r.Println("")
	r.Println(styles.Header1.Render("ReelDash Summary"))
	r.Println(styles.Muted.Render(strings.Repeat("=", 40)))
	r.Println("")

	if out.KPIs.TotalCount == 0 {
		r.Println(emptyResultMessage)
		return nil
	}

	r.Printf("  %s %d\n", styles.Bold.Render("Movies:"), out.KPIs.TotalCount)
	r.Printf("  %s %s\n", styles.Bold.Render("Top Rated:"), styles.MovieTitle.Render(out.KPIs.TopRated))
	r.Printf("  %s %s\n", styles.Bold.Render("Top Grossing:"), styles.MovieTitle.Render(out.KPIs.TopGrossing))
	r.Printf("  %s %s\n", styles.Bold.Render("Most Common Genre:"), out.KPIs.MostCommonGenre)
	r.Println("")

	r.Println(styles.Muted.Render(fmt.Sprintf("Dataset: %s (%d rows, %d without rating)",
		out.Dataset.Path, out.Dataset.Rows, out.Dataset.MissingRatings)))
	r.Println(styles.Muted.Render(fmt.Sprintf("Filters: certificate=%s years=%d-%d genre=%s",
		out.Filters.Certificate, out.Filters.YearFrom, out.Filters.YearTo, out.Filters.Genre)))

	return nil
}

func renderSummaryMarkdown(r *output.Renderer, out SummaryOutput) error {
	r.Println(output.FormatHeader(1, "ReelDash Summary"))
	r.Println("")

	if out.KPIs.TotalCount == 0 {
		r.Println(emptyResultMessage)
		return nil
	}

	r.Println(output.FormatKeyValue("Movies", fmt.Sprintf("%d", out.KPIs.TotalCount)))
	r.Println(output.FormatKeyValue("Top Rated", out.KPIs.TopRated))
	r.Println(output.FormatKeyValue("Top Grossing", out.KPIs.TopGrossing))
	r.Println(output.FormatKeyValue("Most Common Genre", out.KPIs.MostCommonGenre))
	r.Println("")
	r.Println(output.FormatKeyValue("Dataset", fmt.Sprintf("%s (%d rows)", out.Dataset.Path, out.Dataset.Rows)))
	r.Println(output.FormatKeyValue("Filters", fmt.Sprintf("certificate=%s years=%d-%d genre=%s",
		out.Filters.Certificate, out.Filters.YearFrom, out.Filters.YearTo, out.Filters.Genre)))

	return nil
}
