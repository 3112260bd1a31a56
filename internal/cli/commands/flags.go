package commands

import (
	"fmt"

	"github.com/spf13/cobra"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/reeldash/reeldash/internal/dataset"
	"github.com/reeldash/reeldash/internal/filter"
)

// emptyResultMessage is printed when a filter selection matches nothing.
const emptyResultMessage = "No movies match the selected filters."

// AddFilterFlags registers the filter flags shared by the reporting commands.
func AddFilterFlags(cmd *cobra.Command) {
	cmd.Flags().String("certificate", filter.Unrestricted, "Only include movies with this certificate (e.g. R, PG-13)")
	cmd.Flags().Int("year-from", 0, "Only include movies released in or after this year")
	cmd.Flags().Int("year-to", 0, "Only include movies released in or before this year")
	cmd.Flags().String("genre", filter.Unrestricted, "Only include movies whose genre contains this text (e.g. Drama, Sci-Fi)")
}

// CriteriaFromFlags builds filter criteria from the shared flags.
// Unset flags keep the dataset-wide defaults.
func CriteriaFromFlags(cmd *cobra.Command, ds *dataset.Dataset) filter.Criteria {
	c := filter.Default(ds)
	flags := cmd.Flags()

	if flags.Changed("certificate") {
		c.Certificate, _ = flags.GetString("certificate")
	}
	if flags.Changed("year-from") {
		c.YearFrom, _ = flags.GetInt("year-from")
	}
	if flags.Changed("year-to") {
		c.YearTo, _ = flags.GetInt("year-to")
	}
	if flags.Changed("genre") {
		c.Genre, _ = flags.GetString("genre")
	}
	return c
}

var moneyPrinter = message.NewPrinter(language.English)

// formatMoney renders a box office value as grouped dollars, e.g. "$534,900,000".
func formatMoney(v float64) string {
	return moneyPrinter.Sprintf("$%d", int64(v+0.5))
}

// formatRating renders a rating with one decimal, or the unrated marker.
func formatRating(m dataset.Movie) string {
	if !m.HasRating() {
		return "-"
	}
	return fmt.Sprintf("%.1f", m.RatingValue())
}

// formatRunTime renders a runtime in minutes, or "-" when unknown.
func formatRunTime(minutes int) string {
	if minutes <= 0 {
		return "-"
	}
	return fmt.Sprintf("%d min", minutes)
}
