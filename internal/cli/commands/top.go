package commands

import (
	"fmt"
	"io"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/reeldash/reeldash/internal/cli/output"
	"github.com/reeldash/reeldash/internal/dataset"
	"github.com/reeldash/reeldash/internal/filter"
	"github.com/reeldash/reeldash/internal/stats"
)

// Leaderboard metrics accepted by the top command.
const (
	metricRating  = "rating"
	metricGross   = "gross"
	metricRuntime = "runtime"
)

// TopOptions holds options for the top command.
type TopOptions struct {
	Limit int
}

// NewTopCommand creates the top command.
func NewTopCommand() *cobra.Command {
	opts := &TopOptions{}

	cmd := &cobra.Command{
		Use:   "top [rating|gross|runtime]",
		Short: "Show a leaderboard for one metric",
		Long: `Show the top movies of the selection ranked by one metric.

Metrics:
  rating   IMDB rating, descending (unrated movies are excluded)
  gross    box office earnings, descending
  runtime  runtime in minutes, descending

Ties keep the dataset order, so a stable ranking comes out of every run.`,
		Example: `  # Ten highest rated movies
  reeldash top rating

  # Top grossing Sci-Fi
  reeldash top gross --genre Sci-Fi

  # Longest movies as JSON
  reeldash top runtime -o json`,
		ValidArgs: []string{metricRating, metricGross, metricRuntime},
		Args:      cobra.MatchAll(cobra.MaximumNArgs(1), cobra.OnlyValidArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			metric := metricRating
			if len(args) > 0 {
				metric = args[0]
			}
			return runTop(cmd, metric, opts)
		},
	}

	cmd.Flags().IntVarP(&opts.Limit, "limit", "n", stats.LeaderboardSize, "Number of movies to show")
	AddFilterFlags(cmd)

	return cmd
}

// TopEntry is one leaderboard row in JSON output.
type TopEntry struct {
	Rank  int     `json:"rank"`
	Name  string  `json:"name"`
	Year  int     `json:"year"`
	Value float64 `json:"value"`
}

// TopOutput is the JSON output for the top command.
type TopOutput struct {
	Metric  string     `json:"metric"`
	Entries []TopEntry `json:"entries"`
}

func runTop(cmd *cobra.Command, metric string, opts *TopOptions) error {
	cmdCtx, err := NewCommandContextWithoutEngine(cmd)
	if err != nil {
		return err
	}

	ds := cmdCtx.Dataset
	r := cmdCtx.Renderer

	criteria := CriteriaFromFlags(cmd, ds)
	movies := filter.Apply(ds, criteria)

	var ranked []dataset.Movie
	switch metric {
	case metricGross:
		ranked = stats.TopByBoxOffice(movies, opts.Limit)
	case metricRuntime:
		ranked = stats.TopByRunTime(movies, opts.Limit)
	default:
		ranked = stats.TopByRating(movies, opts.Limit)
	}

	switch r.EffectiveMode() {
	case output.ModeJSON:
		return r.JSON(buildTopOutput(metric, ranked))
	case output.ModeMarkdown:
		return renderTopMarkdown(r, metric, ranked)
	default:
		return renderTopText(r, metric, ranked)
	}
}

func buildTopOutput(metric string, ranked []dataset.Movie) TopOutput {
	out := TopOutput{Metric: metric, Entries: make([]TopEntry, 0, len(ranked))}
	for i, m := range ranked {
		out.Entries = append(out.Entries, TopEntry{
			Rank:  i + 1,
			Name:  m.Name,
			Year:  m.Year,
			Value: metricValue(metric, m),
		})
	}
	return out
}

func metricValue(metric string, m dataset.Movie) float64 {
	switch metric {
	case metricGross:
		return m.BoxOffice
	case metricRuntime:
		return float64(m.RunTime)
	default:
		return m.RatingValue()
	}
}

func metricTitle(metric string) string {
	switch metric {
	case metricGross:
		return "Box Office"
	case metricRuntime:
		return "Runtime"
	default:
		return "Rating"
	}
}

func formatMetric(metric string, m dataset.Movie) string {
	switch metric {
	case metricGross:
		return formatMoney(m.BoxOffice)
	case metricRuntime:
		return formatRunTime(m.RunTime)
	default:
		return formatRating(m)
	}
}

func renderTopText(r *output.Renderer, metric string, ranked []dataset.Movie) error {
	styles := r.Styles()

	r.Println("")
	r.Println(styles.Header1.Render(fmt.Sprintf("Top Movies by %s", metricTitle(metric))))
	r.Println("")

	if len(ranked) == 0 {
		r.Println(emptyResultMessage)
		return nil
	}

	writeTopTable(r.Out(), metric, ranked)
	return nil
}

func renderTopMarkdown(r *output.Renderer, metric string, ranked []dataset.Movie) error {
	r.Println(output.FormatHeader(1, fmt.Sprintf("Top Movies by %s", metricTitle(metric))))
	r.Println("")

	if len(ranked) == 0 {
		r.Println(emptyResultMessage)
		return nil
	}

	r.Printf("| # | Name | Year | %s |\n", metricTitle(metric))
	r.Println("| --- | --- | --- | --- |")
	for i, m := range ranked {
		r.Printf("| %d | %s | %d | %s |\n", i+1, m.Name, m.Year, formatMetric(metric, m))
	}
	return nil
}

// writeTopTable renders the leaderboard with go-pretty.
func writeTopTable(w io.Writer, metric string, ranked []dataset.Movie) {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"#", "Name", "Year", metricTitle(metric)})

	for i, m := range ranked {
		t.AppendRow(table.Row{i + 1, m.Name, m.Year, formatMetric(metric, m)})
	}

	t.Render()
}
