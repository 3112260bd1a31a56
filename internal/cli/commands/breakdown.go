package commands

import (
	"fmt"
	"io"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/reeldash/reeldash/internal/cli/output"
	"github.com/reeldash/reeldash/internal/filter"
	"github.com/reeldash/reeldash/internal/stats"
)

// Dimensions accepted by the breakdown command.
const (
	dimGenre       = "genre"
	dimCertificate = "certificate"
	dimDirector    = "director"
	dimYear        = "year"
	dimActor       = "actor"
)

// BreakdownOptions holds options for the breakdown command.
type BreakdownOptions struct {
	Limit int
}

// NewBreakdownCommand creates the breakdown command.
func NewBreakdownCommand() *cobra.Command {
	opts := &BreakdownOptions{}

	cmd := &cobra.Command{
		Use:   "breakdown [genre|certificate|director|year|actor]",
		Short: "Show a frequency table for one dimension",
		Long: `Count the movies of the selection along one dimension.

Dimensions:
  genre        raw genre strings, most frequent first
  certificate  certificate ratings, most frequent first
  director     directors by movie count
  year         movies per release year, ascending by year
  actor        actors by appearance count (cast lists are split)

Counts with the same value keep the order in which the label first
appears in the dataset.`,
		Example: `  # Genre distribution
  reeldash breakdown genre

  # Busiest actors among PG-13 movies
  reeldash breakdown actor --certificate PG-13

  # Movies per year, machine-readable
  reeldash breakdown year -o json`,
		ValidArgs: []string{dimGenre, dimCertificate, dimDirector, dimYear, dimActor},
		Args:      cobra.MatchAll(cobra.MaximumNArgs(1), cobra.OnlyValidArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			dim := dimGenre
			if len(args) > 0 {
				dim = args[0]
			}
			return runBreakdown(cmd, dim, opts)
		},
	}

	cmd.Flags().IntVarP(&opts.Limit, "limit", "n", 10, "Number of entries to show (0 for all)")
	AddFilterFlags(cmd)

	return cmd
}

// BreakdownOutput is the JSON output for the breakdown command.
type BreakdownOutput struct {
	Dimension string            `json:"dimension"`
	Entries   []stats.Entry     `json:"entries,omitempty"`
	Years     []stats.YearCount `json:"years,omitempty"`
}

func runBreakdown(cmd *cobra.Command, dim string, opts *BreakdownOptions) error {
	cmdCtx, err := NewCommandContextWithoutEngine(cmd)
	if err != nil {
		return err
	}

	ds := cmdCtx.Dataset
	r := cmdCtx.Renderer

	criteria := CriteriaFromFlags(cmd, ds)
	movies := filter.Apply(ds, criteria)

	out := BreakdownOutput{Dimension: dim}
	switch dim {
	case dimCertificate:
		out.Entries = stats.Certificates(movies)
	case dimDirector:
		out.Entries = stats.Directors(movies, opts.Limit)
	case dimYear:
		out.Years = stats.YearlyCounts(movies)
	case dimActor:
		out.Entries = stats.Actors(movies, opts.Limit)
	default:
		out.Entries = stats.Genres(movies, opts.Limit)
	}

	switch r.EffectiveMode() {
	case output.ModeJSON:
		return r.JSON(out)
	case output.ModeMarkdown:
		return renderBreakdownMarkdown(r, out)
	default:
		return renderBreakdownText(r, out)
	}
}

func dimensionTitle(dim string) string {
	switch dim {
	case dimCertificate:
		return "Certificate"
	case dimDirector:
		return "Director"
	case dimYear:
		return "Year"
	case dimActor:
		return "Actor"
	default:
		return "Genre"
	}
}

func renderBreakdownText(r *output.Renderer, out BreakdownOutput) error {
	styles := r.Styles()

	r.Println("")
	r.Println(styles.Header1.Render(fmt.Sprintf("Movies by %s", dimensionTitle(out.Dimension))))
	r.Println("")

	if len(out.Entries) == 0 && len(out.Years) == 0 {
		r.Println(emptyResultMessage)
		return nil
	}

	writeBreakdownTable(r.Out(), out)
	return nil
}

func renderBreakdownMarkdown(r *output.Renderer, out BreakdownOutput) error {
	r.Println(output.FormatHeader(1, fmt.Sprintf("Movies by %s", dimensionTitle(out.Dimension))))
	r.Println("")

	if len(out.Entries) == 0 && len(out.Years) == 0 {
		r.Println(emptyResultMessage)
		return nil
	}

	r.Printf("| %s | Movies |\n", dimensionTitle(out.Dimension))
	r.Println("| --- | --- |")
	if out.Dimension == dimYear {
		for _, y := range out.Years {
			r.Printf("| %d | %d |\n", y.Year, y.Count)
		}
		return nil
	}
	for _, e := range out.Entries {
		r.Printf("| %s | %d |\n", e.Label, e.Count)
	}
	return nil
}

func writeBreakdownTable(w io.Writer, out BreakdownOutput) {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{dimensionTitle(out.Dimension), "Movies"})

	if out.Dimension == dimYear {
		for _, y := range out.Years {
			t.AppendRow(table.Row{y.Year, y.Count})
		}
	} else {
		for _, e := range out.Entries {
			t.AppendRow(table.Row{e.Label, e.Count})
		}
	}

	t.Render()
}
