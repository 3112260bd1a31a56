package commands

import (
	"fmt"
	"io"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/reeldash/reeldash/internal/cli/output"
	"github.com/reeldash/reeldash/internal/dataset"
	"github.com/reeldash/reeldash/internal/filter"
)

// MoviesOptions holds options for the movies command.
type MoviesOptions struct {
	Columns []string
	Limit   int
}

// NewMoviesCommand creates the movies command.
func NewMoviesCommand() *cobra.Command {
	opts := &MoviesOptions{}

	cmd := &cobra.Command{
		Use:   "movies",
		Short: "List the movies matching the selected filters",
		Long: `List the movies of the selection in dataset order.

The column set is configurable; by default the listing shows name,
year, genre, and rating.`,
		Example: `  # All movies
  reeldash movies

  # Dramas from the seventies with box office
  reeldash movies --genre Drama --year-from 1970 --year-to 1979 --columns name,year,box_office

  # First five, machine-readable
  reeldash movies --limit 5 -o json`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runMovies(cmd, opts)
		},
	}

	cmd.Flags().StringSliceVar(&opts.Columns, "columns", dataset.DefaultColumns(), "Columns to show")
	cmd.Flags().IntVarP(&opts.Limit, "limit", "n", 0, "Number of movies to show (0 for all)")
	AddFilterFlags(cmd)

	_ = cmd.RegisterFlagCompletionFunc("columns", func(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
		return dataset.Columns(), cobra.ShellCompDirectiveNoFileComp
	})

	return cmd
}

func runMovies(cmd *cobra.Command, opts *MoviesOptions) error {
	cmdCtx, err := NewCommandContextWithoutEngine(cmd)
	if err != nil {
		return err
	}

	ds := cmdCtx.Dataset
	r := cmdCtx.Renderer

	columns, err := validateColumns(opts.Columns)
	if err != nil {
		return err
	}

	criteria := CriteriaFromFlags(cmd, ds)
	movies := filter.Apply(ds, criteria)
	if opts.Limit > 0 && len(movies) > opts.Limit {
		movies = movies[:opts.Limit]
	}

	switch r.EffectiveMode() {
	case output.ModeJSON:
		return r.JSON(buildMovieRows(columns, movies))
	case output.ModeMarkdown:
		return renderMoviesMarkdown(r, columns, movies)
	default:
		return renderMoviesText(r, columns, movies)
	}
}

// validateColumns checks the requested columns against the known set.
func validateColumns(requested []string) ([]string, error) {
	known := make(map[string]bool, len(dataset.Columns()))
	for _, c := range dataset.Columns() {
		known[c] = true
	}

	columns := make([]string, 0, len(requested))
	for _, c := range requested {
		c = strings.TrimSpace(strings.ToLower(c))
		if c == "" {
			continue
		}
		if !known[c] {
			return nil, fmt.Errorf("unknown column %q (available: %s)", c, strings.Join(dataset.Columns(), ", "))
		}
		columns = append(columns, c)
	}
	if len(columns) == 0 {
		return dataset.DefaultColumns(), nil
	}
	return columns, nil
}

func buildMovieRows(columns []string, movies []dataset.Movie) []map[string]string {
	rows := make([]map[string]string, 0, len(movies))
	for _, m := range movies {
		row := make(map[string]string, len(columns))
		for _, c := range columns {
			row[c] = m.Value(c)
		}
		rows = append(rows, row)
	}
	return rows
}

func renderMoviesText(r *output.Renderer, columns []string, movies []dataset.Movie) error {
	if len(movies) == 0 {
		r.Println(emptyResultMessage)
		return nil
	}

	writeMoviesTable(r.Out(), columns, movies)
	r.Printf("(%d movies)\n", len(movies))
	return nil
}

func renderMoviesMarkdown(r *output.Renderer, columns []string, movies []dataset.Movie) error {
	if len(movies) == 0 {
		r.Println(emptyResultMessage)
		return nil
	}

	r.Printf("| %s |\n", strings.Join(columns, " | "))
	seps := make([]string, len(columns))
	for i := range seps {
		seps[i] = "---"
	}
	r.Printf("| %s |\n", strings.Join(seps, " | "))

	for _, m := range movies {
		values := make([]string, len(columns))
		for i, c := range columns {
			values[i] = m.Value(c)
		}
		r.Printf("| %s |\n", strings.Join(values, " | "))
	}
	return nil
}

func writeMoviesTable(w io.Writer, columns []string, movies []dataset.Movie) {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleLight)

	headerRow := make(table.Row, len(columns))
	for i, c := range columns {
		headerRow[i] = c
	}
	t.AppendHeader(headerRow)

	for _, m := range movies {
		row := make(table.Row, len(columns))
		for i, c := range columns {
			row[i] = m.Value(c)
		}
		t.AppendRow(row)
	}

	t.Render()
}
