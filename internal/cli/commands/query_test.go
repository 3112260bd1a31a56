package commands

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/reeldash/reeldash/internal/cli/testutil"
	"github.com/reeldash/reeldash/internal/dataset"
	"github.com/reeldash/reeldash/internal/engine"
	"github.com/reeldash/reeldash/pkg/adapter"

	// register the in-memory engine used by the tests
	_ "github.com/reeldash/reeldash/pkg/adapters/sqlite"
)

// newTestEngine seeds an in-memory sqlite engine from the sample dataset.
func newTestEngine(t *testing.T) *engine.Engine {
	t.Helper()

	ds, err := dataset.Load(testutil.WriteSampleDataset(t))
	require.NoError(t, err)

	eng := engine.New(engine.Config{
		Adapter: adapter.Config{Type: "sqlite"},
		Dataset: ds,
	})
	t.Cleanup(func() { _ = eng.Close() })
	return eng
}

func TestQueryCommand_Tables(t *testing.T) {
	eng := newTestEngine(t)

	buf := new(bytes.Buffer)
	err := listTablesFromEngine(context.Background(), buf, eng, "table")
	require.NoError(t, err)

	output := buf.String()
	assert.Contains(t, output, "movies")
	assert.Contains(t, output, "movies_raw")
}

func TestQueryCommand_Schema(t *testing.T) {
	eng := newTestEngine(t)

	buf := new(bytes.Buffer)
	err := showSchemaFromEngine(context.Background(), buf, eng, "movies", "table")
	require.NoError(t, err)

	output := buf.String()
	assert.Contains(t, output, "Table: movies")
	assert.Contains(t, output, "name")
	assert.Contains(t, output, "box_office")
	assert.Contains(t, output, "(5 rows)")
}

func TestQueryCommand_SchemaNotFound(t *testing.T) {
	eng := newTestEngine(t)

	buf := new(bytes.Buffer)
	err := showSchemaFromEngine(context.Background(), buf, eng, "nonexistent_table", "table")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}

func TestQueryCommand_DirectSQL(t *testing.T) {
	eng := newTestEngine(t)

	rows, err := eng.Query(context.Background(), "SELECT name, year FROM movies ORDER BY year")
	require.NoError(t, err)
	defer func() { _ = rows.Close() }()

	buf := new(bytes.Buffer)
	err = renderResults(buf, rows, "table")
	require.NoError(t, err)

	output := buf.String()
	assert.Contains(t, output, "The Kid")
	assert.Contains(t, output, "The Dark Knight")
	assert.Contains(t, output, "(5 rows)")
}

func TestQueryCommand_NormalizedBoxOffice(t *testing.T) {
	eng := newTestEngine(t)

	// The cleaned table carries dollars; the raw table keeps the text.
	rows, err := eng.Query(context.Background(),
		"SELECT box_office FROM movies WHERE name = 'The Dark Knight'")
	require.NoError(t, err)
	defer func() { _ = rows.Close() }()

	buf := new(bytes.Buffer)
	require.NoError(t, renderResults(buf, rows, "csv"))
	assert.Contains(t, buf.String(), "5.349e+08")
}

func TestQueryCommand_JSONFormat(t *testing.T) {
	eng := newTestEngine(t)

	rows, err := eng.Query(context.Background(), "SELECT name, year FROM movies ORDER BY year")
	require.NoError(t, err)
	defer func() { _ = rows.Close() }()

	buf := new(bytes.Buffer)
	err = renderResults(buf, rows, "json")
	require.NoError(t, err)

	output := buf.String()
	assert.Contains(t, output, `"name"`)
	assert.Contains(t, output, `"year"`)
	assert.Contains(t, output, `"The Godfather"`)
}

func TestQueryCommand_CSVFormat(t *testing.T) {
	eng := newTestEngine(t)

	rows, err := eng.Query(context.Background(),
		"SELECT name, year FROM movies WHERE year > 1990 ORDER BY year")
	require.NoError(t, err)
	defer func() { _ = rows.Close() }()

	buf := new(bytes.Buffer)
	err = renderResults(buf, rows, "csv")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 3) // header + 2 rows

	assert.Equal(t, "name,year", lines[0])
	assert.Contains(t, buf.String(), "The Shawshank Redemption,1994")
}

func TestQueryCommand_MarkdownFormat(t *testing.T) {
	eng := newTestEngine(t)

	rows, err := eng.Query(context.Background(),
		"SELECT name, year FROM movies WHERE year = 1972")
	require.NoError(t, err)
	defer func() { _ = rows.Close() }()

	buf := new(bytes.Buffer)
	err = renderResults(buf, rows, "md")
	require.NoError(t, err)

	output := buf.String()
	assert.Contains(t, output, "| name | year |")
	assert.Contains(t, output, "| --- | --- |")
	assert.Contains(t, output, "| The Godfather | 1972 |")
}

func TestQueryCommand_EmptyResults(t *testing.T) {
	eng := newTestEngine(t)

	rows, err := eng.Query(context.Background(), "SELECT * FROM movies WHERE 1=0")
	require.NoError(t, err)
	defer func() { _ = rows.Close() }()

	buf := new(bytes.Buffer)
	err = renderResults(buf, rows, "table")
	require.NoError(t, err)

	assert.Contains(t, buf.String(), "(0 rows)")
}

func TestQueryCommand_NullRating(t *testing.T) {
	eng := newTestEngine(t)

	rows, err := eng.Query(context.Background(),
		"SELECT name, rating FROM movies WHERE rating IS NULL")
	require.NoError(t, err)
	defer func() { _ = rows.Close() }()

	buf := new(bytes.Buffer)
	err = renderResults(buf, rows, "table")
	require.NoError(t, err)

	output := buf.String()
	assert.Contains(t, output, "The Kid")
	assert.Contains(t, output, "NULL")
}

func TestQueryCommand_SchemaJSON(t *testing.T) {
	eng := newTestEngine(t)

	buf := new(bytes.Buffer)
	err := showSchemaFromEngine(context.Background(), buf, eng, "movies", "json")
	require.NoError(t, err)

	output := buf.String()
	assert.Contains(t, output, `"name": "movies"`)
	assert.Contains(t, output, `"row_count": 5`)
	assert.Contains(t, output, `"columns"`)
}

func TestNewQueryCommand(t *testing.T) {
	cmd := NewQueryCommand()
	assert.Equal(t, "query", cmd.Use[:5])
	assert.NotNil(t, cmd.RunE)

	// Check subcommands
	subCmds := cmd.Commands()
	var names []string
	for _, c := range subCmds {
		names = append(names, c.Name())
	}
	assert.Contains(t, names, "tables")
	assert.Contains(t, names, "schema")
}

func TestFormatValue(t *testing.T) {
	tests := []struct {
		input    any
		expected string
	}{
		{nil, "NULL"},
		{"hello", "hello"},
		{42, "42"},
		{3.14, "3.14"},
		{true, "true"},
	}

	for _, tt := range tests {
		result := formatValue(tt.input)
		assert.Equal(t, tt.expected, result)
	}
}

func TestEscapeCSV(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"simple", "simple"},
		{"with,comma", `"with,comma"`},
		{`with"quote`, `"with""quote"`},
		{"with\nnewline", `"with
newline"`},
		{`complex,"values"`, `"complex,""values"""`},
	}

	for _, tt := range tests {
		result := escapeCSV(tt.input)
		assert.Equal(t, tt.expected, result)
	}
}
