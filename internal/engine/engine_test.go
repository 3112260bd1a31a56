package engine

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/reeldash/reeldash/internal/dataset"
	"github.com/reeldash/reeldash/internal/testutil"
	"github.com/reeldash/reeldash/pkg/adapter"
	_ "github.com/reeldash/reeldash/pkg/adapters/sqlite"
)

func ratingPtr(v float64) *float64 { return &v }

func testDataset() *dataset.Dataset {
	return dataset.New([]dataset.Movie{
		{Name: "The Shawshank Redemption", Year: 1994, Certificate: "R", Genre: "Drama",
			Directors: "Frank Darabont", Casts: "Tim Robbins, Morgan Freeman",
			Rating: ratingPtr(9.3), RunTime: 142, BoxOffice: 28767189, RawBoxOffice: "$28,767,189"},
		{Name: "The Dark Knight", Year: 2008, Certificate: "PG-13", Genre: "Action, Crime, Drama",
			Directors: "Christopher Nolan", Casts: "Christian Bale, Heath Ledger",
			Rating: ratingPtr(9.0), RunTime: 152, BoxOffice: 534900000, RawBoxOffice: "$534.9M"},
		{Name: "The Kid", Year: 1921, Genre: "Comedy",
			Directors: "Charles Chaplin", Casts: "Charlie Chaplin, Edna Purviance",
			RunTime: 68, BoxOffice: 250000, RawBoxOffice: "$250K"},
	})
}

func TestNewDefaults(t *testing.T) {
	e := New(Config{Dataset: testDataset()})
	defer e.Close()

	assert.Equal(t, "duckdb", e.Type())
	assert.NotNil(t, e.logger)
}

func TestQuerySeedsMovies(t *testing.T) {
	e := New(Config{
		Adapter: adapter.Config{Type: "sqlite"},
		Dataset: testDataset(),
		Logger:  testutil.NewTestLogger(t),
	})
	defer e.Close()

	ctx := context.Background()
	rows, err := e.Query(ctx, "SELECT COUNT(*) FROM movies")
	require.NoError(t, err)
	defer rows.Close()

	require.True(t, rows.Next())
	var count int
	require.NoError(t, rows.Scan(&count))
	assert.Equal(t, 3, count)
}

func TestQueryNullRating(t *testing.T) {
	e := New(Config{
		Adapter: adapter.Config{Type: "sqlite"},
		Dataset: testDataset(),
	})
	defer e.Close()

	ctx := context.Background()
	rows, err := e.Query(ctx, "SELECT name FROM movies WHERE rating IS NULL")
	require.NoError(t, err)
	defer rows.Close()

	require.True(t, rows.Next())
	var name string
	require.NoError(t, rows.Scan(&name))
	assert.Equal(t, "The Kid", name)
	assert.False(t, rows.Next())
}

func TestQueryCleanedBoxOffice(t *testing.T) {
	e := New(Config{
		Adapter: adapter.Config{Type: "sqlite"},
		Dataset: testDataset(),
	})
	defer e.Close()

	ctx := context.Background()
	rows, err := e.Query(ctx,
		"SELECT box_office, box_office_raw FROM movies WHERE name = ?", "The Dark Knight")
	require.NoError(t, err)
	defer rows.Close()

	require.True(t, rows.Next())
	var cleaned float64
	var raw string
	require.NoError(t, rows.Scan(&cleaned, &raw))
	assert.Equal(t, 534900000.0, cleaned)
	assert.Equal(t, "$534.9M", raw)
}

func TestListTables(t *testing.T) {
	e := New(Config{
		Adapter: adapter.Config{Type: "sqlite"},
		Dataset: testDataset(),
	})
	defer e.Close()

	tables, err := e.ListTables(context.Background())
	require.NoError(t, err)
	assert.Contains(t, tables, "movies")
	// No source file behind this dataset, so no raw table.
	assert.NotContains(t, tables, "movies_raw")
}

func TestRawTableFromFile(t *testing.T) {
	ds, err := dataset.Load("testdata/movies.csv")
	require.NoError(t, err)

	e := New(Config{
		Adapter: adapter.Config{Type: "sqlite"},
		Dataset: ds,
		Logger:  testutil.NewTestLogger(t),
	})
	defer e.Close()

	ctx := context.Background()
	tables, err := e.ListTables(ctx)
	require.NoError(t, err)
	assert.Contains(t, tables, "movies")
	assert.Contains(t, tables, "movies_raw")

	rows, err := e.Query(ctx, "SELECT box_office FROM movies_raw WHERE name = ?", "12 Angry Men")
	require.NoError(t, err)
	defer rows.Close()

	require.True(t, rows.Next())
	var raw string
	require.NoError(t, rows.Scan(&raw))
	assert.Equal(t, "Not Available", raw)
}

func TestTableMetadata(t *testing.T) {
	e := New(Config{
		Adapter: adapter.Config{Type: "sqlite"},
		Dataset: testDataset(),
	})
	defer e.Close()

	meta, err := e.TableMetadata(context.Background(), "movies")
	require.NoError(t, err)
	assert.Equal(t, "movies", meta.Name)
	assert.Equal(t, int64(3), meta.RowCount)

	names := make([]string, len(meta.Columns))
	for i, col := range meta.Columns {
		names[i] = col.Name
	}
	assert.Equal(t, []string{
		"name", "year", "certificate", "genre", "directors",
		"casts", "rating", "run_time", "box_office", "box_office_raw",
	}, names)
}

func TestQueryUnknownEngine(t *testing.T) {
	e := New(Config{
		Adapter: adapter.Config{Type: "oracle"},
		Dataset: testDataset(),
	})
	defer e.Close()

	_, err := e.Query(context.Background(), "SELECT 1")
	require.Error(t, err)

	var unknownErr *adapter.UnknownEngineError
	assert.ErrorAs(t, err, &unknownErr)
}

func TestNoDataset(t *testing.T) {
	e := New(Config{Adapter: adapter.Config{Type: "sqlite"}})
	defer e.Close()

	_, err := e.Query(context.Background(), "SELECT 1")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no dataset")
}

func TestCloseWithoutConnect(t *testing.T) {
	e := New(Config{Dataset: testDataset()})
	assert.NoError(t, e.Close())
	assert.NoError(t, e.Close())
}
