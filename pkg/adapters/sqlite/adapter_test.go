package sqlite

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/reeldash/reeldash/pkg/adapter"
)

func TestAdapter_Connect(t *testing.T) {
	ctx := context.Background()
	adp := New(nil)

	require.NoError(t, adp.Connect(ctx, adapter.Config{}))
	defer func() { _ = adp.Close() }()

	assert.True(t, adp.IsConnected())
	require.NoError(t, adp.Exec(ctx, "SELECT 1"))
}

func TestAdapter_Pragmas(t *testing.T) {
	ctx := context.Background()
	adp := New(nil)

	cfg := adapter.Config{
		Params: map[string]any{
			"pragmas": map[string]any{"cache_size": "-2000"},
		},
	}
	require.NoError(t, adp.Connect(ctx, cfg))
	defer func() { _ = adp.Close() }()

	require.NoError(t, adp.Exec(ctx, "SELECT 1"))
}

func TestAdapter_NotConnected(t *testing.T) {
	ctx := context.Background()
	adp := New(nil)

	assert.Error(t, adp.Exec(ctx, "SELECT 1"))
	_, err := adp.Query(ctx, "SELECT 1")
	assert.Error(t, err)
	_, err = adp.ListTables(ctx)
	assert.Error(t, err)
	assert.Error(t, adp.LoadCSV(ctx, "movies", "nope.csv"))
}

func TestAdapter_LoadCSV(t *testing.T) {
	ctx := context.Background()
	adp := New(nil)
	require.NoError(t, adp.Connect(ctx, adapter.Config{}))
	defer func() { _ = adp.Close() }()

	csvPath := filepath.Join("testdata", "movies.csv")
	require.NoError(t, adp.LoadCSV(ctx, "movies_raw", csvPath))

	tables, err := adp.ListTables(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"movies_raw"}, tables)

	meta, err := adp.GetTableMetadata(ctx, "movies_raw")
	require.NoError(t, err)
	assert.Equal(t, int64(3), meta.RowCount)
	require.NotEmpty(t, meta.Columns)
	assert.Equal(t, "name", meta.Columns[0].Name)
	assert.Equal(t, "TEXT", meta.Columns[0].Type)

	// Raw load keeps box office as source text.
	rows, err := adp.Query(ctx, `SELECT box_office FROM movies_raw WHERE name = 'The Dark Knight'`)
	require.NoError(t, err)
	defer func() { _ = rows.Close() }()

	require.True(t, rows.Next())
	var boxOffice string
	require.NoError(t, rows.Scan(&boxOffice))
	assert.Equal(t, "$534.9M", boxOffice)
	require.NoError(t, rows.Err())
}

func TestAdapter_LoadCSVMissingFile(t *testing.T) {
	ctx := context.Background()
	adp := New(nil)
	require.NoError(t, adp.Connect(ctx, adapter.Config{}))
	defer func() { _ = adp.Close() }()

	err := adp.LoadCSV(ctx, "movies_raw", filepath.Join("testdata", "missing.csv"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to open CSV")
}

func TestAdapter_MetadataUnknownTable(t *testing.T) {
	ctx := context.Background()
	adp := New(nil)
	require.NoError(t, adp.Connect(ctx, adapter.Config{}))
	defer func() { _ = adp.Close() }()

	_, err := adp.GetTableMetadata(ctx, "missing")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}
