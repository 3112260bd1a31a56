package dataset

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadFixture(t *testing.T) {
	ds, err := Load(filepath.Join("testdata", "movies.csv"))
	require.NoError(t, err)

	require.Equal(t, 6, ds.Len())
	movies := ds.Movies()

	shawshank := movies[0]
	assert.Equal(t, "The Shawshank Redemption", shawshank.Name)
	assert.Equal(t, 1994, shawshank.Year)
	assert.Equal(t, "R", shawshank.Certificate)
	require.True(t, shawshank.HasRating())
	assert.Equal(t, 9.3, *shawshank.Rating)
	assert.Equal(t, 142, shawshank.RunTime)
	assert.Equal(t, float64(28341469), shawshank.BoxOffice)
	assert.Equal(t, "$28,341,469", shawshank.RawBoxOffice)

	darkKnight := movies[2]
	assert.Equal(t, 534900000.0, darkKnight.BoxOffice)

	angryMen := movies[3]
	assert.Equal(t, 0.0, angryMen.BoxOffice, "unparseable box office falls back to zero")
	assert.Equal(t, "Not Available", angryMen.RawBoxOffice)

	kid := movies[5]
	assert.False(t, kid.HasRating(), "empty rating stays absent")
	assert.Equal(t, "", kid.Certificate)
	assert.Equal(t, 250000.0, kid.BoxOffice)
	assert.Equal(t, 68, kid.RunTime)
}

func TestLoadFixtureStats(t *testing.T) {
	ds, err := Load(filepath.Join("testdata", "movies.csv"))
	require.NoError(t, err)

	stats := ds.Stats()
	assert.Equal(t, 6, stats.Rows)
	assert.Equal(t, 1, stats.BoxOfficeFallbacks)
	assert.Equal(t, 1, stats.MissingRatings)
	assert.Equal(t, 1, stats.MissingCertificates)
	assert.Equal(t, 0, stats.RuntimeFallbacks)
	assert.Equal(t, 0, stats.YearFallbacks)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join("testdata", "does-not-exist.csv"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "open dataset")
}

func TestReadMissingColumns(t *testing.T) {
	csv := "name,year\nThe Godfather,1972\n"
	_, err := Read(strings.NewReader(csv))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "missing required columns")
	assert.Contains(t, err.Error(), "box_office")
}

func TestReadRaggedRow(t *testing.T) {
	csv := strings.Join([]string{
		"name,year,certificate,genre,directors,casts,rating,run_time,box_office",
		"Heat,1995,R,\"Action,Crime,Drama\",Michael Mann,\"Al Pacino,Robert De Niro\",8.3,170,\"$67,436,818\"",
		"Broken,1999",
	}, "\n")
	_, err := Read(strings.NewReader(csv))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse row")
}

func TestReadMalformedFieldsAreSilent(t *testing.T) {
	csv := strings.Join([]string{
		"name,year,certificate,genre,directors,casts,rating,run_time,box_office",
		"Oddball,MCMXCIX,PG,Drama,Someone,\"A, B\",high,soon,$nope",
	}, "\n")
	ds, err := Read(strings.NewReader(csv))
	require.NoError(t, err, "field-level problems must not fail the load")

	require.Equal(t, 1, ds.Len())
	m := ds.Movies()[0]
	assert.Equal(t, 0, m.Year)
	assert.False(t, m.HasRating())
	assert.Equal(t, 0, m.RunTime)
	assert.Equal(t, 0.0, m.BoxOffice)

	stats := ds.Stats()
	assert.Equal(t, 1, stats.YearFallbacks)
	assert.Equal(t, 1, stats.MissingRatings)
	assert.Equal(t, 1, stats.RuntimeFallbacks)
	assert.Equal(t, 1, stats.BoxOfficeFallbacks)
}

func TestDatasetAccessors(t *testing.T) {
	ds, err := Load(filepath.Join("testdata", "movies.csv"))
	require.NoError(t, err)

	assert.Equal(t, 1921, ds.MinYear())
	assert.Equal(t, 2010, ds.MaxYear())
	assert.Equal(t, []string{"Approved", "PG-13", "R"}, ds.Certificates())
	assert.Contains(t, ds.Path(), "movies.csv")
}

func TestCastList(t *testing.T) {
	m := Movie{Casts: "Tim Robbins, Morgan Freeman ,Bob Gunton,,"}
	assert.Equal(t, []string{"Tim Robbins", "Morgan Freeman", "Bob Gunton"}, m.CastList())

	empty := Movie{}
	assert.Nil(t, empty.CastList())
}

func TestMovieValue(t *testing.T) {
	rating := 9.0
	m := Movie{
		Name:      "The Dark Knight",
		Year:      2008,
		Genre:     "Action,Crime,Drama",
		Rating:    &rating,
		RunTime:   152,
		BoxOffice: 534900000,
	}

	assert.Equal(t, "The Dark Knight", m.Value("name"))
	assert.Equal(t, "2008", m.Value("year"))
	assert.Equal(t, "9.0", m.Value("rating"))
	assert.Equal(t, "152", m.Value("run_time"))
	assert.Equal(t, "534900000", m.Value("box_office"))
	assert.Equal(t, "", m.Value("nope"))

	noRating := Movie{}
	assert.Equal(t, "", noRating.Value("rating"))
}
