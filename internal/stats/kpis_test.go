package stats

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/reeldash/reeldash/internal/dataset"
	"github.com/reeldash/reeldash/internal/filter"
)

func rating(v float64) *float64 { return &v }

func TestComputeBasics(t *testing.T) {
	movies := []dataset.Movie{
		{Name: "The Shawshank Redemption", Genre: "Drama", Rating: rating(9.3), BoxOffice: 28_341_469},
		{Name: "The Dark Knight", Genre: "Action,Crime,Drama", Rating: rating(9.0), BoxOffice: 534_900_000},
		{Name: "The Godfather", Genre: "Crime,Drama", Rating: rating(9.2), BoxOffice: 250_341_816},
	}

	k := Compute(movies)
	assert.Equal(t, 3, k.TotalCount)
	assert.Equal(t, "The Shawshank Redemption", k.TopRated)
	assert.Equal(t, "The Dark Knight", k.TopGrossing)
}

func TestComputeTieBreaksKeepFirstEncounter(t *testing.T) {
	movies := []dataset.Movie{
		{Name: "First", Genre: "Drama", Rating: rating(9.0), BoxOffice: 100},
		{Name: "Second", Genre: "Drama", Rating: rating(9.0), BoxOffice: 100},
	}

	k := Compute(movies)
	assert.Equal(t, "First", k.TopRated)
	assert.Equal(t, "First", k.TopGrossing)
}

func TestComputeMostCommonGenre(t *testing.T) {
	movies := []dataset.Movie{
		{Name: "A", Genre: "Drama"},
		{Name: "B", Genre: "Drama"},
		{Name: "C", Genre: "Action"},
	}
	assert.Equal(t, "Drama", Compute(movies).MostCommonGenre)

	// Ties resolve to the genre encountered first.
	tied := []dataset.Movie{
		{Name: "A", Genre: "Action"},
		{Name: "B", Genre: "Drama"},
		{Name: "C", Genre: "Drama"},
		{Name: "D", Genre: "Action"},
	}
	assert.Equal(t, "Action", Compute(tied).MostCommonGenre)
}

func TestComputeEmptySet(t *testing.T) {
	k := Compute(nil)
	assert.Equal(t, 0, k.TotalCount)
	assert.Equal(t, NoData, k.TopRated)
	assert.Equal(t, NoData, k.TopGrossing)
	assert.Equal(t, NoData, k.MostCommonGenre)
}

func TestComputeNoUsableRating(t *testing.T) {
	movies := []dataset.Movie{
		{Name: "Silent", Genre: "Drama", BoxOffice: 500},
		{Name: "Quiet", Genre: "Drama", BoxOffice: 900},
	}

	k := Compute(movies)
	assert.Equal(t, NoData, k.TopRated, "a record without a rating never wins the top-rated slot")
	assert.Equal(t, "Quiet", k.TopGrossing)
}

func TestFilteredScenario(t *testing.T) {
	ds := dataset.New([]dataset.Movie{
		{Name: "Alpha", Year: 2000, Certificate: "PG", Genre: "Drama", Rating: rating(8.0)},
		{Name: "Bravo", Year: 2006, Certificate: "PG", Genre: "Drama", Rating: rating(8.4)},
		{Name: "Charlie", Year: 2010, Certificate: "R", Genre: "Action", Rating: rating(8.9)},
		{Name: "Delta", Year: 2015, Certificate: "PG", Genre: "Comedy", Rating: rating(7.9)},
		{Name: "Echo", Year: 2020, Certificate: "R", Genre: "Drama", Rating: rating(8.6)},
	})

	got := filter.Apply(ds, filter.Criteria{Certificate: "PG", YearFrom: 2005, YearTo: 2015})
	for _, m := range got {
		assert.Equal(t, "PG", m.Certificate)
		assert.GreaterOrEqual(t, m.Year, 2005)
		assert.LessOrEqual(t, m.Year, 2015)
	}

	k := Compute(got)
	assert.Equal(t, len(got), k.TotalCount)
	assert.Equal(t, 2, k.TotalCount)
	assert.Equal(t, "Bravo", k.TopRated)
}
