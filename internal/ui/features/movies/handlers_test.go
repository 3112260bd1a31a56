package movies

import (
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/gorilla/sessions"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/reeldash/reeldash/internal/dataset"
)

func ratingPtr(v float64) *float64 { return &v }

func testDataset() *dataset.Dataset {
	return dataset.New([]dataset.Movie{
		{Name: "The Godfather", Year: 1972, Certificate: "R", Genre: "Crime, Drama",
			Directors: "Francis Ford Coppola", Casts: "Marlon Brando, Al Pacino",
			Rating: ratingPtr(9.2), RunTime: 175, BoxOffice: 250341816},
		{Name: "Pulp Fiction", Year: 1994, Certificate: "R", Genre: "Crime, Drama",
			Directors: "Quentin Tarantino", Casts: "John Travolta, Uma Thurman",
			Rating: ratingPtr(8.9), RunTime: 154, BoxOffice: 107928762},
		{Name: "WALL·E", Year: 2008, Certificate: "G", Genre: "Animation, Adventure",
			Directors: "Andrew Stanton", Casts: "Ben Burtt, Elissa Knight",
			Rating: ratingPtr(8.4), RunTime: 98, BoxOffice: 223808164},
	})
}

func setupTestHandlers() *Handlers {
	return NewHandlers(testDataset(), sessions.NewCookieStore([]byte("test-secret")), 25)
}

func TestPage_RendersDefaultColumns(t *testing.T) {
	h := setupTestHandlers()

	req := httptest.NewRequest("GET", "/movies", nil)
	rec := httptest.NewRecorder()
	h.Page(rec, req)

	require.Equal(t, 200, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, "Movies · ReelDash")
	assert.Contains(t, body, `id="movies-view"`)
	assert.Contains(t, body, "The Godfather")
	assert.Contains(t, body, "Showing 3 of 3 matching movies")
	// Directors column is not in the default view
	assert.NotContains(t, body, "Francis Ford Coppola")
}

func TestView_FiltersAndSelectsColumns(t *testing.T) {
	h := setupTestHandlers()

	signals := url.QueryEscape(`{"certificate":"R","yearfrom":1920,"yearto":2020,"genre":"All","columns":["name","directors"],"limit":25}`)
	req := httptest.NewRequest("GET", "/movies/view?datastar="+signals, nil)
	rec := httptest.NewRecorder()
	h.View(rec, req)

	require.Equal(t, 200, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, "datastar-patch-elements")
	assert.Contains(t, body, "Francis Ford Coppola")
	assert.Contains(t, body, "Quentin Tarantino")
	assert.NotContains(t, body, "WALL·E")
}

func TestView_LimitCapsRows(t *testing.T) {
	h := setupTestHandlers()

	signals := url.QueryEscape(`{"certificate":"All","yearfrom":1920,"yearto":2020,"genre":"All","columns":["name"],"limit":1}`)
	req := httptest.NewRequest("GET", "/movies/view?datastar="+signals, nil)
	rec := httptest.NewRecorder()
	h.View(rec, req)

	body := rec.Body.String()
	assert.Contains(t, body, "Showing 1 of 3 matching movies")
	assert.Contains(t, body, "The Godfather")
	assert.NotContains(t, body, "Pulp Fiction")
}

func TestView_EmptySelection(t *testing.T) {
	h := setupTestHandlers()

	signals := url.QueryEscape(`{"certificate":"PG-13","yearfrom":1920,"yearto":2020,"genre":"All","columns":["name"],"limit":25}`)
	req := httptest.NewRequest("GET", "/movies/view?datastar="+signals, nil)
	rec := httptest.NewRecorder()
	h.View(rec, req)

	assert.Contains(t, rec.Body.String(), "No movies match the selected filters.")
}

func TestValidColumns(t *testing.T) {
	tests := []struct {
		name     string
		selected []string
		want     []string
	}{
		{"keeps canonical order", []string{"rating", "name"}, []string{"name", "rating"}},
		{"drops unknown names", []string{"name", "tagline"}, []string{"name"}},
		{"empty falls back to defaults", nil, dataset.DefaultColumns()},
		{"all unknown falls back to defaults", []string{"tagline"}, dataset.DefaultColumns()},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, validColumns(tt.selected))
		})
	}
}
