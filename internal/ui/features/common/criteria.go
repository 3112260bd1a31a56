// Package common holds helpers shared by the dashboard features:
// session-backed filter criteria and display formatting.
package common

import (
	"net/http"

	"github.com/gorilla/sessions"

	"github.com/reeldash/reeldash/internal/dataset"
	"github.com/reeldash/reeldash/internal/filter"
)

// SessionName is the cookie session holding the filter selection.
const SessionName = "reeldash"

// GenreOptions are the genre focus choices the dashboard offers.
var GenreOptions = []string{filter.Unrestricted, "Sci-Fi"}

// FilterOptions describes the selectable filter values for the
// current dataset, used to build the filter controls.
type FilterOptions struct {
	Certificates []string
	Genres       []string
	MinYear      int
	MaxYear      int
}

// Options builds the filter option lists from the dataset.
func Options(ds *dataset.Dataset) FilterOptions {
	return FilterOptions{
		Certificates: append([]string{filter.Unrestricted}, ds.Certificates()...),
		Genres:       GenreOptions,
		MinYear:      ds.MinYear(),
		MaxYear:      ds.MaxYear(),
	}
}

// LoadCriteria reads the filter selection from the browser session,
// falling back to the dataset-wide defaults.
func LoadCriteria(r *http.Request, store sessions.Store, ds *dataset.Dataset) filter.Criteria {
	c := filter.Default(ds)

	session, err := store.Get(r, SessionName)
	if err != nil {
		return c
	}
	if v, ok := session.Values["certificate"].(string); ok && v != "" {
		c.Certificate = v
	}
	if v, ok := session.Values["year_from"].(int); ok && v != 0 {
		c.YearFrom = v
	}
	if v, ok := session.Values["year_to"].(int); ok && v != 0 {
		c.YearTo = v
	}
	if v, ok := session.Values["genre"].(string); ok && v != "" {
		c.Genre = v
	}
	return c
}

// SaveCriteria writes the filter selection back to the browser
// session so a reload keeps the selection. Save errors are ignored;
// the criteria still apply to the current response.
func SaveCriteria(w http.ResponseWriter, r *http.Request, store sessions.Store, c filter.Criteria) {
	session, err := store.Get(r, SessionName)
	if err != nil {
		return
	}
	session.Values["certificate"] = c.Certificate
	session.Values["year_from"] = c.YearFrom
	session.Values["year_to"] = c.YearTo
	session.Values["genre"] = c.Genre
	_ = session.Save(r, w)
}
