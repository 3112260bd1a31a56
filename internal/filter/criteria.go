// Package filter narrows the cleaned dataset by certificate, release
// year range, and genre. Criteria are a plain value object so any
// input layer (CLI flags, web form, TUI keys) can construct them and
// hand them to the same pure functions.
package filter

import (
	"strings"

	"github.com/reeldash/reeldash/internal/dataset"
)

// Unrestricted is the selection that matches every record, including
// those with a missing value in the filtered field.
const Unrestricted = "All"

// Criteria describes one filter selection. The zero value matches
// every record except that a zero year range matches nothing useful;
// build defaults with Default.
type Criteria struct {
	// Certificate must equal the record's certificate, unless it is
	// empty or Unrestricted.
	Certificate string
	// YearFrom and YearTo bound the release year, both inclusive.
	YearFrom int
	YearTo   int
	// Genre is matched as a case-insensitive substring of the record's
	// genre field; empty or Unrestricted matches everything. Records
	// with a missing genre are excluded whenever a genre is set.
	Genre string
}

// Default returns criteria spanning the whole dataset: any
// certificate, the full year range, any genre.
func Default(ds *dataset.Dataset) Criteria {
	return Criteria{
		Certificate: Unrestricted,
		YearFrom:    ds.MinYear(),
		YearTo:      ds.MaxYear(),
		Genre:       Unrestricted,
	}
}

// Matches reports whether the record satisfies all three predicates.
func (c Criteria) Matches(m dataset.Movie) bool {
	if !unrestricted(c.Certificate) && m.Certificate != c.Certificate {
		return false
	}
	if m.Year < c.YearFrom || m.Year > c.YearTo {
		return false
	}
	if !unrestricted(c.Genre) {
		if m.Genre == "" {
			return false
		}
		if !strings.Contains(strings.ToLower(m.Genre), strings.ToLower(c.Genre)) {
			return false
		}
	}
	return true
}

// Apply returns the subset of the dataset matching the criteria, in
// source order. An empty result is valid, not an error.
func Apply(ds *dataset.Dataset, c Criteria) []dataset.Movie {
	var out []dataset.Movie
	for _, m := range ds.Movies() {
		if c.Matches(m) {
			out = append(out, m)
		}
	}
	return out
}

func unrestricted(sel string) bool {
	return sel == "" || sel == Unrestricted
}
