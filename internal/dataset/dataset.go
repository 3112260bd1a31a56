// Package dataset loads the IMDB Top 250 movies file into an immutable
// in-memory table, normalizing box-office figures and coercing numeric
// columns on the way in. The dataset is read once at startup and never
// mutated afterwards; filtering and aggregation derive transient views.
package dataset

import "sort"

// LoadStats records how often the cleaning rules had to fall back to
// zero values or absent fields while reading the source file.
type LoadStats struct {
	Rows                int
	BoxOfficeFallbacks  int
	MissingRatings      int
	MissingCertificates int
	RuntimeFallbacks    int
	YearFallbacks       int
}

// Dataset is the cleaned movie table. Loaded once, then read-only.
type Dataset struct {
	movies []Movie
	stats  LoadStats
	path   string
}

// New builds a dataset from already-cleaned records. Most callers go
// through Load; New exists for programmatic construction and tests.
func New(movies []Movie) *Dataset {
	return &Dataset{movies: movies, stats: LoadStats{Rows: len(movies)}}
}

// Movies returns all records in source-file order. Callers must treat
// the returned slice as read-only.
func (d *Dataset) Movies() []Movie {
	return d.movies
}

// Len returns the number of records.
func (d *Dataset) Len() int {
	return len(d.movies)
}

// Path returns the file the dataset was loaded from, if any.
func (d *Dataset) Path() string {
	return d.path
}

// Stats returns the cleaning counters collected during load.
func (d *Dataset) Stats() LoadStats {
	return d.stats
}

// MinYear returns the earliest release year present, ignoring records
// whose year failed to parse. Zero when no record has a usable year.
func (d *Dataset) MinYear() int {
	min := 0
	for _, m := range d.movies {
		if m.Year == 0 {
			continue
		}
		if min == 0 || m.Year < min {
			min = m.Year
		}
	}
	return min
}

// MaxYear returns the latest release year present, ignoring records
// whose year failed to parse. Zero when no record has a usable year.
func (d *Dataset) MaxYear() int {
	max := 0
	for _, m := range d.movies {
		if m.Year > max {
			max = m.Year
		}
	}
	return max
}

// Certificates returns the distinct non-empty certificate values in
// the dataset, sorted alphabetically. Used to build filter option lists.
func (d *Dataset) Certificates() []string {
	seen := make(map[string]struct{})
	var out []string
	for _, m := range d.movies {
		if m.Certificate == "" {
			continue
		}
		if _, ok := seen[m.Certificate]; ok {
			continue
		}
		seen[m.Certificate] = struct{}{}
		out = append(out, m.Certificate)
	}
	sort.Strings(out)
	return out
}
