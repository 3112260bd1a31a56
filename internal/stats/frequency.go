package stats

import (
	"sort"

	"github.com/reeldash/reeldash/internal/dataset"
)

// Entry is one row of a frequency table.
type Entry struct {
	Label string `json:"label"`
	Count int    `json:"count"`
}

// YearCount is one point of the per-year trend.
type YearCount struct {
	Year  int `json:"year"`
	Count int `json:"count"`
}

// Genres counts records per raw genre string (categories are not
// exploded) and returns the top limit entries. Zero limit means all.
func Genres(movies []dataset.Movie, limit int) []Entry {
	return countValues(movies, limit, func(m dataset.Movie) []string {
		if m.Genre == "" {
			return nil
		}
		return []string{m.Genre}
	})
}

// Certificates counts records per distinct certificate present.
// Records with a missing certificate are not represented.
func Certificates(movies []dataset.Movie) []Entry {
	return countValues(movies, 0, func(m dataset.Movie) []string {
		if m.Certificate == "" {
			return nil
		}
		return []string{m.Certificate}
	})
}

// Directors returns the top limit directors by movie count.
func Directors(movies []dataset.Movie, limit int) []Entry {
	return countValues(movies, limit, func(m dataset.Movie) []string {
		if m.Directors == "" {
			return nil
		}
		return []string{m.Directors}
	})
}

// Actors explodes the multi-valued casts field, counts every actor
// appearance once per movie, and returns the top limit entries.
func Actors(movies []dataset.Movie, limit int) []Entry {
	return countValues(movies, limit, dataset.Movie.CastList)
}

// YearlyCounts returns the number of movies per release year,
// ascending by year, for the trend view.
func YearlyCounts(movies []dataset.Movie) []YearCount {
	counts := make(map[int]int)
	var years []int
	for _, m := range movies {
		if _, ok := counts[m.Year]; !ok {
			years = append(years, m.Year)
		}
		counts[m.Year]++
	}
	sort.Ints(years)

	out := make([]YearCount, 0, len(years))
	for _, y := range years {
		out = append(out, YearCount{Year: y, Count: counts[y]})
	}
	return out
}

// countValues tallies the labels extract produces per record and
// orders them by count descending. Ties keep first-encounter order:
// entries are built in the order labels first appear, and the sort is
// stable.
func countValues(movies []dataset.Movie, limit int, extract func(dataset.Movie) []string) []Entry {
	counts := make(map[string]int)
	var order []string
	for _, m := range movies {
		for _, label := range extract(m) {
			if _, ok := counts[label]; !ok {
				order = append(order, label)
			}
			counts[label]++
		}
	}

	entries := make([]Entry, 0, len(order))
	for _, label := range order {
		entries = append(entries, Entry{Label: label, Count: counts[label]})
	}
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Count > entries[j].Count
	})

	if limit > 0 && len(entries) > limit {
		entries = entries[:limit]
	}
	return entries
}
