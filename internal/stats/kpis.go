// Package stats computes the dashboard aggregations over a filtered
// set of movies: headline KPIs, frequency tables, and leaderboards.
// Every function tolerates an empty input and returns explicit
// no-data values instead of failing.
package stats

import "github.com/reeldash/reeldash/internal/dataset"

// NoData is the placeholder returned for name-valued KPIs when the
// filtered set is empty or carries no usable value for the metric.
const NoData = "N/A"

// KPIs are the four headline metrics of the dashboard.
type KPIs struct {
	TotalCount      int    `json:"total_count"`
	TopRated        string `json:"top_rated"`
	TopGrossing     string `json:"top_grossing"`
	MostCommonGenre string `json:"most_common_genre"`
}

// Compute derives all four KPIs in a single pass.
//
// Ties on rating or box office resolve to the first record in source
// order (strict comparison keeps the earlier maximum). The genre mode
// treats each record's raw genre string as one category and breaks
// ties by first encounter. Records without a rating never win the
// top-rated slot; when none has one, the placeholder is returned.
func Compute(movies []dataset.Movie) KPIs {
	k := KPIs{
		TotalCount:      len(movies),
		TopRated:        NoData,
		TopGrossing:     NoData,
		MostCommonGenre: NoData,
	}
	if len(movies) == 0 {
		return k
	}

	var (
		bestRating  float64
		haveRating  bool
		bestGross   float64
		haveGross   bool
		genreCounts = make(map[string]int)
		genreOrder  []string
	)
	for _, m := range movies {
		if m.HasRating() && (!haveRating || *m.Rating > bestRating) {
			bestRating = *m.Rating
			k.TopRated = m.Name
			haveRating = true
		}
		if !haveGross || m.BoxOffice > bestGross {
			bestGross = m.BoxOffice
			k.TopGrossing = m.Name
			haveGross = true
		}
		if m.Genre != "" {
			if _, ok := genreCounts[m.Genre]; !ok {
				genreOrder = append(genreOrder, m.Genre)
			}
			genreCounts[m.Genre]++
		}
	}

	best := 0
	for _, g := range genreOrder {
		if genreCounts[g] > best {
			best = genreCounts[g]
			k.MostCommonGenre = g
		}
	}
	return k
}
