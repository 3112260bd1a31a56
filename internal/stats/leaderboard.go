package stats

import (
	"sort"

	"github.com/reeldash/reeldash/internal/dataset"
)

// LeaderboardSize is how many records each leaderboard carries.
const LeaderboardSize = 10

// TopByRating returns the highest-rated records, descending, at most
// n. Records without a rating are excluded; ties keep source order.
func TopByRating(movies []dataset.Movie, n int) []dataset.Movie {
	rated := make([]dataset.Movie, 0, len(movies))
	for _, m := range movies {
		if m.HasRating() {
			rated = append(rated, m)
		}
	}
	return topBy(rated, n, func(m dataset.Movie) float64 { return *m.Rating })
}

// TopByBoxOffice returns the top-grossing records, descending, at
// most n. Ties keep source order.
func TopByBoxOffice(movies []dataset.Movie, n int) []dataset.Movie {
	return topBy(movies, n, func(m dataset.Movie) float64 { return m.BoxOffice })
}

// TopByRunTime returns the longest records, descending, at most n.
// Ties keep source order.
func TopByRunTime(movies []dataset.Movie, n int) []dataset.Movie {
	return topBy(movies, n, func(m dataset.Movie) float64 { return float64(m.RunTime) })
}

func topBy(movies []dataset.Movie, n int, key func(dataset.Movie) float64) []dataset.Movie {
	out := make([]dataset.Movie, len(movies))
	copy(out, movies)
	sort.SliceStable(out, func(i, j int) bool {
		return key(out[i]) > key(out[j])
	})
	if n > 0 && len(out) > n {
		out = out[:n]
	}
	return out
}
