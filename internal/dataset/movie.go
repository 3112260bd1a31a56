package dataset

import (
	"strconv"
	"strings"
)

// Movie is one record of the Top 250 table. Fields that failed to
// parse keep their zero value (or nil for Rating); records are never
// dropped over a malformed field.
type Movie struct {
	Name        string
	Year        int
	Certificate string
	Genre       string
	Directors   string
	Casts       string
	Rating      *float64
	RunTime     int // minutes
	BoxOffice   float64
	// RawBoxOffice keeps the source text so the SQL surface and the
	// doctor command can show what was normalized away.
	RawBoxOffice string
}

// CastList splits the comma-delimited casts field into individual
// actor names, trimming whitespace and dropping empty entries.
func (m Movie) CastList() []string {
	if m.Casts == "" {
		return nil
	}
	parts := strings.Split(m.Casts, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		out = append(out, p)
	}
	return out
}

// HasRating reports whether the rating survived numeric coercion.
func (m Movie) HasRating() bool {
	return m.Rating != nil
}

// RatingValue returns the coerced rating, or 0 when absent.
func (m Movie) RatingValue() float64 {
	if m.Rating == nil {
		return 0
	}
	return *m.Rating
}

// Columns lists the displayable movie attributes in source order.
func Columns() []string {
	return []string{
		"name", "year", "certificate", "genre",
		"directors", "casts", "rating", "run_time", "box_office",
	}
}

// DefaultColumns is the compact view shown before the user picks
// their own column set.
func DefaultColumns() []string {
	return []string{"name", "year", "genre", "rating"}
}

// Value renders one attribute of the movie as a plain string, keyed by
// the column names from Columns. Unknown columns yield "".
func (m Movie) Value(column string) string {
	switch column {
	case "name":
		return m.Name
	case "year":
		return strconv.Itoa(m.Year)
	case "certificate":
		return m.Certificate
	case "genre":
		return m.Genre
	case "directors":
		return m.Directors
	case "casts":
		return m.Casts
	case "rating":
		if m.Rating == nil {
			return ""
		}
		return strconv.FormatFloat(*m.Rating, 'f', 1, 64)
	case "run_time":
		return strconv.Itoa(m.RunTime)
	case "box_office":
		return strconv.FormatFloat(m.BoxOffice, 'f', -1, 64)
	}
	return ""
}
