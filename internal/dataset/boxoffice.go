package dataset

import (
	"math"
	"strconv"
	"strings"
)

// ParseBoxOffice converts a raw box-office figure into US dollars.
//
// Accepted forms: "$28,341,469", "$123.4M", "$500K", plain numbers.
// Missing or unparseable input yields 0 rather than an error. The
// suffix check is uppercase-only: "1.2m" falls through to the plain
// parse, fails, and yields 0 as well.
func ParseBoxOffice(raw string) float64 {
	v, _ := parseBoxOffice(raw)
	return v
}

// parseBoxOffice reports ok=false when a present value had to fall
// back to zero, so the loader can count data-quality problems without
// turning them into errors.
func parseBoxOffice(raw string) (float64, bool) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return 0, true
	}
	s = strings.ReplaceAll(s, "$", "")
	s = strings.ReplaceAll(s, ",", "")
	s = strings.TrimSpace(s)

	scale := 1.0
	switch {
	case strings.HasSuffix(s, "M"):
		scale = 1e6
		s = strings.TrimSuffix(s, "M")
	case strings.HasSuffix(s, "K"):
		scale = 1e3
		s = strings.TrimSuffix(s, "K")
	}

	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	v *= scale
	// Box office is defined as a finite non-negative amount; clamp the
	// few inputs ParseFloat accepts that would violate that.
	if math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
		return 0, false
	}
	return v, true
}
