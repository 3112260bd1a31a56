package dataset

import (
	"strconv"
	"strings"
)

// ParseRunTime converts a runtime string to whole minutes. The source
// data mixes forms: "2h 22m", "3h", "142 min", plain "142". Anything
// else yields 0, silently, like the other cleaning rules.
func ParseRunTime(raw string) int {
	v, _ := parseRunTime(raw)
	return v
}

func parseRunTime(raw string) (int, bool) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return 0, true
	}
	if n, err := strconv.Atoi(s); err == nil && n >= 0 {
		return n, true
	}

	total := 0
	seen := false
	for _, f := range strings.Fields(s) {
		switch {
		case f == "min" || f == "mins" || f == "minutes":
			// unit word after a bare number
		case strings.HasSuffix(f, "h"):
			n, err := strconv.Atoi(strings.TrimSuffix(f, "h"))
			if err != nil || n < 0 {
				return 0, false
			}
			total += n * 60
			seen = true
		case strings.HasSuffix(f, "m"):
			n, err := strconv.Atoi(strings.TrimSuffix(f, "m"))
			if err != nil || n < 0 {
				return 0, false
			}
			total += n
			seen = true
		default:
			n, err := strconv.Atoi(f)
			if err != nil || n < 0 {
				return 0, false
			}
			total += n
			seen = true
		}
	}
	if !seen {
		return 0, false
	}
	return total, true
}
