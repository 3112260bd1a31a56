package dataset

import "testing"

func TestParseBoxOffice(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want float64
	}{
		{"plain dollars with separators", "$28,341,469", 28341469},
		{"millions suffix", "$123.4M", 123400000},
		{"millions suffix with separators", "$1,234.5M", 1234500000},
		{"thousands suffix", "$500K", 500000},
		{"plain number", "4360000", 4360000},
		{"decimal number", "123.45", 123.45},
		{"empty", "", 0},
		{"whitespace only", "   ", 0},
		{"not available", "N/A", 0},
		{"prose placeholder", "Not Available", 0},
		{"lowercase m falls through", "1.2m", 0},
		{"lowercase k falls through", "500k", 0},
		{"suffix without prefix", "M", 0},
		{"double suffix", "1.2MM", 0},
		{"garbage", "twelve dollars", 0},
		{"negative clamped", "-500", 0},
		{"surrounding whitespace", "  $500K  ", 500000},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ParseBoxOffice(tt.raw); got != tt.want {
				t.Errorf("ParseBoxOffice(%q) = %v, want %v", tt.raw, got, tt.want)
			}
		})
	}
}

// Suffix-free numeric strings must behave exactly like a direct
// decimal parse, and re-parsing an already-normalized number must be
// a fixed point.
func TestParseBoxOfficeIdempotent(t *testing.T) {
	inputs := []string{"0", "1", "500000", "28341469", "123.45"}
	for _, in := range inputs {
		first := ParseBoxOffice(in)
		again := ParseBoxOffice(formatFloat(first))
		if first != again {
			t.Errorf("ParseBoxOffice not idempotent on %q: %v then %v", in, first, again)
		}
	}
}

func formatFloat(v float64) string {
	m := Movie{BoxOffice: v}
	return m.Value("box_office")
}
