package common

import (
	"fmt"
	"strconv"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var printer = message.NewPrinter(language.English)

// Comma renders an integer with thousands separators.
func Comma(n int) string {
	return printer.Sprintf("%d", n)
}

// Money renders a normalized box-office amount the way the source
// data writes it: $1.23M, $500.0K, or a plain dollar figure. Zero
// means the value was missing or unparseable.
func Money(v float64) string {
	switch {
	case v <= 0:
		return "—"
	case v >= 1e6:
		return fmt.Sprintf("$%.1fM", v/1e6)
	case v >= 1e3:
		return fmt.Sprintf("$%.1fK", v/1e3)
	default:
		return fmt.Sprintf("$%.0f", v)
	}
}

// Rating renders a coerced rating, or a dash when absent.
func Rating(r *float64) string {
	if r == nil {
		return "—"
	}
	return strconv.FormatFloat(*r, 'f', 1, 64)
}

// Runtime renders minutes as "2h 22m".
func Runtime(minutes int) string {
	if minutes <= 0 {
		return "—"
	}
	h, m := minutes/60, minutes%60
	if h == 0 {
		return fmt.Sprintf("%dm", m)
	}
	if m == 0 {
		return fmt.Sprintf("%dh", h)
	}
	return fmt.Sprintf("%dh %dm", h, m)
}

// BarWidth scales count against max into a 2..100 percentage for the
// frequency-table bars.
func BarWidth(count, max int) int {
	if max <= 0 || count <= 0 {
		return 0
	}
	w := count * 100 / max
	if w < 2 {
		w = 2
	}
	return w
}
