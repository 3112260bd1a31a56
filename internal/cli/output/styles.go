package output

import (
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"golang.org/x/term"
)

// Styles holds the lipgloss styles shared by text-mode rendering.
type Styles struct {
	Header1 lipgloss.Style
	Header2 lipgloss.Style
	Bold    lipgloss.Style
	Muted   lipgloss.Style
	Success lipgloss.Style
	Warning lipgloss.Style
	Error   lipgloss.Style
	Info    lipgloss.Style

	// MovieTitle styles movie names in listings.
	MovieTitle lipgloss.Style

	// StatusSuccess and StatusFailed are pre-rendered status icons.
	StatusSuccess lipgloss.Style
	StatusFailed  lipgloss.Style
}

// newStyles builds styles bound to the given writer. The color
// profile comes from termenv when the writer is a terminal; piped
// output gets plain text.
func newStyles(w io.Writer) *Styles {
	rdr := lipgloss.NewRenderer(w)
	if f, ok := w.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		rdr.SetColorProfile(termenv.ColorProfile())
	} else {
		rdr.SetColorProfile(termenv.Ascii)
	}

	success := rdr.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "2", Dark: "10"})
	errStyle := rdr.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "1", Dark: "9"})

	return &Styles{
		Header1: rdr.NewStyle().Bold(true).Foreground(lipgloss.AdaptiveColor{Light: "57", Dark: "99"}),
		Header2: rdr.NewStyle().Bold(true).Foreground(lipgloss.AdaptiveColor{Light: "61", Dark: "105"}),
		Bold:    rdr.NewStyle().Bold(true),
		Muted:   rdr.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "245", Dark: "240"}),
		Success: success,
		Warning: rdr.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "3", Dark: "11"}),
		Error:   errStyle,
		Info:    rdr.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "4", Dark: "12"}),

		MovieTitle: rdr.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "6", Dark: "14"}),

		StatusSuccess: success.SetString("✓"),
		StatusFailed:  errStyle.SetString("✗"),
	}
}
