// Package browse implements the interactive terminal movie browser.
// It renders the filtered Top 250 table with live KPIs in the status
// bar; filters narrow the selection without touching the dataset.
package browse

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/reeldash/reeldash/internal/dataset"
	"github.com/reeldash/reeldash/internal/filter"
	"github.com/reeldash/reeldash/internal/stats"
)

// chromeHeight is the number of terminal rows the title, status bar,
// and help line occupy around the table.
const chromeHeight = 6

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.AdaptiveColor{Light: "#7C3AED", Dark: "#A78BFA"})

	subtitleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.AdaptiveColor{Light: "#6B7280", Dark: "#9CA3AF"})

	statusStyle = lipgloss.NewStyle().
			Foreground(lipgloss.AdaptiveColor{Light: "#6B7280", Dark: "#9CA3AF"})

	statusValueStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(lipgloss.AdaptiveColor{Light: "#1F2937", Dark: "#F9FAFB"})

	tableBorderStyle = lipgloss.NewStyle().
				BorderStyle(lipgloss.NormalBorder()).
				BorderForeground(lipgloss.AdaptiveColor{Light: "#D1D5DB", Dark: "#4B5563"})
)

// Model is the bubbletea model for the movie browser.
type Model struct {
	ds *dataset.Dataset

	certs   []string // filter.Unrestricted plus the distinct certificates
	certIdx int

	// yearFrom is the lower bound of the year window; it steps by
	// decades between the dataset's span and its last year.
	yearFrom int

	table     table.Model
	input     textinput.Model
	keys      keyMap
	help      help.Model
	filtering bool

	kpis    stats.KPIs
	matched int
}

// NewModel builds the browser over a loaded dataset. Height is the
// number of table body rows shown at once.
func NewModel(ds *dataset.Dataset, height int) Model {
	if height <= 0 {
		height = 20
	}

	columns := []table.Column{
		{Title: "Name", Width: 40},
		{Title: "Year", Width: 6},
		{Title: "Genre", Width: 26},
		{Title: "Rating", Width: 6},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(height),
	)
	st := table.DefaultStyles()
	st.Header = st.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.AdaptiveColor{Light: "#D1D5DB", Dark: "#4B5563"}).
		BorderBottom(true).
		Bold(true)
	st.Selected = st.Selected.
		Foreground(lipgloss.Color("#FFFFFF")).
		Background(lipgloss.AdaptiveColor{Light: "#7C3AED", Dark: "#6D28D9"}).
		Bold(false)
	t.SetStyles(st)

	input := textinput.New()
	input.Placeholder = "genre contains..."
	input.CharLimit = 40
	input.Width = 24

	m := Model{
		ds:       ds,
		certs:    append([]string{filter.Unrestricted}, ds.Certificates()...),
		yearFrom: ds.MinYear(),
		table:    t,
		input:    input,
		keys:     defaultKeyMap(),
		help:     help.New(),
	}
	m.refresh()
	return m
}

// Criteria returns the filter selection currently applied.
func (m Model) Criteria() filter.Criteria {
	c := filter.Default(m.ds)
	c.Certificate = m.certs[m.certIdx]
	c.YearFrom = m.yearFrom
	if genre := strings.TrimSpace(m.input.Value()); genre != "" {
		c.Genre = genre
	}
	return c
}

// Matched returns the number of movies in the current selection.
func (m Model) Matched() int {
	return m.matched
}

// refresh recomputes the table rows and status KPIs from the current
// filter selection.
func (m *Model) refresh() {
	movies := filter.Apply(m.ds, m.Criteria())
	m.matched = len(movies)
	m.kpis = stats.Compute(movies)

	rows := make([]table.Row, 0, len(movies))
	for _, mv := range movies {
		rows = append(rows, table.Row{
			truncate(mv.Name, 40),
			strconv.Itoa(mv.Year),
			truncate(mv.Genre, 26),
			ratingCell(mv),
		})
	}
	m.table.SetRows(rows)
	if m.table.Cursor() >= len(rows) {
		m.table.GotoTop()
	}
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		height := msg.Height - chromeHeight
		if height < 5 {
			height = 5
		}
		m.table.SetHeight(height)
		m.help.Width = msg.Width
		return m, nil

	case tea.KeyMsg:
		if m.filtering {
			return m.updateFiltering(msg)
		}

		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit

		case key.Matches(msg, m.keys.Filter):
			m.filtering = true
			return m, m.input.Focus()

		case key.Matches(msg, m.keys.Certificate):
			m.certIdx = (m.certIdx + 1) % len(m.certs)
			m.refresh()
			return m, nil

		case key.Matches(msg, m.keys.YearNarrow):
			m.yearFrom += 10
			if m.yearFrom > m.ds.MaxYear() {
				m.yearFrom = m.ds.MaxYear()
			}
			m.refresh()
			return m, nil

		case key.Matches(msg, m.keys.YearWiden):
			m.yearFrom -= 10
			if m.yearFrom < m.ds.MinYear() {
				m.yearFrom = m.ds.MinYear()
			}
			m.refresh()
			return m, nil

		case key.Matches(msg, m.keys.Reset):
			m.certIdx = 0
			m.yearFrom = m.ds.MinYear()
			m.input.SetValue("")
			m.refresh()
			return m, nil

		case key.Matches(msg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// updateFiltering handles keys while the genre input has focus. The
// table narrows live as the user types.
func (m Model) updateFiltering(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Apply):
		m.filtering = false
		m.input.Blur()
		m.refresh()
		return m, nil

	case key.Matches(msg, m.keys.Cancel):
		m.filtering = false
		m.input.Blur()
		m.input.SetValue("")
		m.refresh()
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	m.refresh()
	return m, cmd
}

func (m Model) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("ReelDash"))
	b.WriteString(" ")
	b.WriteString(subtitleStyle.Render("IMDB Top 250 browser"))
	if m.filtering {
		b.WriteString("   Genre: ")
		b.WriteString(m.input.View())
	}
	b.WriteString("\n")

	b.WriteString(tableBorderStyle.Render(m.table.View()))
	b.WriteString("\n")

	b.WriteString(m.statusView())
	b.WriteString("\n")
	b.WriteString(m.help.View(m.keys))

	return b.String()
}

// statusView renders the KPI bar for the current selection.
func (m Model) statusView() string {
	parts := []string{
		fmt.Sprintf("%s movies", statusValueStyle.Render(strconv.Itoa(m.matched))),
		fmt.Sprintf("Top rated: %s", statusValueStyle.Render(m.kpis.TopRated)),
		fmt.Sprintf("Top grossing: %s", statusValueStyle.Render(m.kpis.TopGrossing)),
		fmt.Sprintf("Genre: %s", statusValueStyle.Render(m.kpis.MostCommonGenre)),
		fmt.Sprintf("Cert: %s", statusValueStyle.Render(m.certs[m.certIdx])),
		fmt.Sprintf("Years: %s", statusValueStyle.Render(
			fmt.Sprintf("%d-%d", m.yearFrom, m.ds.MaxYear()))),
	}
	return statusStyle.Render(strings.Join(parts, "  |  "))
}

func ratingCell(m dataset.Movie) string {
	if !m.HasRating() {
		return "-"
	}
	return strconv.FormatFloat(m.RatingValue(), 'f', 1, 64)
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	if max <= 3 {
		return s[:max]
	}
	return s[:max-3] + "..."
}
