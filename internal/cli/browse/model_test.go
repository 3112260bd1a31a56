package browse

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/reeldash/reeldash/internal/dataset"
	"github.com/reeldash/reeldash/internal/filter"
)

func ratingPtr(v float64) *float64 { return &v }

func testDataset() *dataset.Dataset {
	return dataset.New([]dataset.Movie{
		{Name: "The Shawshank Redemption", Year: 1994, Certificate: "R", Genre: "Drama", Rating: ratingPtr(9.3), RunTime: 142, BoxOffice: 28884504},
		{Name: "The Godfather", Year: 1972, Certificate: "R", Genre: "Crime, Drama", Rating: ratingPtr(9.2), RunTime: 175, BoxOffice: 250341816},
		{Name: "The Dark Knight", Year: 2008, Certificate: "PG-13", Genre: "Action, Crime, Drama", Rating: ratingPtr(9.0), RunTime: 152, BoxOffice: 534987076},
		{Name: "12 Angry Men", Year: 1957, Certificate: "Approved", Genre: "Crime, Drama", Rating: ratingPtr(9.0), RunTime: 96},
	})
}

func press(t *testing.T, m Model, msg tea.KeyMsg) (Model, tea.Cmd) {
	t.Helper()
	updated, cmd := m.Update(msg)
	next, ok := updated.(Model)
	require.True(t, ok, "Update must return a browse.Model")
	return next, cmd
}

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestNewModelShowsAllMovies(t *testing.T) {
	m := NewModel(testDataset(), 10)

	assert.Equal(t, 4, m.Matched())
	assert.Equal(t, filter.Unrestricted, m.Criteria().Certificate)
	assert.Equal(t, filter.Unrestricted, m.Criteria().Genre)
}

func TestCycleCertificate(t *testing.T) {
	m := NewModel(testDataset(), 10)

	// Certificates are sorted, so the first cycle lands on Approved.
	m, _ = press(t, m, runeKey('c'))
	assert.Equal(t, "Approved", m.Criteria().Certificate)
	assert.Equal(t, 1, m.Matched())

	m, _ = press(t, m, runeKey('c'))
	assert.Equal(t, "PG-13", m.Criteria().Certificate)

	m, _ = press(t, m, runeKey('c'))
	assert.Equal(t, "R", m.Criteria().Certificate)
	assert.Equal(t, 2, m.Matched())

	// A full cycle returns to the unrestricted view.
	m, _ = press(t, m, runeKey('c'))
	assert.Equal(t, filter.Unrestricted, m.Criteria().Certificate)
	assert.Equal(t, 4, m.Matched())
}

func TestGenreFilterNarrowsLive(t *testing.T) {
	m := NewModel(testDataset(), 10)

	m, _ = press(t, m, runeKey('/'))
	for _, r := range "Action" {
		m, _ = press(t, m, runeKey(r))
	}
	assert.Equal(t, 1, m.Matched())

	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	assert.Equal(t, "Action", m.Criteria().Genre)
	assert.Equal(t, 1, m.Matched())
}

func TestEscClearsGenreFilter(t *testing.T) {
	m := NewModel(testDataset(), 10)

	m, _ = press(t, m, runeKey('/'))
	for _, r := range "Drama" {
		m, _ = press(t, m, runeKey(r))
	}
	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyEsc})

	assert.Equal(t, filter.Unrestricted, m.Criteria().Genre)
	assert.Equal(t, 4, m.Matched())
}

func TestResetRestoresFullSelection(t *testing.T) {
	m := NewModel(testDataset(), 10)

	m, _ = press(t, m, runeKey('c'))
	m, _ = press(t, m, runeKey('/'))
	for _, r := range "Crime" {
		m, _ = press(t, m, runeKey(r))
	}
	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	require.Less(t, m.Matched(), 4)

	m, _ = press(t, m, runeKey('r'))
	assert.Equal(t, filter.Unrestricted, m.Criteria().Certificate)
	assert.Equal(t, filter.Unrestricted, m.Criteria().Genre)
	assert.Equal(t, 4, m.Matched())
}

func TestYearWindowKeys(t *testing.T) {
	m := NewModel(testDataset(), 10)

	// The window opens at the dataset's first year (1957); narrowing
	// steps the lower bound forward a decade.
	m, _ = press(t, m, runeKey('y'))
	assert.Equal(t, 1967, m.Criteria().YearFrom)
	assert.Equal(t, 3, m.Matched())

	m, _ = press(t, m, runeKey('Y'))
	assert.Equal(t, 1957, m.Criteria().YearFrom)
	assert.Equal(t, 4, m.Matched())

	// Widening never moves below the dataset's span.
	m, _ = press(t, m, runeKey('Y'))
	assert.Equal(t, 1957, m.Criteria().YearFrom)
}

func TestEscQuitsOutsideFiltering(t *testing.T) {
	m := NewModel(testDataset(), 10)

	_, cmd := press(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}

func TestQuitKey(t *testing.T) {
	m := NewModel(testDataset(), 10)

	_, cmd := press(t, m, runeKey('q'))
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}

func TestStatusBarTracksSelection(t *testing.T) {
	m := NewModel(testDataset(), 10)
	view := m.View()
	assert.Contains(t, view, "The Shawshank Redemption")
	assert.Contains(t, view, "4")

	// The unrated-free selection keeps its top-rated KPI current.
	m, _ = press(t, m, runeKey('c'))
	view = m.View()
	assert.Contains(t, view, "12 Angry Men")
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "short", truncate("short", 10))
	assert.Equal(t, "exactlyten", truncate("exactlyten", 10))
	assert.Equal(t, "a very ...", truncate("a very long title", 10))
}
