package dashboard

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/sessions"
	"github.com/starfederation/datastar-go/datastar"

	"github.com/reeldash/reeldash/internal/dataset"
	"github.com/reeldash/reeldash/internal/filter"
	"github.com/reeldash/reeldash/internal/stats"
	"github.com/reeldash/reeldash/internal/ui/features/common"
	"github.com/reeldash/reeldash/internal/ui/view"
)

// Handlers provides HTTP handlers for the dashboard feature.
type Handlers struct {
	dataset      *dataset.Dataset
	sessionStore sessions.Store
}

// NewHandlers creates a new Handlers instance.
func NewHandlers(ds *dataset.Dataset, sessionStore sessions.Store) *Handlers {
	return &Handlers{dataset: ds, sessionStore: sessionStore}
}

// Page renders the full dashboard page with the session's last
// filter selection.
func (h *Handlers) Page(w http.ResponseWriter, r *http.Request) {
	criteria := common.LoadCriteria(r, h.sessionStore, h.dataset)

	signals, err := json.Marshal(Signals{
		Certificate: criteria.Certificate,
		YearFrom:    criteria.YearFrom,
		YearTo:      criteria.YearTo,
		Genre:       criteria.Genre,
	})
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	data := PageData{
		Title:       "Dashboard",
		SignalsJSON: string(signals),
		View:        h.buildView(criteria),
	}
	if err := view.Render(w, "dashboard-page", data); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

// View recomputes the dashboard for the published filter signals and
// patches the fragment over SSE.
func (h *Handlers) View(w http.ResponseWriter, r *http.Request) {
	var signals Signals
	if err := datastar.ReadSignals(r, &signals); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	criteria := criteriaFromSignals(signals, h.dataset)
	common.SaveCriteria(w, r, h.sessionStore, criteria)

	sse := datastar.NewSSE(w, r)
	html, err := view.RenderString("dashboard-view", h.buildView(criteria))
	if err != nil {
		_ = sse.ConsoleError(err)
		return
	}
	if err := sse.PatchElements(html); err != nil {
		_ = sse.ConsoleError(err)
	}
}

// criteriaFromSignals turns frontend signals into filter criteria,
// filling unusable year bounds from the dataset span.
func criteriaFromSignals(s Signals, ds *dataset.Dataset) filter.Criteria {
	c := filter.Default(ds)
	if s.Certificate != "" {
		c.Certificate = s.Certificate
	}
	if s.YearFrom != 0 {
		c.YearFrom = s.YearFrom
	}
	if s.YearTo != 0 {
		c.YearTo = s.YearTo
	}
	if s.Genre != "" {
		c.Genre = s.Genre
	}
	return c
}

// buildView runs the full filter and aggregation pipeline. Every
// interaction recomputes everything from the immutable dataset.
func (h *Handlers) buildView(criteria filter.Criteria) ViewData {
	movies := filter.Apply(h.dataset, criteria)

	data := ViewData{
		Criteria: criteria,
		Options:  common.Options(h.dataset),
		Empty:    len(movies) == 0,
	}
	if data.Empty {
		return data
	}

	kpis := stats.Compute(movies)
	data.TotalCount = common.Comma(kpis.TotalCount)
	data.TopRated = kpis.TopRated
	data.TopGrossing = kpis.TopGrossing
	data.MostCommonGenre = kpis.MostCommonGenre

	data.Tables = []BarTable{
		{Title: "Top genres", Rows: barRows(stats.Genres(movies, stats.LeaderboardSize))},
		{Title: "Certificates", Rows: barRows(stats.Certificates(movies))},
		{Title: "Top directors", Rows: barRows(stats.Directors(movies, stats.LeaderboardSize))},
		{Title: "Top actors", Rows: barRows(stats.Actors(movies, stats.LeaderboardSize))},
	}
	data.Years = yearPoints(stats.YearlyCounts(movies))
	data.Boards = []Board{
		ratingBoard(stats.TopByRating(movies, stats.LeaderboardSize)),
		grossBoard(stats.TopByBoxOffice(movies, stats.LeaderboardSize)),
		runtimeBoard(stats.TopByRunTime(movies, stats.LeaderboardSize)),
	}
	return data
}

func barRows(entries []stats.Entry) []BarRow {
	max := 0
	for _, e := range entries {
		if e.Count > max {
			max = e.Count
		}
	}
	rows := make([]BarRow, 0, len(entries))
	for _, e := range entries {
		rows = append(rows, BarRow{
			Label: e.Label,
			Count: common.Comma(e.Count),
			Width: common.BarWidth(e.Count, max),
		})
	}
	return rows
}

func yearPoints(counts []stats.YearCount) []YearPoint {
	max := 0
	for _, yc := range counts {
		if yc.Count > max {
			max = yc.Count
		}
	}
	points := make([]YearPoint, 0, len(counts))
	for _, yc := range counts {
		points = append(points, YearPoint{
			Year:   yc.Year,
			Count:  yc.Count,
			Height: common.BarWidth(yc.Count, max),
		})
	}
	return points
}

func ratingBoard(movies []dataset.Movie) Board {
	b := Board{Title: "Top rated", ValueHeader: "Rating"}
	for i, m := range movies {
		b.Rows = append(b.Rows, BoardRow{
			Rank: i + 1, Name: m.Name, Year: m.Year,
			Value: common.Rating(m.Rating),
		})
	}
	return b
}

func grossBoard(movies []dataset.Movie) Board {
	b := Board{Title: "Top grossing", ValueHeader: "Box office"}
	for i, m := range movies {
		b.Rows = append(b.Rows, BoardRow{
			Rank: i + 1, Name: m.Name, Year: m.Year,
			Value: common.Money(m.BoxOffice),
		})
	}
	return b
}

func runtimeBoard(movies []dataset.Movie) Board {
	b := Board{Title: "Longest runtime", ValueHeader: "Runtime"}
	for i, m := range movies {
		b.Rows = append(b.Rows, BoardRow{
			Rank: i + 1, Name: m.Name, Year: m.Year,
			Value: common.Runtime(m.RunTime),
		})
	}
	return b
}
