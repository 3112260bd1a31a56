package movies

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/sessions"
	"github.com/starfederation/datastar-go/datastar"

	"github.com/reeldash/reeldash/internal/dataset"
	"github.com/reeldash/reeldash/internal/filter"
	"github.com/reeldash/reeldash/internal/ui/features/common"
	"github.com/reeldash/reeldash/internal/ui/view"
)

// Handlers provides HTTP handlers for the movies feature.
type Handlers struct {
	dataset      *dataset.Dataset
	sessionStore sessions.Store
	pageSize     int
}

// NewHandlers creates a new Handlers instance.
func NewHandlers(ds *dataset.Dataset, sessionStore sessions.Store, pageSize int) *Handlers {
	if pageSize <= 0 {
		pageSize = 25
	}
	return &Handlers{dataset: ds, sessionStore: sessionStore, pageSize: pageSize}
}

// Page renders the full movies page with the session's last filter
// selection and the default column set.
func (h *Handlers) Page(w http.ResponseWriter, r *http.Request) {
	criteria := common.LoadCriteria(r, h.sessionStore, h.dataset)
	columns := dataset.DefaultColumns()

	signals, err := json.Marshal(Signals{
		Certificate: criteria.Certificate,
		YearFrom:    criteria.YearFrom,
		YearTo:      criteria.YearTo,
		Genre:       criteria.Genre,
		Columns:     columns,
		Limit:       h.pageSize,
	})
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	selected := make(map[string]bool, len(columns))
	for _, c := range columns {
		selected[c] = true
	}

	data := PageData{
		Title:           "Movies",
		SignalsJSON:     string(signals),
		Criteria:        criteria,
		Options:         common.Options(h.dataset),
		AllColumns:      dataset.Columns(),
		SelectedColumns: selected,
		View:            h.buildView(criteria, columns, h.pageSize),
	}
	if err := view.Render(w, "movies-page", data); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

// View recomputes the record listing for the published signals and
// patches the fragment over SSE.
func (h *Handlers) View(w http.ResponseWriter, r *http.Request) {
	var signals Signals
	if err := datastar.ReadSignals(r, &signals); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	criteria := criteriaFromSignals(signals, h.dataset)
	common.SaveCriteria(w, r, h.sessionStore, criteria)

	columns := validColumns(signals.Columns)
	limit := signals.Limit
	if limit <= 0 {
		limit = h.pageSize
	}

	sse := datastar.NewSSE(w, r)
	html, err := view.RenderString("movies-view", h.buildView(criteria, columns, limit))
	if err != nil {
		_ = sse.ConsoleError(err)
		return
	}
	if err := sse.PatchElements(html); err != nil {
		_ = sse.ConsoleError(err)
	}
}

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

// validColumns keeps known column names in canonical order, falling
// back to the default view when the selection is empty.
func validColumns(selected []string) []string {
	want := make(map[string]bool, len(selected))
	for _, c := range selected {
		want[c] = true
	}
	var out []string
	for _, c := range dataset.Columns() {
		if want[c] {
			out = append(out, c)
		}
	}
	if len(out) == 0 {
		return dataset.DefaultColumns()
	}
	return out
}

func (h *Handlers) buildView(criteria filter.Criteria, columns []string, limit int) ViewData {
	movies := filter.Apply(h.dataset, criteria)

	data := ViewData{
		Empty:   len(movies) == 0,
		Columns: columns,
		Total:   len(movies),
	}
	if data.Empty {
		return data
	}

	shown := movies
	if len(shown) > limit {
		shown = shown[:limit]
	}
	data.Shown = len(shown)

	data.Rows = make([][]string, 0, len(shown))
	for _, m := range shown {
		row := make([]string, 0, len(columns))
		for _, c := range columns {
			row = append(row, m.Value(c))
		}
		data.Rows = append(data.Rows, row)
	}
	return data
}
