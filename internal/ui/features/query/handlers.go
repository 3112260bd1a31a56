package query

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/starfederation/datastar-go/datastar"

	"github.com/reeldash/reeldash/internal/engine"
	"github.com/reeldash/reeldash/internal/ui/features/common"
	"github.com/reeldash/reeldash/internal/ui/view"
)

const (
	maxRows      = 500
	queryTimeout = 30 * time.Second
)

// Handlers provides HTTP handlers for the query feature.
type Handlers struct {
	engine *engine.Engine
	logger *slog.Logger
}

// NewHandlers creates a new Handlers instance.
func NewHandlers(eng *engine.Engine, logger *slog.Logger) *Handlers {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Handlers{engine: eng, logger: logger}
}

// Page renders the SQL console with the seeded table list. An engine
// failure still renders the page; the error surfaces on the first run.
func (h *Handlers) Page(w http.ResponseWriter, r *http.Request) {
	data := PageData{
		Title:       "SQL",
		SignalsJSON: `{"sql": ""}`,
		Tables:      h.listTables(r.Context()),
	}
	if err := view.Render(w, "query-page", data); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

// Run executes the published SQL and patches the results fragment.
func (h *Handlers) Run(w http.ResponseWriter, r *http.Request) {
	var signals Signals
	if err := datastar.ReadSignals(r, &signals); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	sse := datastar.NewSSE(w, r)

	result := h.execute(r.Context(), strings.TrimSpace(signals.SQL))
	html, err := view.RenderString("query-results", result)
	if err != nil {
		_ = sse.ConsoleError(err)
		return
	}
	if err := sse.PatchElements(html); err != nil {
		_ = sse.ConsoleError(err)
	}
}

func (h *Handlers) execute(ctx context.Context, sql string) ResultData {
	if sql == "" {
		return ResultData{Error: "enter a SQL statement"}
	}

	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	start := time.Now()
	rows, err := h.engine.Query(ctx, sql)
	if err != nil {
		return ResultData{Error: err.Error()}
	}
	defer func() { _ = rows.Close() }()

	cols, err := rows.Columns()
	if err != nil {
		return ResultData{Error: err.Error()}
	}

	result := ResultData{Ran: true, Columns: cols}
	for rows.Next() {
		if result.RowCount >= maxRows {
			result.Truncated = true
			break
		}
		values := make([]any, len(cols))
		ptrs := make([]any, len(cols))
		for i := range values {
			ptrs[i] = &values[i]
		}
		if err := rows.Scan(ptrs...); err != nil {
			return ResultData{Error: err.Error()}
		}
		row := make([]string, len(cols))
		for i, v := range values {
			row[i] = formatValue(v)
		}
		result.Rows = append(result.Rows, row)
		result.RowCount++
	}
	if err := rows.Err(); err != nil {
		return ResultData{Error: err.Error()}
	}
	result.ElapsedMS = time.Since(start).Milliseconds()

	h.logger.Debug("console query", "rows", result.RowCount, "elapsed_ms", result.ElapsedMS)
	return result
}

// listTables returns the seeded tables with row counts, or nil when
// the engine is unavailable.
func (h *Handlers) listTables(ctx context.Context) []TableInfo {
	names, err := h.engine.ListTables(ctx)
	if err != nil {
		h.logger.Warn("engine unavailable", "error", err)
		return nil
	}
	var tables []TableInfo
	for _, name := range names {
		info := TableInfo{Name: name}
		if meta, err := h.engine.TableMetadata(ctx, name); err == nil {
			info.RowCount = common.Comma(int(meta.RowCount))
		}
		tables = append(tables, info)
	}
	return tables
}

func formatValue(v any) string {
	switch val := v.(type) {
	case nil:
		return "NULL"
	case []byte:
		return string(val)
	default:
		return fmt.Sprintf("%v", val)
	}
}
