package commands

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/reeldash/reeldash/internal/engine"
	"github.com/reeldash/reeldash/pkg/adapter"
)

// maxQueryRows caps interactive result sets; anything larger belongs
// in a script with an explicit LIMIT.
const maxQueryRows = 1000

func renderResults(w io.Writer, rows *adapter.Rows, format string) error {
	cols, results, truncated, err := collectRows(rows)
	if err != nil {
		return err
	}
	if err := renderCollected(w, cols, results, format); err != nil {
		return err
	}
	if truncated {
		_, _ = fmt.Fprintf(w, "(output truncated at %d rows; add a LIMIT to see more)\n", maxQueryRows)
	}
	return nil
}

// collectRows drains the result set into column-keyed maps, stopping
// at maxQueryRows.
func collectRows(rows *adapter.Rows) ([]string, []map[string]any, bool, error) {
	cols, err := rows.Columns()
	if err != nil {
		return nil, nil, false, err
	}

	var results []map[string]any
	truncated := false
	for rows.Next() {
		if len(results) >= maxQueryRows {
			truncated = true
			break
		}
		values := make([]any, len(cols))
		valuePtrs := make([]any, len(cols))
		for i := range values {
			valuePtrs[i] = &values[i]
		}

		if err := rows.Scan(valuePtrs...); err != nil {
			return nil, nil, false, err
		}

		row := make(map[string]any)
		for i, col := range cols {
			val := values[i]
			// Convert []byte to string for readability
			if b, ok := val.([]byte); ok {
				val = string(b)
			}
			row[col] = val
		}
		results = append(results, row)
	}

	if err := rows.Err(); err != nil {
		return nil, nil, false, err
	}
	return cols, results, truncated, nil
}

func renderCollected(w io.Writer, cols []string, results []map[string]any, format string) error {
	switch format {
	case "json":
		return renderResultsJSON(w, results)
	case "csv":
		return renderResultsCSV(w, cols, results)
	case "md", "markdown":
		return renderResultsMarkdown(w, cols, results)
	default:
		return renderResultsTable(w, cols, results)
	}
}

func renderResultsTable(w io.Writer, cols []string, results []map[string]any) error {
	if len(results) == 0 {
		_, _ = fmt.Fprintln(w, "(0 rows)")
		return nil
	}

	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleLight)

	// Header
	headerRow := make(table.Row, len(cols))
	for i, col := range cols {
		headerRow[i] = col
	}
	t.AppendHeader(headerRow)

	// Rows
	for _, result := range results {
		row := make(table.Row, len(cols))
		for i, col := range cols {
			row[i] = formatValue(result[col])
		}
		t.AppendRow(row)
	}

	t.Render()
	_, _ = fmt.Fprintf(w, "(%d rows)\n", len(results))
	return nil
}

func renderResultsJSON(w io.Writer, results []map[string]any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(results)
}

func renderResultsCSV(w io.Writer, cols []string, results []map[string]any) error {
	// Header
	_, _ = fmt.Fprintln(w, strings.Join(cols, ","))

	// Rows
	for _, result := range results {
		values := make([]string, len(cols))
		for i, col := range cols {
			values[i] = escapeCSV(formatValue(result[col]))
		}
		_, _ = fmt.Fprintln(w, strings.Join(values, ","))
	}
	return nil
}

func renderResultsMarkdown(w io.Writer, cols []string, results []map[string]any) error {
	if len(results) == 0 {
		_, _ = fmt.Fprintln(w, "(0 rows)")
		return nil
	}

	// Header
	_, _ = fmt.Fprintf(w, "| %s |\n", strings.Join(cols, " | "))
	// Separator
	seps := make([]string, len(cols))
	for i := range seps {
		seps[i] = "---"
	}
	_, _ = fmt.Fprintf(w, "| %s |\n", strings.Join(seps, " | "))

	// Rows
	for _, result := range results {
		values := make([]string, len(cols))
		for i, col := range cols {
			values[i] = formatValue(result[col])
		}
		_, _ = fmt.Fprintf(w, "| %s |\n", strings.Join(values, " | "))
	}
	return nil
}

func formatValue(v any) string {
	if v == nil {
		return "NULL"
	}
	return fmt.Sprintf("%v", v)
}

func escapeCSV(s string) string {
	if strings.ContainsAny(s, ",\"\n") {
		return `"` + strings.ReplaceAll(s, `"`, `""`) + `"`
	}
	return s
}

// Helper functions for subcommands

func listTablesFromEngine(ctx context.Context, w io.Writer, eng *engine.Engine, format string) error {
	tables, err := eng.ListTables(ctx)
	if err != nil {
		return err
	}

	results := make([]map[string]any, 0, len(tables))
	for _, name := range tables {
		results = append(results, map[string]any{"name": name})
	}
	return renderCollected(w, []string{"name"}, results, format)
}

func showSchemaFromEngine(ctx context.Context, w io.Writer, eng *engine.Engine, tableName, format string) error {
	meta, err := eng.TableMetadata(ctx, tableName)
	if err != nil {
		return fmt.Errorf("table '%s' not found: %w", tableName, err)
	}

	columns := make([]columnInfo, 0, len(meta.Columns))
	for _, col := range meta.Columns {
		nullable := "YES"
		if !col.Nullable {
			nullable = "NO"
		}
		columns = append(columns, columnInfo{
			Name:     col.Name,
			Type:     col.Type,
			Nullable: nullable,
		})
	}

	// Render based on format
	if format == "json" {
		return renderSchemaJSON(w, meta.Name, meta.RowCount, columns)
	}

	// Default: formatted text output
	_, _ = fmt.Fprintf(w, "Table: %s\n", meta.Name)
	_, _ = fmt.Fprintln(w, strings.Repeat("-", 60))

	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"Column", "Type", "Nullable"})

	for _, col := range columns {
		t.AppendRow(table.Row{col.Name, col.Type, col.Nullable})
	}
	t.Render()

	_, _ = fmt.Fprintf(w, "(%d rows)\n", meta.RowCount)
	return nil
}

// columnInfo represents schema column information.
type columnInfo struct {
	Name     string `json:"name"`
	Type     string `json:"type"`
	Nullable string `json:"nullable"`
}

type schemaOutput struct {
	Name     string       `json:"name"`
	RowCount int64        `json:"row_count"`
	Columns  []columnInfo `json:"columns"`
}

func renderSchemaJSON(w io.Writer, tableName string, rowCount int64, columns []columnInfo) error {
	schema := schemaOutput{
		Name:     tableName,
		RowCount: rowCount,
		Columns:  columns,
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(schema)
}
