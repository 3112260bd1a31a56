// Package adapter defines the embedded SQL engine contract for
// ReelDash's ad-hoc query surface.
//
// Concrete engine implementations live in pkg/adapters/ subdirectories
// and register themselves with this package's registry; the movies
// table is seeded into whichever engine the configuration selects.
package adapter

import (
	"context"
	"database/sql"
)

// Config holds the settings for opening an engine.
type Config struct {
	// Type selects the registered engine ("duckdb", "sqlite").
	Type string
	// Path is the database location. Empty means in-memory, which is
	// the only mode ReelDash uses: nothing is persisted.
	Path string
	// Params carries engine-specific settings, decoded by the engine.
	Params map[string]any
}

// Column describes one column of an engine table.
type Column struct {
	Name     string
	Type     string
	Nullable bool
	Position int
}

// TableMetadata describes an engine table.
type TableMetadata struct {
	Name     string
	Columns  []Column
	RowCount int64
}

// Rows wraps sql.Rows so callers stay decoupled from database/sql in
// their signatures.
type Rows struct {
	*sql.Rows
}

// Adapter is the interface every embedded engine implements.
type Adapter interface {
	// Connect opens the engine using the provided config.
	Connect(ctx context.Context, cfg Config) error

	// Close releases the engine and its resources.
	Close() error

	// Exec runs a statement that returns no rows.
	Exec(ctx context.Context, sql string, args ...any) error

	// Query runs a statement that returns rows.
	Query(ctx context.Context, sql string, args ...any) (*Rows, error)

	// ListTables returns the table names visible to queries, sorted.
	ListTables(ctx context.Context) ([]string, error)

	// GetTableMetadata retrieves column and row-count metadata.
	GetTableMetadata(ctx context.Context, table string) (*TableMetadata, error)

	// LoadCSV loads a CSV file into a table, creating it with an
	// inferred schema. Engines without native CSV ingestion read the
	// file themselves and store raw text columns.
	LoadCSV(ctx context.Context, tableName, filePath string) error
}
