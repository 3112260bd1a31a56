// This file registers the DuckDB engine with the adapter registry.
// Import the package with a blank identifier to make the engine
// available:
//
//	import _ "github.com/reeldash/reeldash/pkg/adapters/duckdb"

package duckdb

import (
	"log/slog"

	"github.com/reeldash/reeldash/pkg/adapter"
)

func init() {
	adapter.Register("duckdb", func(logger *slog.Logger) adapter.Adapter { return New(logger) })
}
