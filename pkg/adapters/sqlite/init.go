// This file registers the SQLite engine with the adapter registry.
// Import the package with a blank identifier to make the engine
// available:
//
//	import _ "github.com/reeldash/reeldash/pkg/adapters/sqlite"

package sqlite

import (
	"log/slog"

	"github.com/reeldash/reeldash/pkg/adapter"
)

func init() {
	adapter.Register("sqlite", func(logger *slog.Logger) adapter.Adapter { return New(logger) })
}
