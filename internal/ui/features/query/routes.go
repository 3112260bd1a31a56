package query

import (
	"log/slog"

	"github.com/go-chi/chi/v5"

	"github.com/reeldash/reeldash/internal/engine"
)

// SetupRoutes configures routes for the query feature.
func SetupRoutes(router chi.Router, eng *engine.Engine, logger *slog.Logger) error {
	handlers := NewHandlers(eng, logger)

	router.Get("/query", handlers.Page)
	router.Post("/query/run", handlers.Run)

	return nil
}
