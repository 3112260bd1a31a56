package movies

import (
	"github.com/go-chi/chi/v5"
	"github.com/gorilla/sessions"

	"github.com/reeldash/reeldash/internal/dataset"
)

// SetupRoutes configures routes for the movies feature.
func SetupRoutes(router chi.Router, ds *dataset.Dataset, sessionStore sessions.Store, pageSize int) error {
	handlers := NewHandlers(ds, sessionStore, pageSize)

	router.Get("/movies", handlers.Page)
	router.Get("/movies/view", handlers.View)

	return nil
}
