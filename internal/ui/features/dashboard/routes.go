package dashboard

import (
	"github.com/go-chi/chi/v5"
	"github.com/gorilla/sessions"

	"github.com/reeldash/reeldash/internal/dataset"
)

// SetupRoutes configures routes for the dashboard feature.
func SetupRoutes(router chi.Router, ds *dataset.Dataset, sessionStore sessions.Store) error {
	handlers := NewHandlers(ds, sessionStore)

	router.Get("/", handlers.Page)
	router.Get("/dashboard/view", handlers.View)

	return nil
}
