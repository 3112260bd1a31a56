// Package router sets up HTTP routes for the dashboard server.
package router

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/gorilla/sessions"

	"github.com/reeldash/reeldash/internal/dataset"
	"github.com/reeldash/reeldash/internal/engine"
	dashboardFeature "github.com/reeldash/reeldash/internal/ui/features/dashboard"
	moviesFeature "github.com/reeldash/reeldash/internal/ui/features/movies"
	queryFeature "github.com/reeldash/reeldash/internal/ui/features/query"
	"github.com/reeldash/reeldash/internal/ui/resources"
)

// Deps holds what every feature needs: the immutable dataset, the SQL
// engine, and the session store that remembers filter selections.
type Deps struct {
	Dataset  *dataset.Dataset
	Engine   *engine.Engine
	Sessions sessions.Store
	PageSize int
	Logger   *slog.Logger
}

// SetupRoutes configures all routes for the dashboard server.
func SetupRoutes(router chi.Router, deps Deps) error {
	// Static assets
	router.Handle("/static/*", resources.Handler())

	// Feature routes
	if err := dashboardFeature.SetupRoutes(router, deps.Dataset, deps.Sessions); err != nil {
		return err
	}

	if err := moviesFeature.SetupRoutes(router, deps.Dataset, deps.Sessions, deps.PageSize); err != nil {
		return err
	}

	if err := queryFeature.SetupRoutes(router, deps.Engine, deps.Logger); err != nil {
		return err
	}

	// Everything else lands on the dashboard
	router.NotFound(func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, "/", http.StatusTemporaryRedirect)
	})

	return nil
}
