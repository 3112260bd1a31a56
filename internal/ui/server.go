// Package ui provides the local web dashboard for ReelDash.
package ui

import (
	"context"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/gorilla/sessions"
	"golang.org/x/sync/errgroup"

	"github.com/reeldash/reeldash/internal/dataset"
	"github.com/reeldash/reeldash/internal/engine"
	"github.com/reeldash/reeldash/internal/ui/router"
)

// Server is the dashboard HTTP server.
type Server struct {
	dataset      *dataset.Dataset
	engine       *engine.Engine
	sessionStore *sessions.CookieStore
	host         string
	port         int
	pageSize     int
	logger       *slog.Logger
}

// Config holds configuration for the dashboard server.
type Config struct {
	Dataset       *dataset.Dataset
	Engine        *engine.Engine
	Host          string
	Port          int
	PageSize      int
	SessionSecret string
	Logger        *slog.Logger
}

// NewServer creates a new dashboard server instance. Sessions only
// remember the last filter selection per browser; nothing else is
// stored between requests.
func NewServer(cfg Config) *Server {
	sessionStore := sessions.NewCookieStore([]byte(cfg.SessionSecret))
	sessionStore.MaxAge(86400 * 30) // 30 days
	sessionStore.Options.Path = "/"
	sessionStore.Options.HttpOnly = true
	sessionStore.Options.SameSite = http.SameSiteLaxMode

	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	return &Server{
		dataset:      cfg.Dataset,
		engine:       cfg.Engine,
		sessionStore: sessionStore,
		host:         cfg.Host,
		port:         cfg.Port,
		pageSize:     cfg.PageSize,
		logger:       logger,
	}
}

// Serve starts the dashboard server and blocks until the context is
// cancelled.
func (s *Server) Serve(ctx context.Context) error {
	addr := fmt.Sprintf("%s:%d", s.host, s.port)
	s.logger.Info("starting dashboard server", "addr", fmt.Sprintf("http://%s", addr))

	eg, egctx := errgroup.WithContext(ctx)

	r := chi.NewMux()
	r.Use(
		middleware.RequestID,
		middleware.RealIP,
		middleware.Logger,
		middleware.Recoverer,
		middleware.Compress(5),
	)

	if err := router.SetupRoutes(r, router.Deps{
		Dataset:  s.dataset,
		Engine:   s.engine,
		Sessions: s.sessionStore,
		PageSize: s.pageSize,
		Logger:   s.logger,
	}); err != nil {
		return fmt.Errorf("failed to setup routes: %w", err)
	}

	srv := &http.Server{
		Addr:    addr,
		Handler: r,
		BaseContext: func(_ net.Listener) context.Context {
			return egctx
		},
		ReadHeaderTimeout: 10 * time.Second,
	}

	// Start HTTP server
	eg.Go(func() error {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			return fmt.Errorf("server error: %w", err)
		}
		return nil
	})

	// Graceful shutdown
	eg.Go(func() error {
		<-egctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		s.logger.Debug("shutting down dashboard server...")
		return srv.Shutdown(shutdownCtx)
	})

	return eg.Wait()
}
