// Package engine exposes the cleaned movie dataset through an
// embedded SQL engine for ad-hoc queries. It connects the configured
// adapter lazily and seeds the movies table on first use.
package engine

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/reeldash/reeldash/internal/dataset"
	"github.com/reeldash/reeldash/pkg/adapter"
)

// Engine owns the adapter connection and the seeded tables.
type Engine struct {
	db          adapter.Adapter
	dbConfig    adapter.Config
	dbConnected bool
	dbMu        sync.Mutex

	ds     *dataset.Dataset
	logger *slog.Logger
}

// Config holds engine configuration.
type Config struct {
	// Adapter selects and configures the embedded engine.
	Adapter adapter.Config
	// Dataset is the cleaned table to seed.
	Dataset *dataset.Dataset
	// Logger is the structured logger (optional, uses discard if nil)
	Logger *slog.Logger
}

// New creates an engine with a lazy adapter connection. The adapter
// is connected and seeded on the first query.
func New(cfg Config) *Engine {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	dbConfig := cfg.Adapter
	if dbConfig.Type == "" {
		dbConfig.Type = "duckdb"
	}

	return &Engine{
		dbConfig: dbConfig,
		ds:       cfg.Dataset,
		logger:   logger,
	}
}

// ensureConnected lazily connects the adapter and seeds the tables.
func (e *Engine) ensureConnected(ctx context.Context) error {
	e.dbMu.Lock()
	defer e.dbMu.Unlock()

	if e.dbConnected {
		return nil
	}

	e.logger.Debug("connecting engine", "engine_type", e.dbConfig.Type)

	db, err := adapter.NewAdapter(e.dbConfig, e.logger)
	if err != nil {
		return fmt.Errorf("failed to create engine adapter: %w", err)
	}
	if err := db.Connect(ctx, e.dbConfig); err != nil {
		return fmt.Errorf("failed to connect engine: %w", err)
	}

	e.db = db
	e.dbConnected = true

	if err := e.seed(ctx); err != nil {
		e.db = nil
		e.dbConnected = false
		_ = db.Close()
		return err
	}

	e.logger.Debug("engine ready", "engine_type", e.dbConfig.Type)
	return nil
}

// Query runs a SQL statement against the seeded engine.
func (e *Engine) Query(ctx context.Context, sql string, args ...any) (*adapter.Rows, error) {
	if err := e.ensureConnected(ctx); err != nil {
		return nil, err
	}
	return e.db.Query(ctx, sql, args...)
}

// ListTables returns the names of the seeded tables.
func (e *Engine) ListTables(ctx context.Context) ([]string, error) {
	if err := e.ensureConnected(ctx); err != nil {
		return nil, err
	}
	return e.db.ListTables(ctx)
}

// TableMetadata returns column and row-count metadata for a table.
func (e *Engine) TableMetadata(ctx context.Context, table string) (*adapter.TableMetadata, error) {
	if err := e.ensureConnected(ctx); err != nil {
		return nil, err
	}
	return e.db.GetTableMetadata(ctx, table)
}

// Type returns the configured engine type.
func (e *Engine) Type() string {
	return e.dbConfig.Type
}

// Close releases the adapter connection.
func (e *Engine) Close() error {
	e.dbMu.Lock()
	defer e.dbMu.Unlock()

	if e.db == nil {
		return nil
	}
	e.logger.Debug("closing engine")
	err := e.db.Close()
	e.db = nil
	e.dbConnected = false
	return err
}
