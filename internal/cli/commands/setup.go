package commands

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/reeldash/reeldash/internal/cli/config"
	"github.com/reeldash/reeldash/internal/cli/output"
	"github.com/reeldash/reeldash/internal/dataset"
	"github.com/reeldash/reeldash/internal/engine"
)

// CommandContext holds common dependencies for CLI commands.
type CommandContext struct {
	Cfg      *config.Config
	Logger   *slog.Logger
	Dataset  *dataset.Dataset
	Engine   *engine.Engine
	Renderer *output.Renderer
}

// NewCommandContext creates a CommandContext with the dataset loaded and an
// engine ready to connect. Returns the context and a cleanup function that
// must be called (typically via defer).
func NewCommandContext(cmd *cobra.Command) (*CommandContext, func(), error) {
	cfg := getConfig()
	logger := config.GetLogger(cmd.Context())

	ds, err := loadDataset(cfg, logger)
	if err != nil {
		return nil, nil, err
	}

	eng := engine.New(engine.Config{
		Adapter: cfg.Engine.ToAdapterConfig(),
		Dataset: ds,
		Logger:  logger,
	})

	mode := output.Mode(cfg.OutputFormat)
	r := output.NewRenderer(cmd.OutOrStdout(), cmd.ErrOrStderr(), mode)

	cleanup := func() {
		_ = eng.Close()
	}

	return &CommandContext{
		Cfg:      cfg,
		Logger:   logger,
		Dataset:  ds,
		Engine:   eng,
		Renderer: r,
	}, cleanup, nil
}

// NewCommandContextWithoutEngine creates a CommandContext without an engine.
// Used by commands that aggregate in memory and never run SQL.
func NewCommandContextWithoutEngine(cmd *cobra.Command) (*CommandContext, error) {
	cfg := getConfig()
	logger := config.GetLogger(cmd.Context())

	ds, err := loadDataset(cfg, logger)
	if err != nil {
		return nil, err
	}

	mode := output.Mode(cfg.OutputFormat)
	r := output.NewRenderer(cmd.OutOrStdout(), cmd.ErrOrStderr(), mode)

	return &CommandContext{
		Cfg:      cfg,
		Logger:   logger,
		Dataset:  ds,
		Renderer: r,
	}, nil
}

// Helper functions shared across commands

// getConfig returns the current configuration.
// It uses config.GetCurrentConfig() if available, otherwise falls back to
// environment variables. The fallback keeps helpers usable in tests that
// never run the root command.
func getConfig() *config.Config {
	if cfg := config.GetCurrentConfig(); cfg != nil {
		return cfg
	}

	datasetPath := getEnvOrDefault("REELDASH_DATASET", config.DefaultDatasetFile)
	engineType := getEnvOrDefault("REELDASH_ENGINE__TYPE", config.DefaultEngineType)
	verbose := os.Getenv("REELDASH_VERBOSE") == "true"
	outputFormat := os.Getenv("REELDASH_OUTPUT")

	return &config.Config{
		Dataset:      &config.DatasetConfig{Path: datasetPath},
		Engine:       &config.EngineConfig{Type: engineType},
		Verbose:      verbose,
		OutputFormat: outputFormat,
	}
}

func getEnvOrDefault(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}

// loadDataset validates and loads the configured dataset file.
func loadDataset(cfg *config.Config, logger *slog.Logger) (*dataset.Dataset, error) {
	if err := cfg.ValidateDataset(); err != nil {
		return nil, err
	}

	ds, err := dataset.Load(cfg.DatasetPath())
	if err != nil {
		return nil, err
	}

	st := ds.Stats()
	logger.Debug("loaded dataset",
		"path", cfg.DatasetPath(),
		"rows", st.Rows,
		"box_office_fallbacks", st.BoxOfficeFallbacks,
		"missing_ratings", st.MissingRatings,
		"missing_certificates", st.MissingCertificates,
	)
	return ds, nil
}
