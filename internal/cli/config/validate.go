package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/reeldash/reeldash/pkg/adapter"
)

// Validate checks if the engine configuration is valid.
// It uses the adapter registry to determine which engine types are available.
func (e *EngineConfig) Validate() error {
	if e.Type == "" {
		return fmt.Errorf("engine type is required")
	}

	// Use adapter registry as single source of truth
	if !adapter.IsRegistered(strings.ToLower(e.Type)) {
		return &adapter.UnknownEngineError{
			Type:      e.Type,
			Available: adapter.ListEngines(),
		}
	}

	return nil
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if c.DatasetPath() == "" {
		return fmt.Errorf("dataset path is required")
	}
	if c.Engine != nil {
		return c.Engine.Validate()
	}
	return nil
}

// ValidateDataset checks that the dataset file exists.
func (c *Config) ValidateDataset() error {
	path := c.DatasetPath()
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return fmt.Errorf("dataset file does not exist: %s\nHint: Download the IMDB Top 250 CSV or use --dataset to specify a different path", path)
	}
	return nil
}
