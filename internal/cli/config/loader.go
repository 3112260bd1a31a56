package config

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/knadh/koanf/v2"
	"github.com/spf13/pflag"
)

// loggerKey is used to store logger in context.
type loggerKey struct{}

// maxUpwardSearchLevels limits how far up the directory tree to search for config files.
const maxUpwardSearchLevels = 10

// Package-level koanf instance and config file tracking
var (
	k              = koanf.New(".")
	configFileUsed string
	currentConfig  *Config // Stores the loaded config for access by commands
)

// findConfigFile finds the config file to use.
// Priority: explicit path > reeldash.yaml > reeldash.yml
func findConfigFile(explicit string) string {
	if explicit != "" {
		return explicit
	}
	if _, err := os.Stat("reeldash.yaml"); err == nil {
		return "reeldash.yaml"
	}
	if _, err := os.Stat("reeldash.yml"); err == nil {
		return "reeldash.yml"
	}
	return ""
}

// configExistsIn checks if a reeldash config file exists in the directory.
func configExistsIn(dir string) bool {
	for _, name := range []string{"reeldash.yaml", "reeldash.yml"} {
		if _, err := os.Stat(filepath.Join(dir, name)); err == nil {
			return true
		}
	}
	return false
}

// findProjectRootUpward searches upward from startDir for a reeldash config file.
// Returns empty string if not found within maxUpwardSearchLevels.
func findProjectRootUpward(startDir string) string {
	dir := startDir
	for i := 0; i < maxUpwardSearchLevels; i++ {
		if configExistsIn(dir) {
			return dir
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			// Reached filesystem root
			break
		}
		dir = parent
	}
	return ""
}

// inferProjectRoot determines the project root from the filesystem.
// Priority:
//  1. Search upward from CWD for reeldash.yaml
//  2. Current working directory
func inferProjectRoot() string {
	if cwd, err := os.Getwd(); err == nil {
		if root := findProjectRootUpward(cwd); root != "" {
			return root
		}
	}

	cwd, _ := os.Getwd()
	if cwd == "" {
		cwd = "."
	}
	return cwd
}

// resolvePathRelativeTo resolves a path relative to baseDir if it's not absolute.
// Returns the path unchanged if it's empty or already absolute.
func resolvePathRelativeTo(path, baseDir string) string {
	if path == "" || filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(baseDir, path)
}

// ResetConfig resets the koanf instance. Used for testing.
func ResetConfig() {
	k = koanf.New(".")
	configFileUsed = ""
	currentConfig = nil
}

// LoadConfig loads configuration from file, environment variables, and flags.
// Precedence (highest to lowest): flags > env vars > config file > defaults
func LoadConfig(cfgFile string, flags *pflag.FlagSet) (*Config, error) {
	// Reset koanf for fresh load
	k = koanf.New(".")

	projectRoot := inferProjectRoot()

	// Track paths that were explicitly provided as flags (already relative
	// to CWD). These are converted to absolute paths before the normal
	// resolution step so they are not re-resolved against the project root.
	var flagDataset, flagEnginePath string
	if flags != nil {
		if flags.Changed("dataset") {
			if v, _ := flags.GetString("dataset"); v != "" {
				flagDataset, _ = filepath.Abs(v)
			}
		}
		if flags.Changed("database") {
			if v, _ := flags.GetString("database"); v != "" {
				// Database path can be :memory: or a file path
				if v != ":memory:" {
					flagEnginePath, _ = filepath.Abs(v)
				} else {
					flagEnginePath = v
				}
			}
		}
	}

	// If an explicit config file is provided, use its directory as project root
	if cfgFile != "" {
		if absPath, err := filepath.Abs(cfgFile); err == nil {
			projectRoot = filepath.Dir(absPath)
		}
	}

	// 1. Load defaults
	if err := k.Load(confmap.Provider(map[string]interface{}{
		"dataset.path": DefaultDatasetFile,
		"engine.type":  DefaultEngineType,
		"log.level":    DefaultLogLevel,
		"log.format":   DefaultLogFormat,
		"verbose":      false,
		"output":       DefaultOutput,
		"ui.port":      8765,
		"ui.host":      "localhost",
		"ui.auto_open": true,
		"ui.theme":     "default",
		"ui.page_size": 25,
	}, "."), nil); err != nil {
		return nil, fmt.Errorf("failed to load defaults: %w", err)
	}

	// 2. Find and load config file
	// Search in project root if no explicit config file provided
	if cfgFile == "" {
		for _, name := range []string{"reeldash.yaml", "reeldash.yml"} {
			candidate := filepath.Join(projectRoot, name)
			if _, err := os.Stat(candidate); err == nil {
				cfgFile = candidate
				break
			}
		}
	}
	configFileUsed = findConfigFile(cfgFile)
	if configFileUsed != "" {
		if err := k.Load(file.Provider(configFileUsed), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("error reading config file %s: %w", configFileUsed, err)
		}
	}

	// 3. Load environment variables (REELDASH_ prefix)
	// Transform: REELDASH_OUTPUT -> output, REELDASH_ENGINE__TYPE -> engine.type
	if err := k.Load(env.Provider("REELDASH_", ".", func(s string) string {
		s = strings.ToLower(strings.TrimPrefix(s, "REELDASH_"))
		s = strings.ReplaceAll(s, "__", ".")
		// Bridge flat shorthand vars to their nested keys, mirroring the
		// flag mapping below.
		switch s {
		case "dataset":
			return "dataset.path"
		case "engine":
			return "engine.type"
		case "database":
			return "engine.path"
		}
		return s
	}), nil); err != nil {
		return nil, fmt.Errorf("failed to load env vars: %w", err)
	}

	// 4. Load flags (highest priority - overrides env vars and config file)
	if flags != nil {
		if err := k.Load(posflag.ProviderWithFlag(flags, ".", k, func(f *pflag.Flag) (string, interface{}) {
			// Only load flags that were explicitly set
			if !f.Changed {
				return "", nil
			}
			// Transform kebab-case to snake_case for config keys
			key := strings.ReplaceAll(f.Name, "-", "_")

			// EXPLICIT MAPPING: bridge flat flag names to nested config keys
			switch key {
			case "dataset":
				return "dataset.path", posflag.FlagVal(flags, f)
			case "engine":
				return "engine.type", posflag.FlagVal(flags, f)
			case "database":
				return "engine.path", posflag.FlagVal(flags, f)
			}

			return key, posflag.FlagVal(flags, f)
		}), nil); err != nil {
			return nil, fmt.Errorf("failed to load flags: %w", err)
		}
	}

	// 5. Unmarshal into Config struct
	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("unable to decode config: %w", err)
	}

	// 6. Set project root and resolve relative paths
	cfg.ProjectRoot = projectRoot

	if cfg.Dataset == nil {
		cfg.Dataset = &DatasetConfig{Path: DefaultDatasetFile}
	}
	if cfg.Engine == nil {
		cfg.Engine = &EngineConfig{Type: DefaultEngineType}
	}

	// Expand ${VAR} references before resolving against the project root.
	cfg.Dataset.Path = expandEnvVars(cfg.Dataset.Path)
	cfg.Engine.Path = expandEnvVars(cfg.Engine.Path)

	// For paths explicitly provided via flags, use the pre-computed absolute
	// paths (already computed relative to CWD at flag parse time).
	// For paths from config file or defaults, resolve relative to project root.
	if flagDataset != "" {
		cfg.Dataset.Path = flagDataset
	} else {
		cfg.Dataset.Path = resolvePathRelativeTo(cfg.Dataset.Path, projectRoot)
	}
	if flagEnginePath != "" {
		cfg.Engine.Path = flagEnginePath
	} else if cfg.Engine.Path != "" && cfg.Engine.Path != ":memory:" {
		cfg.Engine.Path = resolvePathRelativeTo(cfg.Engine.Path, projectRoot)
	}

	// Validate engine configuration
	if err := cfg.Engine.Validate(); err != nil {
		return nil, fmt.Errorf("invalid engine configuration: %w", err)
	}

	// Store config for access by commands
	currentConfig = &cfg

	return &cfg, nil
}

// GetConfigFileUsed returns the path to the config file being used, if any.
func GetConfigFileUsed() string {
	return configFileUsed
}

// GetCurrentConfig returns the currently loaded configuration.
// This is available after LoadConfig is called.
func GetCurrentConfig() *Config {
	return currentConfig
}

// WithLogger returns a context carrying the given logger.
func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, loggerKey{}, logger)
}

// GetLogger retrieves the logger from the command context.
func GetLogger(ctx context.Context) *slog.Logger {
	if l, ok := ctx.Value(loggerKey{}).(*slog.Logger); ok {
		return l
	}
	// Return discard logger as safe fallback
	return slog.New(slog.DiscardHandler)
}

// expandEnvVars expands ${VAR} patterns in a string with environment variable values.
func expandEnvVars(s string) string {
	// Match ${VAR} pattern
	re := regexp.MustCompile(`\$\{([^}]+)\}`)
	return re.ReplaceAllStringFunc(s, func(match string) string {
		// Extract variable name from ${VAR}
		varName := match[2 : len(match)-1]
		if val := os.Getenv(varName); val != "" {
			return val
		}
		return match // Return original if not found
	})
}
