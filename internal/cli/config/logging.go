package config

import (
	"io"
	"log/slog"
	"strings"
)

// NewLogger builds a logger from the log section of the config.
// Verbose forces debug level regardless of the configured level.
func (c *Config) NewLogger(w io.Writer) *slog.Logger {
	level := slog.LevelInfo
	format := DefaultLogFormat

	if c.Log != nil {
		level = parseLevel(c.Log.Level)
		if c.Log.Format != "" {
			format = c.Log.Format
		}
	}
	if c.Verbose {
		level = slog.LevelDebug
	}

	opts := &slog.HandlerOptions{Level: level}
	if strings.EqualFold(format, "json") {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
}

func parseLevel(s string) slog.Level {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
