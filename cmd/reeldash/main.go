// Package main is the entry point for the reeldash CLI.
package main

import (
	"os"

	"github.com/reeldash/reeldash/internal/cli"

	// Register the embedded SQL engines.
	_ "github.com/reeldash/reeldash/pkg/adapters/duckdb"
	_ "github.com/reeldash/reeldash/pkg/adapters/sqlite"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
