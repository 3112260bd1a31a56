// Package commands tests for CLI command creation and wiring.
package commands

import (
	"bytes"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/reeldash/reeldash/internal/cli/config"
	"github.com/reeldash/reeldash/internal/cli/testutil"
)

// runWithSampleDataset executes a command against the sample dataset
// with config state reset, returning captured stdout+stderr.
func runWithSampleDataset(t *testing.T, cmd *cobra.Command, args ...string) string {
	t.Helper()

	config.ResetConfig()
	t.Setenv("REELDASH_DATASET", testutil.WriteSampleDataset(t))

	buf := new(bytes.Buffer)
	cmd.SetOut(buf)
	cmd.SetErr(buf)
	cmd.SetArgs(args)

	require.NoError(t, cmd.Execute())
	return buf.String()
}

func TestNewSummaryCommand(t *testing.T) {
	cmd := NewSummaryCommand()

	assert.Equal(t, "summary", cmd.Use)
	assert.NotEmpty(t, cmd.Short, "Short should not be empty")
	assert.NotEmpty(t, cmd.Example, "Example should not be empty")

	// Verify shared filter flags exist
	flags := []string{"certificate", "year-from", "year-to", "genre"}
	for _, flag := range flags {
		assert.NotNil(t, cmd.Flags().Lookup(flag), "flag %q should exist", flag)
	}
}

func TestNewTopCommand(t *testing.T) {
	cmd := NewTopCommand()

	assert.Equal(t, "top [rating|gross|runtime]", cmd.Use)
	assert.NotEmpty(t, cmd.Short, "Short should not be empty")
	assert.NotNil(t, cmd.Flags().Lookup("limit"), "flag limit should exist")
	assert.ElementsMatch(t, []string{"rating", "gross", "runtime"}, cmd.ValidArgs)
}

func TestNewBreakdownCommand(t *testing.T) {
	cmd := NewBreakdownCommand()

	assert.Equal(t, "breakdown [genre|certificate|director|year|actor]", cmd.Use)
	assert.NotEmpty(t, cmd.Short, "Short should not be empty")
	assert.NotNil(t, cmd.Flags().Lookup("limit"), "flag limit should exist")
}

func TestNewMoviesCommand(t *testing.T) {
	cmd := NewMoviesCommand()

	assert.Equal(t, "movies", cmd.Use)
	assert.NotEmpty(t, cmd.Short, "Short should not be empty")

	flags := []string{"columns", "limit", "certificate", "year-from", "year-to", "genre"}
	for _, flag := range flags {
		assert.NotNil(t, cmd.Flags().Lookup(flag), "flag %q should exist", flag)
	}
}

func TestNewDoctorCommand(t *testing.T) {
	cmd := NewDoctorCommand()

	assert.Equal(t, "doctor", cmd.Use)
	assert.NotEmpty(t, cmd.Short, "Short should not be empty")
	assert.NotNil(t, cmd.Flags().Lookup("format"), "flag format should exist")
}

func TestNewUICommand(t *testing.T) {
	cmd := NewUICommand()

	assert.Equal(t, "ui", cmd.Use)
	assert.NotEmpty(t, cmd.Short, "Short should not be empty")

	flags := []string{"port", "no-browser"}
	for _, flag := range flags {
		assert.NotNil(t, cmd.Flags().Lookup(flag), "flag %q should exist", flag)
	}
}

func TestNewBrowseCommand(t *testing.T) {
	cmd := NewBrowseCommand()

	assert.Equal(t, "browse", cmd.Use)
	assert.NotEmpty(t, cmd.Short, "Short should not be empty")
}
