package commands

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTopCommand_RatingDefault(t *testing.T) {
	output := runWithSampleDataset(t, NewTopCommand())

	assert.Contains(t, output, "# Top Movies by Rating")
	assert.Contains(t, output, "| 1 | The Shawshank Redemption | 1994 | 9.3 |")
	assert.Contains(t, output, "| 2 | The Godfather | 1972 | 9.2 |")
	// The unrated movie never appears on the rating board.
	assert.NotContains(t, output, "The Kid")
}

func TestTopCommand_RatingTiesKeepDatasetOrder(t *testing.T) {
	output := runWithSampleDataset(t, NewTopCommand(), "rating")

	// Dark Knight and 12 Angry Men both sit at 9.0; the earlier
	// dataset row ranks first.
	third := strings.Index(output, "| 3 | The Dark Knight")
	fourth := strings.Index(output, "| 4 | 12 Angry Men")
	assert.Greater(t, third, 0)
	assert.Greater(t, fourth, third)
}

func TestTopCommand_Gross(t *testing.T) {
	output := runWithSampleDataset(t, NewTopCommand(), "gross")

	assert.Contains(t, output, "# Top Movies by Box Office")
	assert.Contains(t, output, "| 1 | The Dark Knight | 2008 | $534,900,000 |")
	assert.Contains(t, output, "| 2 | The Godfather | 1972 | $250,341,816 |")
}

func TestTopCommand_Runtime(t *testing.T) {
	output := runWithSampleDataset(t, NewTopCommand(), "runtime")

	assert.Contains(t, output, "# Top Movies by Runtime")
	assert.Contains(t, output, "| 1 | The Godfather | 1972 | 175 min |")
}

func TestTopCommand_Limit(t *testing.T) {
	output := runWithSampleDataset(t, NewTopCommand(), "gross", "--limit", "1")

	assert.Contains(t, output, "The Dark Knight")
	assert.NotContains(t, output, "The Godfather")
}

func TestTopCommand_JSON(t *testing.T) {
	t.Setenv("REELDASH_OUTPUT", "json")
	output := runWithSampleDataset(t, NewTopCommand(), "gross", "--limit", "2")

	assert.Contains(t, output, `"metric": "gross"`)
	assert.Contains(t, output, `"rank": 1`)
	assert.Contains(t, output, `"name": "The Dark Knight"`)
	assert.Contains(t, output, `"value": 534900000`)
}

func TestTopCommand_FilteredSelection(t *testing.T) {
	output := runWithSampleDataset(t, NewTopCommand(), "rating", "--certificate", "R")

	assert.Contains(t, output, "| 1 | The Shawshank Redemption | 1994 | 9.3 |")
	assert.NotContains(t, output, "The Dark Knight")
}

func TestTopCommand_InvalidMetric(t *testing.T) {
	cmd := NewTopCommand()
	cmd.SetOut(new(bytes.Buffer))
	cmd.SetErr(new(bytes.Buffer))
	cmd.SetArgs([]string{"votes"})
	err := cmd.Execute()

	assert.Error(t, err)
}
