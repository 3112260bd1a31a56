package commands

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMoviesCommand_DefaultColumns(t *testing.T) {
	output := runWithSampleDataset(t, NewMoviesCommand())

	assert.Contains(t, output, "| name | year | genre | rating |")
	assert.Contains(t, output, "| The Shawshank Redemption | 1994 | Drama | 9.3 |")
	assert.Contains(t, output, "| The Kid | 1921 | Comedy, Drama, Family |  |")
}

func TestMoviesCommand_CustomColumns(t *testing.T) {
	output := runWithSampleDataset(t, NewMoviesCommand(), "--columns", "name,box_office")

	assert.Contains(t, output, "| name | box_office |")
	assert.Contains(t, output, "| The Dark Knight | 534900000 |")
	assert.NotContains(t, output, "| year |")
}

func TestMoviesCommand_UnknownColumn(t *testing.T) {
	cmd := NewMoviesCommand()

	config := func() { // config state reset inline to keep the error path clean
	}
	config()

	cmd.SetArgs([]string{"--columns", "name,budget"})
	err := cmd.Execute()

	assert.Error(t, err)
	assert.Contains(t, err.Error(), `unknown column "budget"`)
}

func TestMoviesCommand_Limit(t *testing.T) {
	output := runWithSampleDataset(t, NewMoviesCommand(), "--limit", "2")

	assert.Contains(t, output, "The Shawshank Redemption")
	assert.Contains(t, output, "The Godfather")
	assert.NotContains(t, output, "The Dark Knight")
}

func TestMoviesCommand_Filtered(t *testing.T) {
	output := runWithSampleDataset(t, NewMoviesCommand(), "--genre", "Western")

	assert.Contains(t, output, emptyResultMessage)
}

func TestMoviesCommand_JSON(t *testing.T) {
	t.Setenv("REELDASH_OUTPUT", "json")
	output := runWithSampleDataset(t, NewMoviesCommand(), "--columns", "name,year", "--limit", "1")

	assert.Contains(t, output, `"name": "The Shawshank Redemption"`)
	assert.Contains(t, output, `"year": "1994"`)
}

func TestMoviesCommand_RowCountFooter(t *testing.T) {
	t.Setenv("REELDASH_OUTPUT", "text")
	output := runWithSampleDataset(t, NewMoviesCommand())

	assert.True(t, strings.Contains(output, "(5 movies)"), "text mode shows the row count footer")
}
