// Package testutil provides test utilities for CLI testing.
package testutil

import (
	"bytes"
	"os"
	"path/filepath"
	"regexp"
	"testing"

	"github.com/reeldash/reeldash/internal/cli/output"
)

// SampleCSV is a minimal Top 250 export used by command tests. It
// carries the quirks the cleaning rules have to handle: a fallback
// box office value, a suffix amount, and a row with no rating.
const SampleCSV = `name,year,certificate,genre,directors,casts,rating,run_time,box_office
The Shawshank Redemption,1994,R,Drama,Frank Darabont,"Tim Robbins, Morgan Freeman",9.3,2h 22m,"$28,884,504"
The Godfather,1972,R,"Crime, Drama",Francis Ford Coppola,"Marlon Brando, Al Pacino",9.2,2h 55m,"$250,341,816"
The Dark Knight,2008,PG-13,"Action, Crime, Drama",Christopher Nolan,"Christian Bale, Heath Ledger",9.0,2h 32m,$534.9M
12 Angry Men,1957,Approved,"Crime, Drama",Sidney Lumet,"Henry Fonda, Lee J. Cobb",9.0,1h 36m,Not Available
The Kid,1921,,"Comedy, Drama, Family",Charlie Chaplin,"Charlie Chaplin, Edna Purviance",,1h 8m,$250K
`

// WriteSampleDataset writes SampleCSV into a temp directory and
// returns the file path.
func WriteSampleDataset(t *testing.T) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "movies.csv")
	if err := os.WriteFile(path, []byte(SampleCSV), 0600); err != nil {
		t.Fatalf("failed to write sample dataset: %v", err)
	}
	return path
}

// TestRenderer wraps a Renderer for testing with captured output buffers.
type TestRenderer struct {
	*output.Renderer
	Out    *bytes.Buffer
	ErrOut *bytes.Buffer
}

// NewTestRenderer creates a test renderer in the given mode. Output is
// captured in buffers for inspection; buffers are never TTYs, so auto
// mode resolves to markdown and styled text degrades to plain text.
func NewTestRenderer(mode output.Mode) *TestRenderer {
	out := &bytes.Buffer{}
	errOut := &bytes.Buffer{}
	return &TestRenderer{
		Renderer: output.NewRenderer(out, errOut, mode),
		Out:      out,
		ErrOut:   errOut,
	}
}

// NewTestRendererText creates a test renderer in text mode.
func NewTestRendererText() *TestRenderer {
	return NewTestRenderer(output.ModeText)
}

// NewTestRendererMarkdown creates a test renderer in markdown mode.
func NewTestRendererMarkdown() *TestRenderer {
	return NewTestRenderer(output.ModeMarkdown)
}

// NewTestRendererJSON creates a test renderer in JSON mode.
func NewTestRendererJSON() *TestRenderer {
	return NewTestRenderer(output.ModeJSON)
}

// Output returns the captured stdout output as a string.
func (tr *TestRenderer) Output() string {
	return tr.Out.String()
}

// ErrorOutput returns the captured stderr output as a string.
func (tr *TestRenderer) ErrorOutput() string {
	return tr.ErrOut.String()
}

// Reset clears both output buffers.
func (tr *TestRenderer) Reset() {
	tr.Out.Reset()
	tr.ErrOut.Reset()
}

// ansiPattern matches ANSI escape codes.
var ansiPattern = regexp.MustCompile(`\x1b\[[0-9;]*[a-zA-Z]`)

// AssertNoANSI checks that a string contains no ANSI escape codes.
func AssertNoANSI(t *testing.T, s string) {
	t.Helper()
	if ansiPattern.MatchString(s) {
		t.Errorf("string contains ANSI escape codes: %q", s)
	}
}
