// Package output provides mode-aware rendering for CLI commands.
//
// Commands render through a Renderer that adapts to the environment:
// styled text on a terminal, markdown when piped, and JSON on request.
// The auto mode picks text or markdown based on whether stdout is a TTY.
package output

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"golang.org/x/term"
)

// Mode is the output rendering mode.
type Mode string

// Supported output modes.
const (
	ModeAuto     Mode = "auto"
	ModeText     Mode = "text"
	ModeMarkdown Mode = "markdown"
	ModeJSON     Mode = "json"
)

// Renderer writes command output in a given mode.
type Renderer struct {
	out       io.Writer
	errOut    io.Writer
	mode      Mode
	effective Mode
	styles    *Styles
}

// NewRenderer creates a renderer for the given writers and mode.
// An empty or unknown mode is treated as auto.
func NewRenderer(out, errOut io.Writer, mode Mode) *Renderer {
	return &Renderer{
		out:       out,
		errOut:    errOut,
		mode:      mode,
		effective: resolveMode(mode, out),
		styles:    newStyles(out),
	}
}

// resolveMode maps auto to text or markdown depending on the writer.
func resolveMode(mode Mode, out io.Writer) Mode {
	switch mode {
	case ModeText, ModeMarkdown, ModeJSON:
		return mode
	case "md":
		return ModeMarkdown
	}
	if isTerminalWriter(out) {
		return ModeText
	}
	return ModeMarkdown
}

func isTerminalWriter(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}

// EffectiveMode returns the resolved mode (auto becomes text or markdown).
func (r *Renderer) EffectiveMode() Mode {
	return r.effective
}

// Out returns the output writer, for table writers that mirror output.
func (r *Renderer) Out() io.Writer {
	return r.out
}

// Styles returns the lipgloss styles for this renderer's writer.
// Styles degrade to plain text automatically when the writer is not a TTY.
func (r *Renderer) Styles() *Styles {
	return r.styles
}

// Println writes a line to the output writer.
func (r *Renderer) Println(a ...any) {
	_, _ = fmt.Fprintln(r.out, a...)
}

// Printf writes formatted output to the output writer.
func (r *Renderer) Printf(format string, a ...any) {
	_, _ = fmt.Fprintf(r.out, format, a...)
}

// JSON writes v as indented JSON to the output writer.
func (r *Renderer) JSON(v any) error {
	enc := json.NewEncoder(r.out)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// Header writes a section header appropriate for the effective mode.
func (r *Renderer) Header(level int, text string) {
	if r.effective == ModeMarkdown {
		r.Println(FormatHeader(level, text))
		return
	}
	style := r.styles.Header1
	if level > 1 {
		style = r.styles.Header2
	}
	r.Println(style.Render(text))
}

// Success writes a success message with a check mark.
func (r *Renderer) Success(msg string) {
	if r.effective == ModeMarkdown {
		r.Println(msg)
		return
	}
	r.Printf("%s %s\n", r.styles.StatusSuccess.String(), msg)
}

// Warning writes a warning message to the error writer.
func (r *Renderer) Warning(msg string) {
	if r.effective == ModeMarkdown {
		_, _ = fmt.Fprintf(r.errOut, "Warning: %s\n", msg)
		return
	}
	_, _ = fmt.Fprintf(r.errOut, "%s %s\n", r.styles.Warning.Render("!"), msg)
}

// StatusLine writes an indented per-item status line, e.g. for created files.
// status is one of "success", "failed", or anything else for a neutral marker.
func (r *Renderer) StatusLine(name, status, detail string) {
	var icon string
	switch status {
	case "success":
		icon = r.styles.StatusSuccess.String()
	case "failed":
		icon = r.styles.StatusFailed.String()
	default:
		icon = "-"
	}
	if r.effective == ModeMarkdown {
		icon = "-"
	}

	line := fmt.Sprintf("  %s %s", icon, name)
	if detail != "" {
		line += " " + r.styles.Muted.Render("("+detail+")")
	}
	r.Println(line)
}
