// Package view renders the dashboard HTML. Templates are embedded in
// the binary and parsed once at startup; features render full pages
// on navigation and fragments for datastar patches.
package view

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"io"

	"github.com/reeldash/reeldash/internal/ui/features/common"
)

//go:embed templates/*.html
var templatesFS embed.FS

var templates = template.Must(
	template.New("reeldash").Funcs(template.FuncMap{
		"comma": common.Comma,
	}).ParseFS(templatesFS, "templates/*.html"),
)

// Render executes the named template into w.
func Render(w io.Writer, name string, data any) error {
	if err := templates.ExecuteTemplate(w, name, data); err != nil {
		return fmt.Errorf("render %s: %w", name, err)
	}
	return nil
}

// RenderString executes the named template and returns the HTML,
// for use as a datastar element patch.
func RenderString(name string, data any) (string, error) {
	var buf bytes.Buffer
	if err := Render(&buf, name, data); err != nil {
		return "", err
	}
	return buf.String(), nil
}
