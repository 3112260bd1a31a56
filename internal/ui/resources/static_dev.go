//go:build dev

package resources

import (
	"log/slog"
	"net/http"
	"path/filepath"
	"runtime"
)

// Handler serves static assets straight from the source tree, so CSS
// edits show up on the next reload without rebuilding.
func Handler() http.Handler {
	dir := sourceStaticDir()
	slog.Info("static assets served from filesystem", "path", dir)
	return http.StripPrefix("/static/", http.FileServer(http.Dir(dir)))
}

// sourceStaticDir locates the static directory next to this file, so
// dev mode works from any working directory.
func sourceStaticDir() string {
	_, file, _, ok := runtime.Caller(0)
	if !ok {
		return StaticDirectoryPath
	}
	return filepath.Join(filepath.Dir(file), "static")
}

// StaticPath returns the URL path for a static asset.
func StaticPath(name string) string {
	return "/static/" + name
}
