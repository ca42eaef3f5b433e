// Package web provides embedded static assets (CSS, JS) for the site.
// In development, pages load TailwindCSS and HTMX from CDN; in production,
// the compiled and vendored files are embedded here and served at /static/.
package web

import (
	"embed"
	"io/fs"
	"net/http"
	"path"
	"strings"
)

// StaticFS embeds the web/static/ directory tree. `make assets` adds the
// compiled TailwindCSS (css/site.css) and the vendored HTMX file
// (js/htmx.min.js) before the binary is built; without them pages fall back
// to the CDN copies.
//
//go:embed all:static
var StaticFS embed.FS

// Assets returns the embedded tree rooted at static/, the layout /static/
// URLs resolve against.
func Assets() (fs.FS, error) {
	return fs.Sub(StaticFS, "static")
}

// Static returns a file server for the embedded assets. Files that exist
// may be cached by browsers for a day; misses are not cacheable.
func Static() (http.Handler, error) {
	assets, err := Assets()
	if err != nil {
		return nil, err
	}
	files := http.FileServerFS(assets)
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		name := strings.TrimPrefix(path.Clean("/"+r.URL.Path), "/")
		if info, err := fs.Stat(assets, name); err == nil && !info.IsDir() {
			w.Header().Set("Cache-Control", "public, max-age=86400")
		}
		files.ServeHTTP(w, r)
	}), nil
}
