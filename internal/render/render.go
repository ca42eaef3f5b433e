// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package render turns component trees into HTML responses. It supports
// full-page and HTMX partial rendering, detecting the request type via the
// HX-Request header.
package render

import (
	"bytes"
	"fmt"
	"io/fs"
	"net/http"

	g "maragu.dev/gomponents"

	"timeup/internal/components"
	"timeup/internal/logging"
)

// View is everything needed to answer one page request.
type View struct {
	Title       string   // Page title for <title>, empty for the site default
	Description string   // Meta description, empty for the site default
	Body        []g.Node // Page content inside <body>
	Fragment    g.Node   // Swap target sent to HTMX requests, nil sends Body
}

// Renderer renders views inside the site layout.
type Renderer struct {
	siteName string
	assets   components.Assets
}

// New creates a Renderer. When devMode is true, pages load TailwindCSS and
// HTMX from their CDNs; when false, they reference the compiled files found
// in static (rooted like /static/) and fall back to the CDN for the rest.
// static may be nil.
func New(devMode bool, siteName string, static fs.FS) *Renderer {
	rn := &Renderer{siteName: siteName}
	if !devMode && static != nil {
		rn.assets = components.Assets{
			SiteCSS: exists(static, components.SiteCSSFile),
			HTMX:    exists(static, components.HTMXFile),
		}
	}
	return rn
}

func exists(fsys fs.FS, name string) bool {
	info, err := fs.Stat(fsys, name)
	return err == nil && !info.IsDir()
}

// SiteName returns the brand the renderer puts in page titles.
func (rn *Renderer) SiteName() string {
	return rn.siteName
}

// Assets reports which compiled files the layout references.
func (rn *Renderer) Assets() components.Assets {
	return rn.assets
}

// HTML renders v for r. HTMX requests get only the fragment, full page
// loads get the complete layout.
func (rn *Renderer) HTML(r *http.Request, v View) ([]byte, error) {
	var node g.Node
	switch {
	case IsHTMX(r) && v.Fragment != nil:
		node = v.Fragment
	case IsHTMX(r):
		node = g.Group(v.Body)
	default:
		node = components.Layout(components.PageConfig{
			Title:       v.Title,
			Description: v.Description,
			SiteName:    rn.siteName,
			Assets:      rn.assets,
		}, v.Body...)
	}

	var buf bytes.Buffer
	if err := node.Render(&buf); err != nil {
		return nil, fmt.Errorf("render %s: %w", r.URL.Path, err)
	}
	return buf.Bytes(), nil
}

// Page renders v and writes it with status.
func (rn *Renderer) Page(w http.ResponseWriter, r *http.Request, status int, v View) {
	body, err := rn.HTML(r, v)
	if err != nil {
		logging.From(r.Context()).Error("render failed", "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
	Write(w, status, body)
}

// Write sends already rendered HTML.
func Write(w http.ResponseWriter, status int, body []byte) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	w.Write(body) //nolint:errcheck
}

// Vary lists the request headers that select between a page and a
// fragment.
const Vary = "HX-Request, HX-History-Restore-Request"

// IsHTMX returns true if the request was made by HTMX (has HX-Request
// header) and wants a fragment. History restores without a local snapshot
// replace the whole body, so they get the full page.
func IsHTMX(r *http.Request) bool {
	return r.Header.Get("HX-Request") == "true" &&
		r.Header.Get("HX-History-Restore-Request") != "true"
}
