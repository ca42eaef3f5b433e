// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package components builds the site's pages as gomponents node trees.
package components

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

const (
	tailwindCDN = "https://cdn.tailwindcss.com"
	htmxCDN     = "https://unpkg.com/htmx.org@2.0.4"
	iconifyCDN  = "https://code.iconify.design/3/3.1.1/iconify.min.js"
)

// Compiled asset paths relative to /static/. `make assets` produces them.
const (
	SiteCSSFile = "css/site.css"
	HTMXFile    = "js/htmx.min.js"
)

// Assets says which compiled files the layout may reference under
// /static/. Anything missing is loaded from its CDN instead.
type Assets struct {
	SiteCSS bool
	HTMX    bool
}

// PageConfig holds the document-level settings of a page.
type PageConfig struct {
	Title       string
	Description string
	SiteName    string
	Assets      Assets
}

// Layout wraps content in the HTML document shell.
func Layout(config PageConfig, content ...g.Node) g.Node {
	if config.SiteName == "" {
		config.SiteName = "TimeUp"
	}
	title := config.SiteName + " - Uptime monitoring for busy engineers"
	if config.Title != "" {
		title = config.Title + " | " + config.SiteName
	}
	if config.Description == "" {
		config.Description = "Monitor your website's uptime, SSL certificates, and API performance from locations around the world."
	}

	return Doctype(
		HTML(
			Lang("en"),
			Head(
				Meta(Charset("utf-8")),
				Meta(Name("viewport"), Content("width=device-width, initial-scale=1.0")),
				TitleEl(g.Text(title)),
				Meta(Name("description"), Content(config.Description)),

				Meta(g.Attr("property", "og:title"), Content(title)),
				Meta(g.Attr("property", "og:description"), Content(config.Description)),
				Meta(g.Attr("property", "og:type"), Content("website")),

				g.If(config.Assets.SiteCSS, Link(Rel("stylesheet"), Href("/static/"+SiteCSSFile))),
				g.If(!config.Assets.SiteCSS, Script(Src(tailwindCDN))),
				g.If(config.Assets.HTMX, Script(Src("/static/"+HTMXFile))),
				g.If(!config.Assets.HTMX, Script(Src(htmxCDN))),
				Link(Rel("stylesheet"), Href("/static/css/reveal.css")),
				Script(Src(iconifyCDN)),
				Script(Src("/static/js/reveal.js"), Defer()),
				// Without scripts nothing would ever reveal the sections.
				g.El("noscript", StyleEl(g.Raw("[data-reveal]{opacity:1;transform:none}"))),
			),
			Body(
				Class("min-h-screen bg-[#030712] text-white selection:bg-blue-500/30 overflow-x-hidden"),
				g.Group(content),
			),
		),
	)
}
