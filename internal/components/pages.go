// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package components

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

// AboutPage renders the about placeholder.
func AboutPage(siteName string) []g.Node {
	return []g.Node{
		Main(
			Class("min-h-screen flex flex-col items-center justify-center gap-6 px-6"),
			A(Href("/"), Logo(siteName)),
			H1(Class("text-4xl font-bold"), g.Text("About")),
		),
	}
}

// NotFoundPage renders the branded 404 page for path.
func NotFoundPage(siteName, path string) []g.Node {
	return []g.Node{
		Main(
			Class("min-h-screen flex flex-col items-center justify-center gap-6 px-6 text-center"),
			A(Href("/"), Logo(siteName)),
			P(Class("text-sm font-mono text-blue-400"), g.Text("404")),
			H1(Class("text-4xl font-bold"), g.Text("Page not found")),
			P(Class("text-gray-400 max-w-md"), g.Textf("Nothing is monitored at %s. It may have moved, or it never existed.", path)),
			A(Href("/"), Class("px-6 py-3 bg-white text-black rounded-lg font-medium hover:bg-gray-200 transition-colors"), g.Text("Back to home")),
		),
	}
}
