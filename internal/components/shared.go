// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package components

import (
	"fmt"
	"time"

	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

// Logo renders the activity mark next to the product name.
func Logo(siteName string) g.Node {
	return Div(
		Class("flex items-center gap-2 font-bold text-xl tracking-tight"),
		Icon("activity", "size-6 text-blue-500"),
		Span(g.Text(siteName)),
	)
}

// Icon renders a lucide icon through Iconify. Icons are decorative.
func Icon(name, classes string) g.Node {
	return Span(
		Class("iconify inline-block "+classes),
		g.Attr("data-icon", "lucide:"+name),
		Aria("hidden", "true"),
	)
}

// FadeIn wraps children in a container that starts hidden and offset and
// settles the first time it scrolls into view. reveal.js flips the
// container to visible and stops observing it; delay staggers siblings.
func FadeIn(delay time.Duration, children ...g.Node) g.Node {
	return Div(
		Class("reveal"),
		Data("reveal", ""),
		g.If(delay > 0, Style(fmt.Sprintf("--reveal-delay:%dms", delay.Milliseconds()))),
		g.Group(children),
	)
}

// hx renders the HTMX attributes that swap target with the response of
// GET url. The href of the same element keeps the link working without
// JavaScript.
func hx(url, target, swap string) g.Node {
	return g.Group([]g.Node{
		g.Attr("hx-get", url),
		g.Attr("hx-target", target),
		g.Attr("hx-swap", swap),
	})
}

func boolAttr(v bool) string {
	if v {
		return "true"
	}
	return "false"
}
