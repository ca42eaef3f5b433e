// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"net/http"

	g "maragu.dev/gomponents"

	"timeup/internal/components"
	"timeup/internal/render"
	"timeup/internal/ui"
)

// MenuPartial returns the mobile menu for ?open=true|false. Requests that
// did not come from HTMX are redirected to the equivalent page.
func (s *Site) MenuPartial(w http.ResponseWriter, r *http.Request) {
	menu := ui.ParseMenu(r.URL.Query().Get("open"))
	s.fragment(w, r, components.MenuURL(menu), components.MobileMenu(menu))
}

// FAQPartial returns the FAQ list with ?open=<id> expanded. Unknown ids
// collapse every item.
func (s *Site) FAQPartial(w http.ResponseWriter, r *http.Request) {
	acc := ui.NewAccordion(components.FAQIDs()...)
	acc.Toggle(r.URL.Query().Get("open"))

	open, _ := acc.Current()
	s.fragment(w, r, components.FAQURL(open), components.FAQList(acc))
}

// AuthPartial returns the auth tab container with ?tab= active.
func (s *Site) AuthPartial(w http.ResponseWriter, r *http.Request) {
	tabs := ui.NewTabs(r.URL.Path)
	if tab, ok := ui.ParseTab(r.URL.Query().Get("tab")); ok {
		tabs.Select(tab)
	}
	s.fragment(w, r, components.AuthURL(tabs.Active()), components.AuthTabs(tabs))
}

// fragment writes node for HTMX requests and redirects everything else to
// pageURL, which renders the same state as a full page.
func (s *Site) fragment(w http.ResponseWriter, r *http.Request, pageURL string, node g.Node) {
	if !render.IsHTMX(r) {
		http.Redirect(w, r, pageURL, http.StatusSeeOther)
		return
	}
	w.Header().Set("Vary", render.Vary)
	w.Header().Set("Cache-Control", "no-store")
	s.renderer.Page(w, r, http.StatusOK, render.View{Fragment: node})
}
