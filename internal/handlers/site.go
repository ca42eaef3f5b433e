// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"context"
	"net/http"
	"time"

	"timeup/internal/cache"
	"timeup/internal/components"
	"timeup/internal/logging"
	"timeup/internal/render"
	"timeup/internal/ui"
)

// PageCache is the subset of cache.PageCache the site handlers use.
type PageCache interface {
	Get(ctx context.Context, key string) ([]byte, bool)
	Set(ctx context.Context, key string, html []byte)
}

// Site groups handlers for the marketing pages. Full page loads go through
// the page cache when one is configured; HTMX fragments never do.
type Site struct {
	renderer  *render.Renderer
	pageCache PageCache
	now       func() time.Time
}

// NewSite creates a new Site handler group. pageCache may be nil when
// Valkey is not configured.
func NewSite(rn *render.Renderer, pageCache PageCache) *Site {
	return &Site{renderer: rn, pageCache: pageCache, now: time.Now}
}

// Landing renders the landing page. ?menu=open expands the mobile menu and
// ?faq=<id> expands one FAQ item; other values fall back to the defaults.
func (s *Site) Landing(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	menu := ui.ParseMenu(q.Get("menu"))
	acc := ui.NewAccordion(components.FAQIDs()...)
	acc.Toggle(q.Get("faq"))

	open, _ := acc.Current()
	key := cache.PageKey(r.URL.Path, menuState(menu), faqState(open))

	s.serve(w, r, http.StatusOK, key, func() render.View {
		return render.View{
			Body: components.LandingPage(components.LandingState{
				SiteName: s.renderer.SiteName(),
				Year:     s.now().Year(),
				Menu:     menu,
				FAQ:      acc,
			}),
		}
	})
}

// Auth renders the login/signup page. The active tab comes from the path
// ("signup" anywhere in it selects signup) unless ?tab= overrides it.
func (s *Site) Auth(w http.ResponseWriter, r *http.Request) {
	tabs := ui.NewTabs(r.URL.Path)
	if tab, ok := ui.ParseTab(r.URL.Query().Get("tab")); ok {
		tabs.Select(tab)
	}

	key := cache.PageKey(r.URL.Path, "tab="+string(tabs.Active()))
	s.serve(w, r, http.StatusOK, key, func() render.View {
		return render.View{
			Title:    tabs.Active().Label(),
			Body:     components.AuthPage(s.renderer.SiteName(), tabs),
			Fragment: components.AuthTabs(tabs),
		}
	})
}

// About renders the about placeholder.
func (s *Site) About(w http.ResponseWriter, r *http.Request) {
	s.serve(w, r, http.StatusOK, cache.PageKey(r.URL.Path), func() render.View {
		return render.View{
			Title: "About",
			Body:  components.AboutPage(s.renderer.SiteName()),
		}
	})
}

// NotFound renders the branded 404 page. Unknown paths are unbounded, so
// the result is never cached.
func (s *Site) NotFound(w http.ResponseWriter, r *http.Request) {
	s.serve(w, r, http.StatusNotFound, "", func() render.View {
		return render.View{
			Title: "Page not found",
			Body:  components.NotFoundPage(s.renderer.SiteName(), r.URL.Path),
		}
	})
}

// serve answers from the page cache when possible, otherwise renders the
// view and stores full pages under key. An empty key disables caching.
func (s *Site) serve(w http.ResponseWriter, r *http.Request, status int, key string, view func() render.View) {
	ctx := r.Context()
	w.Header().Set("Vary", render.Vary)

	cacheable := s.pageCache != nil && key != "" && !render.IsHTMX(r)
	if cacheable {
		if cached, ok := s.pageCache.Get(ctx, key); ok {
			w.Header().Set("X-Cache", "HIT")
			render.Write(w, status, cached)
			return
		}
	}

	body, err := s.renderer.HTML(r, view())
	if err != nil {
		logging.From(ctx).Error("render page failed", "error", err, "key", key)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	if cacheable {
		s.pageCache.Set(ctx, key, body)
		w.Header().Set("X-Cache", "MISS")
	}
	render.Write(w, status, body)
}

func menuState(m ui.Menu) string {
	if m.IsOpen() {
		return "menu=" + ui.MenuOpen
	}
	return ""
}

func faqState(open string) string {
	if open == "" {
		return ""
	}
	return "faq=" + open
}
