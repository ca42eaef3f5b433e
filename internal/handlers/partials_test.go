package handlers

import (
	"net/http"
	"strings"
	"testing"

	"timeup/internal/components"
)

func TestPartialsRedirectWithoutHTMX(t *testing.T) {
	s := testSite(nil)
	item := components.FAQItems[0]

	tests := []struct {
		name     string
		handler  http.HandlerFunc
		target   string
		location string
	}{
		{"menu open", s.MenuPartial, "/partials/menu?open=true", "/?menu=open"},
		{"menu closed", s.MenuPartial, "/partials/menu?open=false", "/"},
		{"faq item", s.FAQPartial, "/partials/faq?open=" + item.ID, "/?faq=" + item.ID + "#faq"},
		{"faq none", s.FAQPartial, "/partials/faq", "/#faq"},
		{"auth signup", s.AuthPartial, "/partials/auth?tab=signup", "/auth?tab=signup"},
		{"auth unknown", s.AuthPartial, "/partials/auth?tab=admin", "/auth?tab=login"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := get(tt.handler, tt.target, false)
			if w.Code != http.StatusSeeOther {
				t.Fatalf("expected 303, got %d", w.Code)
			}
			if got := w.Header().Get("Location"); got != tt.location {
				t.Errorf("Location: got %q, want %q", got, tt.location)
			}
		})
	}
}

func TestMenuPartialRoundTrip(t *testing.T) {
	s := testSite(nil)

	closed := get(s.MenuPartial, "/partials/menu?open=false", true).Body.String()
	open := get(s.MenuPartial, "/partials/menu?open=true", true).Body.String()

	if strings.Contains(closed, `id="mobile-menu-panel"`) {
		t.Error("closed fragment should not render the panel")
	}
	if !strings.Contains(open, `id="mobile-menu-panel"`) {
		t.Error("open fragment should render the panel")
	}
	// The open fragment's toggle requests the closed state, which is the
	// fragment we started from.
	if !strings.Contains(open, `hx-get="/partials/menu?open=false"`) {
		t.Error("open toggle should lead back to the closed state")
	}
	again := get(s.MenuPartial, "/partials/menu?open=false", true).Body.String()
	if again != closed {
		t.Error("closed -> open -> closed should return the starting markup")
	}
}

func TestMenuPartialLinksClose(t *testing.T) {
	s := testSite(nil)

	open := get(s.MenuPartial, "/partials/menu?open=true", true).Body.String()
	if !strings.Contains(open, `hx-swap="outerHTML show:#pricing:top"`) {
		t.Error("section links inside the open panel should swap in the closed menu")
	}
}

func TestFAQPartialSingleOpen(t *testing.T) {
	s := testSite(nil)
	first, second := components.FAQItems[0], components.FAQItems[1]

	w := get(s.FAQPartial, "/partials/faq?open="+first.ID, true)
	body := w.Body.String()
	if !strings.HasPrefix(body, `<div id="faq-list"`) {
		t.Fatalf("expected the FAQ list fragment, got %.60q", body)
	}
	if !strings.Contains(body, `id="faq-`+first.ID+`-answer"`) {
		t.Error("requested item should be open")
	}
	// Clicking the second item while the first is open.
	if !strings.Contains(body, `hx-get="/partials/faq?open=`+second.ID+`"`) {
		t.Fatal("second item should request its own open state")
	}

	body = get(s.FAQPartial, "/partials/faq?open="+second.ID, true).Body.String()
	if strings.Contains(body, `id="faq-`+first.ID+`-answer"`) {
		t.Error("opening the second item should close the first")
	}
	if strings.Count(body, `class="faq-answer`) != 1 {
		t.Error("exactly one item should be open")
	}
}

func TestAuthPartialSwitchesTabs(t *testing.T) {
	s := testSite(nil)

	tests := []struct {
		tab       string
		wantPanel string
		notPanel  string
	}{
		{"signup", "Create an account", "Welcome back"},
		{"login", "Welcome back", "Create an account"},
	}

	for _, tt := range tests {
		t.Run(tt.tab, func(t *testing.T) {
			w := get(s.AuthPartial, "/partials/auth?tab="+tt.tab, true)
			if w.Code != http.StatusOK {
				t.Fatalf("expected 200, got %d", w.Code)
			}
			body := w.Body.String()
			if !strings.Contains(body, tt.wantPanel) || strings.Contains(body, tt.notPanel) {
				t.Errorf("tab %s: wrong panel in %s", tt.tab, body)
			}
			if w.Header().Get("Cache-Control") != "no-store" {
				t.Error("fragments should not be stored by browsers")
			}
		})
	}
}
