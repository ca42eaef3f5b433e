package web

import (
	"io/fs"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestStaticServesEmbeddedAssets(t *testing.T) {
	h, err := Static()
	if err != nil {
		t.Fatalf("Static() error: %v", err)
	}

	tests := []struct {
		path string
		want string
	}{
		{"/css/reveal.css", ".reveal.is-visible"},
		{"/js/reveal.js", "unobserve"},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			w := httptest.NewRecorder()
			h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, tt.path, nil))

			if w.Code != http.StatusOK {
				t.Fatalf("status: got %d, want 200", w.Code)
			}
			if !strings.Contains(w.Body.String(), tt.want) {
				t.Errorf("body missing %q", tt.want)
			}
			if got := w.Header().Get("Cache-Control"); got != "public, max-age=86400" {
				t.Errorf("Cache-Control: got %q", got)
			}
		})
	}
}

func TestStaticMissingAsset(t *testing.T) {
	h, err := Static()
	if err != nil {
		t.Fatalf("Static() error: %v", err)
	}

	tests := []struct {
		target string
		status int
	}{
		{"/js/missing.js", http.StatusNotFound},
		{"/css/site.css/../nope.css", http.StatusNotFound},
		{"/css/", http.StatusOK}, // directory listing
	}

	for _, tt := range tests {
		t.Run(tt.target, func(t *testing.T) {
			w := httptest.NewRecorder()
			h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, tt.target, nil))
			if w.Code != tt.status {
				t.Errorf("status: got %d, want %d", w.Code, tt.status)
			}
			if got := w.Header().Get("Cache-Control"); got != "" {
				t.Errorf("Cache-Control: got %q, want none", got)
			}
		})
	}
}

func TestAssetsRootedAtStatic(t *testing.T) {
	assets, err := Assets()
	if err != nil {
		t.Fatalf("Assets() error: %v", err)
	}
	for _, name := range []string{"css/reveal.css", "js/reveal.js", "css/input.css"} {
		if _, err := fs.Stat(assets, name); err != nil {
			t.Errorf("Stat(%q): %v", name, err)
		}
	}
}
