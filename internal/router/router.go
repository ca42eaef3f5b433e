// Package router sets up all HTTP routes and middleware chains for the
// TimeUp site. Pages and the hello endpoints share the global stack; HTMX
// partials are additionally rate limited per client.
package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"timeup/internal/handlers"
	"timeup/internal/middleware"
)

// New creates and returns the configured Chi router with all middleware
// and route groups wired up. static serves the embedded assets. With
// trustProxy the client address is taken from X-Forwarded-For/X-Real-IP,
// which only a reverse proxy that overwrites them makes safe.
func New(site *handlers.Site, limiter *middleware.RateLimiter, static http.Handler, trustProxy bool) chi.Router {
	r := chi.NewRouter()

	// Global middleware, applied to every request. RequestID runs first so
	// the request logger and recovery can tag their records with it.
	r.Use(middleware.RequestID)
	if trustProxy {
		r.Use(chimw.RealIP)
	}
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(chimw.CleanPath)
	r.Use(middleware.SecureHeaders)
	r.Use(chimw.Compress(5, "text/html", "text/css", "text/javascript", "application/javascript", "application/json"))

	r.Get("/health", healthHandler)
	r.Handle("/static/*", http.StripPrefix("/static/", static))

	// Pages.
	r.Get("/", site.Landing)
	r.Get("/auth", site.Auth)
	r.Get("/login", site.Auth)
	r.Get("/signup", site.Auth)
	r.Get("/about", site.About)

	// HTMX fragments.
	r.Route("/partials", func(r chi.Router) {
		r.Use(limiter.Middleware)
		r.Get("/menu", site.MenuPartial)
		r.Get("/faq", site.FAQPartial)
		r.Get("/auth", site.AuthPartial)
	})

	r.Get("/hello", handlers.Hello)
	r.Get("/hello/{name}", handlers.HelloName)

	r.NotFound(site.NotFound)

	return r
}

// healthHandler returns a simple JSON health check response.
func healthHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status":"ok"}`))
}
