// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package middleware

import (
	"net/http"
	"strings"
)

// contentSecurityPolicy allows the CDN hosts the development layout loads
// TailwindCSS and HTMX from, the Iconify script and its icon API, and the
// placeholder image host used by the hero mockup. Tailwind's CDN build and
// htmx inject inline <style> tags.
var contentSecurityPolicy = strings.Join([]string{
	"default-src 'self'",
	"script-src 'self' https://cdn.tailwindcss.com https://unpkg.com https://code.iconify.design",
	"style-src 'self' 'unsafe-inline'",
	"img-src 'self' data: https://placehold.co",
	"connect-src 'self' https://api.iconify.design https://api.simplesvg.com https://api.unisvg.com",
	"frame-ancestors 'self'",
	"base-uri 'self'",
	"form-action 'self'",
}, "; ")

// SecureHeaders adds security-related HTTP headers to every response.
func SecureHeaders(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		h := w.Header()

		h.Set("X-Content-Type-Options", "nosniff")
		h.Set("X-Frame-Options", "SAMEORIGIN")
		// Legacy XSS filter off; the CSP below replaces it.
		h.Set("X-XSS-Protection", "0")
		h.Set("Referrer-Policy", "strict-origin-when-cross-origin")
		h.Set("Permissions-Policy", "interest-cohort=()")
		h.Set("Content-Security-Policy", contentSecurityPolicy)

		next.ServeHTTP(w, r)
	})
}
