// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"net/http"
	"net/url"

	"github.com/go-chi/chi/v5"
)

// Hello answers "hello".
func Hello(w http.ResponseWriter, r *http.Request) {
	writeText(w, "hello")
}

// HelloName answers "hello: <name>" for /hello/{name}. The name is
// percent-decoded; chi hands over the raw segment when the path carries
// escaped characters.
func HelloName(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")
	if decoded, err := url.PathUnescape(name); err == nil {
		name = decoded
	}
	writeText(w, "hello: "+name)
}

func writeText(w http.ResponseWriter, s string) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Header().Set("X-Content-Type-Options", "nosniff")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(s)) //nolint:errcheck
}
