// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package slug turns copy text into URL-fragment-safe identifiers. The FAQ
// accordion uses them as item ids in query strings and anchors.
package slug

import (
	"strings"
	"unicode"
)

// Generate lowercases s, keeps ASCII letters and digits, and joins the
// remaining words with single hyphens.
// Example: "How often are checks run?" → "how-often-are-checks-run"
func Generate(s string) string {
	var b strings.Builder
	pendingHyphen := false

	for _, r := range strings.ToLower(s) {
		switch {
		case r < unicode.MaxASCII && (unicode.IsLetter(r) || unicode.IsDigit(r)):
			if pendingHyphen && b.Len() > 0 {
				b.WriteByte('-')
			}
			pendingHyphen = false
			b.WriteRune(r)
		case unicode.IsSpace(r) || r == '-' || r == '_' || r == '/':
			pendingHyphen = true
		}
		// Other punctuation is dropped without splitting the word.
	}
	return b.String()
}

// Short returns Generate(s) cut to at most maxLen bytes, never ending in a
// partial word unless the first word alone is longer than maxLen.
func Short(s string, maxLen int) string {
	full := Generate(s)
	if maxLen <= 0 || len(full) <= maxLen {
		return full
	}
	cut := full[:maxLen]
	if full[maxLen] == '-' {
		return cut
	}
	if i := strings.LastIndexByte(cut, '-'); i > 0 {
		return cut[:i]
	}
	return cut
}
