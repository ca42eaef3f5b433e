// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package ui holds the per-request view state of the site's interactive
// pieces: the auth tab selector, the landing page mobile menu and the FAQ
// accordion. Values are owned by the request that renders them; a user's
// click arrives as a new request whose query string carries the next state.
package ui
