// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package ui

// MenuOpen is the query value that renders the mobile menu expanded.
const MenuOpen = "open"

// Menu is the landing page mobile menu visibility flag. The zero value is
// closed.
type Menu struct {
	open bool
}

// ParseMenu reads the flag from a query value: "open" and "true" open the
// menu, anything else leaves it closed.
func ParseMenu(s string) Menu {
	return Menu{open: s == MenuOpen || s == "true"}
}

// Toggle flips the flag.
func (m *Menu) Toggle() {
	m.open = !m.open
}

// Close collapses the menu. Links inside the panel call it.
func (m *Menu) Close() {
	m.open = false
}

// IsOpen reports whether the panel is expanded.
func (m Menu) IsOpen() bool {
	return m.open
}

// Toggled returns the state a click on the toggle button produces.
func (m Menu) Toggled() Menu {
	m.Toggle()
	return m
}
