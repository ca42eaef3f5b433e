// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package ui

import "slices"

// Accordion tracks which of a fixed set of items is expanded. At most one
// item is open; selecting the open item collapses it.
type Accordion struct {
	items []string
	open  string
}

// NewAccordion returns an accordion over ids with every item collapsed.
func NewAccordion(ids ...string) *Accordion {
	return &Accordion{items: slices.Clone(ids)}
}

// Toggle opens id, closing whichever item was open before, or collapses id
// if it is already open. Unknown ids are ignored and reported with false.
func (a *Accordion) Toggle(id string) bool {
	if !a.Has(id) {
		return false
	}
	a.open = a.After(id)
	return true
}

// After returns the open item a click on id would leave behind, or "" when
// the click collapses everything. It does not change the accordion.
func (a *Accordion) After(id string) string {
	if a.open == id {
		return ""
	}
	return id
}

// Has reports whether id is one of the accordion's items.
func (a *Accordion) Has(id string) bool {
	return id != "" && slices.Contains(a.items, id)
}

// IsOpen reports whether id is the expanded item.
func (a *Accordion) IsOpen(id string) bool {
	return a.open != "" && a.open == id
}

// Current returns the expanded item, if any.
func (a *Accordion) Current() (string, bool) {
	return a.open, a.open != ""
}

// Items returns the item ids in display order.
func (a *Accordion) Items() []string {
	return slices.Clone(a.items)
}
