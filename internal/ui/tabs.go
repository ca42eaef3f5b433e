// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package ui

import "strings"

// Tab identifies one panel of the auth page.
type Tab string

const (
	TabLogin  Tab = "login"
	TabSignup Tab = "signup"
)

// AuthTabs lists the auth page tabs in display order.
var AuthTabs = []Tab{TabLogin, TabSignup}

// Label returns the trigger text for the tab.
func (t Tab) Label() string {
	switch t {
	case TabSignup:
		return "Sign Up"
	default:
		return "Login"
	}
}

// DefaultTab picks the initial tab from the inbound path: signup when the
// path contains "signup", login otherwise.
func DefaultTab(path string) Tab {
	if strings.Contains(path, "signup") {
		return TabSignup
	}
	return TabLogin
}

// ParseTab recognizes a tab key from a query value.
func ParseTab(s string) (Tab, bool) {
	switch Tab(s) {
	case TabLogin, TabSignup:
		return Tab(s), true
	}
	return "", false
}

// Tabs is the auth page tab container. Exactly one tab is active.
type Tabs struct {
	active Tab
}

// NewTabs returns a container with DefaultTab(path) active.
func NewTabs(path string) *Tabs {
	return &Tabs{active: DefaultTab(path)}
}

// Select makes tab the active one. Unknown tabs are ignored and reported
// with false.
func (t *Tabs) Select(tab Tab) bool {
	if _, ok := ParseTab(string(tab)); !ok {
		return false
	}
	t.active = tab
	return true
}

// Active returns the active tab.
func (t *Tabs) Active() Tab {
	return t.active
}

// IsActive reports whether tab is the active one.
func (t *Tabs) IsActive(tab Tab) bool {
	return t.active == tab
}
