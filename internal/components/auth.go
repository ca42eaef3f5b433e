// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package components

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"timeup/internal/ui"
)

// AuthURL is the page URL that renders the auth page with tab active.
func AuthURL(tab ui.Tab) string {
	return "/auth?tab=" + string(tab)
}

// AuthPage renders the centered card holding the login and signup tabs.
func AuthPage(siteName string, tabs *ui.Tabs) []g.Node {
	return []g.Node{
		Main(
			Class("min-h-screen flex flex-col items-center justify-center px-6 py-16"),
			Div(Class("absolute top-0 left-1/2 -translate-x-1/2 w-[600px] h-[400px] bg-blue-500/20 rounded-full blur-[120px] -z-10 opacity-50")),
			A(Href("/"), Class("mb-8"), Logo(siteName)),
			Div(
				Class("w-full max-w-md rounded-2xl border border-white/10 bg-white/5 p-8 backdrop-blur-sm"),
				AuthTabs(tabs),
			),
			P(
				Class("mt-6 text-sm text-gray-500"),
				A(Href("/"), Class("hover:text-white transition-colors"), g.Text("Back to home")),
			),
		),
	}
}

// AuthTabs renders the tab triggers and the active tab's panel. It is the
// swap target of every tab interaction.
func AuthTabs(tabs *ui.Tabs) g.Node {
	return Div(
		ID("auth-tabs"),
		Data("active", string(tabs.Active())),
		Div(
			Role("tablist"),
			Class("grid grid-cols-2 gap-1 rounded-lg bg-black/40 p-1 mb-8"),
			g.Map(ui.AuthTabs, func(tab ui.Tab) g.Node {
				return tabTrigger(tab, tabs.IsActive(tab))
			}),
		),
		Div(
			ID("auth-panel-"+string(tabs.Active())),
			Role("tabpanel"),
			Aria("labelledby", "auth-tab-"+string(tabs.Active())),
			tabPanel(tabs.Active()),
		),
	)
}

func tabTrigger(tab ui.Tab, active bool) g.Node {
	classes := "rounded-md px-3 py-2 text-center text-sm font-medium transition-colors text-gray-400 hover:text-white"
	if active {
		classes = "rounded-md px-3 py-2 text-center text-sm font-medium transition-colors bg-white/10 text-white"
	}
	return A(
		ID("auth-tab-"+string(tab)),
		Href(AuthURL(tab)),
		hx("/partials/auth?tab="+string(tab), "#auth-tabs", "outerHTML"),
		g.Attr("hx-push-url", AuthURL(tab)),
		Role("tab"),
		Aria("selected", boolAttr(active)),
		Aria("controls", "auth-panel-"+string(tab)),
		Class(classes),
		g.Text(tab.Label()),
	)
}

func tabPanel(tab ui.Tab) g.Node {
	if tab == ui.TabSignup {
		return SignupForm()
	}
	return LoginForm()
}

// LoginForm renders the static login form. It has no submit behavior.
func LoginForm() g.Node {
	return Div(
		Class("space-y-6"),
		Div(
			H1(Class("text-2xl font-bold"), g.Text("Welcome back")),
			P(Class("mt-2 text-sm text-gray-400"), g.Text("Enter your email and password to access your dashboard.")),
		),
		Div(
			Class("space-y-4"),
			field("login-email", "Email", "email", "name@example.com", "email"),
			field("login-password", "Password", "password", "", "current-password"),
		),
		submitButton("Sign in"),
		P(
			Class("text-center text-sm text-gray-400"),
			g.Text("Don't have an account? "),
			A(Href("/signup"), Class("text-blue-400 hover:text-blue-300"), g.Text("Sign up")),
		),
	)
}

// SignupForm renders the static signup form. It has no submit behavior.
func SignupForm() g.Node {
	return Div(
		Class("space-y-6"),
		Div(
			H1(Class("text-2xl font-bold"), g.Text("Create an account")),
			P(Class("mt-2 text-sm text-gray-400"), g.Text("Start monitoring your sites in under a minute.")),
		),
		Div(
			Class("space-y-4"),
			field("signup-name", "Name", "text", "Ada Lovelace", "name"),
			field("signup-email", "Email", "email", "name@example.com", "email"),
			field("signup-password", "Password", "password", "", "new-password"),
		),
		submitButton("Create account"),
		P(
			Class("text-center text-sm text-gray-400"),
			g.Text("Already have an account? "),
			A(Href("/login"), Class("text-blue-400 hover:text-blue-300"), g.Text("Log in")),
		),
	)
}

func field(id, text, kind, placeholder, autocomplete string) g.Node {
	return Div(
		Class("space-y-2"),
		Label(For(id), Class("block text-sm font-medium text-gray-300"), g.Text(text)),
		Input(
			ID(id),
			Name(id),
			Type(kind),
			g.If(placeholder != "", Placeholder(placeholder)),
			g.Attr("autocomplete", autocomplete),
			Class("w-full rounded-lg border border-white/10 bg-black/40 px-3 py-2 text-white placeholder:text-gray-600 focus:border-blue-500 focus:outline-none"),
		),
	)
}

func submitButton(text string) g.Node {
	return Button(
		Type("button"),
		Class("w-full rounded-lg bg-blue-600 px-4 py-2.5 font-medium text-white hover:bg-blue-500 transition-colors"),
		g.Text(text),
	)
}
