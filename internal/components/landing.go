// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package components

import (
	"fmt"
	"net/url"
	"time"

	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"timeup/internal/ui"
)

// LandingState is the view state a landing page render depends on.
type LandingState struct {
	SiteName string
	Year     int
	Menu     ui.Menu
	FAQ      *ui.Accordion
}

// LandingPage renders every section of the landing page.
func LandingPage(s LandingState) []g.Node {
	return []g.Node{
		Navbar(s.SiteName, s.Menu),
		Main(
			Hero(),
			SocialProof(),
			FeatureGrid(),
			Pricing(),
			FAQ(s.FAQ),
			CTA(s.SiteName),
		),
		SiteFooter(s.SiteName, s.Year),
	}
}

// Navbar renders the fixed top bar with desktop links and the mobile menu.
func Navbar(siteName string, menu ui.Menu) g.Node {
	return Nav(
		Class("fixed w-full z-50 border-b border-white/5 bg-[#030712]/80 backdrop-blur-md"),
		Div(
			Class("relative max-w-7xl mx-auto px-6 h-16 flex items-center justify-between"),
			A(Href("/"), Logo(siteName)),
			Div(
				Class("hidden md:flex items-center gap-8 text-sm font-medium text-gray-400"),
				g.Map(NavLinks, desktopLink),
			),
			MobileMenu(menu),
		),
	)
}

func desktopLink(l NavLink) g.Node {
	switch {
	case l.Primary:
		return A(Href(l.Href), Class("bg-white text-black px-4 py-2 rounded-full hover:bg-blue-50 transition-colors"), g.Text(l.Label))
	case l.Section == "":
		return A(Href(l.Href), Class("text-white hover:text-blue-400"), g.Text(l.Label))
	default:
		return A(Href("#"+l.Section), Class("hover:text-white transition-colors"), g.Text(l.Label))
	}
}

// MenuURL is the page URL that renders the landing page with menu's state.
func MenuURL(menu ui.Menu) string {
	if menu.IsOpen() {
		return "/?menu=" + ui.MenuOpen
	}
	return "/"
}

// MobileMenu renders the toggle button and, when open, the expandable
// panel. The whole block is the swap target of every menu interaction.
func MobileMenu(menu ui.Menu) g.Node {
	next := menu.Toggled()
	icon := "menu"
	if menu.IsOpen() {
		icon = "x"
	}

	return Div(
		ID("mobile-menu"),
		Class("md:hidden"),
		Data("open", boolAttr(menu.IsOpen())),
		A(
			Href(MenuURL(next)),
			hx(fmt.Sprintf("/partials/menu?open=%t", next.IsOpen()), "#mobile-menu", "outerHTML"),
			Class("inline-flex items-center justify-center size-9 rounded-lg text-gray-300 hover:text-white hover:bg-white/10"),
			Aria("label", "Toggle menu"),
			Aria("expanded", boolAttr(menu.IsOpen())),
			Aria("controls", "mobile-menu-panel"),
			Icon(icon, "size-5"),
		),
		g.If(menu.IsOpen(), mobilePanel()),
	)
}

func mobilePanel() g.Node {
	return Div(
		ID("mobile-menu-panel"),
		Class("menu-panel absolute inset-x-0 top-16 border-b border-white/5 bg-[#030712]/95 backdrop-blur-md"),
		Ul(
			Class("flex flex-col gap-1 px-6 py-4 text-sm font-medium text-gray-300"),
			g.Map(NavLinks, mobileLink),
		),
	)
}

// mobileLink closes the menu on click. Section links swap the closed menu
// in and scroll to their section; page links leave the page.
func mobileLink(l NavLink) g.Node {
	classes := "block rounded-lg px-3 py-2 hover:bg-white/5 hover:text-white"
	if l.Primary {
		classes = "block rounded-lg px-3 py-2 bg-white text-black text-center"
	}
	if l.Section == "" {
		return Li(A(Href(l.Href), Class(classes), g.Text(l.Label)))
	}
	return Li(A(
		Href(l.Href),
		hx("/partials/menu?open=false", "#mobile-menu", "outerHTML show:#"+l.Section+":top"),
		Class(classes),
		g.Text(l.Label),
	))
}

// Hero renders the headline block and the dashboard preview.
func Hero() g.Node {
	return Section(
		Class("relative pt-32 pb-20 md:pt-48 md:pb-32 px-6"),
		Div(Class("absolute top-0 left-1/2 -translate-x-1/2 w-[800px] h-[500px] bg-blue-500/20 rounded-full blur-[120px] -z-10 opacity-50")),
		Div(
			Class("max-w-4xl mx-auto text-center"),
			FadeIn(0,
				Div(
					Class("inline-flex items-center gap-2 px-3 py-1 rounded-full border border-blue-500/30 bg-blue-500/10 text-blue-400 text-xs font-medium mb-8"),
					Span(
						Class("relative flex h-2 w-2"),
						Span(Class("animate-ping absolute inline-flex h-full w-full rounded-full bg-blue-400 opacity-75")),
						Span(Class("relative inline-flex rounded-full h-2 w-2 bg-blue-500")),
					),
					g.Text("v2.0 is now live"),
				),
			),
			FadeIn(100*time.Millisecond,
				H1(
					Class("text-5xl md:text-7xl font-bold tracking-tight mb-8 bg-gradient-to-b from-white to-white/60 bg-clip-text text-transparent"),
					g.Text("Downtime is inevitable. "), Br(), g.Text("Being the last to know isn't."),
				),
			),
			FadeIn(200*time.Millisecond,
				P(
					Class("text-lg md:text-xl text-gray-400 mb-10 max-w-2xl mx-auto leading-relaxed"),
					g.Text("Monitor your website's uptime, SSL certificates, and API performance from locations around the world. Get alerted instantly via SMS, Email, or Slack."),
				),
			),
			FadeIn(300*time.Millisecond,
				Div(
					Class("flex flex-col sm:flex-row items-center justify-center gap-4"),
					A(
						Href("/signup"),
						Class("w-full sm:w-auto px-8 py-4 bg-blue-600 hover:bg-blue-500 text-white rounded-lg font-medium transition-all flex items-center justify-center gap-2 group"),
						g.Text("Start Monitoring for Free"),
						Icon("arrow-right", "size-4 group-hover:translate-x-1 transition-transform"),
					),
					Button(
						Type("button"),
						Class("w-full sm:w-auto px-8 py-4 bg-white/5 hover:bg-white/10 text-white border border-white/10 rounded-lg font-medium transition-all"),
						g.Text("View Live Demo"),
					),
				),
			),
			FadeIn(500*time.Millisecond,
				Div(
					Class("mt-20 relative rounded-xl border border-white/10 bg-white/5 p-2 shadow-2xl backdrop-blur-sm"),
					Div(Class("absolute inset-0 bg-gradient-to-t from-[#030712] via-transparent to-transparent z-10")),
					Img(
						Src("https://placehold.co/1200x675/1e1e1e/FFF?text=Dashboard+Preview"),
						Alt("Dashboard Preview"),
						Class("rounded-lg opacity-90 w-full"),
						g.Attr("loading", "lazy"),
					),
				),
			),
		),
	)
}

// SocialProof renders the brand strip.
func SocialProof() g.Node {
	return Section(
		Class("py-10 border-y border-white/5 bg-white/[0.02]"),
		Div(
			Class("max-w-7xl mx-auto px-6 text-center"),
			P(Class("text-sm text-gray-500 mb-8 font-medium"), g.Text("TRUSTED BY ENGINEERING TEAMS AT")),
			Div(
				Class("flex flex-wrap justify-center items-center gap-12 opacity-50 grayscale"),
				g.Map(Brands, func(brand string) g.Node {
					return Span(Class("text-xl font-bold text-white"), g.Text(brand))
				}),
			),
		),
	)
}

// FeatureGrid renders the feature cards.
func FeatureGrid() g.Node {
	return Section(
		ID("features"),
		Class("py-32 px-6 scroll-mt-16"),
		Div(
			Class("max-w-7xl mx-auto"),
			FadeIn(0,
				Div(
					Class("text-center mb-20"),
					H2(Class("text-3xl md:text-5xl font-bold mb-6"), g.Text("Everything you need to stay online")),
					P(Class("text-gray-400 max-w-2xl mx-auto"), g.Text("We provide enterprise-grade monitoring tools without the enterprise-grade complexity.")),
				),
			),
			Div(
				Class("grid md:grid-cols-2 lg:grid-cols-3 gap-6"),
				g.Group(featureCards()),
			),
		),
	)
}

func featureCards() []g.Node {
	cards := make([]g.Node, len(Features))
	for i, f := range Features {
		cards[i] = FadeIn(time.Duration(i%3)*100*time.Millisecond, featureCard(f))
	}
	return cards
}

func featureCard(f Feature) g.Node {
	return Div(
		Class("h-full p-6 rounded-2xl bg-white/5 border border-white/5 hover:border-white/10 hover:bg-white/[0.07] transition-all group"),
		Div(
			Class("w-12 h-12 rounded-lg bg-black/50 border border-white/10 flex items-center justify-center mb-4 group-hover:scale-110 transition-transform"),
			Icon(f.Icon, "size-6 "+f.Color),
		),
		H3(Class("text-xl font-bold mb-2 text-gray-100"), g.Text(f.Title)),
		P(Class("text-gray-400 leading-relaxed"), g.Text(f.Description)),
	)
}

// Pricing renders the plan cards.
func Pricing() g.Node {
	return Section(
		ID("pricing"),
		Class("py-32 px-6 scroll-mt-16 border-t border-white/5"),
		Div(
			Class("max-w-6xl mx-auto"),
			FadeIn(0,
				Div(
					Class("text-center mb-16"),
					H2(Class("text-3xl md:text-5xl font-bold mb-6"), g.Text("Simple, predictable pricing")),
					P(Class("text-gray-400 max-w-2xl mx-auto"), g.Text("Start free. Upgrade when your infrastructure outgrows it.")),
				),
			),
			Div(
				Class("grid md:grid-cols-3 gap-6"),
				g.Map(Tiers, tierCard),
			),
		),
	)
}

func tierCard(t Tier) g.Node {
	border := "border-white/10 bg-white/5"
	button := "bg-white/5 hover:bg-white/10 border border-white/10"
	if t.Highlight {
		border = "border-blue-500/50 bg-blue-900/20 shadow-xl shadow-blue-900/20"
		button = "bg-blue-600 hover:bg-blue-500"
	}
	return FadeIn(0,
		Div(
			Class("h-full flex flex-col p-8 rounded-2xl border "+border),
			g.If(t.Highlight, Span(Class("self-start mb-4 px-3 py-1 rounded-full bg-blue-500/20 text-blue-300 text-xs font-medium"), g.Text("Most popular"))),
			H3(Class("text-xl font-bold text-gray-100"), g.Text(t.Name)),
			P(Class("mt-2 text-gray-400 text-sm"), g.Text(t.Blurb)),
			P(
				Class("mt-6 flex items-baseline gap-2"),
				Span(Class("text-4xl font-bold"), g.Text(t.Price)),
				Span(Class("text-gray-500 text-sm"), g.Text(t.Period)),
			),
			Ul(
				Class("mt-6 mb-8 space-y-3 text-sm text-gray-300 flex-1"),
				g.Map(t.Perks, func(perk string) g.Node {
					return Li(Class("flex items-center gap-2"), Icon("check", "size-4 text-emerald-400"), g.Text(perk))
				}),
			),
			A(Href("/signup"), Class("w-full text-center px-6 py-3 rounded-lg font-medium transition-colors "+button), g.Text("Choose "+t.Name)),
		),
	)
}

// FAQ renders the accordion section.
func FAQ(acc *ui.Accordion) g.Node {
	return Section(
		ID("faq"),
		Class("py-32 px-6 scroll-mt-16 border-t border-white/5"),
		Div(
			Class("max-w-3xl mx-auto"),
			FadeIn(0,
				H2(Class("text-3xl md:text-5xl font-bold mb-12 text-center"), g.Text("Frequently asked questions")),
			),
			FadeIn(100*time.Millisecond, FAQList(acc)),
		),
	)
}

// FAQURL is the page URL that renders the landing page with id open.
func FAQURL(id string) string {
	if id == "" {
		return "/#faq"
	}
	return "/?faq=" + url.QueryEscape(id) + "#faq"
}

// FAQList renders the accordion items. It is the swap target of every
// accordion interaction.
func FAQList(acc *ui.Accordion) g.Node {
	return Div(
		ID("faq-list"),
		Class("divide-y divide-white/10 border-y border-white/10"),
		g.Map(FAQItems, func(item FAQItem) g.Node {
			return faqEntry(acc, item)
		}),
	)
}

func faqEntry(acc *ui.Accordion, item FAQItem) g.Node {
	open := acc.IsOpen(item.ID)
	next := acc.After(item.ID)
	answerID := "faq-" + item.ID + "-answer"

	chevron := "size-5 text-gray-500 transition-transform"
	if open {
		chevron += " rotate-180"
	}

	return Div(
		ID("faq-"+item.ID),
		Data("open", boolAttr(open)),
		H3(
			A(
				Href(FAQURL(next)),
				hx("/partials/faq?open="+url.QueryEscape(next), "#faq-list", "outerHTML"),
				Class("flex w-full items-center justify-between gap-4 py-5 text-left text-lg font-medium text-gray-100 hover:text-white"),
				Aria("expanded", boolAttr(open)),
				Aria("controls", answerID),
				Span(g.Text(item.Question)),
				Icon("chevron-down", chevron),
			),
		),
		g.If(open, Div(
			ID(answerID),
			Class("faq-answer pb-5 text-gray-400 leading-relaxed [&_a]:text-blue-400 [&_strong]:text-gray-200"),
			g.Raw(item.AnswerHTML),
		)),
	)
}

// CTA renders the closing call to action.
func CTA(siteName string) g.Node {
	return Section(
		Class("py-32 px-6"),
		FadeIn(0,
			Div(
				Class("max-w-4xl mx-auto text-center bg-gradient-to-b from-blue-900/20 to-blue-900/5 border border-blue-500/20 rounded-3xl p-12 relative overflow-hidden"),
				Div(Class("absolute top-0 right-0 w-64 h-64 bg-blue-500/10 rounded-full blur-[100px]")),
				H2(Class("text-3xl md:text-4xl font-bold mb-6"), g.Text("Ready to improve your uptime?")),
				P(
					Class("text-gray-400 mb-10 max-w-lg mx-auto"),
					g.Textf("Join 10,000+ developers who sleep better at night knowing %s is watching their infrastructure.", siteName),
				),
				Div(
					Class("flex flex-col sm:flex-row gap-4 justify-center"),
					A(Href("/signup"), Class("px-8 py-3 bg-white text-black rounded-lg font-bold hover:bg-gray-200 transition-colors"), g.Text("Get Started for Free")),
					Button(Type("button"), Class("px-8 py-3 bg-transparent border border-white/20 text-white rounded-lg font-bold hover:bg-white/5 transition-colors"), g.Text("Talk to Sales")),
				),
			),
		),
	)
}

// SiteFooter renders the footer links and copyright line.
func SiteFooter(siteName string, year int) g.Node {
	return Footer(
		Class("py-12 border-t border-white/5 text-gray-500 text-sm"),
		Div(
			Class("max-w-7xl mx-auto px-6 flex flex-col md:flex-row justify-between items-center gap-6"),
			Div(
				Class("flex items-center gap-2"),
				Icon("activity", "size-5"),
				Span(Class("font-semibold text-gray-300"), g.Text(siteName)),
			),
			Div(
				Class("flex gap-8"),
				A(Href("/about"), Class("hover:text-white transition-colors"), g.Text("About")),
				A(Href("#"), Class("hover:text-white transition-colors"), g.Text("Privacy")),
				A(Href("#"), Class("hover:text-white transition-colors"), g.Text("Terms")),
				A(Href("#"), Class("hover:text-white transition-colors"), g.Text("Twitter")),
				A(Href("#"), Class("hover:text-white transition-colors"), g.Text("GitHub")),
			),
			P(g.Textf("© %d %s Inc.", year, siteName)),
		),
	)
}
