// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package components

import (
	"timeup/internal/markdown"
	"timeup/internal/slug"
)

// NavLink is an entry of the landing page navigation. Section links point
// at an anchor on the landing page; the others navigate to another page.
type NavLink struct {
	Label   string
	Href    string
	Section string // anchor id without '#', empty for page links
	Primary bool   // rendered as the call-to-action pill
}

// Feature is one card of the feature grid.
type Feature struct {
	Icon        string
	Color       string
	Title       string
	Description string
}

// Tier is one pricing plan.
type Tier struct {
	Name      string
	Price     string
	Period    string
	Blurb     string
	Perks     []string
	Highlight bool
}

// FAQItem is one accordion entry. ID is derived from the question and
// Answer is Markdown, rendered once into AnswerHTML.
type FAQItem struct {
	ID         string
	Question   string
	Answer     string
	AnswerHTML string
}

// faqIDLength bounds accordion ids so query strings stay short.
const faqIDLength = 32

var NavLinks = []NavLink{
	{Label: "Features", Href: "/#features", Section: "features"},
	{Label: "Pricing", Href: "/#pricing", Section: "pricing"},
	{Label: "FAQ", Href: "/#faq", Section: "faq"},
	{Label: "Log in", Href: "/login"},
	{Label: "Start Monitoring", Href: "/signup", Primary: true},
}

var Brands = []string{"Acme Corp", "GlobalBank", "Nebula", "DevScale", "TechFlow"}

var Features = []Feature{
	{Icon: "globe", Color: "text-blue-400", Title: "Global Checks",
		Description: "We verify your uptime from 14 different regions across 5 continents every 30 seconds."},
	{Icon: "shield-check", Color: "text-emerald-400", Title: "SSL Monitoring",
		Description: "Get notified 30 days before your SSL certificate expires. Never let a cert lapse again."},
	{Icon: "zap", Color: "text-amber-400", Title: "Instant Alerts",
		Description: "Receive alerts via SMS, Slack, Discord, or Email instantly when downtime is detected."},
	{Icon: "clock", Color: "text-purple-400", Title: "Response Time History",
		Description: "Detailed charts showing your API and website latency over time to identify bottlenecks."},
	{Icon: "server", Color: "text-rose-400", Title: "Port Monitoring",
		Description: "Monitor specific ports (TCP/UDP) for email servers, databases, and gaming servers."},
	{Icon: "activity", Color: "text-cyan-400", Title: "Status Pages",
		Description: "Create a beautiful public status page for your users in less than 30 seconds."},
}

var Tiers = []Tier{
	{
		Name: "Hobby", Price: "$0", Period: "forever",
		Blurb: "For side projects and personal sites.",
		Perks: []string{"10 monitors", "3-minute checks", "Email alerts", "1 status page"},
	},
	{
		Name: "Pro", Price: "$29", Period: "per month",
		Blurb:     "For teams that cannot afford to be the last to know.",
		Perks:     []string{"50 monitors", "30-second checks", "SMS, Slack and Discord alerts", "SSL monitoring", "Custom status page domain"},
		Highlight: true,
	},
	{
		Name: "Business", Price: "$99", Period: "per month",
		Blurb: "For infrastructure spread across the globe.",
		Perks: []string{"Unlimited monitors", "Checks from 14 regions", "TCP/UDP port monitoring", "Priority support"},
	},
}

var FAQItems = newFAQ([][2]string{
	{"How often are my sites checked?",
		"Every 30 seconds on the **Pro** and **Business** plans and every 3 minutes on **Hobby**. Each check runs from several regions so a single flaky network path never pages you."},
	{"Where are checks run from?",
		"From 14 regions across 5 continents. An incident is only opened once a majority of regions agree the target is down."},
	{"Which alert channels are supported?",
		"SMS, Email, Slack and Discord. Every monitor can route to a different set of channels; SMS is included from the [Pro plan](#pricing) up."},
	{"Do you monitor SSL certificates?",
		"Yes. Every HTTPS monitor tracks its certificate and warns you 30 days before it expires."},
	{"Can I cancel anytime?",
		"Yes. Plans are billed monthly and you can downgrade to Hobby at any time without losing your monitors."},
})

func newFAQ(entries [][2]string) []FAQItem {
	items := make([]FAQItem, 0, len(entries))
	for _, e := range entries {
		items = append(items, FAQItem{
			ID:         slug.Short(e[0], faqIDLength),
			Question:   e[0],
			Answer:     e[1],
			AnswerHTML: markdown.Paragraph(e[1]),
		})
	}
	return items
}

// FAQIDs returns the accordion item ids in display order.
func FAQIDs() []string {
	ids := make([]string, len(FAQItems))
	for i, item := range FAQItems {
		ids[i] = item.ID
	}
	return ids
}
