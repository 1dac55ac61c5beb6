// Package partials holds the chrome fragments the shell composes around page
// bodies: header, footer, flash banner, sign-in gate, loading and error
// states, and the profile setup overlay.
package partials

import (
	cmp "maragu.dev/gomponents"
	g "maragu.dev/gomponents/html"

	"github.com/psalmos/web/internal/domain"
)

type navItem struct {
	view  string
	href  string
	label string
	auth  bool
}

var navItems = []navItem{
	{view: "browse", href: "/browse", label: "Browse Music"},
	{view: "pricing", href: "/pricing", label: "Pricing"},
	{view: "labels", href: "/labels", label: "Labels"},
	{view: "about", href: "/about", label: "About"},
	{view: "dashboard", href: "/dashboard", label: "Dashboard", auth: true},
	{view: "settings", href: "/settings", label: "Settings", auth: true},
	{view: "billing", href: "/billing", label: "Billing", auth: true},
}

// Header renders the top navigation bar. currentView highlights the active
// link; user switches between the signed-in menu and the sign-in button.
func Header(currentView string, user *domain.User) cmp.Node {
	links := make([]cmp.Node, 0, len(navItems))
	for _, item := range navItems {
		if item.auth && user == nil {
			continue
		}
		links = append(links, navLink(item.href, item.label, item.view == currentView))
	}

	return g.Header(
		g.Class("sticky top-0 z-40 border-b border-stone-200 bg-white/90 backdrop-blur"),
		g.Div(
			g.Class("container mx-auto flex h-16 items-center justify-between px-4 sm:px-6 lg:px-8"),
			g.A(
				g.Href("/"),
				g.Class("font-serif text-2xl font-bold text-amber-900"),
				cmp.Text("Psalmos"),
			),
			g.Nav(
				g.Class("hidden items-center gap-6 md:flex"),
				cmp.Group(links),
			),
			userMenu(user),
		),
	)
}

func navLink(href, label string, active bool) cmp.Node {
	class := "text-sm font-medium text-stone-600 hover:text-stone-900"
	if active {
		class = "text-sm font-medium text-amber-900 underline underline-offset-4"
	}
	return g.A(g.Href(href), g.Class(class), cmp.Text(label))
}

func userMenu(user *domain.User) cmp.Node {
	if user == nil {
		return g.A(
			g.Href("/dashboard"),
			g.Class("rounded-md bg-amber-900 px-4 py-2 text-sm font-medium text-white hover:bg-amber-800"),
			cmp.Text("Sign In"),
		)
	}

	var avatar cmp.Node
	if user.AvatarURL != nil && *user.AvatarURL != "" {
		avatar = g.Img(
			g.Src(*user.AvatarURL),
			g.Alt("avatar"),
			g.Class("h-8 w-8 rounded-full object-cover"),
		)
	}

	return g.Div(
		g.Class("flex items-center gap-3"),
		avatar,
		g.Span(g.Class("text-sm text-stone-700"), cmp.Text(user.DisplayNameOrEmail())),
		g.Form(
			g.Method("post"),
			g.Action("/auth/logout"),
			g.Button(
				g.Type("submit"),
				g.Class("rounded-md border border-stone-300 px-3 py-1.5 text-sm text-stone-600 hover:bg-stone-100"),
				cmp.Text("Sign Out"),
			),
		),
	)
}
