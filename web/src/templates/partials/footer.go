package partials

import (
	cmp "maragu.dev/gomponents"
	g "maragu.dev/gomponents/html"
)

// Footer renders the marketing footer. The shell shows it on the home page
// only.
func Footer() cmp.Node {
	return g.Footer(
		g.Class("border-t border-stone-200 bg-stone-900 text-stone-300"),
		g.Div(
			g.Class("container mx-auto px-4 py-12 sm:px-6 lg:px-8"),
			g.Div(
				g.Class("grid grid-cols-1 gap-8 md:grid-cols-4"),
				g.Div(
					g.H3(g.Class("font-serif text-xl font-bold text-white"), cmp.Text("Psalmos")),
					g.P(
						g.Class("mt-3 text-sm leading-relaxed"),
						cmp.Text("Premium classical music licensing for content creators. Never worry about copyright claims again."),
					),
				),
				footerColumn("Product", [][2]string{
					{"Browse Music", "/browse"},
					{"Pricing", "/pricing"},
					{"Partner Labels", "/labels"},
					{"About", "/about"},
				}),
				footerColumn("Support", [][2]string{
					{"Help Center", "/about"},
					{"Licensing Guide", "/about"},
					{"Contact Us", "mailto:hello@psalmos.com"},
				}),
				g.Div(
					g.H4(g.Class("text-sm font-semibold uppercase tracking-wide text-white"), cmp.Text("Stay Updated")),
					g.Ul(
						g.Class("mt-3 space-y-2 text-sm"),
						g.Li(cmp.Text("hello@psalmos.com")),
						g.Li(cmp.Text("+1 (555) 123-4567")),
						g.Li(cmp.Text("New York, NY 10001")),
					),
				),
			),
			g.P(
				g.Class("mt-10 border-t border-stone-700 pt-6 text-center text-xs text-stone-400"),
				cmp.Text("© 2026 Psalmos. All rights reserved."),
			),
		),
	)
}

func footerColumn(title string, links [][2]string) cmp.Node {
	items := make([]cmp.Node, 0, len(links))
	for _, l := range links {
		items = append(items, g.Li(
			g.A(g.Href(l[1]), g.Class("hover:text-white"), cmp.Text(l[0])),
		))
	}
	return g.Div(
		g.H4(g.Class("text-sm font-semibold uppercase tracking-wide text-white"), cmp.Text(title)),
		g.Ul(g.Class("mt-3 space-y-2 text-sm"), cmp.Group(items)),
	)
}
