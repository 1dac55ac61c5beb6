// Package pages holds one gomponents template per site view. Pages render
// body content only; the shell supplies the surrounding chrome.
package pages

import (
	cmp "maragu.dev/gomponents"
	g "maragu.dev/gomponents/html"
)

func section(extraClass string, children ...cmp.Node) cmp.Node {
	return g.Section(
		g.Class("py-20 "+extraClass),
		g.Div(
			g.Class("container mx-auto px-4 sm:px-6 lg:px-8"),
			cmp.Group(children),
		),
	)
}

func sectionHeading(title, subtitle string) cmp.Node {
	nodes := []cmp.Node{
		g.H2(g.Class("font-serif text-3xl font-bold text-amber-900 sm:text-4xl"), cmp.Text(title)),
	}
	if subtitle != "" {
		nodes = append(nodes, g.P(
			g.Class("mx-auto mt-4 max-w-2xl text-lg text-stone-600"),
			cmp.Text(subtitle),
		))
	}
	return g.Div(g.Class("mb-16 text-center"), cmp.Group(nodes))
}

func card(children ...cmp.Node) cmp.Node {
	return g.Div(
		g.Class("rounded-xl border border-stone-200 bg-white p-6 shadow-sm"),
		cmp.Group(children),
	)
}

func pill(label string) cmp.Node {
	return g.Span(
		g.Class("inline-block rounded-full bg-stone-100 px-2.5 py-0.5 text-xs text-stone-700"),
		cmp.Text(label),
	)
}

func pillList(labels []string) cmp.Node {
	nodes := make([]cmp.Node, 0, len(labels))
	for _, l := range labels {
		nodes = append(nodes, pill(l))
	}
	return g.Div(g.Class("flex flex-wrap gap-1.5"), cmp.Group(nodes))
}

func primaryButton(href, label string) cmp.Node {
	return g.A(
		g.Href(href),
		g.Class("inline-block rounded-md bg-amber-900 px-6 py-3 text-sm font-semibold text-white hover:bg-amber-800"),
		cmp.Text(label),
	)
}

func outlineButton(href, label string) cmp.Node {
	return g.A(
		g.Href(href),
		g.Class("inline-block rounded-md border border-amber-900 px-6 py-3 text-sm font-semibold text-amber-900 hover:bg-amber-50"),
		cmp.Text(label),
	)
}
