package pages

import (
	cmp "maragu.dev/gomponents"
	g "maragu.dev/gomponents/html"

	"github.com/psalmos/web/internal/domain"
)

// Labels renders the partner label directory grouped by tier.
func Labels(major, independent, specialized []domain.Label) cmp.Node {
	return section("",
		sectionHeading("Our Partner Labels",
			"Psalmos partners with the world's most prestigious classical music labels to bring you unparalleled access to high-quality recordings with streamlined licensing."),
		labelGroup("Major Classical Labels", major),
		labelGroup("Prestigious Independent Labels", independent),
		labelGroup("Specialized Classical Labels", specialized),
		g.Div(
			g.Class("mx-auto mt-16 max-w-3xl rounded-2xl border border-amber-200 bg-amber-50 p-8 text-center"),
			g.H3(g.Class("font-serif text-2xl font-bold text-amber-950"), cmp.Text("Partner with Psalmos")),
			g.P(
				g.Class("mt-3 text-stone-600"),
				cmp.Text("Are you a classical music label interested in expanding your digital reach? Join our platform and connect with content creators worldwide."),
			),
			g.Div(g.Class("mt-6"), primaryButton("/about", "Become a Partner")),
		),
	)
}

func labelGroup(title string, labels []domain.Label) cmp.Node {
	if len(labels) == 0 {
		return nil
	}
	cards := make([]cmp.Node, 0, len(labels))
	for _, l := range labels {
		cards = append(cards, labelCard(l))
	}
	return g.Div(
		g.Class("mb-16"),
		g.H3(g.Class("mb-8 font-serif text-2xl font-bold text-amber-950"), cmp.Text(title)),
		g.Div(
			g.Class("grid grid-cols-1 gap-6 md:grid-cols-2 lg:grid-cols-3"),
			cmp.Group(cards),
		),
	)
}

func labelCard(l domain.Label) cmp.Node {
	tier := cmp.Node(nil)
	if l.Tier == domain.TierFlagship {
		tier = g.Span(
			g.Class("rounded-full bg-amber-900 px-2.5 py-0.5 text-xs font-medium text-white"),
			cmp.Text("Flagship Partner"),
		)
	}
	return card(
		g.Div(
			g.Class("flex items-start justify-between gap-2"),
			g.H3(g.Class("font-serif text-xl font-bold text-amber-950"), cmp.Text(l.Name)),
			tier,
		),
		g.P(
			g.Class("mt-1 text-sm text-stone-500"),
			cmp.Text("Founded "+l.Founded+" · "+l.Location),
		),
		g.P(g.Class("mt-3 text-sm text-stone-600"), cmp.Text(l.Description)),
		g.Div(g.Class("mt-4"), pillList(l.Specialties)),
		g.P(
			g.Class("mt-4 text-xs text-stone-500"),
			cmp.Text("Notable artists: "+joinList(l.Artists)),
		),
		g.P(
			g.Class("mt-2 text-xs font-medium text-amber-800"),
			cmp.Text(l.CatalogSize+" recordings"),
		),
	)
}

func joinList(items []string) string {
	out := ""
	for i, item := range items {
		if i > 0 {
			out += ", "
		}
		out += item
	}
	return out
}
