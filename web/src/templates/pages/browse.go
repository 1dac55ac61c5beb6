package pages

import (
	"fmt"

	cmp "maragu.dev/gomponents"
	hx "maragu.dev/gomponents-htmx"
	g "maragu.dev/gomponents/html"

	"github.com/psalmos/web/internal/domain"
)

// Browse renders the catalog search page.
func Browse(genres []string, selectedGenre, query string, tracks []domain.Track) cmp.Node {
	return section("",
		sectionHeading("Discover Classical Masterpieces",
			"Browse our curated collection of high-quality classical recordings from world-renowned labels and artists"),
		searchForm(query, selectedGenre),
		genreTabs(genres, selectedGenre, query),
		g.Div(
			g.ID("track-results"),
			TrackResults(tracks),
		),
	)
}

func searchForm(query, genre string) cmp.Node {
	return g.Form(
		g.Method("get"),
		g.Action("/browse"),
		g.Class("mx-auto mb-8 flex max-w-md gap-2"),
		g.Input(
			g.Type("search"),
			g.Name("q"),
			g.Value(query),
			g.Placeholder("Search by composer, piece, or performer..."),
			g.Class("w-full rounded-md border border-stone-300 px-4 py-2 text-sm"),
			hx.Get("/browse/results"),
			hx.Target("#track-results"),
			hx.Trigger("keyup changed delay:300ms"),
			hx.Include("closest form"),
		),
		g.Input(g.Type("hidden"), g.Name("genre"), g.Value(genre)),
		g.Button(
			g.Type("submit"),
			g.Class("rounded-md bg-amber-900 px-4 py-2 text-sm font-medium text-white hover:bg-amber-800"),
			cmp.Text("Search"),
		),
	)
}

func genreTabs(genres []string, selected, query string) cmp.Node {
	tabs := make([]cmp.Node, 0, len(genres))
	for _, genre := range genres {
		class := "rounded-full border border-stone-300 px-4 py-1.5 text-sm text-stone-600 hover:bg-stone-100"
		if genre == selected {
			class = "rounded-full bg-amber-900 px-4 py-1.5 text-sm text-white"
		}
		href := fmt.Sprintf("/browse?genre=%s", genre)
		if query != "" {
			href += "&q=" + query
		}
		tabs = append(tabs, g.A(g.Href(href), g.Class(class), cmp.Text(genre)))
	}
	return g.Div(g.Class("mb-10 flex flex-wrap justify-center gap-2"), cmp.Group(tabs))
}

// TrackResults renders the track card grid. It is a separate component so
// the live-search endpoint can return just the grid as a fragment.
func TrackResults(tracks []domain.Track) cmp.Node {
	if len(tracks) == 0 {
		return g.P(
			g.Class("py-12 text-center text-stone-500"),
			cmp.Text("No tracks match your search. Try a different composer or genre."),
		)
	}

	cards := make([]cmp.Node, 0, len(tracks))
	for _, t := range tracks {
		cards = append(cards, trackCard(t))
	}
	return g.Div(
		g.Class("mx-auto grid max-w-6xl grid-cols-1 gap-6 md:grid-cols-2"),
		cmp.Group(cards),
	)
}

func trackCard(t domain.Track) cmp.Node {
	return card(
		g.Div(
			g.Class("flex items-start justify-between gap-4"),
			g.Div(
				g.H3(g.Class("text-lg font-semibold text-amber-950"), cmp.Text(t.Title)),
				g.P(g.Class("text-sm text-stone-600"), cmp.Text(t.Composer)),
				g.P(g.Class("text-sm text-stone-500"), cmp.Text(t.Performer+" · "+t.Conductor)),
			),
			pill(t.Era),
		),
		g.Dl(
			g.Class("mt-4 grid grid-cols-2 gap-x-4 gap-y-1 text-sm text-stone-500"),
			metaRow("Label", t.Label),
			metaRow("Year", fmt.Sprintf("%d", t.Year)),
			metaRow("Duration", t.Duration),
			metaRow("Tempo", t.Tempo),
			metaRow("Key", t.Key),
			metaRow("Genre", t.Genre),
		),
		g.Div(g.Class("mt-3"), pillList(t.Moods)),
		g.Div(
			g.Class("mt-5 flex gap-3"),
			g.Button(
				g.Type("button"),
				g.Class("rounded-md bg-amber-900 px-4 py-2 text-sm font-medium text-white hover:bg-amber-800"),
				cmp.Text("License & Download"),
			),
			g.Button(
				g.Type("button"),
				g.Class("rounded-md border border-stone-300 px-4 py-2 text-sm text-stone-600 hover:bg-stone-100"),
				cmp.Text("Preview"),
			),
		),
	)
}

func metaRow(label, value string) cmp.Node {
	return cmp.Group([]cmp.Node{
		g.Dt(g.Class("font-medium text-stone-400"), cmp.Text(label)),
		g.Dd(cmp.Text(value)),
	})
}
