package partials

import (
	cmp "maragu.dev/gomponents"
	g "maragu.dev/gomponents/html"
)

// Loading renders the full-screen loading indicator shown while the session
// is still resolving. Nothing else appears alongside it.
func Loading() cmp.Node {
	return g.Div(
		g.Class("flex min-h-screen items-center justify-center"),
		g.Div(
			g.Class("text-center"),
			g.Div(g.Class("mx-auto h-10 w-10 animate-spin rounded-full border-4 border-amber-900 border-t-transparent")),
			g.P(g.Class("mt-4 text-sm text-stone-500"), cmp.Text("Loading...")),
		),
	)
}

// ErrorState renders the full-page error shown when the session could not be
// resolved or a page failed to render.
func ErrorState() cmp.Node {
	return g.Div(
		g.Class("flex min-h-screen items-center justify-center px-4"),
		g.Div(
			g.Class("max-w-md text-center"),
			g.H1(g.Class("font-serif text-3xl font-bold text-stone-900"), cmp.Text("Something went wrong")),
			g.P(
				g.Class("mt-3 text-stone-600"),
				cmp.Text("We could not load this page. Please try again in a moment."),
			),
			g.A(
				g.Href("/"),
				g.Class("mt-6 inline-block rounded-md bg-amber-900 px-5 py-2.5 text-sm font-medium text-white hover:bg-amber-800"),
				cmp.Text("Back to home"),
			),
		),
	)
}
