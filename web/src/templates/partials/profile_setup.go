package partials

import (
	cmp "maragu.dev/gomponents"
	g "maragu.dev/gomponents/html"
)

// ProfileSetup renders the blocking overlay shown to signed-in users who
// have not chosen a display name yet. It sits on top of whatever page is
// underneath until the form is submitted.
func ProfileSetup(email string) cmp.Node {
	return g.Div(
		g.Class("fixed inset-0 z-50 flex items-center justify-center bg-stone-900/60 px-4"),
		g.Div(
			g.Class("w-full max-w-md rounded-xl bg-white p-8 shadow-xl"),
			g.H2(g.Class("font-serif text-2xl font-bold text-stone-900"), cmp.Text("Complete your profile")),
			g.P(
				g.Class("mt-2 text-sm text-stone-600"),
				cmp.Text("You are signed in as "+email+". Pick a display name to finish setting up your account."),
			),
			g.Form(
				g.Method("post"),
				g.Action("/profile/setup"),
				g.EncType("multipart/form-data"),
				g.Class("mt-6 space-y-4"),
				g.Div(
					g.Label(g.For("setup-display-name"), g.Class("block text-sm font-medium text-stone-700"), cmp.Text("Display name")),
					g.Input(
						g.ID("setup-display-name"),
						g.Type("text"),
						g.Name("display_name"),
						g.Required(),
						g.MaxLength("120"),
						g.Class("mt-1 w-full rounded-md border border-stone-300 px-3 py-2 text-sm"),
					),
				),
				g.Div(
					g.Label(g.For("setup-avatar"), g.Class("block text-sm font-medium text-stone-700"), cmp.Text("Avatar (optional)")),
					g.Input(
						g.ID("setup-avatar"),
						g.Type("file"),
						g.Name("avatar"),
						g.Accept("image/jpeg,image/png,image/gif,image/webp"),
						g.Class("mt-1 w-full text-sm"),
					),
					g.P(g.Class("mt-1 text-xs text-stone-500"), cmp.Text("JPEG, PNG, GIF or WebP, up to 5 MB.")),
				),
				g.Button(
					g.Type("submit"),
					g.Class("w-full rounded-md bg-amber-900 px-4 py-2 text-sm font-medium text-white hover:bg-amber-800"),
					cmp.Text("Complete Profile"),
				),
			),
		),
	)
}
