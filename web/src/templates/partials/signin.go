package partials

import (
	cmp "maragu.dev/gomponents"
	g "maragu.dev/gomponents/html"
)

// SignInGate renders in place of any protected page when no user is signed
// in. formEmail re-fills the email field after a failed attempt.
func SignInGate(formEmail string) cmp.Node {
	return g.Div(
		g.Class("container mx-auto px-4 py-16 sm:px-6 lg:px-8"),
		g.Div(
			g.Class("mx-auto max-w-md text-center"),
			g.H1(g.Class("font-serif text-3xl font-bold text-stone-900"), cmp.Text("Sign in to continue")),
			g.P(
				g.Class("mt-2 text-stone-600"),
				cmp.Text("Your dashboard, settings and billing live behind your account."),
			),
		),
		g.Div(
			g.Class("mx-auto mt-10 grid max-w-3xl grid-cols-1 gap-8 md:grid-cols-2"),
			authCard("Sign In", "/auth/login", "Sign In", formEmail),
			authCard("Create Account", "/auth/register", "Create Account", formEmail),
		),
	)
}

func authCard(title, action, buttonLabel, formEmail string) cmp.Node {
	return g.Div(
		g.Class("rounded-xl border border-stone-200 bg-white p-6 shadow-sm"),
		g.H2(g.Class("text-lg font-semibold text-stone-900"), cmp.Text(title)),
		g.Form(
			g.Method("post"),
			g.Action(action),
			g.Class("mt-4 space-y-4"),
			g.Div(
				g.Label(g.For(action+"-email"), g.Class("block text-sm font-medium text-stone-700"), cmp.Text("Email")),
				g.Input(
					g.ID(action+"-email"),
					g.Type("email"),
					g.Name("email"),
					g.Value(formEmail),
					g.Required(),
					g.Class("mt-1 w-full rounded-md border border-stone-300 px-3 py-2 text-sm"),
				),
			),
			g.Div(
				g.Label(g.For(action+"-password"), g.Class("block text-sm font-medium text-stone-700"), cmp.Text("Password")),
				g.Input(
					g.ID(action+"-password"),
					g.Type("password"),
					g.Name("password"),
					g.Required(),
					g.Class("mt-1 w-full rounded-md border border-stone-300 px-3 py-2 text-sm"),
				),
			),
			g.Button(
				g.Type("submit"),
				g.Class("w-full rounded-md bg-amber-900 px-4 py-2 text-sm font-medium text-white hover:bg-amber-800"),
				cmp.Text(buttonLabel),
			),
		),
	)
}
