package pages

import (
	cmp "maragu.dev/gomponents"
	g "maragu.dev/gomponents/html"
)

// About renders the company story page.
func About() cmp.Node {
	value := func(title, body string) cmp.Node {
		return card(
			g.H3(g.Class("text-lg font-semibold text-amber-950"), cmp.Text(title)),
			g.P(g.Class("mt-2 text-sm text-stone-600"), cmp.Text(body)),
		)
	}
	milestone := func(year, title, body string) cmp.Node {
		return g.Div(
			g.Class("flex gap-4"),
			g.Div(g.Class("w-16 shrink-0 font-bold text-amber-700"), cmp.Text(year)),
			g.Div(
				g.H4(g.Class("font-semibold text-amber-950"), cmp.Text(title)),
				g.P(g.Class("mt-1 text-sm text-stone-600"), cmp.Text(body)),
			),
		)
	}

	return section("",
		sectionHeading("About Psalmos",
			"Bridging the gap between classical music's rich heritage and modern content creation, Psalmos is revolutionizing how classical music is licensed and distributed in the digital age."),
		g.Div(
			g.Class("mx-auto max-w-4xl rounded-2xl border border-amber-200 bg-amber-50 p-8"),
			g.H3(g.Class("font-serif text-2xl font-bold text-amber-950"), cmp.Text("Our Mission")),
			g.P(
				g.Class("mt-4 leading-relaxed text-stone-600"),
				cmp.Text("To democratize access to the world's finest classical music recordings while ensuring fair compensation for artists, orchestras, and labels. We're building the bridge between classical music's timeless artistry and today's digital content ecosystem, making it simple for creators to enhance their work with the emotional power of classical music."),
			),
		),
		g.Div(
			g.Class("mx-auto mt-16 grid max-w-5xl grid-cols-1 gap-6 md:grid-cols-2"),
			value("Preserving Classical Heritage",
				"We believe classical music is humanity's greatest artistic achievement and deserves to thrive in the digital age."),
			value("Transparent Rights Management",
				"Every license is clear, every payment is tracked, and every rights holder is fairly compensated."),
			value("Global Accessibility",
				"Making world-class classical recordings accessible to content creators everywhere, regardless of location."),
			value("Artist-First Approach",
				"Supporting musicians, orchestras, and labels by creating new revenue streams and expanding their reach."),
		),
		g.Div(
			g.Class("mx-auto mt-16 max-w-3xl"),
			g.H3(g.Class("mb-8 font-serif text-2xl font-bold text-amber-950"), cmp.Text("Milestones")),
			g.Div(
				g.Class("space-y-6"),
				milestone("2024", "Platform Launch",
					"Psalmos launches with partnerships from major classical labels including Deutsche Grammophon."),
				milestone("2024", "Global Expansion",
					"Expanded licensing coverage to 100+ countries with automated rights clearance."),
				milestone("2024", "Creator Community",
					"Built a thriving community of content creators using classical music in their projects."),
			),
		),
		g.Div(
			g.Class("mx-auto mt-16 max-w-3xl rounded-2xl bg-amber-950 p-8 text-center text-white"),
			g.H3(g.Class("font-serif text-2xl font-bold"), cmp.Text("The Future of Classical Music Licensing")),
			g.P(
				g.Class("mt-4 text-amber-100"),
				cmp.Text("We envision a world where classical music seamlessly integrates with modern content creation, where every YouTube video, podcast, and film can be enhanced by the emotional depth of classical music, and where every performance generates fair revenue for the artists who create it."),
			),
			g.Div(g.Class("mt-6"), outlineButtonLight("/pricing", "Join Our Mission")),
		),
	)
}

func outlineButtonLight(href, label string) cmp.Node {
	return g.A(
		g.Href(href),
		g.Class("inline-block rounded-md border border-amber-200 px-6 py-3 text-sm font-semibold text-amber-100 hover:bg-amber-900"),
		cmp.Text(label),
	)
}
