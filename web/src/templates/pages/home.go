package pages

import (
	cmp "maragu.dev/gomponents"
	g "maragu.dev/gomponents/html"
)

// Home renders the marketing landing page. signedIn switches the hero and
// final call-to-action between trial signup and browse/dashboard links.
func Home(signedIn bool) cmp.Node {
	return cmp.Group([]cmp.Node{
		hero(signedIn),
		featureCards(),
		statsBar(),
		problem(),
		marketOpportunity(),
		solution(),
		featuresAndBenefits(),
		socialProof(),
		section("bg-stone-100",
			sectionHeading("Simple, Transparent Pricing",
				"Choose the perfect plan for your creative needs. All plans include our premium classical music catalog and automated licensing."),
			PricingGrid(),
		),
		faq(),
		finalCTA(signedIn),
	})
}

func hero(signedIn bool) cmp.Node {
	var buttons cmp.Node
	if signedIn {
		buttons = cmp.Group([]cmp.Node{
			primaryButton("/browse", "Browse Music"),
			outlineButton("/dashboard", "My Dashboard"),
		})
	} else {
		buttons = cmp.Group([]cmp.Node{
			primaryButton("/dashboard", "Start Free 14-Day Trial"),
			outlineButton("/browse", "Browse the Catalog"),
		})
	}

	return g.Section(
		g.Class("bg-gradient-to-br from-stone-50 to-amber-50 py-24"),
		g.Div(
			g.Class("container mx-auto px-4 sm:px-6 lg:px-8"),
			g.Div(
				g.Class("max-w-3xl"),
				g.H1(
					g.Class("text-4xl font-bold leading-tight text-amber-950 sm:text-5xl lg:text-6xl"),
					g.Span(g.Class("font-serif"), cmp.Text("The Classical Music Platform")),
					g.Span(g.Class("block text-amber-700"), cmp.Text("Content Creators Have Been Waiting For")),
				),
				g.P(
					g.Class("mt-6 max-w-2xl text-lg leading-relaxed text-stone-600 sm:text-xl"),
					cmp.Text("Stop fighting copyright claims. Stop waiting months for approvals. Start downloading world-class classical music in 60 seconds."),
				),
				g.P(
					g.Class("mt-4 text-sm italic text-stone-500"),
					cmp.Text("Join 2,500+ creators who've discovered classical music without the legal headaches"),
				),
				g.Div(g.Class("mt-8 flex flex-col gap-4 sm:flex-row"), buttons),
			),
		),
	)
}

func featureCards() cmp.Node {
	feature := func(title, body string) cmp.Node {
		return card(
			g.H3(g.Class("text-xl font-semibold text-amber-950"), cmp.Text(title)),
			g.P(g.Class("mt-3 text-stone-600"), cmp.Text(body)),
		)
	}
	return section("bg-stone-100",
		g.Div(
			g.Class("mx-auto grid max-w-6xl grid-cols-1 gap-8 md:grid-cols-3"),
			feature("Automated Licensing", "Instant micro-licenses with transparent rights management and revenue distribution"),
			feature("Global Coverage", "Worldwide licensing rights for YouTube, podcasts, films, and commercial projects"),
			feature("Premium Quality", "High-fidelity recordings from prestigious labels and world-renowned orchestras"),
		),
	)
}

func statsBar() cmp.Node {
	stat := func(value, label string) cmp.Node {
		return g.Div(
			g.Class("text-center"),
			g.Div(g.Class("text-3xl font-bold text-amber-700"), cmp.Text(value)),
			g.Div(g.Class("mt-1 text-sm text-stone-500"), cmp.Text(label)),
		)
	}
	return g.Section(
		g.Class("py-16"),
		g.Div(
			g.Class("container mx-auto grid max-w-4xl grid-cols-2 gap-8 px-4 md:grid-cols-4"),
			stat("10,000+", "Classical Recordings"),
			stat("50+", "Prestigious Labels"),
			stat("100+", "Countries Covered"),
			stat("24/7", "Instant Licensing"),
		),
	)
}

func problem() cmp.Node {
	pain := func(title, body string) cmp.Node {
		return g.Div(
			g.Class("rounded-xl border border-red-200 bg-red-50 p-6"),
			g.H4(g.Class("font-semibold text-red-700"), cmp.Text(title)),
			g.P(g.Class("mt-2 text-sm text-red-600"), cmp.Text(body)),
		)
	}
	return section("bg-gradient-to-br from-red-50 to-orange-50",
		sectionHeading("The $104 Billion Creator Economy Has a Problem",
			"Every day, thousands of content creators search for the perfect background music. They want something sophisticated, timeless, and emotionally rich. They want classical music. But here's what happens instead:"),
		g.H3(g.Class("mb-8 text-center text-2xl font-bold text-amber-950"), cmp.Text("The Current Nightmare:")),
		g.Div(
			g.Class("mx-auto grid max-w-6xl grid-cols-1 gap-6 md:grid-cols-2 lg:grid-cols-3"),
			pain("\"Free\" Mozart gets you copyright strikes", "Even though he died 250 years ago"),
			pain("Licensing takes 2-6 months", "Through lawyers and complex paperwork"),
			pain("Costs $1,000-$10,000+ per track", "For proper clearance"),
			pain("Rights fragmented across 100+ labels", "Each with different terms and processes"),
			pain("No one answers the phone", "Labels don't prioritize small creators"),
			pain("Quality is inconsistent", "Amateur recordings mixed with professional ones"),
		),
		g.Div(
			g.Class("mx-auto mt-12 max-w-4xl rounded-2xl border border-red-200 bg-red-100/70 p-8 text-center"),
			g.H3(g.Class("text-2xl font-bold text-amber-950"), cmp.Text("The Cruel Irony:")),
			g.P(
				g.Class("mt-4 text-lg italic text-stone-600"),
				cmp.Text("A high school student playing Beethoven can get a copyright claim on YouTube, despite performing a 200-year-old composition."),
			),
		),
		g.Div(
			g.Class("mx-auto mt-8 max-w-3xl rounded-2xl border border-stone-200 bg-white p-8 text-center"),
			g.H3(g.Class("text-xl font-bold text-amber-950"), cmp.Text("Result:")),
			g.P(
				g.Class("mt-4 text-lg text-stone-600"),
				cmp.Text("Creators abandon classical music entirely, settling for generic loops that sound like elevator music."),
			),
		),
	)
}

func marketOpportunity() cmp.Node {
	stat := func(value, label string) cmp.Node {
		return g.Div(
			g.Class("rounded-xl border border-green-200 bg-green-50 p-6 text-center"),
			g.Div(g.Class("text-3xl font-bold text-green-700"), cmp.Text(value)),
			g.P(g.Class("mt-2 text-sm text-stone-600"), cmp.Text(label)),
		)
	}
	audience := func(title, body string) cmp.Node {
		return card(
			g.H4(g.Class("font-semibold text-amber-950"), cmp.Text(title)),
			g.P(g.Class("mt-2 text-sm text-stone-600"), cmp.Text(body)),
		)
	}
	return section("",
		sectionHeading("The Hidden $384 Million Opportunity",
			"While everyone focuses on pop music, classical music represents a massive, underserved market:"),
		g.Div(
			g.Class("mx-auto grid max-w-5xl grid-cols-1 gap-6 sm:grid-cols-2 lg:grid-cols-5"),
			stat("$384M", "Global classical music licensing market"),
			stat("35%", "Of consumers actively listen to classical music"),
			stat("46%", "Annual growth in classical streaming"),
			stat("71%", "Of premium content uses orchestral music"),
			stat("40%", "Higher income - classical listeners vs average music consumers"),
		),
		g.H3(g.Class("mb-8 mt-16 text-center text-2xl font-bold text-amber-950"), cmp.Text("Who's Desperate for This Solution:")),
		g.Div(
			g.Class("mx-auto grid max-w-4xl grid-cols-1 gap-6 md:grid-cols-3"),
			audience("YouTubers/Content Creators", "Creating educational, documentary, and lifestyle content"),
			audience("Podcasters", "Wanting sophisticated background scores"),
			audience("Filmmakers", "Needing cinematic orchestral music"),
		),
		g.Div(
			g.Class("mx-auto mt-12 max-w-4xl rounded-2xl border border-amber-200 bg-amber-50 p-8 text-center"),
			g.H3(g.Class("text-2xl font-bold text-amber-950"), cmp.Text("The Market Failure:")),
			g.P(
				g.Class("mt-4 text-lg text-stone-600"),
				cmp.Text("Despite enormous demand, no platform properly serves creator classical music licensing. Major labels profit from complexity. Existing platforms ignore classical. Creators suffer."),
			),
			g.P(g.Class("mt-4 text-lg font-semibold text-amber-900"), cmp.Text("That changes today.")),
		),
	)
}

func solution() cmp.Node {
	step := func(title, body string) cmp.Node {
		return g.Div(
			g.Class("rounded-xl border border-amber-200 bg-amber-50 p-6 text-center"),
			g.Div(g.Class("text-lg font-semibold text-amber-950"), cmp.Text(title)),
			g.P(g.Class("mt-2 text-sm text-stone-600"), cmp.Text(body)),
		)
	}
	item := func(class, label string) cmp.Node {
		return g.Li(g.Class(class), cmp.Text(label))
	}
	return section("bg-gradient-to-br from-amber-50 to-stone-100",
		sectionHeading("Introducing Psalmos: Classical Music Licensing, Finally Solved",
			"We've spent 18 months solving every barrier between you and the world's greatest music."),
		g.H3(g.Class("mb-8 text-center text-2xl font-bold text-amber-950"), cmp.Text("How It Works:")),
		g.Div(
			g.Class("mx-auto grid max-w-6xl grid-cols-1 gap-6 md:grid-cols-2 lg:grid-cols-4"),
			step("1. Search", "Our catalog of 10,000+ pre-cleared classical recordings"),
			step("2. Preview", "With specialized filters (mood, era, instrumentation, energy)"),
			step("3. Download Instantly", "With automatic license certificate"),
			step("4. Create Confidently", "With guaranteed Content ID protection"),
		),
		g.Div(
			g.Class("mx-auto mt-16 grid max-w-6xl grid-cols-1 gap-8 lg:grid-cols-2"),
			g.Div(
				g.Class("rounded-xl border border-red-200 bg-red-50 p-8"),
				g.H3(g.Class("text-2xl font-bold text-red-700"), cmp.Text("No More:")),
				g.Ul(
					g.Class("mt-6 space-y-3"),
					item("text-red-600", "Lawyers and legal fees"),
					item("text-red-600", "Months of waiting"),
					item("text-red-600", "Copyright claims"),
					item("text-red-600", "Complex paperwork"),
					item("text-red-600", "Multiple rights holders"),
					item("text-red-600", "Geographic restrictions"),
				),
			),
			g.Div(
				g.Class("rounded-xl border border-green-200 bg-green-50 p-8"),
				g.H3(g.Class("text-2xl font-bold text-green-700"), cmp.Text("Yes To:")),
				g.Ul(
					g.Class("mt-6 space-y-3 font-semibold"),
					item("text-green-600", "60-second licensing process"),
					item("text-green-600", "One subscription, unlimited downloads"),
					item("text-green-600", "Platform whitelisting included"),
					item("text-green-600", "High-res audio + stems available"),
					item("text-green-600", "API integration with editing software"),
					item("text-green-600", "Classical-specific metadata and search"),
				),
			),
		),
	)
}

func featuresAndBenefits() cmp.Node {
	benefit := func(title, body string, badges []string) cmp.Node {
		return card(
			g.H3(g.Class("text-xl font-semibold text-amber-950"), cmp.Text(title)),
			g.P(g.Class("mt-3 text-stone-600"), cmp.Text(body)),
			g.Div(g.Class("mt-4"), pillList(badges)),
		)
	}
	return section("",
		sectionHeading("Built by Creators, for Creators", ""),
		g.Div(
			g.Class("mx-auto grid max-w-6xl grid-cols-1 gap-8 md:grid-cols-2 lg:grid-cols-3"),
			benefit("Smart Classical Search",
				"Unlike generic music platforms, search by mood, historical period, instrumentation, and energy level. Find the perfect Vivaldi for your travel vlog or dramatic Tchaikovsky for your documentary climax.",
				[]string{"Mood", "Era", "Instrumentation", "Energy"}),
			benefit("Legal Protection Guaranteed",
				"Every track comes with automatic Content ID whitelisting. No more appeals, disputes, or demonetization. Create with confidence.",
				[]string{"Content ID", "Whitelisting", "Zero Claims"}),
			benefit("Professional Metadata",
				"Every recording tagged with composer, era, orchestra, conductor, tempo and key, so the right piece is always a search away.",
				[]string{"Composer", "Orchestra", "Tempo", "Key"}),
			benefit("Creator Workflow Integration",
				"Premiere Pro, Final Cut, Logic Pro extensions. Browse and license music without leaving your editing software.",
				[]string{"Premiere Pro", "Final Cut", "Logic Pro"}),
			benefit("Multiple Formats",
				"320kbps MP3, 48kHz WAV, plus individual stems (strings, brass, woodwinds, percussion) for maximum creative control.",
				[]string{"High-res WAV", "Individual Stems", "Multiple Formats"}),
			benefit("Usage Analytics",
				"Track which pieces perform best in your content. Data-driven music selection for maximum audience engagement.",
				[]string{"Performance Tracking", "Engagement Data", "Insights"}),
		),
	)
}

func socialProof() cmp.Node {
	testimonial := func(quote, name, role, badge string) cmp.Node {
		return card(
			g.P(g.Class("italic text-stone-600"), cmp.Text(quote)),
			g.Div(
				g.Class("mt-4"),
				g.Div(g.Class("font-semibold text-amber-950"), cmp.Text(name)),
				g.Div(g.Class("text-sm text-stone-500"), cmp.Text(role)),
				g.Div(g.Class("mt-1"), pill(badge)),
			),
		)
	}
	number := func(value, label string) cmp.Node {
		return g.Div(
			g.Class("rounded-xl border border-stone-200 bg-white p-6 text-center"),
			g.Div(g.Class("text-2xl font-bold text-amber-700"), cmp.Text(value)),
			g.Div(g.Class("mt-1 text-sm text-stone-500"), cmp.Text(label)),
		)
	}
	return section("bg-stone-100",
		sectionHeading("Trusted by Creators Worldwide", ""),
		g.Div(
			g.Class("mx-auto grid max-w-6xl grid-cols-1 gap-8 md:grid-cols-3"),
			testimonial(
				"\"I've spent the last 3 years fighting copyright claims on classical music. Psalmos solved this in my first download. Game changer.\"",
				"Sarah Chen", "Documentary Filmmaker", "847K YouTube subscribers"),
			testimonial(
				"\"Finally found Rachmaninoff that doesn't get claimed. My productivity videos have never sounded better.\"",
				"Marcus Rivera", "Productivity YouTuber", "1.2M subscribers"),
			testimonial(
				"\"The metadata is incredible. I can find the exact mood and energy I need in seconds.\"",
				"Emma Thompson", "Podcast Producer", "Top 100 Business Podcast"),
		),
		g.H3(g.Class("mb-8 mt-16 text-center text-2xl font-bold text-amber-950"), cmp.Text("By The Numbers:")),
		g.Div(
			g.Class("mx-auto grid max-w-4xl grid-cols-2 gap-6 md:grid-cols-4"),
			number("2,500+", "Active creators"),
			number("4.9/5", "Average rating"),
			number("Zero", "Copyright claims on licensed content"),
			number("73%", "Faster content creation (avg. time savings)"),
		),
		g.P(
			g.Class("mt-12 text-center text-sm text-stone-500"),
			cmp.Text("Trusted by creators from: YouTube, Netflix, Spotify, Apple, Disney, HBO"),
		),
	)
}

func faq() cmp.Node {
	item := func(question, answer string) cmp.Node {
		return g.Details(
			g.Class("border-b border-stone-200 py-4"),
			g.Summary(g.Class("cursor-pointer font-medium text-amber-950"), cmp.Text(question)),
			g.P(g.Class("mt-3 text-stone-600"), cmp.Text(answer)),
		)
	}
	return section("",
		sectionHeading("Frequently Asked Questions", ""),
		g.Div(
			g.Class("mx-auto max-w-3xl rounded-xl border border-stone-200 bg-white p-8"),
			item("How is this different from YouTube's Audio Library?",
				"YouTube's classical selection is tiny and low-quality. We have 10,000+ professional recordings with proper metadata, multiple formats, and guaranteed licensing."),
			item("Will I really never get copyright claims?",
				"Guaranteed. We handle all platform whitelisting automatically. If you somehow get a claim (hasn't happened yet), we resolve it within 24 hours."),
			item("Can I use this music commercially?",
				"Yes! Our Pro and Studio plans include commercial licensing. Perfect for client work, advertisements, and monetized content."),
			item("What if I need a specific piece you don't have?",
				"Studio plan members can request custom recordings. We work with orchestras worldwide to fulfill specific needs."),
			item("How quickly can I download music?",
				"Instantly. No approval process, no waiting. Search, preview, download, create."),
			item("Do you have stems/individual instruments?",
				"Yes! Pro and Studio plans include stems for strings, brass, woodwinds, and percussion sections."),
		),
	)
}

func finalCTA(signedIn bool) cmp.Node {
	var buttons cmp.Node
	if signedIn {
		buttons = primaryButton("/browse", "Browse Music Library")
	} else {
		buttons = cmp.Group([]cmp.Node{
			primaryButton("/dashboard", "Start Your Free 14-Day Trial"),
			outlineButton("/about", "Schedule Demo Call"),
		})
	}
	return g.Section(
		g.Class("bg-amber-950 py-20 text-center text-white"),
		g.Div(
			g.Class("container mx-auto px-4 sm:px-6 lg:px-8"),
			g.H2(g.Class("font-serif text-3xl font-bold sm:text-4xl"), cmp.Text("Ready to Transform Your Content?")),
			g.P(
				g.Class("mx-auto mt-4 max-w-2xl text-lg text-amber-100"),
				cmp.Text("The classical music you've always wanted is just one click away. Join thousands of creators who've discovered the power of proper classical music licensing."),
			),
			g.Div(g.Class("mt-8 flex flex-col justify-center gap-4 sm:flex-row"), buttons),
		),
	)
}
