package pages

import (
	cmp "maragu.dev/gomponents"
	g "maragu.dev/gomponents/html"
)

type pricingPlan struct {
	Name        string
	Price       string
	Description string
	Badge       string
	Features    []string
	Limitations []string
	ButtonText  string
	Popular     bool
}

var pricingPlans = []pricingPlan{
	{
		Name:        "Creator",
		Price:       "$29",
		Description: "Perfect for individual content creators and small projects",
		Features: []string{
			"Up to 50 downloads per month",
			"Standard quality (320kbps)",
			"YouTube & social media licensing",
			"Basic search and filters",
			"Email support",
			"Personal use license",
		},
		Limitations: []string{"No commercial use", "Limited to 3 projects"},
		ButtonText:  "Start Free Trial",
	},
	{
		Name:        "Professional",
		Price:       "$99",
		Description: "Ideal for professional creators and small businesses",
		Badge:       "Most Popular",
		Features: []string{
			"Up to 200 downloads per month",
			"High quality (FLAC/WAV)",
			"Full commercial licensing",
			"Advanced search & AI recommendations",
			"Priority support",
			"Multi-project management",
			"Usage analytics",
			"Custom licensing terms",
		},
		ButtonText: "Start Free Trial",
		Popular:    true,
	},
	{
		Name:        "Enterprise",
		Price:       "$299",
		Description: "For agencies, production companies, and large organizations",
		Badge:       "Premium",
		Features: []string{
			"Unlimited downloads",
			"Premium quality (24-bit/96kHz)",
			"Global commercial licensing",
			"White-label solutions",
			"Dedicated account manager",
			"Custom integrations (API)",
			"Bulk licensing discounts",
			"Advanced analytics & reporting",
			"Priority label partnerships",
		},
		ButtonText: "Contact Sales",
	},
}

// Pricing renders the standalone pricing page.
func Pricing() cmp.Node {
	return section("",
		sectionHeading("Simple, Transparent Pricing",
			"Choose the perfect plan for your creative needs. All plans include our premium classical music catalog and automated licensing."),
		PricingGrid(),
		g.P(
			g.Class("mt-12 text-center text-sm text-stone-500"),
			cmp.Text("All plans include a free 14-day trial. Cancel anytime."),
		),
	)
}

// PricingGrid renders the three plan cards. The home page embeds it inside
// its own pricing section.
func PricingGrid() cmp.Node {
	cards := make([]cmp.Node, 0, len(pricingPlans))
	for _, plan := range pricingPlans {
		cards = append(cards, planCard(plan))
	}
	return g.Div(
		g.Class("mx-auto grid max-w-6xl grid-cols-1 gap-8 lg:grid-cols-3"),
		cmp.Group(cards),
	)
}

func planCard(plan pricingPlan) cmp.Node {
	cardClass := "relative rounded-xl border border-stone-200 bg-white p-8 shadow-sm"
	if plan.Popular {
		cardClass = "relative rounded-xl border-2 border-amber-700 bg-white p-8 shadow-md"
	}

	var badge cmp.Node
	if plan.Badge != "" {
		badge = g.Span(
			g.Class("absolute -top-3 left-1/2 -translate-x-1/2 rounded-full bg-amber-900 px-3 py-1 text-xs font-medium text-white"),
			cmp.Text(plan.Badge),
		)
	}

	features := make([]cmp.Node, 0, len(plan.Features)+len(plan.Limitations))
	for _, f := range plan.Features {
		features = append(features, g.Li(g.Class("text-sm text-stone-700"), cmp.Text("✓ "+f)))
	}
	for _, l := range plan.Limitations {
		features = append(features, g.Li(g.Class("text-sm text-stone-400"), cmp.Text("✗ "+l)))
	}

	return g.Div(
		g.Class(cardClass),
		badge,
		g.H3(g.Class("text-lg font-semibold text-amber-950"), cmp.Text(plan.Name)),
		g.Div(
			g.Class("mt-4 flex items-baseline gap-1"),
			g.Span(g.Class("text-4xl font-bold text-stone-900"), cmp.Text(plan.Price)),
			g.Span(g.Class("text-sm text-stone-500"), cmp.Text("/month")),
		),
		g.P(g.Class("mt-3 text-sm text-stone-600"), cmp.Text(plan.Description)),
		g.Ul(g.Class("mt-6 space-y-2"), cmp.Group(features)),
		g.Div(g.Class("mt-8"), primaryButton("/dashboard", plan.ButtonText)),
	)
}
