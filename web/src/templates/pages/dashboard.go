package pages

import (
	"fmt"

	cmp "maragu.dev/gomponents"
	g "maragu.dev/gomponents/html"

	"github.com/psalmos/web/internal/domain"
	"github.com/psalmos/web/internal/licensing"
)

// Dashboard renders the signed-in landing page with license stats and the
// user's download history.
func Dashboard(user *domain.User, stats licensing.Stats, licenses []domain.License) cmp.Node {
	statCard := func(title, value, hint string) cmp.Node {
		return card(
			g.H3(g.Class("text-sm font-medium text-stone-500"), cmp.Text(title)),
			g.Div(g.Class("mt-2 text-3xl font-bold text-amber-950"), cmp.Text(value)),
			g.P(g.Class("mt-1 text-xs text-stone-400"), cmp.Text(hint)),
		)
	}

	licenseRows := make([]cmp.Node, 0, len(licenses))
	for _, lic := range licenses {
		licenseRows = append(licenseRows, licenseCard(lic))
	}

	return section("",
		g.Div(
			g.Class("mb-10 flex flex-wrap items-end justify-between gap-4"),
			g.Div(
				g.H1(g.Class("font-serif text-3xl font-bold text-amber-950"), cmp.Text("Dashboard")),
				g.P(
					g.Class("mt-1 text-stone-600"),
					cmp.Text("Welcome back, "+user.DisplayNameOrEmail()+". Manage and download your licensed classical music tracks."),
				),
			),
			primaryButton("/browse", "Browse Catalog"),
		),
		g.Div(
			g.Class("mb-12 grid grid-cols-1 gap-6 sm:grid-cols-2 lg:grid-cols-4"),
			statCard("Total Downloads", fmt.Sprintf("%d", stats.TotalDownloads), "Across all projects"),
			statCard("Active Plan", stats.ActivePlan, "Renews monthly"),
			statCard("Credits Used", fmt.Sprintf("%d / %d", stats.CreditsUsed, stats.CreditsTotal), "This billing period"),
			statCard("New This Month", fmt.Sprintf("%d", stats.NewThisMonth), "Recordings added to the catalog"),
		),
		g.H2(g.Class("mb-6 text-xl font-semibold text-amber-950"), cmp.Text("Your Licenses")),
		g.Div(g.Class("space-y-4"), cmp.Group(licenseRows)),
	)
}

func licenseCard(lic domain.License) cmp.Node {
	return card(
		g.Div(
			g.Class("flex flex-wrap items-start justify-between gap-4"),
			g.Div(
				g.H3(g.Class("font-semibold text-amber-950"), cmp.Text(lic.TrackTitle)),
				g.P(g.Class("text-sm text-stone-600"), cmp.Text(lic.Composer+" · "+lic.Performer)),
				g.P(g.Class("text-sm text-stone-500"), cmp.Text(lic.Label)),
			),
			g.Div(
				g.Class("text-right"),
				pill(string(lic.Type)+" license"),
				g.P(
					g.Class("mt-2 text-xs text-stone-400"),
					cmp.Text("Licensed "+lic.CreatedAt.Format("Jan 2, 2006")),
				),
			),
		),
		g.Div(g.Class("mt-3"), pillList(lic.UsageRights)),
		g.Div(
			g.Class("mt-4 flex gap-3"),
			g.A(
				g.Href(lic.DownloadURL),
				g.Class("rounded-md bg-amber-900 px-4 py-2 text-sm font-medium text-white hover:bg-amber-800"),
				cmp.Text("Download"),
			),
			g.Button(
				g.Type("button"),
				g.Class("rounded-md border border-stone-300 px-4 py-2 text-sm text-stone-600 hover:bg-stone-100"),
				cmp.Text("License"),
			),
		),
	)
}
