package pages

import (
	"fmt"

	cmp "maragu.dev/gomponents"
	g "maragu.dev/gomponents/html"

	"github.com/psalmos/web/internal/billing"
	"github.com/psalmos/web/internal/domain"
)

// Billing renders the subscription, usage and invoice history page.
func Billing(sub *domain.Subscription, invoices []domain.Invoice, usage domain.Usage) cmp.Node {
	return section("",
		g.H1(g.Class("font-serif text-3xl font-bold text-amber-950"), cmp.Text("Billing & Subscription")),
		g.P(g.Class("mt-1 text-stone-600"), cmp.Text("Manage your plan, monitor usage and download invoices.")),
		g.Div(
			g.Class("mt-8 grid max-w-4xl grid-cols-1 gap-8 lg:grid-cols-2"),
			subscriptionCard(sub),
			usageCard(usage),
		),
		g.Div(
			g.Class("mt-8 max-w-4xl"),
			invoiceTable(invoices),
		),
	)
}

func subscriptionCard(sub *domain.Subscription) cmp.Node {
	statusPill := pill(string(sub.Status))

	var cancelNotice cmp.Node
	var actionForm cmp.Node
	if sub.CancelAtPeriodEnd {
		cancelNotice = g.Div(
			g.Class("mt-4 rounded-md border border-yellow-200 bg-yellow-50 p-3 text-sm text-yellow-800"),
			cmp.Text("Subscription cancelled. You keep access until "+sub.CurrentPeriodEnd.Format("Jan 2, 2006")+"."),
		)
		actionForm = billingAction("/billing/reactivate", "Reactivate Subscription",
			"rounded-md bg-amber-900 px-4 py-2 text-sm font-medium text-white hover:bg-amber-800")
	} else {
		actionForm = billingAction("/billing/cancel", "Cancel Subscription",
			"rounded-md border border-red-300 px-4 py-2 text-sm text-red-600 hover:bg-red-50")
	}

	return card(
		g.Div(
			g.Class("flex items-center justify-between"),
			g.H2(g.Class("text-lg font-semibold text-amber-950"), cmp.Text("Current Plan")),
			statusPill,
		),
		g.Div(
			g.Class("mt-4 flex items-baseline gap-2"),
			g.Span(g.Class("text-3xl font-bold text-stone-900"), cmp.Text(sub.Plan)),
			g.Span(g.Class("text-stone-500"), cmp.Text(billing.FormatUSD(sub.PriceUSD)+"/month")),
		),
		g.P(
			g.Class("mt-2 text-sm text-stone-500"),
			cmp.Text("Next payment on "+sub.CurrentPeriodEnd.Format("Jan 2, 2006")),
		),
		cancelNotice,
		g.Div(g.Class("mt-6"), actionForm),
	)
}

func billingAction(action, label, class string) cmp.Node {
	return g.Form(
		g.Method("post"),
		g.Action(action),
		g.Button(g.Type("submit"), g.Class(class), cmp.Text(label)),
	)
}

func usageCard(usage domain.Usage) cmp.Node {
	bar := func(label, caption string, pct int) cmp.Node {
		if pct > 100 {
			pct = 100
		}
		return g.Div(
			g.Div(
				g.Class("flex justify-between text-sm"),
				g.Span(g.Class("font-medium text-stone-700"), cmp.Text(label)),
				g.Span(g.Class("text-stone-500"), cmp.Text(caption)),
			),
			g.Div(
				g.Class("mt-2 h-2 rounded-full bg-stone-200"),
				g.Div(
					g.Class("h-2 rounded-full bg-amber-700"),
					g.Style(fmt.Sprintf("width: %d%%", pct)),
				),
			),
		)
	}

	downloadsPct := 0
	if usage.DownloadsLimit > 0 {
		downloadsPct = usage.DownloadsUsed * 100 / usage.DownloadsLimit
	}
	storagePct := 0
	if usage.StorageLimitGB > 0 {
		storagePct = int(usage.StorageUsedGB * 100 / usage.StorageLimitGB)
	}

	return card(
		g.H2(g.Class("text-lg font-semibold text-amber-950"), cmp.Text("Usage")),
		g.Div(
			g.Class("mt-6 space-y-6"),
			bar("Downloads",
				fmt.Sprintf("%d of %d this period", usage.DownloadsUsed, usage.DownloadsLimit),
				downloadsPct),
			bar("Storage",
				fmt.Sprintf("%.1f GB of %.0f GB", usage.StorageUsedGB, usage.StorageLimitGB),
				storagePct),
		),
	)
}

func invoiceTable(invoices []domain.Invoice) cmp.Node {
	rows := make([]cmp.Node, 0, len(invoices))
	for _, inv := range invoices {
		rows = append(rows, g.Tr(
			g.Class("border-b border-stone-100"),
			g.Td(g.Class("py-3 text-sm text-stone-700"), cmp.Text(inv.Date.Format("Jan 2, 2006"))),
			g.Td(g.Class("py-3 text-sm text-stone-700"), cmp.Text(inv.Plan)),
			g.Td(g.Class("py-3 text-sm text-stone-700"), cmp.Text(billing.FormatUSD(inv.AmountUSD))),
			g.Td(g.Class("py-3"), pill(string(inv.Status))),
			g.Td(
				g.Class("py-3 text-right"),
				g.A(
					g.Href(inv.DownloadURL),
					g.Class("text-sm font-medium text-amber-800 hover:underline"),
					cmp.Text("Download"),
				),
			),
		))
	}

	return card(
		g.H2(g.Class("text-lg font-semibold text-amber-950"), cmp.Text("Billing History")),
		g.Table(
			g.Class("mt-4 w-full text-left"),
			g.THead(
				g.Tr(
					g.Class("border-b border-stone-200 text-xs uppercase tracking-wide text-stone-400"),
					g.Th(g.Class("py-2"), cmp.Text("Date")),
					g.Th(g.Class("py-2"), cmp.Text("Plan")),
					g.Th(g.Class("py-2"), cmp.Text("Amount")),
					g.Th(g.Class("py-2"), cmp.Text("Status")),
					g.Th(cmp.Text("")),
				),
			),
			g.TBody(cmp.Group(rows)),
		),
	)
}
