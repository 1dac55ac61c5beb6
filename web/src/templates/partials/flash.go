package partials

import (
	cmp "maragu.dev/gomponents"
	g "maragu.dev/gomponents/html"

	"github.com/psalmos/web/internal/view"
)

// FlashBanner renders the queued flash messages, if any.
func FlashBanner(flashes view.FlashData) cmp.Node {
	if len(flashes.Success) == 0 && len(flashes.Error) == 0 {
		return nil
	}

	var banners []cmp.Node
	for _, msg := range flashes.Success {
		banners = append(banners, g.Div(
			g.Class("rounded-md border border-green-200 bg-green-50 px-4 py-3 text-sm text-green-800"),
			g.Role("status"),
			cmp.Text(msg),
		))
	}
	for _, msg := range flashes.Error {
		banners = append(banners, g.Div(
			g.Class("rounded-md border border-red-200 bg-red-50 px-4 py-3 text-sm text-red-800"),
			g.Role("alert"),
			cmp.Text(msg),
		))
	}

	return g.Div(
		g.Class("container mx-auto mt-4 space-y-2 px-4 sm:px-6 lg:px-8"),
		cmp.Group(banners),
	)
}
