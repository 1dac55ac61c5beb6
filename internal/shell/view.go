// Package shell is the application frame: it knows every view the site can
// show, which views need a signed-in user, and how the root of a page is
// composed (loading state, error state, sign-in gate, header, footer and the
// profile setup overlay).
package shell

// View identifies one of the site's top-level pages.
type View string

const (
	ViewHome      View = "home"
	ViewDashboard View = "dashboard"
	ViewSettings  View = "settings"
	ViewBilling   View = "billing"
	ViewBrowse    View = "browse"
	ViewPricing   View = "pricing"
	ViewLabels    View = "labels"
	ViewAbout     View = "about"
)

// Views lists every view in navigation order.
func Views() []View {
	return []View{
		ViewHome,
		ViewBrowse,
		ViewPricing,
		ViewLabels,
		ViewAbout,
		ViewDashboard,
		ViewSettings,
		ViewBilling,
	}
}

// ParseView resolves a view name. Unknown names report false so callers can
// fall back to the home view instead of rendering a broken frame.
func ParseView(name string) (View, bool) {
	v := View(name)
	for _, known := range Views() {
		if v == known {
			return v, true
		}
	}
	return ViewHome, false
}

// String returns the view's wire name.
func (v View) String() string { return string(v) }
