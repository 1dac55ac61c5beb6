package shell

import (
	"context"
	"log/slog"
	"net/url"

	"maragu.dev/gomponents"

	"github.com/psalmos/web/internal/billing"
	"github.com/psalmos/web/internal/catalog"
	"github.com/psalmos/web/internal/domain"
	"github.com/psalmos/web/internal/licensing"
	"github.com/psalmos/web/internal/view"
	"github.com/psalmos/web/web/src/templates/pages"
)

// Services bundles the data providers pages pull from while rendering.
type Services struct {
	Catalog     *catalog.Service
	Licensing   *licensing.Service
	Billing     *billing.Service
	Preferences domain.PreferenceRepository
}

// PageContext is everything a page render gets to work with: the request
// context, the resolved session, the query string and the flash messages
// queued for this render.
type PageContext struct {
	Ctx      context.Context
	Session  domain.Session
	Query    url.Values
	Flashes  view.FlashData
	Services *Services
}

// Page describes one view's rendering contract.
type Page struct {
	Title        string
	RequiresUser bool
	ShowFooter   bool
	Render       func(PageContext) (gomponents.Node, error)
}

// Registry maps every view to its page. The map is total over Views();
// lookups of unknown views fall back to the home page.
type Registry map[View]Page

// Lookup returns the page for a view, falling back to home.
func (r Registry) Lookup(v View) Page {
	if page, ok := r[v]; ok {
		return page
	}
	return r[ViewHome]
}

// NewRegistry builds the page table.
func NewRegistry() Registry {
	return Registry{
		ViewHome: {
			Title:      "Psalmos",
			ShowFooter: true,
			Render: func(pc PageContext) (gomponents.Node, error) {
				return pages.Home(pc.Session.Authenticated()), nil
			},
		},
		ViewBrowse: {
			Title: "Browse Music",
			Render: func(pc PageContext) (gomponents.Node, error) {
				query := pc.Query.Get("q")
				genre := pc.Query.Get("genre")
				if genre == "" {
					genre = "All"
				}
				tracks := pc.Services.Catalog.Search(query, genre)
				return pages.Browse(pc.Services.Catalog.Genres(), genre, query, tracks), nil
			},
		},
		ViewPricing: {
			Title: "Pricing",
			Render: func(pc PageContext) (gomponents.Node, error) {
				return pages.Pricing(), nil
			},
		},
		ViewLabels: {
			Title: "Partner Labels",
			Render: func(pc PageContext) (gomponents.Node, error) {
				c := pc.Services.Catalog
				return pages.Labels(c.MajorLabels(), c.IndependentLabels(), c.SpecializedLabels()), nil
			},
		},
		ViewAbout: {
			Title: "About",
			Render: func(pc PageContext) (gomponents.Node, error) {
				return pages.About(), nil
			},
		},
		ViewDashboard: {
			Title:        "Dashboard",
			RequiresUser: true,
			Render: func(pc PageContext) (gomponents.Node, error) {
				stats, err := pc.Services.Licensing.StatsForUser(pc.Ctx, pc.Session.User)
				if err != nil {
					return nil, err
				}
				licenses, err := pc.Services.Licensing.ForUser(pc.Ctx, pc.Session.User)
				if err != nil {
					return nil, err
				}
				return pages.Dashboard(pc.Session.User, stats, licenses), nil
			},
		},
		ViewSettings: {
			Title:        "Settings",
			RequiresUser: true,
			Render: func(pc PageContext) (gomponents.Node, error) {
				return pages.Settings(loadSettings(pc)), nil
			},
		},
		ViewBilling: {
			Title:        "Billing",
			RequiresUser: true,
			Render: func(pc PageContext) (gomponents.Node, error) {
				user := pc.Session.User
				sub, err := pc.Services.Billing.Subscription(pc.Ctx, user)
				if err != nil {
					return nil, err
				}
				invoices, err := pc.Services.Billing.Invoices(pc.Ctx, user)
				if err != nil {
					return nil, err
				}
				usage, err := pc.Services.Billing.Usage(pc.Ctx, user)
				if err != nil {
					return nil, err
				}
				return pages.Billing(sub, invoices, usage), nil
			},
		},
	}
}

// loadSettings assembles the settings page data, substituting defaults for
// preference categories the user has never saved. A failed read never crashes
// the page: it is logged, the defaults stand in, and the form shows an inline
// notice so the user knows their saved values are not on screen.
func loadSettings(pc PageContext) pages.SettingsData {
	user := pc.Session.User
	prefs := pc.Services.Preferences

	tab := pc.Query.Get("tab")
	switch tab {
	case "notifications", "privacy", "account":
	default:
		tab = "profile"
	}

	data := pages.SettingsData{
		User:          user,
		ActiveTab:     tab,
		Notifications: domain.DefaultNotificationPreferences(),
		Privacy:       domain.DefaultPrivacyPreferences(),
	}

	profile, err := prefs.GetProfile(pc.Ctx, user.ID)
	if err != nil {
		slog.WarnContext(pc.Ctx, "Failed to load profile record", "error", err)
		data.LoadFailed = true
	}
	data.Profile = profile

	if notif, err := prefs.GetNotifications(pc.Ctx, user.ID); err != nil {
		slog.WarnContext(pc.Ctx, "Failed to load notification preferences", "error", err)
		data.LoadFailed = true
	} else if notif != nil {
		data.Notifications = *notif
	}

	if privacy, err := prefs.GetPrivacy(pc.Ctx, user.ID); err != nil {
		slog.WarnContext(pc.Ctx, "Failed to load privacy preferences", "error", err)
		data.LoadFailed = true
	} else if privacy != nil {
		data.Privacy = *privacy
	}

	return data
}
