package pages

import (
	cmp "maragu.dev/gomponents"
	g "maragu.dev/gomponents/html"

	"github.com/psalmos/web/internal/domain"
)

// SettingsData is everything the settings page needs. Profile may be nil
// when the user has never saved one; the form then falls back to the
// account's display name. LoadFailed marks that a saved record could not be
// read and defaults are on screen instead.
type SettingsData struct {
	User          *domain.User
	ActiveTab     string
	Profile       *domain.ProfileRecord
	Notifications domain.NotificationPreferences
	Privacy       domain.PrivacyPreferences
	LoadFailed    bool
}

// Settings renders the tabbed settings page.
func Settings(data SettingsData) cmp.Node {
	var body cmp.Node
	switch data.ActiveTab {
	case "notifications":
		body = notificationsTab(data.Notifications)
	case "privacy":
		body = privacyTab(data.Privacy)
	case "account":
		body = accountTab(data.User)
	default:
		body = profileTab(data)
	}

	return section("",
		g.H1(g.Class("font-serif text-3xl font-bold text-amber-950"), cmp.Text("Settings")),
		g.P(g.Class("mt-1 text-stone-600"), cmp.Text("Manage your account settings and data")),
		settingsTabs(data.ActiveTab),
		cmp.If(data.LoadFailed, loadNotice()),
		g.Div(g.Class("mt-8 max-w-2xl"), body),
	)
}

func loadNotice() cmp.Node {
	return g.Div(
		g.Class("mt-6 max-w-2xl rounded-md border border-amber-200 bg-amber-50 px-4 py-3 text-sm text-amber-800"),
		cmp.Text("We could not load your saved preferences, so the defaults are shown. Saving will still apply your changes."),
	)
}

func settingsTabs(active string) cmp.Node {
	tab := func(key, label string) cmp.Node {
		class := "rounded-md px-4 py-2 text-sm text-stone-600 hover:bg-stone-100"
		if key == active {
			class = "rounded-md bg-amber-900 px-4 py-2 text-sm font-medium text-white"
		}
		return g.A(g.Href("/settings?tab="+key), g.Class(class), cmp.Text(label))
	}
	return g.Div(
		g.Class("mt-6 flex gap-2 border-b border-stone-200 pb-4"),
		tab("profile", "Profile"),
		tab("notifications", "Notifications"),
		tab("privacy", "Privacy"),
		tab("account", "Account"),
	)
}

func profileTab(data SettingsData) cmp.Node {
	displayName := ""
	if data.User.DisplayName != nil {
		displayName = *data.User.DisplayName
	}
	bio, company, website := "", "", ""
	if data.Profile != nil {
		displayName = data.Profile.DisplayName
		bio = data.Profile.Bio
		company = data.Profile.Company
		website = data.Profile.Website
	}

	return card(
		g.H2(g.Class("text-lg font-semibold text-amber-950"), cmp.Text("Profile Information")),
		g.Form(
			g.Method("post"),
			g.Action("/settings/profile"),
			g.Class("mt-6 space-y-5"),
			textField("display_name", "Display Name", displayName, true),
			g.Div(
				g.Label(g.For("email"), g.Class("block text-sm font-medium text-stone-700"), cmp.Text("Email")),
				g.Input(
					g.ID("email"),
					g.Type("email"),
					g.Value(data.User.Email),
					g.Disabled(),
					g.Class("mt-1 w-full rounded-md border border-stone-200 bg-stone-50 px-3 py-2 text-sm text-stone-500"),
				),
			),
			textField("company", "Company", company, false),
			textField("website", "Website", website, false),
			g.Div(
				g.Label(g.For("bio"), g.Class("block text-sm font-medium text-stone-700"), cmp.Text("Bio")),
				g.Textarea(
					g.ID("bio"),
					g.Name("bio"),
					g.Rows("4"),
					g.Class("mt-1 w-full rounded-md border border-stone-300 px-3 py-2 text-sm"),
					cmp.Text(bio),
				),
			),
			saveButton("Save Profile"),
		),
	)
}

func notificationsTab(prefs domain.NotificationPreferences) cmp.Node {
	return card(
		g.H2(g.Class("text-lg font-semibold text-amber-950"), cmp.Text("Notification Preferences")),
		g.Form(
			g.Method("post"),
			g.Action("/settings/notifications"),
			g.Class("mt-6 space-y-5"),
			toggle("email_updates", "Email Updates",
				"Receive updates about your account and licenses", prefs.EmailUpdates),
			toggle("new_releases", "New Releases",
				"Get notified when new classical recordings are added", prefs.NewReleases),
			toggle("license_reminders", "License Reminders",
				"Reminders about expiring licenses and renewals", prefs.LicenseReminders),
			toggle("marketing_emails", "Marketing Emails",
				"Promotional content and special offers", prefs.MarketingEmails),
			saveButton("Save Preferences"),
		),
	)
}

func privacyTab(prefs domain.PrivacyPreferences) cmp.Node {
	return card(
		g.H2(g.Class("text-lg font-semibold text-amber-950"), cmp.Text("Privacy Settings")),
		g.Form(
			g.Method("post"),
			g.Action("/settings/privacy"),
			g.Class("mt-6 space-y-5"),
			toggle("profile_visible", "Public Profile",
				"Make your profile visible to other users", prefs.ProfileVisible),
			toggle("show_download_history", "Show Download History",
				"Allow others to see what you have licensed", prefs.ShowDownloadHistory),
			toggle("allow_analytics", "Analytics",
				"Help us improve by sharing anonymous usage data", prefs.AllowAnalytics),
			saveButton("Save Preferences"),
		),
	)
}

func accountTab(user *domain.User) cmp.Node {
	return card(
		g.H2(g.Class("text-lg font-semibold text-amber-950"), cmp.Text("Account Management")),
		g.P(g.Class("mt-2 text-sm text-stone-600"), cmp.Text("Signed in as "+user.Email)),
		g.Div(
			g.Class("mt-6 rounded-md border border-red-200 bg-red-50 p-4"),
			g.H3(g.Class("text-sm font-semibold text-red-700"), cmp.Text("Delete Account")),
			g.P(
				g.Class("mt-1 text-sm text-red-600"),
				cmp.Text("Permanently delete your account and all associated data. This action cannot be undone."),
			),
			g.Button(
				g.Type("button"),
				g.Class("mt-3 rounded-md bg-red-600 px-4 py-2 text-sm font-medium text-white hover:bg-red-700"),
				cmp.Text("Delete Account"),
			),
		),
	)
}

func textField(name, label, value string, required bool) cmp.Node {
	attrs := []cmp.Node{
		g.ID(name),
		g.Type("text"),
		g.Name(name),
		g.Value(value),
		g.Class("mt-1 w-full rounded-md border border-stone-300 px-3 py-2 text-sm"),
	}
	if required {
		attrs = append(attrs, g.Required())
	}
	return g.Div(
		g.Label(g.For(name), g.Class("block text-sm font-medium text-stone-700"), cmp.Text(label)),
		g.Input(attrs...),
	)
}

func toggle(name, label, description string, checked bool) cmp.Node {
	attrs := []cmp.Node{
		g.ID(name),
		g.Type("checkbox"),
		g.Name(name),
		g.Value("true"),
		g.Class("mt-1 h-4 w-4"),
	}
	if checked {
		attrs = append(attrs, g.Checked())
	}
	return g.Div(
		g.Class("flex items-start justify-between gap-4"),
		g.Div(
			g.Label(g.For(name), g.Class("text-sm font-medium text-stone-700"), cmp.Text(label)),
			g.P(g.Class("text-sm text-stone-500"), cmp.Text(description)),
		),
		g.Input(attrs...),
	)
}

func saveButton(label string) cmp.Node {
	return g.Button(
		g.Type("submit"),
		g.Class("rounded-md bg-amber-900 px-5 py-2 text-sm font-medium text-white hover:bg-amber-800"),
		cmp.Text(label),
	)
}
