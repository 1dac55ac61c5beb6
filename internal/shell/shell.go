package shell

import (
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"
	cmp "maragu.dev/gomponents"

	"github.com/psalmos/web/internal/domain"
	"github.com/psalmos/web/internal/rendering"
	"github.com/psalmos/web/internal/view"
	"github.com/psalmos/web/web/src/templates/layouts"
	"github.com/psalmos/web/web/src/templates/partials"
)

// Shell composes full page responses. Every page request flows through
// RenderRoot, which applies the frame policy in a fixed order: a loading
// session renders only the loading indicator, a failed session renders only
// the error state, protected views without a user render the sign-in gate,
// and only then does the requested page render inside the chrome.
type Shell struct {
	registry Registry
	renderer rendering.Renderer
	services *Services
}

// New creates the shell over the given services.
func New(renderer rendering.Renderer, services *Services) *Shell {
	return &Shell{
		registry: NewRegistry(),
		renderer: renderer,
		services: services,
	}
}

// Registry exposes the page table, mainly for tests.
func (s *Shell) Registry() Registry { return s.registry }

// RenderRoot renders the response for a view under the given session.
func (s *Shell) RenderRoot(c echo.Context, sess domain.Session, v View) error {
	if sess.IsLoading {
		return s.renderer.RenderPage(c, http.StatusOK,
			layouts.Base("Loading", partials.Loading()))
	}

	if sess.Err != nil {
		slog.ErrorContext(c.Request().Context(), "Session resolution failed", "error", sess.Err)
		return s.renderer.RenderPage(c, http.StatusInternalServerError,
			layouts.Base("Something went wrong", partials.ErrorState()))
	}

	page := s.registry.Lookup(v)
	flashes := view.GetFlashData(c)

	if page.RequiresUser && !sess.Authenticated() {
		body := partials.SignInGate(c.QueryParam("form_email"))
		return s.renderer.RenderPage(c, http.StatusOK,
			layouts.Base(page.Title, s.frame(v, sess, flashes, false, body)))
	}

	pc := PageContext{
		Ctx:      c.Request().Context(),
		Session:  sess,
		Query:    c.QueryParams(),
		Flashes:  flashes,
		Services: s.services,
	}

	body, err := page.Render(pc)
	if err != nil {
		slog.ErrorContext(pc.Ctx, "Page render failed", "view", v.String(), "error", err)
		return s.renderer.RenderPage(c, http.StatusInternalServerError,
			layouts.Base("Something went wrong", partials.ErrorState()))
	}

	return s.renderer.RenderPage(c, http.StatusOK,
		layouts.Base(page.Title, s.frame(v, sess, flashes, page.ShowFooter, body)))
}

// frame wraps a body in the site chrome: header, flash banner, footer where
// the page asks for it, and the profile setup overlay for signed-in users
// who have not chosen a display name yet.
func (s *Shell) frame(v View, sess domain.Session, flashes view.FlashData, footer bool, body cmp.Node) cmp.Node {
	nodes := []cmp.Node{
		partials.Header(v.String(), sess.User),
		partials.FlashBanner(flashes),
		body,
	}
	if footer {
		nodes = append(nodes, partials.Footer())
	}
	if sess.Authenticated() && sess.NeedsProfileSetup() {
		nodes = append(nodes, partials.ProfileSetup(sess.User.Email))
	}
	return cmp.Group(nodes)
}
