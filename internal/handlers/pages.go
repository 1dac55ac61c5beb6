package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/psalmos/web/internal/catalog"
	"github.com/psalmos/web/internal/middleware"
	"github.com/psalmos/web/internal/rendering"
	"github.com/psalmos/web/internal/shell"
	"github.com/psalmos/web/web/src/templates/pages"
)

// PageHandler routes every view through the shell.
type PageHandler struct {
	shell    *shell.Shell
	catalog  *catalog.Service
	renderer rendering.Renderer
}

// NewPageHandler creates a new PageHandler.
func NewPageHandler(sh *shell.Shell, cat *catalog.Service, renderer rendering.Renderer) *PageHandler {
	return &PageHandler{shell: sh, catalog: cat, renderer: renderer}
}

// View returns the handler for a single view.
func (h *PageHandler) View(v shell.View) echo.HandlerFunc {
	return func(c echo.Context) error {
		sess := middleware.SessionFromContext(c)
		return h.shell.RenderRoot(c, sess, v)
	}
}

// BrowseResults serves the live-search fragment for the browse page
// (GET /browse/results). It returns only the track grid so htmx can swap it
// in place.
func (h *PageHandler) BrowseResults(c echo.Context) error {
	query := c.QueryParam("q")
	genre := c.QueryParam("genre")
	if genre == "" {
		genre = "All"
	}
	tracks := h.catalog.Search(query, genre)
	return h.renderer.RenderPage(c, http.StatusOK, pages.TrackResults(tracks))
}
