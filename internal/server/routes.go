package server

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/psalmos/web/internal/middleware"
	"github.com/psalmos/web/internal/shell"
)

// RegisterRoutes sets up all the application routes.
func (s *Server) RegisterRoutes() {
	rateLimiter := middleware.RateLimiter()
	resolveSession := middleware.ResolveSession(s.sessions)

	s.E.Use(middleware.Logger)
	s.E.Use(resolveSession)

	// Every view renders through the shell; gating happens there, not in
	// the router, so protected URLs still show the sign-in gate.
	s.E.GET("/", s.pageHandler.View(shell.ViewHome))
	s.E.GET("/browse", s.pageHandler.View(shell.ViewBrowse))
	s.E.GET("/browse/results", s.pageHandler.BrowseResults)
	s.E.GET("/pricing", s.pageHandler.View(shell.ViewPricing))
	s.E.GET("/labels", s.pageHandler.View(shell.ViewLabels))
	s.E.GET("/about", s.pageHandler.View(shell.ViewAbout))
	s.E.GET("/dashboard", s.pageHandler.View(shell.ViewDashboard))
	s.E.GET("/settings", s.pageHandler.View(shell.ViewSettings))
	s.E.GET("/billing", s.pageHandler.View(shell.ViewBilling))

	s.E.POST("/auth/register", s.authHandler.RegisterPost, rateLimiter)
	s.E.POST("/auth/login", s.authHandler.LoginPost, rateLimiter)
	s.E.POST("/auth/logout", s.authHandler.Logout)

	s.E.POST("/profile/setup", s.setupHandler.SetupPost)

	s.E.POST("/settings/profile", s.settingsHandler.SaveProfile)
	s.E.POST("/settings/notifications", s.settingsHandler.SaveNotifications)
	s.E.POST("/settings/privacy", s.settingsHandler.SavePrivacy)

	s.E.POST("/billing/cancel", s.billingHandler.Cancel)
	s.E.POST("/billing/reactivate", s.billingHandler.Reactivate)

	s.E.Static("/static", "web/static")
	s.E.Static("/uploads", s.Cfg.GetStorageRoot())

	s.E.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "OK")
	})
}
