// Package server wires the application together: configuration, database,
// session provider, event bus, storage, the shell and every route.
package server

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"runtime/debug"

	"github.com/gorilla/sessions"
	"github.com/labstack/echo-contrib/session"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/surrealdb/surrealdb.go"

	"github.com/psalmos/web/internal/audit"
	"github.com/psalmos/web/internal/auth"
	"github.com/psalmos/web/internal/billing"
	"github.com/psalmos/web/internal/catalog"
	"github.com/psalmos/web/internal/config"
	"github.com/psalmos/web/internal/database"
	"github.com/psalmos/web/internal/domain"
	"github.com/psalmos/web/internal/handlers"
	"github.com/psalmos/web/internal/licensing"
	"github.com/psalmos/web/internal/logging"
	"github.com/psalmos/web/internal/pubsub"
	"github.com/psalmos/web/internal/rendering"
	"github.com/psalmos/web/internal/shell"
	"github.com/psalmos/web/internal/storage"
)

// Server holds the dependencies for the HTTP server.
type Server struct {
	E   *echo.Echo
	DB  *surrealdb.DB
	Cfg config.Provider

	bus      *pubsub.WatermillBridge
	sessions auth.SessionProvider
	prefs    domain.PreferenceRepository
	shell    *shell.Shell

	pageHandler     *handlers.PageHandler
	authHandler     *handlers.AuthHandler
	setupHandler    *handlers.ProfileSetupHandler
	settingsHandler *handlers.SettingsHandler
	billingHandler  *handlers.BillingHandler
}

// New creates a fully wired Server.
func New() *Server {
	logging.New()
	cfg := config.New()

	db, err := database.NewDB(context.Background(), cfg)
	if err != nil {
		slog.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}

	bus := pubsub.NewWatermillBridge()
	if err := audit.Register(context.Background(), bus); err != nil {
		slog.Error("Failed to register audit subscriber", "error", err)
		os.Exit(1)
	}

	userStore := database.NewSurrealUserStore(db, cfg.GetDBNs(), cfg.GetDBDb())
	prefStore := database.NewPreferenceStore(db)
	sessionProvider := auth.NewProvider(userStore)
	auth.PublishSessionEvents(sessionProvider, bus)

	blobs := storage.NewBlobStore(
		storage.NewDiskStore(cfg.GetStorageRoot()),
		cfg.GetUploadBaseURL(),
	)

	renderer := rendering.NewUniversalRenderer()
	catalogSvc := catalog.NewService()
	licensingSvc := licensing.NewService()
	billingSvc := billing.NewService()

	appShell := shell.New(renderer, &shell.Services{
		Catalog:     catalogSvc,
		Licensing:   licensingSvc,
		Billing:     billingSvc,
		Preferences: prefStore,
	})

	e := echo.New()
	e.HideBanner = true
	e.Validator = handlers.NewValidator()
	e.Renderer = renderer

	e.Use(echomw.RequestID())
	e.Use(echomw.Recover())

	store := sessions.NewCookieStore([]byte(cfg.GetSessionSecret()))
	store.Options = &sessions.Options{
		Path:     "/",
		MaxAge:   86400 * 7,
		HttpOnly: true,
	}
	e.Use(session.Middleware(store))

	setupErrorHandling(e)

	return &Server{
		E:               e,
		DB:              db,
		Cfg:             cfg,
		bus:             bus,
		sessions:        sessionProvider,
		prefs:           prefStore,
		shell:           appShell,
		pageHandler:     handlers.NewPageHandler(appShell, catalogSvc, renderer),
		authHandler:     handlers.NewAuthHandler(sessionProvider),
		setupHandler:    handlers.NewProfileSetupHandler(sessionProvider, blobs),
		settingsHandler: handlers.NewSettingsHandler(sessionProvider, prefStore, bus),
		billingHandler:  handlers.NewBillingHandler(billingSvc),
	}
}

// Sessions exposes the session provider, useful for tests.
func (s *Server) Sessions() auth.SessionProvider {
	return s.sessions
}

// setupErrorHandling installs an error handler that logs unhandled errors
// with a stack trace before delegating to Echo's default rendering.
func setupErrorHandling(e *echo.Echo) {
	defaultHandler := e.HTTPErrorHandler
	e.HTTPErrorHandler = func(err error, c echo.Context) {
		if _, ok := err.(*echo.HTTPError); !ok {
			slog.Error("Internal Server Error (Unhandled)",
				"error", err,
				"method", c.Request().Method,
				"path", c.Request().URL.Path,
				"stack_trace", string(debug.Stack()),
			)
			err = echo.NewHTTPError(http.StatusInternalServerError)
		}
		defaultHandler(err, c)
	}
}
