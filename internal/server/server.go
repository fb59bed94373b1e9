package server

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/gorilla/sessions"
	"github.com/labstack/echo-contrib/session"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/samber/do/v2"

	"github.com/nfrund/backstory/internal/config"
	"github.com/nfrund/backstory/internal/contact"
	"github.com/nfrund/backstory/internal/content"
	"github.com/nfrund/backstory/internal/handlers"
	"github.com/nfrund/backstory/internal/middleware"
	"github.com/nfrund/backstory/internal/pubsub"
	"github.com/nfrund/backstory/internal/rendering"
)

// Server holds the dependencies for the HTTP server.
type Server struct {
	E      *echo.Echo
	Cfg    config.Provider
	logger *slog.Logger

	content        *content.Store
	bus            *pubsub.WatermillBridge
	siteHandler    *handlers.SiteHandler
	contactHandler *handlers.ContactHandler
}

// New builds the server from the services registered in injector.
func New(injector do.Injector) (*Server, error) {
	cfg, err := do.Invoke[config.Provider](injector)
	if err != nil {
		return nil, err
	}
	logger := do.MustInvoke[*slog.Logger](injector)

	store, err := do.Invoke[*content.Store](injector)
	if err != nil {
		return nil, fmt.Errorf("failed to load content: %w", err)
	}
	renderer, err := do.Invoke[rendering.Renderer](injector)
	if err != nil {
		return nil, err
	}
	contactService, err := do.Invoke[*contact.Service](injector)
	if err != nil {
		return nil, fmt.Errorf("failed to set up contact forms: %w", err)
	}
	bus, err := do.Invoke[*pubsub.WatermillBridge](injector)
	if err != nil {
		return nil, err
	}

	e := echo.New()
	e.HideBanner = true
	e.Validator = handlers.NewValidator()
	e.Renderer = rendering.NewUniversalRenderer()
	e.Use(echomw.Recover())
	e.Use(echomw.RequestID())
	e.Use(middleware.Logger)
	e.Use(echomw.Secure())

	// Sessions only carry flash messages for the no-JavaScript form fallback.
	sessStore := sessions.NewCookieStore([]byte(cfg.GetSessionSecret()))
	sessStore.Options = &sessions.Options{
		Path:     "/",
		MaxAge:   600,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	}
	e.Use(session.Middleware(sessStore))

	setupErrorHandling(e)

	siteHandler := handlers.NewSiteHandler(store, renderer)
	return &Server{
		E:              e,
		Cfg:            cfg,
		logger:         logger,
		content:        store,
		bus:            bus,
		siteHandler:    siteHandler,
		contactHandler: handlers.NewContactHandler(siteHandler, contactService),
	}, nil
}
