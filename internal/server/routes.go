package server

import (
	"io/fs"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/nfrund/backstory/internal/handlers"
	"github.com/nfrund/backstory/internal/metrics"
	"github.com/nfrund/backstory/internal/middleware"
	"github.com/nfrund/backstory/web"
)

// RegisterRoutes sets up all the application routes.
func (s *Server) RegisterRoutes() {
	static, err := fs.Sub(web.FS, "static")
	if err != nil {
		// web.FS is embedded at build time; a missing directory is a build bug.
		panic(err)
	}
	s.E.StaticFS("/static", static)

	s.E.GET("/", s.siteHandler.HomeGet)
	s.E.GET("/choreography.json", s.siteHandler.ChoreographyGet)
	s.E.GET("/podcast/tabs/:tab", s.siteHandler.PodcastTabGet)

	contactLimit := middleware.RateLimiter(s.Cfg.GetContactRateLimit())
	s.E.POST("/contact/inquiry", s.contactHandler.InquiryPost, contactLimit)
	s.E.POST("/contact/quick", s.contactHandler.QuickPost, contactLimit)
	s.E.GET("/contact/banner/idle", s.contactHandler.BannerIdleGet)

	s.E.GET("/metrics", echo.WrapHandler(metrics.Handler()))
	s.E.GET("/health", handlers.Health)
	s.E.HEAD("/health", func(c echo.Context) error { return c.NoContent(http.StatusOK) })
}
