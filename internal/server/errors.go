package server

import (
	"errors"
	"log/slog"
	"net/http"
	"runtime/debug"

	"github.com/labstack/echo/v4"

	"github.com/nfrund/backstory/internal/domain"
	"github.com/nfrund/backstory/internal/middleware"
	"github.com/nfrund/backstory/internal/view"
	"github.com/nfrund/backstory/web/src/templates/layouts"
	"github.com/nfrund/backstory/web/src/templates/pages"
)

// setupErrorHandling installs the HTTP error handler. Known errors map to
// their status; anything else is a 500 logged with its stack trace.
func setupErrorHandling(e *echo.Echo) {
	e.HTTPErrorHandler = func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		code, msg := classify(err)
		logger := middleware.FromContext(c.Request().Context())
		if code == http.StatusInternalServerError {
			var he *echo.HTTPError
			if !errors.As(err, &he) {
				logger.Error("Internal Server Error (Unhandled)",
					"error", err.Error(),
					"path", c.Request().URL.Path,
					"stack_trace", string(debug.Stack()),
				)
			} else {
				logger.Error("Internal Server Error", "error", err.Error(), "path", c.Request().URL.Path)
			}
		} else {
			logger.Debug("request failed", "status", code, "error", err.Error())
		}

		if c.Request().Method == http.MethodHead {
			_ = c.NoContent(code)
			return
		}
		if c.Request().Header.Get("HX-Request") == "true" {
			// Nothing to swap for a failed fragment.
			c.Response().Header().Set("HX-Reswap", "none")
			_ = c.String(code, msg)
			return
		}

		page := layouts.Base(layouts.PageConfig{Title: http.StatusText(code)}, view.AdaptGomponentToTempl(pages.Error(code, msg)))
		if renderErr := c.Render(code, "", page); renderErr != nil {
			slog.Error("failed to render error page", "error", renderErr)
			_ = c.String(code, msg)
		}
	}
}

func classify(err error) (int, string) {
	var he *echo.HTTPError
	switch {
	case errors.As(err, &he):
		if m, ok := he.Message.(string); ok {
			return he.Code, m
		}
		return he.Code, http.StatusText(he.Code)
	case errors.Is(err, domain.ErrUnknownTab), errors.Is(err, domain.ErrNotFound):
		return http.StatusNotFound, "Not found"
	default:
		return http.StatusInternalServerError, "Something went wrong. Please try again later."
	}
}
