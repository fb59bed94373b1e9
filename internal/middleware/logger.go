package middleware

import (
	"context"
	"log/slog"
	"time"

	"github.com/labstack/echo/v4"
)

type contextKey string

const loggerKey = contextKey("logger")

// Logger is a middleware that injects a request-scoped logger into the context
// and writes one access line per request. The logger is pre-configured with the
// request ID from the RequestID middleware, so it should be placed after it.
func Logger(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		start := time.Now()
		req := c.Request()
		reqID := c.Response().Header().Get(echo.HeaderXRequestID)
		requestLogger := slog.Default().With("request_id", reqID)

		newCtx := context.WithValue(req.Context(), loggerKey, requestLogger)
		c.SetRequest(req.WithContext(newCtx))

		err := next(c)

		requestLogger.Debug("request",
			"method", req.Method,
			"path", req.URL.Path,
			"status", c.Response().Status,
			"htmx", req.Header.Get("HX-Request") == "true",
			"duration", time.Since(start),
		)
		return err
	}
}

// FromContext returns the request-scoped logger, or the default logger outside
// a request.
func FromContext(ctx context.Context) *slog.Logger {
	if logger, ok := ctx.Value(loggerKey).(*slog.Logger); ok {
		return logger
	}
	return slog.Default()
}
