package server

import (
	"bytes"
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nfrund/backstory/internal/app"
	"github.com/nfrund/backstory/internal/config"
	"github.com/nfrund/backstory/internal/domain"
)

func TestHTTPErrorHandler_WithStackTrace(t *testing.T) {
	// --- Setup ---
	e := echo.New()

	// 1. Capture log output
	// We temporarily redirect slog's output to a buffer to inspect it.
	var logBuffer bytes.Buffer
	// Create a new logger that writes to our buffer
	handler := slog.NewTextHandler(&logBuffer, &slog.HandlerOptions{
		AddSource: true,
	})
	logger := slog.New(handler)
	// Store the original default logger and defer its restoration
	originalLogger := slog.Default()
	slog.SetDefault(logger)
	defer slog.SetDefault(originalLogger)

	// 2. Set up the error handler we want to test
	setupErrorHandling(e)

	// 3. Define a route that will always produce an unhandled error
	e.GET("/test-unhandled-error", func(c echo.Context) error {
		// This is the kind of error that should trigger our stack trace logging.
		return errors.New("a deliberate unhandled error occurred")
	})

	// --- Act ---
	req := httptest.NewRequest(http.MethodGet, "/test-unhandled-error", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	// --- Assert ---
	// First, check that the HTTP response is correct (a 500 error)
	require.Equal(t, http.StatusInternalServerError, rec.Code, "Expected a 500 Internal Server Error response")

	// Now, check the captured log output
	logOutput := logBuffer.String()

	// Assert that the log contains the key pieces of information
	assert.Contains(t, logOutput, "Internal Server Error (Unhandled)", "Log message should indicate an unhandled error")
	assert.Contains(t, logOutput, "error=\"a deliberate unhandled error occurred\"", "Log should contain the original error message")
	assert.Contains(t, logOutput, "stack_trace=", "Log must contain the stack_trace field")

	// A good stack trace will contain the path to the Go runtime and this test file.
	// This is a strong indicator that a real stack trace was captured.
	assert.Contains(t, logOutput, "runtime/debug/stack.go", "Stack trace should originate from the debug package")
	assert.Contains(t, logOutput, "internal/server/server_test.go", "Stack trace should point back to this test file")
}

type nopRelay struct{}

func (nopRelay) Send(context.Context, domain.RelayMessage) error { return nil }

func newTestServer(t *testing.T) *Server {
	t.Helper()
	cfg, err := config.LoadFrom(map[string]string{"SESSION_SECRET": "server-test-secret"})
	require.NoError(t, err)

	s, err := New(app.New(app.Dependencies{
		Config: cfg,
		Logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
		Fs:     afero.NewMemMapFs(),
		Relay:  nopRelay{},
	}))
	require.NoError(t, err)
	s.RegisterRoutes()
	return s
}

func TestRoutes(t *testing.T) {
	s := newTestServer(t)

	cases := []struct {
		path        string
		code        int
		contentType string
	}{
		{"/", http.StatusOK, "text/html"},
		{"/choreography.json", http.StatusOK, "application/json"},
		{"/podcast/tabs/long", http.StatusOK, "text/html"},
		{"/podcast/tabs/nope", http.StatusNotFound, "text/html"},
		{"/contact/banner/idle", http.StatusOK, "text/html"},
		{"/static/js/choreo.js", http.StatusOK, "javascript"},
		{"/static/css/site.css", http.StatusOK, "text/css"},
		{"/metrics", http.StatusOK, "text/plain"},
		{"/health", http.StatusOK, "text/plain"},
		{"/missing", http.StatusNotFound, "text/html"},
	}
	for _, tc := range cases {
		t.Run(tc.path, func(t *testing.T) {
			rec := httptest.NewRecorder()
			s.E.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, tc.path, nil))
			assert.Equal(t, tc.code, rec.Code)
			assert.Contains(t, rec.Header().Get(echo.HeaderContentType), tc.contentType)
			assert.NotEmpty(t, rec.Header().Get(echo.HeaderXRequestID))
		})
	}
}

func TestHTTPErrorHandler_HTMXFragment(t *testing.T) {
	s := newTestServer(t)

	req := httptest.NewRequest(http.MethodGet, "/podcast/tabs/nope", nil)
	req.Header.Set("HX-Request", "true")
	rec := httptest.NewRecorder()
	s.E.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "none", rec.Header().Get("HX-Reswap"))
}

func TestContactRoute_RateLimited(t *testing.T) {
	cfg, err := config.LoadFrom(map[string]string{"SESSION_SECRET": "s", "CONTACT_RATE_LIMIT": "1"})
	require.NoError(t, err)
	s, err := New(app.New(app.Dependencies{
		Config: cfg,
		Logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
		Fs:     afero.NewMemMapFs(),
		Relay:  nopRelay{},
	}))
	require.NoError(t, err)
	s.RegisterRoutes()

	post := func() int {
		req := httptest.NewRequest(http.MethodPost, "/contact/quick", strings.NewReader("quick_email=a%40b.co&quick_message=hi"))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationForm)
		req.Header.Set("HX-Request", "true")
		req.RemoteAddr = "198.51.100.7:4000"
		rec := httptest.NewRecorder()
		s.E.ServeHTTP(rec, req)
		return rec.Code
	}
	assert.Equal(t, http.StatusOK, post())
	assert.Equal(t, http.StatusTooManyRequests, post())
}
