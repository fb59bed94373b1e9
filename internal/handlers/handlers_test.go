package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/gorilla/sessions"
	"github.com/labstack/echo-contrib/session"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nfrund/backstory/internal/contact"
	"github.com/nfrund/backstory/internal/content"
	"github.com/nfrund/backstory/internal/domain"
	"github.com/nfrund/backstory/internal/rendering"
	"github.com/nfrund/backstory/internal/schedule"
)

type staticContent struct{ site *content.Site }

func (s staticContent) Current() *content.Site { return s.site }

type recordingRelay struct {
	mu   sync.Mutex
	msgs []domain.RelayMessage
	err  error
}

func (r *recordingRelay) Send(_ context.Context, msg domain.RelayMessage) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.msgs = append(r.msgs, msg)
	return r.err
}

func (r *recordingRelay) sent() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.msgs)
}

type fixture struct {
	e     *echo.Echo
	relay *recordingRelay
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	site, err := content.Parse(content.Default())
	require.NoError(t, err)

	relay := &recordingRelay{}
	svc := contact.NewService(relay, "test", contact.Templates{Inquiry: "contact_inquiry", Quick: "contact_quick"}, nil,
		contact.WithScheduler(schedule.NewManual()))

	e := echo.New()
	e.Validator = NewValidator()
	e.Use(session.Middleware(sessions.NewCookieStore([]byte("handlers-test-secret"))))

	siteHandler := NewSiteHandler(staticContent{site}, rendering.NewUniversalRenderer())
	siteHandler.now = func() time.Time { return time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC) }
	contactHandler := NewContactHandler(siteHandler, svc)

	e.GET("/", siteHandler.HomeGet)
	e.GET("/choreography.json", siteHandler.ChoreographyGet)
	e.GET("/podcast/tabs/:tab", siteHandler.PodcastTabGet)
	e.POST("/contact/inquiry", contactHandler.InquiryPost)
	e.POST("/contact/quick", contactHandler.QuickPost)
	e.GET("/contact/banner/idle", contactHandler.BannerIdleGet)
	e.HTTPErrorHandler = func(err error, c echo.Context) {
		if errors.Is(err, domain.ErrUnknownTab) {
			_ = c.String(http.StatusNotFound, err.Error())
			return
		}
		e.DefaultHTTPErrorHandler(err, c)
	}
	return &fixture{e: e, relay: relay}
}

func (f *fixture) do(req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	f.e.ServeHTTP(rec, req)
	return rec
}

func formPost(path string, values url.Values, htmx bool) *http.Request {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(values.Encode()))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationForm)
	if htmx {
		req.Header.Set("HX-Request", "true")
	}
	return req
}

func TestHomeGet(t *testing.T) {
	f := newFixture(t)

	rec := f.do(httptest.NewRequest(http.MethodGet, "/", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()

	for _, id := range []string{`id="splash"`, `id="navbar"`, `id="hero"`, `id="about"`, `id="journey"`, `id="podcast"`, `id="contact"`, `id="footer"`, `id="choreography"`} {
		assert.Contains(t, body, id)
	}
	assert.Contains(t, body, "© 2025")
	assert.Contains(t, body, `data-tab="long"`)
}

func TestHomeGet_TabQuery(t *testing.T) {
	f := newFixture(t)

	rec := f.do(httptest.NewRequest(http.MethodGet, "/?tab=short", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `data-tab="short"`)

	rec = f.do(httptest.NewRequest(http.MethodGet, "/?tab=bogus", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `data-tab="long"`, "unknown tab falls back to the default")
}

func TestChoreographyGet(t *testing.T) {
	f := newFixture(t)

	rec := f.do(httptest.NewRequest(http.MethodGet, "/choreography.json", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	var doc map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &doc))
	assert.EqualValues(t, 768, doc["breakpoint"])
	assert.Contains(t, doc, "splash")
	assert.Contains(t, doc, "about")
}

func TestPodcastTabGet(t *testing.T) {
	f := newFixture(t)

	t.Run("known tab renders panel and tabs", func(t *testing.T) {
		rec := f.do(httptest.NewRequest(http.MethodGet, "/podcast/tabs/long", nil))
		require.Equal(t, http.StatusOK, rec.Code)
		body := rec.Body.String()
		assert.Contains(t, body, `id="podcast-panel"`)
		assert.Contains(t, body, `hx-swap-oob="outerHTML"`)
		assert.Contains(t, body, "youtube.com/embed/GmSJ76YUI3o")
	})

	t.Run("empty tab shows the empty state", func(t *testing.T) {
		rec := f.do(httptest.NewRequest(http.MethodGet, "/podcast/tabs/short", nil))
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "podcast__empty")
	})

	t.Run("unknown tab is not found", func(t *testing.T) {
		rec := f.do(httptest.NewRequest(http.MethodGet, "/podcast/tabs/reels", nil))
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestContact_HTMX(t *testing.T) {
	t.Run("valid inquiry is sent and fields cleared", func(t *testing.T) {
		f := newFixture(t)
		rec := f.do(formPost("/contact/inquiry", url.Values{
			"name":    {"Ada"},
			"email":   {"ada@example.com"},
			"subject": {"Show"},
			"message": {"Hello there"},
		}, true))

		require.Equal(t, http.StatusOK, rec.Code)
		body := rec.Body.String()
		assert.Contains(t, body, `id="inquiry-form"`)
		assert.Contains(t, body, `data-status="success"`)
		assert.Contains(t, body, `hx-trigger="load delay:3s"`)
		assert.NotContains(t, body, "ada@example.com")
		assert.Equal(t, 1, f.relay.sent())
	})

	t.Run("empty quick message keeps values and never sends", func(t *testing.T) {
		f := newFixture(t)
		rec := f.do(formPost("/contact/quick", url.Values{
			"quick_email":   {"ada@example.com"},
			"quick_message": {"   "},
		}, true))

		require.Equal(t, http.StatusOK, rec.Code)
		body := rec.Body.String()
		assert.Contains(t, body, `data-status="error_empty"`)
		assert.Contains(t, body, `value="ada@example.com"`)
		assert.Zero(t, f.relay.sent())
	})

	t.Run("malformed email", func(t *testing.T) {
		f := newFixture(t)
		rec := f.do(formPost("/contact/quick", url.Values{
			"quick_email":   {"not-an-email"},
			"quick_message": {"hi"},
		}, true))
		assert.Contains(t, rec.Body.String(), `data-status="error_invalid_email"`)
		assert.Zero(t, f.relay.sent())
	})

	t.Run("relay failure", func(t *testing.T) {
		f := newFixture(t)
		f.relay.err = domain.ErrRelayFailed
		rec := f.do(formPost("/contact/quick", url.Values{
			"quick_email":   {"ada@example.com"},
			"quick_message": {"hi"},
		}, true))
		assert.Contains(t, rec.Body.String(), `data-status="error_quick"`)
		assert.Contains(t, rec.Body.String(), `value="ada@example.com"`)
		assert.Equal(t, 1, f.relay.sent())
	})
}

func TestContact_HTMXSwapsOnlyTheSubmittedForm(t *testing.T) {
	f := newFixture(t)

	home := f.do(httptest.NewRequest(http.MethodGet, "/", nil)).Body.String()
	assert.Contains(t, home, `id="inquiry-form"`)
	assert.Contains(t, home, `id="quick-form"`)
	assert.Contains(t, home, `hx-target="this"`)
	assert.NotContains(t, home, `hx-target="#contact-forms"`)

	t.Run("inquiry leaves the quick form in place", func(t *testing.T) {
		rec := f.do(formPost("/contact/inquiry", url.Values{
			"name":  {"Ada"},
			"email": {"ada@example.com"},
		}, true))

		require.Equal(t, http.StatusOK, rec.Code)
		body := rec.Body.String()
		assert.True(t, strings.HasPrefix(body, `<form id="inquiry-form"`))
		assert.Contains(t, body, `value="Ada"`)
		assert.NotContains(t, body, `id="quick-form"`)
		assert.NotContains(t, body, `name="quick_email"`)
		assert.NotContains(t, body, `id="contact-forms"`)
		assert.Contains(t, body, `id="contact-banner"`)
		assert.Contains(t, body, `hx-swap-oob="true"`)
		assert.Contains(t, body, `data-status="error_empty"`)
	})

	t.Run("quick message leaves the inquiry form in place", func(t *testing.T) {
		rec := f.do(formPost("/contact/quick", url.Values{
			"quick_email":   {"ada@example.com"},
			"quick_message": {"hi"},
		}, true))

		require.Equal(t, http.StatusOK, rec.Code)
		body := rec.Body.String()
		assert.True(t, strings.HasPrefix(body, `<form id="quick-form"`))
		assert.NotContains(t, body, `id="inquiry-form"`)
		assert.NotContains(t, body, `name="subject"`)
		assert.Contains(t, body, `data-status="success_quick"`)
		assert.Contains(t, body, `hx-swap-oob="true"`)
	})
}

func TestContact_PlainPost(t *testing.T) {
	t.Run("success redirects and the flash shows once", func(t *testing.T) {
		f := newFixture(t)
		rec := f.do(formPost("/contact/quick", url.Values{
			"quick_email":   {"ada@example.com"},
			"quick_message": {"hi"},
		}, false))

		require.Equal(t, http.StatusSeeOther, rec.Code)
		assert.Equal(t, "/#contact", rec.Header().Get(echo.HeaderLocation))

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		for _, c := range rec.Result().Cookies() {
			req.AddCookie(c)
		}
		home := f.do(req)
		assert.Contains(t, home.Body.String(), `data-status="success_quick"`)
	})

	t.Run("failure re-renders the page with values", func(t *testing.T) {
		f := newFixture(t)
		rec := f.do(formPost("/contact/inquiry", url.Values{
			"name":  {"Ada"},
			"email": {"ada@example.com"},
		}, false))

		assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
		assert.Contains(t, rec.Body.String(), `data-status="error_empty"`)
		assert.Contains(t, rec.Body.String(), `value="Ada"`)
	})
}

func TestBannerIdleGet(t *testing.T) {
	f := newFixture(t)
	rec := f.do(httptest.NewRequest(http.MethodGet, "/contact/banner/idle", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `data-status="idle"`)
	assert.NotContains(t, rec.Body.String(), "hx-trigger")
}
