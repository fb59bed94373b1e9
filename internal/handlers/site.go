package handlers

import (
	"fmt"
	"net/http"
	"slices"
	"time"

	"github.com/labstack/echo/v4"
	g "maragu.dev/gomponents"

	"github.com/nfrund/backstory/internal/choreography"
	"github.com/nfrund/backstory/internal/contact"
	"github.com/nfrund/backstory/internal/content"
	"github.com/nfrund/backstory/internal/domain"
	"github.com/nfrund/backstory/internal/rendering"
	"github.com/nfrund/backstory/internal/view"
	"github.com/nfrund/backstory/web/src/templates/components"
	"github.com/nfrund/backstory/web/src/templates/layouts"
	"github.com/nfrund/backstory/web/src/templates/pages"
)

// ContentSource yields the content currently being served.
type ContentSource interface {
	Current() *content.Site
}

// SiteHandler serves the page and its htmx fragments.
type SiteHandler struct {
	content  ContentSource
	renderer rendering.Renderer
	now      func() time.Time
}

// NewSiteHandler creates a SiteHandler.
func NewSiteHandler(src ContentSource, renderer rendering.Renderer) *SiteHandler {
	return &SiteHandler{content: src, renderer: renderer, now: time.Now}
}

// HomeGet renders the whole page. A ?tab= query opens the podcast gallery on
// that tab; unknown tabs fall back to the default.
func (h *SiteHandler) HomeGet(c echo.Context) error {
	var req HomeRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid query")
	}

	state := components.ContactState{Status: contact.StatusIdle}
	flash := view.GetFlashData(c)
	for _, msg := range flash.Success {
		if st, ok := contact.ParseStatus(msg); ok {
			state.Status = st
		}
	}
	if len(flash.Error) > 0 {
		state.Notice = flash.Error[0]
	}
	return h.renderHome(c, http.StatusOK, req.Tab, state)
}

func (h *SiteHandler) renderHome(c echo.Context, status int, tab string, state components.ContactState) error {
	site := h.content.Current()
	if !slices.Contains(content.Tabs(), tab) {
		tab = site.Podcast.DefaultTab
	}

	page := pages.Home(pages.HomeData{
		Site:     site,
		Tab:      tab,
		Contact:  state,
		Manifest: choreography.Build(site),
		Year:     h.now().Year(),
	})
	return h.renderer.RenderPage(c, status, layouts.Base(layouts.PageConfig{
		Title:       site.Meta.Title,
		Description: site.Meta.Description,
		BodyClass:   "is-scroll-locked",
		BodyAttrs:   map[string]string{"splash": "playing"},
	}, view.AdaptGomponentToTempl(page)))
}

// ChoreographyGet serves the manifest on its own, for tooling and debugging.
func (h *SiteHandler) ChoreographyGet(c echo.Context) error {
	return c.JSON(http.StatusOK, choreography.Build(h.content.Current()))
}

// PodcastTabGet returns the episode panel for one tab plus the tab strip as an
// out-of-band swap.
func (h *SiteHandler) PodcastTabGet(c echo.Context) error {
	var req TabRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid tab")
	}
	if err := c.Validate(&req); err != nil {
		return fmt.Errorf("%w: %q", domain.ErrUnknownTab, req.Tab)
	}

	p := h.content.Current().Podcast
	return h.renderer.RenderPage(c, http.StatusOK, g.Group([]g.Node{
		components.PodcastPanel(p, req.Tab),
		components.PodcastTabs(req.Tab),
	}))
}

// Health reports liveness.
func Health(c echo.Context) error {
	return c.String(http.StatusOK, "OK")
}
