package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/nfrund/backstory/internal/contact"
	"github.com/nfrund/backstory/internal/domain"
	"github.com/nfrund/backstory/internal/middleware"
	"github.com/nfrund/backstory/internal/view"
	"github.com/nfrund/backstory/web/src/templates/components"
)

// ContactHandler accepts both contact forms.
type ContactHandler struct {
	site    *SiteHandler
	service *contact.Service
}

// NewContactHandler creates a ContactHandler. site renders the full page for
// submissions made without JavaScript.
func NewContactHandler(site *SiteHandler, service *contact.Service) *ContactHandler {
	return &ContactHandler{site: site, service: service}
}

// InquiryPost handles the detailed inquiry form.
func (h *ContactHandler) InquiryPost(c echo.Context) error {
	return h.submit(c, domain.FormInquiry)
}

// QuickPost handles the quick message form.
func (h *ContactHandler) QuickPost(c echo.Context) error {
	return h.submit(c, domain.FormQuick)
}

// submit runs one submission. htmx requests get the submitted form and the
// out-of-band banner back. A
// plain post is redirected on success, so a refresh cannot resend it, and
// re-rendered with its values on failure.
func (h *ContactHandler) submit(c echo.Context, form domain.Form) error {
	var fields contact.Fields
	if err := c.Bind(&fields); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid form data")
	}

	ctx := c.Request().Context()
	sub := h.service.Submit(ctx, form, fields)
	middleware.FromContext(ctx).Debug("contact form handled",
		"form", form,
		"status", sub.Status,
		"submission_id", sub.SubmissionID,
	)

	state := components.ContactState{Status: sub.Status, Fields: sub.Fields}
	if isHTMX(c) {
		return h.site.renderer.RenderPage(c, http.StatusOK, components.ContactSubmitted(form, state))
	}
	if !sub.Status.IsError() {
		view.SetFlashSuccess(c, string(sub.Status))
		return c.Redirect(http.StatusSeeOther, "/#contact")
	}
	return h.site.renderHome(c, http.StatusUnprocessableEntity, "", state)
}

// BannerIdleGet returns the neutral banner that replaces a terminal one once
// the clear delay has passed.
func (h *ContactHandler) BannerIdleGet(c echo.Context) error {
	return h.site.renderer.RenderPage(c, http.StatusOK, components.Banner(contact.StatusIdle))
}

func isHTMX(c echo.Context) bool {
	return c.Request().Header.Get("HX-Request") == "true"
}
