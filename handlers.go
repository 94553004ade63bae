package landing

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/micmidia/landing/contact"
	"github.com/micmidia/landing/content"
	"github.com/micmidia/landing/views"
)

const (
	msgSent        = "Mensagem enviada! Respondemos em 24-48h úteis."
	msgRateLimited = "Demasiadas mensagens. Tente novamente mais tarde."
	msgInvalid     = "Verifique os campos assinalados."
)

func (a *App) siteConfig() views.SiteConfig {
	return views.SiteConfig{
		Name:        a.Config.Name,
		URL:         a.Config.URL,
		Description: a.Config.Description,
		Lang:        a.Config.Lang,
	}
}

// page builds the landing page input with the given form state. Assets
// resolve from the site root.
func (a *App) page(form views.ContactForm) views.Page {
	return views.Page{
		Site:         a.siteConfig(),
		Now:          a.now(),
		Chart:        a.chart,
		Contact:      form,
		HTMXSrc:      a.Config.HTMXSrc,
		CanonicalURL: BuildURL(a.Config.URL),
		JSONLD:       OrganizationJsonLD(a.Config),
		AssetBase:    "/",
	}
}

func (a *App) liveForm(c echo.Context) views.ContactForm {
	if !a.Config.ContactEnabled {
		return views.ContactForm{}
	}
	return views.ContactForm{
		Action:    "/contact/",
		CSRFToken: CsrfToken(c),
	}
}

func (a *App) handleHome(c echo.Context) error {
	form := a.liveForm(c)
	if a.Config.ContactEnabled {
		form.Success = popFlash(c, flashSuccess)
		form.Failure = popFlash(c, flashFailure)
	}
	return Render(c, views.LandingPage(a.page(form)))
}

func (a *App) handleContact(c echo.Context) error {
	var req contact.Request
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid form")
	}

	_, err := a.Contact.Submit(c.Request().Context(), c.RealIP(), req)

	form := a.liveForm(c)
	status := http.StatusOK
	var verrs contact.ValidationErrors
	switch {
	case err == nil:
		form.Success = msgSent
	case errors.As(err, &verrs):
		status = http.StatusUnprocessableEntity
		form.Errors = verrs
		form.Failure = msgInvalid
		form.Values = views.ContactValues{Name: req.Name, Email: req.Email, Message: req.Message}
	case errors.Is(err, contact.ErrRateLimited):
		status = http.StatusTooManyRequests
		form.Failure = msgRateLimited
		form.Values = views.ContactValues{Name: req.Name, Email: req.Email, Message: req.Message}
	default:
		return err
	}

	if isHTMX(c) {
		return RenderStatus(c, status, views.Component(views.ContactFormNode(form)))
	}
	if status == http.StatusOK {
		if err := setFlash(c, flashSuccess, form.Success); err != nil {
			return err
		}
		return c.Redirect(http.StatusSeeOther, "/#"+views.SectionContact)
	}
	return RenderStatus(c, status, views.LandingPage(a.page(form)))
}

func isHTMX(c echo.Context) bool {
	return c.Request().Header.Get("HX-Request") == "true"
}

func (a *App) handleThumbnail(c echo.Context) error {
	name, ok := strings.CutSuffix(c.Param("file"), ".png")
	if !ok {
		return echo.ErrNotFound
	}
	n, err := strconv.Atoi(name)
	if err != nil || !content.ValidProject(n) {
		return echo.ErrNotFound
	}
	data, err := a.Thumbs.Get(n)
	if err != nil {
		return err
	}
	return c.Blob(http.StatusOK, "image/png", data)
}

func (a *App) handleSitemap(c echo.Context) error {
	return a.renderSitemap(c)
}

func (a *App) handleFavicon(c echo.Context) error {
	data, err := EmbeddedAssets.ReadFile("embedded/favicon.svg")
	if err != nil {
		return err
	}
	return c.Blob(http.StatusOK, "image/svg+xml", data)
}

func (a *App) handleRobots(c echo.Context) error {
	return c.String(http.StatusOK, RobotsTxt(a.Config.URL))
}

func (a *App) handleHealth(c echo.Context) error {
	status := map[string]any{"status": "ok", "contact": a.Config.ContactEnabled, "thumbnails": a.Thumbs.Len()}
	if a.Store != nil {
		if err := a.Store.Ping(c.Request().Context()); err != nil {
			a.logger.ErrorContext(c.Request().Context(), "health check failed", "error", err)
			return c.JSON(http.StatusServiceUnavailable, map[string]any{"status": "unavailable"})
		}
		n, err := a.Store.Count(c.Request().Context())
		if err == nil {
			status["messages"] = n
		}
	}
	return c.JSON(http.StatusOK, status)
}

func (a *App) httpErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}
	he, ok := err.(*echo.HTTPError)
	if ok && he.Code == http.StatusNotFound {
		_ = RenderStatus(c, http.StatusNotFound, views.ErrorPage(a.siteConfig(), http.StatusNotFound))
		return
	}
	code := http.StatusInternalServerError
	if ok {
		code = he.Code
	}
	if code >= 500 {
		a.logger.ErrorContext(c.Request().Context(), "server error", "error", err, "uri", c.Request().RequestURI)
		_ = RenderStatus(c, code, views.ErrorPage(a.siteConfig(), code))
		return
	}
	a.Echo.DefaultHTTPErrorHandler(err, c)
}
