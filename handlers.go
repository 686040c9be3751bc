package cmsblog

import (
	"errors"
	"net/http"
	"os"
	"path/filepath"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/eringen/cmsblog/cms"
	"github.com/eringen/cmsblog/markdown"
)

func (a *App) handleHome(c echo.Context) error {
	stage := stageFor(c)
	posts, err := a.Site.Posts(c.Request().Context(), stage)
	if err != nil {
		return err
	}
	return Render(c, a.Site.HomePage(posts, stage))
}

func (a *App) handlePost(c echo.Context) error {
	slug := c.Param("slug")
	if !ValidSlug(slug) {
		return echo.ErrNotFound
	}
	stage := stageFor(c)
	ctx := c.Request().Context()
	posts, err := a.Site.Posts(ctx, stage)
	if err != nil {
		return err
	}
	cmp, err := a.Site.PostPage(ctx, posts, stage, slug)
	if errors.Is(err, ErrNotFound) {
		return echo.ErrNotFound
	}
	if err != nil {
		return err
	}
	return Render(c, cmp)
}

func (a *App) handleSitemap(c echo.Context) error {
	posts, err := a.Site.Posts(c.Request().Context(), cms.StagePublished)
	if err != nil {
		return err
	}
	c.Response().Header().Set(echo.HeaderContentType, echo.MIMEApplicationXMLCharsetUTF8)
	c.Response().WriteHeader(http.StatusOK)
	return a.Site.WriteSitemap(c.Response(), posts)
}

func (a *App) handleFeed(c echo.Context) error {
	posts, err := a.Site.Posts(c.Request().Context(), cms.StagePublished)
	if err != nil {
		return err
	}
	c.Response().Header().Set(echo.HeaderContentType, "application/rss+xml; charset=UTF-8")
	c.Response().WriteHeader(http.StatusOK)
	return a.Site.WriteFeed(c.Response(), posts)
}

func (a *App) handleFavicon(c echo.Context) error {
	return c.File(filepath.Join(a.staticDir, "favicon.svg"))
}

// handleRobots serves the static robots.txt when one exists and a generated
// one otherwise.
func (a *App) handleRobots(c echo.Context) error {
	name := filepath.Join(a.staticDir, "robots.txt")
	if _, err := os.Stat(name); err == nil {
		return c.File(name)
	}
	c.Response().Header().Set(echo.HeaderContentType, echo.MIMETextPlainCharsetUTF8)
	c.Response().WriteHeader(http.StatusOK)
	return a.Site.WriteRobots(c.Response())
}

func handleHighlightCSS(c echo.Context) error {
	return c.Blob(http.StatusOK, "text/css; charset=utf-8", markdown.Stylesheet())
}

func handleHealthz(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

func (a *App) httpErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}
	// Error responses must not be cached.
	c.Response().Header().Set("Cache-Control", "no-store")
	var he *echo.HTTPError
	ok := errors.As(err, &he)
	if ok && he.Code == http.StatusNotFound {
		_ = RenderStatus(c, http.StatusNotFound, a.Site.NotFoundPage())
		return
	}
	code := http.StatusInternalServerError
	if ok {
		code = he.Code
	}
	if code >= 500 {
		a.Logger.Error("server error",
			zap.String("method", c.Request().Method),
			zap.String("uri", c.Request().RequestURI),
			zap.Error(err),
		)
		_ = RenderStatus(c, code, a.Site.ServerErrorPage())
		return
	}
	a.Echo.DefaultHTTPErrorHandler(err, c)
}
