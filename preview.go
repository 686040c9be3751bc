package cmsblog

import (
	"crypto/subtle"
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// handlePreview turns on draft preview for the session when the shared
// secret matches, then redirects to the requested post or the home page.
func (a *App) handlePreview(c echo.Context) error {
	ip := c.RealIP()
	if !a.previewLimiter.Check(ip) {
		return echo.NewHTTPError(http.StatusTooManyRequests, "too many preview attempts")
	}
	secret := c.QueryParam("secret")
	if subtle.ConstantTimeCompare([]byte(secret), []byte(a.Config.PreviewSecret)) != 1 {
		a.previewLimiter.Record(ip)
		a.Logger.Warn("preview secret mismatch", zap.String("ip", ip))
		return echo.NewHTTPError(http.StatusUnauthorized, "invalid preview secret")
	}
	if err := setPreviewSession(c); err != nil {
		return err
	}

	target := "/"
	if slug := c.QueryParam("slug"); ValidSlug(slug) {
		target = PostPath(slug)
	}
	return c.Redirect(http.StatusSeeOther, target)
}

func (a *App) handlePreviewExit(c echo.Context) error {
	if err := clearPreviewSession(c); err != nil {
		return err
	}
	return c.Redirect(http.StatusSeeOther, "/")
}
